package routes

import (
	"net/http"

	"github.com/mlima3022/Financas/internal/contracts"
	"github.com/mlima3022/Financas/internal/domain/notification"
	appErrors "github.com/mlima3022/Financas/internal/errors"
	"github.com/mlima3022/Financas/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateNotification(c *gin.Context) {
	var body contracts.NotificationCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	req := &notification.CreateRequest{
		Title: body.Title,
		Body:  body.Body,
		Kind:  body.Kind,
	}

	ctx := c.Request.Context()
	entity, err := h.NotificationService.Create(ctx, h.scope(c), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entity)
}

func (h *Handler) ListNotifications(c *gin.Context) {
	onlyUnread := c.Query("unread") == "true"

	ctx := c.Request.Context()
	notifications, err := h.NotificationService.List(ctx, h.scope(c), onlyUnread)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.NotificationListResponse{
		Notifications: notifications,
		Total:         len(notifications),
	})
}

func (h *Handler) MarkNotificationRead(c *gin.Context) {
	notificationID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	ctx := c.Request.Context()
	if err := h.NotificationService.MarkRead(ctx, h.scope(c), notificationID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Notificação marcada como lida"})
}

func (h *Handler) MarkAllNotificationsRead(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.NotificationService.MarkAllRead(ctx, h.scope(c)); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Notificações marcadas como lidas"})
}
