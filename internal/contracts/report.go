package contracts

import (
	"github.com/mlima3022/Financas/internal/domain/notification"
	"github.com/mlima3022/Financas/internal/domain/report"
)

type DashboardResponse struct {
	Summary *report.DashboardSummary `json:"summary"`
}

type CategorySpendResponse struct {
	Categories []report.CategoryAmount `json:"categories"`
}

type MonthlyTrendResponse struct {
	Points []report.MonthPoint `json:"points"`
}

type NotificationCreateRequest struct {
	Title string `json:"title" binding:"required,max=255"`
	Body  string `json:"body" binding:"omitempty"`
	Kind  string `json:"kind" binding:"omitempty,oneof=low_balance budget debt_due general"`
}

type NotificationListResponse struct {
	Notifications []*notification.Notification `json:"notifications"`
	Total         int                          `json:"total"`
}
