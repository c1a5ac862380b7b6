package infrastructure

import (
	"context"
	"errors"
	"time"

	"github.com/mlima3022/Financas/internal/domain/notification"
	appErrors "github.com/mlima3022/Financas/internal/errors"
	"github.com/mlima3022/Financas/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type NotificationRepository struct {
	DB *gorm.DB
}

var _ notification.Repository = (*NotificationRepository)(nil)

type notificationDB struct {
	Id          string    `gorm:"type:varchar(26);primaryKey"`
	WorkspaceId string    `gorm:"type:varchar(26);index;not null"`
	UserId      string    `gorm:"type:varchar(26);index;not null"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Body        string    `gorm:"type:text"`
	Kind        string    `gorm:"type:varchar(50);not null"`
	IsRead      bool      `gorm:"default:false"`
	CreatedAt   time.Time `gorm:"autoCreateTime;not null"`
}

func (notificationDB) TableName() string {
	return "notifications"
}

func toDomainNotification(ndb *notificationDB) (*notification.Notification, error) {
	id, err := pkg.ParseULID(ndb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	wsID, err := pkg.ParseULID(ndb.WorkspaceId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	userID, err := pkg.ParseULID(ndb.UserId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}

	return &notification.Notification{
		Id:          id,
		WorkspaceId: wsID,
		UserId:      userID,
		Title:       ndb.Title,
		Body:        ndb.Body,
		Kind:        ndb.Kind,
		IsRead:      ndb.IsRead,
		CreatedAt:   ndb.CreatedAt,
	}, nil
}

func (r *NotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	ndb := &notificationDB{
		Id:          n.Id.String(),
		WorkspaceId: n.WorkspaceId.String(),
		UserId:      n.UserId.String(),
		Title:       n.Title,
		Body:        n.Body,
		Kind:        n.Kind,
		IsRead:      n.IsRead,
	}
	if err := r.DB.WithContext(ctx).Table("notifications").Create(ndb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *NotificationRepository) GetByUser(ctx context.Context, workspaceID, userID ulid.ULID, onlyUnread bool) ([]*notification.Notification, error) {
	query := r.DB.WithContext(ctx).Table("notifications").
		Where("workspace_id = ? AND user_id = ?", workspaceID.String(), userID.String())
	if onlyUnread {
		query = query.Where("is_read = ?", false)
	}

	var rows []notificationDB
	if err := query.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	out := make([]*notification.Notification, 0, len(rows))
	for i := range rows {
		item, err := toDomainNotification(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *NotificationRepository) GetByID(ctx context.Context, id, workspaceID ulid.ULID) (*notification.Notification, error) {
	var ndb notificationDB
	err := r.DB.WithContext(ctx).Table("notifications").
		Where("id = ? AND workspace_id = ?", id.String(), workspaceID.String()).
		First(&ndb).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrNotificationNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainNotification(&ndb)
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id, workspaceID ulid.ULID) error {
	result := r.DB.WithContext(ctx).Table("notifications").
		Where("id = ? AND workspace_id = ?", id.String(), workspaceID.String()).
		Update("is_read", true)
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrNotificationNotFound
	}
	return nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, workspaceID, userID ulid.ULID) error {
	err := r.DB.WithContext(ctx).Table("notifications").
		Where("workspace_id = ? AND user_id = ? AND is_read = ?", workspaceID.String(), userID.String(), false).
		Update("is_read", true).Error
	if err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}
