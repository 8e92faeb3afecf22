package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/marromlanches/storefront-backend/pkg/enums"
)

// Notification is a back-office alert produced by the order event consumer.
type Notification struct {
	ID        uuid.UUID              `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Type      enums.NotificationType `gorm:"column:type;not null"`
	OrderID   uuid.UUID              `gorm:"column:order_id;type:uuid;not null"`
	Title     string                 `gorm:"column:title;not null"`
	Body      *string                `gorm:"column:body"`
	ReadAt    *time.Time             `gorm:"column:read_at"`
	CreatedAt time.Time              `gorm:"column:created_at;autoCreateTime"`
}

func (Notification) TableName() string { return "notifications" }
