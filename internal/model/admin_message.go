package model

import "time"

// AdminMessage — platform-wide announcement, maps to admin_messages
type AdminMessage struct {
	MessageID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"message_id"`
	Title     string    `gorm:"type:varchar(255);not null"                     json:"title"`
	Content   string    `gorm:"type:text;not null"                             json:"content"`
	IsActive  bool      `gorm:"not null;default:true"                          json:"is_active"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
}

// TableName sets the table name.
func (AdminMessage) TableName() string { return "admin_messages" }
