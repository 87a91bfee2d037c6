package model

import "time"

// Feedback — rating left after a completed swap, maps to feedback
type Feedback struct {
	FeedbackID    string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"feedback_id"`
	SwapRequestID string    `gorm:"type:uuid;not null;index"                       json:"swap_request_id"`
	GiverID       string    `gorm:"type:uuid;not null"                             json:"giver_id"`
	ReceiverID    string    `gorm:"type:uuid;not null"                             json:"receiver_id"`
	Rating        int       `gorm:"not null"                                       json:"rating"` // 1-5
	Comment       string    `gorm:"type:text"                                      json:"comment,omitempty"`
	CreatedAt     time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`

	SwapRequest *SwapRequest `gorm:"foreignKey:SwapRequestID;references:SwapRequestID" json:"swap_request,omitempty"`
	Giver       *User        `gorm:"foreignKey:GiverID;references:UserID"              json:"giver,omitempty"`
	Receiver    *User        `gorm:"foreignKey:ReceiverID;references:UserID"           json:"receiver,omitempty"`
}

// TableName sets the table name.
func (Feedback) TableName() string { return "feedback" }
