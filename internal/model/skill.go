package model

import "time"

// Skill — catalog entry, maps to skills
type Skill struct {
	SkillID     string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"skill_id"`
	Name        string    `gorm:"type:varchar(100);not null;uniqueIndex"         json:"name"`
	Category    string    `gorm:"type:varchar(100);index"                        json:"category,omitempty"`
	Description string    `gorm:"type:text"                                      json:"description,omitempty"`
	IsApproved  bool      `gorm:"not null;default:true"                          json:"is_approved"`
	CreatedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
}

// TableName sets the table name.
func (Skill) TableName() string { return "skills" }
