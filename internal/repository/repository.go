package repository

import "gorm.io/gorm"

// Repository aggregates all repositories.
type Repository struct {
	User         UserRepository
	Skill        SkillRepository
	Swap         SwapRepository
	Feedback     FeedbackRepository
	AdminMessage AdminMessageRepository
}

// NewRepository wires the gorm-backed repositories.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:         NewUserRepo(db),
		Skill:        NewSkillRepo(db),
		Swap:         NewSwapRepo(db),
		Feedback:     NewFeedbackRepo(db),
		AdminMessage: NewAdminMessageRepo(db),
	}
}
