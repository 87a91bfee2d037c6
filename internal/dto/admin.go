package dto

// AdminUserListRequest — GET /api/admin/users
type AdminUserListRequest struct {
	IsActive *bool `form:"is_active"`
	PaginationRequest
}

// AdminSwapListRequest — GET /api/admin/swaps and /api/admin/export/swaps
type AdminSwapListRequest struct {
	Status string `form:"status" binding:"omitempty,oneof=pending accepted rejected completed cancelled"`
	PaginationRequest
}

// CreateMessageRequest — POST /api/admin/messages
type CreateMessageRequest struct {
	Title    string `json:"title"   binding:"required,max=255"`
	Content  string `json:"content" binding:"required"`
	IsActive *bool  `json:"is_active"`
}

// MessageResponse — platform announcement.
type MessageResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
}

// StatsResponse — GET /api/admin/stats
type StatsResponse struct {
	Users  UserStats  `json:"users"`
	Skills SkillStats `json:"skills"`
	Swaps  SwapStats  `json:"swaps"`
}

// UserStats — user counts.
type UserStats struct {
	Total    int64 `json:"total"`
	Active   int64 `json:"active"`
	Inactive int64 `json:"inactive"`
}

// SkillStats — skill counts.
type SkillStats struct {
	Total    int64 `json:"total"`
	Approved int64 `json:"approved"`
	Pending  int64 `json:"pending"`
}

// SwapStats — swap request counts.
type SwapStats struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Completed int64 `json:"completed"`
}

// UserActivityReport — GET /api/admin/reports/users, one row per user.
type UserActivityReport struct {
	UserID        string `json:"user_id"`
	Username      string `json:"username"`
	Email         string `json:"email"`
	CreatedAt     string `json:"created_at"`
	IsActive      bool   `json:"is_active"`
	TotalRequests int64  `json:"total_requests"`
}

// FeedbackReport — GET /api/admin/reports/feedback
type FeedbackReport struct {
	TotalFeedback int64   `json:"total_feedback"`
	AverageRating float64 `json:"average_rating"`
	MinRating     int     `json:"min_rating"`
	MaxRating     int     `json:"max_rating"`
}
