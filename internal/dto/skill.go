package dto

// CreateSkillRequest — POST /api/skills
type CreateSkillRequest struct {
	Name        string `json:"name"        binding:"required,min=1,max=100"`
	Category    string `json:"category"    binding:"omitempty,max=100"`
	Description string `json:"description" binding:"omitempty,max=2000"`
}

// SkillListRequest — GET /api/skills
type SkillListRequest struct {
	Category string `form:"category"`
	Search   string `form:"search"`
	PaginationRequest
}

// SkillResponse — catalog entry.
type SkillResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`
	IsApproved  bool   `json:"is_approved"`
	CreatedAt   string `json:"created_at"`
}
