package dto

// CreateSwapRequest — POST /api/swaps
type CreateSwapRequest struct {
	RequestedID    string `json:"requested_id"     binding:"required,uuid"`
	SkillOfferedID string `json:"skill_offered_id" binding:"required,uuid"`
	SkillWantedID  string `json:"skill_wanted_id"  binding:"required,uuid"`
	Message        string `json:"message"          binding:"omitempty,max=2000"`
}

// UpdateSwapRequest — PUT /api/swaps/:id (status transition)
type UpdateSwapRequest struct {
	Status string `json:"status" binding:"required,oneof=accepted rejected completed cancelled"`
}

// SwapListRequest — GET /api/swaps
// Role selects which side of the request the caller is on.
type SwapListRequest struct {
	Role   string `form:"role"   binding:"omitempty,oneof=sent received all"`
	Status string `form:"status" binding:"omitempty,oneof=pending accepted rejected completed cancelled"`
	PaginationRequest
}

// SwapResponse — one swap request.
type SwapResponse struct {
	ID             string `json:"id"`
	RequesterID    string `json:"requester_id"`
	RequestedID    string `json:"requested_id"`
	SkillOfferedID string `json:"skill_offered_id"`
	SkillWantedID  string `json:"skill_wanted_id"`
	Message        string `json:"message,omitempty"`
	Status         string `json:"status"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`

	Requester    *UserPublicResponse `json:"requester,omitempty"`
	Requested    *UserPublicResponse `json:"requested,omitempty"`
	SkillOffered *SkillResponse      `json:"skill_offered,omitempty"`
	SkillWanted  *SkillResponse      `json:"skill_wanted,omitempty"`
}
