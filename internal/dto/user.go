package dto

// UpdateProfileRequest — PUT /api/users/me (only non-nil fields applied)
type UpdateProfileRequest struct {
	FullName     *string `json:"full_name"     binding:"omitempty,max=255"`
	Location     *string `json:"location"      binding:"omitempty,max=255"`
	Bio          *string `json:"bio"           binding:"omitempty,max=2000"`
	Availability *string `json:"availability"  binding:"omitempty,max=255"`
	ProfilePhoto *string `json:"profile_photo" binding:"omitempty,max=500"`
	IsPublic     *bool   `json:"is_public"`
}

// UserSearchRequest — GET /api/users/search
type UserSearchRequest struct {
	Skill    string `form:"skill"`
	Category string `form:"category"`
	Location string `form:"location"`
	PaginationRequest
}

// UserResponse — the caller's own profile.
type UserResponse struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	FullName     string `json:"full_name,omitempty"`
	Location     string `json:"location,omitempty"`
	ProfilePhoto string `json:"profile_photo,omitempty"`
	Bio          string `json:"bio,omitempty"`
	Availability string `json:"availability,omitempty"`
	IsPublic     bool   `json:"is_public"`
	IsActive     bool   `json:"is_active"`
	Role         string `json:"role"`
	CreatedAt    string `json:"created_at"`
}

// UserPublicResponse — another user's profile, private fields stripped.
type UserPublicResponse struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	FullName     string `json:"full_name,omitempty"`
	Location     string `json:"location,omitempty"`
	ProfilePhoto string `json:"profile_photo,omitempty"`
	Bio          string `json:"bio,omitempty"`
	Availability string `json:"availability,omitempty"`
}
