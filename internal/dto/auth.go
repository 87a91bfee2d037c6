package dto

// RegisterRequest — POST /api/auth/register
type RegisterRequest struct {
	Email        string `json:"email"        binding:"required,email"`
	Username     string `json:"username"     binding:"required,min=3,max=100"`
	Password     string `json:"password"     binding:"required,min=8,max=72"`
	FullName     string `json:"full_name"    binding:"omitempty,max=255"`
	Location     string `json:"location"     binding:"omitempty,max=255"`
	Bio          string `json:"bio"          binding:"omitempty,max=2000"`
	Availability string `json:"availability" binding:"omitempty,max=255"`
	IsPublic     *bool  `json:"is_public"`
}

// LoginRequest — POST /api/auth/login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest — POST /api/auth/refresh
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// TokenResponse — token pair plus the authenticated user.
type TokenResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int          `json:"expires_in"` // access token lifetime in seconds
	User         UserResponse `json:"user"`
}
