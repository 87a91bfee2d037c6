package dto

// CreateFeedbackRequest — POST /api/feedback
type CreateFeedbackRequest struct {
	SwapRequestID string `json:"swap_request_id" binding:"required,uuid"`
	Rating        int    `json:"rating"          binding:"required,min=1,max=5"`
	Comment       string `json:"comment"         binding:"omitempty,max=2000"`
}

// FeedbackResponse — one feedback entry.
type FeedbackResponse struct {
	ID            string `json:"id"`
	SwapRequestID string `json:"swap_request_id"`
	GiverID       string `json:"giver_id"`
	ReceiverID    string `json:"receiver_id"`
	Rating        int    `json:"rating"`
	Comment       string `json:"comment,omitempty"`
	CreatedAt     string `json:"created_at"`
}
