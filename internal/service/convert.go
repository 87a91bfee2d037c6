package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/jashmevada/skill-swap-platform/internal/dto"
	"github.com/jashmevada/skill-swap-platform/internal/model"
)

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func toUserResponse(u *model.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:           u.UserID,
		Email:        u.Email,
		Username:     u.Username,
		FullName:     u.FullName,
		Location:     u.Location,
		ProfilePhoto: u.ProfilePhoto,
		Bio:          u.Bio,
		Availability: u.Availability,
		IsPublic:     u.IsPublic,
		IsActive:     u.IsActive,
		Role:         u.Role,
		CreatedAt:    formatTime(u.CreatedAt),
	}
}

func toUserPublicResponse(u *model.User) *dto.UserPublicResponse {
	return &dto.UserPublicResponse{
		ID:           u.UserID,
		Username:     u.Username,
		FullName:     u.FullName,
		Location:     u.Location,
		ProfilePhoto: u.ProfilePhoto,
		Bio:          u.Bio,
		Availability: u.Availability,
	}
}

func toSkillResponse(sk *model.Skill) *dto.SkillResponse {
	return &dto.SkillResponse{
		ID:          sk.SkillID,
		Name:        sk.Name,
		Category:    sk.Category,
		Description: sk.Description,
		IsApproved:  sk.IsApproved,
		CreatedAt:   formatTime(sk.CreatedAt),
	}
}

func toSwapResponse(r *model.SwapRequest) *dto.SwapResponse {
	resp := &dto.SwapResponse{
		ID:             r.SwapRequestID,
		RequesterID:    r.RequesterID,
		RequestedID:    r.RequestedID,
		SkillOfferedID: r.SkillOfferedID,
		SkillWantedID:  r.SkillWantedID,
		Message:        r.Message,
		Status:         string(r.Status),
		CreatedAt:      formatTime(r.CreatedAt),
		UpdatedAt:      formatTime(r.UpdatedAt),
	}
	if r.Requester != nil {
		resp.Requester = toUserPublicResponse(r.Requester)
	}
	if r.Requested != nil {
		resp.Requested = toUserPublicResponse(r.Requested)
	}
	if r.SkillOffered != nil {
		resp.SkillOffered = toSkillResponse(r.SkillOffered)
	}
	if r.SkillWanted != nil {
		resp.SkillWanted = toSkillResponse(r.SkillWanted)
	}
	return resp
}

func toFeedbackResponse(fb *model.Feedback) *dto.FeedbackResponse {
	return &dto.FeedbackResponse{
		ID:            fb.FeedbackID,
		SwapRequestID: fb.SwapRequestID,
		GiverID:       fb.GiverID,
		ReceiverID:    fb.ReceiverID,
		Rating:        fb.Rating,
		Comment:       fb.Comment,
		CreatedAt:     formatTime(fb.CreatedAt),
	}
}

func toMessageResponse(m *model.AdminMessage) *dto.MessageResponse {
	return &dto.MessageResponse{
		ID:        m.MessageID,
		Title:     m.Title,
		Content:   m.Content,
		IsActive:  m.IsActive,
		CreatedAt: formatTime(m.CreatedAt),
	}
}
