package dto

import (
	"time"

	"github.com/hisabapp/hisab/internal/core/domain"
)

// CreateMemberRequest defines the data needed to create a new member.
type CreateMemberRequest struct {
	Name         string `json:"name" binding:"required"`
	Phone        string `json:"phone"`
	Email        string `json:"email" binding:"omitempty,email"`
	Relationship string `json:"relationship"`
}

// UpdateMemberRequest defines the data allowed for updating a member.
// Pointers distinguish zero-value updates from fields not provided.
type UpdateMemberRequest struct {
	Name         *string `json:"name"`
	Phone        *string `json:"phone"`
	Email        *string `json:"email" binding:"omitempty,email"`
	Relationship *string `json:"relationship"`
}

// MemberResponse mirrors domain.Member.
type MemberResponse struct {
	MemberID     string    `json:"memberID"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	Relationship string    `json:"relationship"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ToMemberResponse converts a domain.Member to its response DTO.
func ToMemberResponse(m *domain.Member) MemberResponse {
	return MemberResponse{
		MemberID:     m.MemberID,
		Name:         m.Name,
		Phone:        m.Phone,
		Email:        m.Email,
		Relationship: m.Relationship,
		CreatedAt:    m.CreatedAt,
	}
}

// ToListMemberResponse converts a slice of members.
func ToListMemberResponse(members []domain.Member) []MemberResponse {
	res := make([]MemberResponse, len(members))
	for i := range members {
		res[i] = ToMemberResponse(&members[i])
	}
	return res
}
