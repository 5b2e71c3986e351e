// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/duobudget/backend/internal/domain/entity"
)

// CreateCoupleRequest represents the request body for linking two partners.
type CreateCoupleRequest struct {
	PartnerEmail string `json:"partner_email" binding:"required,email"`
}

// CoupleResponse represents a couple in API responses.
type CoupleResponse struct {
	ID        string    `json:"id"`
	User1ID   string    `json:"user1_id"`
	User2ID   string    `json:"user2_id"`
	CreatedAt time.Time `json:"created_at"`
}

// CoupleWithPartnersResponse represents a couple with both member accounts.
type CoupleWithPartnersResponse struct {
	Couple CoupleResponse `json:"couple"`
	User1  UserResponse   `json:"user1"`
	User2  UserResponse   `json:"user2"`
}

// ToCoupleResponse converts a domain Couple entity to a CoupleResponse DTO.
func ToCoupleResponse(couple *entity.Couple) CoupleResponse {
	return CoupleResponse{
		ID:        couple.ID.String(),
		User1ID:   couple.User1ID.String(),
		User2ID:   couple.User2ID.String(),
		CreatedAt: couple.CreatedAt,
	}
}

// ToCoupleWithPartnersResponse converts a CoupleWithPartners to its DTO.
func ToCoupleWithPartnersResponse(cwp *entity.CoupleWithPartners) CoupleWithPartnersResponse {
	return CoupleWithPartnersResponse{
		Couple: ToCoupleResponse(cwp.Couple),
		User1:  ToUserResponse(cwp.User1),
		User2:  ToUserResponse(cwp.User2),
	}
}
