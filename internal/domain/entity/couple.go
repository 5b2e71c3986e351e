package entity

import (
	"time"

	"github.com/google/uuid"
)

// Couple links exactly two partner accounts. User1 is the partner who
// created the couple; all sharing ratios are expressed as user1's fraction
// of a shared amount. The engine itself is symmetric — "self" vs "partner"
// is resolved by callers passing the viewer explicitly.
type Couple struct {
	ID        uuid.UUID
	User1ID   uuid.UUID
	User2ID   uuid.UUID
	CreatedAt time.Time
}

// NewCouple creates a new Couple entity with user1 as the creator.
func NewCouple(user1ID, user2ID uuid.UUID) *Couple {
	return &Couple{
		ID:        uuid.New(),
		User1ID:   user1ID,
		User2ID:   user2ID,
		CreatedAt: time.Now().UTC(),
	}
}

// HasMember reports whether the given user is one of the couple's partners.
func (c *Couple) HasMember(userID uuid.UUID) bool {
	return userID == c.User1ID || userID == c.User2ID
}

// PartnerOf returns the other partner's ID. The second return value is
// false when the given user is not a member of the couple.
func (c *Couple) PartnerOf(userID uuid.UUID) (uuid.UUID, bool) {
	switch userID {
	case c.User1ID:
		return c.User2ID, true
	case c.User2ID:
		return c.User1ID, true
	default:
		return uuid.Nil, false
	}
}

// CoupleWithPartners bundles a couple with its resolved member accounts.
type CoupleWithPartners struct {
	Couple *Couple
	User1  *User
	User2  *User
}
