package models

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TripAccess is a trip together with the role of the user accessing it.
type TripAccess struct {
	Trip   Trip
	UserID uuid.UUID
	Role   Role
}

// AccessTrip returns the trip if the user can read it. Trips can be read by
// their owner and by participants that accepted the invitation.
//
// For all other users, the trip does not exist.
func AccessTrip(db *gorm.DB, id, userID uuid.UUID) (TripAccess, error) {
	var trip Trip
	err := db.First(&trip, id).Error
	if err != nil {
		return TripAccess{}, err
	}

	if trip.OwnerID == userID {
		return TripAccess{Trip: trip, UserID: userID, Role: RoleOwner}, nil
	}

	var participant Participant
	err = db.
		Where(&Participant{TripID: trip.ID, UserID: userID, Status: StatusAccepted}).
		Limit(1).
		Find(&participant).Error
	if err != nil {
		return TripAccess{}, err
	}

	if participant.ID == uuid.Nil {
		return TripAccess{}, fmt.Errorf("%w trip matching your query", ErrResourceNotFound)
	}

	return TripAccess{Trip: trip, UserID: userID, Role: participant.Role}, nil
}

// IsOwner reports if the user owns the trip.
func (a TripAccess) IsOwner() bool {
	return a.Role == RoleOwner
}

// RequireOwner returns ErrForbidden if the user does not own the trip.
func (a TripAccess) RequireOwner() error {
	if !a.IsOwner() {
		return ErrForbidden
	}
	return nil
}

// RequireCreatorOrOwner returns ErrForbidden unless the user created the
// resource or owns the trip.
func (a TripAccess) RequireCreatorOrOwner(creator uuid.UUID) error {
	if a.UserID == creator || a.IsOwner() {
		return nil
	}
	return ErrForbidden
}
