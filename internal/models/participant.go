package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleOwner  Role = "owner"
	RoleMember Role = "member"
)

type ParticipantStatus string

const (
	StatusPending  ParticipantStatus = "pending"
	StatusAccepted ParticipantStatus = "accepted"
	StatusDeclined ParticipantStatus = "declined"
)

// Participant is a user taking part in a trip.
type Participant struct {
	DefaultModel
	Trip   Trip              `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	TripID uuid.UUID         `gorm:"uniqueIndex:participant_trip_user"`
	UserID uuid.UUID         `gorm:"uniqueIndex:participant_trip_user"`
	Role   Role              `gorm:"default:member"`
	Status ParticipantStatus `gorm:"default:pending"`
}

// ParticipantWithUser is a participant with the profile of the user.
type ParticipantWithUser struct {
	Participant
	Name     string
	Email    string
	ImageURL string
}

// Participants returns all participants of the trip with their user profiles.
func (t Trip) Participants(db *gorm.DB) ([]ParticipantWithUser, error) {
	var participants []Participant
	err := db.Where(&Participant{TripID: t.ID}).Order("created_at ASC").Find(&participants).Error
	if err != nil {
		return nil, err
	}

	result := make([]ParticipantWithUser, 0, len(participants))
	for _, p := range participants {
		enriched := ParticipantWithUser{Participant: p}

		var user User
		err := db.Where("id = ?", p.UserID).Limit(1).Find(&user).Error
		if err != nil {
			return nil, err
		}

		enriched.Name = user.Name
		enriched.Email = user.Email
		enriched.ImageURL = user.ImageURL
		result = append(result, enriched)
	}

	return result, nil
}

// Invite adds a user to the trip with a pending invitation. Only users that
// are accepted friends of the inviting user can be invited.
func (t Trip) Invite(db *gorm.DB, inviter, invitee uuid.UUID) (Participant, error) {
	if _, err := UserByID(db, invitee); err != nil {
		return Participant{}, err
	}

	friends, err := AreFriends(db, inviter, invitee)
	if err != nil {
		return Participant{}, err
	}

	if !friends {
		return Participant{}, ErrParticipantNotFriend
	}

	participant := Participant{
		TripID: t.ID,
		UserID: invitee,
		Role:   RoleMember,
		Status: StatusPending,
	}

	err = db.Create(&participant).Error
	return participant, err
}

// Respond accepts or declines a pending invitation.
func (p *Participant) Respond(db *gorm.DB, status ParticipantStatus) error {
	if status != StatusAccepted && status != StatusDeclined {
		return ErrParticipantStatus
	}

	if p.Status != StatusPending {
		return ErrParticipantNotPending
	}

	err := db.Model(p).Update("status", status).Error
	if err != nil {
		return err
	}

	p.Status = status
	return nil
}

// Remove removes the participant from the trip. The owner cannot be removed.
func (p Participant) Remove(db *gorm.DB) error {
	if p.Role == RoleOwner {
		return ErrParticipantOwnerRemove
	}

	return db.Unscoped().Delete(&p).Error
}

// Invitation is a pending invitation of a user to a trip.
type Invitation struct {
	Participant
	TripTitle string
	OwnerID   uuid.UUID
}

// Invitations returns the pending invitations of the user to trips that
// have not been deleted.
func Invitations(db *gorm.DB, userID uuid.UUID) ([]Invitation, error) {
	var participants []Participant
	err := db.
		Where(&Participant{UserID: userID, Status: StatusPending}).
		Order("created_at DESC").
		Find(&participants).Error
	if err != nil {
		return nil, err
	}

	invitations := make([]Invitation, 0, len(participants))
	for _, p := range participants {
		var trip Trip
		err := db.Where("id = ?", p.TripID).Limit(1).Find(&trip).Error
		if err != nil {
			return nil, err
		}

		if trip.ID == uuid.Nil {
			continue
		}

		invitations = append(invitations, Invitation{
			Participant: p,
			TripTitle:   trip.Title,
			OwnerID:     trip.OwnerID,
		})
	}

	return invitations, nil
}
