package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FriendshipStatus string

const (
	FriendshipPending  FriendshipStatus = "pending"
	FriendshipAccepted FriendshipStatus = "accepted"
	FriendshipBlocked  FriendshipStatus = "blocked"
)

// Friendship is a relation between two users. UserID is the user that sent
// the request or blocked the other user, FriendID the other side.
type Friendship struct {
	DefaultModel
	UserID   uuid.UUID        `gorm:"uniqueIndex:friendship_user_friend"`
	FriendID uuid.UUID        `gorm:"uniqueIndex:friendship_user_friend;index"`
	Status   FriendshipStatus `gorm:"default:pending"`
}

// Friend is a user in a friendship relation with the requesting user.
type Friend struct {
	FriendshipID uuid.UUID
	User         User
	Since        time.Time
}

// friendshipBetween returns the relation between two users in either direction.
func friendshipBetween(db *gorm.DB, a, b uuid.UUID) (Friendship, bool, error) {
	var friendship Friendship
	err := db.
		Where("(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)", a, b, b, a).
		Limit(1).
		Find(&friendship).Error
	if err != nil {
		return Friendship{}, false, err
	}

	return friendship, friendship.ID != uuid.Nil, nil
}

// AreFriends reports if the two users have an accepted friendship.
func AreFriends(db *gorm.DB, a, b uuid.UUID) (bool, error) {
	friendship, ok, err := friendshipBetween(db, a, b)
	if err != nil {
		return false, err
	}

	return ok && friendship.Status == FriendshipAccepted, nil
}

// SendFriendRequest creates a pending friend request from one user to another.
func SendFriendRequest(db *gorm.DB, from, to uuid.UUID) (Friendship, error) {
	if from == to {
		return Friendship{}, ErrFriendshipSelf
	}

	if _, err := UserByID(db, to); err != nil {
		return Friendship{}, err
	}

	_, exists, err := friendshipBetween(db, from, to)
	if err != nil {
		return Friendship{}, err
	}

	if exists {
		return Friendship{}, ErrFriendshipExists
	}

	friendship := Friendship{
		UserID:   from,
		FriendID: to,
		Status:   FriendshipPending,
	}

	err = db.Create(&friendship).Error
	return friendship, err
}

// FriendshipForUser returns the friendship with the ID if the user is
// one of its sides.
func FriendshipForUser(db *gorm.DB, id, userID uuid.UUID) (Friendship, error) {
	var friendship Friendship
	err := db.First(&friendship, id).Error
	if err != nil {
		return Friendship{}, err
	}

	if friendship.UserID != userID && friendship.FriendID != userID {
		return Friendship{}, ErrForbidden
	}

	return friendship, nil
}

// Accept accepts a pending friend request. Only the recipient can accept.
func (f *Friendship) Accept(db *gorm.DB, userID uuid.UUID) error {
	if f.FriendID != userID {
		return ErrForbidden
	}

	if f.Status != FriendshipPending {
		return ErrFriendshipNotPending
	}

	err := db.Model(f).Update("status", FriendshipAccepted).Error
	if err != nil {
		return err
	}

	f.Status = FriendshipAccepted
	return nil
}

// Reject removes a friend request. Both the sender and the recipient can
// do this, for the sender it cancels the request.
func (f Friendship) Reject(db *gorm.DB, userID uuid.UUID) error {
	if f.UserID != userID && f.FriendID != userID {
		return ErrForbidden
	}

	return db.Unscoped().Delete(&f).Error
}

// RemoveFriend removes the friendship between two users, regardless of
// who sent the request.
func RemoveFriend(db *gorm.DB, userID, friendID uuid.UUID) error {
	friendship, ok, err := friendshipBetween(db, userID, friendID)
	if err != nil {
		return err
	}

	if !ok {
		return fmt.Errorf("%w friendship matching your query", ErrResourceNotFound)
	}

	return db.Unscoped().Delete(&friendship).Error
}

// BlockUser blocks another user. An existing relation is converted so that
// the blocking user is stored as UserID.
func BlockUser(db *gorm.DB, userID, blockedID uuid.UUID) (Friendship, error) {
	if userID == blockedID {
		return Friendship{}, ErrFriendshipSelf
	}

	friendship, ok, err := friendshipBetween(db, userID, blockedID)
	if err != nil {
		return Friendship{}, err
	}

	if !ok {
		friendship = Friendship{
			UserID:   userID,
			FriendID: blockedID,
			Status:   FriendshipBlocked,
		}

		err = db.Create(&friendship).Error
		return friendship, err
	}

	err = db.Model(&friendship).Updates(map[string]any{
		"user_id":   userID,
		"friend_id": blockedID,
		"status":    FriendshipBlocked,
	}).Error
	if err != nil {
		return Friendship{}, err
	}

	friendship.UserID = userID
	friendship.FriendID = blockedID
	friendship.Status = FriendshipBlocked
	return friendship, nil
}

// Friends returns all users with an accepted friendship with the user.
func Friends(db *gorm.DB, userID uuid.UUID) ([]Friend, error) {
	var friendships []Friendship
	err := db.
		Where("(user_id = ? OR friend_id = ?) AND status = ?", userID, userID, FriendshipAccepted).
		Order("updated_at DESC").
		Find(&friendships).Error
	if err != nil {
		return nil, err
	}

	return friendsFor(db, friendships, func(f Friendship) uuid.UUID {
		if f.UserID == userID {
			return f.FriendID
		}
		return f.UserID
	})
}

// IncomingRequests returns the pending friend requests sent to the user.
func IncomingRequests(db *gorm.DB, userID uuid.UUID) ([]Friend, error) {
	var friendships []Friendship
	err := db.
		Where(&Friendship{FriendID: userID, Status: FriendshipPending}).
		Order("created_at DESC").
		Find(&friendships).Error
	if err != nil {
		return nil, err
	}

	return friendsFor(db, friendships, func(f Friendship) uuid.UUID { return f.UserID })
}

// SentRequests returns the pending friend requests the user sent.
func SentRequests(db *gorm.DB, userID uuid.UUID) ([]Friend, error) {
	var friendships []Friendship
	err := db.
		Where(&Friendship{UserID: userID, Status: FriendshipPending}).
		Order("created_at DESC").
		Find(&friendships).Error
	if err != nil {
		return nil, err
	}

	return friendsFor(db, friendships, func(f Friendship) uuid.UUID { return f.FriendID })
}

// friendsFor resolves the other side of each friendship. Friendships
// pointing to users that do not exist anymore are skipped.
func friendsFor(db *gorm.DB, friendships []Friendship, other func(Friendship) uuid.UUID) ([]Friend, error) {
	friends := make([]Friend, 0, len(friendships))
	for _, f := range friendships {
		var user User
		err := db.Where("id = ?", other(f)).Limit(1).Find(&user).Error
		if err != nil {
			return nil, err
		}

		if user.ID == uuid.Nil {
			continue
		}

		friends = append(friends, Friend{
			FriendshipID: f.ID,
			User:         user,
			Since:        f.UpdatedAt,
		})
	}

	return friends, nil
}
