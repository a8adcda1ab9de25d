package models

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a person using the backend. Users are identified by the subject
// of the identity provider.
type User struct {
	DefaultModel
	Subject  string `gorm:"uniqueIndex"`
	Email    string `gorm:"index"`
	Name     string
	ImageURL string
}

// Identity is the user information passed in by the identity provider.
type Identity struct {
	Subject  string
	Email    string
	Name     string
	ImageURL string
}

func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Email = strings.TrimSpace(u.Email)
	u.Name = strings.TrimSpace(u.Name)
	u.ImageURL = strings.TrimSpace(u.ImageURL)

	return nil
}

// EnsureUser returns the user for the identity, creating it if it does
// not exist yet. Profile fields that are set in the identity are updated.
func EnsureUser(db *gorm.DB, identity Identity) (User, error) {
	var user User
	err := db.Where(&User{Subject: identity.Subject}).First(&user).Error
	if err != nil && !errors.Is(err, ErrResourceNotFound) {
		return User{}, err
	}

	if errors.Is(err, ErrResourceNotFound) {
		user = User{
			Subject:  identity.Subject,
			Email:    identity.Email,
			Name:     identity.Name,
			ImageURL: identity.ImageURL,
		}

		// Fall back to the email as name so that the user can be found by others
		if user.Name == "" {
			user.Name = identity.Email
		}

		err = db.Create(&user).Error
		if err != nil {
			return User{}, err
		}

		return user, nil
	}

	updates := map[string]any{}
	if identity.Email != "" && identity.Email != user.Email {
		updates["email"] = identity.Email
	}

	if identity.Name != "" && identity.Name != user.Name {
		updates["name"] = identity.Name
	}

	if identity.ImageURL != "" && identity.ImageURL != user.ImageURL {
		updates["image_url"] = identity.ImageURL
	}

	if len(updates) == 0 {
		return user, nil
	}

	err = db.Model(&user).Updates(updates).Error
	if err != nil {
		return User{}, err
	}

	return user, nil
}

// UserByID returns the user with the ID.
func UserByID(db *gorm.DB, id uuid.UUID) (User, error) {
	var user User
	err := db.First(&user, id).Error
	return user, err
}

// SearchUsers finds users by name or email. The searching user and all users
// with any friendship relation to them are excluded.
func SearchUsers(db *gorm.DB, self uuid.UUID, query string, limit int) ([]User, error) {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < 2 {
		return nil, ErrUserSearchTooShort
	}

	like := "%" + strings.ToLower(query) + "%"

	related := db.
		Model(&Friendship{}).
		Select("CASE WHEN user_id = ? THEN friend_id ELSE user_id END", self).
		Where("user_id = ? OR friend_id = ?", self, self)

	var users []User
	err := db.
		Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", like, like).
		Where("id <> ?", self).
		Where("id NOT IN (?)", related).
		Order("name ASC").
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, err
	}

	return users, nil
}

// DeleteUser removes the user, their friendships and participations.
// Trips owned by the user are marked as deleted.
func DeleteUser(db *gorm.DB, user User) error {
	return db.Transaction(func(tx *gorm.DB) error {
		err := tx.Unscoped().Where("user_id = ? OR friend_id = ?", user.ID, user.ID).Delete(&Friendship{}).Error
		if err != nil {
			return err
		}

		err = tx.Unscoped().Where(&Participant{UserID: user.ID}).Delete(&Participant{}).Error
		if err != nil {
			return err
		}

		err = tx.Where(&Trip{OwnerID: user.ID}).Delete(&Trip{}).Error
		if err != nil {
			return err
		}

		// Users are removed for good so that the subject can sign up again
		return tx.Unscoped().Delete(&user).Error
	})
}
