package dao

import (
	"ding-dong-api/models"

	"gorm.io/gorm"
)

// UserPatch carries the fields a user update may change. Nil fields keep
// their prior values (merge-patch semantics).
type UserPatch struct {
	Username       *string  `json:"username"`
	Balance        *float64 `json:"balance"`
	PasswordDigest *string  `json:"password_digest"`
}

func userQuery(db *gorm.DB) *gorm.DB {
	return db.Preload("Orders.Dishes").Preload("ReviewsPosted")
}

func (s *Store) GetAllUsers() ([]models.User, error) {
	var users []models.User
	if err := userQuery(s.DB).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Store) GetUser(id uint) (*models.User, error) {
	var user models.User
	if err := userQuery(s.DB).First(&user, id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &user, nil
}

// AddToBalance adds amount to the user's balance and returns the updated
// user. Negative amounts subtract.
func (s *Store) AddToBalance(id uint, amount float64) (*models.User, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, id).Error; err != nil {
			return wrapNotFound(err)
		}
		return tx.Model(&user).Update("balance", user.Balance+amount).Error
	})
	if err != nil {
		return nil, err
	}
	return s.GetUser(id)
}

func (s *Store) UpdateUser(id uint, patch UserPatch) (*models.User, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, id).Error; err != nil {
			return wrapNotFound(err)
		}
		if patch.Username != nil {
			user.Username = *patch.Username
		}
		if patch.Balance != nil {
			user.Balance = *patch.Balance
		}
		if patch.PasswordDigest != nil {
			user.PasswordDigest = *patch.PasswordDigest
		}
		return tx.Save(&user).Error
	})
	if err != nil {
		return nil, err
	}
	return s.GetUser(id)
}

// DeleteUser removes the user row and returns its prior state. Orders and
// reviews posted by the user are left in place (no cascade).
func (s *Store) DeleteUser(id uint) (*models.User, error) {
	user, err := s.GetUser(id)
	if err != nil {
		return nil, err
	}
	if err := s.DB.Delete(&models.User{}, id).Error; err != nil {
		return nil, err
	}
	return user, nil
}
