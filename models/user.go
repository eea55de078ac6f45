package models

import "time"

// User is an account holder. Token and digest columns never appear in JSON;
// the auth endpoints return the session triple explicitly.
type User struct {
	ID       uint    `json:"id" gorm:"primaryKey"`
	Name     string  `json:"name" gorm:"not null"`
	Username string  `json:"username" gorm:"not null"`
	Balance  float64 `json:"balance" gorm:"not null"`
	Email    string  `json:"email" gorm:"uniqueIndex;not null"`

	PasswordDigest string `json:"-" gorm:"not null"`

	SessionToken      string    `json:"-" gorm:"uniqueIndex;not null"`
	SessionExpiration time.Time `json:"-" gorm:"not null"`
	UpdateToken       string    `json:"-" gorm:"uniqueIndex;not null"`

	Orders        []Order  `json:"orders" gorm:"foreignKey:UserID"`
	ReviewsPosted []Review `json:"reviews_posted" gorm:"foreignKey:UserID"`
}
