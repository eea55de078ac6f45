package models

type Review struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	Rating  int    `json:"rating" gorm:"not null"`
	Content string `json:"content" gorm:"not null"`

	UserID       uint `json:"-" gorm:"not null"`
	RestaurantID uint `json:"-" gorm:"not null"`
}
