package models

// Restaurant.Rating is a running average over the currently attached
// reviews, maintained incrementally on every review add/update/delete.
type Restaurant struct {
	ID     uint    `json:"id" gorm:"primaryKey"`
	Name   string  `json:"name" gorm:"not null"`
	Rating float64 `json:"rating" gorm:"not null;default:0"`

	Categories []Category `json:"categories" gorm:"many2many:restaurant_categories"`
	Menu       []Dish     `json:"menu" gorm:"foreignKey:RestaurantID"`
	Reviews    []Review   `json:"reviews" gorm:"foreignKey:RestaurantID"`
	Orders     []Order    `json:"orders" gorm:"foreignKey:RestaurantID"`
}

type Dish struct {
	ID           uint    `json:"id" gorm:"primaryKey"`
	Name         string  `json:"name" gorm:"not null"`
	Price        float64 `json:"price" gorm:"not null"`
	SoldOut      bool    `json:"sold_out" gorm:"not null"`
	RestaurantID uint    `json:"-" gorm:"not null"`

	Orders []Order `json:"-" gorm:"many2many:order_dishes"`
}

type Category struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Description string `json:"description" gorm:"not null"`

	Restaurants []Restaurant `json:"-" gorm:"many2many:restaurant_categories"`
}
