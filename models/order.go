package models

import "time"

// Order.Total is derived state: it always equals the sum of prices of the
// currently attached dishes and is recomputed inside the same transaction
// whenever the dish set (or a dish price) changes.
type Order struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	DateTime  time.Time `json:"date_time" gorm:"not null"`
	Total     float64   `json:"total" gorm:"not null"`
	Paid      bool      `json:"paid" gorm:"not null"`
	Delivered bool      `json:"delivered" gorm:"not null"`

	UserID       uint `json:"-" gorm:"not null"`
	RestaurantID uint `json:"-" gorm:"not null"`
	DriverID     uint `json:"-" gorm:"not null"`

	Dishes []Dish `json:"dishes" gorm:"many2many:order_dishes"`
}

type Driver struct {
	ID                 uint   `json:"id" gorm:"primaryKey"`
	Name               string `json:"name" gorm:"not null"`
	LicensePlateNumber string `json:"license_plate_number" gorm:"not null"`

	Orders []Order `json:"orders" gorm:"foreignKey:DriverID"`
}
