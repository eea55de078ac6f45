package dao

import (
	"time"

	"ding-dong-api/models"
	"ding-dong-api/statemachine"

	"gorm.io/gorm"
)

type OrderPatch struct {
	DriverID  *uint `json:"driver_id"`
	Paid      *bool `json:"paid"`
	Delivered *bool `json:"delivered"`
}

func orderQuery(db *gorm.DB) *gorm.DB {
	return db.Preload("Dishes")
}

func (s *Store) GetOrdersOfUser(userID uint) ([]models.Order, error) {
	var user models.User
	if err := s.DB.First(&user, userID).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	var orders []models.Order
	if err := orderQuery(s.DB).Where("user_id = ?", userID).Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// CreateOrder opens an empty order for a user at a restaurant. Both must
// exist; the driver reference is taken as given.
func (s *Store) CreateOrder(userID, restaurantID, driverID uint) (*models.Order, error) {
	var user models.User
	if err := s.DB.First(&user, userID).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	var restaurant models.Restaurant
	if err := s.DB.First(&restaurant, restaurantID).Error; err != nil {
		return nil, wrapNotFound(err)
	}

	order := models.Order{
		DateTime:     time.Now(),
		UserID:       userID,
		RestaurantID: restaurantID,
		DriverID:     driverID,
	}
	if err := s.DB.Create(&order).Error; err != nil {
		return nil, err
	}
	return s.GetOrder(order.ID)
}

// AddDishToOrder attaches a dish and recomputes the total in the same
// transaction. Attaching an already-attached dish is a no-op.
func (s *Store) AddDishToOrder(orderID, dishID uint) (*models.Order, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var dish models.Dish
		if err := tx.First(&dish, dishID).Error; err != nil {
			return wrapNotFound(err)
		}
		var order models.Order
		if err := tx.First(&order, orderID).Error; err != nil {
			return wrapNotFound(err)
		}

		var attached int64
		if err := tx.Table("order_dishes").
			Where("order_id = ? AND dish_id = ?", orderID, dishID).
			Count(&attached).Error; err != nil {
			return err
		}
		if attached == 0 {
			if err := tx.Model(&order).Association("Dishes").Append(&dish); err != nil {
				return err
			}
		}
		return recomputeOrderTotal(tx, orderID)
	})
	if err != nil {
		return nil, err
	}
	return s.GetOrder(orderID)
}

func (s *Store) GetOrder(id uint) (*models.Order, error) {
	var order models.Order
	if err := orderQuery(s.DB).First(&order, id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &order, nil
}

// UpdateOrder applies a merge-patch unless the order has reached its
// terminal state: a delivered order rejects all further updates.
func (s *Store) UpdateOrder(id uint, patch OrderPatch) (*models.Order, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, id).Error; err != nil {
			return wrapNotFound(err)
		}
		if err := statemachine.CanUpdate(&order); err != nil {
			return err
		}
		if patch.DriverID != nil {
			order.DriverID = *patch.DriverID
		}
		if patch.Paid != nil {
			order.Paid = *patch.Paid
		}
		if patch.Delivered != nil {
			order.Delivered = *patch.Delivered
		}
		return tx.Save(&order).Error
	})
	if err != nil {
		return nil, err
	}
	return s.GetOrder(id)
}

func (s *Store) DeleteOrder(id uint) (*models.Order, error) {
	order, err := s.GetOrder(id)
	if err != nil {
		return nil, err
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM order_dishes WHERE order_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Order{}, id).Error
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}
