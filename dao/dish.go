package dao

import (
	"ding-dong-api/models"

	"gorm.io/gorm"
)

type DishPatch struct {
	Name    *string  `json:"name"`
	Price   *float64 `json:"price"`
	SoldOut *bool    `json:"sold_out"`
}

func (s *Store) GetAllDishes() ([]models.Dish, error) {
	var dishes []models.Dish
	if err := s.DB.Find(&dishes).Error; err != nil {
		return nil, err
	}
	return dishes, nil
}

// CreateDish adds a dish to a restaurant's menu. The restaurant must exist.
func (s *Store) CreateDish(restaurantID uint, name string, price float64) (*models.Dish, error) {
	var restaurant models.Restaurant
	if err := s.DB.First(&restaurant, restaurantID).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	dish := models.Dish{
		Name:         name,
		Price:        price,
		SoldOut:      false,
		RestaurantID: restaurantID,
	}
	if err := s.DB.Create(&dish).Error; err != nil {
		return nil, err
	}
	return &dish, nil
}

func (s *Store) GetDish(id uint) (*models.Dish, error) {
	var dish models.Dish
	if err := s.DB.First(&dish, id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &dish, nil
}

// UpdateDish applies a merge-patch. A price change invalidates the totals
// of every order the dish is attached to, so those are recomputed in the
// same transaction.
func (s *Store) UpdateDish(id uint, patch DishPatch) (*models.Dish, error) {
	var dish models.Dish
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&dish, id).Error; err != nil {
			return wrapNotFound(err)
		}
		priceChanged := patch.Price != nil && *patch.Price != dish.Price
		if patch.Name != nil {
			dish.Name = *patch.Name
		}
		if patch.Price != nil {
			dish.Price = *patch.Price
		}
		if patch.SoldOut != nil {
			dish.SoldOut = *patch.SoldOut
		}
		if err := tx.Save(&dish).Error; err != nil {
			return err
		}
		if priceChanged {
			return recomputeTotalsForDish(tx, dish.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dish, nil
}

// DeleteDish removes the dish, detaches it from every order and refreshes
// the affected order totals.
func (s *Store) DeleteDish(id uint) (*models.Dish, error) {
	dish, err := s.GetDish(id)
	if err != nil {
		return nil, err
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		orderIDs, err := orderIDsForDish(tx, id)
		if err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM order_dishes WHERE dish_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Dish{}, id).Error; err != nil {
			return err
		}
		for _, oid := range orderIDs {
			if err := recomputeOrderTotal(tx, oid); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dish, nil
}
