package dao

import (
	"ding-dong-api/models"

	"gorm.io/gorm"
)

type RestaurantPatch struct {
	Name *string `json:"name"`
}

func restaurantQuery(db *gorm.DB) *gorm.DB {
	return db.Preload("Categories").Preload("Menu").
		Preload("Reviews").Preload("Orders.Dishes")
}

func (s *Store) GetAllRestaurants() ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	if err := restaurantQuery(s.DB).Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (s *Store) CreateRestaurant(name string) (*models.Restaurant, error) {
	restaurant := models.Restaurant{Name: name}
	if err := s.DB.Create(&restaurant).Error; err != nil {
		return nil, err
	}
	return s.GetRestaurant(restaurant.ID)
}

func (s *Store) GetRestaurant(id uint) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := restaurantQuery(s.DB).First(&restaurant, id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &restaurant, nil
}

func (s *Store) UpdateRestaurant(id uint, patch RestaurantPatch) (*models.Restaurant, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var restaurant models.Restaurant
		if err := tx.First(&restaurant, id).Error; err != nil {
			return wrapNotFound(err)
		}
		if patch.Name != nil {
			restaurant.Name = *patch.Name
		}
		return tx.Save(&restaurant).Error
	})
	if err != nil {
		return nil, err
	}
	return s.GetRestaurant(id)
}

// DeleteRestaurant removes the restaurant and cascades to its dishes and
// reviews. Orders survive with their restaurant reference dangling, but
// their totals are recomputed once the deleted dishes are detached.
// Category links are dropped from the join table only.
func (s *Store) DeleteRestaurant(id uint) (*models.Restaurant, error) {
	restaurant, err := s.GetRestaurant(id)
	if err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("restaurant_id = ?", id).Delete(&models.Review{}).Error; err != nil {
			return err
		}

		// Detach each menu dish from every order before deleting it, and
		// remember which orders need their totals refreshed.
		affected := map[uint]bool{}
		for _, dish := range restaurant.Menu {
			orderIDs, err := orderIDsForDish(tx, dish.ID)
			if err != nil {
				return err
			}
			for _, oid := range orderIDs {
				affected[oid] = true
			}
			if err := tx.Exec("DELETE FROM order_dishes WHERE dish_id = ?", dish.ID).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("restaurant_id = ?", id).Delete(&models.Dish{}).Error; err != nil {
			return err
		}
		for oid := range affected {
			if err := recomputeOrderTotal(tx, oid); err != nil {
				return err
			}
		}

		if err := tx.Exec("DELETE FROM restaurant_categories WHERE restaurant_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Restaurant{}, id).Error
	})
	if err != nil {
		return nil, err
	}
	return restaurant, nil
}
