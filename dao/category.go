package dao

import (
	"ding-dong-api/models"

	"gorm.io/gorm"
)

func (s *Store) GetAllCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.DB.Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *Store) CreateCategory(description string) (*models.Category, error) {
	category := models.Category{Description: description}
	if err := s.DB.Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *Store) GetCategory(id uint) (*models.Category, error) {
	var category models.Category
	if err := s.DB.First(&category, id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &category, nil
}

// AddRestaurantToCategory links a restaurant into a category. Linking an
// already-linked restaurant is a no-op.
func (s *Store) AddRestaurantToCategory(categoryID, restaurantID uint) (*models.Category, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var category models.Category
		if err := tx.First(&category, categoryID).Error; err != nil {
			return wrapNotFound(err)
		}
		var restaurant models.Restaurant
		if err := tx.First(&restaurant, restaurantID).Error; err != nil {
			return wrapNotFound(err)
		}

		var linked int64
		if err := tx.Table("restaurant_categories").
			Where("category_id = ? AND restaurant_id = ?", categoryID, restaurantID).
			Count(&linked).Error; err != nil {
			return err
		}
		if linked == 0 {
			if err := tx.Model(&category).Association("Restaurants").Append(&restaurant); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetCategory(categoryID)
}

func (s *Store) DeleteCategory(id uint) (*models.Category, error) {
	category, err := s.GetCategory(id)
	if err != nil {
		return nil, err
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM restaurant_categories WHERE category_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Category{}, id).Error
	})
	if err != nil {
		return nil, err
	}
	return category, nil
}
