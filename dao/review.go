package dao

import (
	"ding-dong-api/models"

	"gorm.io/gorm"
)

type ReviewPatch struct {
	Rating  *int    `json:"rating"`
	Content *string `json:"content"`
}

func (s *Store) GetReviewsByUser(userID uint) ([]models.Review, error) {
	var user models.User
	if err := s.DB.First(&user, userID).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	var reviews []models.Review
	if err := s.DB.Where("user_id = ?", userID).Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (s *Store) GetReviewsOfRestaurant(restaurantID uint) ([]models.Review, error) {
	var restaurant models.Restaurant
	if err := s.DB.First(&restaurant, restaurantID).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	var reviews []models.Review
	if err := s.DB.Where("restaurant_id = ?", restaurantID).Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// CreateReview posts a review and folds its rating into the restaurant's
// running average within one transaction.
func (s *Store) CreateReview(restaurantID, userID uint, rating int, content string) (*models.Review, error) {
	var review models.Review
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			return wrapNotFound(err)
		}
		var restaurant models.Restaurant
		if err := tx.First(&restaurant, restaurantID).Error; err != nil {
			return wrapNotFound(err)
		}

		count, err := reviewCount(tx, restaurantID)
		if err != nil {
			return err
		}
		newRating := incorporateRating(restaurant.Rating, count, rating)
		if err := tx.Model(&restaurant).Update("rating", newRating).Error; err != nil {
			return err
		}

		review = models.Review{
			Rating:       rating,
			Content:      content,
			UserID:       userID,
			RestaurantID: restaurantID,
		}
		return tx.Create(&review).Error
	})
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (s *Store) GetReview(id uint) (*models.Review, error) {
	var review models.Review
	if err := s.DB.First(&review, id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &review, nil
}

// UpdateReview applies a merge-patch. A rating change is a removal of the
// old rating followed by incorporation of the new one over the remaining
// count, keeping the restaurant average exact.
func (s *Store) UpdateReview(id uint, patch ReviewPatch) (*models.Review, error) {
	var review models.Review
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&review, id).Error; err != nil {
			return wrapNotFound(err)
		}
		var restaurant models.Restaurant
		if err := tx.First(&restaurant, review.RestaurantID).Error; err != nil {
			return err
		}
		count, err := reviewCount(tx, review.RestaurantID)
		if err != nil {
			return err
		}

		withoutOld := removeRating(restaurant.Rating, count, review.Rating)

		if patch.Rating != nil {
			review.Rating = *patch.Rating
		}
		if patch.Content != nil {
			review.Content = *patch.Content
		}
		if err := tx.Save(&review).Error; err != nil {
			return err
		}

		newRating := incorporateRating(withoutOld, count-1, review.Rating)
		return tx.Model(&restaurant).Update("rating", newRating).Error
	})
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// DeleteReview removes the review and backs its rating out of the
// restaurant average; deleting the last review resets the average to 0.
func (s *Store) DeleteReview(id uint) (*models.Review, error) {
	review, err := s.GetReview(id)
	if err != nil {
		return nil, err
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var restaurant models.Restaurant
		if err := tx.First(&restaurant, review.RestaurantID).Error; err != nil {
			return err
		}
		count, err := reviewCount(tx, review.RestaurantID)
		if err != nil {
			return err
		}
		newRating := removeRating(restaurant.Rating, count, review.Rating)
		if err := tx.Model(&restaurant).Update("rating", newRating).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Review{}, id).Error
	})
	if err != nil {
		return nil, err
	}
	return review, nil
}

func reviewCount(tx *gorm.DB, restaurantID uint) (int, error) {
	var count int64
	err := tx.Model(&models.Review{}).
		Where("restaurant_id = ?", restaurantID).Count(&count).Error
	return int(count), err
}
