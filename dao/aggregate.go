package dao

import (
	"ding-dong-api/models"

	"gorm.io/gorm"
)

// orderTotal sums the prices of the currently attached dishes.
func orderTotal(dishes []models.Dish) float64 {
	var total float64
	for _, d := range dishes {
		total += d.Price
	}
	return total
}

// incorporateRating folds one new rating into a running average over
// count existing ratings.
func incorporateRating(avg float64, count int, rating int) float64 {
	return (avg*float64(count) + float64(rating)) / float64(count+1)
}

// removeRating backs one rating out of a running average. count is the
// number of ratings before removal. Removing the last rating resets the
// average to 0 instead of dividing by zero.
func removeRating(avg float64, count int, rating int) float64 {
	if count <= 1 {
		return 0
	}
	return (avg*float64(count) - float64(rating)) / float64(count-1)
}

// recomputeOrderTotal rereads the order's dish set and writes the total.
func recomputeOrderTotal(tx *gorm.DB, orderID uint) error {
	var order models.Order
	if err := tx.First(&order, orderID).Error; err != nil {
		return wrapNotFound(err)
	}
	var dishes []models.Dish
	if err := tx.Model(&order).Association("Dishes").Find(&dishes); err != nil {
		return err
	}
	return tx.Model(&order).Update("total", orderTotal(dishes)).Error
}

// recomputeTotalsForDish refreshes every order the dish is attached to.
// Called when a dish price changes or a dish is about to be detached
// everywhere (in the latter case after the join rows are gone).
func recomputeTotalsForDish(tx *gorm.DB, dishID uint) error {
	orderIDs, err := orderIDsForDish(tx, dishID)
	if err != nil {
		return err
	}
	for _, id := range orderIDs {
		if err := recomputeOrderTotal(tx, id); err != nil {
			return err
		}
	}
	return nil
}

func orderIDsForDish(tx *gorm.DB, dishID uint) ([]uint, error) {
	var orderIDs []uint
	err := tx.Table("order_dishes").Where("dish_id = ?", dishID).
		Pluck("order_id", &orderIDs).Error
	return orderIDs, err
}
