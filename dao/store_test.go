package dao

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"ding-dong-api/config"
	"ding-dong-api/models"
	"ding-dong-api/statemachine"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := config.InitDB(config.Config{
		DBPath: filepath.Join(t.TempDir(), "test.db"),
	})
	require.NoError(t, err)
	return NewStore(db)
}

func timeNowPlusDay() time.Time {
	return time.Now().Add(24 * time.Hour)
}

var userSeq int

func seedUser(t *testing.T, s *Store) *models.User {
	t.Helper()
	userSeq++
	user := models.User{
		Name:              "Test User",
		Username:          fmt.Sprintf("user%d", userSeq),
		Email:             fmt.Sprintf("user%d@example.com", userSeq),
		PasswordDigest:    "digest",
		SessionToken:      uuid.NewString(),
		UpdateToken:       uuid.NewString(),
		SessionExpiration: timeNowPlusDay(),
	}
	require.NoError(t, s.DB.Create(&user).Error)
	return &user
}

func seedOrder(t *testing.T, s *Store) (*models.User, *models.Restaurant, *models.Order) {
	t.Helper()
	user := seedUser(t, s)
	restaurant, err := s.CreateRestaurant("Pasta House")
	require.NoError(t, err)
	driver, err := s.CreateDriver("Dan", "ABC-123")
	require.NoError(t, err)
	order, err := s.CreateOrder(user.ID, restaurant.ID, driver.ID)
	require.NoError(t, err)
	return user, restaurant, order
}

func TestOrderTotalTracksDishSet(t *testing.T) {
	s := newTestStore(t)
	_, restaurant, order := seedOrder(t, s)

	carbonara, err := s.CreateDish(restaurant.ID, "Carbonara", 12.50)
	require.NoError(t, err)
	tiramisu, err := s.CreateDish(restaurant.ID, "Tiramisu", 6.25)
	require.NoError(t, err)

	order, err = s.AddDishToOrder(order.ID, carbonara.ID)
	require.NoError(t, err)
	assert.InDelta(t, 12.50, order.Total, 1e-9)

	order, err = s.AddDishToOrder(order.ID, tiramisu.ID)
	require.NoError(t, err)
	assert.InDelta(t, 18.75, order.Total, 1e-9)

	// Re-attaching the same dish is a no-op.
	order, err = s.AddDishToOrder(order.ID, carbonara.ID)
	require.NoError(t, err)
	require.Len(t, order.Dishes, 2)
	assert.InDelta(t, 18.75, order.Total, 1e-9)

	// A price change propagates to the attached order's total.
	newPrice := 10.00
	_, err = s.UpdateDish(carbonara.ID, DishPatch{Price: &newPrice})
	require.NoError(t, err)
	order, err = s.GetOrder(order.ID)
	require.NoError(t, err)
	assert.InDelta(t, 16.25, order.Total, 1e-9)

	// Deleting a dish detaches it and shrinks the total.
	_, err = s.DeleteDish(tiramisu.ID)
	require.NoError(t, err)
	order, err = s.GetOrder(order.ID)
	require.NoError(t, err)
	require.Len(t, order.Dishes, 1)
	assert.InDelta(t, 10.00, order.Total, 1e-9)
}

func TestMissingDishOrOrder(t *testing.T) {
	s := newTestStore(t)
	_, restaurant, order := seedOrder(t, s)

	dish, err := s.CreateDish(restaurant.ID, "Carbonara", 12.50)
	require.NoError(t, err)

	_, err = s.AddDishToOrder(order.ID, 9999)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.AddDishToOrder(9999, dish.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRestaurantRatingLifecycle(t *testing.T) {
	s := newTestStore(t)
	user := seedUser(t, s)
	restaurant, err := s.CreateRestaurant("Pasta House")
	require.NoError(t, err)
	assert.Zero(t, restaurant.Rating)

	four, err := s.CreateReview(restaurant.ID, user.ID, 4, "great")
	require.NoError(t, err)
	restaurant, err = s.GetRestaurant(restaurant.ID)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, restaurant.Rating, 1e-9)

	two, err := s.CreateReview(restaurant.ID, user.ID, 2, "meh")
	require.NoError(t, err)
	restaurant, err = s.GetRestaurant(restaurant.ID)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, restaurant.Rating, 1e-9)

	_, err = s.DeleteReview(four.ID)
	require.NoError(t, err)
	restaurant, err = s.GetRestaurant(restaurant.ID)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, restaurant.Rating, 1e-9)

	// Deleting the last review resets the average instead of dividing by
	// zero.
	_, err = s.DeleteReview(two.ID)
	require.NoError(t, err)
	restaurant, err = s.GetRestaurant(restaurant.ID)
	require.NoError(t, err)
	assert.Zero(t, restaurant.Rating)
}

func TestUpdateReviewMovesRating(t *testing.T) {
	s := newTestStore(t)
	user := seedUser(t, s)
	restaurant, err := s.CreateRestaurant("Pasta House")
	require.NoError(t, err)

	_, err = s.CreateReview(restaurant.ID, user.ID, 4, "great")
	require.NoError(t, err)
	two, err := s.CreateReview(restaurant.ID, user.ID, 2, "meh")
	require.NoError(t, err)

	five := 5
	updated, err := s.UpdateReview(two.ID, ReviewPatch{Rating: &five})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Rating)
	assert.Equal(t, "meh", updated.Content)

	restaurant, err = s.GetRestaurant(restaurant.ID)
	require.NoError(t, err)
	assert.InDelta(t, 4.5, restaurant.Rating, 1e-9)
}

func TestDeliveredOrderRejectsUpdates(t *testing.T) {
	s := newTestStore(t)
	_, _, order := seedOrder(t, s)

	delivered := true
	order, err := s.UpdateOrder(order.ID, OrderPatch{Delivered: &delivered})
	require.NoError(t, err)
	require.True(t, order.Delivered)

	paid := true
	_, err = s.UpdateOrder(order.ID, OrderPatch{Paid: &paid})
	assert.ErrorIs(t, err, statemachine.ErrOrderDelivered)

	// No field changed.
	order, err = s.GetOrder(order.ID)
	require.NoError(t, err)
	assert.False(t, order.Paid)
}

func TestAddToBalance(t *testing.T) {
	s := newTestStore(t)
	user := seedUser(t, s)

	updated, err := s.AddToBalance(user.ID, 25.50)
	require.NoError(t, err)
	assert.InDelta(t, 25.50, updated.Balance, 1e-9)

	updated, err = s.AddToBalance(user.ID, -5.50)
	require.NoError(t, err)
	assert.InDelta(t, 20.00, updated.Balance, 1e-9)

	_, err = s.AddToBalance(9999, 10)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMergePatchKeepsUnspecifiedFields(t *testing.T) {
	s := newTestStore(t)
	restaurant, err := s.CreateRestaurant("Pasta House")
	require.NoError(t, err)
	dish, err := s.CreateDish(restaurant.ID, "Carbonara", 12.50)
	require.NoError(t, err)

	name := "Cacio e Pepe"
	updated, err := s.UpdateDish(dish.ID, DishPatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Cacio e Pepe", updated.Name)
	assert.InDelta(t, 12.50, updated.Price, 1e-9)
	assert.False(t, updated.SoldOut)
}

func TestRestaurantCascadeDelete(t *testing.T) {
	s := newTestStore(t)
	user, restaurant, order := seedOrder(t, s)

	dish, err := s.CreateDish(restaurant.ID, "Carbonara", 12.50)
	require.NoError(t, err)
	_, err = s.AddDishToOrder(order.ID, dish.ID)
	require.NoError(t, err)
	review, err := s.CreateReview(restaurant.ID, user.ID, 4, "great")
	require.NoError(t, err)

	category, err := s.CreateCategory("Italian")
	require.NoError(t, err)
	_, err = s.AddRestaurantToCategory(category.ID, restaurant.ID)
	require.NoError(t, err)

	deleted, err := s.DeleteRestaurant(restaurant.ID)
	require.NoError(t, err)
	assert.Equal(t, restaurant.ID, deleted.ID)
	require.Len(t, deleted.Menu, 1)
	require.Len(t, deleted.Reviews, 1)

	// Dishes and reviews are gone, the category itself survives.
	_, err = s.GetDish(dish.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.GetReview(review.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.GetCategory(category.ID)
	require.NoError(t, err)

	// The order survives, emptied out and recomputed.
	order, err = s.GetOrder(order.ID)
	require.NoError(t, err)
	assert.Empty(t, order.Dishes)
	assert.Zero(t, order.Total)
}

func TestCategoryLinkDedup(t *testing.T) {
	s := newTestStore(t)
	restaurant, err := s.CreateRestaurant("Pasta House")
	require.NoError(t, err)
	category, err := s.CreateCategory("Italian")
	require.NoError(t, err)

	_, err = s.AddRestaurantToCategory(category.ID, restaurant.ID)
	require.NoError(t, err)
	_, err = s.AddRestaurantToCategory(category.ID, restaurant.ID)
	require.NoError(t, err)

	var links int64
	require.NoError(t, s.DB.Table("restaurant_categories").
		Where("category_id = ?", category.ID).Count(&links).Error)
	assert.EqualValues(t, 1, links)

	restaurant, err = s.GetRestaurant(restaurant.ID)
	require.NoError(t, err)
	require.Len(t, restaurant.Categories, 1)
}

func TestDeleteReturnsPriorState(t *testing.T) {
	s := newTestStore(t)
	driver, err := s.CreateDriver("Dan", "ABC-123")
	require.NoError(t, err)

	deleted, err := s.DeleteDriver(driver.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dan", deleted.Name)
	assert.Equal(t, "ABC-123", deleted.LicensePlateNumber)

	_, err = s.GetDriver(driver.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetDriverOfOrder(t *testing.T) {
	s := newTestStore(t)
	_, _, order := seedOrder(t, s)

	driver, err := s.GetDriverOfOrder(order.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dan", driver.Name)

	_, err = s.GetDriverOfOrder(9999)
	assert.ErrorIs(t, err, ErrNotFound)
}
