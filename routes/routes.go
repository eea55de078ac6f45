package routes

import (
	"ding-dong-api/handlers"
	"ding-dong-api/middleware"
	"ding-dong-api/session"

	"github.com/gin-gonic/gin"
)

// SetupRoutes registers the full API surface. Paths keep their trailing
// slashes; gin redirects the slash-less form.
func SetupRoutes(r *gin.Engine, h *handlers.Handler, sessions *session.Manager) {
	requireSession := middleware.RequireSession(sessions)

	// ── Auth & sessions ────────────────────────────────────────────
	r.POST("/register/", h.Register)
	r.POST("/login/", h.Login)
	r.POST("/session/", h.RenewSession) // bearer header carries the update token
	r.GET("/secret/", requireSession, h.Secret)

	// ── Users ──────────────────────────────────────────────────────
	r.GET("/users/", h.ListUsers)
	r.GET("/user/:id/", h.GetUser)
	r.POST("/user/:id/balance/", requireSession, h.AddToBalance)
	r.POST("/user/:id/", requireSession, h.UpdateUser)
	r.DELETE("/user/:id/", requireSession, h.DeleteUser)

	// ── Restaurants ────────────────────────────────────────────────
	r.GET("/restaurants/", h.ListRestaurants)
	r.POST("/restaurant/", h.CreateRestaurant)
	r.GET("/restaurant/:id/", h.GetRestaurant)
	r.POST("/restaurant/:id/", h.UpdateRestaurant)
	r.DELETE("/restaurant/:id/", h.DeleteRestaurant)

	// ── Dishes ─────────────────────────────────────────────────────
	r.GET("/dishes/", h.ListDishes)
	r.POST("/restaurants/:id/dish/", h.CreateDish)
	r.GET("/dish/:id/", h.GetDish)
	r.POST("/dish/:id/", h.UpdateDish)
	r.DELETE("/dish/:id/", h.DeleteDish)

	// ── Orders ─────────────────────────────────────────────────────
	r.GET("/user/:id/orders/", h.GetOrdersOfUser)
	r.POST("/user/:id/restaurant/:rid/order/", h.CreateOrder)
	r.POST("/order/:id/add/", h.AddDishToOrder)
	r.GET("/order/:id/", h.GetOrder)
	r.POST("/order/:id/", h.UpdateOrder)
	r.DELETE("/order/:id/", h.DeleteOrder)

	// ── Drivers ────────────────────────────────────────────────────
	r.GET("/driver/:id/", h.GetDriver)
	r.GET("/order/:id/driver/", h.GetDriverOfOrder)
	r.POST("/driver/", h.CreateDriver)
	r.DELETE("/driver/:id/", h.DeleteDriver)

	// ── Reviews ────────────────────────────────────────────────────
	r.GET("/user/:id/reviews/", h.GetReviewsByUser)
	r.GET("/restaurant/:id/reviews/", h.GetReviewsOfRestaurant)
	r.POST("/restaurant/:id/review/", h.CreateReview)
	r.GET("/review/:id/", h.GetReview)
	r.POST("/review/:id/", h.UpdateReview)
	r.DELETE("/review/:id/", h.DeleteReview)

	// ── Categories ─────────────────────────────────────────────────
	r.GET("/categories/", h.ListCategories)
	r.POST("/category/", h.CreateCategory)
	r.GET("/category/:id/", h.GetCategory)
	r.POST("/category/:id/add/", h.AddRestaurantToCategory)
	r.DELETE("/category/:id/", h.DeleteCategory)
}
