package handlers

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/foodlist/service/internal/middleware"
	"github.com/foodlist/service/internal/service"
	"github.com/foodlist/service/internal/storage"
)

// NewRouter builds the gin engine with all routes and middleware.
func NewRouter(store storage.Store) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Metrics())
	r.Use(cors.Default())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")
	v1.GET("/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	households := NewHouseholdHandler(service.NewHouseholdService(store))
	hg := v1.Group("/households")
	hg.GET("/", households.GetAll)
	hg.GET("/:id", households.GetByID)
	hg.POST("/", households.Add)
	hg.PUT("/:id", households.Update)
	hg.DELETE("/:id", households.Delete)

	users := NewUserHandler(service.NewUserService(store))
	ug := v1.Group("/users")
	ug.GET("/", users.GetAll)
	ug.GET("/:id", users.GetByID)
	ug.POST("/", users.Add)
	ug.PUT("/:id", users.Update)
	ug.DELETE("/:id", users.Delete)

	lists := NewShoppingListHandler(service.NewShoppingListService(store))
	lg := v1.Group("/shopping-lists")
	lg.GET("/", lists.GetAll)
	lg.GET("/:id", lists.GetByID)
	lg.POST("/", lists.Add)
	lg.PUT("/:id", lists.Update)
	lg.DELETE("/:id", lists.Delete)

	items := NewItemHandler(service.NewItemService(store))
	ig := v1.Group("/items")
	ig.GET("/", items.GetAll)
	ig.GET("/:id", items.GetByID)
	ig.POST("/", items.Add)
	ig.PUT("/:id", items.Update)
	ig.DELETE("/:id", items.Delete)

	return r
}
