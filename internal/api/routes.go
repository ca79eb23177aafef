package api

import (
	"github.com/gin-gonic/gin"
	"pahunapath/internal/api/controllers"
	"pahunapath/internal/models/db_models"
	"pahunapath/pkg/middleware"
	"pahunapath/pkg/utils"
)

type Controllers struct {
	Accounts *controllers.AccountController
	Places   *controllers.PlacesController
	Admin    *controllers.AdminController
	Media    *controllers.MediaController
}

func NewRouter(ctrl Controllers, issuer *utils.TokenIssuer, revoked middleware.RevocationChecker) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, ctrl, middleware.JWTAuthMiddleware(issuer, revoked))
	return r
}

func RegisterRoutes(r *gin.Engine, ctrl Controllers, auth gin.HandlerFunc) {
	accounts := r.Group("/accounts")
	accounts.POST("/register", ctrl.Accounts.Register)
	accounts.POST("/login", ctrl.Accounts.Login)
	accounts.POST("/logout", auth, ctrl.Accounts.Logout)
	accounts.GET("/me", auth, ctrl.Accounts.Me)

	places := r.Group("/places")
	places.GET("", ctrl.Places.ListPlaces)
	places.GET("/:id", ctrl.Places.GetPlace)
	places.POST("", auth, ctrl.Places.CreatePlace)
	places.DELETE("/:id", auth, ctrl.Places.DeletePlace)
	places.GET("/:id/reviews", ctrl.Places.ListReviews)
	places.POST("/:id/reviews", auth, ctrl.Places.CreateReview)

	r.DELETE("/reviews/:id", auth, ctrl.Places.DeleteReview)

	admin := r.Group("/admin", auth, middleware.RoleMiddleware(db_models.RoleAdmin))
	admin.GET("/users", ctrl.Admin.ListUsers)
	admin.DELETE("/users/:id", ctrl.Admin.DeleteUser)
	admin.POST("/users/bulk-delete", ctrl.Admin.BulkDeleteUsers)
	admin.GET("/staff", ctrl.Admin.ListStaff)
	admin.POST("/staff", ctrl.Admin.CreateStaff)
	admin.DELETE("/staff/:id", ctrl.Admin.DeleteStaff)
	admin.POST("/staff/bulk-delete", ctrl.Admin.BulkDeleteStaff)
	admin.POST("/pending", ctrl.Admin.StageAction)
	admin.POST("/pending/:token/confirm", ctrl.Admin.ConfirmAction)
	admin.DELETE("/pending/:token", ctrl.Admin.CancelAction)
	admin.GET("/dashboard", ctrl.Admin.GetDashboard)

	r.GET("/media/*path", ctrl.Media.Serve)
}
