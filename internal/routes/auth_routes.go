package routes

import (
	"loan_portal/internal/controllers"

	"github.com/gin-gonic/gin"
)

func AuthRoutes(r *gin.Engine) {
	auth := r.Group("/admin")
	{
		auth.GET("/login", controllers.ShowLogin)
		auth.POST("/login", controllers.LoginUser)
		auth.GET("/logout", controllers.LogoutUser)
	}
}
