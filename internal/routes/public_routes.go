package routes

import (
	"loan_portal/internal/controllers"

	"github.com/gin-gonic/gin"
)

func PublicRoutes(r *gin.Engine) {
	r.GET("/", controllers.Home)

	bank := r.Group("/bank/:bankId")
	{
		bank.GET("/apply", controllers.ShowApplicationForm)
		bank.POST("/apply", controllers.SubmitApplication)
	}
}
