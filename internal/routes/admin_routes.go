package routes

import (
	"loan_portal/internal/controllers"
	"loan_portal/internal/middleware"

	"github.com/gin-gonic/gin"
)

// AdminRoutes only require a signed-in staff member. Role and bank
// affiliation are not checked against the record being changed.
func AdminRoutes(r *gin.Engine) {
	admin := r.Group("/admin")
	admin.Use(middleware.RequireAdmin())
	{
		admin.GET("/dashboard", controllers.Dashboard)
		admin.POST("/bank/:bankId/edit", controllers.UpdateBank)

		admin.POST("/loan-type/add/:bankId", controllers.CreateLoanType)
		admin.POST("/loan-type/:loanId/edit", controllers.UpdateLoanType)
		admin.POST("/loan-type/:loanId/delete", controllers.DeleteLoanType)

		admin.POST("/kyc-doc/add/:loanId", controllers.CreateKycRequirement)
	}
}
