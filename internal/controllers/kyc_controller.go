package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"loan_portal/internal/config"
	"loan_portal/internal/middleware"
	"loan_portal/internal/models"
)

// CreateKycRequirement appends a document requirement to a loan type.
func CreateKycRequirement(c *gin.Context) {
	loan, ok := loadLoanType(c, "CreateKycRequirement: load loan type")
	if !ok {
		return
	}

	var form kycRequirementForm
	if err := c.ShouldBind(&form); err != nil {
		renderInputError(c, err)
		return
	}
	input, err := form.parse()
	if err != nil {
		renderInputError(c, err)
		return
	}

	doc := models.KycRequirement{
		LoanTypeID:   loan.ID,
		DocumentName: input.DocumentName,
		Required:     input.Required,
	}
	if err := config.DB.Create(&doc).Error; err != nil {
		renderInternalError(c, err, "CreateKycRequirement: create requirement")
		return
	}

	middleware.Flash(c, "KYC document added.")
	c.Redirect(http.StatusFound, dashboardPath)
}
