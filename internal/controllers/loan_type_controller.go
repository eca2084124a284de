package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"loan_portal/internal/config"
	"loan_portal/internal/middleware"
	"loan_portal/internal/models"
)

const dashboardPath = "/admin/dashboard"

func loadLoanType(c *gin.Context, op string) (models.LoanType, bool) {
	var loan models.LoanType
	id, ok := paramID(c, "loanId", "Loan type")
	if !ok {
		return loan, false
	}
	if err := config.DB.First(&loan, id).Error; err != nil {
		renderLookupError(c, err, "Loan type", op)
		return loan, false
	}
	return loan, true
}

// CreateLoanType adds a loan product to the bank in the path.
func CreateLoanType(c *gin.Context) {
	bank, ok := loadBank(c, "CreateLoanType: load bank")
	if !ok {
		return
	}

	var form loanTypeForm
	if err := c.ShouldBind(&form); err != nil {
		renderInputError(c, err)
		return
	}
	input, err := form.parse()
	if err != nil {
		renderInputError(c, err)
		return
	}

	loan := models.LoanType{
		BankID:       bank.ID,
		Name:         input.Name,
		TermMonths:   input.TermMonths,
		MinAmount:    input.MinAmount,
		MaxAmount:    input.MaxAmount,
		InterestRate: input.InterestRate,
	}
	if err := config.DB.Create(&loan).Error; err != nil {
		renderInternalError(c, err, "CreateLoanType: create loan type")
		return
	}

	middleware.Flash(c, "Loan type added.")
	c.Redirect(http.StatusFound, dashboardPath)
}

// UpdateLoanType overwrites term, bounds and rate. The name is kept.
func UpdateLoanType(c *gin.Context) {
	loan, ok := loadLoanType(c, "UpdateLoanType: load loan type")
	if !ok {
		return
	}

	var form loanTypeForm
	if err := c.ShouldBind(&form); err != nil {
		renderInputError(c, err)
		return
	}
	input, err := form.parse()
	if err != nil {
		renderInputError(c, err)
		return
	}
	loan.TermMonths = input.TermMonths
	loan.MinAmount = input.MinAmount
	loan.MaxAmount = input.MaxAmount
	loan.InterestRate = input.InterestRate

	if err := config.DB.Save(&loan).Error; err != nil {
		renderInternalError(c, err, "UpdateLoanType: save loan type")
		return
	}

	middleware.Flash(c, "Loan type updated.")
	c.Redirect(http.StatusFound, dashboardPath)
}

// DeleteLoanType removes a loan type with its KYC requirements. Applications
// that chose it are kept and lose their loan type reference.
func DeleteLoanType(c *gin.Context) {
	loan, ok := loadLoanType(c, "DeleteLoanType: load loan type")
	if !ok {
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("loan_type_id = ?", loan.ID).Delete(&models.KycRequirement{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Application{}).
			Where("loan_type_id = ?", loan.ID).
			Update("loan_type_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&loan).Error
	})
	if err != nil {
		renderInternalError(c, err, "DeleteLoanType: delete loan type")
		return
	}

	middleware.Flash(c, "Loan type deleted.")
	c.Redirect(http.StatusFound, dashboardPath)
}
