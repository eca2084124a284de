package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"loan_portal/internal/config"
	"loan_portal/internal/middleware"
)

// UpdateBank overwrites a bank's profile from the posted form.
// Any signed-in staff member may edit any bank.
func UpdateBank(c *gin.Context) {
	bank, ok := loadBank(c, "UpdateBank: load bank")
	if !ok {
		return
	}

	var form bankForm
	if err := c.ShouldBind(&form); err != nil {
		renderInputError(c, err)
		return
	}
	bank.Name = form.Name
	bank.Address = form.Address
	bank.Logo = form.Logo
	bank.ThemeColor = form.ThemeColor

	if err := config.DB.Save(&bank).Error; err != nil {
		renderInternalError(c, err, "UpdateBank: save bank")
		return
	}

	middleware.Flash(c, "Bank info updated.")
	c.Redirect(http.StatusFound, dashboardPath)
}
