package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"loan_portal/internal/config"
	"loan_portal/internal/middleware"
	"loan_portal/internal/models"
)

// Dashboard shows the staff member's bank and, for superadmins, every bank.
// Submitted applications are not listed here or anywhere else.
func Dashboard(c *gin.Context) {
	principal, _ := middleware.CurrentPrincipal(c)

	var user models.User
	if err := config.DB.First(&user, principal.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Session outlived its user.
			middleware.ClearSession(c)
			c.Redirect(http.StatusFound, middleware.LoginPath)
			return
		}
		renderInternalError(c, err, "Dashboard: load user")
		return
	}

	var bank *models.Bank
	if user.BankID != nil {
		var b models.Bank
		err := withCatalog(config.DB).First(&b, *user.BankID).Error
		switch {
		case err == nil:
			bank = &b
		case !errors.Is(err, gorm.ErrRecordNotFound):
			renderInternalError(c, err, "Dashboard: load bank")
			return
		}
	}

	var allBanks []models.Bank
	if user.IsSuperAdmin() {
		if err := withCatalog(config.DB).Order("id").Find(&allBanks).Error; err != nil {
			renderInternalError(c, err, "Dashboard: list banks")
			return
		}
	}

	render(c, http.StatusOK, "admin_dashboard.html", gin.H{
		"User":     user,
		"Bank":     bank,
		"AllBanks": allBanks,
	})
}
