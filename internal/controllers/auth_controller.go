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

const invalidCredentials = "Invalid credentials."

// ShowLogin renders the staff login page.
func ShowLogin(c *gin.Context) {
	render(c, http.StatusOK, "admin_login.html", nil)
}

// LoginUser checks email and password and starts a staff session.
// Unknown email and wrong password get the same message.
func LoginUser(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusOK, "admin_login.html", nil, invalidCredentials)
		return
	}

	var user models.User
	err := config.DB.Where("email = ?", form.Email).First(&user).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		renderInternalError(c, err, "LoginUser: load user")
		return
	}
	if err != nil || !user.CheckPassword(form.Password) {
		middleware.RequestLogger(c).WithField("email", form.Email).Info("LoginUser: invalid credentials")
		render(c, http.StatusOK, "admin_login.html", gin.H{"Email": form.Email}, invalidCredentials)
		return
	}

	if err := middleware.IssueSession(c, user); err != nil {
		renderInternalError(c, err, "LoginUser: issue session")
		return
	}
	middleware.RequestLogger(c).WithField("user_id", user.ID).Info("LoginUser: staff logged in")
	middleware.Flash(c, "Login successful.")
	c.Redirect(http.StatusFound, dashboardPath)
}

// LogoutUser ends the session whether or not one exists.
func LogoutUser(c *gin.Context) {
	middleware.ClearSession(c)
	middleware.Flash(c, "Logged out.")
	c.Redirect(http.StatusFound, middleware.LoginPath)
}
