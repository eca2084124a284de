package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const welcomeText = "Welcome to the Loan & KYC App. Please choose a bank or login as Admin."

// Home answers the root path with plain text.
func Home(c *gin.Context) {
	c.String(http.StatusOK, welcomeText)
}
