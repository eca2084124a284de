package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"loan_portal/internal/middleware"
)

// render executes a page template with the pending flash messages.
// extra messages are shown on this page only.
func render(c *gin.Context, status int, name string, data gin.H, extra ...string) {
	if data == nil {
		data = gin.H{}
	}
	if _, ok := data["PageTitle"]; !ok {
		data["PageTitle"] = "Loan & KYC Portal"
	}
	data["Flashes"] = append(middleware.Flashes(c), extra...)
	if p, ok := middleware.CurrentPrincipal(c); ok {
		data["Principal"] = p
	}
	c.HTML(status, name, data)
}

func renderError(c *gin.Context, status int, title string, details ValidationErrors) {
	render(c, status, "error.html", gin.H{
		"Status":  status,
		"Title":   title,
		"Details": details,
	})
}

// renderInputError answers 400 for a form that failed to parse.
func renderInputError(c *gin.Context, err error) {
	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		verrs = ValidationErrors{"form": err.Error()}
	}
	middleware.RequestLogger(c).WithField("fields", map[string]string(verrs)).Info("rejected malformed form input")
	renderError(c, http.StatusBadRequest, "Invalid input", verrs)
}

func renderNotFound(c *gin.Context, what string) {
	renderError(c, http.StatusNotFound, what+" not found", nil)
}

func renderInternalError(c *gin.Context, err error, op string) {
	middleware.RequestLogger(c).WithError(err).Error(op)
	renderError(c, http.StatusInternalServerError, "Something went wrong", nil)
}

// renderLookupError maps a failed First/Take into 404 or 500.
func renderLookupError(c *gin.Context, err error, what, op string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		renderNotFound(c, what)
		return
	}
	renderInternalError(c, err, op)
}

// paramID parses a numeric path segment; anything else is a 404, as an
// unmatched route would be.
func paramID(c *gin.Context, name, what string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		renderNotFound(c, what)
		return 0, false
	}
	return uint(id), true
}

// NotFound answers unmatched routes.
func NotFound(c *gin.Context) {
	renderNotFound(c, "Page")
}

// orderByID keeps preloaded children in insertion order.
func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}

// withCatalog preloads a bank's loan types and their KYC requirements.
func withCatalog(db *gorm.DB) *gorm.DB {
	return db.Preload("LoanTypes", orderByID).Preload("LoanTypes.KycRequirements", orderByID)
}
