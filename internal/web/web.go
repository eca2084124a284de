// Package web holds the portal's HTML templates.
package web

import (
	"embed"
	"html/template"

	"github.com/gin-gonic/gin"

	"loan_portal/internal/uploads"
)

//go:embed templates/*.html
var templateFS embed.FS

// FuncMap is available to every template.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		// kycField takes the zero-based range index of a requirement.
		"kycField": func(loanTypeID uint, index int) string {
			return uploads.FieldName(loanTypeID, index+1)
		},
	}
}

// Templates parses every embedded page and partial.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(FuncMap()).ParseFS(templateFS, "templates/*.html")
}

// LoadTemplates installs the templates as the engine's HTML renderer.
func LoadTemplates(r *gin.Engine) {
	r.SetHTMLTemplate(template.Must(Templates()))
}
