package routes

import (
	"io"
	"time"

	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"loan_portal/internal/controllers"
	"loan_portal/internal/logger"
	"loan_portal/internal/middleware"
	"loan_portal/internal/web"
)

// SetupRouter assembles middleware, templates and every route.
func SetupRouter() *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(accessLog(logger.Writer()))
	r.Use(gin.Recovery())
	r.Use(middleware.LoadSession())

	web.LoadTemplates(r)

	PublicRoutes(r)
	AuthRoutes(r)
	AdminRoutes(r)

	r.NoRoute(controllers.NotFound)
	return r
}

// accessLog writes one text line per request to w, matching the logrus
// lines that share the same file.
func accessLog(w io.Writer) gin.HandlerFunc {
	console := zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: time.RFC3339}
	return ginlog.SetLogger(ginlog.WithLogger(func(c *gin.Context, l zerolog.Logger) zerolog.Logger {
		return l.Output(console).With().Str("request_id", middleware.GetRequestID(c)).Logger()
	}))
}
