package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"loan_portal/internal/config"
	"loan_portal/internal/logger"
	"loan_portal/internal/middleware"
	"loan_portal/internal/routes"
	"loan_portal/internal/uploads"
)

func main() {
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logrus.Fatal(err)
	}

	// Initialize structured logging to stdout and a rotating file
	logger.Setup(cfg.LogFile, cfg.LogLevel)
	gin.SetMode(cfg.GinMode)

	// Connect to the database
	config.InitDB()

	if err := uploads.EnsureDir(cfg.UploadDir); err != nil {
		logrus.Fatalf("cannot create upload directory %s: %v", cfg.UploadDir, err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           middleware.SecureHeaders(routes.SetupRouter()),
		ReadHeaderTimeout: 10 * time.Second,
	}

	logrus.Infof("Server running at %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logrus.Fatal(err)
	}
}
