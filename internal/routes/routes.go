package routes

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/moisesmate2017-dot/Certificao-operatividad/internal/controllers"
	"github.com/moisesmate2017-dot/Certificao-operatividad/internal/issuer"
)

// SetupRouter wires the certificate controller and its routes
func SetupRouter(is *issuer.Issuer, logger *zap.Logger) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	certificateController := controllers.CertificateController{Issuer: is, Logger: logger}

	router := gin.New()
	router.Use(RequestLogger(logger), gin.Recovery())
	router.SetHTMLTemplate(template.Must(template.ParseFS(controllers.Templates, "templates/*.html")))

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	})

	router.GET("/", certificateController.ShowForm)
	router.POST("/", certificateController.Submit)
	router.POST("/generar_pdf", certificateController.Generate)

	return router
}
