package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewRouter wires the HTTP routes.
func NewRouter(reconcileHandler *ReconcileHandler, maxUploadMB int64) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	// Configure max multipart memory
	router.MaxMultipartMemory = maxUploadMB << 20

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Contract Ledger Reconciliation",
		})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		reconcile := api.Group("/reconcile")
		{
			reconcile.POST("", reconcileHandler.Reconcile)
			reconcile.POST("/summary", reconcileHandler.Summary)
		}
	}

	return router
}
