package http

import (
	"net/http"

	"github.com/fakeguard/backend/internal/domain"
	"github.com/fakeguard/backend/internal/usecase"
	"github.com/gin-gonic/gin"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	classifier *usecase.ClassifierService
}

// NewHandler creates a new HTTP handler
func NewHandler(classifier *usecase.ClassifierService) *Handler {
	return &Handler{classifier: classifier}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "fakeguard-backend",
		"version": "1.0.0",
	})
}

// CheckDrug classifies a described drug listing against the drug reference
// corpus.
func (h *Handler) CheckDrug(c *gin.Context) {
	var listing domain.DrugListing
	if err := c.ShouldBindJSON(&listing); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.classify(c, listing.ToRecord())
}

// CheckBabyProduct classifies a described baby product against the
// baby-product reference corpus.
func (h *Handler) CheckBabyProduct(c *gin.Context) {
	var listing domain.BabyProductListing
	if err := c.ShouldBindJSON(&listing); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.classify(c, listing.ToRecord())
}

// classify runs the classifier and renders the verdict response.
func (h *Handler) classify(c *gin.Context, record *domain.ProductRecord) {
	verdict, err := h.classifier.Classify(c.Request.Context(), record)
	if err != nil {
		// Collaborator unavailability is a service error, never a verdict.
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result":  verdict.String(),
		"verdict": verdict,
	})
}
