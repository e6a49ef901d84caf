package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"umrah-gateway/internal/catalog"
	"umrah-gateway/internal/models"
	"umrah-gateway/internal/services"
)

// PaymentHandler serves the order-creation, verification and failure
// endpoints. Response shapes match what the storefront frontend expects.
type PaymentHandler struct {
	intents  *services.IntentService
	verifier *services.VerificationService
	failures *services.FailureRecorder
}

func NewPaymentHandler(intents *services.IntentService, verifier *services.VerificationService, failures *services.FailureRecorder) *PaymentHandler {
	return &PaymentHandler{
		intents:  intents,
		verifier: verifier,
		failures: failures,
	}
}

func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	receipt, err := h.intents.CreateIntent(c.Request.Context(), &req)
	if err != nil {
		h.renderIntentError(c, err, "Failed to create order")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"order_id":     receipt.OrderID,
		"amount":       receipt.Amount,
		"currency":     receipt.Currency,
		"package_name": receipt.PackageName,
	})
}

func (h *PaymentHandler) CreateUPIIntent(c *gin.Context) {
	var req models.CreateUPIOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	receipt, err := h.intents.CreateUPIIntent(c.Request.Context(), &req)
	if err != nil {
		h.renderIntentError(c, err, "Failed to create UPI payment")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"order_id":     receipt.OrderID,
		"amount":       receipt.Amount,
		"currency":     receipt.Currency,
		"package_name": receipt.PackageName,
		"upi_id":       receipt.UPIID,
		"deep_link":    receipt.DeepLink,
	})
}

func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	var req models.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request payload",
		})
		return
	}

	result, err := h.verifier.VerifyPayment(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error verifying payment",
			"error":   err.Error(),
		})
		return
	}

	if !result.Verified {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Payment verification failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":             true,
		"message":             "Payment verified successfully",
		"booking_id":          result.BookingID,
		"is_free_application": result.IsFreeApplication,
	})
}

// PaymentFailed is a best-effort acknowledgement: the failure is logged and
// published, and the endpoint reports success even for unreadable payloads.
func (h *PaymentHandler) PaymentFailed(c *gin.Context) {
	var req models.PaymentFailureRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		req = models.PaymentFailureRequest{Reason: "unreadable failure report"}
	}

	h.failures.RecordFailure(&req)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Payment failure recorded",
	})
}

func (h *PaymentHandler) renderIntentError(c *gin.Context, err error, gatewayMessage string) {
	switch {
	case errors.Is(err, catalog.ErrPackageNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Package not found"})
	case errors.Is(err, services.ErrInvalidPaymentType):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment type"})
	case errors.Is(err, services.ErrInvalidUPIID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid UPI ID format"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   gatewayMessage,
			"message": err.Error(),
		})
	}
}
