package handler

import (
	"errors"
	"net/http"
	"strconv"

	"awei/internal/config"
	"awei/internal/model"
	"awei/internal/service"
	"awei/pkg/util"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles payment endpoints
type PaymentHandler struct {
	payments *service.PaymentService
}

func NewPaymentHandler(payments *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

type createIntentRequest struct {
	Salary *float64 `json:"salary"`
}

// CreateIntent exchanges a salary amount for a gateway client secret
// @Router /create-payment-intent [post]
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var req createIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error()))
		return
	}
	if req.Salary == nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Salary is required"))
		return
	}

	secret, err := h.payments.CreateIntent(c.Request.Context(), *req.Salary)
	if err != nil {
		if errors.Is(err, service.ErrAmountTooSmall) {
			c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusBadGateway, model.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": secret})
}

// Create inserts a payment record and flags the paid user
// @Router /payments [post]
func (h *PaymentHandler) Create(c *gin.Context) {
	var payment model.Payment
	if err := c.ShouldBindJSON(&payment); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error()))
		return
	}
	if !util.IsValidObjectID(payment.EmployeeID) {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("employeeId must be a valid id"))
		return
	}
	if payment.PayMonth < 1 || payment.PayMonth > 12 {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("payMonth must be between 1 and 12"))
		return
	}
	if payment.PayYear < 1 {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("payYear is required"))
		return
	}
	if payment.Salary <= 0 {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("salary must be positive"))
		return
	}

	id, userUpdated, err := h.payments.Create(c.Request.Context(), &payment)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{"insertedId": id, "userUpdated": userUpdated})
}

// List returns all payment documents
// @Router /payments [get]
func (h *PaymentHandler) List(c *gin.Context) {
	payments, err := h.payments.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, payments)
}

// GetByID fetches one payment by hex id
// @Router /payments/:id [get]
func (h *PaymentHandler) GetByID(c *gin.Context) {
	oid, err := util.ParseObjectID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error()))
		return
	}

	payment, err := h.payments.GetByID(c.Request.Context(), oid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse(err.Error()))
		return
	}
	if payment == nil {
		c.JSON(http.StatusNotFound, model.NewErrorResponse("payment not found"))
		return
	}
	c.JSON(http.StatusOK, payment)
}

// GetBySlug fetches one payment by email-or-employeeId
// @Router /details/:slug [get]
func (h *PaymentHandler) GetBySlug(c *gin.Context) {
	payment, err := h.payments.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse(err.Error()))
		return
	}
	if payment == nil {
		c.JSON(http.StatusNotFound, model.NewErrorResponse("Employee not found"))
		return
	}
	c.JSON(http.StatusOK, payment)
}

// ListPage returns a page of payments sorted ascending by pay period.
// Absent params fall back to defaults; present-but-invalid params are a
// client error, never silent skip/limit arithmetic on garbage.
// @Router /employee-list [get]
func (h *PaymentHandler) ListPage(c *gin.Context) {
	page, ok := positiveParam(c, "page", 1)
	if !ok {
		return
	}
	limit, ok := positiveParam(c, "limit", config.DefaultPageSize)
	if !ok {
		return
	}
	if limit > config.MaxPageSize {
		limit = config.MaxPageSize
	}

	result, err := h.payments.ListPage(c.Request.Context(), page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, result)
}

// positiveParam parses a positive integer query param, answering 400 and
// reporting false when the value is present but not a positive integer.
func positiveParam(c *gin.Context, name string, fallback int64) (int64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, true
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 1 {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(name+" must be a positive integer"))
		return 0, false
	}
	return v, true
}
