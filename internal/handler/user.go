package handler

import (
	"errors"
	"net/http"

	"awei/internal/model"
	"awei/internal/service"
	"awei/pkg/util"

	"github.com/gin-gonic/gin"
)

// UserHandler handles account endpoints
type UserHandler struct {
	users *service.UserService
}

func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// Create inserts a user on first sign-in. Posting an existing email is a
// no-op answered with the sentinel body the frontend matches on.
// @Router /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var user model.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error()))
		return
	}
	if user.Email == "" {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Email is required"))
		return
	}

	id, exists, err := h.users.Create(c.Request.Context(), &user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse(err.Error()))
		return
	}
	if exists {
		c.JSON(http.StatusOK, model.CreateUserResponse{Message: "user already exist", InsertedID: nil})
		return
	}
	c.JSON(http.StatusOK, model.CreateUserResponse{InsertedID: &id})
}

// GetByEmail fetches one user
// @Router /user/:email [get]
func (h *UserHandler) GetByEmail(c *gin.Context) {
	user, err := h.users.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse(err.Error()))
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, model.NewErrorResponse("user not found"))
		return
	}
	c.JSON(http.StatusOK, user)
}

// ListVerified lists users with status=true
// @Router /verified/employees [get]
func (h *UserHandler) ListVerified(c *gin.Context) {
	users, err := h.users.ListVerified(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, users)
}

// ListEmployees lists users with role=Employee
// @Router /employees [get]
func (h *UserHandler) ListEmployees(c *gin.Context) {
	users, err := h.users.ListEmployees(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, users)
}

// Update merge-updates arbitrary fields on a user by email. Only the
// listed fields change; _id and email keys in the body are ignored.
// @Router /admin/update/:email [patch]
func (h *UserHandler) Update(c *gin.Context) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error()))
		return
	}

	matched, modified, err := h.users.UpdateByEmail(c.Request.Context(), c.Param("email"), fields)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, model.UpdateResponse{MatchedCount: matched, ModifiedCount: modified})
}

// Fire marks a user as fired by id
// @Router /employees/fire/:id [patch]
func (h *UserHandler) Fire(c *gin.Context) {
	oid, err := util.ParseObjectID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error()))
		return
	}

	if err := h.users.Fire(c.Request.Context(), oid); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, model.NewErrorResponse("Employee not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type adjustSalaryRequest struct {
	Salary *float64 `json:"salary"`
}

// AdjustSalary raises a user's salary by id; decreases are rejected
// @Router /employees/adjust-salary/:id [patch]
func (h *UserHandler) AdjustSalary(c *gin.Context) {
	oid, err := util.ParseObjectID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error()))
		return
	}

	var req adjustSalaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error()))
		return
	}
	if req.Salary == nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Salary is required"))
		return
	}

	err = h.users.AdjustSalary(c.Request.Context(), oid, *req.Salary)
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, model.NewErrorResponse("Employee not found"))
	case errors.Is(err, service.ErrSalaryNotIncrease):
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error()))
	case err != nil:
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse(err.Error()))
	default:
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// Salary returns a user's current salary by id
// @Router /employee/:id/salary [get]
func (h *UserHandler) Salary(c *gin.Context) {
	oid, err := util.ParseObjectID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error()))
		return
	}

	salary, err := h.users.Salary(c.Request.Context(), oid)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, model.NewErrorResponse("Employee not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{"salary": salary})
}
