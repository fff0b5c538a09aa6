package handler

import (
	"net/http"
	"time"

	"awei/internal/model"
	"awei/internal/service"

	"github.com/gin-gonic/gin"
)

// WorkSheetHandler handles timesheet endpoints
type WorkSheetHandler struct {
	sheets *service.WorkSheetService
}

func NewWorkSheetHandler(sheets *service.WorkSheetService) *WorkSheetHandler {
	return &WorkSheetHandler{sheets: sheets}
}

// Add inserts a timesheet entry
// @Router /workSheets [post]
func (h *WorkSheetHandler) Add(c *gin.Context) {
	var sheet model.WorkSheet
	if err := c.ShouldBindJSON(&sheet); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error()))
		return
	}
	if sheet.Email == "" {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Email is required"))
		return
	}
	if _, err := time.Parse("2006-01-02", sheet.Date); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Date must be in YYYY-MM-DD form"))
		return
	}

	id, err := h.sheets.Add(c.Request.Context(), &sheet)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, model.InsertResponse{InsertedID: id})
}

// ListByEmail lists entries for one employee
// @Router /workSheet/:email [get]
func (h *WorkSheetHandler) ListByEmail(c *gin.Context) {
	sheets, err := h.sheets.ListByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, sheets)
}

// Progress lists entries filtered by ?employee= name and/or ?month=YYYY-MM
// @Router /progress [get]
func (h *WorkSheetHandler) Progress(c *gin.Context) {
	employee := c.Query("employee")
	month := c.Query("month")
	if month != "" {
		if _, _, err := service.MonthBounds(month); err != nil {
			c.JSON(http.StatusBadRequest, model.NewErrorResponse("Month must be in YYYY-MM form"))
			return
		}
	}

	sheets, err := h.sheets.Progress(c.Request.Context(), employee, month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, sheets)
}
