package handler

import (
	"net/http"

	"awei/internal/model"
	"awei/internal/service"

	"github.com/gin-gonic/gin"
)

// MessageHandler handles the contact-message endpoints
type MessageHandler struct {
	messages *service.MessageService
}

func NewMessageHandler(messages *service.MessageService) *MessageHandler {
	return &MessageHandler{messages: messages}
}

// Create stores a free-form message document
// @Router /messageA [post]
func (h *MessageHandler) Create(c *gin.Context) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error()))
		return
	}
	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("message body is empty"))
		return
	}

	id, err := h.messages.Add(c.Request.Context(), fields)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, model.InsertResponse{InsertedID: id})
}

// List returns all stored messages, newest first
// @Router /messageA [get]
func (h *MessageHandler) List(c *gin.Context) {
	messages, err := h.messages.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, messages)
}
