// controllers/contact.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"parlorhub/config"
	"parlorhub/models"
	"parlorhub/repositories"
	"parlorhub/utils"
)

type CreateContactInput struct {
	Name    string  `json:"name" binding:"required"`
	Phone   string  `json:"phone" binding:"required"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Message string  `json:"message" binding:"required"`
}

// CreateContactMessage is the public contact form endpoint.
func CreateContactMessage(c *gin.Context) {
	var input CreateContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number")
		return
	}

	message := models.ContactMessage{
		Name:    input.Name,
		Phone:   input.Phone,
		Email:   input.Email,
		Message: input.Message,
		Status:  models.MessageUnread,
	}

	repo := repositories.NewContactRepository(config.DB)
	if err := repo.Create(&message); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to send message")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Message sent successfully"})
}

// GetContactMessages lists messages, newest first. Admin only.
func GetContactMessages(c *gin.Context) {
	repo := repositories.NewContactRepository(config.DB)
	messages, err := repo.List()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve messages")
		return
	}
	c.JSON(http.StatusOK, messages)
}

// MarkContactMessageRead flips a message to read. Admin only.
func MarkContactMessageRead(c *gin.Context) {
	messageUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid message ID format")
		return
	}

	repo := repositories.NewContactRepository(config.DB)
	if err := repo.MarkRead(messageUUID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Message not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update message")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message marked as read"})
}

// DeleteContactMessage removes a message. Admin only, idempotent.
func DeleteContactMessage(c *gin.Context) {
	messageUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid message ID format")
		return
	}

	repo := repositories.NewContactRepository(config.DB)
	if err := repo.Delete(messageUUID); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete message")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message deleted successfully"})
}
