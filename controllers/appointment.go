// controllers/appointment.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"parlorhub/config"
	"parlorhub/models"
	"parlorhub/repositories"
	"parlorhub/services"
	"parlorhub/utils"
)

// Notifier relays accepted bookings; wired once at startup.
var Notifier = services.NewBookingNotifier()

type CreateAppointmentInput struct {
	Name    string  `json:"name" binding:"required"`
	Phone   string  `json:"phone" binding:"required"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Service string  `json:"service" binding:"required"`
	Date    string  `json:"date" binding:"required"`
	Time    *string `json:"time"`
	Notes   string  `json:"notes"`
}

type UpdateAppointmentInput struct {
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}

// CreateAppointment is the public booking endpoint. A slot collision comes
// back as 409 so the form can tell "taken" apart from "broken".
func CreateAppointment(c *gin.Context) {
	var input CreateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number")
		return
	}
	if !utils.ValidateDate(input.Date) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}
	if input.Time != nil && !utils.ValidateTime(*input.Time) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid time, expected HH:MM")
		return
	}

	appointment := models.Appointment{
		ClientName:      input.Name,
		Phone:           input.Phone,
		Email:           input.Email,
		ServiceTitle:    input.Service,
		AppointmentDate: input.Date,
		AppointmentTime: input.Time,
		Notes:           input.Notes,
		Status:          models.AppointmentPending,
	}

	repo := repositories.NewAppointmentRepository(config.DB)
	if err := repo.Create(&appointment); err != nil {
		if errors.Is(err, repositories.ErrConflict) {
			utils.RespondWithError(c, http.StatusConflict, "time slot unavailable")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to book appointment")
		}
		return
	}

	Notifier.NotifyAppointment(&appointment)

	c.JSON(http.StatusCreated, gin.H{"message": "Appointment requested successfully"})
}

// GetAppointments lists all appointments, newest first. Admin only.
func GetAppointments(c *gin.Context) {
	repo := repositories.NewAppointmentRepository(config.DB)
	appointments, err := repo.List()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}
	c.JSON(http.StatusOK, appointments)
}

// UpdateAppointment changes status or notes. Admin only.
func UpdateAppointment(c *gin.Context) {
	appointmentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	var input UpdateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Status != nil && !models.ValidAppointmentStatus(*input.Status) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid status")
		return
	}

	repo := repositories.NewAppointmentRepository(config.DB)
	err = repo.Update(appointmentUUID, repositories.AppointmentPatch{
		Status: input.Status,
		Notes:  input.Notes,
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update appointment")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment updated successfully"})
}

// DeleteAppointment removes a booking. Admin only, idempotent.
func DeleteAppointment(c *gin.Context) {
	appointmentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	repo := repositories.NewAppointmentRepository(config.DB)
	if err := repo.Delete(appointmentUUID); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete appointment")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted successfully"})
}
