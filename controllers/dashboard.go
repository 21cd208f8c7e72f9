package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"parlorhub/config"
	"parlorhub/models"
	"parlorhub/utils"
)

type DashboardOverview struct {
	TotalServices       int64 `json:"totalServices"`
	TotalGalleryItems   int64 `json:"totalGalleryItems"`
	PendingAppointments int64 `json:"pendingAppointments"`
	TodaysAppointments  int64 `json:"todaysAppointments"`
	UnreadMessages      int64 `json:"unreadMessages"`
}

// GetDashboardOverview returns the counters shown on the admin dashboard.
func GetDashboardOverview(c *gin.Context) {
	var overview DashboardOverview

	db := config.DB
	if err := db.Model(&models.Service{}).Count(&overview.TotalServices).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}
	db.Model(&models.GalleryItem{}).Count(&overview.TotalGalleryItems)
	db.Model(&models.Appointment{}).
		Where("status = ?", models.AppointmentPending).
		Count(&overview.PendingAppointments)
	db.Model(&models.Appointment{}).
		Where("appointment_date = ?", utils.DateString(time.Now())).
		Count(&overview.TodaysAppointments)
	db.Model(&models.ContactMessage{}).
		Where("status = ?", models.MessageUnread).
		Count(&overview.UnreadMessages)

	c.JSON(http.StatusOK, overview)
}
