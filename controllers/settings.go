// controllers/settings.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"parlorhub/config"
	"parlorhub/repositories"
	"parlorhub/utils"
)

type UpdateSettingsInput struct {
	Name      *string `json:"name"`
	Phone     *string `json:"phone"`
	WhatsApp  *string `json:"whatsapp"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Address   *string `json:"address"`
	Instagram *string `json:"instagram"`
	Facebook  *string `json:"facebook"`
}

// GetSettings returns the parlor's public contact details. Public.
func GetSettings(c *gin.Context) {
	repo := repositories.NewSettingsRepository(config.DB)
	settings, err := repo.Get()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateSettings patches the singleton settings row. Admin only.
func UpdateSettings(c *gin.Context) {
	var input UpdateSettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	repo := repositories.NewSettingsRepository(config.DB)
	settings, err := repo.Update(repositories.SettingsPatch{
		Name:      input.Name,
		Phone:     input.Phone,
		WhatsApp:  input.WhatsApp,
		Email:     input.Email,
		Address:   input.Address,
		Instagram: input.Instagram,
		Facebook:  input.Facebook,
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update settings")
		return
	}

	c.JSON(http.StatusOK, settings)
}
