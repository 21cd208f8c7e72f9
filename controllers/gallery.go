// controllers/gallery.go
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

type CreateGalleryInput struct {
	Title    string `json:"title" binding:"required"`
	Category string `json:"category"`
	ImageURL string `json:"imageUrl" binding:"required"`
}

type UpdateGalleryInput struct {
	Title    *string `json:"title"`
	Category *string `json:"category"`
	ImageURL *string `json:"imageUrl"`
}

// GetGallery lists gallery items, newest first, optionally by category. Public.
func GetGallery(c *gin.Context) {
	repo := repositories.NewGalleryRepository(config.DB)
	items, err := repo.List(c.Query("category"))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve gallery")
		return
	}
	c.JSON(http.StatusOK, items)
}

func CreateGalleryItem(c *gin.Context) {
	var input CreateGalleryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	item := models.GalleryItem{
		Title:    input.Title,
		Category: input.Category,
		ImageURL: input.ImageURL,
	}

	repo := repositories.NewGalleryRepository(config.DB)
	if err := repo.Create(&item); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to add image")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Image added to gallery"})
}

func UpdateGalleryItem(c *gin.Context) {
	itemUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid image ID format")
		return
	}

	var input UpdateGalleryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	repo := repositories.NewGalleryRepository(config.DB)
	err = repo.Update(itemUUID, repositories.GalleryPatch{
		Title:    input.Title,
		Category: input.Category,
		ImageURL: input.ImageURL,
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Image not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update image")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Image updated successfully"})
}

func DeleteGalleryItem(c *gin.Context) {
	itemUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid image ID format")
		return
	}

	repo := repositories.NewGalleryRepository(config.DB)
	if err := repo.Delete(itemUUID); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete image")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Image deleted from gallery"})
}
