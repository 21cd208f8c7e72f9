// controllers/upload.go
package controllers

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"parlorhub/storage"
	"parlorhub/utils"
)

// Assets is the upload store; wired at startup from main.
var Assets *storage.Store

// UploadAsset stores an image in the named bucket and returns its durable
// public address. Admin only.
func UploadAsset(c *gin.Context) {
	bucket := c.Param("bucket")
	if !storage.ValidBucket(bucket) {
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown bucket: "+bucket)
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Missing file field")
		return
	}

	src, err := file.Open()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to read upload")
		return
	}
	defer src.Close()

	name, err := Assets.Upload(bucket, filepath.Ext(file.Filename), src)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to store upload")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"path": name,
		"url":  Assets.PublicURL(bucket, name),
	})
}
