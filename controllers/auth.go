package controllers

import (
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"parlorhub/config"
	"parlorhub/models"
	"parlorhub/repositories"
	"parlorhub/utils"
)

type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AdminLoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register creates an ordinary (unprivileged) identity.
func Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	email := strings.TrimSpace(strings.ToLower(input.Email))

	var existing models.User
	result := config.DB.Where("email = ?", email).First(&existing)
	if result.Error == nil {
		utils.RespondWithError(c, http.StatusConflict, "Email already registered")
		return
	} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	newUser := models.User{
		Email:    &email,
		Password: input.Password, // Will be hashed in BeforeCreate hook
	}

	if err := config.DB.Create(&newUser).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	token, err := utils.GenerateToken(newUser.ID.String(), false)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful",
		"token":   token,
		"user": gin.H{
			"id":    newUser.ID,
			"email": newUser.Email,
		},
		"isAdmin": false,
	})
}

// Login authenticates against the users table. When that fails and the pair
// matches the configured admin secrets, a real anonymous admin identity is
// provisioned instead of a client-only shadow: the store recognizes the
// resulting credential, so admin mutations actually go through.
func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	email := strings.TrimSpace(strings.ToLower(input.Email))

	var user models.User
	result := config.DB.Where("email = ?", email).First(&user)

	if result.Error != nil || !utils.CheckPasswordHash(input.Password, user.Password) {
		if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			return
		}
		if matchesAdminSecrets(input.Email, input.Password) {
			provisionAdminSession(c)
			return
		}
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	roles := repositories.NewRoleRepository(config.DB)
	isAdmin := roles.HasRole(user.ID, models.RoleAdmin)

	token, err := utils.GenerateToken(user.ID.String(), isAdmin)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	now := time.Now()
	config.DB.Model(&user).Update("last_login", &now)

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
		},
		"isAdmin": isAdmin,
	})
}

// AdminLogin checks the submitted pair against the configured secrets and,
// on match, provisions an anonymous session holding a real admin grant.
func AdminLogin(c *gin.Context) {
	var input AdminLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	if !matchesAdminSecrets(input.Username, input.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}

	provisionAdminSession(c)
}

// Logout revokes anonymous admin identities entirely; ordinary identities
// just see their token expire. Idempotent.
func Logout(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
		return
	}

	id, err := uuid.Parse(userID.(string))
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", id).Error; err == nil && user.IsAnonymous {
		roles := repositories.NewRoleRepository(config.DB)
		if err := roles.Revoke(user.ID); err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to revoke session")
			return
		}
		config.DB.Delete(&user)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Me reports the current identity with a freshly resolved privilege flag.
func Me(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusInternalServerError, "User ID not found in context")
		return
	}

	id, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid user ID")
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", id).Error; err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return
	}

	roles := repositories.NewRoleRepository(config.DB)

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":          user.ID,
			"email":       user.Email,
			"isAnonymous": user.IsAnonymous,
		},
		"isAdmin": roles.HasRole(user.ID, models.RoleAdmin),
	})
}

func matchesAdminSecrets(username, password string) bool {
	adminUser := os.Getenv("ADMIN_USERNAME")
	adminPass := os.Getenv("ADMIN_PASSWORD")
	return adminUser != "" && adminPass != "" &&
		username == adminUser && password == adminPass
}

func provisionAdminSession(c *gin.Context) {
	user := models.User{IsAnonymous: true}
	if err := config.DB.Create(&user).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create session")
		return
	}

	roles := repositories.NewRoleRepository(config.DB)
	if err := roles.Grant(user.ID, models.RoleAdmin); err != nil {
		config.DB.Delete(&user)
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to grant admin role")
		return
	}

	token, err := utils.GenerateToken(user.ID.String(), true)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Admin login successful",
		"token":   token,
		"user": gin.H{
			"id":          user.ID,
			"isAnonymous": true,
		},
		"isAdmin": true,
	})
}
