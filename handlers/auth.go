package handlers

import (
	"net/http"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/sudha-1290/Quiz-Master-V1/auth"
	"github.com/sudha-1290/Quiz-Master-V1/logger"
	"github.com/sudha-1290/Quiz-Master-V1/mailer"
	"github.com/sudha-1290/Quiz-Master-V1/middleware"
	"github.com/sudha-1290/Quiz-Master-V1/models"
)

// POST /api/auth/register
func (db *DBHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email         string `json:"email" validate:"required,email"`
		Password      string `json:"password" validate:"required,min=8"`
		FullName      string `json:"fullName" validate:"required,max=100"`
		Qualification string `json:"qualification" validate:"max=100"`
	}
	if msg, ok := decodeAndValidate(r, &req); !ok {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	var existing models.User
	if err := db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		http.Error(w, "Email already registered", http.StatusConflict)
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		logger.L().Errorw("password hash failed", "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	user := models.User{
		Email:         req.Email,
		PasswordHash:  hash,
		FullName:      req.FullName,
		Qualification: req.Qualification,
	}
	if err := db.Create(&user).Error; err != nil {
		logger.L().Errorw("failed to create user", "err", err)
		http.Error(w, "Failed to create user", http.StatusInternalServerError)
		return
	}

	logger.L().Infow("user registered", "userID", user.ID)
	respondJSON(w, http.StatusCreated, user)
}

// POST /api/auth/login
func (db *DBHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}
	if msg, ok := decodeAndValidate(r, &req); !ok {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	var user models.User
	if err := db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		http.Error(w, "Invalid email or password", http.StatusUnauthorized)
		return
	}
	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		http.Error(w, "Invalid email or password", http.StatusUnauthorized)
		return
	}

	if err := auth.SetAuthCookie(w, user.ID); err != nil {
		logger.L().Errorw("token generation failed", "err", err)
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, user)
}

// POST /api/auth/logout
func (db *DBHandler) Logout(w http.ResponseWriter, r *http.Request) {
	auth.ClearAuthCookie(w)
	respondJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

// GET /api/auth/me
func (db *DBHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.CurrentUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

// POST /api/auth/reset-request
func (db *DBHandler) RequestPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email" validate:"required,email"`
	}
	if msg, ok := decodeAndValidate(r, &req); !ok {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	var user models.User
	if err := db.Where("email = ?", req.Email).First(&user).Error; err == nil {
		token, err := gonanoid.New(32)
		if err != nil {
			logger.L().Errorw("failed to generate reset token", "err", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		expiry := time.Now().Add(24 * time.Hour)
		user.ResetToken = token
		user.ResetTokenExpiry = &expiry
		if err := db.Save(&user).Error; err != nil {
			logger.L().Errorw("failed to store reset token", "userID", user.ID, "err", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		if err := mailer.SendPasswordReset(user.Email, token); err != nil {
			// Token stays valid; the user can retry the request
			logger.L().Errorw("reset mail failed", "userID", user.ID, "err", err)
		}
	}

	// Same response whether or not the account exists
	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Check your email for the instructions to reset your password",
	})
}

// POST /api/auth/reset
func (db *DBHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Token    string `json:"token" validate:"required"`
		Password string `json:"password" validate:"required,min=8"`
	}
	if msg, ok := decodeAndValidate(r, &req); !ok {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	var user models.User
	err := db.Where("reset_token = ?", req.Token).First(&user).Error
	if err != nil || user.ResetTokenExpiry == nil || user.ResetTokenExpiry.Before(time.Now()) {
		http.Error(w, "Invalid or expired reset token", http.StatusBadRequest)
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		logger.L().Errorw("password hash failed", "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	user.PasswordHash = hash
	user.ResetToken = ""
	user.ResetTokenExpiry = nil
	if err := db.Save(&user).Error; err != nil {
		logger.L().Errorw("failed to reset password", "userID", user.ID, "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Your password has been reset"})
}

// PUT /api/users/me
func (db *DBHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.CurrentUser(r)

	var req struct {
		FullName      string `json:"fullName" validate:"required,max=100"`
		Qualification string `json:"qualification" validate:"max=100"`
	}
	if msg, ok := decodeAndValidate(r, &req); !ok {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	user.FullName = req.FullName
	user.Qualification = req.Qualification
	if err := db.Save(user).Error; err != nil {
		logger.L().Errorw("failed to update profile", "userID", user.ID, "err", err)
		http.Error(w, "Failed to update profile", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, user)
}

// PUT /api/users/me/password
func (db *DBHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.CurrentUser(r)

	var req struct {
		CurrentPassword string `json:"currentPassword" validate:"required"`
		NewPassword     string `json:"newPassword" validate:"required,min=8"`
	}
	if msg, ok := decodeAndValidate(r, &req); !ok {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	if !auth.CheckPassword(user.PasswordHash, req.CurrentPassword) {
		http.Error(w, "Current password is incorrect", http.StatusForbidden)
		return
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		logger.L().Errorw("password hash failed", "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	user.PasswordHash = hash
	if err := db.Save(user).Error; err != nil {
		logger.L().Errorw("failed to change password", "userID", user.ID, "err", err)
		http.Error(w, "Failed to change password", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Password changed successfully"})
}
