package handlers

import (
	"errors"
	"net/http"

	"auth/models"
	"auth/services"
	"auth/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthHandler struct {
	DB         *gorm.DB
	OTPService *services.OTPService
	jwtSecret  string
}

func NewAuthHandler(db *gorm.DB, otpService *services.OTPService, jwtSecret string) *AuthHandler {
	return &AuthHandler{
		DB:         db,
		OTPService: otpService,
		jwtSecret:  jwtSecret,
	}
}

func (h *AuthHandler) findUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := h.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// @Summary Send an OTP email
// @Description Issue a one-time code for email verification, password reset or two-factor sign-in
// @Tags auth
// @Produce json
// @Param email path string true "Recipient email"
// @Param otpType path string true "OTP flow" Enums(EMAILVERIFICATION,PASSWORDRESET,2FA)
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Router /auth/sendOtpEmail/{email}/{otpType} [get]
func (h *AuthHandler) SendOtpEmail(c *gin.Context) {
	email := c.Param("email")
	otpType := c.Param("otpType")

	if !models.IsValidOtpType(otpType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid OTP type"})
		return
	}

	_, err := h.findUserByEmail(email)
	switch otpType {
	case models.OtpTypeEmailVerification:
		if err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Email is already registered"})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up user"})
			return
		}
	default:
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up user"})
			return
		}
	}

	if err := h.OTPService.SendOtp(email, otpType); err != nil {
		if errors.Is(err, services.ErrOtpRequestPending) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "An OTP request is already pending"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send OTP"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "OTP sent successfully"})
}

// @Summary Validate an OTP
// @Description Check a submitted code; a valid 2FA code completes sign-in and returns a JWT
// @Tags auth
// @Produce json
// @Param email path string true "Email the code was sent to"
// @Param otp path string true "Submitted code"
// @Param otpType path string true "OTP flow" Enums(EMAILVERIFICATION,PASSWORDRESET,2FA)
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 410 {object} map[string]string
// @Router /auth/validateOtp/{email}/{otp}/{otpType} [get]
func (h *AuthHandler) ValidateOtp(c *gin.Context) {
	email := c.Param("email")
	otp := c.Param("otp")
	otpType := c.Param("otpType")

	if !models.IsValidOtpType(otpType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid OTP type"})
		return
	}

	if err := h.OTPService.ValidateOtp(email, otp, otpType); err != nil {
		switch {
		case errors.Is(err, services.ErrOtpNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "No OTP found for this email"})
		case errors.Is(err, services.ErrOtpExpired):
			c.JSON(http.StatusGone, gin.H{"error": "OTP has expired"})
		case errors.Is(err, services.ErrOtpMismatch):
			c.JSON(http.StatusBadRequest, gin.H{"error": "OTP does not match"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate OTP"})
		}
		return
	}

	// A valid second-factor code completes the sign-in
	if otpType == models.OtpType2FA {
		user, err := h.findUserByEmail(email)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		token, err := utils.GenerateToken(*user, h.jwtSecret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "OTP validated successfully",
			"token":   token,
			"user":    user,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "OTP validated successfully"})
}

// @Summary Check whether an email is verified
// @Description Report the verification state of an email that has not registered yet
// @Tags auth
// @Produce json
// @Param email path string true "Email to check"
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /auth/checkValidatedEmail/{email} [get]
func (h *AuthHandler) CheckValidatedEmail(c *gin.Context) {
	email := c.Param("email")

	if _, err := h.findUserByEmail(email); err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Email is already registered"})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up user"})
		return
	}

	verified, err := h.OTPService.IsEmailVerified(email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check email"})
		return
	}
	if !verified {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Email has not been verified"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Email is verified"})
}

// @Summary User Registration
// @Description Register a new user; the email must have passed OTP verification first
// @Tags auth
// @Accept json
// @Produce json
// @Param user body models.SignupRequest true "User registration data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existingUser models.User
	if err := h.DB.Where("email = ? OR user_name = ?", req.Email, req.UserName).First(&existingUser).Error; err == nil {
		if existingUser.Email == req.Email {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already exists"})
		} else {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username already exists"})
		}
		return
	}

	verified, err := h.OTPService.IsEmailVerified(req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check email verification"})
		return
	}
	if !verified {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email has not been verified"})
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	now := utils.GenerateTimeStamp()
	user := models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		UserName:  req.UserName,
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  hashedPassword,
		Role:      models.RoleUser,
		Is2FA:     req.Is2FA,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := h.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    user,
	})
}

// @Summary User Sign-in
// @Description Sign in with email or userName; accounts with 2FA get a code by mail instead of a token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body models.SigninRequest true "User sign-in credentials"
// @Success 200 {object} map[string]interface{}
// @Success 202 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auth/signin [post]
func (h *AuthHandler) Signin(c *gin.Context) {
	var req models.SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := h.DB.Where("(email = ? OR user_name = ?) AND is_active = ?",
		req.User, req.User, true).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if !utils.CheckPassword(req.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if user.Is2FA {
		if err := h.OTPService.SendOtp(user.Email, models.OtpType2FA); err != nil &&
			!errors.Is(err, services.ErrOtpRequestPending) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send 2FA code"})
			return
		}
		c.JSON(http.StatusAccepted, gin.H{
			"message": "A sign-in code has been sent to your email",
			"email":   user.Email,
		})
		return
	}

	token, err := utils.GenerateToken(user, h.jwtSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}

// @Summary Change Password
// @Description Replace a user's password after an OTP-verified reset
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.ChangePasswordRequest true "Password change request"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auth/changePassword [patch]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req models.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.NewPassword != req.ConfirmPassword {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Passwords do not match"})
		return
	}

	user, err := h.findUserByEmail(req.Email)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	hashedPassword, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	if err := h.DB.Model(&models.User{}).Where("id = ?", user.ID).Updates(map[string]interface{}{
		"password":   hashedPassword,
		"updated_at": utils.GenerateTimeStamp(),
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
}
