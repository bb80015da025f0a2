package auth

import (
	"auth/handlers"
	"auth/middleware"
	"auth/models"
	"auth/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Module struct {
	Handler    *handlers.AuthHandler
	OTPService *services.OTPService
	db         *gorm.DB
}

func NewModule(db *gorm.DB, jwtSecret, mailDSN, mailSender string) *Module {
	emailService := services.NewEmailService(mailDSN, mailSender)
	otpService := services.NewOTPService(db, emailService)

	return &Module{
		Handler:    handlers.NewAuthHandler(db, otpService, jwtSecret),
		OTPService: otpService,
		db:         db,
	}
}

func (m *Module) SetupRoutes(r *gin.Engine) {
	audit := func(eventType string) gin.HandlerFunc {
		return middleware.Audit(m.db, eventType)
	}

	auth := r.Group("/v1/api/auth")
	{
		auth.GET("/sendOtpEmail/:email/:otpType", audit(models.EventSendMail), m.Handler.SendOtpEmail)
		auth.GET("/validateOtp/:email/:otp/:otpType", audit(models.EventValidateOtp), m.Handler.ValidateOtp)
		auth.GET("/checkValidatedEmail/:email", audit(models.EventCheckValidatedEmail), m.Handler.CheckValidatedEmail)
		auth.POST("/signup", audit(models.EventUserSignup), m.Handler.Signup)
		auth.POST("/signin", audit(models.EventUserSignin), m.Handler.Signin)
		auth.PATCH("/changePassword", audit(models.EventChangePassword), m.Handler.ChangePassword)
	}
}

func JWTMiddleware(db *gorm.DB, secret string) gin.HandlerFunc {
	return middleware.JWTMiddleware(db, secret)
}

func GetUserName(c *gin.Context) (string, bool) {
	return middleware.GetUserName(c)
}

func GetEmail(c *gin.Context) (string, bool) {
	return middleware.GetEmail(c)
}

func RequireAnyRole(roles ...string) gin.HandlerFunc {
	return middleware.RequireAnyRole(roles...)
}
