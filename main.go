package main

import (
	"log"

	"auth"
	"core"
	"score-liklo-api/config"
	_ "score-liklo-api/docs" // Swagger docs

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Score Liklo API
// @version         1.0
// @description     Backend API for the Score Liklo cricket league platform

// @contact.name   API Support

// @license.name  MIT
// @license.url   http://opensource.org/licenses/MIT

// @host      localhost:4000
// @BasePath  /v1/api

// @securityDefinitions.apikey  BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	authModule := auth.NewModule(db, cfg.JWTSecret, cfg.MailDSN, cfg.MailSender)
	authModule.SetupRoutes(r)

	coreModule := core.NewModule(db, cfg.JWTSecret)
	coreModule.SetupRoutes(r)

	if err := coreModule.StartScheduler(); err != nil {
		log.Printf("Failed to start scheduler: %v", err)
	}
	defer coreModule.StopScheduler()

	// Swagger endpoint
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/", welcomeHandler)

	log.Printf("Server starting on port %s", cfg.Port)
	r.Run(":" + cfg.Port)
}

// WelcomeResponse represents the root endpoint response
type WelcomeResponse struct {
	Message string `json:"message" example:"Your Backend API is working properly"`
}

// @Summary Welcome
// @Description Check that the server is up
// @Tags health
// @Produce json
// @Success 200 {object} WelcomeResponse
// @Router / [get]
func welcomeHandler(c *gin.Context) {
	c.JSON(200, WelcomeResponse{
		Message: "Your Backend API is working properly",
	})
}
