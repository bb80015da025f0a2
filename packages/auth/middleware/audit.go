package middleware

import (
	"bytes"
	"io"
	"log"

	"auth/models"
	"auth/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Audit records one event row per handled request. On authenticated
// routes it must run after JWTMiddleware so the userName claim is in
// the context. The request body is snapshotted and restored for the
// handler; recording failures are logged and never block the request.
func Audit(db *gorm.DB, eventType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload []byte
		if c.Request.Body != nil {
			payload, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewReader(payload))
		}

		userName, _ := GetUserName(c)
		event := models.Event{
			EventType:      eventType,
			UserName:       userName,
			URL:            c.Request.URL.RequestURI(),
			IPAddress:      c.ClientIP(),
			HTTPMethod:     c.Request.Method,
			RequestPayload: string(payload),
			CreatedAt:      utils.GenerateTimeStamp(),
		}
		if err := db.Create(&event).Error; err != nil {
			log.Printf("Failed to record %s event: %v", eventType, err)
		}

		c.Next()
	}
}
