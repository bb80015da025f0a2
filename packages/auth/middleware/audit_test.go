package middleware

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"auth/models"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "audit.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.Event{}); err != nil {
		t.Fatalf("migrate events table: %v", err)
	}
	return db
}

func TestAuditRecordsEventAndPreservesBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := openTestDB(t)

	var handlerBody string
	r := gin.New()
	r.POST("/v1/api/team/createTeam", Audit(db, "create team"), func(c *gin.Context) {
		data, err := io.ReadAll(c.Request.Body)
		if err != nil {
			t.Fatalf("read body in handler: %v", err)
		}
		handlerBody = string(data)
		c.Status(http.StatusOK)
	})

	body := `{"teamName":"Kathmandu Kings","location":"Kathmandu"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/api/team/createTeam", bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if handlerBody != body {
		t.Errorf("handler saw body %q, want %q", handlerBody, body)
	}

	var event models.Event
	if err := db.First(&event).Error; err != nil {
		t.Fatalf("load recorded event: %v", err)
	}
	if event.EventType != "create team" {
		t.Errorf("eventType = %q, want %q", event.EventType, "create team")
	}
	if event.HTTPMethod != http.MethodPost {
		t.Errorf("httpMethod = %q, want POST", event.HTTPMethod)
	}
	if event.URL != "/v1/api/team/createTeam" {
		t.Errorf("url = %q, want /v1/api/team/createTeam", event.URL)
	}
	if event.RequestPayload != body {
		t.Errorf("requestPayload = %q, want %q", event.RequestPayload, body)
	}
	if event.CreatedAt == "" {
		t.Error("expected createdAt to be stamped")
	}
}

func TestAuditTakesUserNameFromContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := openTestDB(t)

	r := gin.New()
	r.GET("/v1/api/match/fetchMatches/UPCOMING",
		func(c *gin.Context) { c.Set("userName", "ravi_s") },
		Audit(db, "fetch matches"),
		func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/v1/api/match/fetchMatches/UPCOMING", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var event models.Event
	if err := db.First(&event).Error; err != nil {
		t.Fatalf("load recorded event: %v", err)
	}
	if event.UserName != "ravi_s" {
		t.Errorf("userName = %q, want %q", event.UserName, "ravi_s")
	}
}

func TestAuditFailureDoesNotBlockRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// No events table: the insert fails and the handler must still run.
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "bare.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	r := gin.New()
	r.GET("/v1/api/player/searchPlayers", Audit(db, "get players search"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/api/player/searchPlayers?search_query=ravi", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 despite audit failure, got %d", w.Code)
	}
}
