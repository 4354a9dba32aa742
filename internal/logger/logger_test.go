package logger

import (
	"bytes"
	"errors"
	"log"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	flags := log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetFlags(flags)
	})
	return &buf
}

func TestFormatFields(t *testing.T) {
	tests := []struct {
		name   string
		fields Fields
		want   string
	}{
		{"empty", Fields{}, ""},
		{"sorted keys", Fields{"species": "second", "examined": 1029}, "{examined=1029, species=second}"},
		{"float precision", Fields{"ratio": 0.126}, "{ratio=0.13}"},
		{"nested value", Fields{"rejected": map[string]int{"big-leap": 3}}, "{rejected=map[big-leap:3]}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatFields(tt.fields))
		})
	}
}

func TestLevels(t *testing.T) {
	buf := captureLog(t)

	Info("generated", Fields{"solutions": 4})
	Warn("slow", nil)
	Debug("space built", Fields{"positions": 5})
	Error("store failed", errors.New("connection refused"), Fields{"request_id": "abc"})

	out := buf.String()
	assert.Contains(t, out, "[INFO] generated {solutions=4}")
	assert.Contains(t, out, "[WARN] slow")
	assert.Contains(t, out, "[DEBUG] space built {positions=5}")
	assert.Contains(t, out, "[ERROR] store failed: connection refused {request_id=abc}")
}

func TestWithContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/api/v1/counterpoint", nil)
	c.Set("request_id", "req-1")
	c.Set("user_id", "user-9")

	fields := WithContext(c)
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Equal(t, "POST", fields["method"])
	assert.Equal(t, "/api/v1/counterpoint", fields["path"])
	assert.Equal(t, "user-9", fields["user_id"])
}

func TestLogAPIRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		status int
		want   string
	}{
		{200, "[INFO] Request completed"},
		{404, "[WARN] Request failed with client error"},
		{503, "[ERROR] Request failed with server error: status 503"},
	}

	for _, tt := range tests {
		buf := captureLog(t)
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", "/api/v1/presets", nil)
		c.Set("request_id", "req-7")

		LogAPIRequest(c, 0, tt.status, nil)

		out := buf.String()
		assert.Contains(t, out, tt.want)
		assert.Contains(t, out, "request_id=req-7")
		assert.Contains(t, out, "path=/api/v1/presets")
	}
}
