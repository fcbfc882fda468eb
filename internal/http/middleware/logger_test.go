package middleware

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestLoggerUsesSharedRegister(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	orig := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(orig)

	r := gin.New()
	r.Use(RequestID(), Logger())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "req-42")
	r.ServeHTTP(w, req)

	line := buf.String()
	if !strings.Contains(line, "[HTTP] action=request") {
		t.Fatalf("access log not in the shared register: %q", line)
	}
	if !strings.Contains(line, "request_id=req-42") {
		t.Fatalf("request id missing from access log: %q", line)
	}
	if !strings.Contains(line, "method=GET path=/ping status=204") {
		t.Fatalf("request summary missing from access log: %q", line)
	}
}
