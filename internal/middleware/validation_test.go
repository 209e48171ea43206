package middleware

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/kingrain94/catalog-api/pkg/logger"
)

func newValidationRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(handlers...)
	echo := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"search": c.Query("search"), "slug": c.GetHeader("X-Tenant-Slug"), "auth": c.GetHeader("Authorization")})
	}
	router.GET("/products", echo)
	router.POST("/products", echo)
	return router
}

func TestBlockSuspiciousPatterns(t *testing.T) {
	m := NewValidationMiddleware(logger.NewNop())
	router := newValidationRouter(m.BlockSuspiciousPatterns())

	tests := []struct {
		name   string
		target string
		header map[string]string
		want   int
	}{
		{name: "plain search", target: "/products?search=pizza%20margherita", want: http.StatusOK},
		{name: "hyphenated search", target: "/products?search=extra--large", want: http.StatusOK},
		{name: "union select", target: "/products?search=1%20UNION%20SELECT%20*", want: http.StatusBadRequest},
		{name: "script tag", target: "/products?search=%3Cscript%3E", want: http.StatusBadRequest},
		{name: "traversal header", target: "/products", header: map[string]string{"X-Tenant-Slug": "../etc"}, want: http.StatusBadRequest},
		{name: "authorization is not inspected", target: "/products", header: map[string]string{"Authorization": "Bearer a/*b*/c"}, want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestSanitizeInput(t *testing.T) {
	m := NewValidationMiddleware(logger.NewNop())
	router := newValidationRouter(m.SanitizeInput())

	req := httptest.NewRequest(http.MethodGet, "/products?search=piz%00za%07", nil)
	req.Header.Set("Authorization", "Bearer token")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"search":"pizza","slug":"","auth":"Bearer token"}`, w.Body.String())
}

func TestValidateContentType(t *testing.T) {
	m := NewValidationMiddleware(logger.NewNop())
	router := newValidationRouter(m.ValidateContentType("application/json", "multipart/form-data"))

	var form bytes.Buffer
	mw := multipart.NewWriter(&form)
	_ = mw.WriteField("name", "pizza")
	_ = mw.Close()

	tests := []struct {
		name        string
		contentType string
		body        []byte
		want        int
	}{
		{name: "json with charset", contentType: "application/json; charset=utf-8", body: []byte(`{}`), want: http.StatusOK},
		{name: "multipart with boundary", contentType: mw.FormDataContentType(), body: form.Bytes(), want: http.StatusOK},
		{name: "missing", body: []byte(`{}`), want: http.StatusBadRequest},
		{name: "xml", contentType: "application/xml", body: []byte(`<a/>`), want: http.StatusUnsupportedMediaType},
		{name: "empty body", contentType: "", body: nil, want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestValidateRequestSize(t *testing.T) {
	m := NewValidationMiddleware(logger.NewNop())
	router := newValidationRouter(m.ValidateRequestSize(8))

	req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewBufferString(`{"name":"too long"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}
