package middleware

import (
	"mime"
	"net/http"
	"regexp"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kingrain94/catalog-api/pkg/logger"
)

// suspiciousPatterns is matched against the path, query values and headers.
// Request bodies are bound into typed DTOs and never inspected here, so
// product descriptions may contain anything.
var suspiciousPatterns = compilePatterns(
	// SQL injection
	`(?i)\bUNION\b.*\bSELECT\b`,
	`(?i)\bOR\b.*=.*\bOR\b`,
	`(?i)\bINSERT\b.*\bINTO\b`,
	`(?i)\bDELETE\b.*\bFROM\b`,
	`(?i)\bUPDATE\b.*\bSET\b`,
	`(?i)\b(DROP|ALTER)\b.*\bTABLE\b`,
	`/\*.*\*/`,
	// XSS
	`(?i)<(script|iframe|object|embed)\b`,
	`(?i)javascript:`,
	`(?i)\bon(load|click|error)=`,
	// Path traversal
	`\.\.[/\\]`,
	`(?i)%2e%2e(%2f|%5c)`,
)

// uninspectedHeaders carry credentials or opaque tokens.
var uninspectedHeaders = []string{"Authorization", "Cookie", HeaderAdminKey}

func compilePatterns(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		compiled[i] = regexp.MustCompile(p)
	}
	return compiled
}

type ValidationMiddleware struct {
	logger *logger.Logger
}

func NewValidationMiddleware(logger *logger.Logger) *ValidationMiddleware {
	return &ValidationMiddleware{
		logger: logger,
	}
}

// SanitizeInput strips null bytes and control characters from query values
// and headers before they reach the tenant resolver and handlers.
func (m *ValidationMiddleware) SanitizeInput() gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Request.URL.Query()
		if sanitizeValues(query) {
			m.logger.Info("Sanitized query string", zap.String("path", c.Request.URL.Path))
			c.Request.URL.RawQuery = query.Encode()
		}

		if sanitizeValues(c.Request.Header, uninspectedHeaders...) {
			m.logger.Info("Sanitized headers", zap.String("path", c.Request.URL.Path))
		}

		c.Next()
	}
}

// sanitizeValues rewrites values in place and reports whether anything changed.
func sanitizeValues[M ~map[string][]string](values M, skip ...string) bool {
	changed := false
	for key, vs := range values {
		if slices.Contains(skip, key) {
			continue
		}
		for i, v := range vs {
			if clean := sanitizeString(v); clean != v {
				vs[i] = clean
				changed = true
			}
		}
	}
	return changed
}

// ValidateContentType rejects bodies whose media type is not in allowed.
// Parameters such as charset or a multipart boundary are ignored.
func (m *ValidationMiddleware) ValidateContentType(allowed ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength == 0 || c.Request.Method == http.MethodGet || c.Request.Method == http.MethodDelete {
			c.Next()
			return
		}

		raw := c.GetHeader("Content-Type")
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Content-Type header is required"})
			return
		}

		mediaType, _, err := mime.ParseMediaType(raw)
		if err != nil || !slices.Contains(allowed, mediaType) {
			c.AbortWithStatusJSON(http.StatusUnsupportedMediaType, gin.H{
				"error":         "Unsupported Content-Type",
				"allowed_types": allowed,
			})
			return
		}

		c.Next()
	}
}

// ValidateRequestSize limits request body size. The limit has to leave room
// for the largest accepted product image plus multipart framing.
func (m *ValidationMiddleware) ValidateRequestSize(maxSize int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxSize {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{
				"error":    "Request body too large",
				"max_size": maxSize,
			})
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSize)
		c.Next()
	}
}

// BlockSuspiciousPatterns rejects requests whose path, query or headers look
// like an injection attempt.
func (m *ValidationMiddleware) BlockSuspiciousPatterns() gin.HandlerFunc {
	return func(c *gin.Context) {
		source, key, ok := inspectRequest(c.Request)
		if ok {
			c.Next()
			return
		}

		m.logger.Warn("Blocked suspicious request",
			zap.String("source", source),
			zap.String("key", key),
			zap.String("path", c.Request.URL.Path),
			zap.String("ip", c.ClientIP()))
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
	}
}

// inspectRequest returns where the first suspicious value was found, or
// ok=true when the request is clean.
func inspectRequest(r *http.Request) (source, key string, ok bool) {
	if isSuspicious(r.URL.Path) {
		return "path", "", false
	}
	for k, values := range r.URL.Query() {
		if slices.ContainsFunc(values, isSuspicious) {
			return "query", k, false
		}
	}
	for k, values := range r.Header {
		if slices.Contains(uninspectedHeaders, k) {
			continue
		}
		if slices.ContainsFunc(values, isSuspicious) {
			return "header", k, false
		}
	}
	return "", "", true
}

func isSuspicious(input string) bool {
	return slices.ContainsFunc(suspiciousPatterns, func(p *regexp.Regexp) bool {
		return p.MatchString(input)
	})
}

// sanitizeString drops null bytes and control characters other than
// newline, carriage return and tab.
func sanitizeString(input string) string {
	return strings.Map(func(r rune) rune {
		if r < 32 && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, input)
}
