package middleware

import (
	"fmt"
	"net/http"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"umrah-gateway/internal/logger"
)

// Netlify preview deploys get ad-hoc subdomains, so they are allowed by
// pattern rather than listed one by one.
var netlifyOrigin = regexp.MustCompile(`^https://[a-zA-Z0-9-]+\.netlify\.app$`)

// CORS allows requests without an Origin header (curl, server-to-server; an
// empty value is treated the same as absent), the configured frontend URL,
// and any *.netlify.app origin. Everything else is rejected outright.
func CORS(frontendURL string, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		if origin == "" {
			if c.Request.Method == http.MethodOptions {
				c.AbortWithStatus(http.StatusNoContent)
				return
			}
			c.Next()
			return
		}

		allowed := (frontendURL != "" && origin == frontendURL) || netlifyOrigin.MatchString(origin)
		if !allowed {
			log.LogSecurity("CORS", fmt.Sprintf("Rejected origin: %s", origin))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "CORS not allowed from this origin: " + origin,
			})
			return
		}

		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func EnhancedLogger(log *logger.Logger) gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		duration := param.Latency.String()
		status := fmt.Sprintf("%d", param.StatusCode)

		if param.StatusCode >= 500 {
			log.Error("API", fmt.Sprintf("%s %s - %s (%s) - ERROR: %s",
				param.Method, param.Path, status, duration, param.ErrorMessage))
		} else if param.StatusCode >= 400 {
			log.Warn("API", fmt.Sprintf("%s %s - %s (%s) - Client Error",
				param.Method, param.Path, status, duration))
		} else {
			log.LogAPI(param.Method, param.Path, status, duration)
		}

		return ""
	})
}

func Recovery(log *logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error("PANIC", fmt.Sprintf("Recovered from panic: %v", recovered))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Internal server error",
		})
	})
}

func RateLimit(log *logger.Logger) gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Every(time.Second), 100)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			log.LogSecurity("RATE_LIMIT", fmt.Sprintf("Rate limit exceeded for IP: %s", c.ClientIP()))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "Rate limit exceeded",
				"retry_after": "1s",
			})
			return
		}
		c.Next()
	}
}
