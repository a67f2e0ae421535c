package middleware

import (
	"io"

	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
)

// AccessLogMiddleware writes one line per request to w, skipping the health
// probe.
func AccessLogMiddleware(w io.Writer) gin.HandlerFunc {
	return ginlog.SetLogger(
		ginlog.WithWriter(w),
		ginlog.WithSkipPath([]string{"/api/health"}),
		ginlog.WithUTC(true),
	)
}
