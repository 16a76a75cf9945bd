package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	usecasecontract "github.com/jasonzhang/portfolio/internal/usecase/contract"
)

// AccessLog writes one line per request through the application logger.
func AccessLog(logger usecasecontract.IAppLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		latency := time.Since(start)
		switch {
		case status >= 500:
			logger.Errorf("%s %s %d %s ip=%s errors=%s", c.Request.Method, c.Request.URL.Path, status, latency, c.ClientIP(), c.Errors.String())
		case status >= 400:
			logger.Warnf("%s %s %d %s ip=%s", c.Request.Method, c.Request.URL.Path, status, latency, c.ClientIP())
		default:
			logger.Infof("%s %s %d %s", c.Request.Method, c.Request.URL.Path, status, latency)
		}
	}
}
