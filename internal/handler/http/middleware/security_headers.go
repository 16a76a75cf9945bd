package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

var cspDirectives = []string{
	"default-src 'self' vercel.live;",
	"worker-src 'self' blob:;",
	"script-src 'self' 'unsafe-eval' 'unsafe-inline' *.vercel.app;",
	"child-src *.scdn.co *.spotify.com *.jahir.dev unavatar.now.sh *.unavatar.io;",
	"style-src 'self' 'unsafe-inline';",
	"img-src * blob: data:;",
	"object-src 'none';",
	"base-uri 'none';",
	"media-src 'self' video.twimg.com;",
	"connect-src *;",
	"font-src 'self' data:;",
}

// ContentSecurityPolicy is the single-line CSP sent with every response.
var ContentSecurityPolicy = strings.Join(cspDirectives, " ")

var securityHeaders = [][2]string{
	{"Content-Security-Policy", ContentSecurityPolicy},
	{"Referrer-Policy", "origin-when-cross-origin"},
	{"X-Frame-Options", "DENY"},
	{"X-Content-Type-Options", "nosniff"},
	{"X-DNS-Prefetch-Control", "on"},
	{"Strict-Transport-Security", "max-age=31536000; includeSubDomains; preload"},
	{"Permissions-Policy", "camera=(), microphone=(), geolocation=()"},
}

// SecurityHeaders sets the site-wide security headers before the handler runs.
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		for _, kv := range securityHeaders {
			h.Set(kv[0], kv[1])
		}
		c.Next()
	}
}
