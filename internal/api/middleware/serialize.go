package middleware

import (
	"sync"

	"github.com/gin-gonic/gin"
)

// SerializeRequests funnels all requests through a single mutex, so
// user actions run one at a time to completion even though the HTTP
// server is concurrent. The configuration model assumes strictly
// sequential request/response execution against the DNS server; this
// keeps that property instead of reintroducing concurrent mutation.
func SerializeRequests() gin.HandlerFunc {
	var mu sync.Mutex
	return func(c *gin.Context) {
		mu.Lock()
		defer mu.Unlock()
		c.Next()
	}
}
