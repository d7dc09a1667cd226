package middleware

import (
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

// Hits counts fileserver requests for the admin metrics page. The zero value
// is ready to use.
type Hits struct {
	n atomic.Int64
}

func (h *Hits) Inc() {
	h.n.Add(1)
}

func (h *Hits) Load() int64 {
	return h.n.Load()
}

func (h *Hits) Reset() {
	h.n.Store(0)
}

// CountHits increments hits before passing the request on.
func CountHits(hits *Hits) gin.HandlerFunc {
	return func(c *gin.Context) {
		hits.Inc()
		c.Next()
	}
}
