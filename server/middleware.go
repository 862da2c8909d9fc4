package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	// ContextRequestID is the gin context key holding the request's uuid.UUID.
	ContextRequestID = "requestID"
	// HeaderRequestID carries the request ID back to the client.
	HeaderRequestID = "X-Request-ID"
)

// RequestLogger assigns every request a UUID, echoes it in X-Request-ID and
// logs one structured line when the handler returns.
func RequestLogger(log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.New()
		c.Set(ContextRequestID, id)
		c.Header(HeaderRequestID, id.String())

		start := time.Now()
		c.Next()

		entry := log.WithFields(logrus.Fields{
			"request_id": id.String(),
			"method":     c.Request.Method,
			"path":       c.FullPath(),
			"status":     c.Writer.Status(),
			"elapsed":    time.Since(start).String(),
		})
		switch {
		case c.Writer.Status() >= 500:
			entry.Error("request failed")
		case c.Writer.Status() >= 400:
			entry.Warn("request rejected")
		default:
			entry.Info("request served")
		}
	}
}

// requestID returns the ID assigned by RequestLogger, or uuid.Nil when the
// middleware is not installed.
func requestID(c *gin.Context) uuid.UUID {
	if v, ok := c.Get(ContextRequestID); ok {
		if id, ok := v.(uuid.UUID); ok {
			return id
		}
	}
	return uuid.Nil
}
