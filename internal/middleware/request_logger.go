package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/flowmanager-dev/flowmanager/internal/appcontext"
)

const RequestIDHeader = "X-Request-ID"

// RequestLogger tags each request with a uuid and logs method, path, status
// and latency through the shared zap logger.
func RequestLogger(appCtx *appcontext.Context) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestID := ctx.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		ctx.Writer.Header().Set(RequestIDHeader, requestID)

		start := time.Now()
		ctx.Next()

		appCtx.Logger.Info("request",
			zap.String("request_id", requestID),
			zap.String("method", ctx.Request.Method),
			zap.String("path", ctx.Request.URL.Path),
			zap.Int("status", ctx.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
