package appcontext

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/flowmanager-dev/flowmanager/internal/auth"
)

// Context carries the shared dependencies of the application. It is built
// once at startup and handed to handler factories explicitly, so there is no
// package-level database or logger state.
type Context struct {
	DB     *gorm.DB
	Logger *zap.Logger
	JWT    *auth.JWTManager
}
