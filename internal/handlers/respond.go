package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/flowmanager-dev/flowmanager/internal/appcontext"
	"github.com/flowmanager-dev/flowmanager/internal/store"
)

// Every endpoint answers with the same envelope: {ok, data?, error?}.

func respondData(ctx *gin.Context, status int, data interface{}) {
	ctx.JSON(status, gin.H{"ok": true, "data": data})
}

func respondError(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, gin.H{"ok": false, "error": message})
}

// respondStoreError maps store failures onto HTTP statuses. Unexpected errors
// are logged server-side and surfaced as a generic 500.
func respondStoreError(appCtx *appcontext.Context, ctx *gin.Context, err error) {
	var emailTaken *store.EmailTakenError

	switch {
	case errors.Is(err, store.ErrNotFound):
		respondError(ctx, http.StatusNotFound, "Not found")
	case errors.Is(err, store.ErrInvalidCredentials):
		respondError(ctx, http.StatusUnauthorized, store.ErrInvalidCredentials.Error())
	case errors.As(err, &emailTaken):
		respondError(ctx, http.StatusConflict, emailTaken.Error())
	case errors.Is(err, store.ErrInvalidProgress),
		errors.Is(err, store.ErrRoleNotFound),
		errors.Is(err, store.ErrInvalidSupervisor):
		respondError(ctx, http.StatusBadRequest, err.Error())
	default:
		appCtx.Logger.Error("unexpected error", zap.Error(err), zap.String("path", ctx.Request.URL.Path))
		respondError(ctx, http.StatusInternalServerError, "Internal server error")
	}
}

func parseIDParam(ctx *gin.Context, name string) (uint, error) {
	raw := ctx.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return uint(id), nil
}

const dateLayout = "2006-01-02"

func parseDate(value string) (datatypes.Date, error) {
	if value == "" {
		return datatypes.Date{}, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return datatypes.Date{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", value)
	}
	return datatypes.Date(t), nil
}

func formatDate(d datatypes.Date) string {
	t := time.Time(d)
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}
