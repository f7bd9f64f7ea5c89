package main

import (
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/flowmanager-dev/flowmanager/internal/config"
	"github.com/flowmanager-dev/flowmanager/internal/router"
)

func main() {
	appCtx, err := config.InitContext()

	if err != nil {
		log.Fatalf("Failed to initialize application context: %v", err)
	}

	defer func() {
		_ = appCtx.Logger.Sync()
	}()

	r := router.NewRouter(appCtx)

	var port string

	if port = os.Getenv("PORT"); port == "" {
		port = "3000"
		appCtx.Logger.Info("PORT not set, defaulting to 3000")
	}

	if err = r.Run(":" + port); err != nil {
		appCtx.Logger.Fatal("Failed to start server", zap.Error(err))
	}
}
