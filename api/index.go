package api

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"jasit-store/app"
	"jasit-store/config"
	"jasit-store/models"
	"jasit-store/utils"

	"go.uber.org/zap"
)

var (
	router  http.Handler
	once    sync.Once
	initErr error
)

func initApp() {
	once.Do(func() {
		cfg := config.LoadConfig()

		log, err := utils.NewLogger(cfg.AppEnv)
		if err != nil {
			initErr = err
			return
		}

		application, err := app.NewApp(context.Background(), cfg, log)
		if err != nil {
			log.Error("serverless init failed", zap.Error(err))
			initErr = err
			return
		}
		application.StartJanitor(context.Background())
		router = application.Router
	})
}

// Handler is the serverless entry point. The app is built once per instance.
func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	if initErr != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		json.NewEncoder(w).Encode(models.ErrorResponse{
			Success: false,
			Message: "Layanan belum siap",
		})
		return
	}
	router.ServeHTTP(w, r)
}
