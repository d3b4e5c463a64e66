package main

import (
	"log"
	"os"

	"log/slog"

	"github.com/joho/godotenv"

	"tissovison.com/app/internal/app"
	apphttp "tissovison.com/app/internal/http"
	"tissovison.com/app/internal/storage"
)

func main() {
	// Load .env file (ignore error if not found - prod uses real env vars)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	st, err := storage.FromEnv()
	if err != nil {
		log.Fatalf("failed to open storage: %v", err)
	}
	logger.Info("storage ready", "driver", st.Driver)

	a := app.New(logger, st.Store)

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	r := apphttp.NewRouter(a)
	_ = r.Run(addr)
}
