package app

import (
	"log/slog"
	"os"

	"dronefleet-service/internal/logx"
)

// NewLogger builds the JSON stdout logger used by the whole service.
func NewLogger() logx.Logger {
	base := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	return logx.NewSlogAdapter(base)
}
