package helpers

import (
	"context"
	"log/slog"

	"github.com/GregMSThompson/retail-backend/pkg/logger"
)

// TestCtx returns a context carrying a discarding logger, so service code
// under test can log freely.
func TestCtx() context.Context {
	log := slog.New(logger.NewTestHandler(slog.LevelInfo))
	return logger.ToContext(context.Background(), log)
}
