package errprocess

import (
	"fmt"

	"youtube_stats_dashboard/pkg/logger"

	"go.uber.org/zap"
)

// Wrap log msg with the cause and return an error that still matches cause via errors.Is
func Wrap(msg string, cause error, fields ...zap.Field) error {
	logger.Log.Error(msg, append(fields, zap.Error(cause))...)
	return fmt.Errorf("%s: %w", msg, cause)
}
