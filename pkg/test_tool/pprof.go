package testtool

import (
	"net/http"
	_ "net/http/pprof" // registers /debug/pprof on http.DefaultServeMux

	"youtube_stats_dashboard/pkg/config"
	"youtube_stats_dashboard/pkg/logger"

	"go.uber.org/zap"
)

// StartPprof serve pprof on addr outside production, an empty addr disables it
func StartPprof(addr string) bool {
	if addr == "" {
		return false
	}
	if config.IsProduction() {
		logger.Log.Info("Production environment detected, pprof is disabled.")
		return false
	}

	go func() {
		logger.Log.Info("Starting pprof server", zap.String("addr", addr))
		if err := http.ListenAndServe(addr, nil); err != nil {
			logger.Log.Errorf("pprof server failed:", err)
		}
	}()
	return true
}
