package comm

import (
	"fmt"
	"strconv"

	"youtube_stats_dashboard/pkg/config"
	"youtube_stats_dashboard/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ConnectCheck liveness probe
func ConnectCheck(c *fiber.Ctx) error {
	return c.SendString(fmt.Sprintf("%s start!", config.EnvConfig.Dashboard))
}

// DebugLogFlag toggle debug log flag
// POST /debug?service=<name>&status=<bool>
func DebugLogFlag(c *fiber.Ctx) error {
	service := c.Query("service")
	statusStr := c.Query("status")
	logger.Log.Info("debug", zap.String("service", service), zap.String("status", statusStr))

	status, err := strconv.ParseBool(statusStr)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid status value")
	}

	switch service {
	case "", config.EnvConfig.Dashboard:
		logger.Log.SetDebugMode(status)
	default:
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("unknown service %q", service))
	}
	return c.SendString(fmt.Sprintf("service[%s]: debug mode is : %t", config.EnvConfig.Dashboard, status))
}
