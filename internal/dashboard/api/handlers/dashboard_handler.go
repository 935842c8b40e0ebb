package handlers

import (
	"bytes"
	"encoding/csv"
	"errors"
	"strconv"
	"strings"

	"youtube_stats_dashboard/internal/dashboard/app"
	"youtube_stats_dashboard/internal/dashboard/domain"
	"youtube_stats_dashboard/pkg/logger"
	"youtube_stats_dashboard/pkg/middlewares"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"
)

const (
	// MsgCannotDisplayVideo inline message for a video id that cannot be played
	MsgCannotDisplayVideo = "cannot display video"

	msgUpstreamFailed = "the YouTube API request failed"
	csvFileName       = "videos.csv"
)

// DashboardHandler http surface of the dashboard
type DashboardHandler struct {
	usecase app.DashboardUseCase
}

// NewDashboardHandler create DashboardHandler
func NewDashboardHandler(usecase app.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: usecase}
}

type orderOption struct {
	Value    string
	Label    string
	Selected bool
}

// Index GET /
// q, order and limit select the search; video_id with play=1 adds the player
func (h *DashboardHandler) Index(c *fiber.Ctx) error {
	q, err := h.parseQuery(c)
	if err != nil {
		return err
	}

	table, err := h.usecase.GetData(c.UserContext(), q)
	if err != nil {
		return toFiberError(err)
	}

	videoID := strings.TrimSpace(c.Query("video_id"))
	bind := fiber.Map{
		"Table":   table,
		"Orders":  orderOptions(table.Query.Order),
		"Label":   table.Query.Order.Label(),
		"VideoID": videoID,
	}

	if c.Query("play") != "" {
		playback, err := h.usecase.Playback(videoID)
		if err != nil {
			bind["PlaybackError"] = MsgCannotDisplayVideo
		} else if playback != nil {
			bind["Playback"] = playback
		}
	}

	return c.Render("index", bind, "layout")
}

// Videos GET /api/videos
func (h *DashboardHandler) Videos(c *fiber.Ctx) error {
	q, err := h.parseQuery(c)
	if err != nil {
		return err
	}

	table, err := h.usecase.GetData(c.UserContext(), q)
	if err != nil {
		return toFiberError(err)
	}
	return c.JSON(table)
}

// VideosCSV GET /api/videos.csv
func (h *DashboardHandler) VideosCSV(c *fiber.Ctx) error {
	q, err := h.parseQuery(c)
	if err != nil {
		return err
	}

	table, err := h.usecase.GetData(c.UserContext(), q)
	if err != nil {
		return toFiberError(err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(table.Columns); err != nil {
		return err
	}
	for _, row := range table.Rows {
		if err := w.Write(row.Record()); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	c.Attachment(csvFileName)
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	return c.Send(buf.Bytes())
}

func (h *DashboardHandler) parseQuery(c *fiber.Ctx) (domain.SearchQuery, error) {
	defaults := h.usecase.Defaults()

	order, err := domain.ParseSearchOrder(c.Query("order"), defaults.Order)
	if err != nil {
		return domain.SearchQuery{}, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	q := domain.SearchQuery{
		Query:      utils.CopyString(c.Query("q", defaults.Query)),
		MaxResults: defaults.MaxResults,
		Order:      order,
	}
	if limit := c.Query("limit"); limit != "" {
		n, err := strconv.ParseInt(limit, 10, 64)
		if err != nil {
			return domain.SearchQuery{}, fiber.NewError(fiber.StatusBadRequest, "limit must be a number")
		}
		q.MaxResults = n
	}
	return q, nil
}

func orderOptions(selected domain.SearchOrder) []orderOption {
	orders := domain.SearchOrders()
	out := make([]orderOption, 0, len(orders))
	for _, o := range orders {
		out = append(out, orderOption{Value: string(o), Label: o.Label(), Selected: o == selected})
	}
	return out
}

// toFiberError invalid input is the caller's fault, anything else failed upstream
func toFiberError(err error) error {
	if errors.Is(err, domain.ErrInvalidQuery) {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return fiber.NewError(fiber.StatusBadGateway, msgUpstreamFailed)
}

// ErrorHandler app level error handler: JSON under /api, the error page elsewhere
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "internal server error"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	} else {
		logger.Log.Error("unhandled error", zap.String("request_id", middlewares.RequestID(c)), zap.Error(err))
	}

	c.Status(code)
	if strings.HasPrefix(c.Path(), "/api/") {
		return c.JSON(fiber.Map{"error": message})
	}

	if renderErr := c.Render("error", fiber.Map{
		"Status":    code,
		"Message":   message,
		"RequestID": middlewares.RequestID(c),
	}, "layout"); renderErr != nil {
		logger.Log.Error("render error page", zap.Error(renderErr))
		return c.SendString(message)
	}
	return nil
}
