// Package server exposes card generation over HTTP.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"unicode/utf8"

	"github.com/labstack/echo/v4"

	"github.com/f3rmion/wishcard/internal/analyzer"
	"github.com/f3rmion/wishcard/internal/card"
	"github.com/f3rmion/wishcard/internal/compose"
	"github.com/f3rmion/wishcard/internal/export"
	"github.com/f3rmion/wishcard/internal/gallery"
	"github.com/f3rmion/wishcard/internal/session"
	"github.com/f3rmion/wishcard/internal/synth"
)

// MaxPromptLength bounds prompt size in characters.
const MaxPromptLength = 500

var errPromptTooLong = errors.New("prompt must be at most 500 characters")

// Handler serves the HTTP API.
type Handler struct {
	pipeline *export.Pipeline
	gallery  *gallery.Store
	logger   *slog.Logger
}

// NewHandler creates a handler. store may be nil to disable history.
func NewHandler(p *export.Pipeline, store *gallery.Store, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handler{pipeline: p, gallery: store, logger: logger}
}

// New returns an echo instance with middleware and routes registered.
func New(h *Handler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(RequestIDMiddleware())
	e.Use(LoggingMiddleware(h.logger))

	h.Register(e)
	return e
}

// Register adds the routes to e.
func (h *Handler) Register(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)
	e.GET("/v1/themes", h.Themes)
	e.GET("/v1/history", h.History)
	e.POST("/v1/analyze", h.Analyze)
	e.POST("/v1/cards", h.Cards)
	e.POST("/v1/pack", h.Pack)
	e.POST("/v1/render", h.Render)
}

func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) Themes(c echo.Context) error {
	cat := h.pipeline.Resolver().Catalog()
	out := make([]ThemeResp, 0, len(cat.IDs()))
	for _, id := range cat.IDs() {
		th, _ := cat.Lookup(id)
		out = append(out, toThemeResp(th))
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) History(c echo.Context) error {
	if h.gallery == nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "history is disabled"})
	}
	limit := 20
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 200 {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "limit must be an integer between 1 and 200"})
		}
		limit = n
	}
	entries, err := h.gallery.List(c.Request().Context(), limit)
	if err != nil {
		return h.mapError(c, err)
	}
	if entries == nil {
		entries = []gallery.Entry{}
	}
	return c.JSON(http.StatusOK, entries)
}

func (h *Handler) Analyze(c echo.Context) error {
	var req PromptRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid JSON body"})
	}
	if err := checkPrompt(req.Prompt); err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(http.StatusOK, analyzer.Analyze(req.Prompt))
}

func (h *Handler) Cards(c echo.Context) error {
	var req PromptRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid JSON body"})
	}
	s, err := h.newSession(req.Prompt)
	if err != nil {
		return h.mapError(c, err)
	}

	resp := CardsResponse{Analysis: s.Analysis()}
	for i, v := range s.Variations() {
		th, _ := s.Theme(i)
		resp.Variations = append(resp.Variations, VariationResp{Index: i, Variation: v, Theme: toThemeResp(th)})
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) Pack(c echo.Context) error {
	var req PackRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid JSON body"})
	}
	var rng synth.RNG
	if req.Seed != nil {
		rng = synth.NewSeededSource(*req.Seed)
	}
	return c.JSON(http.StatusOK, synth.NewPackGenerator(rng).Generate(req.GeneratorFormData))
}

func (h *Handler) Render(c echo.Context) error {
	var req RenderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid JSON body"})
	}
	s, err := h.newSession(req.Prompt)
	if err != nil {
		return h.mapError(c, err)
	}
	if req.Theme != "" {
		if err := s.OverrideTheme(req.Theme); err != nil {
			return h.mapError(c, err)
		}
	}

	job, err := s.Job(req.Variation, card.ParseAspect(req.Aspect))
	if err != nil {
		return h.mapError(c, err)
	}
	if req.Content != nil {
		job.Content = *req.Content
	}

	ctx := c.Request().Context()
	a, err := h.pipeline.Render(ctx, job)
	if err != nil {
		return h.mapError(c, err)
	}
	h.record(ctx, a)

	if req.Encoding == "dataurl" {
		return c.JSON(http.StatusOK, RenderResponse{
			ID:      a.ID,
			Theme:   a.Theme,
			Width:   a.Width,
			Height:  a.Height,
			DataURL: a.DataURL(),
		})
	}
	c.Response().Header().Set("X-Card-Id", a.ID)
	return c.Blob(http.StatusOK, a.MIME(), a.Data)
}

func (h *Handler) record(ctx context.Context, a export.Artifact) {
	if h.gallery == nil {
		return
	}
	if _, err := (export.GallerySink{Store: h.gallery}).Deliver(ctx, a); err != nil {
		h.logger.Warn("recording render failed", "id", a.ID, "error", err)
	}
}

func (h *Handler) newSession(prompt string) (*session.Session, error) {
	if err := checkPrompt(prompt); err != nil {
		return nil, err
	}
	return session.New(prompt, h.pipeline.Resolver())
}

func checkPrompt(prompt string) error {
	if utf8.RuneCountInString(prompt) > MaxPromptLength {
		return errPromptTooLong
	}
	return analyzer.ValidatePrompt(prompt)
}

func toThemeResp(th card.Theme) ThemeResp {
	return ThemeResp{
		Name:       th.Name,
		Background: th.Background.ID,
		Typography: th.Typography.ID,
		Decoration: th.DecorationStyle(),
	}
}

func (h *Handler) mapError(c echo.Context, err error) error {
	requestID, _ := c.Get("request_id").(string)

	switch {
	case errors.Is(err, analyzer.ErrPromptTooShort), errors.Is(err, errPromptTooLong),
		errors.Is(err, session.ErrIndexOutOfRange), errors.Is(err, export.ErrUnknownFormat):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, session.ErrUnknownTheme):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, compose.ErrUnsanitizedText):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: compose.ErrUnsanitizedText.Error()})
	case errors.Is(err, compose.ErrSurfaceUnavailable):
		h.logger.Error("render surface unavailable", "request_id", requestID, "error", err)
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "renderer unavailable"})
	default:
		h.logger.Error("internal error", "request_id", requestID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
