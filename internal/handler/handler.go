// Package handler exposes the HTTP handlers.  Every page is rendered as
// HTML by default and as JSON when the client sends
// Accept: application/json.  Error kinds are mapped onto status codes in
// one place (statusFor).
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/iliyamo/fyyur/internal/flash"
	"github.com/iliyamo/fyyur/internal/repository"
	"github.com/iliyamo/fyyur/internal/service"
	"github.com/iliyamo/fyyur/internal/view"
)

// requestTimeout bounds the database work of a single request.
const requestTimeout = 5 * time.Second

// Handler serves every page of the site.
type Handler struct {
	svc   *service.Service
	flash *flash.Store
	log   *zap.Logger
}

// New builds a Handler.  svc and flashes are required.
func New(svc *service.Service, flashes *flash.Store, log *zap.Logger) *Handler {
	if svc == nil || flashes == nil {
		panic("handler: service and flash store are required")
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{svc: svc, flash: flashes, log: log.Named("http")}
}

// errorBody is the JSON error payload.
type errorBody struct {
	Error   string            `json:"error"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// errorPage is the data of the HTML error page.
type errorPage struct {
	Status  int
	Message string
}

func withTimeout(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), requestTimeout)
}

// wantsJSON reports whether the client asked for JSON.
func wantsJSON(c echo.Context) bool {
	return strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON)
}

// parseID reads the :id path parameter.
func parseID(c echo.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	return id, err == nil && id > 0
}

// statusFor maps an error onto an HTTP status and a short kind string.
func statusFor(err error) (int, string) {
	var ve *service.ValidationError
	var he *echo.HTTPError
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest, "validation"
	case errors.Is(err, service.ErrInvalidArgument):
		return http.StatusBadRequest, "invalid_argument"
	case repository.IsNotFound(err):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, repository.ErrConflict):
		return http.StatusConflict, "conflict"
	case errors.Is(err, repository.ErrUnavailable), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, "unavailable"
	case errors.As(err, &he):
		return he.Code, strings.ToLower(strings.ReplaceAll(http.StatusText(he.Code), " ", "_"))
	}
	return http.StatusInternalServerError, "internal"
}

// userMessage is the text shown for an error kind.  Internal details
// never reach the client.
func userMessage(status int, err error) string {
	var ve *service.ValidationError
	var he *echo.HTTPError
	switch {
	case errors.As(err, &ve):
		return "Please correct the highlighted fields."
	case errors.Is(err, repository.ErrVenueNotFound):
		return "Venue not found"
	case errors.Is(err, repository.ErrArtistNotFound):
		return "Artist not found"
	case status == http.StatusConflict:
		return "That venue or artist is already booked at this time."
	case status == http.StatusServiceUnavailable:
		return "The database is unavailable right now. Please try again shortly."
	case errors.As(err, &he):
		if msg, ok := he.Message.(string); ok {
			return msg
		}
	case status == http.StatusBadRequest:
		return err.Error()
	}
	return http.StatusText(status)
}

// page renders a successful response: data as JSON, or the named
// template wrapped in a view.Page.
func (h *Handler) page(c echo.Context, status int, name, title string, data any) error {
	if wantsJSON(c) {
		return c.JSON(status, data)
	}
	return c.Render(status, name, view.Page{Title: title, Flash: h.flash.Pop(c), Data: data})
}

// form re-renders a form with field errors and an optional message.
func (h *Handler) form(c echo.Context, status int, name, title string, data any, errs map[string]string, note string) error {
	msgs := h.flash.Pop(c)
	if note != "" {
		msgs = append(msgs, flash.Message{Kind: flash.Error, Text: note})
	}
	return c.Render(status, name, view.Page{Title: title, Flash: msgs, Errors: errs, Data: data})
}

// fail writes err as a JSON error body or the HTML error page.
func (h *Handler) fail(c echo.Context, err error) error {
	status, kind := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.log.Error("request failed",
			zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			zap.String("method", c.Request().Method),
			zap.String("path", c.Request().URL.Path),
			zap.Int("status", status),
			zap.Error(err))
	}
	msg := userMessage(status, err)
	if wantsJSON(c) {
		body := errorBody{Error: kind, Message: msg}
		if ve, ok := service.AsValidation(err); ok {
			body.Fields = ve.Fields
		}
		return c.JSON(status, body)
	}
	return c.Render(status, "pages/error", view.Page{
		Title: http.StatusText(status),
		Flash: h.flash.Pop(c),
		Data:  errorPage{Status: status, Message: msg},
	})
}

// bindError turns a binder failure into a validation error.
func bindError(err error) error {
	msg := "could not be read"
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if m, ok := he.Message.(string); ok {
			msg = m
		}
	}
	return &service.ValidationError{Fields: map[string]string{"form": msg}}
}

// ErrorHandler is installed as echo's HTTPErrorHandler so unknown routes
// and framework errors share the error page.
func (h *Handler) ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	if ferr := h.fail(c, err); ferr != nil {
		h.log.Error("write error response", zap.Error(ferr))
	}
}
