package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/fyyur/internal/model"
	"github.com/iliyamo/fyyur/internal/service"
)

// showForm feeds forms/show.
type showForm struct {
	Input   service.ShowInput `json:"input"`
	Venues  []model.Venue     `json:"venues"`
	Artists []model.Artist    `json:"artists"`
}

func (h *Handler) newShowForm(ctx context.Context, in service.ShowInput) (showForm, error) {
	venues, err := h.svc.ListVenues(ctx)
	if err != nil {
		return showForm{}, err
	}
	artists, err := h.svc.ListArtists(ctx)
	if err != nil {
		return showForm{}, err
	}
	return showForm{Input: in, Venues: venues, Artists: artists}, nil
}

// ListShows renders every show ordered by start time.
func (h *Handler) ListShows(c echo.Context) error {
	ctx, cancel := withTimeout(c)
	defer cancel()
	shows, err := h.svc.ListShows(ctx)
	if err != nil {
		return h.fail(c, err)
	}
	return h.page(c, http.StatusOK, "pages/shows", "Shows", shows)
}

// NewShowForm renders the show form with venue and artist pickers.
func (h *Handler) NewShowForm(c echo.Context) error {
	ctx, cancel := withTimeout(c)
	defer cancel()
	form, err := h.newShowForm(ctx, service.ShowInput{})
	if err != nil {
		return h.fail(c, err)
	}
	return h.page(c, http.StatusOK, "forms/show", "New show", form)
}

// CreateShow books a show.  Browsers are sent to the show list.
func (h *Handler) CreateShow(c echo.Context) error {
	ctx, cancel := withTimeout(c)
	defer cancel()

	var in service.ShowInput
	bindErr := c.Bind(&in)
	var (
		show *model.Show
		err  error
	)
	if bindErr != nil {
		err = bindError(bindErr)
	} else {
		show, err = h.svc.CreateShow(ctx, in)
	}
	if err != nil {
		if wantsJSON(c) {
			return h.fail(c, err)
		}
		form, ferr := h.newShowForm(ctx, in)
		if ferr != nil {
			return h.fail(c, ferr)
		}
		return h.rejectForm(c, err, "forms/show", "New show", form, "Show could not be listed.")
	}
	return h.accepted(c, http.StatusCreated, show, "/shows", "Show was successfully listed!")
}
