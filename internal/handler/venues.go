package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/fyyur/internal/model"
	"github.com/iliyamo/fyyur/internal/repository"
	"github.com/iliyamo/fyyur/internal/service"
)

func newVenueForm(action string, editing bool, in service.VenueInput) venueForm {
	return venueForm{Action: action, Editing: editing, Input: in, States: model.States, Genres: model.Genres}
}

// ListVenues renders venues grouped by (city, state).
func (h *Handler) ListVenues(c echo.Context) error {
	ctx, cancel := withTimeout(c)
	defer cancel()
	areas, err := h.svc.VenueAreas(ctx)
	if err != nil {
		return h.fail(c, err)
	}
	return h.page(c, http.StatusOK, "pages/venues", "Venues", areas)
}

// SearchVenues handles POST /venues/search.
func (h *Handler) SearchVenues(c echo.Context) error {
	var in searchForm
	if err := c.Bind(&in); err != nil {
		return h.fail(c, bindError(err))
	}
	ctx, cancel := withTimeout(c)
	defer cancel()
	res, err := h.svc.SearchVenues(ctx, in.Term)
	if err != nil {
		return h.fail(c, err)
	}
	if wantsJSON(c) {
		return c.JSON(http.StatusOK, res)
	}
	return h.page(c, http.StatusOK, "pages/search", "Venue search", searchPage{Base: "/venues", Result: res})
}

// ShowVenue renders one venue with its past and upcoming shows.
func (h *Handler) ShowVenue(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return h.fail(c, repository.ErrVenueNotFound)
	}
	ctx, cancel := withTimeout(c)
	defer cancel()
	detail, err := h.svc.VenueDetail(ctx, id)
	if err != nil {
		return h.fail(c, err)
	}
	return h.page(c, http.StatusOK, "pages/venue", detail.Name, detail)
}

// NewVenueForm renders the empty venue form.
func (h *Handler) NewVenueForm(c echo.Context) error {
	return h.page(c, http.StatusOK, "forms/venue", "New venue", newVenueForm("/venues/create", false, service.VenueInput{}))
}

// CreateVenue handles the venue form submission.
func (h *Handler) CreateVenue(c echo.Context) error {
	var in service.VenueInput
	if err := c.Bind(&in); err != nil {
		return h.rejectForm(c, bindError(err), "forms/venue", "New venue", newVenueForm("/venues/create", false, in), "")
	}
	ctx, cancel := withTimeout(c)
	defer cancel()
	v, err := h.svc.CreateVenue(ctx, in)
	if err != nil {
		return h.rejectForm(c, err, "forms/venue", "New venue", newVenueForm("/venues/create", false, in),
			fmt.Sprintf("Venue %s could not be listed.", in.Name))
	}
	return h.accepted(c, http.StatusCreated, v, fmt.Sprintf("/venues/%d", v.ID),
		fmt.Sprintf("Venue %s was successfully listed!", v.Name))
}

// EditVenueForm renders the venue form filled with the stored values.
func (h *Handler) EditVenueForm(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return h.fail(c, repository.ErrVenueNotFound)
	}
	ctx, cancel := withTimeout(c)
	defer cancel()
	v, err := h.svc.Venue(ctx, id)
	if err != nil {
		return h.fail(c, err)
	}
	return h.page(c, http.StatusOK, "forms/venue", "Edit "+v.Name,
		newVenueForm(fmt.Sprintf("/venues/%d/edit", id), true, service.VenueInputFrom(*v)))
}

// UpdateVenue handles the edit form submission.
func (h *Handler) UpdateVenue(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return h.fail(c, repository.ErrVenueNotFound)
	}
	action := fmt.Sprintf("/venues/%d/edit", id)
	var in service.VenueInput
	if err := c.Bind(&in); err != nil {
		return h.rejectForm(c, bindError(err), "forms/venue", "Edit venue", newVenueForm(action, true, in), "")
	}
	ctx, cancel := withTimeout(c)
	defer cancel()
	v, err := h.svc.UpdateVenue(ctx, id, in)
	if err != nil {
		return h.rejectForm(c, err, "forms/venue", "Edit venue", newVenueForm(action, true, in),
			fmt.Sprintf("Venue %s could not be updated.", in.Name))
	}
	return h.accepted(c, http.StatusOK, v, fmt.Sprintf("/venues/%d", v.ID),
		fmt.Sprintf("Venue %s was successfully updated!", v.Name))
}

// DeleteVenue removes a venue and its shows.  The reply is always JSON.
func (h *Handler) DeleteVenue(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return h.deleted(c, "Venue", "", repository.ErrVenueNotFound)
	}
	ctx, cancel := withTimeout(c)
	defer cancel()
	name, err := h.svc.DeleteVenue(ctx, id)
	return h.deleted(c, "Venue", name, err)
}
