package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/fyyur/internal/model"
	"github.com/iliyamo/fyyur/internal/repository"
	"github.com/iliyamo/fyyur/internal/service"
)

func newArtistForm(action string, editing bool, in service.ArtistInput) artistForm {
	return artistForm{Action: action, Editing: editing, Input: in, States: model.States, Genres: model.Genres}
}

// ListArtists renders artists ordered by id.
func (h *Handler) ListArtists(c echo.Context) error {
	ctx, cancel := withTimeout(c)
	defer cancel()
	artists, err := h.svc.ListArtists(ctx)
	if err != nil {
		return h.fail(c, err)
	}
	return h.page(c, http.StatusOK, "pages/artists", "Artists", artists)
}

// SearchArtists handles POST /artists/search.
func (h *Handler) SearchArtists(c echo.Context) error {
	var in searchForm
	if err := c.Bind(&in); err != nil {
		return h.fail(c, bindError(err))
	}
	ctx, cancel := withTimeout(c)
	defer cancel()
	res, err := h.svc.SearchArtists(ctx, in.Term)
	if err != nil {
		return h.fail(c, err)
	}
	if wantsJSON(c) {
		return c.JSON(http.StatusOK, res)
	}
	return h.page(c, http.StatusOK, "pages/search", "Artist search", searchPage{Base: "/artists", Result: res})
}

// ShowArtist renders one artist with its past and upcoming shows.
func (h *Handler) ShowArtist(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return h.fail(c, repository.ErrArtistNotFound)
	}
	ctx, cancel := withTimeout(c)
	defer cancel()
	detail, err := h.svc.ArtistDetail(ctx, id)
	if err != nil {
		return h.fail(c, err)
	}
	return h.page(c, http.StatusOK, "pages/artist", detail.Name, detail)
}

// NewArtistForm renders the empty artist form.
func (h *Handler) NewArtistForm(c echo.Context) error {
	return h.page(c, http.StatusOK, "forms/artist", "New artist", newArtistForm("/artists/create", false, service.ArtistInput{}))
}

// CreateArtist handles the artist form submission.
func (h *Handler) CreateArtist(c echo.Context) error {
	var in service.ArtistInput
	if err := c.Bind(&in); err != nil {
		return h.rejectForm(c, bindError(err), "forms/artist", "New artist", newArtistForm("/artists/create", false, in), "")
	}
	ctx, cancel := withTimeout(c)
	defer cancel()
	a, err := h.svc.CreateArtist(ctx, in)
	if err != nil {
		return h.rejectForm(c, err, "forms/artist", "New artist", newArtistForm("/artists/create", false, in),
			fmt.Sprintf("Artist %s could not be listed.", in.Name))
	}
	return h.accepted(c, http.StatusCreated, a, fmt.Sprintf("/artists/%d", a.ID),
		fmt.Sprintf("Artist %s was successfully listed!", a.Name))
}

// EditArtistForm renders the artist form filled with the stored values.
func (h *Handler) EditArtistForm(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return h.fail(c, repository.ErrArtistNotFound)
	}
	ctx, cancel := withTimeout(c)
	defer cancel()
	a, err := h.svc.Artist(ctx, id)
	if err != nil {
		return h.fail(c, err)
	}
	return h.page(c, http.StatusOK, "forms/artist", "Edit "+a.Name,
		newArtistForm(fmt.Sprintf("/artists/%d/edit", id), true, service.ArtistInputFrom(*a)))
}

// UpdateArtist handles the edit form submission.
func (h *Handler) UpdateArtist(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return h.fail(c, repository.ErrArtistNotFound)
	}
	action := fmt.Sprintf("/artists/%d/edit", id)
	var in service.ArtistInput
	if err := c.Bind(&in); err != nil {
		return h.rejectForm(c, bindError(err), "forms/artist", "Edit artist", newArtistForm(action, true, in), "")
	}
	ctx, cancel := withTimeout(c)
	defer cancel()
	a, err := h.svc.UpdateArtist(ctx, id, in)
	if err != nil {
		return h.rejectForm(c, err, "forms/artist", "Edit artist", newArtistForm(action, true, in),
			fmt.Sprintf("Artist %s could not be updated.", in.Name))
	}
	return h.accepted(c, http.StatusOK, a, fmt.Sprintf("/artists/%d", a.ID),
		fmt.Sprintf("Artist %s was successfully updated!", a.Name))
}

// DeleteArtist removes an artist and its shows.  The reply is always JSON.
func (h *Handler) DeleteArtist(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return h.deleted(c, "Artist", "", repository.ErrArtistNotFound)
	}
	ctx, cancel := withTimeout(c)
	defer cancel()
	name, err := h.svc.DeleteArtist(ctx, id)
	return h.deleted(c, "Artist", name, err)
}
