package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/fyyur/internal/flash"
	"github.com/iliyamo/fyyur/internal/repository"
	"github.com/iliyamo/fyyur/internal/service"
)

// searchForm is the body of the search endpoints.
type searchForm struct {
	Term string `form:"search_term" json:"search_term"`
}

// searchPage is the data of pages/search.
type searchPage struct {
	Base   string
	Result *service.SearchResult
}

// venueForm and artistForm feed forms/venue and forms/artist.
type venueForm struct {
	Action  string             `json:"action"`
	Editing bool               `json:"editing"`
	Input   service.VenueInput `json:"input"`
	States  []string           `json:"states"`
	Genres  []string           `json:"genres"`
}

type artistForm struct {
	Action  string              `json:"action"`
	Editing bool                `json:"editing"`
	Input   service.ArtistInput `json:"input"`
	States  []string            `json:"states"`
	Genres  []string            `json:"genres"`
}

// rejectForm answers a failed form submission.  JSON clients get the
// error body; browsers get the form back with field errors and a note.
func (h *Handler) rejectForm(c echo.Context, err error, name, title string, data any, note string) error {
	if wantsJSON(c) || repository.IsNotFound(err) {
		return h.fail(c, err)
	}
	status, _ := statusFor(err)
	if status >= http.StatusInternalServerError {
		// logged and shown as the error page
		return h.fail(c, err)
	}
	var fields map[string]string
	if ve, ok := service.AsValidation(err); ok {
		fields = ve.Fields
	} else {
		note = fmt.Sprintf("%s %s", note, userMessage(status, err))
	}
	return h.form(c, status, name, title, data, fields, note)
}

// accepted answers a successful form submission: 201/200 with the record
// for JSON clients, otherwise a flash message and a 303 to location.
func (h *Handler) accepted(c echo.Context, status int, record any, location, message string) error {
	if wantsJSON(c) {
		return c.JSON(status, record)
	}
	if err := h.flash.Add(c, flash.Success, message); err != nil {
		return h.fail(c, err)
	}
	return c.Redirect(http.StatusSeeOther, location)
}

// deleted answers DELETE requests, which always reply with JSON.
func (h *Handler) deleted(c echo.Context, kind, name string, err error) error {
	if err != nil {
		status, errKind := statusFor(err)
		if status >= http.StatusInternalServerError {
			h.log.Sugar().Errorw("delete failed", "kind", kind, "error", err)
		}
		_ = h.flash.Add(c, flash.Error, fmt.Sprintf("%s could not be deleted.", kind))
		return c.JSON(status, echo.Map{"success": false, "error": errKind, "message": userMessage(status, err)})
	}
	if ferr := h.flash.Add(c, flash.Success, fmt.Sprintf("%s %s was successfully deleted!", kind, name)); ferr != nil {
		return h.fail(c, ferr)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "name": name})
}
