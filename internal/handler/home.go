package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Home renders the landing page with the newest venues and artists.
func (h *Handler) Home(c echo.Context) error {
	ctx, cancel := withTimeout(c)
	defer cancel()
	home, err := h.svc.Home(ctx)
	if err != nil {
		return h.fail(c, err)
	}
	return h.page(c, http.StatusOK, "pages/home", "", home)
}
