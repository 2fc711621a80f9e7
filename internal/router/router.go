// Package router registers the HTTP routes.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/fyyur/internal/handler"
)

// Options carries the middleware the router applies to page routes.
// Nil entries are skipped.
type Options struct {
	// Cache serves GET pages from Redis.
	Cache echo.MiddlewareFunc
	// Invalidate purges the page cache after a successful mutation.
	Invalidate echo.MiddlewareFunc
	// RateLimit throttles form submissions and searches.
	RateLimit echo.MiddlewareFunc
}

func use(mws ...echo.MiddlewareFunc) []echo.MiddlewareFunc {
	out := make([]echo.MiddlewareFunc, 0, len(mws))
	for _, m := range mws {
		if m != nil {
			out = append(out, m)
		}
	}
	return out
}

// Register maps every route onto h.  Reads go through the page cache;
// writes go through the rate limiter and purge the cache afterwards.
func Register(e *echo.Echo, h *handler.Handler, opts Options) {
	// health check stays outside every middleware group
	e.GET("/healthz", handler.Health)

	read := use(opts.Cache)
	write := use(opts.RateLimit, opts.Invalidate)
	search := use(opts.RateLimit)

	e.GET("/", h.Home, read...)

	v := e.Group("/venues")
	v.GET("", h.ListVenues, read...)
	v.POST("/search", h.SearchVenues, search...)
	v.GET("/create", h.NewVenueForm)
	v.POST("/create", h.CreateVenue, write...)
	v.GET("/:id", h.ShowVenue, read...)
	v.GET("/:id/edit", h.EditVenueForm)
	v.POST("/:id/edit", h.UpdateVenue, write...)
	v.DELETE("/:id", h.DeleteVenue, write...)

	a := e.Group("/artists")
	a.GET("", h.ListArtists, read...)
	a.POST("/search", h.SearchArtists, search...)
	a.GET("/create", h.NewArtistForm)
	a.POST("/create", h.CreateArtist, write...)
	a.GET("/:id", h.ShowArtist, read...)
	a.GET("/:id/edit", h.EditArtistForm)
	a.POST("/:id/edit", h.UpdateArtist, write...)
	a.DELETE("/:id", h.DeleteArtist, write...)

	s := e.Group("/shows")
	s.GET("", h.ListShows, read...)
	s.GET("/create", h.NewShowForm)
	s.POST("/create", h.CreateShow, write...)
}
