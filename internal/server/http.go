package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// NewRouter mounts the socket, health and stats endpoints and serves the
// frontend build from webDist, falling back to index.html for client routes.
func NewRouter(srv *Server, webDist string, log *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Debug("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
			)
			return nil
		},
	}))

	e.GET("/ws", echo.WrapHandler(http.HandlerFunc(srv.ServeWS)))
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/stats", func(c echo.Context) error {
		return c.JSON(http.StatusOK, srv.Stats())
	})
	e.Use(middleware.StaticWithConfig(middleware.StaticConfig{
		Root:  webDist,
		HTML5: true,
	}))
	return e
}
