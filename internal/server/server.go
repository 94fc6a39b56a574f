package server

import (
	"app/internal/config"
	"app/internal/handler"
	"app/internal/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

func Start(
	addr string,
	cfg config.Config,
	log zerolog.Logger,
	cartH *handler.CartHandler,
	productH *handler.ProductHandler,
	communityH *handler.CommunityHandler,
	visitH *handler.VisitHandler,
) error {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Recover())
	e.Use(middleware.RequestLogger(log))

	//フロントのoriginだけ許可（cookieを使うのでcredentialsあり）
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{cfg.FEURL},
		AllowCredentials: true,
	}))

	e.Use(middleware.Session())

	RegisterRoutes(e, cartH, productH, communityH, visitH)

	return e.Start(addr)
}
