package server

import (
	"app/internal/handler"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(
	e *echo.Echo,
	cartH *handler.CartHandler,
	productH *handler.ProductHandler,
	communityH *handler.CommunityHandler,
	visitH *handler.VisitHandler,
) {
	cartH.RegisterRoutes(e)
	productH.RegisterRoutes(e)
	communityH.RegisterRoutes(e)
	visitH.RegisterRoutes(e)
}
