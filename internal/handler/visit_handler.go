package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 初回訪問のウェルカム通知
type VisitHandler struct {
	uc *usecase.VisitUsecase
}

// DI
func NewVisitHandler(uc *usecase.VisitUsecase) *VisitHandler {
	return &VisitHandler{uc: uc}
}

func (h *VisitHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/visit", h.track)
}

func (h *VisitHandler) track(c echo.Context) error {
	sid, ok := getSessionIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}

	out, err := h.uc.Track(c.Request().Context(), sid)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
