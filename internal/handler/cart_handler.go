package handler

import (
	"net/http"

	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /cartのHTTP
type CartHandler struct {
	carts *usecase.CartSessions
}

// DI
func NewCartHandler(carts *usecase.CartSessions) *CartHandler {
	return &CartHandler{carts: carts}
}

// markup属性そのままの形式で受ける（priceは文字列）
type AddItemRequest struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Quantity int64  `json:"quantity"`
}

// /cart, /cart/items, /cart/checkout を登録
func (h *CartHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/cart")

	g.GET("", h.getCart)
	g.POST("/items", h.addItem)
	g.POST("/checkout", h.checkout)
}

func (h *CartHandler) getCart(c echo.Context) error {
	sid, ok := getSessionIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}

	store := h.carts.Store(c.Request().Context(), sid)
	return c.JSON(http.StatusOK, store.GetCart(c.Request().Context()))
}

func (h *CartHandler) addItem(c echo.Context) error {
	sid, ok := getSessionIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}

	var req AddItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	store := h.carts.Store(c.Request().Context(), sid)
	out, err := store.AddItem(c.Request().Context(), usecase.AddItemInput{
		ID:       req.ID,
		Name:     req.Name,
		Price:    req.Price,
		Quantity: req.Quantity,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) checkout(c echo.Context) error {
	sid, ok := getSessionIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}

	store := h.carts.Store(c.Request().Context(), sid)
	return c.JSON(http.StatusOK, store.Checkout(c.Request().Context()))
}

//middleware.Session が c.Set("session_id", string) した値を取り出す

func getSessionIDFromContext(c echo.Context) (string, bool) {
	v := c.Get(middleware.CtxSessionIDKey)
	if v == nil {
		return "", false
	}

	sid, ok := v.(string)
	if !ok || sid == "" {
		return "", false
	}

	return sid, true
}
