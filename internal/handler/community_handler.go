package handler

import (
	"net/http"
	"strconv"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /communityのHTTP
type CommunityHandler struct {
	uc *usecase.CommunityUsecase
}

// DI
func NewCommunityHandler(uc *usecase.CommunityUsecase) *CommunityHandler {
	return &CommunityHandler{uc: uc}
}

type JoinTopicRequest struct {
	Title string `json:"title"`
}

type JoinGroupRequest struct {
	Name string `json:"name"`
}

type AddWisdomRequest struct {
	Quote  string `json:"quote"`
	Author string `json:"author"`
}

type SubmitPostRequest struct {
	Content string `json:"content"`
}

func (h *CommunityHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/community")

	g.GET("/topics", h.listTopics)
	g.POST("/topics/join", h.joinTopic)

	g.GET("/groups", h.listGroups)
	g.POST("/groups/join", h.joinGroup)

	g.GET("/wisdom", h.listWisdom)
	g.POST("/wisdom", h.addWisdom)

	g.GET("/posts", h.listPosts)
	g.POST("/posts", h.submitPost)
	g.POST("/posts/:id/like", h.toggleLike)
}

func (h *CommunityHandler) listTopics(c echo.Context) error {
	out, err := h.uc.ListTopics(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CommunityHandler) joinTopic(c echo.Context) error {
	var req JoinTopicRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.JoinTopic(c.Request().Context(), req.Title)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CommunityHandler) listGroups(c echo.Context) error {
	out, err := h.uc.ListGroups(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CommunityHandler) joinGroup(c echo.Context) error {
	var req JoinGroupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.JoinGroup(c.Request().Context(), req.Name)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CommunityHandler) listWisdom(c echo.Context) error {
	out, err := h.uc.ListWisdom(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CommunityHandler) addWisdom(c echo.Context) error {
	var req AddWisdomRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.AddWisdom(c.Request().Context(), usecase.AddWisdomInput{
		Quote:  req.Quote,
		Author: req.Author,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CommunityHandler) listPosts(c echo.Context) error {
	// page（default 1）
	page := 1
	if v := c.QueryParam("page"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid page"})
		}
		page = p
	}

	// limit（default 10）
	limit := 10
	if v := c.QueryParam("limit"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
		}
		limit = l
	}

	out, err := h.uc.ListPosts(c.Request().Context(), usecase.ListPostsInput{
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CommunityHandler) submitPost(c echo.Context) error {
	var req SubmitPostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.SubmitPost(c.Request().Context(), usecase.SubmitPostInput{Content: req.Content})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CommunityHandler) toggleLike(c echo.Context) error {
	sid, ok := getSessionIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}

	out, err := h.uc.ToggleLike(c.Request().Context(), c.Param("id"), sid)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
