package handler

import (
	"net/http"
	"strconv"

	"musika/internal/delivery/http/response"
	"musika/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SearchHandler holds dependencies for global search handlers.
type SearchHandler struct {
	uc usecase.SearchUsecase
}

// NewSearchHandler is the constructor for SearchHandler, injected by Fx.
func NewSearchHandler(uc usecase.SearchUsecase) *SearchHandler {
	return &SearchHandler{uc: uc}
}

// Search runs a global search across products and blogs.
func (h *SearchHandler) Search(c echo.Context) error {
	input := &usecase.SearchInput{
		Query: c.QueryParam("q"),
		Type:  c.QueryParam("type"),
		Page:  queryInt(c, "page"),
		Limit: queryInt(c, "limit"),
	}

	output, err := h.uc.Search(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Search completed successfully")
}

// Suggest returns prefix-matched product names and blog titles.
func (h *SearchHandler) Suggest(c echo.Context) error {
	suggestions, err := h.uc.Suggest(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, suggestions, "Suggestions retrieved successfully")
}

// queryInt parses an integer query parameter, zero when absent or malformed.
func queryInt(c echo.Context, name string) int {
	value, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return 0
	}

	return value
}
