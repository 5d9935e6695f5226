package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	mockusecase "musika/internal/mocks/usecase"
	"musika/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSearchHandler_Search_ParsesQueryParams(t *testing.T) {
	mockUC := mockusecase.NewMockSearchUsecase(t)
	mockUC.EXPECT().
		Search(mock.Anything, &usecase.SearchInput{
			Query: "mbira",
			Type:  "product",
			Page:  2,
			Limit: 5,
		}).
		Return(&usecase.SearchOutput{
			Total: 12,
			Page:  2,
			Limit: 5,
		}, nil)

	h := NewSearchHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/search?q=mbira&type=product&page=2&limit=5", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Search(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":12`)
}

func TestSearchHandler_Search_MalformedPageDefaultsToZero(t *testing.T) {
	mockUC := mockusecase.NewMockSearchUsecase(t)
	mockUC.EXPECT().
		Search(mock.Anything, &usecase.SearchInput{Query: "mbira", Page: 0, Limit: 0}).
		Return(&usecase.SearchOutput{}, nil)

	h := NewSearchHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/search?q=mbira&page=abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Search(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSearchHandler_Suggest(t *testing.T) {
	mockUC := mockusecase.NewMockSearchUsecase(t)
	mockUC.EXPECT().
		Suggest(mock.Anything, "mb").
		Return([]string{"Mbira", "Mbira bag"}, nil)

	h := NewSearchHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/search/suggestions?q=mb", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Suggest(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Mbira bag")
}
