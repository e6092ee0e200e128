package api

import (
	"errors"
	"net/http"

	reqdto "staybook/internal/handler/dto/request"
	resdto "staybook/internal/handler/dto/response"
	"staybook/internal/pkg/config"
	"staybook/internal/pkg/cookie"
	"staybook/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SearchHandler struct {
	searchUseCase usecase.SearchUseCase
	cookieCfg     config.CookieConfig
}

func NewSearchHandler(searchUseCase usecase.SearchUseCase, cookieCfg config.CookieConfig) *SearchHandler {
	return &SearchHandler{
		searchUseCase: searchUseCase,
		cookieCfg:     cookieCfg,
	}
}

// @Summary Search hotels
// @Description Apply query changes for this search session and return the reconciled result set
// @Tags hotels
// @Produce json
// @Param location query string false "Destination"
// @Param check_in query string false "Check-in date (YYYY-MM-DD)"
// @Param check_out query string false "Check-out date (YYYY-MM-DD)"
// @Param sort query string false "Sort mode"
// @Success 200 {object} resdto.SearchResponse
// @Failure 502 {object} map[string]string
// @Router /hotels [get]
func (h *SearchHandler) Search(c *gin.Context) {
	var req reqdto.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query parameters",
		})
		return
	}

	sessionID := h.searchSession(c)

	view, err := h.searchUseCase.Search(c.Request.Context(), sessionID, req.ToOverrides(), req.ToPriceWindow())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromSearchView(view))
}

// @Summary Hotel details
// @Description Fetch a single property with a priced quote for the given stay
// @Tags hotels
// @Produce json
// @Param token path string true "Property token"
// @Param check_in query string false "Check-in date (YYYY-MM-DD)"
// @Param check_out query string false "Check-out date (YYYY-MM-DD)"
// @Success 200 {object} resdto.HotelDetailResponse
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /hotels/{token} [get]
func (h *SearchHandler) HotelDetail(c *gin.Context) {
	token := c.Param("token")
	checkIn := c.Query("check_in")
	checkOut := c.Query("check_out")

	snapshot, quote, err := h.searchUseCase.HotelDetail(c.Request.Context(), token, checkIn, checkOut)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrHotelNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Hotel not found",
			})
		case errors.Is(err, usecase.ErrSearchUpstream):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Hotel service unavailable",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.HotelDetailResponse{
		Hotel: resdto.FromSnapshot(*snapshot),
		Quote: resdto.FromQuote(*quote),
	})
}

// searchSession resolves the caller's search session, minting one on first
// contact. The header wins over the cookie so API clients can pin a session
// explicitly.
func (h *SearchHandler) searchSession(c *gin.Context) string {
	if session := c.GetHeader("Search-Session"); session != "" {
		return session
	}
	if session := cookie.GetSearchSession(c); session != "" {
		return session
	}

	session := uuid.NewString()
	cookie.SetSearchSession(c, h.cookieCfg, session)
	return session
}
