//go:build unit

package api_test

import (
	"net/http"
	stdhttptest "net/http/httptest"
	"testing"

	"staybook/internal/domain/booking"
	"staybook/internal/domain/hotel"
	"staybook/internal/domain/query"
	"staybook/internal/handler/api"
	resdto "staybook/internal/handler/dto/response"
	"staybook/internal/pkg/config"
	"staybook/internal/pkg/cookie"
	"staybook/internal/usecase"
	"staybook/tests/common/builder"
	"staybook/tests/common/httptest"
	"staybook/tests/mock/usecasemock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SearchHandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	mockCtrl   *gomock.Controller
	mockSearch *usecasemock.MockSearchUseCase
	handler    *api.SearchHandler
}

func (s *SearchHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockSearch = usecasemock.NewMockSearchUseCase(s.mockCtrl)
	s.handler = api.NewSearchHandler(s.mockSearch, config.NewTestConfig().Cookie)

	s.router.GET("/hotels", s.handler.Search)
	s.router.GET("/hotels/:token", s.handler.HotelDetail)
}

func (s *SearchHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSearchHandlerSuite(t *testing.T) {
	suite.Run(t, new(SearchHandlerTestSuite))
}

func (s *SearchHandlerTestSuite) searchView() *usecase.SearchView {
	return &usecase.SearchView{
		Query: query.Query{
			Location: "faridabad",
			Sort:     query.SortPriceLow,
		},
		Phase:      usecase.PhaseReady,
		Generation: 1,
		Hotels:     []hotel.Snapshot{builder.NewHotelBuilder().Build()},
	}
}

func (s *SearchHandlerTestSuite) TestSearch() {
	s.Run("success: returns the reconciled view", func() {
		s.mockSearch.EXPECT().
			Search(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(s.searchView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/hotels?location=faridabad", nil, "")

		var response resdto.SearchResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("faridabad", response.Query.Location)
		s.Len(response.Hotels, 1)
		s.Equal("Grand Plaza", response.Hotels[0].Name)
	})

	s.Run("success: mints a search session cookie on first contact", func() {
		s.mockSearch.EXPECT().
			Search(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(s.searchView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/hotels", nil, "")

		c := httptest.ExtractCookie(rec, cookie.SearchSessionCookieName)
		s.Require().NotNil(c)
		s.NotEmpty(c.Value)
	})

	s.Run("success: translates sort and filter params into overrides", func() {
		s.mockSearch.EXPECT().
			Search(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, _ string, overrides query.Overrides, window hotel.PriceWindow) (*usecase.SearchView, error) {
				s.Require().NotNil(overrides.Sort)
				s.Equal(query.SortRating, *overrides.Sort)
				s.Require().NotNil(overrides.MaxPrice)
				s.Equal(300, *overrides.MaxPrice)
				s.Equal(300.0, window.Max)
				return s.searchView(), nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/hotels?sort=rating&max_price=300", nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("success: header session wins over cookie", func() {
		s.mockSearch.EXPECT().
			Search(gomock.Any(), "pinned-session", gomock.Any(), gomock.Any()).
			Return(s.searchView(), nil).Times(1)

		req := stdhttptest.NewRequest(http.MethodGet, "/hotels", nil)
		req.Header.Set("Search-Session", "pinned-session")
		req.AddCookie(&http.Cookie{Name: cookie.SearchSessionCookieName, Value: "cookie-session"})

		rec := stdhttptest.NewRecorder()
		s.router.ServeHTTP(rec, req)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("success: cookie session is reused when present", func() {
		s.mockSearch.EXPECT().
			Search(gomock.Any(), "cookie-session", gomock.Any(), gomock.Any()).
			Return(s.searchView(), nil).Times(1)

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/hotels", nil,
			[]*http.Cookie{{Name: cookie.SearchSessionCookieName, Value: "cookie-session"}}, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: malformed numeric params are rejected", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/hotels?guests=abc", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query parameters")
	})
}

func (s *SearchHandlerTestSuite) TestHotelDetail() {
	snapshot := builder.NewHotelBuilder().WithPrice(2000).Build()
	quote := booking.Quote{Nights: 3, BasePrice: 6000, Total: 6080}

	s.Run("success: returns the hotel with a quote", func() {
		s.mockSearch.EXPECT().
			HotelDetail(gomock.Any(), "tok-grand-plaza", "2026-09-01", "2026-09-04").
			Return(&snapshot, &quote, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/hotels/tok-grand-plaza?check_in=2026-09-01&check_out=2026-09-04", nil, "")

		var response resdto.HotelDetailResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Grand Plaza", response.Hotel.Name)
		s.Equal(3, response.Quote.Nights)
		s.Equal(6080.0, response.Quote.Total)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			usecaseError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "hotel not found",
				usecaseError:   usecase.ErrHotelNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Hotel not found",
			},
			{
				name:           "upstream unavailable",
				usecaseError:   usecase.ErrSearchUpstream,
				expectedStatus: http.StatusBadGateway,
				expectedMsg:    "Hotel service unavailable",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockSearch.EXPECT().
					HotelDetail(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, nil, tc.usecaseError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/hotels/tok-x", nil, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
