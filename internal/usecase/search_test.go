//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"staybook/internal/domain/hotel"
	"staybook/internal/domain/query"
	"staybook/internal/infra/querystore"
	"staybook/internal/pkg/clock"
	"staybook/internal/usecase"
	"staybook/tests/common/builder"
	"staybook/tests/mock/usecasemock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

func newController() (*usecase.SearchController, *querystore.Store) {
	store := querystore.New()
	return usecase.NewSearchController(store, clock.NewMockClock(testNow)), store
}

func TestSearchControllerReconcile(t *testing.T) {
	t.Run("empty store normalizes to a complete default query", func(t *testing.T) {
		ctrl, store := newController()

		phase := ctrl.Reconcile()

		assert.Equal(t, usecase.PhaseReady, phase)

		values, _ := store.Snapshot()
		parsed := query.ParseValues(values)
		require.True(t, parsed.IsComplete())
		assert.Equal(t, query.DefaultLocation, parsed.Location)
		assert.Equal(t, query.SortPriceLow, parsed.Sort)
		assert.Equal(t, parsed.CheckIn.AddDate(0, 0, 1), parsed.CheckOut)
	})

	t.Run("normalization preserves present fields", func(t *testing.T) {
		ctrl, store := newController()
		loc := "jaipur"
		ctrl.Update(query.Overrides{Location: &loc})

		ctrl.Reconcile()

		values, _ := store.Snapshot()
		assert.Equal(t, "jaipur", values.Get(query.KeyLocation))
	})

	t.Run("re-reconciling an unchanged store is a version no-op", func(t *testing.T) {
		ctrl, store := newController()

		ctrl.Reconcile()
		version := store.Version()

		ctrl.Reconcile()
		ctrl.Reconcile()

		assert.Equal(t, version, store.Version())
	})
}

func TestSearchControllerFetchSignal(t *testing.T) {
	t.Run("readiness is raised once and consumed", func(t *testing.T) {
		ctrl, _ := newController()
		ctrl.Reconcile()

		q, gen, ok := ctrl.BeginFetch()
		require.True(t, ok)
		assert.True(t, q.IsComplete())
		assert.NotZero(t, gen)

		_, _, ok = ctrl.BeginFetch()
		assert.False(t, ok, "second fetch without a query change")
	})

	t.Run("re-reconciling the same query does not rearm the signal", func(t *testing.T) {
		ctrl, _ := newController()
		ctrl.Reconcile()
		_, _, _ = ctrl.BeginFetch()

		ctrl.Reconcile()

		_, _, ok := ctrl.BeginFetch()
		assert.False(t, ok)
	})

	t.Run("a real change rearms the signal", func(t *testing.T) {
		ctrl, _ := newController()
		ctrl.Reconcile()
		_, gen1, _ := ctrl.BeginFetch()

		loc := "mumbai"
		ctrl.Update(query.Overrides{Location: &loc})
		ctrl.Reconcile()

		q, gen2, ok := ctrl.BeginFetch()
		require.True(t, ok)
		assert.Equal(t, "mumbai", q.Location)
		assert.Greater(t, gen2, gen1)
	})

	t.Run("an equivalent update does not rearm the signal", func(t *testing.T) {
		ctrl, _ := newController()
		loc := "mumbai"
		ctrl.Update(query.Overrides{Location: &loc})
		ctrl.Reconcile()
		_, _, _ = ctrl.BeginFetch()

		same := "mumbai"
		ctrl.Update(query.Overrides{Location: &same})
		ctrl.Reconcile()

		_, _, ok := ctrl.BeginFetch()
		assert.False(t, ok)
	})

	t.Run("fetching is blocked until the query is ready", func(t *testing.T) {
		ctrl, _ := newController()

		_, _, ok := ctrl.BeginFetch()
		assert.False(t, ok)
	})
}

func TestSearchControllerStaleResults(t *testing.T) {
	t.Run("results for the current generation install", func(t *testing.T) {
		ctrl, _ := newController()
		ctrl.Reconcile()
		_, gen, _ := ctrl.BeginFetch()

		installed := ctrl.ApplyResults(gen, []hotel.Snapshot{builder.NewHotelBuilder().Build()})

		assert.True(t, installed)
		assert.Len(t, ctrl.View().Hotels, 1)
	})

	t.Run("a failed dispatch re-arms the readiness signal", func(t *testing.T) {
		ctrl, _ := newController()
		ctrl.Reconcile()
		q1, gen, _ := ctrl.BeginFetch()

		ctrl.FetchFailed(gen)

		q2, _, ok := ctrl.BeginFetch()
		require.True(t, ok, "retry without a query change")
		assert.Equal(t, q1.Encode(), q2.Encode())
	})

	t.Run("a failure for a superseded generation changes nothing", func(t *testing.T) {
		ctrl, _ := newController()
		ctrl.Reconcile()
		_, genA, _ := ctrl.BeginFetch()

		loc := "mumbai"
		ctrl.Update(query.Overrides{Location: &loc})
		ctrl.Reconcile()
		_, genB, _ := ctrl.BeginFetch()
		require.True(t, ctrl.ApplyResults(genB, []hotel.Snapshot{builder.NewHotelBuilder().Build()}))

		ctrl.FetchFailed(genA)

		_, _, ok := ctrl.BeginFetch()
		assert.False(t, ok, "stale failure must not re-arm")
		assert.Len(t, ctrl.View().Hotels, 1)
	})

	t.Run("a response that lost the race is discarded", func(t *testing.T) {
		ctrl, _ := newController()
		ctrl.Reconcile()
		_, genA, _ := ctrl.BeginFetch()

		// The query changes while request A is in flight.
		loc := "mumbai"
		ctrl.Update(query.Overrides{Location: &loc})
		ctrl.Reconcile()
		_, genB, _ := ctrl.BeginFetch()

		fresh := builder.NewHotelBuilder().WithName("Fresh").Build()
		require.True(t, ctrl.ApplyResults(genB, []hotel.Snapshot{fresh}))

		stale := builder.NewHotelBuilder().WithName("Stale").Build()
		assert.False(t, ctrl.ApplyResults(genA, []hotel.Snapshot{stale}))

		view := ctrl.View()
		require.Len(t, view.Hotels, 1)
		assert.Equal(t, "Fresh", view.Hotels[0].Name)
	})
}

func TestSearchControllerUpdate(t *testing.T) {
	t.Run("a multi-field update is one store transition", func(t *testing.T) {
		ctrl, store := newController()
		ctrl.Reconcile()
		before := store.Version()

		loc := "goa"
		guests := 4
		sort := query.SortRating
		ctrl.Update(query.Overrides{Location: &loc, Guests: &guests, Sort: &sort})

		assert.Equal(t, before+1, store.Version())
	})

	t.Run("toggling vacation mode clears hotel-only keys in the same write", func(t *testing.T) {
		ctrl, store := newController()
		brands := []string{"marriott"}
		free := true
		ctrl.Update(query.Overrides{Brands: &brands, FreeCancellation: &free})
		ctrl.Reconcile()

		on := true
		ctrl.Update(query.Overrides{VacationRentals: &on})

		values, _ := store.Snapshot()
		assert.Equal(t, "true", values.Get(query.KeyVacationRentals))
		assert.False(t, values.Has(query.KeyBrands))
		assert.False(t, values.Has(query.KeyFreeCancellation))
	})
}

func TestSearchControllerView(t *testing.T) {
	t.Run("view sorts by the active mode and clamps to the window", func(t *testing.T) {
		ctrl, _ := newController()
		ctrl.Reconcile() // defaults to price-low
		_, gen, _ := ctrl.BeginFetch()

		ctrl.ApplyResults(gen, []hotel.Snapshot{
			builder.NewHotelBuilder().WithName("Pricey").WithPrice(400).Build(),
			builder.NewHotelBuilder().WithName("Budget").WithPrice(60).Build(),
			builder.NewHotelBuilder().WithName("Mid").WithPrice(150).Build(),
		})
		ctrl.SetPriceWindow(hotel.PriceWindow{Max: 200})

		view := ctrl.View()

		require.Len(t, view.Hotels, 2)
		assert.Equal(t, "Budget", view.Hotels[0].Name)
		assert.Equal(t, "Mid", view.Hotels[1].Name)
		assert.Equal(t, 0, view.FilterCount)
	})
}

func TestSearchUseCase(t *testing.T) {
	newUseCase := func(t *testing.T) (*usecasemock.MockHotelGateway, usecase.SearchUseCase) {
		t.Helper()
		mockCtrl := gomock.NewController(t)
		gw := usecasemock.NewMockHotelGateway(mockCtrl)
		return gw, usecase.NewSearchUseCase(gw, clock.NewMockClock(testNow))
	}

	t.Run("first search fetches, identical second does not", func(t *testing.T) {
		gw, uc := newUseCase(t)

		gw.EXPECT().SearchHotels(gomock.Any(), gomock.Any()).
			Return([]hotel.Snapshot{builder.NewHotelBuilder().Build()}, nil).
			Times(1)

		view, err := uc.Search(context.Background(), "sess-1", query.Overrides{}, hotel.PriceWindow{})
		require.NoError(t, err)
		assert.Len(t, view.Hotels, 1)

		view, err = uc.Search(context.Background(), "sess-1", query.Overrides{}, hotel.PriceWindow{})
		require.NoError(t, err)
		assert.Len(t, view.Hotels, 1, "cached results survive a no-op search")
	})

	t.Run("sessions are isolated", func(t *testing.T) {
		gw, uc := newUseCase(t)

		gw.EXPECT().SearchHotels(gomock.Any(), gomock.Any()).
			Return([]hotel.Snapshot{}, nil).
			Times(2)

		_, err := uc.Search(context.Background(), "sess-a", query.Overrides{}, hotel.PriceWindow{})
		require.NoError(t, err)
		_, err = uc.Search(context.Background(), "sess-b", query.Overrides{}, hotel.PriceWindow{})
		require.NoError(t, err)
	})

	t.Run("gateway failure degrades to a notice, query survives", func(t *testing.T) {
		gw, uc := newUseCase(t)

		gw.EXPECT().SearchHotels(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection refused")).
			Times(1)

		view, err := uc.Search(context.Background(), "sess-1", query.Overrides{}, hotel.PriceWindow{})
		require.NoError(t, err)
		assert.Empty(t, view.Hotels)
		assert.NotEmpty(t, view.Notice)
		assert.Equal(t, query.DefaultLocation, view.Query.Location)
	})

	t.Run("a refresh after a failure refetches the same query", func(t *testing.T) {
		gw, uc := newUseCase(t)

		gomock.InOrder(
			gw.EXPECT().SearchHotels(gomock.Any(), gomock.Any()).
				Return(nil, errors.New("connection refused")),
			gw.EXPECT().SearchHotels(gomock.Any(), gomock.Any()).
				Return([]hotel.Snapshot{builder.NewHotelBuilder().Build()}, nil),
		)

		view, err := uc.Search(context.Background(), "sess-1", query.Overrides{}, hotel.PriceWindow{})
		require.NoError(t, err)
		assert.NotEmpty(t, view.Notice)

		view, err = uc.Search(context.Background(), "sess-1", query.Overrides{}, hotel.PriceWindow{})
		require.NoError(t, err)
		assert.Empty(t, view.Notice)
		assert.Len(t, view.Hotels, 1)
	})

	t.Run("sort override reaches the wire as its code", func(t *testing.T) {
		gw, uc := newUseCase(t)

		gw.EXPECT().SearchHotels(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params url.Values) ([]hotel.Snapshot, error) {
				assert.Equal(t, "8", params.Get("sort_by"))
				return []hotel.Snapshot{}, nil
			}).
			Times(1)

		sort := query.SortRating
		_, err := uc.Search(context.Background(), "sess-1", query.Overrides{Sort: &sort}, hotel.PriceWindow{})
		require.NoError(t, err)
	})

	t.Run("hotel detail prices the stay", func(t *testing.T) {
		gw, uc := newUseCase(t)

		snapshot := builder.NewHotelBuilder().WithPrice(2000).Build()
		gw.EXPECT().GetHotelDetails(gomock.Any(), "tok-grand-plaza", "2026-09-01", "2026-09-04").
			Return(&snapshot, nil).
			Times(1)

		got, quote, err := uc.HotelDetail(context.Background(), "tok-grand-plaza", "2026-09-01", "2026-09-04")
		require.NoError(t, err)
		assert.Equal(t, "Grand Plaza", got.Name)
		assert.Equal(t, 3, quote.Nights)
		assert.Equal(t, 6080.0, quote.Total)
	})
}
