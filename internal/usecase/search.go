package usecase

import (
	"context"
	"errors"
	"net/url"
	"sync"
	"time"

	"staybook/internal/domain/booking"
	"staybook/internal/domain/hotel"
	"staybook/internal/domain/query"
	"staybook/internal/infra"
	"staybook/internal/infra/querystore"
	"staybook/internal/pkg/clock"
	"staybook/internal/pkg/errs"
)

var (
	ErrHotelNotFound  = errors.New("hotel not found")
	ErrSearchUpstream = errors.New("search temporarily unavailable")
)

// Phase is the reconciliation state of a search session's query:
// an incomplete query is normalized (defaults written back, at most once
// per missing set) until it is complete, then materialized into a
// fetch-ready working copy.
type Phase string

const (
	PhaseIncomplete  Phase = "incomplete"
	PhaseNormalizing Phase = "normalizing"
	PhaseReady       Phase = "ready"
)

// HotelGateway is the remote search collaborator.
type HotelGateway interface {
	SearchHotels(ctx context.Context, params url.Values) ([]hotel.Snapshot, error)
	GetHotelDetails(ctx context.Context, token, checkIn, checkOut string) (*hotel.Snapshot, error)
}

// QueryStore is the persisted query representation with a monotonic version
// used as the generation stamp for fetch dispatches.
type QueryStore interface {
	Snapshot() (url.Values, uint64)
	Version() uint64
	Replace(values url.Values) uint64
}

// SearchController owns one session's QueryStore and reconciles it against
// the required-field invariants. All query mutations go through Update /
// reconcile; no caller writes partial fields to the store directly.
type SearchController struct {
	mu    sync.Mutex
	store QueryStore
	clock clock.Clock

	phase            Phase
	editable         query.Query
	fetchReady       bool
	lastMaterialized string

	results []hotel.Snapshot
	window  hotel.PriceWindow
}

func NewSearchController(store QueryStore, clk clock.Clock) *SearchController {
	return &SearchController{
		store: store,
		clock: clk,
		phase: PhaseIncomplete,
	}
}

// Update merges the overrides into the current editable state and persists
// the merged result in one atomic store write, so a single user action is a
// single store transition. Toggling vacation-rental mode on drops the
// hotel-only keys from the persisted representation in that same write
// (Query.Values handles the exclusion).
func (s *SearchController) Update(overrides query.Overrides) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, _ := s.store.Snapshot()
	merged := overrides.Apply(query.ParseValues(values))
	s.store.Replace(merged.Values())
	s.editable = merged
}

// Reconcile drives the Incomplete -> Normalizing -> Ready machine until the
// query is materialized. Normalization writes back only when the serialized
// result differs from the store, which is the precondition that makes the
// loop terminate: a second pass over an already-normalized query is a no-op.
func (s *SearchController) Reconcile() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Two passes suffice (one to default, one to materialize); the third is
	// headroom for a raw store that first collapses to canonical form.
	for i := 0; i < 3; i++ {
		values, _ := s.store.Snapshot()
		current := query.ParseValues(values)

		if !current.IsComplete() {
			s.phase = PhaseNormalizing
			s.normalize(current)
			continue
		}

		s.materialize(current)
		return s.phase
	}

	return s.phase
}

// normalize fills the missing required fields with defaults and writes the
// result back. The store itself refuses writes that encode identically, so
// redundant normalization can never re-trigger reconciliation.
func (s *SearchController) normalize(current query.Query) {
	filled := current.FillDefaults(s.clock.Now())
	s.store.Replace(filled.Values())
}

// materialize copies the complete query into the editable working state and
// raises the fetch-ready signal exactly once per distinct complete query.
func (s *SearchController) materialize(current query.Query) {
	s.phase = PhaseReady
	s.editable = current

	encoded := current.Encode()
	if encoded != s.lastMaterialized {
		s.lastMaterialized = encoded
		s.fetchReady = true
	}
}

// BeginFetch consumes the readiness signal and returns the query snapshot
// to dispatch together with its generation stamp. Consuming here is what
// keeps unrelated re-evaluations from re-fetching an unchanged query.
func (s *SearchController) BeginFetch() (query.Query, uint64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseReady || !s.fetchReady {
		return query.Query{}, 0, false
	}
	s.fetchReady = false
	return s.editable, s.store.Version(), true
}

// ApplyResults installs a fetched result set only if the store is unchanged
// since the dispatch carrying gen. A response that lost the race is
// discarded so an older query can never overwrite a newer one's view.
func (s *SearchController) ApplyResults(gen uint64, results []hotel.Snapshot) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store.Version() != gen {
		return false
	}
	s.results = results
	return true
}

// FetchFailed settles a dispatch that never produced results: the view is
// cleared and the readiness signal is re-armed so the same query can be
// retried without requiring a change first. A failure for a superseded
// generation is ignored; the newer dispatch owns the signal.
func (s *SearchController) FetchFailed(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store.Version() != gen {
		return
	}
	s.results = nil
	s.fetchReady = true
}

// SetPriceWindow installs the client-side clamp applied on top of whatever
// the server already filtered.
func (s *SearchController) SetPriceWindow(window hotel.PriceWindow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.window = window
}

// View renders the current state: the active query, its derived filter
// count, and the result set clamped and sorted for the active sort mode.
func (s *SearchController) View() *SearchView {
	s.mu.Lock()
	defer s.mu.Unlock()

	return &SearchView{
		Query:       s.editable,
		Phase:       s.phase,
		FilterCount: s.editable.ActiveFilterCount(),
		Hotels:      hotel.Sort(s.window.Clamp(s.results), s.editable.Sort),
		Generation:  s.store.Version(),
	}
}

// SearchView is the read model handed to the HTTP layer.
type SearchView struct {
	Query       query.Query
	Phase       Phase
	FilterCount int
	Hotels      []hotel.Snapshot
	Generation  uint64
	Notice      string
}

type SearchUseCase interface {
	Search(ctx context.Context, sessionID string, overrides query.Overrides, window hotel.PriceWindow) (*SearchView, error)
	HotelDetail(ctx context.Context, token, checkIn, checkOut string) (*hotel.Snapshot, *booking.Quote, error)
}

type searchUseCaseImpl struct {
	mu          sync.Mutex
	controllers map[string]*SearchController
	gateway     HotelGateway
	clock       clock.Clock
}

func NewSearchUseCase(gw HotelGateway, clk clock.Clock) SearchUseCase {
	return &searchUseCaseImpl{
		controllers: make(map[string]*SearchController),
		gateway:     gw,
		clock:       clk,
	}
}

func (u *searchUseCaseImpl) controllerFor(sessionID string) *SearchController {
	u.mu.Lock()
	defer u.mu.Unlock()

	ctrl, ok := u.controllers[sessionID]
	if !ok {
		ctrl = NewSearchController(querystore.New(), u.clock)
		u.controllers[sessionID] = ctrl
	}
	return ctrl
}

// Search applies the overrides, reconciles the store, and fetches when the
// controller signals readiness. A transport failure degrades to an empty
// result set with a notice; the QueryStore is left intact so the next user
// action retries naturally.
func (u *searchUseCaseImpl) Search(ctx context.Context, sessionID string, overrides query.Overrides, window hotel.PriceWindow) (*SearchView, error) {
	ctrl := u.controllerFor(sessionID)
	ctrl.SetPriceWindow(window)

	if !overrides.IsEmpty() {
		ctrl.Update(overrides)
	}
	ctrl.Reconcile()

	var notice string
	if q, gen, ok := ctrl.BeginFetch(); ok {
		results, err := u.gateway.SearchHotels(ctx, q.GatewayParams())
		if err != nil {
			// Re-arm so a plain refresh retries the same query.
			ctrl.FetchFailed(gen)
			notice = "Failed to load hotels. Please try refreshing or adjust your search."
		} else {
			ctrl.ApplyResults(gen, results)
		}
	}

	view := ctrl.View()
	view.Notice = notice
	return view, nil
}

func (u *searchUseCaseImpl) HotelDetail(ctx context.Context, token, checkIn, checkOut string) (*hotel.Snapshot, *booking.Quote, error) {
	snapshot, err := u.gateway.GetHotelDetails(ctx, token, checkIn, checkOut)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, ErrHotelNotFound
		}
		return nil, nil, errs.Mark(err, ErrSearchUpstream)
	}

	in := parseDateOr(checkIn, today(u.clock))
	out := parseDateOr(checkOut, in.AddDate(0, 0, 1))
	quote := booking.NewQuote(*snapshot, in, out)
	return snapshot, &quote, nil
}

func parseDateOr(s string, fallback time.Time) time.Time {
	t, err := time.Parse(query.DateLayout, s)
	if err != nil {
		return fallback
	}
	return t
}

func today(clk clock.Clock) time.Time {
	now := clk.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
