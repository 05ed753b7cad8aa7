package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/cheerguru/connect/internal/board"
	"github.com/cheerguru/connect/internal/datasource"
)

// LocalFactory builds the fallback data source. It is a factory rather than
// an instance so the local store (and its first-run seeding) only comes into
// existence when the session actually falls back.
type LocalFactory func() (datasource.DataSource, error)

// Store is the single source of truth for the session. It is constructed
// once at session start and injected into the presentation layer; there are
// no package-level instances.
type Store struct {
	mu     sync.Mutex
	state  State
	source datasource.DataSource

	remote    *datasource.Remote
	makeLocal LocalFactory
	local     datasource.DataSource
}

// NewStore builds a store over an already chosen data source. Most callers
// want Open instead, which runs the availability probe first.
func NewStore(source datasource.DataSource) *Store {
	s := &Store{source: source, state: initialState()}
	s.state.Mode = source.Mode()
	s.state.BackendAvailable = source.Mode() == datasource.ModeRemote
	return s
}

// Open starts a session: probe the backend once, pick remote or local mode
// for the session, and load the initial lists and stats. remote may be nil
// (forced local mode).
func Open(ctx context.Context, remote *datasource.Remote, makeLocal LocalFactory) (*Store, error) {
	s := &Store{state: initialState(), remote: remote, makeLocal: makeLocal}

	if err := s.selectSource(ctx); err != nil {
		return nil, err
	}
	s.loadInitial(ctx)
	return s, nil
}

func (s *Store) selectSource(ctx context.Context) error {
	if s.remote != nil && s.remote.CheckAvailability(ctx) {
		s.source = s.remote
		s.dispatch(setBackendStatus{available: true, mode: datasource.ModeRemote})
		return nil
	}

	// The factory runs at most once; a later fallback reuses the same local
	// source instead of reopening its storage.
	if s.local == nil {
		local, err := s.makeLocal()
		if err != nil {
			return fmt.Errorf("open local data source: %w", err)
		}
		s.local = local
	}
	s.source = s.local
	s.dispatch(setBackendStatus{available: false, mode: datasource.ModeLocal})
	return nil
}

// Initial load failures are not fatal to the session; they land in the
// per-collection error slots like any later load failure would.
func (s *Store) loadInitial(ctx context.Context) {
	s.LoadJobs(ctx)
	s.LoadProviders(ctx)
	s.LoadStats(ctx)
	if s.Mode() == datasource.ModeRemote {
		s.LoadScraperStatus(ctx)
	}
}

// RetryBackend re-probes the backend on explicit user request. If
// availability changed the session flips mode and reloads.
func (s *Store) RetryBackend(ctx context.Context) error {
	if s.remote == nil {
		return nil
	}
	available := s.remote.CheckAvailability(ctx)
	if available == (s.Mode() == datasource.ModeRemote) {
		return nil
	}
	if err := s.selectSource(ctx); err != nil {
		return err
	}
	s.loadInitial(ctx)
	return nil
}

func (s *Store) dispatch(cmd Command) {
	s.mu.Lock()
	s.state = reduce(s.state, cmd)
	s.mu.Unlock()
}

// State returns a snapshot. Slices inside it are treated as immutable by
// every consumer; the reducer never mutates them in place.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Store) Mode() datasource.Mode {
	return s.State().Mode
}

// VisibleJobs recomputes the derived view from the canonical list and the
// current filters. No memoization, nothing to go stale.
func (s *Store) VisibleJobs() []board.Job {
	st := s.State()
	return board.FilterJobs(st.Jobs, st.Filter)
}

func (s *Store) VisibleProviders() []board.ServiceProvider {
	st := s.State()
	return board.FilterProviders(st.Providers, st.Filter)
}

// LoadJobs replaces the canonical job list from the data source. Filtering is
// client-side, so the full list is requested; whichever of two overlapping
// loads finishes last wins.
func (s *Store) LoadJobs(ctx context.Context) error {
	s.dispatch(setJobsLoading{true})
	jobs, err := s.source.ListJobs(ctx, datasource.JobQuery{})
	if err != nil {
		terr := asTransportError(err)
		s.dispatch(setJobsError{terr})
		return terr
	}
	s.dispatch(setJobs{jobs})
	return nil
}

func (s *Store) LoadProviders(ctx context.Context) error {
	s.dispatch(setProvidersLoading{true})
	providers, err := s.source.ListProviders(ctx, datasource.ProviderQuery{})
	if err != nil {
		terr := asTransportError(err)
		s.dispatch(setProvidersError{terr})
		return terr
	}
	s.dispatch(setProviders{providers})
	return nil
}

// CreateJob validates, persists, reconciles the canonical list from the data
// source's returned representation, and closes the form. On any failure the
// list is untouched and the form stays open so the user can correct and
// resubmit.
func (s *Store) CreateJob(ctx context.Context, j board.Job) (*board.Job, error) {
	if errs := board.ValidateJob(&j); errs != nil {
		return nil, errs
	}
	created, err := s.source.CreateJob(ctx, &j)
	if err != nil {
		return nil, asTransportError(err)
	}
	s.dispatch(addJob{*created})
	s.dispatch(hideJobForm{})
	return created, nil
}

// UpdateJob behaves like CreateJob except that an unknown id is a benign
// race (deleted elsewhere): state stays untouched, the form closes, and no
// error reaches the user.
func (s *Store) UpdateJob(ctx context.Context, j board.Job) (*board.Job, error) {
	if errs := board.ValidateJob(&j); errs != nil {
		return nil, errs
	}
	updated, err := s.source.UpdateJob(ctx, &j)
	if errors.Is(err, datasource.ErrNotFound) {
		s.dispatch(hideJobForm{})
		return nil, nil
	}
	if err != nil {
		return nil, asTransportError(err)
	}
	s.dispatch(replaceJob{*updated})
	s.dispatch(hideJobForm{})
	return updated, nil
}

// GetJob fetches one job from the data source without touching state; the
// detail view reads through rather than trusting a possibly stale list entry.
func (s *Store) GetJob(ctx context.Context, id string) (*board.Job, error) {
	j, err := s.source.GetJob(ctx, id)
	if errors.Is(err, datasource.ErrNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, asTransportError(err)
	}
	return j, nil
}

func (s *Store) DeleteJob(ctx context.Context, id string) error {
	err := s.source.DeleteJob(ctx, id)
	if err != nil && !errors.Is(err, datasource.ErrNotFound) {
		return asTransportError(err)
	}
	// Drop any stale local copy too; removing an absent id is a no-op.
	s.dispatch(removeJob{id})
	return nil
}

func (s *Store) CreateProvider(ctx context.Context, p board.ServiceProvider) (*board.ServiceProvider, error) {
	if errs := board.ValidateProvider(&p); errs != nil {
		return nil, errs
	}
	created, err := s.source.CreateProvider(ctx, &p)
	if err != nil {
		return nil, asTransportError(err)
	}
	s.dispatch(addProvider{*created})
	s.dispatch(hideProviderForm{})
	return created, nil
}

func (s *Store) UpdateProvider(ctx context.Context, p board.ServiceProvider) (*board.ServiceProvider, error) {
	if errs := board.ValidateProvider(&p); errs != nil {
		return nil, errs
	}
	updated, err := s.source.UpdateProvider(ctx, &p)
	if errors.Is(err, datasource.ErrNotFound) {
		s.dispatch(hideProviderForm{})
		return nil, nil
	}
	if err != nil {
		return nil, asTransportError(err)
	}
	s.dispatch(replaceProvider{*updated})
	s.dispatch(hideProviderForm{})
	return updated, nil
}

func (s *Store) GetProvider(ctx context.Context, id string) (*board.ServiceProvider, error) {
	p, err := s.source.GetProvider(ctx, id)
	if errors.Is(err, datasource.ErrNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, asTransportError(err)
	}
	return p, nil
}

func (s *Store) DeleteProvider(ctx context.Context, id string) error {
	err := s.source.DeleteProvider(ctx, id)
	if err != nil && !errors.Is(err, datasource.ErrNotFound) {
		return asTransportError(err)
	}
	s.dispatch(removeProvider{id})
	return nil
}

func (s *Store) SetActiveTab(tab Tab) {
	s.dispatch(setActiveTab{tab})
}

func (s *Store) SetActiveProgram(program board.Program) {
	s.dispatch(setProgramFilter{program})
}

func (s *Store) SetSelectedState(state string) {
	s.dispatch(setStateFilter{state})
}

func (s *Store) SetJobType(t board.JobType) {
	s.dispatch(setTypeFilter{t})
}

func (s *Store) SetExperienceLevel(level board.ExperienceLevel) {
	s.dispatch(setExperienceFilter{level})
}

func (s *Store) SetSearchTerm(term string) {
	s.dispatch(setSearchTerm{term})
}

// UpdateFilter sets one filter field by name, the way the filter bar drives
// it. Known keys: program, state, type, experienceLevel, searchTerm.
func (s *Store) UpdateFilter(key, value string) error {
	switch key {
	case "program":
		s.dispatch(setProgramFilter{board.Program(value)})
	case "state":
		s.dispatch(setStateFilter{value})
	case "type":
		s.dispatch(setTypeFilter{board.JobType(value)})
	case "experienceLevel":
		s.dispatch(setExperienceFilter{board.ExperienceLevel(value)})
	case "searchTerm":
		s.dispatch(setSearchTerm{value})
	default:
		return fmt.Errorf("unknown filter key: %s", key)
	}
	return nil
}

func (s *Store) ClearFilters() {
	s.dispatch(clearFilters{})
}

// ShowJobForm opens the job form: nil enters create mode, non-nil edit mode.
func (s *Store) ShowJobForm(target *board.Job) {
	s.dispatch(showJobForm{target})
}

func (s *Store) HideJobForm() {
	s.dispatch(hideJobForm{})
}

func (s *Store) ShowProviderForm(target *board.ServiceProvider) {
	s.dispatch(showProviderForm{target})
}

func (s *Store) HideProviderForm() {
	s.dispatch(hideProviderForm{})
}

// LoadStats refreshes the header counters. Failures here are display-only
// and never disturb the lists.
func (s *Store) LoadStats(ctx context.Context) error {
	stats, err := s.source.Stats(ctx)
	if err != nil {
		return asTransportError(err)
	}
	s.dispatch(setStats{*stats})
	return nil
}

func (s *Store) LoadScraperStatus(ctx context.Context) error {
	status, err := s.source.ScraperStatus(ctx)
	if err != nil {
		return asTransportError(err)
	}
	s.dispatch(setScraperStatus{status})
	return nil
}

// StartScraping triggers backend ingestion, then refreshes the scraper
// status and the job list the new postings land in. The status refresh is
// best-effort: ingestion already started, so its failure is only logged.
func (s *Store) StartScraping(ctx context.Context, sources []string) error {
	if err := s.source.StartScraping(ctx, sources); err != nil {
		return asTransportError(err)
	}
	if err := s.LoadScraperStatus(ctx); err != nil {
		log.Printf("refresh scraper status: %v", err)
	}
	return s.LoadJobs(ctx)
}

func (s *Store) TestScraping(ctx context.Context, source string) error {
	if err := s.source.TestScraping(ctx, source); err != nil {
		return asTransportError(err)
	}
	return nil
}

// asTransportError guarantees the store never leaks a raw transport failure:
// anything that is not already classified becomes unknown_error.
func asTransportError(err error) *datasource.TransportError {
	var terr *datasource.TransportError
	if errors.As(err, &terr) {
		return terr
	}
	return &datasource.TransportError{
		Kind:    datasource.KindUnknownError,
		Message: err.Error(),
	}
}
