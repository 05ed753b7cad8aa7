package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/cheerguru/connect/internal/board"
	"github.com/cheerguru/connect/internal/db"
)

const (
	jobsSlot      = "board/jobs"
	providersSlot = "board/providers"
)

// Local is the fallback data source used when the backend is unreachable.
// The canonical lists live in memory; every successful mutation is mirrored
// to the badger slots. Durability is best-effort: a failed write is logged
// and the in-memory change stands.
type Local struct {
	mu        sync.RWMutex
	store     *db.Store
	jobs      []board.Job
	providers []board.ServiceProvider
}

// NewLocal loads the persisted lists, seeding the built-in sample data when
// neither slot has ever been written. A previously persisted empty list stays
// empty.
func NewLocal(store *db.Store) (*Local, error) {
	l := &Local{store: store}

	hasJobs, err := store.Has(jobsSlot)
	if err != nil {
		return nil, fmt.Errorf("check jobs slot: %w", err)
	}
	hasProviders, err := store.Has(providersSlot)
	if err != nil {
		return nil, fmt.Errorf("check providers slot: %w", err)
	}

	if !hasJobs && !hasProviders {
		l.jobs = board.SampleJobs()
		l.providers = board.SampleProviders()
		l.persistJobs()
		l.persistProviders()
		return l, nil
	}

	if hasJobs {
		data, err := store.Get(jobsSlot)
		if err != nil {
			return nil, fmt.Errorf("load jobs: %w", err)
		}
		if err := json.Unmarshal(data, &l.jobs); err != nil {
			return nil, fmt.Errorf("decode jobs: %w", err)
		}
	}
	if hasProviders {
		data, err := store.Get(providersSlot)
		if err != nil {
			return nil, fmt.Errorf("load providers: %w", err)
		}
		if err := json.Unmarshal(data, &l.providers); err != nil {
			return nil, fmt.Errorf("decode providers: %w", err)
		}
	}
	return l, nil
}

func (l *Local) Mode() Mode { return ModeLocal }

func (l *Local) CheckAvailability(ctx context.Context) bool { return true }

func (l *Local) ListJobs(ctx context.Context, q JobQuery) ([]board.Job, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	jobs := board.FilterJobs(l.jobs, board.Filter{
		Program:    q.Program,
		Type:       q.Type,
		State:      q.State,
		SearchTerm: q.Search,
	})
	if q.Status == "" {
		return jobs, nil
	}
	out := jobs[:0]
	for _, j := range jobs {
		if j.Status == q.Status {
			out = append(out, j)
		}
	}
	return out, nil
}

func (l *Local) GetJob(ctx context.Context, id string) (*board.Job, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for i := range l.jobs {
		if l.jobs[i].ID == id {
			j := l.jobs[i]
			return &j, nil
		}
	}
	return nil, ErrNotFound
}

func (l *Local) CreateJob(ctx context.Context, j *board.Job) (*board.Job, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	created := *j
	created.Stamp(time.Now())
	l.jobs = append([]board.Job{created}, l.jobs...)
	l.persistJobs()
	return &created, nil
}

func (l *Local) UpdateJob(ctx context.Context, j *board.Job) (*board.Job, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.jobs {
		if l.jobs[i].ID == j.ID {
			updated := *j
			updated.PostedDate = l.jobs[i].PostedDate // immutable once set
			l.jobs[i] = updated
			l.persistJobs()
			return &updated, nil
		}
	}
	return nil, ErrNotFound
}

func (l *Local) DeleteJob(ctx context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.jobs {
		if l.jobs[i].ID == id {
			l.jobs = append(l.jobs[:i:i], l.jobs[i+1:]...)
			l.persistJobs()
			return nil
		}
	}
	return ErrNotFound
}

func (l *Local) ListProviders(ctx context.Context, q ProviderQuery) ([]board.ServiceProvider, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	providers := board.FilterProviders(l.providers, board.Filter{
		ExperienceLevel: q.Experience,
		State:           q.State,
		SearchTerm:      q.Search,
	})
	if q.Status == "" {
		return providers, nil
	}
	out := providers[:0]
	for _, p := range providers {
		if p.Status == q.Status {
			out = append(out, p)
		}
	}
	return out, nil
}

func (l *Local) GetProvider(ctx context.Context, id string) (*board.ServiceProvider, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for i := range l.providers {
		if l.providers[i].ID == id {
			p := l.providers[i]
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (l *Local) CreateProvider(ctx context.Context, p *board.ServiceProvider) (*board.ServiceProvider, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	created := *p
	created.Stamp()
	l.providers = append([]board.ServiceProvider{created}, l.providers...)
	l.persistProviders()
	return &created, nil
}

func (l *Local) UpdateProvider(ctx context.Context, p *board.ServiceProvider) (*board.ServiceProvider, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.providers {
		if l.providers[i].ID == p.ID {
			updated := *p
			l.providers[i] = updated
			l.persistProviders()
			return &updated, nil
		}
	}
	return nil, ErrNotFound
}

func (l *Local) DeleteProvider(ctx context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.providers {
		if l.providers[i].ID == id {
			l.providers = append(l.providers[:i:i], l.providers[i+1:]...)
			l.persistProviders()
			return nil
		}
	}
	return ErrNotFound
}

// Stats computes the header counters from the local lists; there is no
// backend to ask.
func (l *Local) Stats(ctx context.Context) (*Stats, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	s := &Stats{
		TotalJobs:      len(l.jobs),
		TotalProviders: len(l.providers),
	}
	today := time.Now().UTC().Truncate(24 * time.Hour)
	for _, j := range l.jobs {
		if j.Status == board.JobStatusActive || j.Status == board.JobStatusUrgent {
			s.ActiveJobs++
		}
		if !j.PostedDate.Before(today) {
			s.NewJobsToday++
		}
	}
	return s, nil
}

// The ingestion pipeline lives behind the backend; without it there is
// nothing to scrape.
func (l *Local) ScraperStatus(ctx context.Context) (*ScraperStatus, error) {
	return nil, networkError("scraper requires the backend, which is unavailable")
}

func (l *Local) StartScraping(ctx context.Context, sources []string) error {
	return networkError("scraper requires the backend, which is unavailable")
}

func (l *Local) TestScraping(ctx context.Context, source string) error {
	return networkError("scraper requires the backend, which is unavailable")
}

func (l *Local) persistJobs() {
	data, err := json.Marshal(l.jobs)
	if err != nil {
		log.Printf("encode jobs for persistence: %v", err)
		return
	}
	if err := l.store.Set(jobsSlot, data); err != nil {
		log.Printf("persist jobs: %v", err)
	}
}

func (l *Local) persistProviders() {
	data, err := json.Marshal(l.providers)
	if err != nil {
		log.Printf("encode providers for persistence: %v", err)
		return
	}
	if err := l.store.Set(providersSlot, data); err != nil {
		log.Printf("persist providers: %v", err)
	}
}
