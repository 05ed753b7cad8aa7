// Package datasource hides whether entity persistence is remote or local
// behind one interface consumed by the store. The remote implementation
// speaks the backend REST API; the local one operates on an embedded badger
// database seeded with sample records on first run.
package datasource

import (
	"context"
	"time"

	"github.com/cheerguru/connect/internal/board"
)

type Mode string

const (
	ModeRemote Mode = "remote"
	ModeLocal  Mode = "local"
)

// JobQuery carries the server-side filter parameters for listing jobs. Zero
// fields are omitted from the request.
type JobQuery struct {
	Program board.Program
	Type    board.JobType
	State   string
	Search  string
	Status  board.JobStatus
}

// ProviderQuery is the provider listing analogue.
type ProviderQuery struct {
	Services   string
	Experience board.ExperienceLevel
	State      string
	Search     string
	Status     board.ProviderStatus
}

// Stats are aggregate counters shown in the header; display only.
type Stats struct {
	TotalJobs      int `json:"totalJobs"`
	ActiveJobs     int `json:"activeJobs"`
	NewJobsToday   int `json:"newJobsToday"`
	TotalProviders int `json:"totalProviders"`
}

// ScraperState is the ingestion pipeline state reported by the backend.
type ScraperState string

const (
	ScraperIdle      ScraperState = "idle"
	ScraperRunning   ScraperState = "running"
	ScraperCompleted ScraperState = "completed"
	ScraperError     ScraperState = "error"
)

type ScraperStatus struct {
	Status           ScraperState `json:"status"`
	LastScrapingTime *time.Time   `json:"lastScrapingTime,omitempty"`
}

// DataSource is the persistence strategy behind the store. Implementations:
// Remote (REST backend) and Local (embedded storage). Mutations return the
// entity as the data source holds it after the operation; the store
// reconciles its canonical list from that representation, never from the
// caller's input.
type DataSource interface {
	Mode() Mode

	// CheckAvailability performs a single bounded-time probe. The session
	// picks its mode from the result once at startup; a manually triggered
	// retry may probe again.
	CheckAvailability(ctx context.Context) bool

	ListJobs(ctx context.Context, q JobQuery) ([]board.Job, error)
	GetJob(ctx context.Context, id string) (*board.Job, error)
	CreateJob(ctx context.Context, j *board.Job) (*board.Job, error)
	UpdateJob(ctx context.Context, j *board.Job) (*board.Job, error)
	DeleteJob(ctx context.Context, id string) error

	ListProviders(ctx context.Context, q ProviderQuery) ([]board.ServiceProvider, error)
	GetProvider(ctx context.Context, id string) (*board.ServiceProvider, error)
	CreateProvider(ctx context.Context, p *board.ServiceProvider) (*board.ServiceProvider, error)
	UpdateProvider(ctx context.Context, p *board.ServiceProvider) (*board.ServiceProvider, error)
	DeleteProvider(ctx context.Context, id string) error

	Stats(ctx context.Context) (*Stats, error)

	ScraperStatus(ctx context.Context) (*ScraperStatus, error)
	StartScraping(ctx context.Context, sources []string) error
	TestScraping(ctx context.Context, source string) error
}
