package datasource

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/cheerguru/connect/internal/board"
	"github.com/cheerguru/connect/internal/db"
)

func newTestSlots(t *testing.T) (*db.Store, string) {
	t.Helper()
	tmpDir, err := os.MkdirTemp("", "local-test-*")
	if err != nil {
		t.Fatalf("create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	slots, err := db.NewStore(tmpDir)
	if err != nil {
		t.Fatalf("create slot store: %v", err)
	}
	return slots, tmpDir
}

func TestLocal_SeedsOnFirstRun(t *testing.T) {
	slots, _ := newTestSlots(t)
	defer slots.Close()

	local, err := NewLocal(slots)
	if err != nil {
		t.Fatalf("new local: %v", err)
	}

	jobs, err := local.ListJobs(context.Background(), JobQuery{})
	if err != nil {
		t.Fatalf("list jobs: %v", err)
	}
	if len(jobs) != 6 {
		t.Errorf("expected 6 sample jobs, got %d", len(jobs))
	}

	providers, err := local.ListProviders(context.Background(), ProviderQuery{})
	if err != nil {
		t.Fatalf("list providers: %v", err)
	}
	if len(providers) != 6 {
		t.Errorf("expected 6 sample providers, got %d", len(providers))
	}
}

func TestLocal_SeedsAtMostOnce(t *testing.T) {
	slots, dir := newTestSlots(t)

	local, err := NewLocal(slots)
	if err != nil {
		t.Fatalf("new local: %v", err)
	}

	// Empty the board, then reopen: the persisted empty list must stay
	// empty instead of being reseeded.
	ctx := context.Background()
	jobs, _ := local.ListJobs(ctx, JobQuery{})
	for _, j := range jobs {
		if err := local.DeleteJob(ctx, j.ID); err != nil {
			t.Fatalf("delete job %s: %v", j.ID, err)
		}
	}
	if err := slots.Close(); err != nil {
		t.Fatalf("close slots: %v", err)
	}

	reopened, err := db.NewStore(dir)
	if err != nil {
		t.Fatalf("reopen slots: %v", err)
	}
	defer reopened.Close()

	local2, err := NewLocal(reopened)
	if err != nil {
		t.Fatalf("reopen local: %v", err)
	}
	jobs, err = local2.ListJobs(ctx, JobQuery{})
	if err != nil {
		t.Fatalf("list jobs: %v", err)
	}
	if len(jobs) != 0 {
		t.Errorf("expected empty job list after reopen, got %d", len(jobs))
	}

	// Providers were untouched and survive independently.
	providers, err := local2.ListProviders(ctx, ProviderQuery{})
	if err != nil {
		t.Fatalf("list providers: %v", err)
	}
	if len(providers) != 6 {
		t.Errorf("expected 6 providers after reopen, got %d", len(providers))
	}
}

func TestLocal_CreateJobStampsIdentity(t *testing.T) {
	slots, _ := newTestSlots(t)
	defer slots.Close()

	local, err := NewLocal(slots)
	if err != nil {
		t.Fatalf("new local: %v", err)
	}

	before := time.Now().UTC()
	created, err := local.CreateJob(context.Background(), &board.Job{
		Title:        "Head Coach",
		Description:  "Lead the program",
		Type:         board.JobTypeCoaching,
		Program:      board.ProgramCheerleading,
		Location:     "Springfield",
		State:        "Illinois",
		Organization: "Lincoln HS",
		ContactEmail: "a@b.com",
	})
	if err != nil {
		t.Fatalf("create job: %v", err)
	}

	if created.ID == "" {
		t.Error("expected generated id")
	}
	if created.PostedDate.Before(before) {
		t.Errorf("expected postedDate >= %v, got %v", before, created.PostedDate)
	}
	if created.Status != board.JobStatusActive {
		t.Errorf("expected default status active, got %s", created.Status)
	}

	jobs, _ := local.ListJobs(context.Background(), JobQuery{})
	if len(jobs) != 7 {
		t.Errorf("expected 7 jobs, got %d", len(jobs))
	}
	if jobs[0].ID != created.ID {
		t.Errorf("expected new job first, got %s", jobs[0].ID)
	}
}

func TestLocal_RoundTrip(t *testing.T) {
	slots, dir := newTestSlots(t)

	local, err := NewLocal(slots)
	if err != nil {
		t.Fatalf("new local: %v", err)
	}
	ctx := context.Background()
	created, err := local.CreateJob(ctx, &board.Job{
		Title:        "Choreographer",
		Description:  "Routine work",
		Type:         board.JobTypeChoreography,
		Program:      board.ProgramDancePom,
		Location:     "Chicago",
		State:        "Illinois",
		Organization: "Windy City Dance",
		ContactPhone: "(312) 555-0100",
	})
	if err != nil {
		t.Fatalf("create job: %v", err)
	}
	if err := slots.Close(); err != nil {
		t.Fatalf("close slots: %v", err)
	}

	reopened, err := db.NewStore(dir)
	if err != nil {
		t.Fatalf("reopen slots: %v", err)
	}
	defer reopened.Close()
	local2, err := NewLocal(reopened)
	if err != nil {
		t.Fatalf("reopen local: %v", err)
	}

	got, err := local2.GetJob(ctx, created.ID)
	if err != nil {
		t.Fatalf("get job after reopen: %v", err)
	}
	if got.Title != created.Title || got.Organization != created.Organization {
		t.Errorf("fields did not round-trip: %+v", got)
	}
	if !got.PostedDate.Equal(created.PostedDate) {
		t.Errorf("postedDate changed across reload: %v != %v", got.PostedDate, created.PostedDate)
	}
}

func TestLocal_UpdatePreservesPostedDate(t *testing.T) {
	slots, _ := newTestSlots(t)
	defer slots.Close()

	local, err := NewLocal(slots)
	if err != nil {
		t.Fatalf("new local: %v", err)
	}
	ctx := context.Background()

	jobs, _ := local.ListJobs(ctx, JobQuery{})
	original := jobs[0]

	changed := original
	changed.Title = "Renamed Position"
	changed.PostedDate = time.Now().Add(48 * time.Hour) // must be ignored

	updated, err := local.UpdateJob(ctx, &changed)
	if err != nil {
		t.Fatalf("update job: %v", err)
	}
	if updated.Title != "Renamed Position" {
		t.Errorf("expected updated title, got %s", updated.Title)
	}
	if !updated.PostedDate.Equal(original.PostedDate) {
		t.Errorf("postedDate must be immutable: %v != %v", updated.PostedDate, original.PostedDate)
	}
}

func TestLocal_MutateUnknownIdIsNotFound(t *testing.T) {
	slots, _ := newTestSlots(t)
	defer slots.Close()

	local, err := NewLocal(slots)
	if err != nil {
		t.Fatalf("new local: %v", err)
	}
	ctx := context.Background()

	before, _ := local.ListJobs(ctx, JobQuery{})

	if _, err := local.UpdateJob(ctx, &board.Job{ID: "no-such-id", Title: "x"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("update: expected ErrNotFound, got %v", err)
	}
	if err := local.DeleteJob(ctx, "no-such-id"); !errors.Is(err, ErrNotFound) {
		t.Errorf("delete: expected ErrNotFound, got %v", err)
	}

	after, _ := local.ListJobs(ctx, JobQuery{})
	if len(after) != len(before) {
		t.Errorf("list changed: %d != %d", len(after), len(before))
	}
	for i := range before {
		if before[i].ID != after[i].ID {
			t.Errorf("position %d changed: %s != %s", i, before[i].ID, after[i].ID)
		}
	}
}

func TestLocal_ListAppliesQuery(t *testing.T) {
	slots, _ := newTestSlots(t)
	defer slots.Close()

	local, err := NewLocal(slots)
	if err != nil {
		t.Fatalf("new local: %v", err)
	}

	jobs, err := local.ListJobs(context.Background(), JobQuery{Program: board.ProgramDancePom})
	if err != nil {
		t.Fatalf("list jobs: %v", err)
	}
	for _, j := range jobs {
		if j.Program != board.ProgramDancePom {
			t.Errorf("unexpected program %s for %s", j.Program, j.ID)
		}
	}
	if len(jobs) != 1 {
		t.Errorf("expected 1 dance_pom sample job, got %d", len(jobs))
	}
}

func TestLocal_StatsAreComputed(t *testing.T) {
	slots, _ := newTestSlots(t)
	defer slots.Close()

	local, err := NewLocal(slots)
	if err != nil {
		t.Fatalf("new local: %v", err)
	}

	stats, err := local.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalJobs != 6 || stats.TotalProviders != 6 {
		t.Errorf("expected 6/6 totals, got %d/%d", stats.TotalJobs, stats.TotalProviders)
	}
	if stats.ActiveJobs != 6 {
		t.Errorf("expected 6 active sample jobs, got %d", stats.ActiveJobs)
	}
}

func TestLocal_ScraperNeedsBackend(t *testing.T) {
	slots, _ := newTestSlots(t)
	defer slots.Close()

	local, err := NewLocal(slots)
	if err != nil {
		t.Fatalf("new local: %v", err)
	}

	_, err = local.ScraperStatus(context.Background())
	var terr *TransportError
	if !errors.As(err, &terr) || terr.Kind != KindNetworkError {
		t.Errorf("expected network_error, got %v", err)
	}
	if err := local.StartScraping(context.Background(), []string{"edjoin"}); err == nil {
		t.Error("expected scraping to fail in local mode")
	}
}
