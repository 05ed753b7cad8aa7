// Package app holds the application state container. A single Store owns the
// canonical job and provider lists plus all UI selection state; every
// transition goes through a closed command type and a pure reducer, so no
// partial update is ever observable.
package app

import (
	"github.com/cheerguru/connect/internal/board"
	"github.com/cheerguru/connect/internal/datasource"
)

type Tab string

const (
	TabJobs      Tab = "jobs"
	TabProviders Tab = "providers"
)

// JobForm is the modal form state machine for job postings: hidden, creating
// (visible with no target), or editing (visible with a target).
type JobForm struct {
	Visible bool
	Target  *board.Job
}

func (f JobForm) Hidden() bool   { return !f.Visible }
func (f JobForm) Creating() bool { return f.Visible && f.Target == nil }
func (f JobForm) Editing() bool  { return f.Visible && f.Target != nil }

// ProviderForm is the provider analogue of JobForm.
type ProviderForm struct {
	Visible bool
	Target  *board.ServiceProvider
}

func (f ProviderForm) Hidden() bool   { return !f.Visible }
func (f ProviderForm) Creating() bool { return f.Visible && f.Target == nil }
func (f ProviderForm) Editing() bool  { return f.Visible && f.Target != nil }

// State is the full application state. It is replaced wholesale by the
// reducer; nothing outside this package mutates it.
type State struct {
	Jobs        []board.Job
	JobsLoading bool
	JobsError   *datasource.TransportError

	Providers        []board.ServiceProvider
	ProvidersLoading bool
	ProvidersError   *datasource.TransportError

	ActiveTab Tab
	Filter    board.Filter

	JobForm      JobForm
	ProviderForm ProviderForm

	BackendAvailable bool
	Mode             datasource.Mode

	Stats   datasource.Stats
	Scraper *datasource.ScraperStatus
}

func initialState() State {
	return State{
		ActiveTab: TabJobs,
		Mode:      datasource.ModeLocal,
	}
}
