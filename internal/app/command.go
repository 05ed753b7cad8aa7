package app

import (
	"fmt"

	"github.com/cheerguru/connect/internal/board"
	"github.com/cheerguru/connect/internal/datasource"
)

// Command is the closed set of state transitions. The unexported marker
// method keeps the set closed to this package, and the reducer handles every
// variant, so a new command that is not wired up fails loudly the first time
// it is dispatched.
type Command interface {
	isCommand()
}

type setJobsLoading struct{ loading bool }
type setJobs struct{ jobs []board.Job }
type setJobsError struct{ err *datasource.TransportError }
type addJob struct{ job board.Job }
type replaceJob struct{ job board.Job }
type removeJob struct{ id string }

type setProvidersLoading struct{ loading bool }
type setProviders struct{ providers []board.ServiceProvider }
type setProvidersError struct{ err *datasource.TransportError }
type addProvider struct{ provider board.ServiceProvider }
type replaceProvider struct{ provider board.ServiceProvider }
type removeProvider struct{ id string }

type setActiveTab struct{ tab Tab }
type setProgramFilter struct{ program board.Program }
type setStateFilter struct{ state string }
type setTypeFilter struct{ jobType board.JobType }
type setExperienceFilter struct{ level board.ExperienceLevel }
type setSearchTerm struct{ term string }
type clearFilters struct{}

type showJobForm struct{ target *board.Job }
type hideJobForm struct{}
type showProviderForm struct{ target *board.ServiceProvider }
type hideProviderForm struct{}

type setBackendStatus struct {
	available bool
	mode      datasource.Mode
}
type setStats struct{ stats datasource.Stats }
type setScraperStatus struct{ status *datasource.ScraperStatus }

func (setJobsLoading) isCommand()      {}
func (setJobs) isCommand()             {}
func (setJobsError) isCommand()        {}
func (addJob) isCommand()              {}
func (replaceJob) isCommand()          {}
func (removeJob) isCommand()           {}
func (setProvidersLoading) isCommand() {}
func (setProviders) isCommand()        {}
func (setProvidersError) isCommand()   {}
func (addProvider) isCommand()         {}
func (replaceProvider) isCommand()     {}
func (removeProvider) isCommand()      {}
func (setActiveTab) isCommand()        {}
func (setProgramFilter) isCommand()    {}
func (setStateFilter) isCommand()      {}
func (setTypeFilter) isCommand()       {}
func (setExperienceFilter) isCommand() {}
func (setSearchTerm) isCommand()       {}
func (clearFilters) isCommand()        {}
func (showJobForm) isCommand()         {}
func (hideJobForm) isCommand()         {}
func (showProviderForm) isCommand()    {}
func (hideProviderForm) isCommand()    {}
func (setBackendStatus) isCommand()    {}
func (setStats) isCommand()            {}
func (setScraperStatus) isCommand()    {}

// reduce computes the next state. It is pure: the only inputs are the current
// state and the command, and the relevant slice is replaced atomically.
func reduce(s State, cmd Command) State {
	switch c := cmd.(type) {
	case setJobsLoading:
		s.JobsLoading = c.loading
		s.JobsError = nil
		return s
	case setJobs:
		s.Jobs = c.jobs
		s.JobsLoading = false
		s.JobsError = nil
		return s
	case setJobsError:
		s.JobsError = c.err
		s.JobsLoading = false
		return s
	case addJob:
		jobs := make([]board.Job, 0, len(s.Jobs)+1)
		jobs = append(jobs, c.job)
		jobs = append(jobs, s.Jobs...)
		s.Jobs = jobs
		return s
	case replaceJob:
		// Unknown id leaves the list untouched: already deleted elsewhere.
		jobs := make([]board.Job, len(s.Jobs))
		for i := range s.Jobs {
			if s.Jobs[i].ID == c.job.ID {
				jobs[i] = c.job
			} else {
				jobs[i] = s.Jobs[i]
			}
		}
		s.Jobs = jobs
		return s
	case removeJob:
		jobs := make([]board.Job, 0, len(s.Jobs))
		for _, j := range s.Jobs {
			if j.ID != c.id {
				jobs = append(jobs, j)
			}
		}
		s.Jobs = jobs
		return s

	case setProvidersLoading:
		s.ProvidersLoading = c.loading
		s.ProvidersError = nil
		return s
	case setProviders:
		s.Providers = c.providers
		s.ProvidersLoading = false
		s.ProvidersError = nil
		return s
	case setProvidersError:
		s.ProvidersError = c.err
		s.ProvidersLoading = false
		return s
	case addProvider:
		providers := make([]board.ServiceProvider, 0, len(s.Providers)+1)
		providers = append(providers, c.provider)
		providers = append(providers, s.Providers...)
		s.Providers = providers
		return s
	case replaceProvider:
		providers := make([]board.ServiceProvider, len(s.Providers))
		for i := range s.Providers {
			if s.Providers[i].ID == c.provider.ID {
				providers[i] = c.provider
			} else {
				providers[i] = s.Providers[i]
			}
		}
		s.Providers = providers
		return s
	case removeProvider:
		providers := make([]board.ServiceProvider, 0, len(s.Providers))
		for _, p := range s.Providers {
			if p.ID != c.id {
				providers = append(providers, p)
			}
		}
		s.Providers = providers
		return s

	case setActiveTab:
		s.ActiveTab = c.tab
		return s
	case setProgramFilter:
		s.Filter.Program = c.program
		return s
	case setStateFilter:
		s.Filter.State = c.state
		return s
	case setTypeFilter:
		s.Filter.Type = c.jobType
		return s
	case setExperienceFilter:
		s.Filter.ExperienceLevel = c.level
		return s
	case setSearchTerm:
		s.Filter.SearchTerm = c.term
		return s
	case clearFilters:
		s.Filter = board.Filter{}
		return s

	case showJobForm:
		// Re-showing while open just swaps the target; no intermediate
		// hidden state.
		s.JobForm = JobForm{Visible: true, Target: c.target}
		return s
	case hideJobForm:
		s.JobForm = JobForm{}
		return s
	case showProviderForm:
		s.ProviderForm = ProviderForm{Visible: true, Target: c.target}
		return s
	case hideProviderForm:
		s.ProviderForm = ProviderForm{}
		return s

	case setBackendStatus:
		s.BackendAvailable = c.available
		s.Mode = c.mode
		return s
	case setStats:
		s.Stats = c.stats
		return s
	case setScraperStatus:
		s.Scraper = c.status
		return s
	}
	panic(fmt.Sprintf("unhandled command %T", cmd))
}
