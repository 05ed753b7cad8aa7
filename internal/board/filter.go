package board

import "strings"

// Filter is the ephemeral selection state driving the derived views. Empty
// fields are inactive and pass everything.
type Filter struct {
	Program         Program
	State           string
	Type            JobType
	ExperienceLevel ExperienceLevel
	SearchTerm      string
}

// IsZero reports whether no predicate is active.
func (f Filter) IsZero() bool {
	return f == Filter{}
}

// FilterJobs returns the jobs matching every active predicate, in the same
// relative order as the input. The input slice is never modified.
func FilterJobs(jobs []Job, f Filter) []Job {
	out := make([]Job, 0, len(jobs))
	term := strings.ToLower(f.SearchTerm)
	for _, j := range jobs {
		if f.Program != "" && j.Program != f.Program {
			continue
		}
		if f.State != "" && j.State != f.State {
			continue
		}
		if f.Type != "" && j.Type != f.Type {
			continue
		}
		if term != "" && !jobMatchesTerm(&j, term) {
			continue
		}
		out = append(out, j)
	}
	return out
}

// FilterProviders is the provider analogue of FilterJobs. Program matching is
// membership (a provider may cover both programs) and the type predicate is
// replaced by experience level.
func FilterProviders(providers []ServiceProvider, f Filter) []ServiceProvider {
	out := make([]ServiceProvider, 0, len(providers))
	term := strings.ToLower(f.SearchTerm)
	for _, p := range providers {
		if f.Program != "" && !p.HasProgram(f.Program) {
			continue
		}
		if f.State != "" && p.State != f.State {
			continue
		}
		if f.ExperienceLevel != "" && p.ExperienceLevel != f.ExperienceLevel {
			continue
		}
		if term != "" && !providerMatchesTerm(&p, term) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// term is already lower-cased by the caller.
func jobMatchesTerm(j *Job, term string) bool {
	return strings.Contains(strings.ToLower(j.Title), term) ||
		strings.Contains(strings.ToLower(j.Description), term) ||
		strings.Contains(strings.ToLower(j.Organization), term)
}

func providerMatchesTerm(p *ServiceProvider, term string) bool {
	if strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Bio), term) {
		return true
	}
	for _, s := range p.Specialties {
		if strings.Contains(strings.ToLower(s), term) {
			return true
		}
	}
	return false
}
