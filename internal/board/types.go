package board

import (
	"time"

	"github.com/google/uuid"
)

type Program string

const (
	ProgramCheerleading Program = "cheerleading"
	ProgramDancePom     Program = "dance_pom"
)

type JobType string

const (
	JobTypeCoaching     JobType = "coaching"
	JobTypeChoreography JobType = "choreography"
	JobTypeJudging      JobType = "judging"
	JobTypeTraining     JobType = "training"
	JobTypeConsulting   JobType = "consulting"
)

type JobStatus string

const (
	JobStatusActive  JobStatus = "active"
	JobStatusFilled  JobStatus = "filled"
	JobStatusExpired JobStatus = "expired"
	JobStatusUrgent  JobStatus = "urgent"
)

type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceAdvanced     ExperienceLevel = "advanced"
	ExperienceElite        ExperienceLevel = "elite"
)

type ProviderStatus string

const (
	ProviderAvailable   ProviderStatus = "available"
	ProviderBusy        ProviderStatus = "busy"
	ProviderUnavailable ProviderStatus = "unavailable"
)

// Job is a single job posting. PostedDate is set once at creation and never
// changes afterwards.
type Job struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Type         JobType    `json:"type"`
	Program      Program    `json:"program"`
	Location     string     `json:"location"`
	State        string     `json:"state"`
	Organization string     `json:"organization"`
	Requirements string     `json:"requirements,omitempty"`
	Compensation string     `json:"compensation,omitempty"`
	ContactEmail string     `json:"contactEmail,omitempty"`
	ContactPhone string     `json:"contactPhone,omitempty"`
	PostedDate   time.Time  `json:"postedDate"`
	Deadline     *time.Time `json:"deadline,omitempty"`
	Status       JobStatus  `json:"status"`
}

// ServiceOffering is one named service a provider sells, with an optional
// free-text rate ("$75/hour").
type ServiceOffering struct {
	Name string `json:"name"`
	Rate string `json:"rate,omitempty"`
}

// ServiceProvider is a professional profile.
type ServiceProvider struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Bio             string            `json:"bio"`
	Specialties     []string          `json:"specialties"`
	Programs        []Program         `json:"programs"`
	ExperienceLevel ExperienceLevel   `json:"experienceLevel"`
	Location        string            `json:"location"`
	State           string            `json:"state"`
	Services        []ServiceOffering `json:"services,omitempty"`
	Availability    string            `json:"availability,omitempty"`
	ContactEmail    string            `json:"contactEmail,omitempty"`
	ContactPhone    string            `json:"contactPhone,omitempty"`
	Website         string            `json:"website,omitempty"`
	SocialMedia     string            `json:"socialMedia,omitempty"`
	Certifications  []string          `json:"certifications,omitempty"`
	Experience      string            `json:"experience,omitempty"`
	Status          ProviderStatus    `json:"status"`
}

// Stamp fills in the fields the client owns when a job is created locally:
// a generated id, the posted date, and the default status.
func (j *Job) Stamp(now time.Time) {
	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	if j.PostedDate.IsZero() {
		j.PostedDate = now.UTC()
	}
	if j.Status == "" {
		j.Status = JobStatusActive
	}
}

func (p *ServiceProvider) Stamp() {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Status == "" {
		p.Status = ProviderAvailable
	}
}

// HasProgram reports whether the provider works the given program.
func (p *ServiceProvider) HasProgram(prog Program) bool {
	for _, c := range p.Programs {
		if c == prog {
			return true
		}
	}
	return false
}
