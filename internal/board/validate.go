package board

import (
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strings"
)

// FieldErrors maps a field name to a human-readable message. It is what forms
// render inline next to the offending input.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = fmt.Sprintf("%s: %s", f, e[f])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

var emailRe = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// ValidateJob checks the structural invariants of a job posting. It returns
// nil when the job is acceptable.
func ValidateJob(j *Job) FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(j.Title) == "" {
		errs["title"] = "Title is required"
	}
	if strings.TrimSpace(j.Description) == "" {
		errs["description"] = "Description is required"
	}
	if j.Type == "" {
		errs["type"] = "Job type is required"
	}
	if j.Program == "" {
		errs["program"] = "Program type is required"
	}
	if strings.TrimSpace(j.Location) == "" {
		errs["location"] = "Location is required"
	}
	if strings.TrimSpace(j.State) == "" {
		errs["state"] = "State is required"
	}
	if strings.TrimSpace(j.Organization) == "" {
		errs["organization"] = "Organization is required"
	}

	validateContact(errs, j.ContactEmail, j.ContactPhone)

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ValidateProvider checks the structural invariants of a provider profile.
func ValidateProvider(p *ServiceProvider) FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(p.Name) == "" {
		errs["name"] = "Name is required"
	}
	if strings.TrimSpace(p.Bio) == "" {
		errs["bio"] = "Bio is required"
	}
	if len(p.Specialties) == 0 {
		errs["specialties"] = "At least one specialty is required"
	}
	if len(p.Programs) == 0 {
		errs["programs"] = "At least one program is required"
	}
	if strings.TrimSpace(p.Location) == "" {
		errs["location"] = "Location is required"
	}
	if strings.TrimSpace(p.State) == "" {
		errs["state"] = "State is required"
	}

	validateContact(errs, p.ContactEmail, p.ContactPhone)

	if p.Website != "" {
		u, err := url.Parse(p.Website)
		if err != nil || u.Scheme == "" {
			errs["website"] = "Website must be a full URL including http:// or https://"
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// At least one contact method is required; when both are missing, both fields
// are flagged so the form highlights each.
func validateContact(errs FieldErrors, email, phone string) {
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)

	if email == "" && phone == "" {
		errs["contactEmail"] = "Provide an email or a phone number"
		errs["contactPhone"] = "Provide an email or a phone number"
		return
	}
	if email != "" && !emailRe.MatchString(email) {
		errs["contactEmail"] = "Valid email is required"
	}
}
