package board

import "testing"

func validJob() Job {
	return Job{
		Title:        "Head Coach",
		Description:  "Lead the varsity program",
		Type:         JobTypeCoaching,
		Program:      ProgramCheerleading,
		Location:     "Springfield",
		State:        "Illinois",
		Organization: "Lincoln HS",
		ContactEmail: "a@b.com",
	}
}

func validProvider() ServiceProvider {
	return ServiceProvider{
		Name:         "Sarah Johnson",
		Bio:          "Former NCAA cheerleader",
		Specialties:  []string{"Stunting"},
		Programs:     []Program{ProgramCheerleading},
		Location:     "Dallas",
		State:        "Texas",
		ContactPhone: "(214) 555-0123",
	}
}

func TestValidateJob_Valid(t *testing.T) {
	j := validJob()
	if errs := ValidateJob(&j); errs != nil {
		t.Errorf("expected valid job, got %v", errs)
	}
}

func TestValidateJob_PhoneOnlyIsEnough(t *testing.T) {
	j := validJob()
	j.ContactEmail = ""
	j.ContactPhone = "(555) 555-0100"
	if errs := ValidateJob(&j); errs != nil {
		t.Errorf("expected valid job with phone only, got %v", errs)
	}
}

func TestValidateJob_MissingBothContactsFlagsBoth(t *testing.T) {
	j := validJob()
	j.ContactEmail = ""
	j.ContactPhone = ""

	errs := ValidateJob(&j)
	if errs == nil {
		t.Fatal("expected validation errors")
	}
	if _, ok := errs["contactEmail"]; !ok {
		t.Error("expected contactEmail to be flagged")
	}
	if _, ok := errs["contactPhone"]; !ok {
		t.Error("expected contactPhone to be flagged")
	}
}

func TestValidateJob_MalformedEmail(t *testing.T) {
	j := validJob()
	j.ContactEmail = "foo@bar" // no TLD

	errs := ValidateJob(&j)
	if errs == nil {
		t.Fatal("expected validation errors")
	}
	if _, ok := errs["contactEmail"]; !ok {
		t.Errorf("expected contactEmail error, got %v", errs)
	}
}

func TestValidateJob_RequiredFields(t *testing.T) {
	errs := ValidateJob(&Job{ContactPhone: "555"})
	if errs == nil {
		t.Fatal("expected validation errors")
	}
	for _, field := range []string{"title", "description", "type", "program", "location", "state", "organization"} {
		if _, ok := errs[field]; !ok {
			t.Errorf("expected %s to be flagged", field)
		}
	}
}

func TestValidateJob_WhitespaceOnlyIsEmpty(t *testing.T) {
	j := validJob()
	j.Title = "   "
	errs := ValidateJob(&j)
	if errs == nil {
		t.Fatal("expected validation errors")
	}
	if _, ok := errs["title"]; !ok {
		t.Error("expected title to be flagged")
	}
}

func TestValidateProvider_Valid(t *testing.T) {
	p := validProvider()
	if errs := ValidateProvider(&p); errs != nil {
		t.Errorf("expected valid provider, got %v", errs)
	}
}

func TestValidateProvider_EmptySpecialtiesAndPrograms(t *testing.T) {
	p := validProvider()
	p.Specialties = nil
	p.Programs = nil

	errs := ValidateProvider(&p)
	if errs == nil {
		t.Fatal("expected validation errors")
	}
	if _, ok := errs["specialties"]; !ok {
		t.Error("expected specialties to be flagged")
	}
	if _, ok := errs["programs"]; !ok {
		t.Error("expected programs to be flagged")
	}
}

func TestValidateProvider_WebsiteNeedsScheme(t *testing.T) {
	p := validProvider()
	p.Website = "sarahjohnsoncheer.com"

	errs := ValidateProvider(&p)
	if errs == nil {
		t.Fatal("expected validation errors")
	}
	if _, ok := errs["website"]; !ok {
		t.Errorf("expected website error, got %v", errs)
	}

	p.Website = "https://sarahjohnsoncheer.com"
	if errs := ValidateProvider(&p); errs != nil {
		t.Errorf("expected valid website to pass, got %v", errs)
	}
}

func TestFieldErrors_ErrorStringIsStable(t *testing.T) {
	errs := FieldErrors{"b": "second", "a": "first"}
	want := "validation failed: a: first; b: second"
	if errs.Error() != want {
		t.Errorf("expected %q, got %q", want, errs.Error())
	}
}
