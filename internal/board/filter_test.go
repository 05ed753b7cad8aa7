package board

import "testing"

func testJobs() []Job {
	return []Job{
		{ID: "j1", Title: "Head Cheerleading Coach", Description: "Varsity program", Organization: "Austin High School", Type: JobTypeCoaching, Program: ProgramCheerleading, State: "Texas"},
		{ID: "j2", Title: "Competition Choreographer", Description: "Level 5 teams", Organization: "Elite All-Stars", Type: JobTypeChoreography, Program: ProgramCheerleading, State: "California"},
		{ID: "j3", Title: "Dance Team Coach", Description: "Jazz and pom styles", Organization: "Coral Gables High School", Type: JobTypeCoaching, Program: ProgramDancePom, State: "Florida"},
	}
}

func testProviders() []ServiceProvider {
	return []ServiceProvider{
		{ID: "p1", Name: "Sarah Johnson", Bio: "Former NCAA cheerleader", Specialties: []string{"Stunting", "Tumbling"}, Programs: []Program{ProgramCheerleading}, ExperienceLevel: ExperienceElite, State: "Texas"},
		{ID: "p2", Name: "Marcus Rodriguez", Bio: "Professional choreographer", Specialties: []string{"Hip-Hop", "Jazz"}, Programs: []Program{ProgramDancePom, ProgramCheerleading}, ExperienceLevel: ExperienceAdvanced, State: "Nevada"},
		{ID: "p3", Name: "Jessica Williams", Bio: "Dance team specialist", Specialties: []string{"Pom Technique"}, Programs: []Program{ProgramDancePom}, ExperienceLevel: ExperienceAdvanced, State: "Illinois"},
	}
}

func TestFilterJobs_EmptyFilterIsIdentity(t *testing.T) {
	jobs := testJobs()
	got := FilterJobs(jobs, Filter{})

	if len(got) != len(jobs) {
		t.Fatalf("expected %d jobs, got %d", len(jobs), len(got))
	}
	for i := range jobs {
		if got[i].ID != jobs[i].ID {
			t.Errorf("position %d: expected %s, got %s", i, jobs[i].ID, got[i].ID)
		}
	}
}

func TestFilterJobs_ByProgram(t *testing.T) {
	got := FilterJobs(testJobs(), Filter{Program: ProgramCheerleading})

	if len(got) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(got))
	}
	if got[0].ID != "j1" || got[1].ID != "j2" {
		t.Errorf("expected j1,j2 in order, got %s,%s", got[0].ID, got[1].ID)
	}
}

func TestFilterJobs_SearchIsCaseInsensitive(t *testing.T) {
	got := FilterJobs(testJobs(), Filter{SearchTerm: "choreographer"})

	if len(got) != 1 {
		t.Fatalf("expected 1 job, got %d", len(got))
	}
	if got[0].ID != "j2" {
		t.Errorf("expected j2, got %s", got[0].ID)
	}
}

func TestFilterJobs_SearchCoversDescriptionAndOrganization(t *testing.T) {
	if got := FilterJobs(testJobs(), Filter{SearchTerm: "jazz"}); len(got) != 1 || got[0].ID != "j3" {
		t.Errorf("description search: expected [j3], got %v", ids(got))
	}
	if got := FilterJobs(testJobs(), Filter{SearchTerm: "elite all-stars"}); len(got) != 1 || got[0].ID != "j2" {
		t.Errorf("organization search: expected [j2], got %v", ids(got))
	}
}

func TestFilterJobs_PredicatesAreConjunctive(t *testing.T) {
	got := FilterJobs(testJobs(), Filter{Program: ProgramCheerleading, Type: JobTypeCoaching})

	if len(got) != 1 {
		t.Fatalf("expected 1 job, got %d", len(got))
	}
	if got[0].ID != "j1" {
		t.Errorf("expected j1, got %s", got[0].ID)
	}
}

func TestFilterJobs_StateIsExactMatch(t *testing.T) {
	if got := FilterJobs(testJobs(), Filter{State: "Texas"}); len(got) != 1 || got[0].ID != "j1" {
		t.Errorf("expected [j1], got %v", ids(got))
	}
	// Stored values are matched case-sensitively.
	if got := FilterJobs(testJobs(), Filter{State: "texas"}); len(got) != 0 {
		t.Errorf("expected no match for lower-case state, got %v", ids(got))
	}
}

func TestFilterJobs_PreservesRelativeOrder(t *testing.T) {
	jobs := []Job{
		{ID: "a", Title: "Coach A", Program: ProgramCheerleading},
		{ID: "b", Title: "Coach B", Program: ProgramDancePom},
		{ID: "c", Title: "Coach C", Program: ProgramCheerleading},
		{ID: "d", Title: "Coach D", Program: ProgramCheerleading},
	}
	got := FilterJobs(jobs, Filter{Program: ProgramCheerleading})

	want := []string{"a", "c", "d"}
	if len(got) != len(want) {
		t.Fatalf("expected %d jobs, got %d", len(want), len(got))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, got[i].ID)
		}
	}
}

func TestFilterProviders_ProgramIsMembership(t *testing.T) {
	got := FilterProviders(testProviders(), Filter{Program: ProgramCheerleading})

	if len(got) != 2 {
		t.Fatalf("expected 2 providers, got %d", len(got))
	}
	if got[0].ID != "p1" || got[1].ID != "p2" {
		t.Errorf("expected p1,p2, got %s,%s", got[0].ID, got[1].ID)
	}
}

func TestFilterProviders_SearchMatchesSpecialtyTags(t *testing.T) {
	got := FilterProviders(testProviders(), Filter{SearchTerm: "pom tech"})

	if len(got) != 1 {
		t.Fatalf("expected 1 provider, got %d", len(got))
	}
	if got[0].ID != "p3" {
		t.Errorf("expected p3, got %s", got[0].ID)
	}
}

func TestFilterProviders_ByExperienceLevel(t *testing.T) {
	got := FilterProviders(testProviders(), Filter{ExperienceLevel: ExperienceAdvanced})

	if len(got) != 2 {
		t.Fatalf("expected 2 providers, got %d", len(got))
	}
}

func TestFilterProviders_EmptyFilterIsIdentity(t *testing.T) {
	providers := testProviders()
	got := FilterProviders(providers, Filter{})

	if len(got) != len(providers) {
		t.Fatalf("expected %d providers, got %d", len(providers), len(got))
	}
}

func ids(jobs []Job) []string {
	out := make([]string, len(jobs))
	for i, j := range jobs {
		out[i] = j.ID
	}
	return out
}
