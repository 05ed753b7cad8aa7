package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"

	"github.com/cheerguru/connect/internal/app"
	"github.com/cheerguru/connect/internal/board"
	"github.com/cheerguru/connect/internal/config"
	"github.com/cheerguru/connect/internal/datasource"
	"github.com/cheerguru/connect/internal/db"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file")
	forceLocal := flag.Bool("local", false, "Skip the backend probe and use local storage")
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	// A missing .env is fine; env vars may come from anywhere.
	godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*cfg.RequestTimeout)
	defer cancel()

	var remote *datasource.Remote
	if !*forceLocal {
		remote = datasource.NewRemote(cfg.BackendURL, &http.Client{Timeout: cfg.RequestTimeout})
	}

	var slots *db.Store
	defer func() {
		if slots != nil {
			slots.Close()
		}
	}()

	store, err := app.Open(ctx, remote, func() (datasource.DataSource, error) {
		s, err := db.NewStore(cfg.DataDir)
		if err != nil {
			return nil, err
		}
		slots = s
		return datasource.NewLocal(s)
	})
	if err != nil {
		log.Fatalf("start session: %v", err)
	}

	if store.Mode() == datasource.ModeLocal && !*forceLocal {
		fmt.Fprintln(os.Stderr, "backend unavailable, using local data")
	}

	if err := run(ctx, store, cfg, flag.Arg(0), flag.Args()[1:]); err != nil {
		printError(err)
		os.Exit(1)
	}
}

func run(ctx context.Context, store *app.Store, cfg *config.Config, command string, args []string) error {
	switch command {
	case "jobs":
		return listJobs(store, args)
	case "providers":
		return listProviders(store, args)
	case "show-job":
		return showJob(ctx, store, args)
	case "show-provider":
		return showProvider(ctx, store, args)
	case "create-job":
		return createJob(ctx, store, args)
	case "update-job":
		return updateJob(ctx, store, args)
	case "delete-job":
		return deleteJob(ctx, store, args)
	case "create-provider":
		return createProvider(ctx, store, args)
	case "update-provider":
		return updateProvider(ctx, store, args)
	case "delete-provider":
		return deleteProvider(ctx, store, args)
	case "stats":
		return showStats(store)
	case "scraper-status":
		return scraperStatus(ctx, store)
	case "scrape":
		return startScrape(ctx, store, cfg, args)
	case "scrape-test":
		return testScrape(ctx, store, args)
	case "retry":
		return retryBackend(ctx, store)
	default:
		return fmt.Errorf("unknown command: %s", command)
	}
}

func filterFlags(fs *flag.FlagSet) (program, state, jobType, experience, search *string) {
	program = fs.String("program", "", "Filter by program (cheerleading|dance_pom)")
	state = fs.String("state", "", "Filter by US state")
	jobType = fs.String("type", "", "Filter jobs by type")
	experience = fs.String("experience", "", "Filter providers by experience level")
	search = fs.String("search", "", "Free-text search")
	return
}

func listJobs(store *app.Store, args []string) error {
	fs := flag.NewFlagSet("jobs", flag.ExitOnError)
	program, state, jobType, _, search := filterFlags(fs)
	fs.Parse(args)

	store.SetActiveTab(app.TabJobs)
	store.SetActiveProgram(board.Program(*program))
	store.SetSelectedState(*state)
	store.SetJobType(board.JobType(*jobType))
	store.SetSearchTerm(*search)

	st := store.State()
	if st.JobsError != nil {
		return st.JobsError
	}

	jobs := store.VisibleJobs()
	if len(jobs) == 0 {
		fmt.Println("no jobs match")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tTYPE\tPROGRAM\tLOCATION\tORGANIZATION\tSTATUS")
	for _, j := range jobs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s, %s\t%s\t%s\n",
			j.ID, j.Title, j.Type, j.Program, j.Location, j.State, j.Organization, j.Status)
	}
	return w.Flush()
}

func listProviders(store *app.Store, args []string) error {
	fs := flag.NewFlagSet("providers", flag.ExitOnError)
	program, state, _, experience, search := filterFlags(fs)
	fs.Parse(args)

	store.SetActiveTab(app.TabProviders)
	store.SetActiveProgram(board.Program(*program))
	store.SetSelectedState(*state)
	store.SetExperienceLevel(board.ExperienceLevel(*experience))
	store.SetSearchTerm(*search)

	st := store.State()
	if st.ProvidersError != nil {
		return st.ProvidersError
	}

	providers := store.VisibleProviders()
	if len(providers) == 0 {
		fmt.Println("no providers match")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tLEVEL\tPROGRAMS\tLOCATION\tSPECIALTIES\tSTATUS")
	for _, p := range providers {
		programs := make([]string, len(p.Programs))
		for i, c := range p.Programs {
			programs[i] = string(c)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s, %s\t%s\t%s\n",
			p.ID, p.Name, p.ExperienceLevel, strings.Join(programs, "+"),
			p.Location, p.State, strings.Join(p.Specialties, ", "), p.Status)
	}
	return w.Flush()
}

func showJob(ctx context.Context, store *app.Store, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: show-job <id>")
	}
	j, err := store.GetJob(ctx, args[0])
	if errors.Is(err, datasource.ErrNotFound) {
		return fmt.Errorf("job %s does not exist", args[0])
	}
	if err != nil {
		return err
	}

	fmt.Printf("%s\n%s, %s - %s\n\n%s\n", j.Title, j.Location, j.State, j.Organization, j.Description)
	if j.Requirements != "" {
		fmt.Printf("\nrequirements: %s\n", j.Requirements)
	}
	if j.Compensation != "" {
		fmt.Printf("compensation: %s\n", j.Compensation)
	}
	fmt.Printf("type: %s  program: %s  status: %s\n", j.Type, j.Program, j.Status)
	fmt.Printf("posted: %s\n", j.PostedDate.Format("2006-01-02"))
	if j.Deadline != nil {
		fmt.Printf("deadline: %s\n", j.Deadline.Format("2006-01-02"))
	}
	if j.ContactEmail != "" {
		fmt.Printf("contact: %s\n", j.ContactEmail)
	}
	if j.ContactPhone != "" {
		fmt.Printf("phone: %s\n", j.ContactPhone)
	}
	return nil
}

func showProvider(ctx context.Context, store *app.Store, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: show-provider <id>")
	}
	p, err := store.GetProvider(ctx, args[0])
	if errors.Is(err, datasource.ErrNotFound) {
		return fmt.Errorf("provider %s does not exist", args[0])
	}
	if err != nil {
		return err
	}

	fmt.Printf("%s (%s)\n%s, %s\n\n%s\n", p.Name, p.ExperienceLevel, p.Location, p.State, p.Bio)
	fmt.Printf("\nspecialties: %s\n", strings.Join(p.Specialties, ", "))
	fmt.Printf("programs: %s\n", joinPrograms(p.Programs))
	for _, svc := range p.Services {
		if svc.Rate != "" {
			fmt.Printf("  %s - %s\n", svc.Name, svc.Rate)
		} else {
			fmt.Printf("  %s\n", svc.Name)
		}
	}
	if p.Availability != "" {
		fmt.Printf("availability: %s\n", p.Availability)
	}
	if p.ContactEmail != "" {
		fmt.Printf("contact: %s\n", p.ContactEmail)
	}
	if p.ContactPhone != "" {
		fmt.Printf("phone: %s\n", p.ContactPhone)
	}
	if p.Website != "" {
		fmt.Printf("website: %s\n", p.Website)
	}
	return nil
}

func retryBackend(ctx context.Context, store *app.Store) error {
	if err := store.RetryBackend(ctx); err != nil {
		return err
	}
	st := store.State()
	if st.BackendAvailable {
		fmt.Printf("backend available, mode: %s\n", st.Mode)
	} else {
		fmt.Printf("backend still unavailable, mode: %s\n", st.Mode)
	}
	return nil
}

func jobFromFlags(fs *flag.FlagSet, base board.Job, args []string) (board.Job, error) {
	title := fs.String("title", base.Title, "Job title")
	description := fs.String("description", base.Description, "Description")
	jobType := fs.String("type", string(base.Type), "Type (coaching|choreography|judging|training|consulting)")
	program := fs.String("program", string(base.Program), "Program (cheerleading|dance_pom)")
	location := fs.String("location", base.Location, "City")
	state := fs.String("state", base.State, "US state")
	organization := fs.String("organization", base.Organization, "Organization")
	requirements := fs.String("requirements", base.Requirements, "Requirements")
	compensation := fs.String("compensation", base.Compensation, "Compensation")
	email := fs.String("email", base.ContactEmail, "Contact email")
	phone := fs.String("phone", base.ContactPhone, "Contact phone")
	deadline := fs.String("deadline", "", "Application deadline (RFC3339)")
	status := fs.String("status", string(base.Status), "Status (active|filled|expired|urgent)")
	if err := fs.Parse(args); err != nil {
		return board.Job{}, err
	}

	j := base
	j.Title = *title
	j.Description = *description
	j.Type = board.JobType(*jobType)
	j.Program = board.Program(*program)
	j.Location = *location
	j.State = *state
	j.Organization = *organization
	j.Requirements = *requirements
	j.Compensation = *compensation
	j.ContactEmail = *email
	j.ContactPhone = *phone
	j.Status = board.JobStatus(*status)
	if *deadline != "" {
		t, err := time.Parse(time.RFC3339, *deadline)
		if err != nil {
			return board.Job{}, fmt.Errorf("invalid deadline: %w", err)
		}
		j.Deadline = &t
	}
	return j, nil
}

func createJob(ctx context.Context, store *app.Store, args []string) error {
	fs := flag.NewFlagSet("create-job", flag.ExitOnError)
	j, err := jobFromFlags(fs, board.Job{}, args)
	if err != nil {
		return err
	}

	store.ShowJobForm(nil)
	created, err := store.CreateJob(ctx, j)
	if err != nil {
		return err
	}
	fmt.Printf("created job %s (%s)\n", created.ID, created.Title)
	return nil
}

func updateJob(ctx context.Context, store *app.Store, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: update-job <id> [flags]")
	}
	id := args[0]

	existing := findJob(store, id)
	if existing == nil {
		return fmt.Errorf("job %s is not in the current list", id)
	}

	fs := flag.NewFlagSet("update-job", flag.ExitOnError)
	j, err := jobFromFlags(fs, *existing, args[1:])
	if err != nil {
		return err
	}

	store.ShowJobForm(existing)
	updated, err := store.UpdateJob(ctx, j)
	if err != nil {
		return err
	}
	if updated == nil {
		fmt.Printf("job %s no longer exists\n", id)
		return nil
	}
	fmt.Printf("updated job %s (%s)\n", updated.ID, updated.Title)
	return nil
}

func deleteJob(ctx context.Context, store *app.Store, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: delete-job <id>")
	}
	if err := store.DeleteJob(ctx, args[0]); err != nil {
		return err
	}
	fmt.Printf("deleted job %s\n", args[0])
	return nil
}

func providerFromFlags(fs *flag.FlagSet, base board.ServiceProvider, args []string) (board.ServiceProvider, error) {
	name := fs.String("name", base.Name, "Provider name")
	bio := fs.String("bio", base.Bio, "Short bio")
	specialties := fs.String("specialties", strings.Join(base.Specialties, ","), "Comma-separated specialties")
	programs := fs.String("programs", joinPrograms(base.Programs), "Comma-separated programs (cheerleading,dance_pom)")
	experience := fs.String("experience", string(base.ExperienceLevel), "Experience level (beginner|intermediate|advanced|elite)")
	location := fs.String("location", base.Location, "City")
	state := fs.String("state", base.State, "US state")
	availability := fs.String("availability", base.Availability, "Availability")
	email := fs.String("email", base.ContactEmail, "Contact email")
	phone := fs.String("phone", base.ContactPhone, "Contact phone")
	website := fs.String("website", base.Website, "Website URL")
	social := fs.String("social", base.SocialMedia, "Social media handle")
	certifications := fs.String("certifications", strings.Join(base.Certifications, ","), "Comma-separated certifications")
	background := fs.String("background", base.Experience, "Experience summary")
	status := fs.String("status", string(base.Status), "Status (available|busy|unavailable)")
	if err := fs.Parse(args); err != nil {
		return board.ServiceProvider{}, err
	}

	p := base
	p.Name = *name
	p.Bio = *bio
	p.Specialties = splitList(*specialties)
	p.Programs = nil
	for _, c := range splitList(*programs) {
		p.Programs = append(p.Programs, board.Program(c))
	}
	p.ExperienceLevel = board.ExperienceLevel(*experience)
	p.Location = *location
	p.State = *state
	p.Availability = *availability
	p.ContactEmail = *email
	p.ContactPhone = *phone
	p.Website = *website
	p.SocialMedia = *social
	p.Certifications = splitList(*certifications)
	p.Experience = *background
	p.Status = board.ProviderStatus(*status)
	return p, nil
}

func createProvider(ctx context.Context, store *app.Store, args []string) error {
	fs := flag.NewFlagSet("create-provider", flag.ExitOnError)
	p, err := providerFromFlags(fs, board.ServiceProvider{}, args)
	if err != nil {
		return err
	}

	store.ShowProviderForm(nil)
	created, err := store.CreateProvider(ctx, p)
	if err != nil {
		return err
	}
	fmt.Printf("created provider %s (%s)\n", created.ID, created.Name)
	return nil
}

func updateProvider(ctx context.Context, store *app.Store, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: update-provider <id> [flags]")
	}
	id := args[0]

	existing := findProvider(store, id)
	if existing == nil {
		return fmt.Errorf("provider %s is not in the current list", id)
	}

	fs := flag.NewFlagSet("update-provider", flag.ExitOnError)
	p, err := providerFromFlags(fs, *existing, args[1:])
	if err != nil {
		return err
	}

	store.ShowProviderForm(existing)
	updated, err := store.UpdateProvider(ctx, p)
	if err != nil {
		return err
	}
	if updated == nil {
		fmt.Printf("provider %s no longer exists\n", id)
		return nil
	}
	fmt.Printf("updated provider %s (%s)\n", updated.ID, updated.Name)
	return nil
}

func deleteProvider(ctx context.Context, store *app.Store, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: delete-provider <id>")
	}
	if err := store.DeleteProvider(ctx, args[0]); err != nil {
		return err
	}
	fmt.Printf("deleted provider %s\n", args[0])
	return nil
}

func showStats(store *app.Store) error {
	st := store.State()
	fmt.Printf("total jobs:      %d\n", st.Stats.TotalJobs)
	fmt.Printf("active jobs:     %d\n", st.Stats.ActiveJobs)
	fmt.Printf("new jobs today:  %d\n", st.Stats.NewJobsToday)
	fmt.Printf("total providers: %d\n", st.Stats.TotalProviders)
	fmt.Printf("mode:            %s\n", st.Mode)
	return nil
}

func scraperStatus(ctx context.Context, store *app.Store) error {
	if err := store.LoadScraperStatus(ctx); err != nil {
		return err
	}
	st := store.State()
	if st.Scraper == nil {
		fmt.Println("scraper status unknown")
		return nil
	}
	fmt.Printf("status: %s\n", st.Scraper.Status)
	if st.Scraper.LastScrapingTime != nil {
		fmt.Printf("last run: %s\n", st.Scraper.LastScrapingTime.Format(time.RFC3339))
	}
	return nil
}

func startScrape(ctx context.Context, store *app.Store, cfg *config.Config, args []string) error {
	sources := cfg.ScraperSources
	if len(args) > 0 {
		sources = args
	}
	if err := store.StartScraping(ctx, sources); err != nil {
		return err
	}
	fmt.Printf("scrape started for %s\n", strings.Join(sources, ", "))
	return nil
}

func testScrape(ctx context.Context, store *app.Store, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: scrape-test <source>")
	}
	if err := store.TestScraping(ctx, args[0]); err != nil {
		return err
	}
	fmt.Printf("scraper %s responded ok\n", args[0])
	return nil
}

func findJob(store *app.Store, id string) *board.Job {
	for _, j := range store.State().Jobs {
		if j.ID == id {
			return &j
		}
	}
	return nil
}

func findProvider(store *app.Store, id string) *board.ServiceProvider {
	for _, p := range store.State().Providers {
		if p.ID == id {
			return &p
		}
	}
	return nil
}

// printError renders validation failures per field and everything else as a
// single line.
func printError(err error) {
	var fieldErrs board.FieldErrors
	if errors.As(err, &fieldErrs) {
		fmt.Fprintln(os.Stderr, "invalid input:")
		fields := make([]string, 0, len(fieldErrs))
		for f := range fieldErrs {
			fields = append(fields, f)
		}
		sort.Strings(fields)
		for _, f := range fields {
			fmt.Fprintf(os.Stderr, "  %s: %s\n", f, fieldErrs[f])
		}
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
}

func splitList(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func joinPrograms(programs []board.Program) string {
	parts := make([]string, len(programs))
	for i, p := range programs {
		parts[i] = string(p)
	}
	return strings.Join(parts, ",")
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "connect - cheer & dance industry job board client\n\n")
		fmt.Fprintf(os.Stderr, "Usage:\n  %s [flags] <command> [args]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Commands:\n")
		fmt.Fprintf(os.Stderr, "  jobs / providers        list with --program --state --type --experience --search\n")
		fmt.Fprintf(os.Stderr, "  show-job <id>           full job detail\n")
		fmt.Fprintf(os.Stderr, "  show-provider <id>      full provider profile\n")
		fmt.Fprintf(os.Stderr, "  create-job              post a job (see create-job -h)\n")
		fmt.Fprintf(os.Stderr, "  update-job <id>         edit a job\n")
		fmt.Fprintf(os.Stderr, "  delete-job <id>         remove a job\n")
		fmt.Fprintf(os.Stderr, "  create-provider         publish a provider profile\n")
		fmt.Fprintf(os.Stderr, "  update-provider <id>    edit a profile\n")
		fmt.Fprintf(os.Stderr, "  delete-provider <id>    remove a profile\n")
		fmt.Fprintf(os.Stderr, "  stats                   aggregate counters\n")
		fmt.Fprintf(os.Stderr, "  scraper-status          backend ingestion status\n")
		fmt.Fprintf(os.Stderr, "  scrape [sources...]     trigger backend ingestion\n")
		fmt.Fprintf(os.Stderr, "  scrape-test <source>    dry-run one scraper source\n")
		fmt.Fprintf(os.Stderr, "  retry                   re-probe the backend\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
}
