package board

import "time"

// SampleJobs returns the built-in job postings used to seed local mode on a
// first-ever run, so the board is never empty before the backend exists.
func SampleJobs() []Job {
	return []Job{
		{
			ID:           "job-1",
			Title:        "Head Cheerleading Coach",
			Description:  "We are seeking an experienced and passionate Head Cheerleading Coach to lead our varsity cheerleading program. The ideal candidate will have a strong background in competitive cheerleading, excellent leadership skills, and the ability to develop athletes both technically and personally. Responsibilities include planning practices, choreographing routines, managing competitions, and fostering team spirit.",
			Type:         JobTypeCoaching,
			Program:      ProgramCheerleading,
			Location:     "Austin",
			State:        "Texas",
			Organization: "Austin High School",
			Requirements: "Minimum 3 years coaching experience, USASF safety certification preferred, strong communication skills, ability to work with high school athletes",
			Compensation: "$3,500/season + bonuses",
			ContactEmail: "athletics@austinhigh.edu",
			ContactPhone: "(512) 555-0123",
			PostedDate:   time.Date(2024, 12, 1, 10, 0, 0, 0, time.UTC),
			Deadline:     timePtr(time.Date(2025, 1, 15, 23, 59, 59, 0, time.UTC)),
			Status:       JobStatusActive,
		},
		{
			ID:           "job-2",
			Title:        "Competition Choreographer",
			Description:  "Elite All-Stars is looking for a creative and experienced choreographer to create winning routines for our Level 5 teams. Must have experience with current trends in competitive cheerleading and ability to work with elite-level athletes. This is a contract position for the 2024-2025 competition season.",
			Type:         JobTypeChoreography,
			Program:      ProgramCheerleading,
			Location:     "Los Angeles",
			State:        "California",
			Organization: "Elite All-Stars",
			Requirements: "Professional choreography experience, knowledge of USASF rules, portfolio of previous work, ability to travel for competitions",
			Compensation: "$5,000 per routine",
			ContactEmail: "hiring@eliteallstars.com",
			ContactPhone: "(323) 555-0456",
			PostedDate:   time.Date(2024, 11, 28, 14, 30, 0, 0, time.UTC),
			Deadline:     timePtr(time.Date(2024, 12, 20, 23, 59, 59, 0, time.UTC)),
			Status:       JobStatusActive,
		},
		{
			ID:           "job-3",
			Title:        "Dance Team Coach",
			Description:  "Join our award-winning dance program! We need an energetic coach to lead our varsity dance team through competition season. Experience with jazz, hip-hop, and pom styles required. Must be available for evening practices and weekend competitions.",
			Type:         JobTypeCoaching,
			Program:      ProgramDancePom,
			Location:     "Miami",
			State:        "Florida",
			Organization: "Coral Gables High School",
			Requirements: "Dance background, coaching experience preferred, first aid certification, background check required",
			Compensation: "$2,800/season",
			ContactEmail: "coach@coralgablesdance.org",
			ContactPhone: "(305) 555-0789",
			PostedDate:   time.Date(2024, 11, 25, 9, 15, 0, 0, time.UTC),
			Deadline:     timePtr(time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC)),
			Status:       JobStatusActive,
		},
		{
			ID:           "job-4",
			Title:        "Tumbling Instructor",
			Description:  "Part-time tumbling instructor needed for our recreational and competitive programs. Classes include beginner through advanced levels. Must be able to spot all tumbling skills and create a safe, fun learning environment.",
			Type:         JobTypeTraining,
			Program:      ProgramCheerleading,
			Location:     "Denver",
			State:        "Colorado",
			Organization: "Rocky Mountain Gymnastics",
			Requirements: "Gymnastics or cheerleading background, spotting certification, experience working with children",
			Compensation: "$25-35/hour",
			ContactEmail: "jobs@rockymountaingym.com",
			ContactPhone: "(303) 555-0234",
			PostedDate:   time.Date(2024, 12, 3, 16, 45, 0, 0, time.UTC),
			Deadline:     timePtr(time.Date(2025, 1, 10, 23, 59, 59, 0, time.UTC)),
			Status:       JobStatusActive,
		},
		{
			ID:           "job-5",
			Title:        "Competition Judge",
			Description:  "Experienced judges needed for regional cheerleading competitions. Must be certified and available for weekend events throughout the season. Travel opportunities available for national competitions.",
			Type:         JobTypeJudging,
			Program:      ProgramCheerleading,
			Location:     "Atlanta",
			State:        "Georgia",
			Organization: "Southeast Cheer Officials",
			Requirements: "USASF judging certification, minimum 2 years judging experience, reliable transportation",
			Compensation: "$150-300/day + travel expenses",
			ContactEmail: "judges@southeastcheer.org",
			ContactPhone: "(404) 555-0567",
			PostedDate:   time.Date(2024, 11, 30, 11, 20, 0, 0, time.UTC),
			Deadline:     timePtr(time.Date(2024, 12, 25, 23, 59, 59, 0, time.UTC)),
			Status:       JobStatusActive,
		},
		{
			ID:           "job-6",
			Title:        "Private Coaching Consultant",
			Description:  "Seeking a consultant to help develop our new competitive cheer program. Will work with coaching staff to establish training protocols, safety procedures, and competition strategies.",
			Type:         JobTypeConsulting,
			Program:      ProgramCheerleading,
			Location:     "Phoenix",
			State:        "Arizona",
			Organization: "Desert Storm Athletics",
			Requirements: "Extensive coaching background, program development experience, strong organizational skills",
			Compensation: "Negotiable based on experience",
			ContactEmail: "info@desertstormathletics.com",
			ContactPhone: "(602) 555-0890",
			PostedDate:   time.Date(2024, 12, 2, 13, 10, 0, 0, time.UTC),
			Deadline:     timePtr(time.Date(2025, 1, 5, 23, 59, 59, 0, time.UTC)),
			Status:       JobStatusActive,
		},
	}
}

// SampleProviders returns the built-in provider profiles for first-run
// seeding.
func SampleProviders() []ServiceProvider {
	return []ServiceProvider{
		{
			ID:              "provider-1",
			Name:            "Sarah Johnson",
			Bio:             "Former NCAA Division I cheerleader with 8+ years of coaching experience. Specializing in building strong, competitive programs from the ground up. I have coached teams to multiple state championships and have a passion for developing young athletes both on and off the mat.",
			Specialties:     []string{"Stunting", "Tumbling", "Team Building", "Competition Prep"},
			Programs:        []Program{ProgramCheerleading},
			ExperienceLevel: ExperienceElite,
			Location:        "Dallas",
			State:           "Texas",
			Services: []ServiceOffering{
				{Name: "Private Coaching", Rate: "$75/hour"},
				{Name: "Team Workshops", Rate: "$200/session"},
				{Name: "Competition Choreography", Rate: "$1,500/routine"},
			},
			Availability:   "Weekends and evenings, summer camps available",
			ContactEmail:   "sarah.johnson.cheer@gmail.com",
			ContactPhone:   "(214) 555-0123",
			Website:        "https://sarahjohnsoncheer.com",
			SocialMedia:    "@sarahjcheer",
			Certifications: []string{"USASF Safety Certification", "CPR/First Aid", "NFHS Coaching Certification"},
			Experience:     "8 years coaching, former D1 athlete",
			Status:         ProviderAvailable,
		},
		{
			ID:              "provider-2",
			Name:            "Marcus Rodriguez",
			Bio:             "Professional choreographer and former competitive dancer with expertise in contemporary, jazz, and hip-hop styles. I work with dance teams and cheerleading squads to create dynamic, award-winning routines that showcase each team's unique strengths.",
			Specialties:     []string{"Choreography", "Hip-Hop", "Jazz", "Contemporary"},
			Programs:        []Program{ProgramDancePom, ProgramCheerleading},
			ExperienceLevel: ExperienceAdvanced,
			Location:        "Las Vegas",
			State:           "Nevada",
			Services: []ServiceOffering{
				{Name: "Competition Choreography", Rate: "$2,000/routine"},
				{Name: "Masterclasses", Rate: "$150/class"},
				{Name: "Private Lessons", Rate: "$100/hour"},
			},
			Availability:   "Flexible schedule, travel available",
			ContactEmail:   "marcus@danceandcheer.pro",
			ContactPhone:   "(702) 555-0456",
			Website:        "https://marcusrodriguezchoreography.com",
			SocialMedia:    "@marcusdancepro",
			Certifications: []string{"Professional Dance Certification", "Youth Protection Training"},
			Experience:     "6 years professional choreography",
			Status:         ProviderAvailable,
		},
		{
			ID:              "provider-3",
			Name:            "Emily Chen",
			Bio:             "Certified tumbling instructor and former elite gymnast. I specialize in teaching safe tumbling progression and helping athletes overcome mental blocks. My patient, encouraging approach has helped hundreds of athletes achieve their tumbling goals.",
			Specialties:     []string{"Tumbling", "Back Handsprings", "Layout", "Mental Training"},
			Programs:        []Program{ProgramCheerleading},
			ExperienceLevel: ExperienceElite,
			Location:        "San Francisco",
			State:           "California",
			Services: []ServiceOffering{
				{Name: "Private Tumbling", Rate: "$80/hour"},
				{Name: "Group Classes", Rate: "$35/athlete"},
				{Name: "Mental Block Coaching", Rate: "$90/hour"},
			},
			Availability:   "Weekdays after 3pm, weekends",
			ContactEmail:   "emily.chen.tumbling@gmail.com",
			ContactPhone:   "(415) 555-0789",
			Website:        "https://emilychentumbling.com",
			SocialMedia:    "@emilytumbles",
			Certifications: []string{"USAG Safety Certification", "Mental Performance Coaching", "CPR/AED"},
			Experience:     "5 years coaching, former Level 10 gymnast",
			Status:         ProviderAvailable,
		},
		{
			ID:              "provider-4",
			Name:            "Coach Mike Thompson",
			Bio:             "Veteran cheerleading coach with 15+ years of experience building championship programs. I offer consulting services for new programs, team building workshops, and coaching mentorship. My teams have won 12 state titles and 3 national championships.",
			Specialties:     []string{"Program Development", "Leadership", "Competition Strategy", "Coach Mentoring"},
			Programs:        []Program{ProgramCheerleading},
			ExperienceLevel: ExperienceElite,
			Location:        "Nashville",
			State:           "Tennessee",
			Services: []ServiceOffering{
				{Name: "Program Consulting", Rate: "$200/hour"},
				{Name: "Coach Mentoring", Rate: "$150/hour"},
				{Name: "Team Building Workshops", Rate: "$500/day"},
			},
			Availability:   "Limited availability, booking 2 months in advance",
			ContactEmail:   "coach.mike.thompson@gmail.com",
			ContactPhone:   "(615) 555-0234",
			Website:        "https://mikethompsoncoaching.com",
			SocialMedia:    "@coachmikethompson",
			Certifications: []string{"USASF Master Trainer", "NFHS Master Course", "Leadership Development"},
			Experience:     "15+ years coaching, 12 state titles",
			Status:         ProviderBusy,
		},
		{
			ID:              "provider-5",
			Name:            "Jessica Williams",
			Bio:             "Dance team specialist with expertise in pom, jazz, and kick technique. I work with high school and college dance teams to improve technique, performance quality, and competition readiness. Former professional dancer with the NBA.",
			Specialties:     []string{"Pom Technique", "Jazz", "Kick Lines", "Performance Quality"},
			Programs:        []Program{ProgramDancePom},
			ExperienceLevel: ExperienceAdvanced,
			Location:        "Chicago",
			State:           "Illinois",
			Services: []ServiceOffering{
				{Name: "Technique Workshops", Rate: "$300/workshop"},
				{Name: "Private Coaching", Rate: "$85/hour"},
				{Name: "Competition Prep", Rate: "$400/day"},
			},
			Availability:   "Weekends, summer intensives",
			ContactEmail:   "jessica.williams.dance@gmail.com",
			ContactPhone:   "(312) 555-0567",
			Website:        "https://jessicawilliamsdance.com",
			SocialMedia:    "@jesswilliamsdance",
			Certifications: []string{"Professional Dance Teaching", "Sports Medicine Basics"},
			Experience:     "7 years coaching, former NBA dancer",
			Status:         ProviderAvailable,
		},
		{
			ID:              "provider-6",
			Name:            "Alex Rivera",
			Bio:             "Innovative choreographer specializing in cutting-edge routines that blend traditional cheerleading with modern dance elements. I help teams stand out at competitions with unique, memorable performances that judges love.",
			Specialties:     []string{"Creative Choreography", "Music Editing", "Visual Effects", "Innovation"},
			Programs:        []Program{ProgramCheerleading, ProgramDancePom},
			ExperienceLevel: ExperienceAdvanced,
			Location:        "Seattle",
			State:           "Washington",
			Services: []ServiceOffering{
				{Name: "Competition Choreography", Rate: "$2,500/routine"},
				{Name: "Music Mixing", Rate: "$300/mix"},
				{Name: "Creative Consulting", Rate: "$125/hour"},
			},
			Availability:   "Project-based, 3-week lead time",
			ContactEmail:   "alex@riverachoreography.com",
			ContactPhone:   "(206) 555-0890",
			Website:        "https://riverachoreography.com",
			SocialMedia:    "@alexriverachoreography",
			Certifications: []string{"Music Production Certificate", "Creative Arts Degree"},
			Experience:     "4 years professional choreography",
			Status:         ProviderAvailable,
		},
	}
}

func timePtr(t time.Time) *time.Time {
	return &t
}
