package config

import (
	"fmt"
	"log"
	"time"

	"github.com/AaravKashyap/ClubCentral-FINAL/internal/adapters/persistence/models"

	"github.com/google/uuid"
)

// seedClub is the static catalog entry used at first boot
type seedClub struct {
	ID               string
	Name             string
	Description      string
	Category         string
	Tags             []string
	AdvisorName      string
	PresidentName    string
	PresidentEmail   string
	Email            string
	MeetingFrequency string
	MeetingDay       string
	MeetingTime      string
	MeetingLocation  string
	ImageURL         string
	MemberCount      int
	YearFounded      int
	Requirements     string
	Instagram        string
	Discord          string
	Website          string
	MeetingSlots     int // how many upcoming meetings to generate
	MeetingStart     string
	MeetingEnd       string
}

// seedClubs inserts the static club catalog on first boot. Existing
// clubs are left untouched, so catalog edits survive restarts.
func (s *Seeder) seedClubs() error {
	seeded := 0
	for _, sc := range clubCatalog() {
		var count int64
		if err := s.db.Model(&models.Club{}).Where("id = ?", sc.ID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		club := &models.Club{
			ID:               sc.ID,
			Name:             sc.Name,
			Description:      sc.Description,
			Category:         sc.Category,
			AdvisorName:      sc.AdvisorName,
			PresidentName:    sc.PresidentName,
			PresidentEmail:   sc.PresidentEmail,
			Email:            sc.Email,
			MeetingFrequency: sc.MeetingFrequency,
			MemberCount:      sc.MemberCount,
			YearFounded:      sc.YearFounded,
		}
		if sc.MeetingDay != "" {
			club.MeetingDay = strPtr(sc.MeetingDay)
		}
		if sc.MeetingTime != "" {
			club.MeetingTime = strPtr(sc.MeetingTime)
		}
		if sc.MeetingLocation != "" {
			club.MeetingLocation = strPtr(sc.MeetingLocation)
		}
		if sc.ImageURL != "" {
			club.ImageURL = strPtr(sc.ImageURL)
		}
		if sc.Requirements != "" {
			club.Requirements = strPtr(sc.Requirements)
		}
		if sc.Instagram != "" {
			club.InstagramURL = strPtr(sc.Instagram)
		}
		if sc.Discord != "" {
			club.DiscordURL = strPtr(sc.Discord)
		}
		if sc.Website != "" {
			club.WebsiteURL = strPtr(sc.Website)
		}

		if err := s.db.Create(club).Error; err != nil {
			return err
		}

		for _, tag := range sc.Tags {
			clubTag := &models.ClubTag{
				ID:     fmt.Sprintf("%s-%s", sc.ID, tag),
				ClubID: sc.ID,
				Tag:    tag,
			}
			if err := s.db.Create(clubTag).Error; err != nil {
				return err
			}
		}

		for _, meeting := range generateMeetings(sc) {
			if err := s.db.Create(meeting).Error; err != nil {
				return err
			}
		}

		seeded++
	}

	if seeded > 0 {
		log.Printf("✅ Seeded %d clubs", seeded)
	}
	return nil
}

// generateMeetings builds the next N weekly occurrences of the club's
// meeting day, starting from the next occurrence after today.
func generateMeetings(sc seedClub) []*models.ClubMeeting {
	if sc.MeetingSlots == 0 || sc.MeetingDay == "" {
		return nil
	}

	weekdays := map[string]time.Weekday{
		"Sunday":    time.Sunday,
		"Monday":    time.Monday,
		"Tuesday":   time.Tuesday,
		"Wednesday": time.Wednesday,
		"Thursday":  time.Thursday,
		"Friday":    time.Friday,
		"Saturday":  time.Saturday,
	}
	target, ok := weekdays[sc.MeetingDay]
	if !ok {
		return nil
	}

	now := time.Now()
	daysToAdd := (int(target) - int(now.Weekday()) + 7) % 7
	if daysToAdd == 0 {
		daysToAdd = 7
	}
	first := now.AddDate(0, 0, daysToAdd)

	meetings := make([]*models.ClubMeeting, 0, sc.MeetingSlots)
	for i := 0; i < sc.MeetingSlots; i++ {
		date := first.AddDate(0, 0, i*7)
		meeting := &models.ClubMeeting{
			ID:        uuid.New().String(),
			ClubID:    sc.ID,
			Date:      date.Format("2006-01-02"),
			StartTime: sc.MeetingStart,
			EndTime:   sc.MeetingEnd,
			Location:  sc.MeetingLocation,
		}
		if i == 0 {
			meeting.Description = strPtr("Important meeting! New member welcome.")
		}
		meetings = append(meetings, meeting)
	}
	return meetings
}

func strPtr(s string) *string {
	return &s
}

// clubCatalog returns the static club catalog
func clubCatalog() []seedClub {
	return []seedClub{
		{
			ID:               "1",
			Name:             "Robotics Club",
			Description:      "We design, build, and program robots for competitions and exhibitions. Join us to learn engineering, programming, and teamwork skills!",
			Category:         "STEM",
			Tags:             []string{"Engineering", "Programming", "Competitions"},
			AdvisorName:      "Dr. Sarah Chen",
			PresidentName:    "Alex Johnson",
			PresidentEmail:   "alex.johnson@school.edu",
			Email:            "robotics@school.edu",
			MeetingFrequency: "Weekly",
			MeetingDay:       "Tuesday",
			MeetingTime:      "15:30",
			MeetingLocation:  "Room 203 (Engineering Lab)",
			ImageURL:         "https://images.unsplash.com/photo-1561144257-e32e8efc6c4f",
			MemberCount:      28,
			YearFounded:      2015,
			Requirements:     "No prior experience needed, just enthusiasm for robotics!",
			Instagram:        "@schoolrobotics",
			Website:          "schoolrobotics.org",
			MeetingSlots:     3,
			MeetingStart:     "15:30",
			MeetingEnd:       "17:00",
		},
		{
			ID:               "2",
			Name:             "Debate Team",
			Description:      "Sharpen your critical thinking and public speaking skills through competitive debate. We participate in regional and state tournaments.",
			Category:         "Academic",
			Tags:             []string{"Public Speaking", "Critical Thinking", "Competitions"},
			AdvisorName:      "Mr. James Wilson",
			PresidentName:    "Sophia Garcia",
			PresidentEmail:   "sophia.garcia@school.edu",
			Email:            "debate@school.edu",
			MeetingFrequency: "Bi-weekly",
			MeetingDay:       "Wednesday",
			MeetingTime:      "16:00",
			MeetingLocation:  "Room 105",
			ImageURL:         "https://images.unsplash.com/photo-1524178232363-1fb2b075b655",
			MemberCount:      15,
			YearFounded:      2010,
			Requirements:     "Commitment to attend competitions and practice sessions",
			Instagram:        "@schooldebate",
			MeetingSlots:     2,
			MeetingStart:     "16:00",
			MeetingEnd:       "17:30",
		},
		{
			ID:               "3",
			Name:             "Art Club",
			Description:      "Express yourself through various art forms including painting, drawing, and sculpture. We host exhibitions and collaborate on school murals.",
			Category:         "Arts",
			Tags:             []string{"Painting", "Drawing", "Creativity"},
			AdvisorName:      "Ms. Emily Rodriguez",
			PresidentName:    "Noah Kim",
			PresidentEmail:   "noah.kim@school.edu",
			Email:            "artclub@school.edu",
			MeetingFrequency: "Weekly",
			MeetingDay:       "Thursday",
			MeetingTime:      "15:00",
			MeetingLocation:  "Art Room 101",
			ImageURL:         "https://images.unsplash.com/photo-1460661419201-fd4cecdf8a8b",
			MemberCount:      22,
			YearFounded:      2008,
			Requirements:     "Bring your own supplies (basic materials provided)",
			Instagram:        "@schoolartclub",
			MeetingSlots:     3,
			MeetingStart:     "15:00",
			MeetingEnd:       "16:30",
		},
		{
			ID:               "4",
			Name:             "Environmental Club",
			Description:      "Dedicated to promoting sustainability and environmental awareness on campus and in our community through projects and education.",
			Category:         "Community Service",
			Tags:             []string{"Environment", "Sustainability", "Community"},
			AdvisorName:      "Ms. Lisa Park",
			PresidentName:    "Ethan Brown",
			PresidentEmail:   "ethan.brown@school.edu",
			Email:            "eco@school.edu",
			MeetingFrequency: "Bi-weekly",
			MeetingDay:       "Monday",
			MeetingTime:      "15:30",
			MeetingLocation:  "Room 156",
			ImageURL:         "https://images.unsplash.com/photo-1472145246862-b24cf25c4a36",
			MemberCount:      18,
			YearFounded:      2017,
			Instagram:        "@schooleco",
			Website:          "schooleco.org",
			MeetingSlots:     2,
			MeetingStart:     "15:30",
			MeetingEnd:       "16:30",
		},
		{
			ID:               "5",
			Name:             "Chess Club",
			Description:      "Learn and play chess with peers of all skill levels. We host tournaments and provide coaching for beginners to advanced players.",
			Category:         "Academic",
			Tags:             []string{"Strategy", "Competitions", "Logic"},
			AdvisorName:      "Mr. Robert Lee",
			PresidentName:    "Emma Davis",
			PresidentEmail:   "emma.davis@school.edu",
			Email:            "chess@school.edu",
			MeetingFrequency: "Weekly",
			MeetingDay:       "Friday",
			MeetingTime:      "15:00",
			MeetingLocation:  "Library",
			ImageURL:         "https://images.unsplash.com/photo-1529699211952-734e80c4d42b",
			MemberCount:      12,
			YearFounded:      2011,
			Requirements:     "All skill levels welcome",
			MeetingSlots:     3,
			MeetingStart:     "15:00",
			MeetingEnd:       "16:30",
		},
		{
			ID:               "6",
			Name:             "Cultural Awareness Society",
			Description:      "Celebrating diversity and promoting cultural understanding through events, discussions, and community outreach.",
			Category:         "Cultural",
			Tags:             []string{"Diversity", "Culture", "Events"},
			AdvisorName:      "Dr. Maria Gonzalez",
			PresidentName:    "Aiden Patel",
			PresidentEmail:   "aiden.patel@school.edu",
			Email:            "cultural@school.edu",
			MeetingFrequency: "Monthly",
			MeetingDay:       "Wednesday",
			MeetingTime:      "16:00",
			MeetingLocation:  "Room 210",
			ImageURL:         "https://images.unsplash.com/photo-1526976668912-1a811878dd37",
			MemberCount:      25,
			YearFounded:      2016,
			Instagram:        "@schoolculturalsociety",
			MeetingSlots:     1,
			MeetingStart:     "16:00",
			MeetingEnd:       "17:00",
		},
		{
			ID:               "7",
			Name:             "Coding Club",
			Description:      "Learn programming languages, work on coding projects, and participate in hackathons. All experience levels welcome!",
			Category:         "STEM",
			Tags:             []string{"Programming", "Web Development", "App Development"},
			AdvisorName:      "Mr. David Chang",
			PresidentName:    "Olivia Martinez",
			PresidentEmail:   "olivia.martinez@school.edu",
			Email:            "coding@school.edu",
			MeetingFrequency: "Weekly",
			MeetingDay:       "Monday",
			MeetingTime:      "16:00",
			MeetingLocation:  "Computer Lab 2",
			ImageURL:         "https://images.unsplash.com/photo-1498050108023-c5249f4df085",
			MemberCount:      20,
			YearFounded:      2018,
			Requirements:     "Bring your laptop if possible",
			Website:          "schoolcoding.github.io",
			MeetingSlots:     3,
			MeetingStart:     "16:00",
			MeetingEnd:       "17:30",
		},
		{
			ID:               "8",
			Name:             "Student Government",
			Description:      "Represent student interests, organize school events, and develop leadership skills through service to our school community.",
			Category:         "Leadership",
			Tags:             []string{"Leadership", "Events", "Community"},
			AdvisorName:      "Ms. Jennifer Taylor",
			PresidentName:    "William Jackson",
			PresidentEmail:   "william.jackson@school.edu",
			Email:            "studentgov@school.edu",
			MeetingFrequency: "Weekly",
			MeetingDay:       "Tuesday",
			MeetingTime:      "15:30",
			MeetingLocation:  "Room 120",
			ImageURL:         "https://images.unsplash.com/photo-1577563908411-5077b6dc7624",
			MemberCount:      15,
			YearFounded:      2005,
			Requirements:     "Elected positions require student body vote",
			Instagram:        "@schoolstudentgov",
			Website:          "schoolstudentgov.org",
			MeetingSlots:     3,
			MeetingStart:     "15:30",
			MeetingEnd:       "17:00",
		},
		{
			ID:               "9",
			Name:             "Photography Club",
			Description:      "Explore the art of photography through workshops, photo walks, and exhibitions. Learn techniques and develop your unique style.",
			Category:         "Arts",
			Tags:             []string{"Photography", "Visual Arts", "Creativity"},
			AdvisorName:      "Mr. Thomas Wright",
			PresidentName:    "Isabella Lopez",
			PresidentEmail:   "isabella.lopez@school.edu",
			Email:            "photo@school.edu",
			MeetingFrequency: "Bi-weekly",
			MeetingDay:       "Thursday",
			MeetingTime:      "15:30",
			MeetingLocation:  "Room 108",
			ImageURL:         "https://images.unsplash.com/photo-1516035069371-29a1b244cc32",
			MemberCount:      16,
			YearFounded:      2014,
			Requirements:     "Access to a camera (phone cameras are fine)",
			Instagram:        "@schoolphotography",
			MeetingSlots:     2,
			MeetingStart:     "15:30",
			MeetingEnd:       "17:00",
		},
		{
			ID:               "10",
			Name:             "Math Team",
			Description:      "Tackle challenging math problems and compete in regional and national mathematics competitions.",
			Category:         "Academic",
			Tags:             []string{"Mathematics", "Problem Solving", "Competitions"},
			AdvisorName:      "Dr. Michael Chen",
			PresidentName:    "Sophia Williams",
			PresidentEmail:   "sophia.williams@school.edu",
			Email:            "mathteam@school.edu",
			MeetingFrequency: "Weekly",
			MeetingDay:       "Wednesday",
			MeetingTime:      "15:30",
			MeetingLocation:  "Room 205",
			ImageURL:         "https://images.unsplash.com/photo-1635070041078-e363dbe005cb",
			MemberCount:      14,
			YearFounded:      2009,
			Requirements:     "Completion of Algebra I or equivalent",
			Website:          "schoolmathteam.org",
			MeetingSlots:     3,
			MeetingStart:     "15:30",
			MeetingEnd:       "16:30",
		},
		{
			ID:               "11",
			Name:             "Drama Club",
			Description:      "Perform in school plays and musicals while developing acting, directing, and stagecraft skills.",
			Category:         "Arts",
			Tags:             []string{"Theater", "Acting", "Performance"},
			AdvisorName:      "Ms. Rebecca Johnson",
			PresidentName:    "Lucas Thompson",
			PresidentEmail:   "lucas.thompson@school.edu",
			Email:            "drama@school.edu",
			MeetingFrequency: "Weekly",
			MeetingDay:       "Friday",
			MeetingTime:      "16:00",
			MeetingLocation:  "Auditorium",
			ImageURL:         "https://images.unsplash.com/photo-1503095396549-807759245b35",
			MemberCount:      30,
			YearFounded:      2007,
			Instagram:        "@schooldrama",
			MeetingSlots:     3,
			MeetingStart:     "16:00",
			MeetingEnd:       "18:00",
		},
		{
			ID:               "12",
			Name:             "Science Olympiad",
			Description:      "Prepare for and compete in Science Olympiad tournaments covering various scientific disciplines.",
			Category:         "STEM",
			Tags:             []string{"Science", "Competitions", "Research"},
			AdvisorName:      "Dr. Elizabeth Foster",
			PresidentName:    "Daniel Kim",
			PresidentEmail:   "daniel.kim@school.edu",
			Email:            "scioly@school.edu",
			MeetingFrequency: "Weekly",
			MeetingDay:       "Thursday",
			MeetingTime:      "15:30",
			MeetingLocation:  "Science Lab 3",
			ImageURL:         "https://images.unsplash.com/photo-1532094349884-543bc11b234d",
			MemberCount:      22,
			YearFounded:      2012,
			Requirements:     "Commitment to competition preparation",
			Website:          "schoolscioly.org",
			MeetingSlots:     3,
			MeetingStart:     "15:30",
			MeetingEnd:       "17:00",
		},
	}
}
