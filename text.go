package main

type Project struct {
	Title       string
	Description string
	Link        string
	Tags        []string
}

type Entry struct {
	Title        string
	Organization string
	StartDate    string
	EndDate      string
	LogoPath     string
	BulletPoints []string
}

var (
	AboutMe = `I build software that is useful first and fun second, and I like knowing how things work behind the scenes.
	Most of my projects start as a small itch and turn into a reason to learn a new language, a new tool,
	or a better way to solve an old problem. Away from the keyboard I train, play pool with friends,
	and look for the next challenge outside the screen.`

	Projects = []Project{
		{
			Title:       "Terminal Mail",
			Description: "A terminal email client written in Go with fuzzy finding, built on a TUI framework and IMAP.",
			Link:        "https://github.com/Zachkp",
			Tags:        []string{"Go", "TUI", "IMAP"},
		},
		{
			Title:       "Terminal Music",
			Description: "A command-line music player with a clean TUI that streams through yt-dlp and mpv.",
			Link:        "https://github.com/Zachkp",
			Tags:        []string{"Go", "TUI"},
		},
		{
			Title:       "Game Recommender",
			Description: "A recommendation web app using TF-IDF vectors and cosine similarity, with filters on reviews and ratings.",
			Link:        "https://github.com/Zachkp",
			Tags:        []string{"Python", "ML"},
		},
		{
			Title:       "This Portfolio",
			Description: "A Go and gin site using HTMX fragments, server-side contact validation and a live GitHub widget.",
			Link:        "https://github.com/Zachkp",
			Tags:        []string{"Go", "gin", "HTMX"},
		},
	}

	Work = []Entry{
		{
			Title:        "Presentation Expert",
			Organization: "Target",
			StartDate:    "Aug 2023",
			EndDate:      "Present",
			LogoPath:     "images/TargetLogo.jpg",
			BulletPoints: []string{
				"Executed over 300 merchandising transitions on tight timelines by organizing team workflows",
				"Streamlined backroom inventory and communication between floor and logistics teams",
			},
		},
		{
			Title:        "Manager",
			Organization: "Jasons Catered Events",
			StartDate:    "Aug 2016",
			EndDate:      "Present",
			LogoPath:     "images/jasonsCateringLogo.png",
			BulletPoints: []string{
				"Coordinated customized menus and dietary requirements for every client",
				"Supported event technology, AV troubleshooting and digital order tracking",
			},
		},
	}

	Education = []Entry{
		{
			Title:        "Bachelor of Computer Science",
			Organization: "Western Governors University",
			StartDate:    "Sept 2019",
			EndDate:      "May 2023",
			LogoPath:     "images/WGU-logo.png",
			BulletPoints: []string{
				"Relevant coursework: Data Structures, Algorithms, Web Development",
				"Senior project: machine learning recommendation system",
			},
		},
		{
			Title:        "Project Management",
			Organization: "CompTIA",
			StartDate:    "July 2022",
			EndDate:      "Present",
			LogoPath:     "images/comptiaCert.png",
			BulletPoints: []string{
				"Certified in agile project management methodology",
			},
		},
	}
)
