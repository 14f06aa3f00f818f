package config

// DefaultPages is the hand-authored page list for the Yu Laboratory site.
// One entry per exported page; edit here when the site gains or loses a
// page. The list is immutable during a build run.
func DefaultPages() []Page {
	return []Page{
		{
			Source:       "index.html",
			Template:     "home.html.tmpl",
			Output:       "index.html",
			Title:        "Yu Laboratory",
			Description:  "Yu Laboratory studies molecular mechanisms of cellular signaling.",
			CanonicalURL: "https://www.yu-lab.org/",
			PageID:       "c1dmp",
			RootPath:     "",
		},
		{
			Source:       "news/index.html",
			Template:     "news.html.tmpl",
			Output:       "news/index.html",
			Title:        "News | Yu Laboratory",
			Description:  "Announcements and updates from the Yu Laboratory.",
			CanonicalURL: "https://www.yu-lab.org/news/",
			PageID:       "aqv0x",
			RootPath:     "../",
		},
		{
			Source:       "research/index.html",
			Template:     "research.html.tmpl",
			Output:       "research/index.html",
			Title:        "Research | Yu Laboratory",
			Description:  "Research themes and ongoing projects of the Yu Laboratory.",
			CanonicalURL: "https://www.yu-lab.org/research/",
			PageID:       "mz6iq",
			RootPath:     "../",
		},
		{
			Source:       "publications/index.html",
			Template:     "publications.html.tmpl",
			Output:       "publications/index.html",
			Title:        "Publications | Yu Laboratory",
			Description:  "Peer-reviewed publications from the Yu Laboratory.",
			CanonicalURL: "https://www.yu-lab.org/publications/",
			PageID:       "k9pe2",
			RootPath:     "../",
		},
		{
			Source:       "members/index.html",
			Template:     "members.html.tmpl",
			Output:       "members/index.html",
			Title:        "Members | Yu Laboratory",
			Description:  "Current members and alumni of the Yu Laboratory.",
			CanonicalURL: "https://www.yu-lab.org/members/",
			PageID:       "uwz35",
			RootPath:     "../",
		},
		{
			Source:       "access/index.html",
			Template:     "access.html.tmpl",
			Output:       "access/index.html",
			Title:        "Access | Yu Laboratory",
			Description:  "Directions and access information for the Yu Laboratory.",
			CanonicalURL: "https://www.yu-lab.org/access/",
			PageID:       "hf3n8",
			RootPath:     "../",
		},
		{
			Source:       "contact/index.html",
			Template:     "contact.html.tmpl",
			Output:       "contact/index.html",
			Title:        "Contact | Yu Laboratory",
			Description:  "How to reach the Yu Laboratory.",
			CanonicalURL: "https://www.yu-lab.org/contact/",
			PageID:       "ryou6",
			RootPath:     "../",
		},
	}
}
