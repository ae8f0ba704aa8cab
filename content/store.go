package content

import "strings"

var palette = Palette{
	Background: "#0f1224 #11172a #0b0f1e",
	Accent:     "#7CFFB2", // neon mint
	Accent2:    "#7ab8ff", // soft sky
	Text:       "#e8eefc",
	SubText:    "#9fb3d6",
}

var projects = []Project{
	{
		Title: "SuperColony",
		Blurb: "A real-time ant simulation / RTS. Steam release. Crowd logic, swarm AI, and colony management.",
		Tags:  []string{"Unity", "C#", "AI"},
		Link:  "https://store.steampowered.com/app/3115790/SuperColony/",
		Image: "https://images.unsplash.com/photo-1521587760476-6c12a4b040da?q=80&w=1200&auto=format&fit=crop",
	},
	{
		Title: "Roguetris",
		Blurb: "Minimalist rogue-lite meets falling blocks. Tight loops, power-ups, juicy game feel.",
		Tags:  []string{"Godot", "GDScript"},
		Link:  "https://sup3rbob.itch.io/roguetris",
		Image: "https://images.unsplash.com/photo-1545235617-9465d2a55698?q=80&w=1200&auto=format&fit=crop",
	},
	{
		Title: "Extreme Tag!",
		Blurb: "Online multiplayer tag with propulsive movement and trick-shots.",
		Tags:  []string{"Unity Netcode", "Multiplayer"},
		Link:  "https://sup3rbob.itch.io/extreme-tag",
		Image: "https://images.unsplash.com/photo-1542751371-adc38448a05e?q=80&w=1200&auto=format&fit=crop",
	},
	{
		Title: "CRAIGPOCALYPSE",
		Blurb: "A fast game-jam collab. Crunchy VFX, comedic chaos.",
		Tags:  []string{"Game Jam", "VFX"},
		Link:  "https://sup3rbob.itch.io/craigpocalypse",
		Image: "https://images.unsplash.com/photo-1511512578047-dfb367046420?q=80&w=1200&auto=format&fit=crop",
	},
	{
		Title: "The Lab",
		Blurb: "Top-down sci-fi prototype with puzzle nodes and terminals.",
		Tags:  []string{"Raylib", "C"},
		Link:  "https://sup3rbob.itch.io/the-lab",
		Image: "https://images.unsplash.com/photo-1614935151651-0bea6508f4d9?q=80&w=1200&auto=format&fit=crop",
	},
}

var skills = []string{
	"Unity", "Unreal", "Godot", "Raylib", "C#", "C++",
	"GDScript", "Rust", "C", "Netcode", "Shaders", "CI/CD",
}

var links = []Link{
	{Label: "GitHub", Href: "https://github.com/sup3rbob"},
	{Label: "LinkedIn", Href: "https://www.linkedin.com/in/harris-ibrahimi"},
	{Label: "Email", Href: "mailto:harris@example.com"},
	{Label: "Itch.io", Href: "https://sup3rbob.itch.io"},
}

var sections = []Section{
	{Anchor: "work", Label: "Work", Kicker: "Selected Work", Title: "Featured Projects"},
	{Anchor: "skills", Label: "Skills", Kicker: "Tooling", Title: "Skills & Engines"},
	{Anchor: "about", Label: "About", Kicker: "Background", Title: "About Harris"},
	{Anchor: "contact", Label: "Hire me", Kicker: "Contact", Title: "Let's build something fun"},
}

var profile = Profile{
	Handle:   "SUP3RBOB",
	Name:     "Harris Ibrahimi",
	Kicker:   "Ontario-based Game Dev",
	Headline: "Harris Ibrahimi builds ",
	Accented: "playable worlds",
	Trailer:  " with Unity, Godot & C#",
	Intro: "Portfolio concept with modern layout, motion flourishes, and clear calls-to-action. " +
		"Optimized for skim-reading, then deep-diving into projects.",
	Showreel: "https://images.unsplash.com/photo-1527443154391-507e9dc6c5cc?q=80&w=1200&auto=format&fit=crop",
	Badge:    "Real-time & Gameplay Systems",
	About: "Game developer based in Ontario, Canada. I love building responsive game systems, juicy feel, " +
		"and approachable UX. I've shipped jam games and commercial prototypes; currently exploring " +
		"large-scale agent simulation and multiplayer.",
	Pitch:  "Let's build something fun",
	Offer:  "Open to collaborations, contract work, and full-time roles.",
	Footer: "Concept redesign by a fan, not the official site.",
}

// Projects returns the projects in display order. The slice is a copy.
func Projects() []Project {
	out := make([]Project, len(projects))
	for i, p := range projects {
		p.Tags = append([]string(nil), p.Tags...)
		out[i] = p
	}
	return out
}

// ProjectByTitle looks a project up by its identity key.
func ProjectByTitle(title string) (Project, bool) {
	for _, p := range Projects() {
		if p.Title == title {
			return p, true
		}
	}
	return Project{}, false
}

// GetPalette returns the colour scheme.
func GetPalette() Palette {
	return palette
}

// BackgroundStops splits the background gradient into its colour stops.
func (p Palette) BackgroundStops() []string {
	return strings.Fields(p.Background)
}

// Skills returns the skills list in display order.
func Skills() []string {
	return append([]string(nil), skills...)
}

// Links returns the outbound profile links (GitHub, LinkedIn, mail, itch.io).
func Links() []Link {
	return append([]Link(nil), links...)
}

// LinkByLabel returns the outbound link with the given label.
func LinkByLabel(label string) (Link, bool) {
	for _, l := range links {
		if l.Label == label {
			return l, true
		}
	}
	return Link{}, false
}

// Sections returns the nav anchors in page order.
func Sections() []Section {
	return append([]Section(nil), sections...)
}

// GetProfile returns the hero/about copy.
func GetProfile() Profile {
	return profile
}
