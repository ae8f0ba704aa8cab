// Package content holds the compiled-in portfolio data shared by every renderer.
package content

// Project describes one portfolio entry. Title is its identity key.
type Project struct {
	Title string   `json:"title"`
	Blurb string   `json:"blurb"`
	Tags  []string `json:"tags"`
	Link  string   `json:"link"`
	Image string   `json:"image"`
}

// Palette is the page colour scheme.
type Palette struct {
	Background string `json:"background"` // top-to-bottom gradient, stops separated by spaces
	Accent     string `json:"accent"`
	Accent2    string `json:"accent2"`
	Text       string `json:"text"`
	SubText    string `json:"sub_text"`
}

// Link is an outbound contact/profile link.
type Link struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// Section is an in-page anchor reachable from the nav bar.
type Section struct {
	Anchor string
	Label  string
	Kicker string
	Title  string
}

// Profile is the hero and about copy.
type Profile struct {
	Handle   string
	Name     string
	Kicker   string
	Headline string // text before the accented phrase
	Accented string
	Trailer  string // text after the accented phrase
	Intro    string
	Showreel string
	Badge    string
	About    string
	Pitch    string
	Offer    string
	Footer   string
}
