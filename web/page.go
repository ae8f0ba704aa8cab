package web

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"net/http"

	"sup3rbob.dev/folio/content"
	"sup3rbob.dev/folio/motion"
	"sup3rbob.dev/folio/selftest"
)

// pageData is everything the page template reads.
type pageData struct {
	Palette  content.Palette
	Stops    []string
	Profile  content.Profile
	Projects []content.Project
	Skills   []string
	Links    []content.Link
	Sections []content.Section
	Motion   motionData
	Client   clientConfig
}

// motionData carries the animation constants into CSS.
type motionData struct {
	MountMs         int64
	MountOffset     float64
	ShowreelDelayMs int64
	BadgeDelayMs    int64
	BadgeMs         int64
	BadgeOffset     float64
	CardMs          int64
	CardOffset      float64
	FloatMs         int64
	FloatPeak       float64
}

// clientConfig is serialised into the page for site.js.
type clientConfig struct {
	GlowMin      float64  `json:"glowMin"`
	GlowMax      float64  `json:"glowMax"`
	Sentinel     string   `json:"sentinel"`
	ProjectCount int      `json:"projectCount"`
	Accent       string   `json:"accent"`
	Assertions   []string `json:"assertions"`
}

func newPageData() pageData {
	palette := content.GetPalette()
	projects := content.Projects()

	assertions := make([]string, len(selftest.Assertions))
	for i, a := range selftest.Assertions {
		assertions[i] = a.Message
	}

	return pageData{
		Palette:  palette,
		Stops:    palette.BackgroundStops(),
		Profile:  content.GetProfile(),
		Projects: projects,
		Skills:   content.Skills(),
		Links:    content.Links(),
		Sections: content.Sections(),
		Motion: motionData{
			MountMs:         motion.Mount.Duration.Milliseconds(),
			MountOffset:     motion.Mount.From.Offset,
			ShowreelDelayMs: motion.ShowreelMount.Delay.Milliseconds(),
			BadgeDelayMs:    motion.Badge.Delay.Milliseconds(),
			BadgeMs:         motion.Badge.Duration.Milliseconds(),
			BadgeOffset:     motion.Badge.From.Offset,
			CardMs:          motion.CardReveal.Duration.Milliseconds(),
			CardOffset:      motion.CardReveal.From.Offset,
			FloatMs:         motion.Float.Period.Milliseconds(),
			FloatPeak:       motion.Float.Keyframes[1],
		},
		Client: clientConfig{
			GlowMin:      motion.GlowMin,
			GlowMax:      motion.GlowMax,
			Sentinel:     "#" + selftest.Sentinel,
			ProjectCount: len(projects),
			Accent:       palette.Accent,
			Assertions:   assertions,
		},
	}
}

// PageHandler renders the portfolio page. The page is static, so it is
// rendered once and served from memory.
type PageHandler struct {
	logger *log.Logger
	body   []byte
}

// NewPageHandler parses the embedded template and renders the page.
func NewPageHandler(logger *log.Logger) (*PageHandler, error) {
	tmpl, err := template.ParseFS(assets, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, newPageData()); err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}

	return &PageHandler{logger: logger, body: buf.Bytes()}, nil
}

// ServeHTTP handles GET /
func (h *PageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(h.body); err != nil {
		h.logger.Printf("Error writing page: %v", err)
	}
}
