package pages

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"sup3rbob.dev/folio/content"
	"sup3rbob.dev/folio/motion"
)

// unitsPerRow converts motion offsets (CSS-pixel-like units) to terminal rows.
const unitsPerRow = 10.0

const (
	cardGap     = 2
	maxProseCol = 80
)

// rows converts a motion offset to whole terminal rows.
func rows(offset float64) int {
	return int(math.Round(offset / unitsPerRow))
}

// document accumulates rendered blocks and tracks line numbers for anchors.
type document struct {
	lines []string
}

func (d *document) add(block string) {
	d.lines = append(d.lines, strings.Split(block, "\n")...)
}

func (d *document) blank() {
	d.lines = append(d.lines, "")
}

func (d *document) len() int {
	return len(d.lines)
}

func (d *document) String() string {
	return strings.Join(d.lines, "\n")
}

// hyperlink wraps text in an OSC 8 link. Supporting terminals open it in the
// browser; the TUI itself never navigates.
func hyperlink(text, url string) string {
	return ansi.SetHyperlink(url) + text + ansi.ResetHyperlink()
}

// fade mixes a colour towards the page background to emulate opacity.
func (p *PortfolioPage) fade(hex string, opacity float64) lipgloss.Color {
	mixed, err := motion.Blend(p.background(), hex, opacity)
	if err != nil {
		p.logger.Printf("fade %s: %v", hex, err)
		return lipgloss.Color(hex)
	}
	return lipgloss.Color(mixed)
}

func (p *PortfolioPage) background() string {
	stops := p.palette.BackgroundStops()
	if len(stops) == 0 {
		return "#000000"
	}
	return stops[0]
}

// renderDocument lays out the scrollable page and records section anchors and
// card positions as it goes.
func (p *PortfolioPage) renderDocument() string {
	now := p.now()
	width := p.contentWidth()

	var doc document
	doc.add(p.renderHero(now, width))

	p.anchors = p.anchors[:0]
	p.cardRows = p.cardRows[:0]
	for _, s := range p.sections {
		doc.blank()
		p.anchors = append(p.anchors, doc.len())

		switch s.Anchor {
		case "work":
			doc.add(renderHeader(s, p.palette))
			doc.blank()
			grid, spans := p.renderWork(now, width)
			start := doc.len()
			doc.add(grid)
			for _, span := range spans {
				p.cardRows = append(p.cardRows, [2]int{start + span[0], start + span[1]})
			}
			doc.blank()
			archive := lipgloss.NewStyle().Foreground(lipgloss.Color(p.palette.SubText)).
				Render("Full project archive  ↗  (press 4)")
			doc.add(lipgloss.PlaceHorizontal(width, lipgloss.Center, archive))
		case "skills":
			doc.add(renderHeader(s, p.palette))
			doc.blank()
			doc.add(p.renderSkills(width))
		case "about":
			doc.add(renderHeader(s, p.palette))
			doc.blank()
			doc.add(lipgloss.NewStyle().
				Width(min(width, maxProseCol)).
				Foreground(lipgloss.Color(p.palette.SubText)).
				Render(p.profile.About))
		case "contact":
			doc.add(p.renderContact(width))
		}
	}

	doc.blank()
	footer := lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render(p.profile.Footer)
	doc.add(lipgloss.PlaceHorizontal(width, lipgloss.Center, footer))
	doc.blank()
	return doc.String()
}

func renderHeader(s content.Section, palette content.Palette) string {
	kicker := lipgloss.NewStyle().
		Foreground(lipgloss.Color(palette.SubText)).
		Render(strings.ToUpper(s.Kicker))
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(palette.Text)).
		Render(s.Title)
	return kicker + "\n" + title
}

// renderNav draws the sticky bar above the viewport.
func (p *PortfolioPage) renderNav() string {
	width := p.contentWidth()

	title := p.Title()
	logo := lipgloss.NewStyle().Foreground(title.Color).Render("■") + " " +
		lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.palette.Text)).Render(title.Text)

	var links []string
	if width >= 60 {
		linkStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(p.palette.SubText))
		for i, s := range p.sections {
			label := string(rune('1'+i)) + " " + s.Label
			if i == len(p.sections)-1 {
				links = append(links, lipgloss.NewStyle().
					Background(lipgloss.Color(p.palette.Accent)).
					Foreground(lipgloss.Color("#000000")).
					Padding(0, 1).
					Render(label))
				continue
			}
			links = append(links, linkStyle.Render(label))
		}
	}
	links = append(links, p.dots.View())
	right := strings.Join(links, "  ")

	gap := max(width-lipgloss.Width(logo)-lipgloss.Width(right), 1)
	bar := logo + strings.Repeat(" ", gap) + right

	divider := lipgloss.NewStyle().Foreground(p.fade(p.palette.Text, 0.1)).Render(strings.Repeat("─", width))
	return bar + "\n" + divider
}

// renderHero draws the glow blobs, the intro copy and the showreel card.
func (p *PortfolioPage) renderHero(now time.Time, width int) string {
	glow := lipgloss.NewStyle().Foreground(p.fade(p.palette.Accent, p.GlowOpacity()))
	top := lipgloss.PlaceHorizontal(width, lipgloss.Right, glow.Render(blob))

	var body string
	if width >= 80 {
		leftW := width * 7 / 12
		rightW := width - leftW - 4
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			p.renderIntro(now, leftW),
			strings.Repeat(" ", 4),
			p.renderShowreel(now, rightW),
		)
	} else {
		body = p.renderIntro(now, width) + "\n\n" + p.renderShowreel(now, width)
	}

	return top + "\n" + body + "\n" + p.renderFloatingBlob(now)
}

const blob = "  ▄▄██████▄▄  \n ████████████ \n  ▀▀██████▀▀  "

// renderFloatingBlob draws the second blob, drifting on an endless loop.
func (p *PortfolioPage) renderFloatingBlob(now time.Time) string {
	var elapsed time.Duration
	if p.mounted {
		elapsed = now.Sub(p.mountedAt)
	}
	drift := rows(motion.Float.Offset(elapsed)) // 0 or -1
	span := rows(-motion.Float.Keyframes[1])    // headroom for the drift

	style := lipgloss.NewStyle().Foreground(p.fade(p.palette.Accent2, 0.25))
	return shift(style.Render(blob), span+drift, span)
}

// shift pads block vertically by offset rows inside a fixed span so that
// animations never change the document's line count.
func shift(block string, offset, span int) string {
	offset = min(max(offset, 0), span)
	return lipgloss.NewStyle().PaddingTop(offset).PaddingBottom(span - offset).Render(block)
}

func (p *PortfolioPage) renderIntro(now time.Time, width int) string {
	frame := p.heroCopy.Sample(now)
	text := p.fade(p.palette.Text, frame.Opacity)
	sub := p.fade(p.palette.SubText, frame.Opacity)
	accent := p.fade(p.palette.Accent, frame.Opacity)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(sub).Render(strings.ToUpper(p.profile.Kicker)))
	b.WriteString("\n\n")

	headline := lipgloss.NewStyle().Bold(true).Foreground(text).Render(p.profile.Headline) +
		lipgloss.NewStyle().Bold(true).Foreground(accent).Render(p.profile.Accented) +
		lipgloss.NewStyle().Bold(true).Foreground(text).Render(p.profile.Trailer)
	b.WriteString(lipgloss.NewStyle().Width(width).Render(headline))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Width(width).Foreground(sub).Render(p.profile.Intro))
	b.WriteString("\n\n")

	primary := lipgloss.NewStyle().
		Background(accent).
		Foreground(lipgloss.Color("#000000")).
		Padding(0, 1).
		Render("View Projects")
	secondary := lipgloss.NewStyle().
		Foreground(text).
		Padding(0, 1).
		Render("Get in touch")
	b.WriteString(primary + "  " + secondary)
	b.WriteString("\n\n")

	var social []string
	for _, l := range content.Links() {
		social = append(social, lipgloss.NewStyle().Foreground(sub).Render(hyperlink(l.Label, l.Href)))
	}
	b.WriteString(strings.Join(social, "  ·  "))

	return shift(b.String(), rows(frame.Offset), rows(motion.Mount.From.Offset))
}

func (p *PortfolioPage) renderShowreel(now time.Time, width int) string {
	frame := p.showreel.Sample(now)
	border := p.fade(p.palette.Text, 0.1*frame.Opacity)
	label := lipgloss.NewStyle().
		Foreground(p.fade(p.palette.Text, frame.Opacity)).
		Render(hyperlink("▶ Showreel", p.profile.Showreel))

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(max(width-2, 10)).
		Height(7).
		Align(lipgloss.Center, lipgloss.Center).
		Render(label)

	badgeFrame := p.badge.Sample(now)
	dot := lipgloss.NewStyle().Foreground(p.fade(p.palette.Accent, badgeFrame.Opacity)).Render("●")
	badge := dot + " " + lipgloss.NewStyle().
		Foreground(p.fade(p.palette.Text, badgeFrame.Opacity)).
		Render(p.profile.Badge)
	badge = shift(badge, rows(badgeFrame.Offset), rows(motion.Badge.From.Offset))

	return shift(card, rows(frame.Offset), rows(motion.ShowreelMount.From.Offset)) + "\n" + badge
}

// gridColumns mirrors the responsive grid: one column on narrow screens, two
// on medium and three on wide ones.
func gridColumns(width int) int {
	switch {
	case width >= 120:
		return 3
	case width >= 72:
		return 2
	}
	return 1
}

// renderWork lays out one card per project in list order. It returns the grid
// and, per card, its first and last line relative to the grid.
func (p *PortfolioPage) renderWork(now time.Time, width int) (string, [][2]int) {
	cols := gridColumns(width)
	cardW := (width - (cols-1)*cardGap) / cols

	var (
		gridRows []string
		spans    = make([][2]int, 0, len(p.projects))
		line     int
	)
	for start := 0; start < len(p.projects); start += cols {
		end := min(start+cols, len(p.projects))

		var cells []string
		for i := start; i < end; i++ {
			if i > start {
				cells = append(cells, strings.Repeat(" ", cardGap))
			}
			cells = append(cells, p.renderCard(i, now, cardW))
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
		h := lipgloss.Height(row)
		for i := start; i < end; i++ {
			spans = append(spans, [2]int{line, line + h - 1})
		}
		gridRows = append(gridRows, row)
		line += h + 1 // blank line between rows
	}
	return strings.Join(gridRows, "\n\n"), spans
}

func (p *PortfolioPage) renderCard(i int, now time.Time, width int) string {
	project := p.projects[i]
	frame := p.cards[i].Sample(now)
	inner := max(width-4, 8) // border + padding

	borderColor := p.fade(p.palette.Text, 0.1)
	if i == p.selected {
		borderColor = lipgloss.Color(p.palette.Accent)
	}

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(p.fade(p.palette.Text, frame.Opacity)).
		Render(hyperlink(ansi.Truncate(project.Title, inner, "…"), project.Link))
	blurb := lipgloss.NewStyle().
		Width(inner).
		Foreground(p.fade(p.palette.SubText, frame.Opacity)).
		Render(project.Blurb)

	chipStyle := lipgloss.NewStyle().
		Foreground(p.fade(p.palette.SubText, frame.Opacity)).
		Background(p.fade(p.palette.Text, 0.08*frame.Opacity)).
		Padding(0, 1)
	chips := make([]string, len(project.Tags))
	for j, t := range project.Tags {
		chips[j] = chipStyle.Render(t)
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(width - 2).
		Render(title + "\n" + blurb + "\n\n" + flow(chips, inner))

	return shift(card, rows(frame.Offset), rows(motion.CardReveal.From.Offset))
}

func (p *PortfolioPage) renderSkills(width int) string {
	chipStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.palette.SubText)).
		Background(p.fade(p.palette.Text, 0.08)).
		Padding(0, 1)
	skills := content.Skills()
	chips := make([]string, len(skills))
	for i, s := range skills {
		chips[i] = chipStyle.Render(s)
	}
	return flow(chips, width)
}

func (p *PortfolioPage) renderContact(width int) string {
	boxW := min(width, maxProseCol)
	inner := boxW - 6

	heading := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.palette.Text)).Render(p.profile.Pitch)
	offer := lipgloss.NewStyle().Foreground(lipgloss.Color(p.palette.SubText)).Render(p.profile.Offer)

	var buttons []string
	if email, ok := content.LinkByLabel("Email"); ok {
		buttons = append(buttons, lipgloss.NewStyle().
			Background(lipgloss.Color(p.palette.Accent)).
			Foreground(lipgloss.Color("#000000")).
			Padding(0, 1).
			Render(hyperlink(email.Label, email.Href)))
	}
	if li, ok := content.LinkByLabel("LinkedIn"); ok {
		buttons = append(buttons, lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.palette.Text)).
			Padding(0, 1).
			Render(hyperlink(li.Label, li.Href)))
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.PlaceHorizontal(inner, lipgloss.Center, heading),
		lipgloss.PlaceHorizontal(inner, lipgloss.Center, offer),
		"",
		lipgloss.PlaceHorizontal(inner, lipgloss.Center, strings.Join(buttons, "  ")),
	)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.fade(p.palette.Text, 0.1)).
		Padding(1, 2).
		Render(body)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, box)
}

// flow packs pre-rendered chips into lines no wider than width.
func flow(chips []string, width int) string {
	var (
		lines []string
		cur   string
		curW  int
	)
	for _, c := range chips {
		w := ansi.StringWidth(c)
		if curW > 0 && curW+1+w > width {
			lines = append(lines, cur)
			cur, curW = "", 0
		}
		if curW > 0 {
			cur += " "
			curW++
		}
		cur += c
		curW += w
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return strings.Join(lines, "\n")
}
