package pages

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sup3rbob.dev/folio/content"
	"sup3rbob.dev/folio/motion"
)

const (
	frameInterval = 50 * time.Millisecond

	// navHeight is the sticky nav bar plus its divider; statusHeight is the
	// line under the viewport; helpHeight is reserved for the app's help row.
	navHeight    = 2
	statusHeight = 1
	helpHeight   = 1
)

// Portfolio page message types
type frameMsg struct {
	gen int
	at  time.Time
}

type settleMsg struct {
	gen int
	tr  *motion.Transition
}

type linkOpenedMsg struct {
	link string
}

type linkCopiedMsg struct {
	link string
}

type linkFailedMsg struct {
	link string
	err  error
}

// portfolioKeyMap defines key bindings for the portfolio page.
type portfolioKeyMap struct {
	Jump     key.Binding
	Top      key.Binding
	NextCard key.Binding
	PrevCard key.Binding
	Open     key.Binding
	Copy     key.Binding
	Scroll   key.Binding
}

var portfolioKeys = portfolioKeyMap{
	Jump: key.NewBinding(
		key.WithKeys("1", "2", "3", "4"),
		key.WithHelp("1-4", "jump to section"),
	),
	Top: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "top"),
	),
	NextCard: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next project"),
	),
	PrevCard: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "prev project"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter", "o"),
		key.WithHelp("enter", "open in browser"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy link"),
	),
	Scroll: key.NewBinding(
		key.WithKeys("up", "down", "pgup", "pgdown"),
		key.WithHelp("↑/↓", "scroll"),
	),
}

// PortfolioPage is the whole portfolio as one scrolling document: hero, work
// grid, skills, about and contact, under a sticky nav bar.
type PortfolioPage struct {
	logger   *log.Logger
	projects []content.Project
	palette  content.Palette
	profile  content.Profile
	sections []content.Section

	viewport viewport.Model
	dots     paginator.Model
	anchors  []int    // first document line of each section
	cardRows [][2]int // first and last document line of each project card
	docLines int

	heroCopy *motion.Transition
	showreel *motion.Transition
	badge    *motion.Transition
	cards    []*motion.Transition

	selected  int
	mounted   bool
	mountedAt time.Time
	gen       int // bumped on every mount/unmount; ticks from older generations are dropped
	status    string

	now  func() time.Time
	open func(string) error
	clip func(string) error

	width  int
	height int
}

// NewPortfolioPage creates the portfolio page. Nothing animates until InitCmd.
func NewPortfolioPage(logger *log.Logger) *PortfolioPage {
	if logger == nil {
		logger = log.Default()
	}

	sections := content.Sections()
	palette := content.GetPalette()

	dots := paginator.New()
	dots.Type = paginator.Dots
	dots.ActiveDot = lipgloss.NewStyle().Foreground(lipgloss.Color(palette.Accent)).Render("•")
	dots.InactiveDot = lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Render("•")
	dots.SetTotalPages(len(sections) + 1) // hero + sections

	p := &PortfolioPage{
		logger:   logger,
		projects: content.Projects(),
		palette:  palette,
		profile:  content.GetProfile(),
		sections: sections,
		viewport: viewport.New(0, 0),
		dots:     dots,
		now:      time.Now,
		open:     openBrowser,
		clip:     copyToClipboard,
	}
	p.resetTransitions()
	return p
}

func (p *PortfolioPage) resetTransitions() {
	p.heroCopy = motion.NewTransition(motion.Mount)
	p.showreel = motion.NewTransition(motion.ShowreelMount)
	p.badge = motion.NewTransition(motion.Badge)
	p.cards = make([]*motion.Transition, len(p.projects))
	for i := range p.cards {
		p.cards[i] = motion.NewTransition(motion.CardReveal)
	}
}

func (p *PortfolioPage) ID() PageID {
	return PortfolioPageID
}

func (p *PortfolioPage) Title() Title {
	return Title{
		Text:  p.profile.Handle,
		Color: lipgloss.Color(p.palette.Accent),
	}
}

func (p *PortfolioPage) SetSize(width, height int) {
	p.width = width
	p.height = height

	p.viewport.Width = p.contentWidth()
	p.viewport.Height = max(height-navHeight-statusHeight-helpHeight-DocStyle.GetVerticalFrameSize(), 3)
	p.refresh()
}

func (p *PortfolioPage) contentWidth() int {
	return max(p.width-DocStyle.GetHorizontalFrameSize(), 20)
}

// InitCmd mounts the page: the hero transitions start, each gets a completion
// timer, and the frame loop that drives the floating blob begins.
func (p *PortfolioPage) InitCmd() tea.Cmd {
	if p.mounted {
		return nil
	}
	p.mounted = true
	p.gen++
	p.resetTransitions()

	now := p.now()
	p.mountedAt = now
	p.logger.Printf("portfolio mounted (gen %d)", p.gen)

	var cmds []tea.Cmd
	for _, tr := range []*motion.Transition{p.heroCopy, p.showreel, p.badge} {
		if tr.Start(now) {
			cmds = append(cmds, settleCmd(p.gen, tr))
		}
	}
	p.refresh()
	cmds = append(cmds, p.revealVisibleCards()...)
	cmds = append(cmds, frameCmd(p.gen))
	return tea.Batch(cmds...)
}

// Unmount stops the frame loop and invalidates pending completion timers.
func (p *PortfolioPage) Unmount() {
	if !p.mounted {
		return
	}
	p.mounted = false
	p.gen++
	p.logger.Printf("portfolio unmounted")
}

// Mounted reports whether the page is on screen and animating.
func (p *PortfolioPage) Mounted() bool {
	return p.mounted
}

func frameCmd(gen int) tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg{gen: gen, at: t}
	})
}

// settleCmd is the single completion timer of a transition.
func settleCmd(gen int, tr *motion.Transition) tea.Cmd {
	return tea.Tick(tr.Spec().Total(), func(time.Time) tea.Msg {
		return settleMsg{gen: gen, tr: tr}
	})
}

func openLinkCmd(open func(string) error, link string) tea.Cmd {
	return func() tea.Msg {
		if err := open(link); err != nil {
			return linkFailedMsg{link: link, err: err}
		}
		return linkOpenedMsg{link: link}
	}
}

func copyLinkCmd(write func(string) error, link string) tea.Cmd {
	return func() tea.Msg {
		if err := write(link); err != nil {
			return linkFailedMsg{link: link, err: err}
		}
		return linkCopiedMsg{link: link}
	}
}

func (p *PortfolioPage) Update(msg tea.Msg) (Page, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		if msg.gen != p.gen || !p.mounted {
			return p, nil
		}
		p.refresh()
		// The first size arrives after mount, so cards are revealed from here too.
		return p, tea.Batch(append(p.revealVisibleCards(), frameCmd(p.gen))...)

	case settleMsg:
		if msg.gen != p.gen {
			return p, nil
		}
		msg.tr.Settle()
		p.refresh()
		return p, nil

	case linkOpenedMsg:
		p.status = "Opened " + msg.link + " in your browser"
		p.logger.Printf("opened %s", msg.link)
		return p, nil

	case linkCopiedMsg:
		p.status = "Copied " + msg.link
		return p, nil

	case linkFailedMsg:
		p.status = fmt.Sprintf("Could not open %s: %v", msg.link, msg.err)
		p.logger.Printf("link %s: %v", msg.link, msg.err)
		return p, nil

	case tea.KeyMsg:
		return p.handleKeyMsg(msg)

	case tea.MouseMsg:
		var cmd tea.Cmd
		p.viewport, cmd = p.viewport.Update(msg)
		return p, tea.Batch(append(p.afterScroll(), cmd)...)
	}

	return p, nil
}

func (p *PortfolioPage) handleKeyMsg(msg tea.KeyMsg) (Page, tea.Cmd) {
	switch {
	case key.Matches(msg, portfolioKeys.Jump):
		idx := int(msg.String()[0] - '1')
		p.JumpTo(idx)
		return p, tea.Batch(p.afterScroll()...)

	case key.Matches(msg, portfolioKeys.Top):
		p.viewport.GotoTop()
		return p, tea.Batch(p.afterScroll()...)

	case key.Matches(msg, portfolioKeys.NextCard):
		p.selectCard(p.selected + 1)
		return p, tea.Batch(p.afterScroll()...)

	case key.Matches(msg, portfolioKeys.PrevCard):
		p.selectCard(p.selected - 1)
		return p, tea.Batch(p.afterScroll()...)

	case key.Matches(msg, portfolioKeys.Open):
		if len(p.projects) == 0 {
			return p, nil
		}
		return p, openLinkCmd(p.open, p.projects[p.selected].Link)

	case key.Matches(msg, portfolioKeys.Copy):
		if len(p.projects) == 0 {
			return p, nil
		}
		return p, copyLinkCmd(p.clip, p.projects[p.selected].Link)
	}

	// Let viewport handle scrolling
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return p, tea.Batch(append(p.afterScroll(), cmd)...)
}

// JumpTo scrolls to the idx-th section anchor, like following #work in the nav.
func (p *PortfolioPage) JumpTo(idx int) {
	if idx < 0 || idx >= len(p.anchors) {
		return
	}
	p.viewport.SetYOffset(p.anchors[idx])
}

func (p *PortfolioPage) selectCard(idx int) {
	n := len(p.projects)
	if n == 0 {
		return
	}
	p.selected = (idx%n + n) % n
	p.status = ""
	p.refresh()

	if p.selected >= len(p.cardRows) {
		return
	}
	rows := p.cardRows[p.selected]
	top := p.viewport.YOffset
	bottom := top + p.viewport.Height - 1
	if rows[0] < top || rows[1] > bottom {
		p.viewport.SetYOffset(rows[0])
	}
}

// afterScroll re-derives everything that depends on scroll position.
func (p *PortfolioPage) afterScroll() []tea.Cmd {
	p.syncDots()
	p.refresh()
	return p.revealVisibleCards()
}

// revealVisibleCards starts the reveal of cards that are in view for the first time.
func (p *PortfolioPage) revealVisibleCards() []tea.Cmd {
	if !p.mounted {
		return nil
	}
	top := p.viewport.YOffset
	bottom := top + p.viewport.Height - 1

	var cmds []tea.Cmd
	now := p.now()
	for i, rows := range p.cardRows {
		if i >= len(p.cards) {
			break
		}
		if rows[1] < top || rows[0] > bottom {
			continue
		}
		if p.cards[i].Start(now) {
			cmds = append(cmds, settleCmd(p.gen, p.cards[i]))
		}
	}
	return cmds
}

func (p *PortfolioPage) syncDots() {
	page := 0
	for i, line := range p.anchors {
		if p.viewport.YOffset >= line || (p.viewport.AtBottom() && i == len(p.anchors)-1) {
			page = i + 1
		}
	}
	p.dots.Page = page
}

// ScrollProgress is the vertical scroll position normalised to [0,1]. A
// document that fits on screen has not been scrolled at all.
func (p *PortfolioPage) ScrollProgress() float64 {
	if p.viewport.TotalLineCount() <= p.viewport.Height {
		return 0
	}
	return p.viewport.ScrollPercent()
}

// GlowOpacity is the hero glow's opacity for the current scroll position.
func (p *PortfolioPage) GlowOpacity() float64 {
	return motion.Glow(p.ScrollProgress())
}

// refresh re-renders the document into the viewport. The document's line count
// does not depend on animation state, so a second pass is only needed when the
// layout itself changed (first render, resize).
func (p *PortfolioPage) refresh() {
	if p.width == 0 {
		return
	}
	doc := p.renderDocument()
	p.viewport.SetContent(doc)
	if n := strings.Count(doc, "\n") + 1; n != p.docLines {
		p.docLines = n
		p.viewport.SetContent(p.renderDocument())
	}
}

func (p *PortfolioPage) View() string {
	var b strings.Builder

	b.WriteString(p.renderNav())
	b.WriteString("\n")
	b.WriteString(p.viewport.View())
	b.WriteString("\n")

	statusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#555555"))
	status := p.status
	if status == "" {
		status = fmt.Sprintf("%d%%", int(p.ScrollProgress()*100))
	}
	b.WriteString(statusStyle.Render(status))

	return b.String()
}

func (p *PortfolioPage) KeyMap() []key.Binding {
	return []key.Binding{
		portfolioKeys.Scroll,
		portfolioKeys.Jump,
		portfolioKeys.NextCard,
		portfolioKeys.Open,
		portfolioKeys.Copy,
	}
}
