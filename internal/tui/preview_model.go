package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/pagenav/pkg/pagenav"
	"github.com/rshade/pagenav/pkg/pagination"
	"github.com/rshade/pagenav/pkg/pagination/view"
)

// ViewState represents the current state of the preview.
type ViewState int

const (
	// ViewStateBrowsing is the default state: keys move between pages.
	ViewStateBrowsing ViewState = iota
	// ViewStateJumping means the jump-to-page input has focus.
	ViewStateJumping
	// ViewStateQuitting indicates the application is exiting.
	ViewStateQuitting
)

const (
	jumpInputCharLimit = 9
	jumpInputWidth     = 12
	minNeighbors       = 1
)

// PreviewConfig configures a PreviewModel.
type PreviewConfig struct {
	TotalItems  int
	PerPage     int
	CurrentPage int
	Neighbors   int

	// URL and Theme drive the HTML pane. Defaults are pagenav's.
	URL   view.URLBuilder
	Theme view.Theme

	// Renderer styles terminal output. Defaults to lipgloss.DefaultRenderer().
	Renderer *lipgloss.Renderer
}

// PreviewModel is the Bubble Tea model for browsing a navigation
// interactively.
type PreviewModel struct {
	cfg      PreviewConfig
	terminal Terminal
	theme    *view.DefaultTheme

	current   int
	neighbors int
	nav       *pagenav.Nav
	line      string
	html      string
	showHTML  bool

	state     ViewState
	textInput textinput.Model
	err       error

	title lipgloss.Style
	label lipgloss.Style
	muted lipgloss.Style
	alert lipgloss.Style
}

// NewPreviewModel validates cfg and returns a model positioned on
// cfg.CurrentPage, clamped to the valid range.
func NewPreviewModel(cfg PreviewConfig) (*PreviewModel, error) {
	if cfg.Renderer == nil {
		cfg.Renderer = lipgloss.DefaultRenderer()
	}
	if cfg.Neighbors == 0 {
		cfg.Neighbors = pagination.DefaultNeighbors
	}
	if cfg.PerPage == 0 {
		cfg.PerPage = pagination.DefaultPerPage
	}

	r := cfg.Renderer
	m := &PreviewModel{
		cfg:       cfg,
		terminal:  NewTerminal(r),
		theme:     TerminalTheme(),
		current:   cfg.CurrentPage,
		neighbors: cfg.Neighbors,
		textInput: newJumpInput(),
		title:     r.NewStyle().Foreground(ColorHeader).Bold(true),
		label:     r.NewStyle().Foreground(ColorLabel),
		muted:     r.NewStyle().Foreground(ColorMuted).Italic(true),
		alert:     r.NewStyle().Foreground(ColorError),
	}
	if err := m.rebuild(); err != nil {
		return nil, err
	}
	return m, nil
}

// newJumpInput creates the text input for jumping to a page.
func newJumpInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "page"
	ti.CharLimit = jumpInputCharLimit
	ti.Width = jumpInputWidth
	ti.Validate = func(s string) error {
		if strings.Trim(s, "0123456789") != "" {
			return fmt.Errorf("%q is not a page number", s)
		}
		return nil
	}
	return ti
}

// rebuild recomputes the sequence and both renderings for the current
// page and neighbor count.
func (m *PreviewModel) rebuild() error {
	opts := pagenav.Options{
		TotalItems:  m.cfg.TotalItems,
		PerPage:     m.cfg.PerPage,
		CurrentPage: m.current,
		Neighbors:   m.neighbors,
	}

	termOpts := opts
	termOpts.URL = view.SimpleURL{}
	termOpts.Theme = m.theme
	termOpts.Markup = m.terminal
	nav, err := pagenav.New(termOpts)
	if err != nil {
		return err
	}

	htmlOpts := opts
	htmlOpts.URL = m.cfg.URL
	htmlOpts.Theme = m.cfg.Theme
	html, err := pagenav.Render(htmlOpts)
	if err != nil {
		return err
	}

	m.nav = nav
	m.current = nav.Sequence().CurrentPage()
	m.line = nav.Render()
	m.html = html
	return nil
}

// CurrentPage returns the page being shown.
func (m *PreviewModel) CurrentPage() int { return m.current }

// Neighbors returns the neighbor count in use.
func (m *PreviewModel) Neighbors() int { return m.neighbors }

// State returns the current view state.
func (m *PreviewModel) State() ViewState { return m.state }

// Init initializes the model.
func (m *PreviewModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m *PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.state == ViewStateJumping {
			var cmd tea.Cmd
			m.textInput, cmd = m.textInput.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.state == ViewStateJumping {
		return m.handleJumpKeypress(keyMsg)
	}
	return m.handleBrowseKeypress(keyMsg)
}

func (m *PreviewModel) handleBrowseKeypress(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	seq := m.nav.Sequence()

	switch keyMsg.String() {
	case keyQuit, keyCtrlC:
		m.state = ViewStateQuitting
		return m, tea.Quit
	case keyLeft, keyH:
		if prev, ok := seq.PreviousPage(); ok {
			m.goTo(prev)
		}
	case keyRight, keyL:
		if next, ok := seq.NextPage(); ok {
			m.goTo(next)
		}
	case keyHome, keyG:
		m.goTo(1)
	case keyEnd, keyShiftG:
		m.goTo(seq.TotalPages())
	case keyPlus:
		m.neighbors++
		m.err = m.rebuild()
	case keyMinus:
		if m.neighbors > minNeighbors {
			m.neighbors--
			m.err = m.rebuild()
		}
	case keyTab:
		m.showHTML = !m.showHTML
	case keySlash:
		m.state = ViewStateJumping
		m.textInput.SetValue("")
		m.textInput.Focus()
		return m, textinput.Blink
	}
	return m, nil
}

func (m *PreviewModel) handleJumpKeypress(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case keyCtrlC:
		m.state = ViewStateQuitting
		return m, tea.Quit
	case keyEsc:
		m.leaveJump()
		return m, nil
	case keyEnter:
		value := strings.TrimSpace(m.textInput.Value())
		m.leaveJump()
		if value == "" {
			return m, nil
		}
		page, err := strconv.Atoi(value)
		if err != nil {
			m.err = fmt.Errorf("invalid page %q", value)
			return m, nil
		}
		m.goTo(page)
		return m, nil
	default:
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(keyMsg)
		return m, cmd
	}
}

func (m *PreviewModel) leaveJump() {
	m.state = ViewStateBrowsing
	m.textInput.Blur()
}

// goTo moves to page; out-of-range pages clamp.
func (m *PreviewModel) goTo(page int) {
	m.current = page
	m.err = m.rebuild()
}

// View renders the current view.
func (m *PreviewModel) View() string {
	if m.state == ViewStateQuitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.title.Render("pagenav preview"))
	b.WriteString("\n\n")

	if m.line == "" {
		b.WriteString(m.muted.Render("(no pages)"))
	} else {
		b.WriteString(m.line)
	}
	b.WriteString("\n\n")

	b.WriteString(m.label.Render(FormatStatus(m.nav.Meta())))
	b.WriteString(m.label.Render(fmt.Sprintf(" · neighbors %d", m.neighbors)))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(m.alert.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	}

	if m.state == ViewStateJumping {
		b.WriteString("\nGo to page: ")
		b.WriteString(m.textInput.View())
		b.WriteString("\n")
	}

	if m.showHTML {
		b.WriteString("\n")
		b.WriteString(m.html)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.muted.Render("←/→ page · g/G first/last · +/- neighbors · / jump · tab html · q quit"))
	return b.String()
}
