// Command tui is the interactive menu shell around the analysis core:
// pick an analysis from the menu, answer its prompt, read the result in
// the side panel. Mirrors the original console menu (S/M/G/O/R/Q).
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"dnapf/internal/config"
	"dnapf/internal/report"
	"dnapf/internal/seq"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// Colors for modern design
var (
	primaryColor = lipgloss.Color("#7C3AED") // Purple
	accentColor  = lipgloss.Color("#F59E0B") // Amber
	dangerColor  = lipgloss.Color("#EF4444") // Red
	surfaceColor = lipgloss.Color("#1F2937") // Dark gray
	textColor    = lipgloss.Color("#F3F4F6") // Light gray
	mutedColor   = lipgloss.Color("#9CA3AF") // Muted gray
	borderColor  = lipgloss.Color("#374151") // Border gray
)

// Styles
var (
	containerStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor)

	titleStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	resultTitleStyle = lipgloss.NewStyle().
				Foreground(accentColor).
				Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(dangerColor).
			Bold(true)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Background(surfaceColor).
			Padding(0, 1)

	promptStyle = lipgloss.NewStyle().
			Foreground(accentColor)
)

type action int

const (
	actionSummary action = iota
	actionMotif
	actionGC
	actionORFs
	actionReport
	actionQuit
)

type menuItem struct {
	key    string
	label  string
	detail string
	action action
}

func (i menuItem) FilterValue() string { return i.label }
func (i menuItem) Title() string       { return fmt.Sprintf("%s - %s", i.key, i.label) }
func (i menuItem) Description() string { return i.detail }

func menuItems() []list.Item {
	return []list.Item{
		menuItem{"S", "Sequence summary", "Length, base counts and GC content", actionSummary},
		menuItem{"M", "Find motif", "All (overlapping) occurrences of a pattern", actionMotif},
		menuItem{"G", "GC content", "Overall and per-window GC percentage", actionGC},
		menuItem{"O", "Find ORFs", "Forward-strand open reading frames", actionORFs},
		menuItem{"R", "Export report", "Write a text report of this session", actionReport},
		menuItem{"Q", "Quit", "Leave the program", actionQuit},
	}
}

type state int

const (
	stateMenu state = iota
	statePromptMotif
	statePromptWindow
)

// session holds the last-computed results so the report action can
// export them without re-prompting.
type session struct {
	source         string
	sequence       seq.Sequence
	motif          seq.Motif
	motifPositions []int
	motifSearched  bool
	orfs           []seq.ORF
}

type model struct {
	list   list.Model
	input  textinput.Model
	sess   session
	cfg    *config.Config
	state  state
	result string
	errMsg string
	width  int
	height int
}

func newModel(cfg *config.Config, source string, s seq.Sequence) model {
	l := list.New(menuItems(), list.NewDefaultDelegate(), 0, 0)
	l.Title = "DNA Pattern Finder"
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)

	ti := textinput.New()
	ti.Prompt = ">>> "
	ti.CharLimit = 64

	return model{
		list:  l,
		input: ti,
		cfg:   cfg,
		sess:  session{source: source, sequence: s},
		state: stateMenu,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetWidth(msg.Width / 3)
		m.list.SetHeight(msg.Height - 4)
		return m, nil

	case tea.KeyMsg:
		if m.state != stateMenu {
			return m.updatePrompt(msg)
		}
		switch msg.String() {
		case "ctrl+c", "q", "Q":
			return m, tea.Quit
		case "enter":
			item, ok := m.list.SelectedItem().(menuItem)
			if !ok {
				return m, nil
			}
			return m.runAction(item.action)
		case "s", "S":
			return m.runAction(actionSummary)
		case "m", "M":
			return m.runAction(actionMotif)
		case "g", "G":
			return m.runAction(actionGC)
		case "o", "O":
			return m.runAction(actionORFs)
		case "r", "R":
			return m.runAction(actionReport)
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// updatePrompt handles key input while a motif or window size prompt is
// open. Bad input keeps the prompt open with the error shown, matching
// the original re-prompt loop; esc returns to the menu.
func (m model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.state = stateMenu
		m.errMsg = ""
		m.input.Blur()
		return m, nil
	case "enter":
		var err error
		switch m.state {
		case statePromptMotif:
			err = m.runMotif(m.input.Value())
		case statePromptWindow:
			err = m.runWindowedGC(m.input.Value())
		}
		if err != nil {
			m.errMsg = err.Error()
			m.input.SetValue("")
			return m, nil
		}
		m.state = stateMenu
		m.errMsg = ""
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) runAction(a action) (model, tea.Cmd) {
	m.errMsg = ""
	switch a {
	case actionSummary:
		m.result = m.summaryResult()
	case actionMotif:
		m.state = statePromptMotif
		m.input.Placeholder = "motif, e.g. ATG"
		m.input.SetValue("")
		m.input.Focus()
	case actionGC:
		m.state = statePromptWindow
		m.input.Placeholder = fmt.Sprintf("window size, e.g. %d", m.cfg.WindowSize)
		m.input.SetValue("")
		m.input.Focus()
	case actionORFs:
		m.result = m.orfResult()
	case actionReport:
		if err := m.exportReport(); err != nil {
			m.errMsg = err.Error()
		} else {
			m.result = fmt.Sprintf("Report written to %s", m.cfg.ReportPath)
		}
	case actionQuit:
		return m, tea.Quit
	}
	return m, nil
}

func (m *model) summaryResult() string {
	s := m.sess.sequence
	counts := seq.CountResidues(s)
	gc, err := seq.GCPercent(s)
	if err != nil {
		return err.Error()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Source: %s\n", m.sess.source)
	fmt.Fprintf(&b, "Length: %d\n", len(s))
	fmt.Fprintf(&b, "Base counts: A=%d C=%d G=%d T=%d\n",
		counts['A'], counts['C'], counts['G'], counts['T'])
	fmt.Fprintf(&b, "GC content: %.1f%%", gc)
	return b.String()
}

// runMotif validates the prompt input, searches, and retains the result
// for the report.
func (m *model) runMotif(raw string) error {
	motif, err := seq.NewMotif(raw, m.sess.sequence)
	if err != nil {
		return err
	}
	positions := seq.FindMotif(m.sess.sequence, motif)
	m.sess.motif = motif
	m.sess.motifPositions = positions
	m.sess.motifSearched = true

	var b strings.Builder
	fmt.Fprintf(&b, "Motif %s: %d occurrence(s)\n", motif, len(positions))
	for _, p := range positions {
		fmt.Fprintf(&b, "  position %d\n", p+1)
	}
	m.result = strings.TrimRight(b.String(), "\n")
	return nil
}

func (m *model) runWindowedGC(raw string) error {
	size, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("window size must be a whole number")
	}
	windows, err := seq.WindowedGC(m.sess.sequence, size)
	if err != nil {
		return err
	}
	overall, err := seq.GCPercent(m.sess.sequence)
	if err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Overall GC content: %.1f%%\n", overall)
	fmt.Fprintf(&b, "Windows (size %d):\n", size)
	for _, w := range windows {
		fmt.Fprintf(&b, "  window %d [%d-%d]: %.1f%%\n", w.Index, w.Start, w.End, w.GCPercent)
	}
	stats := seq.SummarizeWindows(windows)
	fmt.Fprintf(&b, "mean %.1f%%, stddev %.1f, min %.1f%%, max %.1f%%",
		stats.Mean, stats.StdDev, stats.Min, stats.Max)
	m.result = b.String()
	return nil
}

func (m *model) orfResult() string {
	orfs := seq.FindORFs(m.sess.sequence)
	m.sess.orfs = orfs

	var b strings.Builder
	fmt.Fprintf(&b, "ORFs found: %d", len(orfs))
	for i, o := range orfs {
		fmt.Fprintf(&b, "\n  ORF %d: start %d, stop %d, length %d",
			i+1, o.Start+1, o.End+1, o.Length())
	}
	return b.String()
}

func (m *model) exportReport() error {
	s := m.sess.sequence
	gc, err := seq.GCPercent(s)
	if err != nil {
		return err
	}
	return report.Write(m.cfg.ReportPath, report.Summary{
		Source:         m.sess.source,
		Sequence:       s,
		Counts:         seq.CountResidues(s),
		GCPercent:      gc,
		Motif:          m.sess.motif,
		MotifPositions: m.sess.motifPositions,
		MotifSearched:  m.sess.motifSearched,
		ORFs:           seq.FindORFs(s),
	})
}

func (m model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	left := containerStyle.
		Width(m.width/3 - 2).
		Height(m.height - 4).
		Render(m.list.View())

	right := containerStyle.
		Width((m.width*2)/3 - 2).
		Height(m.height - 4).
		Render(m.renderRightPanel())

	main := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	return lipgloss.JoinVertical(lipgloss.Left, main, m.renderStatusBar())
}

func (m model) renderRightPanel() string {
	header := titleStyle.Render(fmt.Sprintf("%s (%d bp)", m.sess.source, len(m.sess.sequence)))

	var body string
	switch m.state {
	case statePromptMotif:
		body = promptStyle.Render("Enter motif:") + "\n" + m.input.View()
	case statePromptWindow:
		body = promptStyle.Render("Enter window size:") + "\n" + m.input.View()
	default:
		if m.result == "" {
			body = lipgloss.NewStyle().Foreground(mutedColor).Render("Pick an analysis from the menu")
		} else {
			body = resultTitleStyle.Render("Result:") + "\n\n" + m.result
		}
	}
	if m.errMsg != "" {
		body += "\n\n" + errorStyle.Render("Error: "+m.errMsg)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, "", body)
}

func (m model) renderStatusBar() string {
	info := fmt.Sprintf("%d bp loaded", len(m.sess.sequence))
	hint := "s/m/g/o/r run analysis - q quit"
	if m.state != stateMenu {
		hint = "enter confirm - esc cancel"
	}

	spacing := m.width - len(info) - len(hint) - 4
	if spacing < 1 {
		spacing = 1
	}
	return statusBarStyle.
		Width(m.width).
		Render(info + strings.Repeat(" ", spacing) + hint)
}

func main() {
	sequenceFlag := flag.String("sequence", "", "path to the sequence text file")
	configFlag := flag.String("config", "", "path to config file (optional)")
	flag.Parse()

	logger := log.New(os.Stderr)

	cfg, err := config.Load(*configFlag)
	if err != nil {
		logger.Fatal("loading config", "err", err)
	}
	if *sequenceFlag != "" {
		cfg.SequencePath = *sequenceFlag
	}

	data, err := os.ReadFile(cfg.SequencePath)
	if err != nil {
		logger.Fatal("reading sequence file", "path", cfg.SequencePath, "err", err)
	}
	id, s, err := seq.ParseText(string(data))
	if err != nil {
		logger.Fatal("invalid sequence", "path", cfg.SequencePath, "err", err)
	}
	if id == "" {
		id = cfg.SequencePath
	}

	p := tea.NewProgram(newModel(cfg, id, s), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v", err)
		os.Exit(1)
	}
	fmt.Println("Happy hunting!")
}
