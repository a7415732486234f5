package progress

import (
	"fmt"
	"strings"
	"time"

	pbar "github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/RachelGal/pharmacy-scraper/internal/core/domain"
	"github.com/RachelGal/pharmacy-scraper/internal/core/ports/driven"
	"github.com/RachelGal/pharmacy-scraper/internal/logger"
)

// Ensure BarReporter implements the interface.
var _ driven.ProgressReporter = (*BarReporter)(nil)

// Bar width bounds. The terminal width minus barPadding leaves room
// for the record counter next to the bar.
const (
	maxBarWidth = 50
	minBarWidth = 10
	barPadding  = 12
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true)
	mutedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
	matchedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1"))
	notFoundStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8"))
	ambiguousStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F9E2AF"))
)

// statusStyle maps a match outcome to its display colour.
func statusStyle(status domain.MatchStatus) lipgloss.Style {
	switch status {
	case domain.StatusMatched:
		return matchedStyle
	case domain.StatusAmbiguous:
		return ambiguousStyle
	default:
		return notFoundStyle
	}
}

// stepMsg reports one processed record to the bar.
type stepMsg struct {
	name   string
	status domain.MatchStatus
}

// finishMsg carries the final summary and stops the programme.
type finishMsg struct {
	summary domain.RunSummary
}

// BarReporter renders enrichment progress as an inline Bubbletea
// progress bar. Keyboard input is disabled so an interrupt still
// reaches the run's own signal handling.
type BarReporter struct {
	prog *tea.Program
	done chan struct{}
}

// NewBar creates a progress bar reporter. The bar starts rendering on
// Start and leaves the final summary on screen after Finish.
func NewBar() *BarReporter {
	return &BarReporter{}
}

// Start launches the bar programme for a run of total records.
func (r *BarReporter) Start(total int) {
	r.prog = tea.NewProgram(newBarModel(total), tea.WithInput(nil))
	r.done = make(chan struct{})
	go func() {
		defer close(r.done)
		if _, err := r.prog.Run(); err != nil {
			logger.Debug("Progress display stopped: %v", err)
		}
	}()
}

// Step advances the bar by one record.
func (r *BarReporter) Step(name string, status domain.MatchStatus) {
	if r.prog == nil {
		return
	}
	r.prog.Send(stepMsg{name: name, status: status})
}

// Finish renders the run summary and waits for the programme to exit.
func (r *BarReporter) Finish(summary domain.RunSummary) {
	if r.prog == nil {
		return
	}
	r.prog.Send(finishMsg{summary: summary})
	<-r.done
}

// Stop tears the bar down without a summary. Called when a run aborts
// so the terminal is restored; after a normal Finish it is a no-op.
func (r *BarReporter) Stop() {
	if r.prog == nil {
		return
	}
	r.prog.Quit()
	<-r.done
}

// barModel is the Bubbletea model behind BarReporter.
type barModel struct {
	bar       pbar.Model
	total     int
	done      int
	matched   int
	notFound  int
	ambiguous int
	current   string
	status    domain.MatchStatus
	finished  bool
	summary   domain.RunSummary
}

func newBarModel(total int) barModel {
	return barModel{
		bar:   pbar.New(pbar.WithDefaultGradient()),
		total: total,
	}
}

// Init implements tea.Model.
func (m barModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m barModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		width := msg.Width - barPadding
		if width > maxBarWidth {
			width = maxBarWidth
		}
		if width < minBarWidth {
			width = minBarWidth
		}
		m.bar.Width = width
		return m, nil

	case stepMsg:
		m.done++
		m.current = msg.name
		m.status = msg.status
		switch msg.status {
		case domain.StatusMatched:
			m.matched++
		case domain.StatusAmbiguous:
			m.ambiguous++
		default:
			m.notFound++
		}
		return m, nil

	case finishMsg:
		m.finished = true
		m.summary = msg.summary
		return m, tea.Quit
	}

	return m, nil
}

// View implements tea.Model.
func (m barModel) View() string {
	if m.finished {
		return m.summaryView()
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Enriching pharmacies"))
	b.WriteString("\n")
	b.WriteString(m.bar.ViewAs(m.percent()))
	b.WriteString(fmt.Sprintf(" %d/%d\n", m.done, m.total))
	if m.current != "" {
		b.WriteString(mutedStyle.Render(m.current))
		b.WriteString("  ")
		b.WriteString(statusStyle(m.status).Render(string(m.status)))
		b.WriteString("\n")
	}
	return b.String()
}

func (m barModel) percent() float64 {
	if m.total <= 0 {
		return 1
	}
	return float64(m.done) / float64(m.total)
}

// summaryView is the final frame, left on screen when the bar exits.
func (m barModel) summaryView() string {
	s := m.summary
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Enriched %d records in %s", s.Total, s.Duration.Round(time.Second))))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s  %d\n", matchedStyle.Render("Matched  "), s.Matched))
	b.WriteString(fmt.Sprintf("  %s  %d\n", notFoundStyle.Render("Not found"), s.NotFound))
	b.WriteString(fmt.Sprintf("  %s  %d\n", ambiguousStyle.Render("Ambiguous"), s.Ambiguous))
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  %d register searches", s.Searches)))
	b.WriteString("\n")
	return b.String()
}
