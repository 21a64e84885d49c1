// Package ui provides the Bubble Tea TUI for the arbitrage scanner.
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fxlab/arbitrage-scanner/business/detection/domain"
	"github.com/fxlab/arbitrage-scanner/business/detection/infra"
	"github.com/fxlab/arbitrage-scanner/internal/currency"
)

// Program is the running Bubble Tea program, set by main so reporters
// can push messages into the UI.
var Program *tea.Program

// Send delivers a message to the running program, if any.
func Send(msg tea.Msg) {
	if Program != nil {
		Program.Send(msg)
	}
}

// Model is the root TUI model: a scrollable view of per-table verdicts.
type Model struct {
	keys       KeyMap
	help       help.Model
	spinner    spinner.Model
	viewport   viewport.Model
	currencies *currency.Registry

	results     []*domain.TableResult
	totalChains int
	scanning    bool
	err         error

	width  int
	height int
	ready  bool
}

// New creates the root model.
func New(currencies *currency.Registry) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = SpinnerStyle

	return Model{
		keys:       DefaultKeyMap(),
		help:       help.New(),
		spinner:    sp,
		currencies: currencies,
		scanning:   true,
	}
}

// Init starts the spinner.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Top):
			m.viewport.GotoTop()
		case key.Matches(msg, m.keys.Bottom):
			m.viewport.GotoBottom()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		headerHeight := 2
		footerHeight := 2
		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, msg.Height-headerHeight-footerHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = msg.Height - headerHeight - footerHeight
		}
		m.viewport.SetContent(m.renderResults())

	case TableResultMsg:
		m.results = append(m.results, msg.Result)
		m.totalChains += len(msg.Result.Chains)
		if m.ready {
			m.viewport.SetContent(m.renderResults())
			m.viewport.GotoBottom()
		}

	case ScanDoneMsg:
		m.scanning = false

	case ErrorMsg:
		m.err = msg.Error
		m.scanning = false

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the UI.
func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	title := TitleStyle.Render("FX Arbitrage Scanner")

	var status string
	switch {
	case m.err != nil:
		status = ErrorStyle.Render("error: " + m.err.Error())
	case m.scanning:
		status = m.spinner.View() + " scanning..."
	default:
		status = fmt.Sprintf("done: %d tables, %d chains", len(m.results), m.totalChains)
	}

	footer := lipgloss.JoinHorizontal(lipgloss.Left,
		HelpStyle.Render(m.help.View(m.keys)),
		HelpStyle.Render(status),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		BoxStyle.Render(m.viewport.View()),
		footer,
	)
}

func (m Model) renderResults() string {
	if len(m.results) == 0 {
		return NoArbStyle.Render("waiting for tables...")
	}

	var sb strings.Builder
	for _, result := range m.results {
		head := fmt.Sprintf("Table %d  (N=%d, %s)",
			result.Table, result.Dimension, result.Elapsed.Round(time.Microsecond))
		sb.WriteString(TableHeadStyle.Render(head))
		sb.WriteByte('\n')

		if !result.HasArbitrage() {
			sb.WriteString(NoArbStyle.Render(infra.NoArbitrageSentinel))
			sb.WriteByte('\n')
		}
		for _, chain := range result.Chains {
			sb.WriteString(ChainStyle.Render(chain.String()))
			sb.WriteString(AnnotationStyle.Render(fmt.Sprintf("  +%s%%", chain.ProfitPct().StringFixed(2))))
			if labels := m.currencies.Annotate(chain.Sequence); labels != "" {
				sb.WriteString(AnnotationStyle.Render("  " + labels))
			}
			sb.WriteByte('\n')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
