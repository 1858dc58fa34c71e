// Package tui provides a live terminal view of a running mass-radius
// sweep.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/tovstar/internal/star"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

// Event is one completed model, or the end of the sweep.
type Event struct {
	Index int
	Model star.Model
	Done  bool
	Err   error
}

type sweepView struct {
	events   <-chan Event
	total    int
	lengthKM float64

	done     int
	masses   []float64
	radii    []float64
	filled   []bool
	maxMass  star.Model
	suspect  int
	finished bool
	err      error
}

func newSweepView(events <-chan Event, total int, lengthKM float64) sweepView {
	return sweepView{
		events:   events,
		total:    total,
		lengthKM: lengthKM,
		masses:   make([]float64, total),
		radii:    make([]float64, total),
		filled:   make([]bool, total),
	}
}

// RunSweep drives the live view until the sweep finishes and the user
// quits.
func RunSweep(events <-chan Event, total int, lengthKM float64) error {
	p := tea.NewProgram(newSweepView(events, total, lengthKM))
	_, err := p.Run()
	return err
}

func (m sweepView) wait() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return Event{Done: true}
		}
		return ev
	}
}

func (m sweepView) Init() tea.Cmd { return m.wait() }

func (m sweepView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
		return m, nil

	case Event:
		if msg.Done {
			m.finished = true
			m.err = msg.Err
			return m, nil
		}

		if msg.Index >= 0 && msg.Index < m.total && !m.filled[msg.Index] {
			m.filled[msg.Index] = true
			m.masses[msg.Index] = msg.Model.Mass
			m.radii[msg.Index] = msg.Model.Radius
			m.done++
		}
		if msg.Model.Mass > m.maxMass.Mass {
			m.maxMass = msg.Model
		}
		if !msg.Model.SurfaceFound {
			m.suspect++
		}
		return m, m.wait()
	}

	return m, nil
}

func (m sweepView) View() string {
	var sb strings.Builder

	sb.WriteString(cyan.Render("tovstar") + dim.Render("  mass-radius sweep") + "\n\n")

	barWidth := 40
	fill := 0
	if m.total > 0 {
		fill = m.done * barWidth / m.total
	}
	bar := green.Render(strings.Repeat("█", fill)) + dim.Render(strings.Repeat("░", barWidth-fill))
	sb.WriteString(fmt.Sprintf("  %s %d/%d\n\n", bar, m.done, m.total))

	if m.maxMass.Mass > 0 {
		sb.WriteString(fmt.Sprintf("  max mass  %s at R = %.2f km\n",
			yellow.Render(fmt.Sprintf("%.4f Msun", m.maxMass.Mass)),
			m.maxMass.Radius*m.lengthKM))
	}
	if m.suspect > 0 {
		sb.WriteString(dim.Render(fmt.Sprintf("  %d models without surface detection\n", m.suspect)))
	}

	if data := m.completedMasses(); len(data) >= 2 {
		sb.WriteString("\n" + asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.Caption("mass vs central density sample"),
		) + "\n")
	}

	if m.finished {
		if m.err != nil {
			sb.WriteString("\n" + yellow.Render(fmt.Sprintf("sweep failed: %v", m.err)) + "\n")
		}
		sb.WriteString("\n" + dim.Render("press q to quit") + "\n")
	}

	return sb.String()
}

func (m sweepView) completedMasses() []float64 {
	data := make([]float64, 0, m.done)
	for i, ok := range m.filled {
		if ok {
			data = append(data, m.masses[i])
		}
	}
	return data
}
