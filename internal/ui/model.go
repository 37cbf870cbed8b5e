// Package ui renders a widget as a single-screen terminal application.
package ui

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nguyentantai21042004/summarify/internal/logger"
	"github.com/nguyentantai21042004/summarify/internal/summarize"
	"github.com/nguyentantai21042004/summarify/internal/widget"
)

// stateMsg tells the model the widget changed; the model re-reads the latest state.
type stateMsg struct{}

// summarizeDoneMsg is returned by the summarize command itself. Unlike stateMsg it
// does not re-arm the change listener.
type summarizeDoneMsg struct{}

type copyDoneMsg struct {
	field widget.Field
	err   error
}

type Model struct {
	ctx     context.Context
	widget  widget.Widget
	logger  logger.Logger
	updates chan struct{}

	picker  filepicker.Model
	spinner spinner.Model
	picking bool

	state  widget.State
	status string

	// crashed survives Model copies so a failed render is final.
	crashed    *bool
	renderBody func(Model) string
}

// New wires the model to w. accept lists the extensions offered by the file picker.
func New(ctx context.Context, w widget.Widget, accept []string, log logger.Logger) Model {
	fp := filepicker.New()
	fp.AllowedTypes = accept
	fp.AutoHeight = false
	fp.Height = 12
	if dir, err := os.Getwd(); err == nil {
		fp.CurrentDirectory = dir
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	updates := make(chan struct{}, 1)
	w.OnChange(func(widget.State) {
		select {
		case updates <- struct{}{}:
		default:
		}
	})

	return Model{
		ctx:        ctx,
		widget:     w,
		logger:     log,
		updates:    updates,
		picker:     fp,
		spinner:    sp,
		state:      w.State(),
		crashed:    new(bool),
		renderBody: Model.body,
	}
}

func (m Model) Init() tea.Cmd {
	return waitForChange(m.updates)
}

func waitForChange(updates <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-updates
		return stateMsg{}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.picking {
			return m.updatePicker(msg)
		}
		return m.handleKey(msg)

	case stateMsg:
		wasLoading := m.state.Loading
		m.state = m.widget.State()
		cmds := []tea.Cmd{waitForChange(m.updates)}
		if m.state.Loading && !wasLoading {
			cmds = append(cmds, m.spinner.Tick)
		}
		return m, tea.Batch(cmds...)

	case summarizeDoneMsg:
		m.state = m.widget.State()
		return m, nil

	case copyDoneMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Copy failed: %v", msg.err)
		} else {
			m.status = fmt.Sprintf("Copied %s to clipboard", msg.field)
		}
		return m, nil

	case spinner.TickMsg:
		if !m.state.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.picking {
		return m.updatePicker(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "o", "enter":
		m.picking = true
		return m, m.picker.Init()

	case "s":
		return m, m.summarize()

	case "d":
		m.widget.RemoveFile()
		m.state = m.widget.State()

	case "c":
		m.widget.Reset()
		m.state = m.widget.State()

	case "t":
		return m, m.copy(widget.FieldTranscribe)

	case "y":
		return m, m.copy(widget.FieldSummary)
	}

	return m, nil
}

func (m Model) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "tab" {
		m.picking = false
		return m, nil
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if ok, path := m.picker.DidSelectFile(msg); ok {
		m.picking = false
		m.selectPath(path)
		return m, cmd
	}
	if ok, path := m.picker.DidSelectDisabledFile(msg); ok {
		m.status = fmt.Sprintf("%s is not a supported audio file", path)
	}

	return m, cmd
}

func (m *Model) selectPath(path string) {
	file, err := summarize.FileFromPath(path)
	if err != nil {
		m.logger.Warn(m.ctx, "Cannot select %s: %v", path, err)
		m.status = err.Error()
		return
	}
	m.widget.Select(m.ctx, file)
	m.state = m.widget.State()
}

// summarize returns nil when the widget would ignore the request anyway.
func (m Model) summarize() tea.Cmd {
	if m.state.File == nil || m.state.Loading {
		return nil
	}
	w, ctx := m.widget, m.ctx
	return func() tea.Msg {
		w.Summarize(ctx)
		return summarizeDoneMsg{}
	}
}

func (m Model) copy(field widget.Field) tea.Cmd {
	w, ctx := m.widget, m.ctx
	return func() tea.Msg {
		return copyDoneMsg{field: field, err: w.Copy(ctx, field)}
	}
}
