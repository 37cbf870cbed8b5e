package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nguyentantai21042004/summarify/internal/summarize"
)

const (
	fallbackText = "Something went terribly wrong"
	noticeText   = "This process can take time. Remember that transcription and summarization is not a 100% accurate model."
)

// View renders the screen. A panic while rendering replaces the UI for good.
func (m Model) View() (out string) {
	if *m.crashed {
		return fallbackText + "\n"
	}

	defer func() {
		if r := recover(); r != nil {
			*m.crashed = true
			m.logger.Error(m.ctx, "Render failed: %v", r)
			out = fallbackText + "\n"
		}
	}()

	return m.renderBody(m)
}

func (m Model) body() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Summarify") + "\n\n")
	b.WriteString(noticeStyle.Render(noticeText) + "\n\n")

	if m.picking {
		b.WriteString(m.picker.View() + "\n")
		b.WriteString(helpStyle.Render("enter: choose • tab: close") + "\n")
	} else {
		b.WriteString(dropStyle.Render("Press o to pick an audio file\nWAV, MP3 or MP4 (Max. 1MB)") + "\n")
	}

	if f := m.state.File; f != nil {
		row := f.Name + "  " + sizeStyle.Render(summarize.ConvertSize(f.Size))
		if m.state.Error != "" {
			row += "  " + errorStyle.Render(m.state.Error)
		}
		b.WriteString(fileStyle.Render(row) + "\n")
	} else if m.state.Error != "" {
		b.WriteString(errorStyle.Render(m.state.Error) + "\n")
	}

	action := "[s] Summarize"
	if m.state.Loading {
		action = m.spinner.View() + " Summarizing"
	}
	b.WriteString("\n" + action + "   [c] Clean   [d] Remove file\n\n")

	b.WriteString(m.transcriptSection() + "\n\n")
	b.WriteString(m.summarySection() + "\n")

	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}
	b.WriteString("\n" + helpStyle.Render("o: open • s: summarize • t/y: copy transcript/summary • c: clean • q: quit") + "\n")

	return b.String()
}

func (m Model) transcriptSection() string {
	header := headerStyle.Render("Transcribe Audio") + " " + poweredStyle.Render("✪ Powered by Whisper AI")
	var text string
	if m.state.Result != nil {
		text = m.state.Result.Transcribe
	}
	if text != "" {
		header += "  " + helpStyle.Render("[t] copy")
	}

	switch {
	case m.state.Loading:
		return lipgloss.JoinVertical(lipgloss.Left, header, m.spinner.View())
	case text != "":
		return lipgloss.JoinVertical(lipgloss.Left, header, resultStyle.Render(text))
	default:
		return header
	}
}

func (m Model) summarySection() string {
	header := headerStyle.Render("Summary Audio") + " " + poweredStyle.Render("✪ Powered by Cohere AI")
	var text string
	if m.state.Result != nil {
		text = m.state.Result.Summary
	}
	if text == "" {
		return header
	}
	header += "  " + helpStyle.Render("[y] copy")
	return lipgloss.JoinVertical(lipgloss.Left, header, resultStyle.Render(text))
}
