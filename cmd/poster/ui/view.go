package ui

import (
	"fmt"
	"strings"

	"dsaposter/internal/countdown"
	"dsaposter/internal/poster"

	"github.com/charmbracelet/lipgloss"
)

// View renders the poster.
func (m Model) View() string {
	if !m.ready {
		return m.content() + "\n" + m.helpView()
	}
	return m.viewport.View() + "\n" + m.helpView()
}

func (m Model) helpView() string {
	return m.styles.Footer.Render(m.help.View(m.keys))
}

func blockHeight(s string) int {
	return lipgloss.Height(s) + 1
}

// content renders everything that scrolls.
func (m Model) content() string {
	sections := []string{
		m.renderHeader(),
		m.renderProblem(),
		m.renderExamples(),
		m.renderTimers(),
		m.renderQuoteAndShare(),
		m.styles.Muted.Render("Tip: edit the config file for future days; the poster reloads on save."),
	}
	return m.styles.App.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) renderHeader() string {
	p := m.cfg.Poster
	title := m.styles.Header.Render(fmt.Sprintf("🚀 Day %d", p.Day)) + " – " + p.Title

	btn := m.styles.Button
	if m.done.Done {
		btn = m.styles.ButtonDone
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, title, "   ", btn.Render(m.done.ButtonLabel()))
}

func (m Model) problemMarkdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Problem: %s\n\n", m.cfg.Poster.ProblemTitle)
	for _, line := range m.cfg.Poster.TaskLines {
		fmt.Fprintf(&b, "- %s\n", line)
	}
	return b.String()
}

func (m Model) renderProblem() string {
	md := m.problemMarkdown()
	if m.renderer != nil {
		if out, err := m.renderer.Render(md); err == nil {
			return strings.TrimRight(out, "\n")
		}
	}

	// Plain fallback
	lines := []string{m.styles.Title.Render("Problem: " + m.cfg.Poster.ProblemTitle)}
	for _, line := range m.cfg.Poster.TaskLines {
		lines = append(lines, m.styles.Body.Render("• "+line))
	}
	return m.styles.Section.Render(strings.Join(lines, "\n"))
}

func (m Model) renderExamples() string {
	if len(m.cards) == 0 {
		return m.styles.Muted.Render("No examples today.")
	}
	rendered := make([]string, len(m.cards))
	for i, c := range m.cards {
		rendered[i] = m.renderCard(i, c)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}

func (m Model) renderCard(i int, c poster.Card) string {
	lines := []string{
		m.styles.Label.Render("Input"),
		m.styles.Mono.Render(c.InputText()),
		m.styles.Button.Render(fmt.Sprintf("[%d] %s", i+1, c.ButtonLabel())),
	}
	if c.Reveal.Revealed {
		lines = append(lines,
			m.styles.Label.Render("Output"),
			m.styles.Title.Render(c.OutputText()),
		)
	}
	style := m.styles.Card
	if i == m.focus {
		style = m.styles.CardFocused
	}
	return style.Render(strings.Join(lines, "\n"))
}

func (m Model) renderTimers() string {
	boxes := make([]string, len(m.runners))
	for i, r := range m.runners {
		boxes[i] = m.renderTimer(r.Label(), r.Snapshot())
	}
	return lipgloss.JoinVertical(lipgloss.Left, boxes...)
}

func (m Model) renderTimer(label string, cd countdown.Countdown) string {
	pill := m.styles.Pill.Render(label)
	var clock string
	if cd.Reached() {
		clock = m.styles.Warning.Render(poster.LabelReached)
	} else {
		f := cd.Fields()
		clock = lipgloss.JoinHorizontal(lipgloss.Center,
			m.styles.Digit.Render(fmt.Sprintf("%02d", f.Hours)), ":",
			m.styles.Digit.Render(fmt.Sprintf("%02d", f.Minutes)), ":",
			m.styles.Digit.Render(fmt.Sprintf("%02d", f.Seconds)),
		)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, pill, "  ", clock)
}

func (m Model) renderQuoteAndShare() string {
	quote := m.styles.Section.Render(
		m.styles.Label.Render("✨ Motivational Quote") + "\n" +
			m.styles.Quote.Render("“"+m.cfg.Poster.Quote+"”"),
	)
	share := m.styles.Button.Render(m.ack.ButtonLabel())
	if m.ack.Copied() {
		share = m.styles.Success.Render(m.ack.ButtonLabel())
	}
	return lipgloss.JoinVertical(lipgloss.Left, quote, share)
}
