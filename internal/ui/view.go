package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	header := m.renderHeader()
	body := m.theme.Styles().Viewport.Width(m.contentWidth()).Render(m.viewport.View())
	footer := m.renderFooter()
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	title := "logpane"
	mode := fmt.Sprintf("filter:%s", m.filter)
	if m.follow {
		mode += "  following"
	}
	left := styles.Header.Render(title)
	right := styles.MutedText.Render(mode)
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + right
}

// renderFooter shows the engine's live counters: buffer fill, pool reuse,
// memory growth, and display truncations.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()

	parts := []string{fmt.Sprintf("%d/%d records", m.store.Len(), m.store.Capacity())}
	if m.pool != nil {
		parts = append(parts, fmt.Sprintf("reuse %.0f%%", m.pool.Stats().ReuseRatio*100))
	}
	if m.monitor != nil {
		stats := m.monitor.Stats()
		parts = append(parts, fmt.Sprintf("mem +%s (peak +%s)", formatBytes(stats.Current), formatBytes(stats.Peak)))
		if stats.NormalCleanups+stats.CriticalCleanups > 0 {
			parts = append(parts, fmt.Sprintf("cleanups %d/%d", stats.NormalCleanups, stats.CriticalCleanups))
		}
	}
	if m.optimizer != nil {
		if stats := m.optimizer.Stats(); stats.Truncations > 0 {
			parts = append(parts, fmt.Sprintf("truncated %d", stats.Truncations))
		}
	}
	parts = append(parts, "h help")

	return styles.Footer.Width(m.width).Render(strings.Join(parts, "  |  "))
}

func (m Model) renderHelp() string {
	styles := m.theme.Styles()
	var b strings.Builder
	b.WriteString("logpane keys\n\n")
	for _, binding := range m.keys.helpLines() {
		help := binding.Help()
		b.WriteString(fmt.Sprintf("  %-6s %s\n", help.Key, help.Desc))
	}
	b.WriteString("\npress any key to close")
	return styles.Help.Render(b.String())
}

// formatBytes renders a byte count compactly for the status footer.
func formatBytes(n uint64) string {
	switch {
	case n >= 1<<30:
		return fmt.Sprintf("%.1fGiB", float64(n)/(1<<30))
	case n >= 1<<20:
		return fmt.Sprintf("%.1fMiB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1fKiB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%dB", n)
	}
}
