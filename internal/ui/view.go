package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/ramanasai/moodlog/internal/views"
)

const timelineHeight = 14

func (m Model) View() string {
	var b strings.Builder

	title := "moodlog"
	if m.affirmation != "" {
		title += "  ·  " + m.affirmation
	}
	b.WriteString(m.st.topBar.Render(title))
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	switch m.mode {
	case modeCompose:
		b.WriteString(m.renderCompose())
	case modeMoodAdd:
		b.WriteString(m.renderMoodAdd())
	default:
		switch m.pane {
		case paneTimeline:
			b.WriteString(m.renderTimeline())
		case paneChart:
			b.WriteString(m.renderChart())
		case paneCalendar:
			b.WriteString(m.renderCalendar())
		case paneChat:
			b.WriteString(m.renderChat())
		}
	}

	b.WriteString("\n")
	b.WriteString(m.st.statusBar.Render(m.statusLine()))
	return b.String()
}

func (m Model) renderTabs() string {
	names := []string{"Timeline", "Chart", "Calendar", "Chat"}
	parts := make([]string, len(names))
	for i, n := range names {
		if pane(i) == m.pane {
			parts[i] = m.st.tabActive.Render("[" + n + "]")
		} else {
			parts[i] = m.st.textDim.Render(" " + n + " ")
		}
	}
	return " " + strings.Join(parts, " ")
}

func (m Model) renderTimeline() string {
	var b strings.Builder

	if m.filter.Active() {
		var parts []string
		if m.filter.Mood != "" {
			parts = append(parts, "mood="+m.filter.Mood)
		}
		if m.filter.Date != "" {
			parts = append(parts, "date="+m.filter.Date)
		}
		b.WriteString(m.st.textDim.Render(" filtered: "+strings.Join(parts, " ")+"  (x to clear)") + "\n")
	}

	if len(m.timeline) == 0 {
		b.WriteString(m.st.textDim.Render("  Nothing here. Press n to write an entry.") + "\n")
		return b.String()
	}

	start := 0
	if m.cursor >= timelineHeight {
		start = m.cursor - timelineHeight + 1
	}
	end := start + timelineHeight
	if end > len(m.timeline) {
		end = len(m.timeline)
	}

	for i := start; i < end; i++ {
		e := m.timeline[i]
		moodHex := ""
		if mood, ok := m.moods.Get(e.Mood); ok {
			moodHex = mood.Color
		}
		line := fmt.Sprintf("  %s  %s  %s",
			m.st.age.Render(e.When(m.loc).Format("Jan 02 15:04")),
			moodLabel(e.Mood, moodHex),
			e.Text,
		)
		if i == m.cursor {
			line = m.st.cursorLine.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func moodLabel(name, hex string) string {
	if hex == "" {
		return "[" + name + "]"
	}
	return moodStyle(hex).Render("[" + name + "]")
}

const chartBarWidth = 24

func (m Model) renderChart() string {
	var b strings.Builder

	max := 0
	for _, c := range m.counts {
		if c.Count > max {
			max = c.Count
		}
	}

	for i, c := range m.counts {
		width := 0
		if max > 0 {
			width = c.Count * chartBarWidth / max
		}
		bar := strings.Repeat("█", width)

		st := moodStyle(c.Mood.Color)
		// the active mood filter fades the other bars, it never hides them
		if m.filter.Mood != "" && c.Mood.Name != m.filter.Mood {
			st = st.Faint(true)
		}

		prefix := "  "
		if i == m.chartCursor {
			prefix = "> "
		}
		fmt.Fprintf(&b, "%s%-12s %s %d\n", prefix, c.Mood.Name, st.Render(bar), c.Count)
	}
	b.WriteString(m.st.textDim.Render("  enter: toggle filter · D: delete custom mood · a: add mood") + "\n")
	return b.String()
}

func (m Model) renderCalendar() string {
	var b strings.Builder
	b.WriteString("  " + m.st.panelTitle.Render(m.month.Format("January 2006")) + "\n")
	b.WriteString(m.st.textDim.Render("  Su     Mo     Tu     We     Th     Fr     Sa") + "\n")

	first := time.Date(m.month.Year(), m.month.Month(), 1, 0, 0, 0, 0, m.loc)
	offset := int(first.Weekday())

	cells := make([]string, 0, offset+len(m.calDays))
	for i := 0; i < offset; i++ {
		cells = append(cells, strings.Repeat(" ", 7))
	}
	for i, d := range m.calDays {
		cells = append(cells, m.renderCalCell(d, i == m.calCursor))
	}
	for i := 0; i < len(cells); i += 7 {
		end := i + 7
		if end > len(cells) {
			end = len(cells)
		}
		b.WriteString("  " + strings.Join(cells[i:end], "") + "\n")
	}

	// caption for the selected day, if it has a mixture summary
	if m.calCursor < len(m.calDays) {
		d := m.calDays[m.calCursor]
		if d.Mixture() {
			caption, ok := m.summaries[d.Date]
			if !ok {
				caption = "…"
			}
			b.WriteString("\n  " + m.st.caption.Render(d.Date+" — "+caption) + "\n")
		}
	}
	b.WriteString(m.st.textDim.Render("  enter: toggle day filter · [ ]: month · hjkl: move") + "\n")
	return b.String()
}

func (m Model) renderCalCell(d views.CalendarDay, selected bool) string {
	var b strings.Builder
	num := fmt.Sprintf("%2d", d.Day)
	if selected {
		num = m.st.textBold.Render(num)
	} else if d.Date == m.filter.Date {
		num = lipgloss.NewStyle().Underline(true).Render(num)
	}
	b.WriteString(num)

	shown := 0
	for _, name := range d.Moods {
		if mood, ok := m.moods.Get(name); ok {
			b.WriteString(moodStyle(mood.Color).Render("•"))
			shown++
		}
	}
	b.WriteString(strings.Repeat(" ", 7-2-shown))
	return b.String()
}

const chatHeight = 12

func (m Model) renderChat() string {
	var b strings.Builder

	msgs := m.chat.Messages()
	start := 0
	if len(msgs) > chatHeight {
		start = len(msgs) - chatHeight
	}
	for _, msg := range msgs[start:] {
		who := m.st.textBold.Render("you")
		if msg.Role == "assistant" {
			who = m.st.textDim.Render("claude")
		}
		b.WriteString(fmt.Sprintf("  %s  %s\n", who, msg.Text))
	}
	if m.chatBusy {
		b.WriteString(m.st.textDim.Render("  …") + "\n")
	}
	if m.chatErr != "" {
		b.WriteString(m.st.errorText.Render("  "+m.chatErr) + "\n")
	}

	b.WriteString("\n  " + m.chatInput.View() + "\n")
	return b.String()
}

func (m Model) renderCompose() string {
	var b strings.Builder
	b.WriteString("  " + m.st.panelTitle.Render("New entry") + "\n\n")
	b.WriteString("  " + m.composeText.View() + "\n\n")

	b.WriteString("  Mood: ")
	for i, mood := range m.moods.All() {
		label := " " + mood.Name + " "
		st := moodStyle(mood.Color)
		if i == m.composeMood && !m.composeText.Focused() {
			st = st.Reverse(true)
		}
		b.WriteString(st.Render(label) + " ")
	}
	b.WriteString("\n\n")
	b.WriteString(m.st.textDim.Render("  enter: next/save · esc: cancel") + "\n")
	return b.String()
}

func (m Model) renderMoodAdd() string {
	var b strings.Builder
	b.WriteString("  " + m.st.panelTitle.Render("Add mood") + "\n\n")
	b.WriteString("  Name:  " + m.moodName.View() + "\n")
	b.WriteString("  Color: " + m.moodColor.View() + "\n\n")
	b.WriteString(m.st.textDim.Render("  tab: switch field · enter: save · esc: cancel") + "\n")
	return b.String()
}

func (m Model) statusLine() string {
	left := fmt.Sprintf("%d entries · %d moods", m.entries.Len(), m.moods.Len())
	if m.status != "" {
		left += " · " + m.status
	}
	return left + " · n: new · tab: pane · q: quit"
}
