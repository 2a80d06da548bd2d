package ui

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ramanasai/moodlog/internal/config"
	"github.com/ramanasai/moodlog/internal/genai"
	"github.com/ramanasai/moodlog/internal/journal"
	"github.com/ramanasai/moodlog/internal/store"
	"github.com/ramanasai/moodlog/internal/views"
)

type pane int
type mode int

const (
	paneTimeline pane = iota
	paneChart
	paneCalendar
	paneChat
)

const (
	modeNormal mode = iota
	modeCompose
	modeMoodAdd
)

// Model is the whole TUI state. All mutations happen on the bubbletea event
// loop; async text generation comes back as typed messages that patch only
// the fragment they own.
type Model struct {
	width, height int
	pane          pane
	mode          mode

	loc *time.Location
	cfg config.Config
	st  style

	db      *store.DB
	entries *store.EntryStore
	moods   *store.MoodRegistry

	// derived views, recomputed synchronously after every mutation
	filter   views.Filter
	timeline []journal.Entry
	counts   []views.MoodCount

	// timeline cursor
	cursor int

	// chart cursor (index into counts)
	chartCursor int

	// calendar
	month       time.Time
	calDays     []views.CalendarDay
	calCursor   int // index into calDays
	summaries   map[string]string
	summaryPend map[string]bool

	// compose form
	composeText textinput.Model
	composeMood int // index into moods.All()

	// mood add form
	moodName  textinput.Model
	moodColor textinput.Model
	moodField int

	// affirmation header, patched async
	affirmation string

	// chat
	chat      *genai.ChatSession
	chatInput textinput.Model
	chatBusy  bool
	chatErr   string

	gen   genai.Generator
	cache *genai.SummaryCache

	status string
}

// Run opens the stores and starts the program.
func Run() error {
	cfg, _ := config.Load()
	loc := cfg.Location()

	db, err := store.Open(cfg.DataDir)
	if err != nil {
		return err
	}

	logger := slog.Default()
	entries := store.NewEntryStore(db, logger)
	if err := entries.Load(); err != nil {
		_ = db.Close()
		return err
	}
	moods := store.NewMoodRegistry(db, logger)
	if err := moods.Load(); err != nil {
		_ = db.Close()
		return err
	}

	colorTheme := cfg.ColorTheme
	if saved, err := db.ColorTheme(); err == nil && saved != "" {
		colorTheme = saved
	}

	gen := resolveGenerator(cfg, db, logger)

	composeText := textinput.New()
	composeText.Placeholder = "How was it? (Enter to pick a mood, Esc to cancel)"
	composeText.CharLimit = 500
	composeText.Width = 60

	moodName := textinput.New()
	moodName.Placeholder = "Mood name"
	moodName.Width = 24

	moodColor := textinput.New()
	moodColor.Placeholder = "cba6f7"
	moodColor.CharLimit = 7
	moodColor.Width = 10

	chatInput := textinput.New()
	chatInput.Placeholder = "Say something…"
	chatInput.CharLimit = 500
	chatInput.Width = 60

	m := Model{
		pane:        paneTimeline,
		mode:        modeNormal,
		loc:         loc,
		cfg:         cfg,
		st:          newStyle(paletteFor(colorTheme)),
		db:          db,
		entries:     entries,
		moods:       moods,
		month:       time.Now().In(loc),
		summaries:   map[string]string{},
		summaryPend: map[string]bool{},
		composeText: composeText,
		moodName:    moodName,
		moodColor:   moodColor,
		chat:        genai.NewChatSession(gen),
		chatInput:   chatInput,
		gen:         gen,
		cache:       genai.NewSummaryCache(gen, logger),
	}
	m.recompute()

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, runErr := p.Run()
	_ = db.Close()
	return runErr
}

// resolveGenerator builds the Claude client from config/env, then the
// sealed API-key slot. nil means no credential.
func resolveGenerator(cfg config.Config, db *store.DB, logger *slog.Logger) genai.Generator {
	key := cfg.Claude.APIKey
	if key == "" {
		stored, err := db.APIKey()
		if err != nil {
			logger.Warn("reading stored API key", "error", err)
		}
		key = stored
	}
	client, err := genai.NewClient(key, cfg.Claude.Model, logger)
	if err != nil {
		return nil
	}
	return client
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadAffirmationCmd(), m.fillSummariesCmd())
}

// recompute re-runs every synchronous projection. Cheap at journal scale;
// nothing is cached between calls.
func (m *Model) recompute() {
	m.timeline = views.Timeline(m.entries.All(), m.filter, m.loc)
	m.counts = views.MoodCounts(m.entries.All(), m.moods.All())
	m.calDays = views.CalendarMonth(m.entries.All(), m.month, m.loc)
	if m.cursor >= len(m.timeline) {
		m.cursor = max(0, len(m.timeline)-1)
	}
	if m.chartCursor >= len(m.counts) {
		m.chartCursor = max(0, len(m.counts)-1)
	}
	if m.calCursor >= len(m.calDays) {
		m.calCursor = max(0, len(m.calDays)-1)
	}
}

// ---------- messages & commands ----------

type affirmationMsg struct{ text string }

type summaryMsg struct {
	day  string
	text string
}

// chatReplyMsg signals completion; the transcript itself is re-read from
// the session on render.
type chatReplyMsg struct {
	err error
}

// loadAffirmationCmd fetches the header affirmation. The fallback path never
// errors, so the message always carries text.
func (m Model) loadAffirmationCmd() tea.Cmd {
	entries := m.entries.All()
	moods := m.moods.All()
	gen := m.gen
	loc := m.loc
	return func() tea.Msg {
		mood, ok := views.DominantMood(entries, moods, loc)
		if !ok {
			mood = "reflective"
		}
		return affirmationMsg{text: genai.Affirmation(context.Background(), gen, mood, nil)}
	}
}

// fillSummariesCmd starts one fill per mixture day of the visible month that
// is not already cached or in flight. Each completion patches only its own
// day; concurrent fills for different days are independent.
func (m *Model) fillSummariesCmd() tea.Cmd {
	var cmds []tea.Cmd
	for _, d := range m.calDays {
		if !d.Mixture() || m.summaryPend[d.Date] {
			continue
		}
		if _, ok := m.summaries[d.Date]; ok {
			continue
		}
		m.summaryPend[d.Date] = true
		day, moods, count := d.Date, d.Moods, d.EntryCount
		cache := m.cache
		cmds = append(cmds, func() tea.Msg {
			return summaryMsg{day: day, text: cache.Fill(context.Background(), day, moods, count)}
		})
	}
	return tea.Batch(cmds...)
}

func (m Model) sendChatCmd(text string) tea.Cmd {
	session := m.chat
	return func() tea.Msg {
		_, err := session.Reply(context.Background(), text)
		return chatReplyMsg{err: err}
	}
}

// ---------- update ----------

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case affirmationMsg:
		m.affirmation = msg.text
		return m, nil

	case summaryMsg:
		// last write wins per day; stale completions for other days are fine
		m.summaries[msg.day] = msg.text
		return m, nil

	case chatReplyMsg:
		m.chatBusy = false
		if msg.err != nil {
			if errors.Is(msg.err, genai.ErrNoCredential) {
				m.chatErr = "No API key set. Run `moodlog key set` first."
			} else {
				m.chatErr = "Couldn't reach the service. Try again."
			}
			return m, nil
		}
		m.chatErr = ""
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeCompose:
		return m.updateCompose(msg)
	case modeMoodAdd:
		return m.updateMoodAdd(msg)
	}

	// chat pane owns most keys while its input is focused
	if m.pane == paneChat && m.chatInput.Focused() {
		switch msg.String() {
		case "esc":
			m.chatInput.Blur()
			return m, nil
		case "enter":
			text := m.chatInput.Value()
			if text == "" || m.chatBusy {
				return m, nil
			}
			m.chatInput.SetValue("")
			m.chatBusy = true
			return m, m.sendChatCmd(text)
		case "tab":
			// fall through to pane switching below
		default:
			var cmd tea.Cmd
			m.chatInput, cmd = m.chatInput.Update(msg)
			return m, cmd
		}
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "tab":
		m.pane = (m.pane + 1) % 4
		if m.pane == paneChat {
			return m, m.chatInput.Focus()
		}
		m.chatInput.Blur()
		return m, nil
	case "shift+tab":
		m.pane = (m.pane + 3) % 4
		if m.pane == paneChat {
			return m, m.chatInput.Focus()
		}
		m.chatInput.Blur()
		return m, nil

	case "n":
		m.mode = modeCompose
		m.composeText.SetValue("")
		m.composeMood = -1
		return m, m.composeText.Focus()

	case "a":
		m.mode = modeMoodAdd
		m.moodName.SetValue("")
		m.moodColor.SetValue("")
		m.moodField = 0
		return m, m.moodName.Focus()
	}

	switch m.pane {
	case paneTimeline:
		return m.updateTimeline(msg)
	case paneChart:
		return m.updateChart(msg)
	case paneCalendar:
		return m.updateCalendar(msg)
	}
	return m, nil
}

func (m Model) updateTimeline(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.cursor < len(m.timeline)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "d":
		if m.cursor < len(m.timeline) {
			m.entries.Remove(m.timeline[m.cursor].Timestamp)
			if err := m.entries.Save(); err != nil {
				m.status = "save failed: " + err.Error()
			} else {
				m.status = "Deleted."
			}
			m.recompute()
		}
	case "x":
		// clear both filters
		m.filter = views.Filter{}
		m.recompute()
	}
	return m, nil
}

func (m Model) updateChart(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.chartCursor < len(m.counts)-1 {
			m.chartCursor++
		}
	case "k", "up":
		if m.chartCursor > 0 {
			m.chartCursor--
		}
	case "enter", " ":
		if m.chartCursor < len(m.counts) {
			// second select on the same mood clears the filter
			m.filter.ToggleMood(m.counts[m.chartCursor].Mood.Name)
			m.recompute()
		}
	case "D":
		if m.chartCursor < len(m.counts) {
			name := m.counts[m.chartCursor].Mood.Name
			if journal.IsBuiltIn(name) {
				m.status = name + " is built-in and can't be removed."
				break
			}
			m.moods.Remove(name)
			if err := m.moods.Save(); err != nil {
				m.status = "save failed: " + err.Error()
			} else {
				m.status = "Removed " + name + "."
			}
			m.recompute()
		}
	}
	return m, nil
}

func (m Model) updateCalendar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "h", "left":
		if m.calCursor > 0 {
			m.calCursor--
		}
	case "l", "right":
		if m.calCursor < len(m.calDays)-1 {
			m.calCursor++
		}
	case "j", "down":
		if m.calCursor+7 < len(m.calDays) {
			m.calCursor += 7
		}
	case "k", "up":
		if m.calCursor-7 >= 0 {
			m.calCursor -= 7
		}
	case "[":
		m.month = m.month.AddDate(0, -1, 0)
		m.calCursor = 0
		m.recompute()
		return m, m.fillSummariesCmd()
	case "]":
		m.month = m.month.AddDate(0, 1, 0)
		m.calCursor = 0
		m.recompute()
		return m, m.fillSummariesCmd()
	case "enter", " ":
		if m.calCursor < len(m.calDays) {
			// second select on the same day clears the filter
			m.filter.ToggleDate(m.calDays[m.calCursor].Date)
			m.recompute()
		}
	}
	return m, nil
}

func (m Model) updateCompose(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeNormal
		m.composeText.Blur()
		return m, nil

	case "enter":
		if m.composeText.Focused() {
			// move from text to mood picking
			m.composeText.Blur()
			if m.composeMood < 0 && m.moods.Len() > 0 {
				m.composeMood = 0
			}
			return m, nil
		}
		// submit; invalid submissions are silently discarded and the form
		// stays open with its contents
		var moodName string
		if m.composeMood >= 0 && m.composeMood < m.moods.Len() {
			moodName = m.moods.All()[m.composeMood].Name
		}
		entry := journal.NewEntry(moodName, m.composeText.Value())
		if !entry.Valid() {
			return m, nil
		}
		m.entries.Add(entry)
		if err := m.entries.Save(); err != nil {
			m.status = "save failed: " + err.Error()
			return m, nil
		}
		m.mode = modeNormal
		m.status = "Saved."
		m.recompute()
		return m, tea.Batch(m.loadAffirmationCmd(), m.fillSummariesCmd())

	case "left", "h":
		if !m.composeText.Focused() && m.composeMood > 0 {
			m.composeMood--
		}
		return m, nil
	case "right", "l":
		if !m.composeText.Focused() && m.composeMood < m.moods.Len()-1 {
			m.composeMood++
		}
		return m, nil
	}

	if m.composeText.Focused() {
		var cmd tea.Cmd
		m.composeText, cmd = m.composeText.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateMoodAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeNormal
		m.moodName.Blur()
		m.moodColor.Blur()
		return m, nil

	case "tab", "enter":
		if m.moodField == 0 {
			m.moodField = 1
			m.moodName.Blur()
			return m, m.moodColor.Focus()
		}
		if msg.String() == "tab" {
			m.moodField = 0
			m.moodColor.Blur()
			return m, m.moodName.Focus()
		}
		name := m.moodName.Value()
		color := m.moodColor.Value()
		if name == "" || !journal.ValidColor(color) {
			m.status = "Need a name and a 6-hex-digit color."
			return m, nil
		}
		m.moods.Add(name, color)
		if err := m.moods.Save(); err != nil {
			m.status = "save failed: " + err.Error()
			return m, nil
		}
		m.mode = modeNormal
		m.moodColor.Blur()
		m.status = "Mood saved."
		m.recompute()
		return m, nil
	}

	var cmd tea.Cmd
	if m.moodField == 0 {
		m.moodName, cmd = m.moodName.Update(msg)
	} else {
		m.moodColor, cmd = m.moodColor.Update(msg)
	}
	return m, cmd
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
