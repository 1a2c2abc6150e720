package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmheroes/mmheroes-go/internal/game"
	"github.com/mmheroes/mmheroes-go/internal/render"
	"github.com/mmheroes/mmheroes-go/internal/replay"
	"github.com/mmheroes/mmheroes-go/internal/scores"
)

// The game always renders into the classic text-mode grid.
const (
	canvasWidth  = 80
	canvasHeight = 24
)

// Model is the Bubble Tea model driving one game session. It feeds key
// presses into the logic core and replays the resulting command stream
// onto a canvas.
type Model struct {
	game     *game.Game
	canvas   *render.Canvas
	keys     KeyMap
	help     help.Model
	store    *scores.Store
	recorder *replay.Recorder

	playerName string
	seed       uint64

	lastEnd  *game.GameEndScreen
	frameW   int
	frameH   int
	saved    bool
	quitting bool
}

// NewModel creates a session model and pumps the engine to its first
// prompt. A nil store disables persistence; a non-nil recorder captures
// every input for later replay.
func NewModel(mode game.Mode, seed uint64, playerName string, store *scores.Store, recorder *replay.Recorder) Model {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	var fame []game.HighScore
	if store != nil {
		// Best-effort: an empty hall of fame is fine.
		fame, _ = store.HallOfFame()
	}

	g := game.NewGame(mode, seed, fame)
	g.Start()

	m := Model{
		game:       g,
		canvas:     render.NewCanvas(canvasWidth, canvasHeight),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		store:      store,
		recorder:   recorder,
		playerName: playerName,
		seed:       seed,
	}
	m.applyCommands()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.frameW = msg.Width
		m.frameH = msg.Height
		return m, nil

	case tea.KeyMsg:
		input, quit := m.keys.MapKey(msg)
		if quit {
			m.game.Close()
			m.quitting = true
			return m, tea.Quit
		}
		if m.recorder != nil {
			m.recorder.Record(input)
		}
		running := m.game.ContinueGame(input)
		m.applyCommands()
		m.captureEnd()
		if !running {
			m.saveRun()
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}
	return m, nil
}

// applyCommands replays the accumulated command stream onto the canvas.
func (m *Model) applyCommands() {
	// The core only emits streams it encoded itself; a decode failure
	// here would be a bug in the codec, not bad input.
	//nolint:errcheck
	m.canvas.ApplyStream(m.game.Commands())
	m.game.ResetCommands()
}

// captureEnd remembers the final report so the run can be persisted
// after the engine terminates.
func (m *Model) captureEnd() {
	if end, ok := m.game.Screen().(game.GameEndScreen); ok {
		m.lastEnd = &end
	}
}

// saveRun persists the finished game once.
func (m *Model) saveRun() {
	if m.saved || m.store == nil || m.lastEnd == nil {
		return
	}
	m.saved = true
	state := &m.lastEnd.State

	record := scores.RunRecord{
		Name:        m.playerName,
		Score:       FinalScore(state),
		Seed:        m.seed,
		PassedExams: state.Player.PassedExamCount(),
	}
	if cause, dead := state.Player.CauseOfDeath(); dead {
		record.CauseOfDeath = cause.String()
	}
	// Best-effort save, quitting continues regardless.
	//nolint:errcheck
	m.store.SaveRun(record)
}

// FinalScore grades a finished run: passed exams dominate, leftover
// health and money break ties.
func FinalScore(s *game.State) int16 {
	score := int16(s.Player.PassedExamCount()) * 100
	score += int16(s.Player.Health)
	score += int16(s.Player.Money)
	if _, dead := s.Player.CauseOfDeath(); dead {
		score /= 2
	}
	return score
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Render(RenderCanvas(m.canvas))
	view := frame + "\n" + m.help.View(m.keys)

	if m.frameW > 0 && m.frameH > 0 {
		return lipgloss.Place(m.frameW, m.frameH, lipgloss.Center, lipgloss.Center, view)
	}
	return view
}

// Recording returns the recorded input sequence, or "" when recording
// was disabled.
func (m Model) Recording() string {
	if m.recorder == nil {
		return ""
	}
	return m.recorder.String()
}

// Run starts a local terminal session and blocks until it ends. It
// returns the input recording when one was requested.
func Run(mode game.Mode, seed uint64, playerName string, store *scores.Store, record bool) (string, error) {
	var recorder *replay.Recorder
	if record {
		recorder = &replay.Recorder{}
	}

	model := NewModel(mode, seed, playerName, store, recorder)
	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return "", err
	}
	if m, ok := final.(Model); ok {
		return m.Recording(), nil
	}
	return "", nil
}
