// Package game implements the deterministic logic core of Heroes of
// Math-Mech: a turn-based simulation of a student's six-day exam week.
// The package is pure logic with no terminal dependencies; the platform
// layer feeds inputs and replays the rendering-command stream.
package game

// Game is the input-driven surface of the engine. It owns the menu
// cursor: arrow keys move the highlight without touching game logic (and
// therefore without advancing the RNG); Enter resumes the coroutine with
// the highlighted action.
type Game struct {
	engine *Engine
	cursor int
}

// NewGame creates a game in the given mode with the given seed.
func NewGame(mode Mode, seed uint64, highScores []HighScore) *Game {
	return &Game{engine: NewEngine(mode, seed, highScores)}
}

// Start pumps the engine to its first prompt. Must be called once,
// before ContinueGame.
func (g *Game) Start() {
	g.engine.start()
}

// ContinueGame feeds one input into the game. It returns false when the
// game has reached the terminal screen and no further input is expected.
func (g *Game) ContinueGame(input Input) bool {
	if g.engine.finished {
		return false
	}
	if input == EOF {
		g.engine.abort()
		return false
	}

	actions := g.engine.AvailableActions()
	if len(actions) == 1 && actions[0].Kind == ActionAnyKey {
		return g.resume(actions[0])
	}

	switch input {
	case KeyUp:
		g.cursor--
		if g.cursor < 0 {
			g.cursor = len(actions) - 1
		}
		g.engine.renderPrompt(g.cursor)
		return true
	case KeyDown:
		g.cursor++
		if g.cursor >= len(actions) {
			g.cursor = 0
		}
		g.engine.renderPrompt(g.cursor)
		return true
	case Enter:
		return g.resume(actions[g.cursor])
	default:
		// Unmapped keys are ignored on action menus.
		return true
	}
}

func (g *Game) resume(action Action) bool {
	g.cursor = 0
	return g.engine.perform(action)
}

// Screen returns the currently published screen.
func (g *Game) Screen() Screen { return g.engine.Screen() }

// AvailableActions returns the published action menu.
func (g *Game) AvailableActions() []Action { return g.engine.AvailableActions() }

// Cursor returns the highlighted menu index.
func (g *Game) Cursor() int { return g.cursor }

// Commands returns the accumulated rendering-command stream.
func (g *Game) Commands() []byte { return g.engine.Commands() }

// ResetCommands discards the accumulated command stream.
func (g *Game) ResetCommands() { g.engine.ResetCommands() }

// Finished reports whether the game reached the terminal screen.
func (g *Game) Finished() bool { return g.engine.finished }

// Close tears down the logic goroutine. Safe to call at any point;
// after Close the game is finished.
func (g *Game) Close() {
	g.engine.abort()
}
