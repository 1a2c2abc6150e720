package game

import (
	"fmt"

	"github.com/mmheroes/mmheroes-go/internal/random"
	"github.com/mmheroes/mmheroes-go/internal/render"
	"github.com/mmheroes/mmheroes-go/internal/tiny"
)

// HighScore is one hall-of-fame entry, passed through from the outer
// I/O layer. The core neither reads nor writes the score file.
type HighScore struct {
	Name  string
	Score int16
}

// Engine runs the game logic as a single cooperative coroutine. The
// logic goroutine suspends inside publish() and resumes when the owner
// injects the next action; between a resume and the following publish
// exactly one goroutine is runnable, so execution is deterministic.
type Engine struct {
	rng   *random.Rng
	mode  Mode
	state State

	screen   Screen
	actions  tiny.Vec16[Action]
	commands render.CommandBuffer

	highScores []HighScore

	surrendered bool

	promptCh chan struct{}
	resumeCh chan Action
	quitCh   chan struct{}
	doneCh   chan struct{}
	finished bool
	started  bool
}

// abortSentinel unwinds the logic goroutine when the owner abandons the
// game mid-prompt.
type abortSentinel struct{}

// NewEngine creates an engine for the given mode and seed. The high
// score list is the decoded pass-through from the outer shell; it may be
// nil.
func NewEngine(mode Mode, seed uint64, highScores []HighScore) *Engine {
	return &Engine{
		rng:        random.New(seed),
		mode:       mode,
		highScores: highScores,
		promptCh:   make(chan struct{}),
		resumeCh:   make(chan Action),
		quitCh:     make(chan struct{}),
		doneCh:     make(chan struct{}),
	}
}

// Screen returns the currently published screen.
func (e *Engine) Screen() Screen { return e.screen }

// AvailableActions returns the published action menu. The slice aliases
// engine state and is valid until the next resume.
func (e *Engine) AvailableActions() []Action { return e.actions.Slice() }

// Commands returns the accumulated rendering-command stream.
func (e *Engine) Commands() []byte { return e.commands.Bytes() }

// ResetCommands discards the accumulated command stream, typically after
// the platform layer has replayed it onto its canvas.
func (e *Engine) ResetCommands() { e.commands.Reset() }

// HighScores returns the current hall-of-fame list.
func (e *Engine) HighScores() []HighScore { return e.highScores }

// start launches the logic goroutine and waits for the first prompt.
func (e *Engine) start() {
	if e.started {
		panic("game: engine started twice")
	}
	e.started = true
	go e.run()
	e.await()
}

// perform resumes the coroutine with the chosen action and waits for the
// next prompt. Returns false when the computation terminated. Passing an
// action that is not in the published set is a programmer error.
func (e *Engine) perform(action Action) bool {
	if e.finished {
		panic("game: perform after termination")
	}
	if !tiny.Contains(&e.actions, action) {
		panic(fmt.Sprintf("game: action %v is not available on screen %d",
			action, e.screen.Kind()))
	}
	e.resumeCh <- action
	return e.await()
}

// await blocks until the logic goroutine publishes a prompt or finishes.
func (e *Engine) await() bool {
	select {
	case <-e.promptCh:
		return true
	case <-e.doneCh:
		e.finished = true
		return false
	}
}

// abort tears down the logic goroutine.
func (e *Engine) abort() {
	if e.finished || !e.started {
		e.finished = true
		e.screen = Terminal
		e.actions.Clear()
		return
	}
	close(e.quitCh)
	<-e.doneCh
	e.finished = true
}

// run is the body of the logic goroutine.
func (e *Engine) run() {
	defer close(e.doneCh)
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(abortSentinel); ok {
				e.screen = Terminal
				e.actions.Clear()
				return
			}
			panic(r)
		}
	}()
	e.gameLoop()
	e.screen = Terminal
	e.actions.Clear()
}

// publish suspends the coroutine on a prompt: the screen and action set
// become observable, the command stream is extended, and the coroutine
// parks until the owner injects one of the published actions.
func (e *Engine) publish(screen Screen, actions ...Action) Action {
	if len(actions) == 0 {
		panic("game: publishing an empty action set")
	}
	e.screen = screen
	e.actions.Clear()
	for _, a := range actions {
		e.actions.Push(a)
	}
	e.renderPrompt(0)

	select {
	case e.promptCh <- struct{}{}:
	case <-e.quitCh:
		panic(abortSentinel{})
	}
	select {
	case a := <-e.resumeCh:
		return a
	case <-e.quitCh:
		panic(abortSentinel{})
	}
}

// waitAnyKey publishes a screen whose only action is "press any key".
func (e *Engine) waitAnyKey(screen Screen) {
	e.publish(screen, Act(ActionAnyKey))
}

// gameLoop is the top-level flow: intro, parameter selection, the exam
// week, the end-game screens, and optional restart.
func (e *Engine) gameLoop() {
	e.waitAnyKey(Intro)
	for {
		style := e.selectPlayStyle()
		player := NewPlayerWithStyle(e.rng, style)
		e.state = newState(e.rng, player)

		e.waitAnyKey(Ding)
		e.waitAnyKey(TimetableScreen{State: e.state})

		e.playWeek()

		e.waitAnyKey(GameEndScreen{State: e.state})
		e.waitAnyKey(HighScoresScreen{Scores: e.highScores})

		again := e.publish(WannaTryAgain, Act(ActionTryAgain), Act(ActionQuitGame))
		if again.Kind == ActionQuitGame {
			e.waitAnyKey(Disclaimer)
			return
		}
		e.waitAnyKey(Ding)
	}
}

// selectPlayStyle prompts for initial parameters depending on the mode.
func (e *Engine) selectPlayStyle() PlayStyle {
	if e.mode == ModeNormal {
		return RandomStudent
	}
	actions := []Action{
		StyleAction(RandomStudent),
		StyleAction(CleverStudent),
		StyleAction(ImpudentStudent),
		StyleAction(SociableStudent),
	}
	if e.mode == ModeGod {
		actions = append(actions, StyleAction(GodMode))
	}
	chosen := e.publish(InitialParametersScreen{Mode: e.mode}, actions...)
	return chosen.PlayStyle()
}

// playWeek drives the scene router until the player dies or gives up.
func (e *Engine) playWeek() {
	e.surrendered = false
	for !e.state.Player.IsDead() && !e.surrendered {
		e.sceneRouter()
		if e.state.currentDay >= NumDays && !e.state.Player.IsDead() {
			e.state.Player.Die(TimeOut)
		}
	}
}

// --- scheduler -------------------------------------------------------

// hourPass advances the clock by one hour, applying the midnight
// transition and the standing side effects.
func (e *Engine) hourPass() {
	e.state.terkomHasPlaces = true
	e.state.refreshClassmateLocations()
	e.state.currentTime++

	if e.state.location == PDMI {
		if subject, ok := e.state.ExamInProgress(); ok && subject == GeometryAndTopology {
			e.state.Player.SpendHealth(6, DjugIsDeadly)
			e.state.Player.SetKnowsDJuG()
		}
	}

	if e.state.Player.Charisma <= 0 {
		e.state.Player.Health = 0
		e.state.Player.Die(Paranoia)
	}

	if e.state.location == ComputerClass &&
		e.state.currentTime >= ComputerClassClosesAt &&
		!e.state.Player.IsDead() {
		e.waitAnyKey(ComputerClassClosingScreen{State: e.state})
		e.state.location = PUNK
	}

	if e.state.currentTime >= 24 {
		e.state.currentTime = 0
		e.state.currentDay++
		e.midnight()
	}
}

// midnight handles the day rollover for each location.
func (e *Engine) midnight() {
	if e.checkTimeOut() || e.state.Player.IsDead() {
		return
	}
	switch e.state.location {
	case PUNK:
		e.waitAnyKey(Midnight)
		e.state.location = Dorm
		e.state.Player.SpendHealth(3, OnTheWayToDorm)
	case Mausoleum:
		e.waitAnyKey(Midnight)
		e.state.location = Dorm
		e.state.Player.SpendHealth(3, OnTheWayToDorm)
	case Dorm:
		e.waitAnyKey(CantStayAwake)
		e.sleep()
	case PDMI:
		// The night train home is not kind.
		e.state.Player.SpendHealth(HealthLevel(e.rng.Index(10)), CorpseFoundInTheTrain)
		e.waitAnyKey(TrainScreen{State: e.state, Variant: NightTrainHome, ToPDMI: false})
		e.state.location = Dorm
	case ComputerClass:
		// The class closes at 20:00, being inside at midnight is
		// unreachable.
		panic("game: midnight inside the computer class")
	}
}

// checkTimeOut records the time-out death once the seventh day begins.
func (e *Engine) checkTimeOut() bool {
	if e.state.currentDay >= NumDays {
		e.state.Player.Die(TimeOut)
		return true
	}
	return false
}
