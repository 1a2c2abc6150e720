package game

import "testing"

func newTestEngine(t *testing.T, seed uint64) *Engine {
	t.Helper()
	e := NewEngine(ModeNormal, seed, nil)
	e.state = newState(e.rng, NewPlayerWithStyle(e.rng, RandomStudent))
	return e
}

func TestKuzmenkoOfferNeedsCharisma(t *testing.T) {
	e := newTestEngine(t, 9)

	e.state.Player.Charisma = 0
	for i := 0; i < 100; i++ {
		if e.kuzmenkoOffersExam() {
			t.Fatal("zero charisma talked Kuzmenko into an extra sitting")
		}
	}

	e.state.Player.Charisma = 16
	for i := 0; i < 100; i++ {
		if !e.kuzmenkoOffersExam() {
			t.Fatal("unbeatable charisma got refused")
		}
	}
}

func TestKuzmenkoCapCheckedBeforeIncrement(t *testing.T) {
	e := newTestEngine(t, 9)
	e.state.Player.Charisma = 16

	// The counter is compared before it is incremented, so a third
	// sitting slips past the intended cap of two.
	e.state.addAdditionalCSExam()
	e.state.addAdditionalCSExam()
	if !e.kuzmenkoOffersExam() {
		t.Fatal("two sittings on record closed the door on the third")
	}

	e.state.addAdditionalCSExam()
	if e.kuzmenkoOffersExam() {
		t.Fatal("a fourth sitting got offered past the gate")
	}
}

func TestTravelPenaltiesPerEdge(t *testing.T) {
	e := newTestEngine(t, 3)
	e.state.Player.Health = 50

	// Dorm -> Mausoleum crosses the whole campus.
	e.dispatch(Act(ActionGoToMausoleum))
	if e.state.location != Mausoleum {
		t.Fatalf("location: got %v, want the mausoleum", e.state.location)
	}
	if got := e.state.Player.Health; got != 50-largeTravelPenalty {
		t.Fatalf("health after the long haul: got %d, want %d", got, 50-largeTravelPenalty)
	}

	// Mausoleum -> PUNK and back are short hops.
	e.dispatch(Act(ActionGoFromMausoleumToPunk))
	if got := e.state.Player.Health; got != 50-largeTravelPenalty-smallTravelPenalty {
		t.Fatalf("health after the hop to PUNK: got %d", got)
	}
	e.dispatch(Act(ActionGoToMausoleum))
	if got := e.state.Player.Health; got != 50-largeTravelPenalty-2*smallTravelPenalty {
		t.Fatalf("health after the hop back: got %d", got)
	}

	// Mausoleum -> Dorm is the long haul again.
	e.dispatch(Act(ActionGoFromMausoleumToDorm))
	if e.state.location != Dorm {
		t.Fatalf("location: got %v, want the dorm", e.state.location)
	}
	if got := e.state.Player.Health; got != 50-2*largeTravelPenalty-2*smallTravelPenalty {
		t.Fatalf("health after the haul home: got %d", got)
	}
}
