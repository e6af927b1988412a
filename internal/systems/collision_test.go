package systems

import (
	"testing"
)

func TestResolveCollisions_TwoAnts(t *testing.T) {
	_, _, _, b := twoColonyWorld()

	props := []Proposal{
		{AntID: 0, To: b},
		{AntID: 1, To: b},
	}
	rep := ResolveCollisions(props)

	if !rep.HasCollisions() {
		t.Fatal("Expected a collision")
	}
	if !rep.Doomed[b] {
		t.Error("B must be doomed")
	}
	if !rep.Dead[0] || !rep.Dead[1] {
		t.Error("Both ants must die")
	}
	if len(rep.Casualties[b]) != 2 {
		t.Errorf("Expected 2 casualties in B, got %d", len(rep.Casualties[b]))
	}
}

// Порог единственный — "двое и больше". Трое гибнут так же, как двое.
func TestResolveCollisions_ThreeAnts(t *testing.T) {
	_, _, a, _ := twoColonyWorld()

	props := []Proposal{
		{AntID: 3, To: a},
		{AntID: 7, To: a},
		{AntID: 11, To: a},
	}
	rep := ResolveCollisions(props)

	if len(rep.Dead) != 3 {
		t.Errorf("All 3 ants must die, got %d", len(rep.Dead))
	}
	if len(rep.Doomed) != 1 {
		t.Errorf("Exactly one doomed colony expected, got %d", len(rep.Doomed))
	}
}

func TestResolveCollisions_SingleOccupantSurvives(t *testing.T) {
	_, _, a, b := twoColonyWorld()

	props := []Proposal{
		{AntID: 0, To: a},
		{AntID: 1, To: b},
	}
	rep := ResolveCollisions(props)

	if rep.HasCollisions() {
		t.Error("Colonies with exactly one occupant are unaffected")
	}
	if len(rep.Dead) != 0 {
		t.Error("No ant should die")
	}
}

func TestResolveCollisions_Disjoint(t *testing.T) {
	_, _, a, b := twoColonyWorld()

	// Смешанный случай: в A двое, в B один
	props := []Proposal{
		{AntID: 0, To: a},
		{AntID: 1, To: a},
		{AntID: 2, To: b},
	}
	rep := ResolveCollisions(props)

	if !rep.Doomed[a] || rep.Doomed[b] {
		t.Error("Only A should be doomed")
	}
	if rep.Dead[2] {
		t.Error("Ant 2 proposed a safe colony and must survive")
	}
	// dead_this_tick — ровно муравьи, чья цель в обречённом наборе
	if len(rep.Dead) != 2 {
		t.Errorf("Expected 2 dead, got %d", len(rep.Dead))
	}
}

func TestResolveCollisions_Empty(t *testing.T) {
	rep := ResolveCollisions(nil)
	if rep.HasCollisions() || len(rep.Dead) != 0 {
		t.Error("Empty proposals must resolve to an empty report")
	}
}
