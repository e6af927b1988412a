package systems

import (
	"testing"

	"github.com/kilian1103/gattaca-game/internal/domain"
)

func TestApplyDestruction(t *testing.T) {
	g, _, a, b := twoColonyWorld()

	ApplyDestruction(g, map[domain.Symbol]bool{b: true})

	if g.Contains(b) {
		t.Error("Doomed colony must be removed")
	}
	if !g.Contains(a) {
		t.Error("Survivor must remain")
	}
	// Туннель A north=B обязан быть оборван
	if ns := g.Neighbors(a); len(ns) != 0 {
		t.Errorf("A must have no exits left, got %v", ns)
	}
}

// Идемпотентность early-exit: с пустым набором мутатор — no-op
func TestApplyDestruction_EmptySet(t *testing.T) {
	g, _, a, b := twoColonyWorld()

	ApplyDestruction(g, map[domain.Symbol]bool{})

	if g.Len() != 2 {
		t.Error("Graph size changed")
	}
	nsA, nsB := g.Neighbors(a), g.Neighbors(b)
	if len(nsA) != 1 || nsA[0].Dest != b {
		t.Error("A's tunnel changed")
	}
	if len(nsB) != 1 || nsB[0].Dest != a {
		t.Error("B's tunnel changed")
	}
}

// После мутации ни один выживший не ссылается на обречённую колонию,
// даже если в неё вело несколько туннелей из разных мест.
func TestApplyDestruction_DanglingInvariant(t *testing.T) {
	g, syms := ringWorld(5)
	doomed := map[domain.Symbol]bool{syms[2]: true, syms[4]: true}

	ApplyDestruction(g, doomed)

	for _, c := range g.Colonies() {
		for _, tn := range g.Neighbors(c) {
			if doomed[tn.Dest] {
				t.Errorf("Colony %d still points at doomed %d", c, tn.Dest)
			}
		}
	}
	if g.Len() != 3 {
		t.Errorf("Expected 3 survivors, got %d", g.Len())
	}
}
