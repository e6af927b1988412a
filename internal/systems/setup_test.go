package systems

import (
	"github.com/kilian1103/gattaca-game/internal/domain"
)

// Helper: строит мир из двух колоний со взаимными туннелями
//
//	A north=B
//	B south=A
func twoColonyWorld() (*domain.Graph, *domain.Interner, domain.Symbol, domain.Symbol) {
	in := domain.NewInterner()
	a, b := in.Intern("A"), in.Intern("B")

	g := domain.NewGraph()
	g.AddTunnel(a, domain.North, b)
	g.AddTunnel(b, domain.South, a)

	return g, in, a, b
}

// Helper: кольцо из n колоний, у каждой единственный выход east в следующую
func ringWorld(n int) (*domain.Graph, []domain.Symbol) {
	in := domain.NewInterner()
	g := domain.NewGraph()

	syms := make([]domain.Symbol, n)
	for i := 0; i < n; i++ {
		syms[i] = in.Intern(string(rune('A' + i)))
	}
	for i := 0; i < n; i++ {
		g.AddTunnel(syms[i], domain.East, syms[(i+1)%n])
	}
	return g, syms
}
