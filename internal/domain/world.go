package domain

import "sort"

// Tunnel — направленное ребро: выход из колонии в заданном направлении.
type Tunnel struct {
	Dir  Direction
	Dest Symbol
}

// Exits — исходящие туннели одной колонии, по слоту на направление.
// NilSymbol в слоте означает отсутствие туннеля.
type Exits [directionCount]Symbol

// Graph — карта мира: колония -> её исходящие туннели.
//
// Это единственное мутируемое разделяемое состояние симуляции.
// Во время фазы движения граф только читается; все мутации
// (RemoveColony, PruneDangling) выполняет оркестратор между фазами.
type Graph struct {
	colonies map[Symbol]*Exits
}

func NewGraph() *Graph {
	return &Graph{colonies: make(map[Symbol]*Exits)}
}

// AddColony регистрирует колонию без выходов. Идемпотентно.
func (g *Graph) AddColony(c Symbol) {
	if _, ok := g.colonies[c]; !ok {
		g.colonies[c] = &Exits{}
	}
}

// AddTunnel добавляет (или перезаписывает) выход из src.
// Обе колонии регистрируются, чтобы в графе не было висячих ссылок.
func (g *Graph) AddTunnel(src Symbol, dir Direction, dest Symbol) {
	g.AddColony(src)
	g.AddColony(dest)
	g.colonies[src][dir] = dest
}

// Contains сообщает, существует ли колония.
func (g *Graph) Contains(c Symbol) bool {
	_, ok := g.colonies[c]
	return ok
}

// Neighbors возвращает выходы колонии в каноническом порядке направлений.
// Для несуществующей колонии возвращает nil. Туннель, чей пункт назначения
// уже не существует, считается отсутствующим: фаза движения не должна
// падать из-за повреждённой ссылки.
func (g *Graph) Neighbors(c Symbol) []Tunnel {
	exits, ok := g.colonies[c]
	if !ok {
		return nil
	}
	var out []Tunnel
	for _, dir := range DirectionsInOrder {
		dest := exits[dir]
		if dest == NilSymbol {
			continue
		}
		if !g.Contains(dest) {
			continue
		}
		out = append(out, Tunnel{Dir: dir, Dest: dest})
	}
	return out
}

// RemoveColony удаляет колонию вместе с её исходящими туннелями.
// No-op, если колонии нет.
func (g *Graph) RemoveColony(c Symbol) {
	delete(g.colonies, c)
}

// PruneDangling обрывает у выживших колоний все туннели,
// ведущие в обречённые. Сами обречённые колонии к этому моменту
// уже удалены — правка касается только чужих выходов.
func (g *Graph) PruneDangling(doomed map[Symbol]bool) {
	if len(doomed) == 0 {
		return
	}
	for _, exits := range g.colonies {
		for dir, dest := range exits {
			if dest != NilSymbol && doomed[dest] {
				exits[dir] = NilSymbol
			}
		}
	}
}

// Len возвращает количество колоний.
func (g *Graph) Len() int {
	return len(g.colonies)
}

// Colonies возвращает все колонии, отсортированные по Symbol.
// Сортировка даёт детерминированный порядок спавна и печати
// при фиксированном сиде (порядок мапы в Go случайный).
func (g *Graph) Colonies() []Symbol {
	out := make([]Symbol, 0, len(g.colonies))
	for c := range g.colonies {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
