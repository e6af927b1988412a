package systems

import "github.com/kilian1103/gattaca-game/internal/domain"

// CollisionReport — итог резолва коллизий одного тика.
// Наборы эфемерны: пересчитываются каждый тик и не переживают его.
type CollisionReport struct {
	// Doomed — колонии с двумя и более муравьями.
	Doomed map[domain.Symbol]bool

	// Dead — муравьи, оказавшиеся в обречённой колонии.
	Dead map[int]bool

	// Casualties — погибшие по колониям, в порядке обработки
	// предложений. Нужен для уведомлений об уничтожении.
	Casualties map[domain.Symbol][]int
}

// HasCollisions сообщает, нужен ли этому тику мутатор мира.
func (r CollisionReport) HasCollisions() bool {
	return len(r.Doomed) > 0
}

// ResolveCollisions группирует предложенные позиции по колониям и
// помечает колонии с >= 2 муравьями как обречённые. Порог единственный:
// два, три, десять муравьёв — все погибают одинаково.
//
// Выполняется строго в один поток на оркестраторе.
func ResolveCollisions(proposals []Proposal) CollisionReport {
	rep := CollisionReport{
		Doomed:     make(map[domain.Symbol]bool),
		Dead:       make(map[int]bool),
		Casualties: make(map[domain.Symbol][]int),
	}

	occupants := make(map[domain.Symbol][]int, len(proposals))
	for _, p := range proposals {
		occupants[p.To] = append(occupants[p.To], p.AntID)
	}

	for colony, ids := range occupants {
		if len(ids) < 2 {
			continue
		}
		rep.Doomed[colony] = true
		rep.Casualties[colony] = ids
		for _, id := range ids {
			rep.Dead[id] = true
		}
	}

	return rep
}
