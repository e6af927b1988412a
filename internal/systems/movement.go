package systems

import (
	"sync"

	"github.com/kilian1103/gattaca-game/internal/domain"
	"github.com/kilian1103/gattaca-game/pkg/utils"
)

// Proposal — предложенная позиция муравья на следующий тик.
// Фаза движения только предлагает; коммитит позиции резолвер коллизий.
type Proposal struct {
	AntID int
	From  domain.Symbol
	To    domain.Symbol
}

// ProposeMoves вычисляет предложенный ход для каждого живого муравья.
//
// Граф не меняется! Воркеры получают его только на чтение и пишут
// каждый в свой срез общего буфера результатов, поэтому никакой
// синхронизации внутри фазы не нужно — только барьер в конце.
//
// Муравей без выходов остается на месте (это тоже считается ходом).
// При нескольких выходах пункт назначения выбирается равновероятно;
// два направления в одну и ту же колонию — два независимых ребра,
// такая колония выпадает с пропорционально большей вероятностью.
func ProposeMoves(ants []domain.Ant, g *domain.Graph, workers int, seed int64, tick int) []Proposal {
	proposals := make([]Proposal, len(ants))
	if len(ants) == 0 {
		return proposals
	}
	if workers < 1 {
		workers = 1
	}

	// Чанки муравьев по воркерам, как минимум один муравей на чанк
	chunk := len(ants) / workers
	if chunk < 1 {
		chunk = 1
	}

	var wg sync.WaitGroup
	for start := 0; start < len(ants); start += chunk {
		end := start + chunk
		if end > len(ants) {
			end = len(ants)
		}

		wg.Add(1)
		go func(ants []domain.Ant, out []Proposal) {
			defer wg.Done()
			for i := range ants {
				out[i] = proposeOne(ants[i], g, seed, tick)
			}
		}(ants[start:end], proposals[start:end])
	}
	wg.Wait()

	return proposals
}

// proposeOne — логика хода одного муравья.
//
// Случайность выводится из ключа (сид, тик, ID муравья), а не из
// общего генератора: результат не зависит ни от contention между
// воркерами, ни от разбиения на чанки.
func proposeOne(ant domain.Ant, g *domain.Graph, seed int64, tick int) Proposal {
	p := Proposal{AntID: ant.ID, From: ant.Pos, To: ant.Pos}

	exits := g.Neighbors(ant.Pos)
	if len(exits) == 0 {
		// Муравей заперт — остается в той же колонии
		return p
	}

	p.To = exits[utils.PickIndex(seed, tick, ant.ID, len(exits))].Dest
	return p
}
