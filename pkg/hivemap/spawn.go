package hivemap

import (
	"fmt"
	"math/rand"

	"github.com/kilian1103/gattaca-game/internal/domain"
	"github.com/kilian1103/gattaca-game/pkg/logger"
)

// SpawnAnts расселяет n муравьев по существующим колониям равномерно
// случайно (с повторениями). ID назначаются последовательно от 0 и
// больше никогда не переиспользуются.
func SpawnAnts(g *domain.Graph, n int, rng *rand.Rand) ([]domain.Ant, error) {
	colonies := g.Colonies()
	if len(colonies) == 0 {
		return nil, fmt.Errorf("world map is empty")
	}
	if n > len(colonies) {
		logger.Log.Warn("Number of ants exceeds number of colonies. Some colonies will have multiple ants.")
	}

	ants := make([]domain.Ant, n)
	for i := 0; i < n; i++ {
		ants[i] = domain.Ant{
			ID:  i,
			Pos: colonies[rng.Intn(len(colonies))],
		}
	}
	return ants, nil
}
