package systems

import "github.com/kilian1103/gattaca-game/internal/domain"

// ApplyDestruction применяет уничтожение колоний к графу.
//
// Порядок важен: сначала удаляются сами обречённые колонии, затем у
// выживших обрываются туннели в них. PruneDangling обязан видеть весь
// набор обречённых, хотя их записи в графе уже удалены — правка идет
// по выходам ДРУГИХ колоний.
//
// С пустым набором функция ничего не делает, поэтому пропуск этого
// шага на тиках без коллизий — чистая оптимизация.
func ApplyDestruction(g *domain.Graph, doomed map[domain.Symbol]bool) {
	for colony := range doomed {
		g.RemoveColony(colony)
	}
	g.PruneDangling(doomed)
}
