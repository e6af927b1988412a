// Package hivemap загружает карту мира, расселяет муравьев и
// форматирует итоговый граф. Это внешние коллабораторы ядра:
// никакой логики координации здесь нет, только I/O.
package hivemap

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kilian1103/gattaca-game/internal/domain"
	"github.com/kilian1103/gattaca-game/pkg/logger"
)

// Load читает файл карты и строит граф мира.
// Все имена интернируются здесь: после загрузки таблица символов
// только читается.
func Load(path string) (*domain.Graph, *domain.Interner, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open map %s: %w", path, err)
	}
	defer f.Close()

	g, in := Parse(f)
	return g, in, nil
}

// Parse разбирает карту построчно. Формат строки:
//
//	<колония> [<направление>=<колония>]*
//
// Пустые и битые строки (и битые пары внутри строки) пропускаются
// молча — это не ошибка, симуляция идет по тому, что распарсилось.
func Parse(r io.Reader) (*domain.Graph, *domain.Interner) {
	g := domain.NewGraph()
	in := domain.NewInterner()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		colony := in.Intern(parts[0])
		g.AddColony(colony)

		for _, pair := range parts[1:] {
			dirName, destName, ok := strings.Cut(pair, "=")
			if !ok || destName == "" {
				logger.Log.WithField("pair", pair).Debug("Skipping malformed tunnel")
				continue
			}
			dir, ok := domain.ParseDirection(dirName)
			if !ok {
				logger.Log.WithField("pair", pair).Debug("Skipping unknown direction")
				continue
			}
			// AddTunnel регистрирует и пункт назначения: колония,
			// упомянутая только справа, получает пустой узел, и граф
			// остается замкнутым (нет висячих ссылок)
			g.AddTunnel(colony, dir, in.Intern(destName))
		}
	}

	return g, in
}
