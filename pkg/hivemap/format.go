package hivemap

import (
	"fmt"
	"io"

	"github.com/kilian1103/gattaca-game/internal/domain"
	"github.com/kilian1103/gattaca-game/pkg/api"
)

// Write печатает выживший граф: по колонии на строку, выходы в
// фиксированном порядке north, south, east, west независимо от того,
// в каком порядке направления встречались во входном файле.
func Write(w io.Writer, g *domain.Graph, in *domain.Interner) error {
	for _, colony := range g.Colonies() {
		line := in.Resolve(colony)
		for _, tn := range g.Neighbors(colony) {
			line += fmt.Sprintf(" %s=%s", tn.Dir, in.Resolve(tn.Dest))
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// View строит DTO графа для зрительского протокола.
func View(g *domain.Graph, in *domain.Interner) []api.ColonyView {
	out := make([]api.ColonyView, 0, g.Len())
	for _, colony := range g.Colonies() {
		cv := api.ColonyView{Name: in.Resolve(colony)}
		for _, tn := range g.Neighbors(colony) {
			cv.Tunnels = append(cv.Tunnels, api.TunnelView{
				Direction:   tn.Dir.String(),
				Destination: in.Resolve(tn.Dest),
			})
		}
		out = append(out, cv)
	}
	return out
}
