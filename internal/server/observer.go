package server

import (
	"github.com/kilian1103/gattaca-game/internal/domain"
	"github.com/kilian1103/gattaca-game/internal/engine"
	"github.com/kilian1103/gattaca-game/internal/network"
	"github.com/kilian1103/gattaca-game/pkg/api"
	"github.com/kilian1103/gattaca-game/pkg/hivemap"
	"github.com/kilian1103/gattaca-game/pkg/utils"
)

func newSessionID() string {
	return utils.GenerateID()
}

// Observer транслирует уведомления движка в зрительский протокол.
// Граф и таблица символов нужны только для финального слепка;
// читаются они уже после остановки цикла тиков.
type Observer struct {
	Hub      *network.Broadcaster
	Graph    *domain.Graph
	Interner *domain.Interner
}

func NewObserver(hub *network.Broadcaster, g *domain.Graph, in *domain.Interner) *Observer {
	return &Observer{Hub: hub, Graph: g, Interner: in}
}

func (o *Observer) ColonyDestroyed(ev domain.DestructionEvent) {
	o.Hub.Broadcast(api.ServerEvent{
		Type:   api.EventDestroyed,
		Tick:   ev.Tick,
		Colony: ev.Name,
		Ants:   ev.Ants,
	})
}

func (o *Observer) TickCompleted(sum engine.TickSummary) {
	o.Hub.Broadcast(api.ServerEvent{
		Type:     api.EventTick,
		Tick:     sum.Tick,
		Alive:    sum.Alive,
		Colonies: sum.Colonies,
	})
}

func (o *Observer) SimulationFinished(res engine.Result) {
	o.Hub.Broadcast(api.ServerEvent{
		Type:     api.EventFinished,
		Tick:     res.Ticks,
		Alive:    res.AntsAlive,
		Colonies: res.ColoniesLeft,
		Outcome:  res.State.String(),
		Graph:    hivemap.View(o.Graph, o.Interner),
	})
}
