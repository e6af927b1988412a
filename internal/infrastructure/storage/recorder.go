package storage

import (
	"github.com/kilian1103/gattaca-game/internal/domain"
	"github.com/kilian1103/gattaca-game/internal/engine"
	"github.com/kilian1103/gattaca-game/pkg/logger"
)

// Recorder — наблюдатель движка, копящий ленту разрушений в памяти.
// Save вызывается после остановки цикла тиков.
type Recorder struct {
	Session *ReplaySession
}

func NewRecorder(seed int64, antCount int) *Recorder {
	return &Recorder{Session: NewSession(seed, antCount)}
}

func (r *Recorder) ColonyDestroyed(ev domain.DestructionEvent) {
	r.Session.Events = append(r.Session.Events, ev)
}

func (r *Recorder) TickCompleted(engine.TickSummary) {}

func (r *Recorder) SimulationFinished(engine.Result) {}

// Save пишет накопленную ленту в файл.
func (r *Recorder) Save(path string) error {
	if err := Save(path, r.Session); err != nil {
		return err
	}
	logger.Log.WithField("path", path).WithField("events", len(r.Session.Events)).
		Info("Replay saved")
	return nil
}
