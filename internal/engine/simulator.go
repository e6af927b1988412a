package engine

import (
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kilian1103/gattaca-game/internal/domain"
	"github.com/kilian1103/gattaca-game/internal/systems"
	"github.com/kilian1103/gattaca-game/pkg/logger"
)

// State — состояние конечного автомата симулятора.
type State uint8

const (
	// Running — цикл тиков продолжается.
	Running State = iota
	// AllDead — муравьев не осталось, симуляция завершена.
	AllDead
	// IterationLimit — достигнут потолок итераций, муравьи еще живы.
	IterationLimit
)

func (s State) String() string {
	switch s {
	case Running:
		return "RUNNING"
	case AllDead:
		return "ALL_DEAD"
	case IterationLimit:
		return "ITERATION_LIMIT"
	}
	return "UNKNOWN"
}

// TickSummary — сводка одного завершенного тика для наблюдателей.
type TickSummary struct {
	Tick      int
	Alive     int
	Colonies  int
	Destroyed int // колоний уничтожено в ЭТОМ тике
}

// Result — итог прогона симуляции.
type Result struct {
	State             State
	Ticks             int
	AntsSpawned       int
	AntsAlive         int
	ColoniesLeft      int
	ColoniesDestroyed int
	Duration          time.Duration
}

// Observer получает уведомления симуляции (консоль, зрители, реплей).
// Колбэки вызываются из потока оркестратора между фазами.
type Observer interface {
	ColonyDestroyed(ev domain.DestructionEvent)
	TickCompleted(sum TickSummary)
	SimulationFinished(res Result)
}

// Simulator владеет всем состоянием прогона: графом, реестром муравьев
// и циклом тиков. Граф и реестр мутирует только поток, вызвавший Run;
// воркеры фазы движения получают граф строго на чтение.
type Simulator struct {
	cfg      Config
	graph    *domain.Graph
	interner *domain.Interner

	ants  []domain.Ant // живые
	state State
	tick  int

	spawned   int
	destroyed int

	observers []Observer
}

func New(cfg Config, g *domain.Graph, in *domain.Interner, ants []domain.Ant) *Simulator {
	return &Simulator{
		cfg:      cfg,
		graph:    g,
		interner: in,
		ants:     ants,
		state:    Running,
		spawned:  len(ants),
	}
}

// AddObserver регистрирует наблюдателя. Вызывать до Run.
func (s *Simulator) AddObserver(o Observer) {
	s.observers = append(s.observers, o)
}

func (s *Simulator) State() State { return s.state }

// Alive возвращает количество живых муравьев.
func (s *Simulator) Alive() int { return len(s.ants) }

// Run гоняет цикл тиков до гибели всех муравьев или потолка итераций.
func (s *Simulator) Run() Result {
	logger.Log.WithFields(logrus.Fields{
		"ants":      len(s.ants),
		"colonies":  s.graph.Len(),
		"workers":   s.cfg.Workers,
		"seed":      s.cfg.Seed,
		"max_ticks": s.cfg.MaxTicks,
	}).Info("Simulation started")

	start := time.Now()

	for s.tick = 0; s.tick < s.cfg.MaxTicks && s.state == Running; s.tick++ {
		s.step()
	}

	if s.state == Running {
		// Потолок достигнут, а муравьи еще живы
		s.state = IterationLimit
	}

	res := Result{
		State:             s.state,
		Ticks:             s.tick,
		AntsSpawned:       s.spawned,
		AntsAlive:         len(s.ants),
		ColoniesLeft:      s.graph.Len(),
		ColoniesDestroyed: s.destroyed,
		Duration:          time.Since(start),
	}

	logger.Log.WithFields(logrus.Fields{
		"state":     res.State.String(),
		"ticks":     res.Ticks,
		"alive":     res.AntsAlive,
		"colonies":  res.ColoniesLeft,
		"destroyed": res.ColoniesDestroyed,
	}).Info("Simulation finished")

	for _, o := range s.observers {
		o.SimulationFinished(res)
	}
	return res
}

// step — один полный тик: движение -> коллизии -> (условно) мутация.
func (s *Simulator) step() {
	// 1. Фаза движения: параллельно, граф только читается
	proposals := systems.ProposeMoves(s.ants, s.graph, s.cfg.Workers, s.cfg.Seed, s.tick)

	// 2. Резолв коллизий: один поток
	rep := systems.ResolveCollisions(proposals)

	if !rep.HasCollisions() {
		// Early-exit: никто не погиб, граф не трогаем,
		// просто коммитим все предложенные позиции
		s.commitAll(proposals)
		s.notifyTick(0)
		return
	}

	// 3. Мутация мира: один поток
	systems.ApplyDestruction(s.graph, rep.Doomed)
	s.destroyed += len(rep.Doomed)
	s.emitDestructions(rep)

	// 4. Обновляем реестр: мертвых убираем, выжившим коммитим ход
	survivors := s.ants[:0]
	for _, p := range proposals {
		if rep.Dead[p.AntID] {
			continue
		}
		survivors = append(survivors, domain.Ant{ID: p.AntID, Pos: p.To})
	}
	s.ants = survivors

	s.notifyTick(len(rep.Doomed))

	if len(s.ants) == 0 {
		logger.Log.WithField("tick", s.tick).Info("All ants are dead")
		s.state = AllDead
	}
}

// commitAll применяет предложенные позиции без смертей (путь early-exit)
func (s *Simulator) commitAll(proposals []systems.Proposal) {
	for i, p := range proposals {
		s.ants[i].Pos = p.To
	}
}

// emitDestructions рассылает по уведомлению на каждую обречённую колонию.
// Порядок детерминирован (по Symbol), чтобы логи и реплеи совпадали
// между прогонами с одним сидом.
func (s *Simulator) emitDestructions(rep systems.CollisionReport) {
	colonies := make([]domain.Symbol, 0, len(rep.Doomed))
	for c := range rep.Doomed {
		colonies = append(colonies, c)
	}
	sort.Slice(colonies, func(i, j int) bool { return colonies[i] < colonies[j] })

	for _, c := range colonies {
		ev := domain.DestructionEvent{
			Tick:   s.tick,
			Colony: c,
			Name:   s.interner.Resolve(c),
			Ants:   rep.Casualties[c],
		}
		for _, o := range s.observers {
			o.ColonyDestroyed(ev)
		}
	}
}

func (s *Simulator) notifyTick(destroyed int) {
	if len(s.observers) == 0 {
		return
	}
	sum := TickSummary{
		Tick:      s.tick,
		Alive:     len(s.ants),
		Colonies:  s.graph.Len(),
		Destroyed: destroyed,
	}
	for _, o := range s.observers {
		o.TickCompleted(sum)
	}
}
