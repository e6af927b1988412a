package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"strconv"

	"github.com/kilian1103/gattaca-game/internal/domain"
	"github.com/kilian1103/gattaca-game/internal/engine"
	"github.com/kilian1103/gattaca-game/internal/infrastructure/history"
	"github.com/kilian1103/gattaca-game/internal/infrastructure/storage"
	"github.com/kilian1103/gattaca-game/internal/network"
	"github.com/kilian1103/gattaca-game/internal/server"
	"github.com/kilian1103/gattaca-game/internal/version"
	"github.com/kilian1103/gattaca-game/pkg/hivemap"
	"github.com/kilian1103/gattaca-game/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var (
		seed        int64
		mapPath     string
		cfgPath     string
		watchPort   string
		replayPath  string
		historyPath string
	)
	flag.Int64Var(&seed, "seed", 0, "Master seed (0 for random)")
	flag.StringVar(&mapPath, "map", "", "Path to the world map file (overrides config)")
	flag.StringVar(&cfgPath, "config", "", "Path to a YAML simulation config")
	flag.StringVar(&watchPort, "watch", "", "Port for the spectator websocket feed (empty to disable)")
	flag.StringVar(&replayPath, "replay", "", "Path to write a .gtrp destruction replay")
	flag.StringVar(&historyPath, "history", "", "Path to the SQLite run-history database")
	flag.Parse()

	// Единственный позиционный аргумент — количество муравьев.
	// Симулятор не стартует, пока аргумент не валиден.
	n, err := strconv.Atoi(flag.Arg(0))
	if flag.NArg() < 1 || err != nil || n <= 0 {
		fmt.Fprintln(os.Stderr, "Please provide a valid ants size")
		os.Exit(1)
	}

	logger.Log.Info("Starting Gattaca...")
	logger.Log.Info(version.String())

	cfg, err := engine.Load(cfgPath)
	if err != nil {
		logger.Log.Fatal("Failed to load config:", err)
	}
	if seed != 0 {
		cfg.Seed = seed
		logger.Log.Infof("🎲 Using explicit Master Seed: %d", cfg.Seed)
	} else {
		logger.Log.Infof("🎲 Using random Master Seed: %d", cfg.Seed)
	}
	if mapPath != "" {
		cfg.MapPath = mapPath
	}

	logger.Log.Infof("Num of ants to spawn: %d", n)
	logger.Log.Infof("Movement workers: %d (CPUs on this machine: %d)", cfg.Workers, runtime.NumCPU())

	// 2. Загрузка мира и спавн
	logger.Log.Info("Building world map...")
	graph, interner, err := hivemap.Load(cfg.MapPath)
	if err != nil {
		logger.Log.Fatal("Failed to build world map:", err)
	}

	logger.Log.Info("Initializing ant positions...")
	rng := rand.New(rand.NewSource(cfg.Seed))
	ants, err := hivemap.SpawnAnts(graph, n, rng)
	if err != nil {
		logger.Log.Fatal("Failed to spawn ants:", err)
	}

	// 3. Сборка симулятора и наблюдателей
	sim := engine.New(cfg, graph, interner, ants)
	sim.AddObserver(consoleReporter{})

	var recorder *storage.Recorder
	if replayPath != "" {
		recorder = storage.NewRecorder(cfg.Seed, n)
		sim.AddObserver(recorder)
	}

	if watchPort != "" {
		hub := network.NewBroadcaster()
		srv := server.New(hub, watchPort)
		go func() {
			if err := srv.Run(); err != nil {
				logger.Log.Error("Spectator server error:", err)
			}
		}()
		sim.AddObserver(server.NewObserver(hub, graph, interner))
	}

	// 4. Прогон
	res := sim.Run()

	// 5. Отчет по выжившему графу
	fmt.Println("Remaining colonies....")
	if graph.Len() == 0 {
		fmt.Println("All colonies have been destroyed.")
	} else if err := hivemap.Write(os.Stdout, graph, interner); err != nil {
		logger.Log.Error("Failed to print final graph:", err)
	}
	fmt.Printf("Simulation took %d milli seconds.\n", res.Duration.Milliseconds())

	if recorder != nil {
		if err := recorder.Save(replayPath); err != nil {
			logger.Log.Error("Failed to save replay:", err)
		}
	}
	if historyPath != "" {
		store, err := history.Open(historyPath)
		if err != nil {
			logger.Log.Error("Failed to open run history:", err)
		} else {
			if err := store.RecordRun(res, cfg.Seed); err != nil {
				logger.Log.Error("Failed to record run:", err)
			}
			store.Close()
		}
	}
}

// consoleReporter печатает события разрушения в стандартный вывод —
// это пользовательский отчет, а не лог
type consoleReporter struct{}

func (consoleReporter) ColonyDestroyed(ev domain.DestructionEvent) {
	fmt.Printf("%s has been destroyed by ant %d and ant %d!\n", ev.Name, ev.Ants[0], ev.Ants[1])
}

func (consoleReporter) TickCompleted(engine.TickSummary) {}

func (consoleReporter) SimulationFinished(res engine.Result) {
	if res.State == engine.AllDead {
		fmt.Printf("All ants are dead. Simulation ends at iteration %d\n", res.Ticks-1)
	}
}
