package api

// --- СЕРВЕР -> ЗРИТЕЛЬ ---

// Типы событий зрительского протокола
const (
	EventInit      = "INIT"
	EventTick      = "TICK"
	EventDestroyed = "DESTROYED"
	EventFinished  = "FINISHED"
)

// ServerEvent это корневой объект, который сервер отправляет зрителю.
// Поток односторонний: зрители только наблюдают, команд у них нет.
type ServerEvent struct {
	// Type тип сообщения: INIT, TICK, DESTROYED или FINISHED.
	Type string `json:"type"`

	// Tick номер тика, к которому относится событие.
	Tick int `json:"tick"`

	// Colony имя уничтоженной колонии (только для DESTROYED).
	Colony string `json:"colony,omitempty"`

	// Ants идентификаторы погибших муравьев (только для DESTROYED).
	Ants []int `json:"ants,omitempty"`

	// Alive количество живых муравьев после тика.
	Alive int `json:"alive"`

	// Colonies количество оставшихся колоний.
	Colonies int `json:"colonies"`

	// Outcome итог симуляции (только для FINISHED): ALL_DEAD или
	// ITERATION_LIMIT.
	Outcome string `json:"outcome,omitempty"`

	// Graph слепок выжившего графа (INIT и FINISHED).
	Graph []ColonyView `json:"graph,omitempty"`
}

// ColonyView это DTO одной колонии с её выходами.
type ColonyView struct {
	Name string `json:"name"`

	// Tunnels выходы в каноническом порядке: north, south, east, west.
	Tunnels []TunnelView `json:"tunnels,omitempty"`
}

// TunnelView это DTO одного туннеля.
type TunnelView struct {
	Direction   string `json:"direction"`
	Destination string `json:"destination"`
}
