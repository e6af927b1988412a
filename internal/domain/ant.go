package domain

// Ant — подвижный агент симуляции.
//
// ID назначается один раз при спавне и никогда не переиспользуется.
// Pos — колония, в которой муравей находится сейчас. Мёртвые муравьи
// из реестра удаляются навсегда.
type Ant struct {
	ID  int
	Pos Symbol
}
