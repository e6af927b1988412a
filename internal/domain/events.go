package domain

// DestructionEvent — уведомление об уничтожении колонии.
// Эмитится симулятором по одному на обречённую колонию в конце тика.
type DestructionEvent struct {
	// Tick — номер тика, на котором произошло столкновение.
	Tick int

	// Colony — идентификатор уничтоженной колонии.
	Colony Symbol

	// Name — резолвленное имя колонии, чтобы наблюдателям
	// не требовался доступ к Interner.
	Name string

	// Ants — идентификаторы всех погибших в этой колонии муравьёв
	// в порядке обработки предложений (их всегда >= 2).
	Ants []int
}
