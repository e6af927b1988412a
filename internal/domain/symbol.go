package domain

// Symbol — упакованный идентификатор интернированной строки.
//
// Symbol является value-type и предназначен для дешёвого копирования
// и сравнения: граф и муравьи хранят только Symbol, никогда копии текста.
// Значение 0 зарезервировано как NilSymbol ("нет значения").
type Symbol uint32

// NilSymbol — нулевой идентификатор. Используется как аналог nil
// для пустых слотов туннелей.
const NilSymbol Symbol = 0

// Interner — append-only таблица строк.
//
// Интернирование идемпотентно: одинаковые строки всегда получают один
// и тот же Symbol, идентификаторы никогда не переиспользуются.
// После построения карты таблица только читается, поэтому её можно
// безопасно шарить между воркерами фазы движения без блокировок.
type Interner struct {
	index map[string]Symbol
	names []string
}

func NewInterner() *Interner {
	return &Interner{
		index: make(map[string]Symbol),
		// Слот 0 занят, чтобы NilSymbol не резолвился в реальное имя
		names: []string{""},
	}
}

// Intern возвращает Symbol для строки, создавая его при первом обращении.
func (in *Interner) Intern(s string) Symbol {
	if sym, ok := in.index[s]; ok {
		return sym
	}
	sym := Symbol(len(in.names))
	in.names = append(in.names, s)
	in.index[s] = sym
	return sym
}

// Lookup возвращает Symbol без создания нового.
func (in *Interner) Lookup(s string) (Symbol, bool) {
	sym, ok := in.index[s]
	return sym, ok
}

// Resolve возвращает исходную строку.
// Для NilSymbol и неизвестных идентификаторов возвращает "".
func (in *Interner) Resolve(sym Symbol) string {
	if int(sym) >= len(in.names) {
		return ""
	}
	return in.names[sym]
}

// Len возвращает количество интернированных строк.
func (in *Interner) Len() int {
	return len(in.names) - 1
}
