package domain

// Direction — внутренний числовой идентификатор направления туннеля.
//
// Набор закрыт: север, юг, восток, запад. Порядок констант фиксирует
// порядок обхода и печати выходов и не зависит от порядка во входном файле.
type Direction uint8

const (
	North Direction = iota
	South
	East
	West

	directionCount
)

// DirectionsInOrder — канонический порядок направлений.
var DirectionsInOrder = [directionCount]Direction{North, South, East, West}

// Маппинг для конвертации входного файла -> Domain.
// Имена чувствительны к регистру: карта мира содержит только строчные.
var directionStringToDir = map[string]Direction{
	"north": North,
	"south": South,
	"east":  East,
	"west":  West,
}

// Маппинг для печати Domain -> String
var directionToString = [directionCount]string{"north", "south", "east", "west"}

// ParseDirection конвертирует строку из файла карты в Direction.
func ParseDirection(s string) (Direction, bool) {
	d, ok := directionStringToDir[s]
	return d, ok
}

// String реализует интерфейс Stringer (для fmt.Printf и логов)
func (d Direction) String() string {
	if d >= directionCount {
		return "UNKNOWN"
	}
	return directionToString[d]
}
