package storage

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/klauspost/compress/zstd"

	"github.com/kilian1103/gattaca-game/internal/domain"
)

const (
	MagicHeader string = `GTRP` // 4 байта
	Version1    uint32 = 1
)

// ReplayFileHeader — точное представление заголовка файла в памяти.
// binary.Write пишет его целиком: тут нет слайсов и строк, только
// массивы и числа. Заголовок идет несжатым, чтобы файл можно было
// опознать без декодера.
type ReplayFileHeader struct {
	Magic      [4]byte // 4 байта
	Version    uint32  // 4 байта
	Seed       int64   // 8 байт
	Timestamp  int64   // 8 байт
	AntCount   int32   // 4 байта
	EventCount int32   // 4 байта
}

// EventHeader — заголовок каждой записи разрушения.
// После него идут имя колонии (NameLen байт) и CasualtyCount
// идентификаторов муравьев по int32.
type EventHeader struct {
	Tick          int32  // 4
	NameLen       uint8  // 1
	CasualtyCount uint16 // 2
}

// ReplaySession — лента разрушений одного прогона.
type ReplaySession struct {
	Seed      int64
	Timestamp int64
	AntCount  int
	Events    []domain.DestructionEvent
}

// Save пишет сессию в файл: сырой заголовок + zstd-сжатый поток записей.
func Save(path string, s *ReplaySession) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return writeBinary(f, s)
}

func writeBinary(w io.Writer, s *ReplaySession) error {
	header := ReplayFileHeader{
		Version:    Version1,
		Seed:       s.Seed,
		Timestamp:  s.Timestamp,
		AntCount:   int32(s.AntCount),
		EventCount: int32(len(s.Events)),
	}
	copy(header.Magic[:], MagicHeader) // Копируем строку в массив [4]byte

	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	// Дальше всё сжато: имена колоний в длинных прогонах повторяются
	// плохо, но списки муравьев и тики жмутся отлично
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return err
	}

	for _, ev := range s.Events {
		nameBytes := []byte(ev.Name)
		if len(nameBytes) > 255 {
			enc.Close()
			return fmt.Errorf("colony name too long: %d", len(nameBytes))
		}
		if len(ev.Ants) > 65535 {
			enc.Close()
			return fmt.Errorf("too many casualties: %d", len(ev.Ants))
		}

		evHeader := EventHeader{
			Tick:          int32(ev.Tick),
			NameLen:       uint8(len(nameBytes)),
			CasualtyCount: uint16(len(ev.Ants)),
		}
		if err := binary.Write(enc, binary.LittleEndian, &evHeader); err != nil {
			enc.Close()
			return err
		}
		if _, err := enc.Write(nameBytes); err != nil {
			enc.Close()
			return err
		}
		for _, id := range ev.Ants {
			if err := binary.Write(enc, binary.LittleEndian, int32(id)); err != nil {
				enc.Close()
				return err
			}
		}
	}

	return enc.Close()
}

// NewSession создает пустую сессию с текущим временем.
func NewSession(seed int64, antCount int) *ReplaySession {
	return &ReplaySession{
		Seed:      seed,
		Timestamp: time.Now().Unix(),
		AntCount:  antCount,
		Events:    make([]domain.DestructionEvent, 0),
	}
}
