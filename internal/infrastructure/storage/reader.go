package storage

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"

	"github.com/kilian1103/gattaca-game/internal/domain"
)

// Load читает ленту разрушений из файла.
func Load(path string) (*ReplaySession, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return readBinary(f)
}

func readBinary(r io.Reader) (*ReplaySession, error) {
	// 1. Читаем сырой заголовок целиком
	var header ReplayFileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	// Валидация
	if string(header.Magic[:]) != MagicHeader {
		return nil, fmt.Errorf("invalid magic")
	}
	if header.Version != Version1 {
		return nil, fmt.Errorf("unsupported version: %d (expected %d)", header.Version, Version1)
	}
	if header.EventCount < 0 {
		return nil, fmt.Errorf("corrupted header: event count %d", header.EventCount)
	}

	session := &ReplaySession{
		Seed:      header.Seed,
		Timestamp: header.Timestamp,
		AntCount:  int(header.AntCount),
		// Ёмкость счётчику из файла не доверяем: записи добавляются
		// по мере чтения, битый счётчик упрётся в конец потока
		Events: make([]domain.DestructionEvent, 0, min(int(header.EventCount), 1024)),
	}

	// 2. Остаток файла — zstd-поток записей
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	for i := 0; i < int(header.EventCount); i++ {
		var eh EventHeader
		if err := binary.Read(dec, binary.LittleEndian, &eh); err != nil {
			return nil, err
		}

		ev := domain.DestructionEvent{Tick: int(eh.Tick)}

		nameBuf := make([]byte, eh.NameLen)
		if _, err := io.ReadFull(dec, nameBuf); err != nil {
			return nil, err
		}
		ev.Name = string(nameBuf)

		ev.Ants = make([]int, eh.CasualtyCount)
		for j := 0; j < int(eh.CasualtyCount); j++ {
			var id int32
			if err := binary.Read(dec, binary.LittleEndian, &id); err != nil {
				return nil, err
			}
			ev.Ants[j] = int(id)
		}

		session.Events = append(session.Events, ev)
	}

	return session, nil
}
