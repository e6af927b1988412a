package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateID создает простой уникальный ID для сессий зрителей
// (замена UUID для снижения зависимостей)
func GenerateID() string {
	b := make([]byte, 8) // 16 символов hex
	if _, err := rand.Read(b); err != nil {
		panic("failed to generate random ID: " + err.Error())
	}
	return hex.EncodeToString(b)
}

// SplitMix64 — один шаг генератора splitmix64.
// Используется как дешёвая хеш-функция для вывода детерминированной
// случайности из составного ключа.
func SplitMix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	x = (x ^ (x >> 30)) * 0xBF58476D1CE4E5B9
	x = (x ^ (x >> 27)) * 0x94D049BB133111EB
	return x ^ (x >> 31)
}

// PickIndex возвращает детерминированный индекс в [0, n) для пары
// (муравей, тик) при заданном мастер-сиде.
//
// Результат не зависит от того, какому воркеру достался муравей,
// поэтому разбиение на чанки не влияет на исход симуляции.
func PickIndex(seed int64, tick, antID, n int) int {
	h := SplitMix64(uint64(seed))
	h = SplitMix64(h ^ uint64(tick))
	h = SplitMix64(h ^ uint64(antID))

	// Отбрасываем хвост диапазона uint64, не делящийся на n нацело,
	// иначе у младших индексов перевес (смещение по модулю)
	un := uint64(n)
	for h < -un%un {
		h = SplitMix64(h)
	}
	return int(h % un)
}
