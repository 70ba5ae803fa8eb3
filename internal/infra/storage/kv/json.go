package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrCorrupted возвращается, когда значение не удалось разобрать как JSON
var ErrCorrupted = errors.New("kv: stored value is corrupted")

// LoadJSON читает значение по ключу и разбирает его в dst
// Возвращает found=false, если ключа нет; ErrCorrupted, если JSON некорректен
func LoadJSON(ctx context.Context, store Store, key string, dst interface{}) (bool, error) {
	raw, err := store.Get(ctx, key)
	if errors.Is(err, ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return false, fmt.Errorf("%w: key=%s: %v", ErrCorrupted, key, err)
	}
	return true, nil
}

// SaveJSON сериализует value в JSON и сохраняет по ключу
func SaveJSON(ctx context.Context, store Store, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("kv: marshal value for key=%s: %w", key, err)
	}
	return store.Set(ctx, key, string(raw))
}
