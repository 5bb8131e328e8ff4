package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownAction возвращается при декодировании незарегистрированного типа.
var ErrUnknownAction = errors.New("unknown action")

// Message задаёт проводной формат действия. Target заполняется только у запросов
// к бэкенду, которые действуют на выбранную в состоянии сущность.
type Message struct {
	Type    Kind            `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
	Target  json.RawMessage `json:"target,omitempty"`
}

// Registry сопоставляет типы действий с декодерами.
type Registry struct {
	mu       sync.RWMutex
	decoders map[Kind]func(json.RawMessage) (Action, error)
}

func NewRegistry() *Registry {
	return &Registry{decoders: make(map[Kind]func(json.RawMessage) (Action, error))}
}

// Register добавляет тип действия A; тег берётся из нулевого значения.
func Register[A Action](r *Registry) {
	var zero A
	r.mu.Lock()
	defer r.mu.Unlock()
	r.decoders[zero.Kind()] = func(raw json.RawMessage) (Action, error) {
		var a A
		if len(raw) > 0 && string(raw) != "null" {
			if err := json.Unmarshal(raw, &a); err != nil {
				return nil, err
			}
		}
		return a, nil
	}
}

// Kinds возвращает зарегистрированные типы в отсортированном порядке.
func (r *Registry) Kinds() []Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()
	kinds := make([]Kind, 0, len(r.decoders))
	for k := range r.decoders {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

func (r *Registry) Decode(raw []byte) (Action, error) {
	var m Message
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("decode message: %w", err)
	}
	r.mu.RLock()
	dec, ok := r.decoders[m.Type]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, m.Type)
	}
	a, err := dec(m.Payload)
	if err != nil {
		return nil, fmt.Errorf("decode %s payload: %w", m.Type, err)
	}
	return a, nil
}

func Encode(a Action) ([]byte, error) {
	return EncodeWithTarget(a, nil)
}

// EncodeWithTarget кодирует действие вместе с целью запроса; nil target опускается.
func EncodeWithTarget(a Action, target any) ([]byte, error) {
	payload, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("encode %s payload: %w", a.Kind(), err)
	}
	m := Message{Type: a.Kind(), Payload: payload}
	if target != nil {
		if m.Target, err = json.Marshal(target); err != nil {
			return nil, fmt.Errorf("encode %s target: %w", a.Kind(), err)
		}
	}
	return json.Marshal(m)
}
