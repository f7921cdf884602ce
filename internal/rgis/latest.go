package rgis

import (
	"context"
	"errors"
	"sync"
)

// ErrSuperseded — запрос вытеснен более новым запросом той же последовательности.
var ErrSuperseded = errors.New("запрос вытеснен более новым")

// Sequencer реализует «последний выигрывает» для логических последовательностей
// запросов. Быстрые повторные клики по пагинации порождают гонку: без этого
// побеждал бы не последний запрос, а последний пришедший ответ. Новый вызов
// с тем же ключом отменяет контекст предыдущего, а результат вытесненного
// вызова отбрасывается.
type Sequencer struct {
	mu     sync.Mutex
	gen    map[string]uint64
	cancel map[string]context.CancelFunc
}

func NewSequencer() *Sequencer {
	return &Sequencer{
		gen:    make(map[string]uint64),
		cancel: make(map[string]context.CancelFunc),
	}
}

// Do выполняет fn под ключом key. Если за время выполнения пришёл более новый
// вызов с тем же ключом — возвращает ErrSuperseded, результат fn игнорируется.
func (s *Sequencer) Do(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	s.mu.Lock()
	if prev := s.cancel[key]; prev != nil {
		prev()
	}
	ctx, cancel := context.WithCancel(ctx)
	s.gen[key]++
	my := s.gen[key]
	s.cancel[key] = cancel
	s.mu.Unlock()

	err := fn(ctx)

	s.mu.Lock()
	latest := s.gen[key] == my
	if latest {
		delete(s.cancel, key)
		cancel()
	}
	s.mu.Unlock()

	if !latest {
		return ErrSuperseded
	}
	return err
}
