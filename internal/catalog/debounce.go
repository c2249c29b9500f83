package catalog

import (
	"sync"
	"time"
)

// SearchDebounceDelay — пауза после последнего ввода, по истечении
// которой пересчитывается поисковая выдача.
const SearchDebounceDelay = 500 * time.Millisecond

// Debouncer откладывает выполнение функции до паузы во входных событиях:
// каждый новый вызов Do сбрасывает таймер, выполняется только последняя
// переданная функция.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

// NewDebouncer создает дебаунсер с заданной паузой.
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Do планирует выполнение fn после паузы, отменяя предыдущий запуск.
func (d *Debouncer) Do(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop отменяет отложенный запуск, если он есть.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
