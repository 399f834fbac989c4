// Пакет view — состояние экранов: один логический запрос на экран,
// вытеснение устаревших запросов и публикация итога вызывающей стороне.
package view

import (
	"context"
	"sync"

	"github.com/vietct/orderflow-client/internal/apierr"
	"github.com/vietct/orderflow-client/internal/ports"
	"github.com/vietct/orderflow-client/pkg/metrics"
)

// Status — состояние текущего запроса экрана.
type Status int

const (
	StatusIdle Status = iota
	StatusPending
	StatusSuccess
	StatusNotFound // отдельное терминальное состояние, не разновидность Failure
	StatusFailure
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPending:
		return "pending"
	case StatusSuccess:
		return "success"
	case StatusNotFound:
		return "not_found"
	case StatusFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// State — публикуемый снимок состояния. Value заполнено только при Success,
// Kind/Message — только при Failure.
type State[Out any] struct {
	Status  Status
	Value   Out
	Kind    apierr.Kind
	Message string
}

// FetchFunc — эффект экрана: единственная точка приостановки.
type FetchFunc[In, Out any] func(ctx context.Context, in In) (Out, error)

// Coordinator — машина состояний одного экрана.
//
// Инвариант вытеснения: показанное состояние всегда отражает последний
// инициированный запрос; поздний результат устаревшего запроса отбрасывается.
// Инвариант закрытия: после Close никакой результат состояние не меняет.
// Реализация: каждый Load увеличивает эпоху; применяется только завершение,
// чья эпоха совпадает с текущей.
type Coordinator[In, Out any] struct {
	fetch    FetchFunc[In, Out]
	log      ports.Logger
	name     string // имя экрана для логов
	onChange func(State[Out])

	mu      sync.Mutex
	epoch   uint64
	cancel  context.CancelFunc
	closed  bool
	hasLast bool
	lastIn  In
	state   State[Out]

	// notifyMu сериализует уведомления и перепроверку эпохи перед ними:
	// устаревшее завершение не должно уведомить позже более нового Load.
	notifyMu sync.Mutex
}

// NewCoordinator — конструктор; onChange может быть nil.
func NewCoordinator[In, Out any](name string, fetch FetchFunc[In, Out], log ports.Logger, onChange func(State[Out])) *Coordinator[In, Out] {
	return &Coordinator[In, Out]{
		fetch:    fetch,
		log:      log,
		name:     name,
		onChange: onChange,
		state:    State[Out]{Status: StatusIdle},
	}
}

// Load — начать запрос для нового ввода. Висящий запрос вытесняется:
// его контекст отменяется, а поздний результат будет отброшен по эпохе.
func (c *Coordinator[In, Out]) Load(ctx context.Context, in In) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}

	c.epoch++
	myEpoch := c.epoch

	if c.cancel != nil {
		c.cancel()
	}
	fetchCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel

	c.lastIn = in
	c.hasLast = true
	c.state = State[Out]{Status: StatusPending}

	snapshot := c.state
	c.mu.Unlock()

	c.publish(myEpoch, snapshot)

	go func() {
		out, err := c.fetch(fetchCtx, in)
		c.apply(myEpoch, out, err)
	}()
}

// Retry — повтор с последним вводом; из Idle — ничего не делает.
func (c *Coordinator[In, Out]) Retry(ctx context.Context) {
	c.mu.Lock()
	if c.closed || !c.hasLast {
		c.mu.Unlock()
		return
	}
	in := c.lastIn
	c.mu.Unlock()

	metrics.ViewRetries.Inc()
	c.Load(ctx, in)
}

// State — текущий снимок состояния.
func (c *Coordinator[In, Out]) State() State[Out] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Close — экран демонтирован: отменяем интерес к висящему запросу.
// Поздний результат отбрасывается молча, без изменения состояния.
func (c *Coordinator[In, Out]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	if c.cancel != nil {
		c.cancel()
	}
}

// apply — применить завершение запроса, если оно не устарело.
func (c *Coordinator[In, Out]) apply(epoch uint64, out Out, err error) {
	c.mu.Lock()
	if c.closed || epoch != c.epoch {
		c.mu.Unlock()
		metrics.StaleResultsDropped.Inc()
		c.log.Infof(context.Background(), "%s: stale result dropped (epoch=%d)", c.name, epoch)
		return
	}

	switch kind := apierr.KindOf(err); {
	case err == nil:
		c.state = State[Out]{Status: StatusSuccess, Value: out}
	case kind == apierr.KindNotFound:
		c.state = State[Out]{Status: StatusNotFound}
	default:
		c.state = State[Out]{Status: StatusFailure, Kind: kind, Message: apierr.Message(err)}
	}

	snapshot := c.state
	c.mu.Unlock()

	if snapshot.Status == StatusFailure {
		c.log.Warnf(context.Background(), "%s: request failed kind=%s message=%q", c.name, snapshot.Kind, snapshot.Message)
	}
	c.publish(epoch, snapshot)
}

// publish — уведомление о снимке состояния. Эпоха перепроверяется уже под
// notifyMu: снимок, вытесненный новым Load между обновлением состояния и
// уведомлением, до callback не доходит. Callback не должен вызывать Load/Retry.
func (c *Coordinator[In, Out]) publish(epoch uint64, snapshot State[Out]) {
	if c.onChange == nil {
		return
	}

	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()

	c.mu.Lock()
	stale := c.closed || epoch != c.epoch
	c.mu.Unlock()

	if stale {
		return
	}
	c.onChange(snapshot)
}
