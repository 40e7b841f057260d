package events

import (
	"fmt"
	"sync"
	"time"
)

// delivery tracks a queued event together with its redelivery count.
type delivery struct {
	event    DomainEvent
	attempts int
}

// InMemoryEventDispatcher is an in-memory, outbox-style dispatcher.
// Events are queued after the originating transaction commits and
// delivered on a worker goroutine; failed deliveries are requeued with
// a delay up to maxRetries. Delivery failures never propagate back to
// the publisher.
type InMemoryEventDispatcher struct {
	handlers   map[string][]EventHandler
	mu         sync.RWMutex
	running    bool
	stopCh     chan struct{}
	eventCh    chan delivery
	retryDelay time.Duration
	maxRetries int
	wg         sync.WaitGroup
	onError    func(event DomainEvent, attempts int, err error)
}

// NewInMemoryEventDispatcher creates a new in-memory event dispatcher.
func NewInMemoryEventDispatcher(bufferSize int) *InMemoryEventDispatcher {
	if bufferSize <= 0 {
		bufferSize = 100
	}

	return &InMemoryEventDispatcher{
		handlers:   make(map[string][]EventHandler),
		stopCh:     make(chan struct{}),
		eventCh:    make(chan delivery, bufferSize),
		retryDelay: 5 * time.Second,
		maxRetries: 3,
	}
}

// SetRetryPolicy overrides the redelivery delay and attempt bound.
func (d *InMemoryEventDispatcher) SetRetryPolicy(delay time.Duration, maxRetries int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.retryDelay = delay
	d.maxRetries = maxRetries
}

// OnError registers a callback invoked when a delivery attempt fails.
func (d *InMemoryEventDispatcher) OnError(fn func(event DomainEvent, attempts int, err error)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.onError = fn
}

// Publish publishes a single event
func (d *InMemoryEventDispatcher) Publish(event DomainEvent) error {
	if !d.isRunning() {
		return fmt.Errorf("event dispatcher is not running")
	}

	select {
	case d.eventCh <- delivery{event: event}:
		return nil
	default:
		return fmt.Errorf("event channel is full")
	}
}

// PublishAll publishes multiple events
func (d *InMemoryEventDispatcher) PublishAll(events []DomainEvent) error {
	if !d.isRunning() {
		return fmt.Errorf("event dispatcher is not running")
	}

	for _, event := range events {
		if err := d.Publish(event); err != nil {
			return fmt.Errorf("failed to publish event %s: %w", event.GetEventType(), err)
		}
	}

	return nil
}

// Subscribe registers a handler for a specific event type
func (d *InMemoryEventDispatcher) Subscribe(eventType string, handler EventHandler) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if eventType == "" {
		return fmt.Errorf("event type cannot be empty")
	}
	if handler == nil {
		return fmt.Errorf("handler cannot be nil")
	}

	d.handlers[eventType] = append(d.handlers[eventType], handler)
	return nil
}

// Unsubscribe removes a handler for a specific event type
func (d *InMemoryEventDispatcher) Unsubscribe(eventType string, handler EventHandler) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	handlers, exists := d.handlers[eventType]
	if !exists {
		return nil
	}

	newHandlers := make([]EventHandler, 0, len(handlers))
	for _, h := range handlers {
		if h != handler {
			newHandlers = append(newHandlers, h)
		}
	}

	if len(newHandlers) == 0 {
		delete(d.handlers, eventType)
	} else {
		d.handlers[eventType] = newHandlers
	}

	return nil
}

// Start starts the event dispatcher worker
func (d *InMemoryEventDispatcher) Start() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.running {
		return fmt.Errorf("event dispatcher is already running")
	}

	d.running = true
	d.wg.Add(1)

	go func() {
		defer d.wg.Done()
		d.processEvents()
	}()

	return nil
}

// Stop stops the event dispatcher, draining queued events first
func (d *InMemoryEventDispatcher) Stop() error {
	d.mu.Lock()
	if !d.running {
		d.mu.Unlock()
		return fmt.Errorf("event dispatcher is not running")
	}
	d.running = false
	d.mu.Unlock()

	close(d.stopCh)
	d.wg.Wait()

	return nil
}

func (d *InMemoryEventDispatcher) isRunning() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.running
}

func (d *InMemoryEventDispatcher) processEvents() {
	for {
		select {
		case <-d.stopCh:
			// Drain remaining events before shutting down
			for {
				select {
				case dlv := <-d.eventCh:
					d.handleDelivery(dlv)
				default:
					return
				}
			}
		case dlv := <-d.eventCh:
			d.handleDelivery(dlv)
		}
	}
}

func (d *InMemoryEventDispatcher) handleDelivery(dlv delivery) {
	d.mu.RLock()
	handlers := d.handlers[dlv.event.GetEventType()]
	retryDelay := d.retryDelay
	maxRetries := d.maxRetries
	onError := d.onError
	d.mu.RUnlock()

	var failed bool
	for _, handler := range handlers {
		if !handler.CanHandle(dlv.event.GetEventType()) {
			continue
		}
		if err := handler.Handle(dlv.event); err != nil {
			failed = true
			if onError != nil {
				onError(dlv.event, dlv.attempts+1, err)
			}
		}
	}

	if failed && dlv.attempts+1 < maxRetries {
		// Requeue after a delay; the timer goroutine keeps the worker free.
		d.wg.Add(1)
		go func() {
			defer d.wg.Done()
			select {
			case <-time.After(retryDelay):
			case <-d.stopCh:
				return
			}
			select {
			case d.eventCh <- delivery{event: dlv.event, attempts: dlv.attempts + 1}:
			default:
			}
		}()
	}
}

// SimpleEventHandler adapts a function to the EventHandler interface.
type SimpleEventHandler struct {
	eventType string
	handler   func(DomainEvent) error
}

// NewSimpleEventHandler creates a new simple event handler
func NewSimpleEventHandler(eventType string, handler func(DomainEvent) error) *SimpleEventHandler {
	return &SimpleEventHandler{
		eventType: eventType,
		handler:   handler,
	}
}

// Handle processes a domain event
func (h *SimpleEventHandler) Handle(event DomainEvent) error {
	if h.handler != nil {
		return h.handler(event)
	}
	return nil
}

// CanHandle checks if this handler can handle the given event type
func (h *SimpleEventHandler) CanHandle(eventType string) bool {
	return h.eventType == eventType
}
