package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// DefaultName identifies the store in the action log
	DefaultName = "app-store"

	// Version of the state shape
	Version = 1
)

// Listener receives the state after a transition together with the state
// before it. action names the operation that caused the transition.
type Listener func(action string, next, prev State)

// IDGenerator produces cart line identifiers
type IDGenerator func(now time.Time) string

// Option configures a Store
type Option func(*Store)

// WithLogger sets the logger used for the action log
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithName sets the store name reported in the action log
func WithName(name string) Option {
	return func(s *Store) {
		if name != "" {
			s.name = name
		}
	}
}

// WithIDGenerator replaces the cart line id generator
func WithIDGenerator(gen IDGenerator) Option {
	return func(s *Store) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// WithClock replaces the time source passed to the id generator
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithInitialState starts the store from st instead of InitialState
func WithInitialState(st State) Option {
	return func(s *Store) {
		s.state = st.Clone()
	}
}

type subscription struct {
	id       uint64
	listener Listener
}

// Store holds the application state and applies every transition to it.
// Transitions are serialised; readers get deep copies. Every mutator returns
// the state produced by its own transition.
type Store struct {
	dispatchMu sync.Mutex

	mu          sync.RWMutex
	state       State
	subscribers []subscription
	nextSubID   uint64

	name   string
	logger *zap.Logger
	newID  IDGenerator
	now    func() time.Time
}

// New creates a store in its initial state
func New(opts ...Option) *Store {
	s := &Store{
		state:  InitialState(),
		name:   DefaultName,
		logger: zap.NewNop(),
		newID:  NewCartItemID,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewCartItemID returns an id of the form cart-<unix millis>-<random>
func NewCartItemID(now time.Time) string {
	return fmt.Sprintf("cart-%d-%s", now.UnixMilli(), uuid.NewString())
}

// Name returns the store name
func (s *Store) Name() string {
	return s.name
}

// Snapshot returns a copy of the current state
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Subscribe registers l to be called after every transition and returns a
// function that removes it. Listeners run synchronously in subscription
// order and must not call mutators on the same store.
func (s *Store) Subscribe(l Listener) (unsubscribe func()) {
	s.mu.Lock()
	s.nextSubID++
	id := s.nextSubID
	s.subscribers = append(s.subscribers, subscription{id: id, listener: l})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, sub := range s.subscribers {
				if sub.id == id {
					s.subscribers = append(s.subscribers[:i:i], s.subscribers[i+1:]...)
					return
				}
			}
		})
	}
}

// transition applies mutate to a copy of the current state, installs the
// copy, notifies subscribers and returns a copy of the installed state.
func (s *Store) transition(action string, mutate func(st *State)) State {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	s.mu.Lock()
	prev := s.state
	next := prev.Clone()
	mutate(&next)
	s.state = next
	subscribers := append([]subscription(nil), s.subscribers...)
	s.mu.Unlock()

	s.logger.Debug("State transition",
		zap.String("store", s.name),
		zap.String("action", action),
		zap.Int("cart_items", len(next.Cart)),
		zap.Float64("cart_total", next.CartTotal),
		zap.Bool("authenticated", next.IsAuthenticated),
	)

	for _, sub := range subscribers {
		sub.listener(action, next.Clone(), prev.Clone())
	}
	return next.Clone()
}
