// Package session implements the per-execution context spec §4.7
// describes: trigger type, snapshot ownership, the notification log, the
// created-contracts table, and disposable resource release — plus the
// registry and gas-metering glue spec §4.1/§4.8 bind to it.
//
// Composition root note: Session deliberately does not import
// pkg/syscall. pkg/syscall's handlers are registered against a Session's
// Registry by its caller (see pkg/syscall.RegisterAll), the same way the
// teacher's cmd/dump/main.go wires its dependencies together in main()
// rather than from inside a library package — this keeps pkg/session and
// pkg/syscall from importing each other.
package session

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/nspcc-dev/neo-interop/pkg/hash"
	"github.com/nspcc-dev/neo-interop/pkg/registry"
	"github.com/nspcc-dev/neo-interop/pkg/runtimesvc"
	"github.com/nspcc-dev/neo-interop/pkg/snapshot"
	"github.com/nspcc-dev/neo-interop/pkg/stackitem"
	"github.com/nspcc-dev/neo-interop/pkg/state"
)

// Engine is the narrow slice of the VM's evaluation-stack/execution-context
// machinery a handler needs (spec §6's "VM Execution Engine" consumed
// interface): push/pop, the three script-hash vantage points, the
// enclosing script container, and the surrounding gas budget.
type Engine interface {
	Push(stackitem.Item)
	Pop() (stackitem.Item, bool)
	CurrentScriptHash() hash.Uint160
	CallingScriptHash() hash.Uint160
	EntryScriptHash() hash.Uint160
	ScriptContainer() stackitem.InteropHandle
	// AddGas charges price against the surrounding budget, reporting
	// whether enough remained (spec §4.8: "faults if the remaining budget
	// is insufficient").
	AddGas(price int64) bool
}

// Disposable is a resource a session may accumulate during execution (a
// storage-scan enumerator, for instance) and must release on Dispose,
// regardless of whether the execution succeeded (spec §5).
type Disposable interface {
	Dispose() error
}

// Dispatched is the dispatch-observation hook a Session's Registry reports
// into; *metrics.Collectors satisfies it.
type Dispatched = registry.Dispatched

// Session is a per-execution context bound to exactly one VM run. None of
// its methods are safe to call from more than one goroutine (spec §5).
type Session struct {
	ID       uuid.UUID
	Trigger  state.TriggerType
	Snapshot snapshot.Snapshot
	Engine   Engine
	Config   Config
	Clock    runtimesvc.Clock
	Observers *runtimesvc.Observers

	Notifications    []state.Notification
	ContractsCreated map[hash.Uint160]hash.Uint160

	registry *registry.Registry[*Session]
	observe  Dispatched

	disposables []Disposable
	disposed    bool

	log *zap.Logger
}

// NewSession constructs a session over snapshot for trigger, with an empty
// registry ready for pkg/syscall.RegisterAll to populate. logger may be
// nil, in which case a no-op logger is used.
func NewSession(trigger state.TriggerType, snap snapshot.Snapshot, engine Engine, cfg Config, clock runtimesvc.Clock, observe Dispatched, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Session{
		ID:               uuid.New(),
		Trigger:          trigger,
		Snapshot:         snap,
		Engine:           engine,
		Config:           cfg,
		Clock:            clock,
		Observers:        runtimesvc.NewObservers(logger),
		ContractsCreated: make(map[hash.Uint160]hash.Uint160),
		log:              logger,
	}
	s.registry = registry.New[*Session](observe)
	s.observe = observe
	s.log.Debug("session constructed", zap.String("session_id", s.ID.String()), zap.String("trigger", trigger.String()))
	return s
}

// VariableGasObserver is implemented by a Dispatched observer that also
// tracks dynamically computed charges; *metrics.Collectors satisfies it.
type VariableGasObserver interface {
	ObserveVariableGas(method string, price int64)
}

// ChargeVariable debits price from the gas budget and, if the session's
// observer tracks variable-cost charges, reports it under method. Used by
// Storage.Put/PutEx, whose cost is computed from the written payload
// rather than looked up in the static price table (spec §4.8).
func (s *Session) ChargeVariable(method string, price int64) bool {
	if !s.Engine.AddGas(price) {
		return false
	}
	if vg, ok := s.observe.(VariableGasObserver); ok {
		vg.ObserveVariableGas(method, price)
	}
	return true
}

// Registry returns the session's interop registry, for pkg/syscall's
// RegisterAll (and for cmd/interop-debug's by-name invocation) to populate
// and query.
func (s *Session) Registry() *registry.Registry[*Session] {
	return s.registry
}

// Invoke dispatches method against this session, charging its static price
// first when one is registered (spec §4.8: "deducts the price before
// invocation"). Config.PriceOverrides, keyed by dotted method name, takes
// precedence over the registry's own price when the caller invoked by name
// rather than by raw 4-byte method id. Variable-cost handlers charge their
// own incremental cost from inside the handler via ChargeVariable.
func (s *Session) Invoke(method []byte) bool {
	id := registry.DecodeMethodID(method)
	price, hasPrice := s.registry.Price(id)
	if len(method) != 4 {
		if override, ok := s.Config.PriceOverrides[string(method)]; ok {
			price, hasPrice = override, true
		}
	}
	if hasPrice {
		if !s.Engine.AddGas(price) {
			s.log.Debug("insufficient gas budget", zap.Uint32("method_id", id))
			return false
		}
	}
	return s.registry.Invoke(s, method)
}

// AddDisposable records a resource to be released on Dispose.
func (s *Session) AddDisposable(d Disposable) {
	s.disposables = append(s.disposables, d)
}

// AddContractCreated records that creator deployed contract, the
// provenance Contract.GetStorageContext checks (spec §4.3).
func (s *Session) AddContractCreated(contract, creator hash.Uint160) {
	s.ContractsCreated[contract] = creator
}

// AddNotification appends to the session's notification log and fans the
// event out to this session's own observers (spec §4.4 "Notify").
func (s *Session) AddNotification(n state.Notification) {
	s.Notifications = append(s.Notifications, n)
	s.Observers.Notify(n)
}

// Commit flushes the snapshot to durable storage (spec §4.7).
func (s *Session) Commit() error {
	if err := s.Snapshot.Commit(); err != nil {
		return fmt.Errorf("commit snapshot: %w", err)
	}
	s.log.Debug("session committed", zap.String("session_id", s.ID.String()))
	return nil
}

// Dispose releases every disposable in registration order, idempotently,
// aggregating failures with multierr rather than stopping at the first
// one (spec §4.7: "releases every held resource in registration order; it
// must be idempotent").
func (s *Session) Dispose() error {
	if s.disposed {
		return nil
	}
	s.disposed = true
	var errs error
	for _, d := range s.disposables {
		if err := d.Dispose(); err != nil {
			errs = multierr.Append(errs, err)
			s.log.Warn("disposable release failed", zap.Error(err))
		}
	}
	s.disposables = nil
	return errs
}
