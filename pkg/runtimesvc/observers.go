// Package runtimesvc factors the witness-check, time, and notify/log
// helpers out of pkg/syscall so they can be unit tested against fake
// clocks and signer sets without a VM (spec §4.4).
package runtimesvc

import (
	"fmt"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/nspcc-dev/neo-interop/pkg/hash"
	"github.com/nspcc-dev/neo-interop/pkg/stackitem"
	"github.com/nspcc-dev/neo-interop/pkg/state"
)

// Observer receives every Notify/Log event fired during a session. Spec §9
// ("Observer events") requires invocation to be synchronous and for
// subscriber failures to never propagate into the VM.
type Observer interface {
	OnNotification(state.Notification)
	OnLog(scriptHash hash.Uint160, message string)
}

// Observers is a fan-out subscription list. session.NewSession gives every
// Session its own Observers, so a subscriber sees only the events of the
// session it subscribed to; subscribers are not shared across sessions.
type Observers struct {
	log       *zap.Logger
	observers []Observer
}

// NewObservers returns an empty registry, logging recovered subscriber
// panics at Warn via logger.
func NewObservers(logger *zap.Logger) *Observers {
	return &Observers{log: logger}
}

// Subscribe adds o to the fan-out list.
func (r *Observers) Subscribe(o Observer) {
	r.observers = append(r.observers, o)
}

// Unsubscribe removes the first occurrence of o, if present.
func (r *Observers) Unsubscribe(o Observer) {
	for i, existing := range r.observers {
		if existing == o {
			r.observers = append(r.observers[:i], r.observers[i+1:]...)
			return
		}
	}
}

// Notify fans a notification out to every subscriber. Never fails (spec
// §4.4 "Never fails"); a subscriber panic is recovered and logged.
func (r *Observers) Notify(n state.Notification) {
	for _, o := range r.observers {
		r.dispatch(func() { o.OnNotification(n) })
	}
}

// Log fans a log message out to every subscriber. Never fails.
func (r *Observers) Log(scriptHash hash.Uint160, message string) {
	for _, o := range r.observers {
		r.dispatch(func() { o.OnLog(scriptHash, message) })
	}
}

func (r *Observers) dispatch(f func()) {
	defer func() {
		if rec := recover(); rec != nil && r.log != nil {
			r.log.Warn("interop observer panicked", zap.Any("recovered", rec))
		}
	}()
	f()
}

// BuildNotification constructs the Notification record Runtime.Notify
// appends to the session's notification list.
func BuildNotification(container hash.Uint256, scriptHash hash.Uint160, payload stackitem.Item) state.Notification {
	return state.Notification{
		ScriptContainer: container,
		ScriptHash:      scriptHash,
		Payload:         payload,
	}
}

// DecodeLogMessage validates Runtime.Log's popped byte string is valid
// UTF-8 (spec §4.4 "interpreted as UTF-8").
func DecodeLogMessage(raw []byte) (string, error) {
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("log message is not valid UTF-8")
	}
	return string(raw), nil
}
