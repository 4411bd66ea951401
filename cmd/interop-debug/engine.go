package main

import (
	"github.com/nspcc-dev/neo-interop/pkg/hash"
	"github.com/nspcc-dev/neo-interop/pkg/stackitem"
)

// debugEngine is a minimal session.Engine over a plain LIFO stack, enough
// to drive one manual syscall invocation from the command line. Unlike a
// real VM's execution context, it has no call stack: calling/entry/current
// script hash are all the one hash the operator passed on the command
// line, and its gas budget is effectively unbounded.
type debugEngine struct {
	stack      []stackitem.Item
	scriptHash hash.Uint160
	container  stackitem.InteropHandle
}

func (e *debugEngine) Push(item stackitem.Item) { e.stack = append(e.stack, item) }

func (e *debugEngine) Pop() (stackitem.Item, bool) {
	if len(e.stack) == 0 {
		return nil, false
	}
	top := e.stack[len(e.stack)-1]
	e.stack = e.stack[:len(e.stack)-1]
	return top, true
}

func (e *debugEngine) CurrentScriptHash() hash.Uint160          { return e.scriptHash }
func (e *debugEngine) CallingScriptHash() hash.Uint160          { return e.scriptHash }
func (e *debugEngine) EntryScriptHash() hash.Uint160            { return e.scriptHash }
func (e *debugEngine) ScriptContainer() stackitem.InteropHandle { return e.container }

// AddGas always succeeds; a debugging session has no budget to exhaust.
func (e *debugEngine) AddGas(int64) bool { return true }
