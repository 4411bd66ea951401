package storage

import "github.com/nspcc-dev/neo-interop/pkg/hash"

// Context is a capability handle granting read or read/write access to one
// contract's storage partition (spec §3 "StorageContext").
type Context struct {
	ScriptHash hash.Uint160
	ReadOnly   bool
}

// AsReadOnly returns a new Context with ReadOnly set, identity of the
// underlying partition preserved (spec §4.3).
func (c Context) AsReadOnly() Context {
	return Context{ScriptHash: c.ScriptHash, ReadOnly: true}
}
