package main

import (
	"encoding/hex"
	"fmt"

	"github.com/nspcc-dev/neo-interop/pkg/stackitem"
)

// parseArg decodes one --arg value as hex and wraps it as a ByteArray, the
// shape most of the interop surface's arguments take (script hashes,
// ledger hashes, height-or-hash payloads, raw storage keys/values).
func parseArg(hexValue string) (stackitem.Item, error) {
	raw, err := hex.DecodeString(hexValue)
	if err != nil {
		return nil, fmt.Errorf("decode hex arg %q: %w", hexValue, err)
	}
	return stackitem.ByteArray(raw), nil
}

// formatItem renders a popped result item for terminal output. There is no
// canonical text form for a StackValue (spec §9 deliberately keeps the
// wire codec binary-only) — this is debug output, not a re-parsable
// encoding.
func formatItem(item stackitem.Item) string {
	switch v := item.(type) {
	case stackitem.ByteArray:
		return fmt.Sprintf("ByteArray(%s)", hex.EncodeToString(v))
	case stackitem.Boolean:
		return fmt.Sprintf("Boolean(%t)", bool(v))
	case stackitem.Integer:
		return fmt.Sprintf("Integer(%s)", v.Value.String())
	case stackitem.InteropHandle:
		return fmt.Sprintf("InteropHandle(kind=%d, value=%+v)", v.Kind, v.Value)
	case *stackitem.Array:
		return fmt.Sprintf("Array(len=%d)", len(v.Value))
	case *stackitem.Struct:
		return fmt.Sprintf("Struct(len=%d)", len(v.Value))
	case *stackitem.Map:
		return fmt.Sprintf("Map(len=%d)", len(v.Value))
	default:
		return fmt.Sprintf("%+v", v)
	}
}
