package stackitem

// Serialize renders item as the deterministic byte stream described in
// spec §4.2: an iterative depth-first emission using an explicit work stack
// to bound recursion, with an auxiliary visited-identity set to detect
// cycles. Fails with KindNotSupported on an InteropHandle or a revisited
// container, and with KindSizeExceeded if the result is over limits.MaxItemSize.
func Serialize(item Item, limits Limits) ([]byte, error) {
	var out []byte
	visited := make(map[interface{}]bool)
	stack := []Item{item}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch v := cur.(type) {
		case ByteArray:
			out = append(out, byte(TypeByteArray))
			out = putVarint(out, uint64(len(v)))
			out = append(out, v...)
		case Boolean:
			out = append(out, byte(TypeBoolean))
			if v {
				out = append(out, 0x01)
			} else {
				out = append(out, 0x00)
			}
		case Integer:
			payload := integerToBytesLE(v.Value)
			out = append(out, byte(TypeInteger))
			out = putVarint(out, uint64(len(payload)))
			out = append(out, payload...)
		case InteropHandle:
			return nil, newErr(KindNotSupported, "InteropHandle is not serializable")
		case *Array:
			if visited[v] {
				return nil, newErr(KindNotSupported, "cycle detected in Array")
			}
			visited[v] = true
			out = append(out, byte(TypeArray))
			out = putVarint(out, uint64(len(v.Value)))
			stack = pushReversed(stack, v.Value)
		case *Struct:
			if visited[v] {
				return nil, newErr(KindNotSupported, "cycle detected in Struct")
			}
			visited[v] = true
			out = append(out, byte(TypeStruct))
			out = putVarint(out, uint64(len(v.Value)))
			stack = pushReversed(stack, v.Value)
		case *Map:
			if visited[v] {
				return nil, newErr(KindNotSupported, "cycle detected in Map")
			}
			visited[v] = true
			out = append(out, byte(TypeMap))
			out = putVarint(out, uint64(len(v.Value)))
			stack = pushMapReversed(stack, v.Value)
		default:
			return nil, newErr(KindNotSupported, "unknown item kind")
		}
	}

	if len(out) > limits.MaxItemSize {
		return nil, newErr(KindSizeExceeded, "serialized item exceeds MaxItemSize")
	}
	return out, nil
}

// pushReversed pushes items onto stack in reverse order, so that popping
// the stack yields items in their original order (spec §4.2).
func pushReversed(stack []Item, items []Item) []Item {
	for i := len(items) - 1; i >= 0; i-- {
		stack = append(stack, items[i])
	}
	return stack
}

// pushMapReversed pushes Map pairs so that, read back off the stack, each
// pair's key precedes its value and pairs come out in insertion order
// (spec §4.2: "pair elements are pushed (value, key)").
func pushMapReversed(stack []Item, pairs []MapPair) []Item {
	for i := len(pairs) - 1; i >= 0; i-- {
		stack = append(stack, pairs[i].Value)
		stack = append(stack, pairs[i].Key)
	}
	return stack
}
