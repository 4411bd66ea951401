package stackitem

// rawToken is one entry of the flat, stream-order token sequence produced
// by Deserialize's first pass. Leaf is set for non-container tokens; for
// container placeholders, Count holds the element count read from the
// header (pair count for Maps, not 2x).
type rawToken struct {
	typ   Type
	leaf  Item
	count int
}

// Deserialize parses buf back into an Item, per spec §4.2: a first pass
// flattens the stream into tokens (containers become placeholders carrying
// their kind and child count), then a second pass folds the flat sequence
// bottom-up into the final value tree.
func Deserialize(buf []byte, limits Limits) (Item, error) {
	if len(buf) > limits.MaxItemSize {
		return nil, newErr(KindSizeExceeded, "input exceeds MaxItemSize")
	}

	tokens, err := tokenize(buf, limits)
	if err != nil {
		return nil, err
	}
	return fold(tokens)
}

func tokenize(buf []byte, limits Limits) ([]rawToken, error) {
	var tokens []rawToken
	off := 0
	pending := 1

	for pending > 0 {
		if off >= len(buf) {
			return nil, newErr(KindMalformed, "truncated stream: expected a value tag")
		}
		tag := Type(buf[off])
		off++

		switch tag {
		case TypeByteArray:
			n, newOff, err := readVarint(buf, off)
			if err != nil {
				return nil, newErr(KindMalformed, err.Error())
			}
			off = newOff
			if uint64(off)+n > uint64(len(buf)) {
				return nil, newErr(KindMalformed, "truncated stream: ByteArray body")
			}
			body := make([]byte, n)
			copy(body, buf[off:off+int(n)])
			off += int(n)
			tokens = append(tokens, rawToken{typ: tag, leaf: ByteArray(body)})
			pending--

		case TypeBoolean:
			if off >= len(buf) {
				return nil, newErr(KindMalformed, "truncated stream: Boolean body")
			}
			b := buf[off]
			off++
			tokens = append(tokens, rawToken{typ: tag, leaf: Boolean(b != 0x00)})
			pending--

		case TypeInteger:
			n, newOff, err := readVarint(buf, off)
			if err != nil {
				return nil, newErr(KindMalformed, err.Error())
			}
			off = newOff
			if uint64(off)+n > uint64(len(buf)) {
				return nil, newErr(KindMalformed, "truncated stream: Integer payload")
			}
			v := integerFromBytesLE(buf[off : off+int(n)])
			off += int(n)
			tokens = append(tokens, rawToken{typ: tag, leaf: Integer{Value: v}})
			pending--

		case TypeArray, TypeStruct:
			n, newOff, err := readVarint(buf, off)
			if err != nil {
				return nil, newErr(KindMalformed, err.Error())
			}
			off = newOff
			if int(n) > limits.MaxArraySize {
				return nil, newErr(KindSizeExceeded, "container element count exceeds MaxArraySize")
			}
			tokens = append(tokens, rawToken{typ: tag, count: int(n)})
			pending += int(n) - 1

		case TypeMap:
			n, newOff, err := readVarint(buf, off)
			if err != nil {
				return nil, newErr(KindMalformed, err.Error())
			}
			off = newOff
			if int(n) > limits.MaxArraySize {
				return nil, newErr(KindSizeExceeded, "container element count exceeds MaxArraySize")
			}
			tokens = append(tokens, rawToken{typ: tag, count: int(n)})
			pending += 2*int(n) - 1

		default:
			return nil, newErr(KindMalformed, "malformed tag byte")
		}
	}

	if off != len(buf) {
		return nil, newErr(KindMalformed, "trailing bytes after value")
	}
	return tokens, nil
}

// fold walks tokens in reverse stream order, which is exactly the order in
// which a container's children become available before the container
// itself is built (spec §4.2, "folds the flat token sequence bottom-up").
func fold(tokens []rawToken) (Item, error) {
	var rebuild []Item

	pop := func() Item {
		last := rebuild[len(rebuild)-1]
		rebuild = rebuild[:len(rebuild)-1]
		return last
	}

	for i := len(tokens) - 1; i >= 0; i-- {
		tok := tokens[i]
		switch tok.typ {
		case TypeArray:
			children := make([]Item, tok.count)
			for j := 0; j < tok.count; j++ {
				children[j] = pop()
			}
			rebuild = append(rebuild, NewArray(children))
		case TypeStruct:
			children := make([]Item, tok.count)
			for j := 0; j < tok.count; j++ {
				children[j] = pop()
			}
			rebuild = append(rebuild, NewStruct(children))
		case TypeMap:
			m := NewMap()
			m.Value = make([]MapPair, tok.count)
			for j := 0; j < tok.count; j++ {
				key := pop()
				value := pop()
				m.Value[j] = MapPair{Key: key, Value: value}
			}
			rebuild = append(rebuild, m)
		default:
			rebuild = append(rebuild, tok.leaf)
		}
	}

	if len(rebuild) != 1 {
		return nil, newErr(KindMalformed, "stream did not fold to a single value")
	}
	return rebuild[0], nil
}
