package stackitem

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSerializeByteArrayHello(t *testing.T) {
	out, err := Serialize(ByteArray("hello"), DefaultLimits())
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0x05, 'h', 'e', 'l', 'l', 'o'}, out)

	back, err := Deserialize(out, DefaultLimits())
	require.NoError(t, err)
	require.True(t, Equals(ByteArray("hello"), back))
}

func TestSerializeIntegerZero(t *testing.T) {
	out, err := Serialize(NewIntegerFromInt64(0), DefaultLimits())
	require.NoError(t, err)
	require.Equal(t, []byte{0x02, 0x00}, out)
}

func TestIntegerRoundTripVariousMagnitudes(t *testing.T) {
	values := []int64{0, 1, -1, 127, 128, -128, -129, 255, 256, 32767, -32768, 1 << 40, -(1 << 40)}
	for _, v := range values {
		item := NewIntegerFromInt64(v)
		out, err := Serialize(item, DefaultLimits())
		require.NoError(t, err)
		back, err := Deserialize(out, DefaultLimits())
		require.NoError(t, err)
		bi, ok := back.(Integer)
		require.True(t, ok)
		require.Equal(t, v, bi.Value.Int64(), "value %d encoded as %x", v, out)
	}
}

func TestIntegerRoundTripBigMagnitude(t *testing.T) {
	v, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	item := NewInteger(v)
	out, err := Serialize(item, DefaultLimits())
	require.NoError(t, err)
	back, err := Deserialize(out, DefaultLimits())
	require.NoError(t, err)
	require.Equal(t, 0, v.Cmp(back.(Integer).Value))

	neg := new(big.Int).Neg(v)
	item2 := NewInteger(neg)
	out2, err := Serialize(item2, DefaultLimits())
	require.NoError(t, err)
	back2, err := Deserialize(out2, DefaultLimits())
	require.NoError(t, err)
	require.Equal(t, 0, neg.Cmp(back2.(Integer).Value))
}

func TestBooleanRoundTrip(t *testing.T) {
	for _, b := range []bool{true, false} {
		out, err := Serialize(Boolean(b), DefaultLimits())
		require.NoError(t, err)
		require.Equal(t, []byte{byte(TypeBoolean), boolByte(b)}, out)
		back, err := Deserialize(out, DefaultLimits())
		require.NoError(t, err)
		require.Equal(t, Boolean(b), back)
	}
}

func boolByte(b bool) byte {
	if b {
		return 0x01
	}
	return 0x00
}

func TestArrayOfOneBooleanDeserialize(t *testing.T) {
	// The table-based encoding of Array[Boolean(true)] per §4.2: tag Array
	// (0x80), count 1 (0x01), then the Boolean child's own tag+body
	// (0x01, 0x01) - four bytes total. See DESIGN.md for why this differs
	// from spec.md's illustrative 3-byte count.
	buf := []byte{0x80, 0x01, byte(TypeBoolean), 0x01}
	item, err := Deserialize(buf, DefaultLimits())
	require.NoError(t, err)
	arr, ok := item.(*Array)
	require.True(t, ok)
	require.Len(t, arr.Value, 1)
	require.Equal(t, Boolean(true), arr.Value[0])
}

func TestMapRoundTripPreservesInsertionOrder(t *testing.T) {
	m := NewMap()
	m.Add(ByteArray("k1"), NewIntegerFromInt64(1))
	m.Add(ByteArray("k2"), NewIntegerFromInt64(2))

	out, err := Serialize(m, DefaultLimits())
	require.NoError(t, err)

	back, err := Deserialize(out, DefaultLimits())
	require.NoError(t, err)
	m2, ok := back.(*Map)
	require.True(t, ok)
	require.Len(t, m2.Value, 2)
	require.Equal(t, ByteArray("k1"), m2.Value[0].Key)
	require.Equal(t, ByteArray("k2"), m2.Value[1].Key)
}

func TestStructDistinctFromArray(t *testing.T) {
	arr := NewArray([]Item{NewIntegerFromInt64(1)})
	str := NewStruct([]Item{NewIntegerFromInt64(1)})

	outArr, err := Serialize(arr, DefaultLimits())
	require.NoError(t, err)
	outStr, err := Serialize(str, DefaultLimits())
	require.NoError(t, err)

	require.Equal(t, byte(TypeArray), outArr[0])
	require.Equal(t, byte(TypeStruct), outStr[0])
	require.NotEqual(t, outArr, outStr)
}

func TestCyclicArrayFailsWithNotSupported(t *testing.T) {
	a := NewArray(nil)
	a.Value = []Item{a}

	_, err := Serialize(a, DefaultLimits())
	require.Error(t, err)
	var codecErr *Error
	require.ErrorAs(t, err, &codecErr)
	require.Equal(t, KindNotSupported, codecErr.Kind)
}

func TestSharedSiblingReferenceAlsoFails(t *testing.T) {
	shared := NewArray([]Item{ByteArray("x")})
	parent := NewArray([]Item{shared, shared})

	_, err := Serialize(parent, DefaultLimits())
	require.Error(t, err)
}

func TestInteropHandleNotSerializable(t *testing.T) {
	h := InteropHandle{Kind: HandleContract, Value: "whatever"}
	_, err := Serialize(h, DefaultLimits())
	require.Error(t, err)
	var codecErr *Error
	require.ErrorAs(t, err, &codecErr)
	require.Equal(t, KindNotSupported, codecErr.Kind)
}

func TestSerializeSizeCapExceeded(t *testing.T) {
	big := ByteArray(make([]byte, 10))
	limits := Limits{MaxItemSize: 5, MaxArraySize: 2048}
	_, err := Serialize(big, limits)
	require.Error(t, err)
	var codecErr *Error
	require.ErrorAs(t, err, &codecErr)
	require.Equal(t, KindSizeExceeded, codecErr.Kind)
}

func TestDeserializeMaxArraySizeExceeded(t *testing.T) {
	limits := Limits{MaxItemSize: 1024, MaxArraySize: 2}
	arr := NewArray([]Item{NewIntegerFromInt64(1), NewIntegerFromInt64(2), NewIntegerFromInt64(3)})
	out, err := Serialize(arr, DefaultLimits())
	require.NoError(t, err)

	_, err = Deserialize(out, limits)
	require.Error(t, err)
	var codecErr *Error
	require.ErrorAs(t, err, &codecErr)
	require.Equal(t, KindSizeExceeded, codecErr.Kind)
}

func TestDeserializeTruncatedStream(t *testing.T) {
	_, err := Deserialize([]byte{byte(TypeByteArray), 0x05, 'h', 'i'}, DefaultLimits())
	require.Error(t, err)
	var codecErr *Error
	require.ErrorAs(t, err, &codecErr)
	require.Equal(t, KindMalformed, codecErr.Kind)
}

func TestDeserializeMalformedTag(t *testing.T) {
	_, err := Deserialize([]byte{0xFF, 0x00}, DefaultLimits())
	require.Error(t, err)
}

func TestRoundTripNestedStructure(t *testing.T) {
	inner := NewStruct([]Item{Boolean(true), ByteArray("abc")})
	m := NewMap()
	m.Add(NewIntegerFromInt64(7), inner)
	outer := NewArray([]Item{m, NewIntegerFromInt64(-5)})

	out, err := Serialize(outer, DefaultLimits())
	require.NoError(t, err)
	back, err := Deserialize(out, DefaultLimits())
	require.NoError(t, err)
	require.True(t, Equals(outer, back))
}
