package tex

import (
	"fmt"
	"strconv"
)

// Numeric covers the built-in number kinds that lift to [Text].
type Numeric interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// Number formats n in its canonical decimal form (shortest representation
// that round-trips, never exponent notation) as escaped text.
func Number[T Numeric](n T) Text {
	switch v := any(n).(type) {
	case int:
		return Text(strconv.FormatInt(int64(v), 10))
	case int8:
		return Text(strconv.FormatInt(int64(v), 10))
	case int16:
		return Text(strconv.FormatInt(int64(v), 10))
	case int32:
		return Text(strconv.FormatInt(int64(v), 10))
	case int64:
		return Text(strconv.FormatInt(v, 10))
	case uint:
		return Text(strconv.FormatUint(uint64(v), 10))
	case uint8:
		return Text(strconv.FormatUint(uint64(v), 10))
	case uint16:
		return Text(strconv.FormatUint(uint64(v), 10))
	case uint32:
		return Text(strconv.FormatUint(uint64(v), 10))
	case uint64:
		return Text(strconv.FormatUint(v, 10))
	case float32:
		return Text(strconv.FormatFloat(float64(v), 'f', -1, 32))
	case float64:
		return Text(strconv.FormatFloat(v, 'f', -1, 64))
	default:
		// Numeric is exhaustive.
		panic("unreachable")
	}
}

// Elem lifts a native Go value into an [Element]:
//
//   - an Element is returned unchanged
//   - a string becomes escaped [Text]
//   - any built-in number becomes [Number] text
//   - a []Element becomes a transparent [Group]
//   - nil becomes an empty [Raw] that renders as nothing
//
// Anything else is a programming error and panics. Byte slices are
// deliberately not lifted: convert explicitly with [Raw] (verbatim) or
// string conversion (escaped) to make the escaping choice visible.
func Elem(v any) Element {
	switch v := v.(type) {
	case nil:
		return Raw(nil)
	case Element:
		return v
	case string:
		return Text(v)
	case int:
		return Number(v)
	case int8:
		return Number(v)
	case int16:
		return Number(v)
	case int32:
		return Number(v)
	case int64:
		return Number(v)
	case uint:
		return Number(v)
	case uint8:
		return Number(v)
	case uint16:
		return Number(v)
	case uint32:
		return Number(v)
	case uint64:
		return Number(v)
	case float32:
		return Number(v)
	case float64:
		return Number(v)
	case []Element:
		return Group(v)
	default:
		panic(fmt.Sprintf("tex: cannot use %T as a document element", v))
	}
}

// Elems lifts each value with [Elem].
func Elems(vs ...any) []Element {
	elems := make([]Element, len(vs))
	for i, v := range vs {
		elems[i] = Elem(v)
	}
	return elems
}
