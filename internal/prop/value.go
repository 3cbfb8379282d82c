package prop

import (
	"strconv"
	"time"

	"github.com/meigma/szdb/internal/dbtype"
)

// Kind is the type held by a Value.
type Kind uint8

const (
	KindAbsent Kind = iota
	KindBool
	KindUint32
	KindUint64
	KindString
	KindTime
)

func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindBool:
		return "bool"
	case KindUint32:
		return "uint32"
	case KindUint64:
		return "uint64"
	case KindString:
		return "string"
	case KindTime:
		return "time"
	default:
		return "unknown"
	}
}

// Value is the result of a property query. The zero Value is absent.
//
// Times are kept in their stored FILETIME form; Time converts them.
type Value struct {
	kind Kind
	num  uint64
	str  string
}

// Absent returns the value reported for undefined properties.
func Absent() Value { return Value{} }

// BoolValue returns a boolean value.
func BoolValue(b bool) Value {
	v := Value{kind: KindBool}
	if b {
		v.num = 1
	}
	return v
}

// Uint32Value returns a 32-bit value.
func Uint32Value(n uint32) Value { return Value{kind: KindUint32, num: uint64(n)} }

// Uint64Value returns a 64-bit value.
func Uint64Value(n uint64) Value { return Value{kind: KindUint64, num: n} }

// StringValue returns a string value.
func StringValue(s string) Value { return Value{kind: KindString, str: s} }

// TimeValue returns a timestamp given as a FILETIME.
func TimeValue(ft uint64) Value { return Value{kind: KindTime, num: ft} }

// Kind returns the type held by v.
func (v Value) Kind() Kind { return v.kind }

// IsAbsent reports whether the property was undefined.
func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

// Bool returns the boolean held by v.
func (v Value) Bool() (bool, bool) {
	return v.num != 0, v.kind == KindBool
}

// Uint32 returns the 32-bit number held by v.
func (v Value) Uint32() (uint32, bool) {
	return uint32(v.num), v.kind == KindUint32 //nolint:gosec // set from a uint32
}

// Uint64 returns the 64-bit number held by v.
func (v Value) Uint64() (uint64, bool) {
	return v.num, v.kind == KindUint64
}

// Text returns the string held by v.
func (v Value) Text() (string, bool) {
	return v.str, v.kind == KindString
}

// FileTime returns the raw FILETIME held by v.
func (v Value) FileTime() (uint64, bool) {
	return v.num, v.kind == KindTime
}

// Time returns the timestamp held by v in UTC.
func (v Value) Time() (time.Time, bool) {
	if v.kind != KindTime {
		return time.Time{}, false
	}
	return dbtype.FileTimeToTime(v.num), true
}

// String formats v for display. Absent values format as "".
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		if v.num != 0 {
			return "+"
		}
		return "-"
	case KindUint32, KindUint64:
		return strconv.FormatUint(v.num, 10)
	case KindString:
		return v.str
	case KindTime:
		return dbtype.FileTimeToTime(v.num).Format(time.RFC3339Nano)
	default:
		return ""
	}
}
