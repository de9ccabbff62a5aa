// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package numerics

import "math"

// Type identifies a fixed-width numeric representation.
type Type int

const (
	Int8 Type = iota
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
	Float32
	Float64
)

var typeNames = map[Type]string{
	Int8:    "int8",
	Int16:   "int16",
	Int32:   "int32",
	Int64:   "int64",
	Uint8:   "uint8",
	Uint16:  "uint16",
	Uint32:  "uint32",
	Uint64:  "uint64",
	Float32: "float32",
	Float64: "float64",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}

	return "unknown"
}

// maxFloat32 is the float32 upper bound used by both selectors.
const maxFloat32 = 3.4028235e+38

// OptimalSigned returns the smallest signed integer or float type able to
// hold n, picked by the first inclusive upper bound n satisfies, ascending.
//
// Only upper bounds are compared; there is no lower-bound check. A negative
// value therefore classifies by the same comparisons as a small positive
// one: OptimalSigned(FromFloat64(-1e10)) is Int8, because -1e10 <= 127.
func OptimalSigned(n Number) Type {
	switch {
	case n.leInt(math.MaxInt8):
		return Int8
	case n.leInt(math.MaxInt16):
		return Int16
	case n.leInt(math.MaxInt32):
		return Int32
	case n.leInt(math.MaxInt64):
		return Int64
	case n.leFloat(maxFloat32):
		return Float32
	default:
		return Float64
	}
}

// OptimalUnsigned returns the smallest unsigned integer or float type able
// to hold n. The integer bounds are exclusive: a value equal to a type's
// maximum classifies into the next type up (255 is Uint16, not Uint8).
//
// The input is expected to be non-negative. No sign check is performed;
// negative values fall through the same comparisons and land in Uint8.
func OptimalUnsigned(n Number) Type {
	switch {
	case n.ltUint(math.MaxUint8):
		return Uint8
	case n.ltUint(math.MaxUint16):
		return Uint16
	case n.ltUint(math.MaxUint32):
		return Uint32
	case n.ltUint(math.MaxUint64):
		return Uint64
	case n.leFloat(maxFloat32):
		return Float32
	default:
		return Float64
	}
}
