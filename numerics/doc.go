// Package numerics infers the smallest fixed-width numeric representation
// able to hold a given value.
//
// Classification depends only on the value's magnitude and sign, never on
// how the caller happens to hold it: a [Number] built from an int64, a
// float64, or an arbitrary-precision decimal classifies identically when it
// denotes the same value.
package numerics
