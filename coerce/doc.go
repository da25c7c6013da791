// Package coerce converts loosely typed values to declared types.
//
// A declaration is an ordered list of Type descriptors. Coerce tries each
// candidate in order and keeps the first conversion that applies. When no
// candidate applies the original value is kept and checked against the last
// candidate. A value that fails that final check is a type mismatch, the
// one hard failure callers must handle:
//
//	v, err := coerce.Coerce("12", coerce.Int)        // 12, nil
//	v, err = coerce.Coerce("foo", coerce.Int)        // nil, *MismatchError
//	v, err = coerce.Coerce(nil, coerce.Int)          // nil, nil
//	v, err = coerce.Coerce(m, coerce.Object[*Item]()) // *Item filled from the mapping m
//
// Which primitive conversions apply is controlled by primitive.CategoryEnum
// flags, all of them enabled by default.
package coerce
