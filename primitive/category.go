package primitive

import "maps"

type CategoryEnum int

type ConversionPair struct {
	From, To KindEnum
}

const (
	CategorySafeNumber   CategoryEnum = 1 << iota // int <-> float when the value survives exactly
	CategoryTextNumber                            // string -> int, float: decimal numeric text
	CategoryNumericBool                           // int, float <-> bool: 0, 1 representation of boolean values
	CategoryTextualBool                           // string -> bool: yes, no, on, off, true, false, 1, 0
	CategoryScalarText                            // bool, int, float -> string
	CategorySequenceCopy                          // foreign slices and listers -> sequence

	CategoryAll  = (1 << iota) - 1 //all categories combined
	CategoryNone = 0               // no categories selected
)

var conversionPairs map[CategoryEnum]map[ConversionPair]struct{}

func init() {
	conversionPairs = make(map[CategoryEnum]map[ConversionPair]struct{})

	conversionPairs[CategorySafeNumber] = map[ConversionPair]struct{}{
		{KindInt, KindFloat}: {},
		{KindFloat, KindInt}: {},
	}

	conversionPairs[CategoryTextNumber] = map[ConversionPair]struct{}{
		{KindString, KindInt}:   {},
		{KindString, KindFloat}: {},
	}

	conversionPairs[CategoryNumericBool] = map[ConversionPair]struct{}{
		{KindInt, KindBool}:   {},
		{KindFloat, KindBool}: {},
		{KindBool, KindInt}:   {},
		{KindBool, KindFloat}: {},
	}

	conversionPairs[CategoryTextualBool] = map[ConversionPair]struct{}{
		{KindString, KindBool}: {},
	}

	// CategoryScalarText: every scalar renders as text
	conversionPairs[CategoryScalarText] = map[ConversionPair]struct{}{}
	for fromKind := KindEnum(0); int(fromKind) < KindTotal; fromKind++ {
		if !fromKind.IsScalar() || fromKind == KindString {
			continue
		}

		conversionPairs[CategoryScalarText][ConversionPair{fromKind, KindString}] = struct{}{}
	}

	conversionPairs[CategorySequenceCopy] = map[ConversionPair]struct{}{
		{KindSequence, KindSequence}: {},
	}
}

// Allowed reports whether converting from one kind to another is permitted
// by the allowed categories.
func Allowed(from, to KindEnum, allowed CategoryEnum) bool {
	_, ok := allowedSet(allowed)[ConversionPair{from, to}]
	return ok
}

func allowedSet(allowed CategoryEnum) map[ConversionPair]struct{} {
	res := map[ConversionPair]struct{}{}

	for category := CategoryEnum(1); category&CategoryAll > 0; category <<= 1 {
		if allowed&category == 0 {
			continue
		}

		maps.Copy(res, conversionPairs[category])
	}

	return res
}
