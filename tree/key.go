package tree

import (
	"strconv"
)

// Key addresses an entry of an Ordered store. It is either an integer or a
// string and is comparable, so it can be used as a map key.
type Key struct {
	name  string
	index int
	named bool
}

// Int returns the integer key i.
func Int(i int) Key {
	return Key{index: i}
}

// String returns the string key s. Canonical decimal strings are converted
// to integer keys, see ParseKey.
func String(s string) Key {
	return ParseKey(s)
}

// ParseKey converts s into a Key. Canonical decimal integers ("0", "8", "-3",
// but not "08", "+3" or " 1") become integer keys, everything else is a
// string key.
func ParseKey(s string) Key {
	if isCanonicalInt(s) {
		if i, err := strconv.Atoi(s); err == nil {
			return Key{index: i}
		}
	}

	return Key{name: s, named: true}
}

// IsInt reports whether k is an integer key.
func (k Key) IsInt() bool {
	return !k.named
}

// Int returns the integer value of k and whether k is an integer key.
func (k Key) Int() (int, bool) {
	return k.index, !k.named
}

// String returns the textual form of k.
func (k Key) String() string {
	if k.named {
		return k.name
	}

	return strconv.Itoa(k.index)
}

func isCanonicalInt(s string) bool {
	digits := s
	if len(digits) > 0 && digits[0] == '-' {
		digits = digits[1:]
	}

	switch {
	case digits == "":
		return false
	case len(digits) > 1 && digits[0] == '0':
		return false
	case s == "-0":
		return false
	}

	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return false
		}
	}

	return true
}
