package collection

import "value-objects/coerce"

type options struct {
	types    []coerce.Type
	typesSet bool
	coercer  *coerce.Coercer
}

// Option configures a Collection.
type Option func(*options)

// WithTypes replaces the declared types derived from the element type by an
// ordered list of candidates. Without arguments values are stored as given.
func WithTypes(types ...coerce.Type) Option {
	return func(o *options) {
		o.types = types
		o.typesSet = true
	}
}

// WithCoercer sets the coercer used for insertions.
func WithCoercer(c *coerce.Coercer) Option {
	return func(o *options) {
		o.coercer = c
	}
}
