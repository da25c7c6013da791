package coerce

// Event describes one coercion. Type is the name of the selected candidate,
// or of the last candidate tried when none applied.
type Event struct {
	Value  any
	Type   string
	Result any
	Err    error
}

// Logger receives coercion events.
type Logger interface {
	LogCoercion(Event)
}

// LoggerFunc adapts a function to the Logger interface.
type LoggerFunc func(Event)

func (f LoggerFunc) LogCoercion(e Event) {
	if f != nil {
		f(e)
	}
}
