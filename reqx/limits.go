package reqx

// Default byte budgets applied when a limit is unset or non-positive.
const (
	DefaultMaxHeaderBytes = 8 << 10
	DefaultMaxBodyBytes   = 1 << 20
)

// Limits bound how many bytes of one request are kept. Both limits are
// soft: crossing one truncates with a warning, it never fails the parse.
type Limits struct {
	MaxHeaderBytes int
	MaxBodyBytes   int
}

func (l Limits) withDefaults() Limits {
	if l.MaxHeaderBytes <= 0 {
		l.MaxHeaderBytes = DefaultMaxHeaderBytes
	}
	if l.MaxBodyBytes <= 0 {
		l.MaxBodyBytes = DefaultMaxBodyBytes
	}
	return l
}
