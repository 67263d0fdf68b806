package reqx

import "dqx0.com/go/reqwire/internal/obs"

// Options configure one parse. The zero value uses the default limits,
// discards warnings and metrics, and keeps the legacy query splitting.
type Options struct {
	Limits Limits

	// Logger receives soft-limit warnings (oversized header block,
	// truncated body, dropped chunks). Nil discards them.
	Logger obs.Logger

	// Meter receives truncation counters. Nil discards them.
	Meter obs.Meter

	// DecodePercent switches the query/form decoder from the legacy
	// percent splitting (a pair containing '%' is cut at the first '%',
	// no octet decoding) to real percent-decoding. In form bodies the
	// real mode also decodes '+' to a space.
	DecodePercent bool
}

func (o Options) logger() obs.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return obs.NopLogger{}
}

func (o Options) meter() obs.Meter {
	if o.Meter != nil {
		return o.Meter
	}
	return obs.NopMeter{}
}
