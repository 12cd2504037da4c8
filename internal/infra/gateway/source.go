package gateway

// Source labels where a read's data came from, so callers and tests can tell
// a genuinely empty live collection apart from an outage instead of the two
// being silently aliased.
type Source int

const (
	SourceLive Source = iota
	SourceFallback
)

func (s Source) String() string {
	if s == SourceFallback {
		return "fallback"
	}
	return "live"
}

func (s Source) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}
