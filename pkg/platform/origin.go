package platform

// Verdict is the outcome of asking whether an entry point is the original
type Verdict int

const (
	// VerdictNotOriginal means the path resolved and is not the manager's
	// own link: a plain file, or a link to somewhere else (usually the
	// wrapper).
	VerdictNotOriginal Verdict = iota
	// VerdictOriginal means the path is the manager's own link.
	VerdictOriginal
	// VerdictIndeterminate means the path could not be resolved.
	VerdictIndeterminate
)

func (v Verdict) String() string {
	switch v {
	case VerdictOriginal:
		return "original"
	case VerdictNotOriginal:
		return "not-original"
	case VerdictIndeterminate:
		return "indeterminate"
	default:
		return "unknown"
	}
}

// Origin is the answer of Strategy.IsOriginal
type Origin struct {
	Verdict Verdict
	// Resolved is the fully dereferenced path, when resolution succeeded
	Resolved string
	// Err is set for VerdictIndeterminate
	Err error
}

// IsOriginal collapses the verdict: only a definite original counts
func (o Origin) IsOriginal() bool {
	return o.Verdict == VerdictOriginal
}

func indeterminate(err error) Origin {
	return Origin{Verdict: VerdictIndeterminate, Err: err}
}
