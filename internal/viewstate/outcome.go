package viewstate

// Outcome reports what a view-state mutation actually did, so callers and
// tests can distinguish a plain apply from a self-heal or a no-op instead of
// inferring it from the final state.
type Outcome int

const (
	OutcomeNoOp Outcome = iota
	OutcomeApplied
	OutcomeHealed
)

// String makes Outcome satisfy fmt.Stringer.
func (o Outcome) String() string {
	switch o {
	case OutcomeNoOp:
		return "NoOp"
	case OutcomeApplied:
		return "Applied"
	case OutcomeHealed:
		return "Healed"
	default:
		return "Unknown"
	}
}
