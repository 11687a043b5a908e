// Package match implements the turn engine: the two-character roster, the
// Move/Attack phase machine and the map occupancy it keeps in sync.
package match

// Phase is the match-wide mode gating which inputs are meaningful.
type Phase int

const (
	// PhaseMove - the active character spends movement points to reposition
	PhaseMove Phase = iota
	// PhaseAttack - the active character positions the target selector
	PhaseAttack
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseMove:
		return "move"
	case PhaseAttack:
		return "attack"
	default:
		return "unknown"
	}
}
