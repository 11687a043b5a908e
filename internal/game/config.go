package game

import "github.com/charmbracelet/log"

// Config holds game configuration options.
type Config struct {
	// MatchFile is an optional JSON match definition. Empty uses the built-in layout.
	MatchFile string
	// Keys maps action names (up, down, left, right, confirm, quit) to key names or runes.
	Keys map[string][]string
	// Logger receives loop and engine events. Nil discards them.
	Logger *log.Logger
}
