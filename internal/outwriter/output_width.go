package outwriter

import (
	"os"

	"github.com/huangsam/treehealth/internal/contract"
	"golang.org/x/term"
)

const (
	fallbackTermWidth = 80
	minSpeciesWidth   = 12
	maxSpeciesWidth   = 40
)

// getTermWidth returns the configured width override or the detected terminal width.
func getTermWidth(cfg *contract.Config) int {
	if cfg.Width > 0 {
		return cfg.Width
	}
	detected, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || detected <= 0 {
		return fallbackTermWidth
	}
	return detected
}

// getMaxSpeciesWidth calculates how wide the species column may be once the
// fixed columns of a table have been reserved.
func getMaxSpeciesWidth(cfg *contract.Config, fixedWidth int) int {
	// Borders, separators and padding
	available := getTermWidth(cfg) - fixedWidth - 20
	return max(minSpeciesWidth, min(available, maxSpeciesWidth))
}
