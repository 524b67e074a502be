package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// Health index label constants.
const (
	ThrivingValue  = "Thriving"  // Thriving value
	StableValue    = "Stable"    // Stable value
	StressedValue  = "Stressed"  // Stressed value
	DecliningValue = "Declining" // Declining value
)

// Color variables for console output.
var (
	ThrivingColor  = color.New(color.FgGreen, color.Bold) // ThrivingColor represents mostly good trees.
	StableColor    = color.New(color.FgCyan)              // StableColor represents mostly fair-to-good trees.
	StressedColor  = color.New(color.FgYellow)            // StressedColor represents mostly fair trees.
	DecliningColor = color.New(color.FgRed, color.Bold)   // DecliningColor represents mostly poor trees.
)

// GetPlainLabel returns a plain text label for a health index between 1 and 3.
// This is the core logic used for CSV, JSON, and table printing.
func GetPlainLabel(index float64) string {
	switch {
	case index >= 2.75:
		return ThrivingValue
	case index >= 2.25:
		return StableValue
	case index >= 1.75:
		return StressedValue
	default:
		return DecliningValue
	}
}

// GetColorLabel returns a colored text label for console output (table).
// It uses GetPlainLabel to determine the string, and then applies the appropriate color.
func GetColorLabel(index float64) string {
	text := GetPlainLabel(index)

	switch text {
	case ThrivingValue:
		return ThrivingColor.Sprint(text)
	case StableValue:
		return StableColor.Sprint(text)
	case StressedValue:
		return StressedColor.Sprint(text)
	default: // "Declining"
		return DecliningColor.Sprint(text)
	}
}

// ColorHealth colors a health label for console output.
func ColorHealth(health string) string {
	switch health {
	case "Good":
		return ThrivingColor.Sprint(health)
	case "Fair":
		return StressedColor.Sprint(health)
	case "Poor":
		return DecliningColor.Sprint(health)
	default:
		return health
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. An empty path selects os.Stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// LogInfo logs a progress message to stderr so stdout stays clean for data.
func LogInfo(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
}

// GetMirrorDBFilePath returns the path to the SQLite DB file for the census mirror.
func GetMirrorDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".treehealth_mirror.db"
	}
	return filepath.Join(homeDir, ".treehealth_mirror.db")
}

// TruncateText truncates a value to a maximum width with an ellipsis suffix.
// Requires maxWidth > 3 to leave room for the ellipsis and at least one character.
func TruncateText(s string, maxWidth int) string {
	runes := []rune(s)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return s
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
