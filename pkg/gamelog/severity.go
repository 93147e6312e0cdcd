package gamelog

// Severity defines the importance of a log event.
type Severity int

// Enum for severities. The order is important: it selects the permanent
// sink's channel and is compared against the display threshold.
const (
	LevelVeryVerbose Severity = iota
	LevelVerbose
	LevelLog
	LevelDisplay
	LevelWarning
	LevelError
	LevelFatal
)

// String returns the string representation of a Severity.
func (s Severity) String() string {
	switch s {
	case LevelVeryVerbose:
		return "VeryVerbose"
	case LevelVerbose:
		return "Verbose"
	case LevelLog:
		return "Log"
	case LevelDisplay:
		return "Display"
	case LevelWarning:
		return "Warning"
	case LevelError:
		return "Error"
	case LevelFatal:
		return "Fatal"
	default:
		return "Unknown"
	}
}

// ParseSeverity converts a string to a Severity.
// Returns LevelDisplay for unknown strings.
func ParseSeverity(name string) Severity {
	switch name {
	case "VeryVerbose":
		return LevelVeryVerbose
	case "Verbose":
		return LevelVerbose
	case "Log":
		return LevelLog
	case "Display":
		return LevelDisplay
	case "Warning":
		return LevelWarning
	case "Error":
		return LevelError
	case "Fatal":
		return LevelFatal
	default:
		return LevelDisplay
	}
}
