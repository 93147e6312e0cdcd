package gamelog

import "github.com/gdamore/tcell/v2"

// severityColors maps each severity to its on-screen text color. The table
// is fixed at process start; it is never mutated.
var severityColors = map[Severity]tcell.Color{
	LevelVeryVerbose: tcell.ColorPurple,
	LevelVerbose:     tcell.ColorBlue,
	LevelLog:         tcell.ColorSilver,
	LevelDisplay:     tcell.ColorAqua,
	LevelWarning:     tcell.ColorYellow,
	LevelError:       tcell.ColorRed,
	LevelFatal:       tcell.ColorFuchsia,
}

// ColorFor returns the on-screen text color for the given severity.
// Unknown severities fall back to white.
func ColorFor(level Severity) tcell.Color {
	if color, ok := severityColors[level]; ok {
		return color
	}
	return tcell.ColorWhite
}
