package gamelog

import (
	"fmt"
	"strconv"
)

// Vector is a three component position or direction value.
type Vector struct {
	X, Y, Z float64
}

// String formats the vector component-wise, e.g. "X=1.5 Y=0 Z=-2.25".
func (v Vector) String() string {
	return fmt.Sprintf("X=%s Y=%s Z=%s",
		formatFloat(v.X), formatFloat(v.Y), formatFloat(v.Z))
}

// Rotator is a three component orientation value in degrees.
type Rotator struct {
	Pitch, Yaw, Roll float64
}

// String formats the rotator component-wise, e.g. "P=0 Y=90 R=-45.5".
func (r Rotator) String() string {
	return fmt.Sprintf("P=%s Y=%s R=%s",
		formatFloat(r.Pitch), formatFloat(r.Yaw), formatFloat(r.Roll))
}

// formatFloat renders the shortest decimal string that round-trips the
// value, without exponent notation. 2.5 renders as "2.5", not "2.500000".
func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// LogBool logs a message with a boolean value appended to it.
func (l *Logger) LogBool(caller Contextual, message string, value bool, level Severity) {
	l.Log(caller, message+": "+strconv.FormatBool(value), level)
}

// LogInt logs a message with an integer value appended to it.
func (l *Logger) LogInt(caller Contextual, message string, value int, level Severity) {
	l.Log(caller, message+": "+strconv.Itoa(value), level)
}

// LogFloat logs a message with a float value appended to it.
func (l *Logger) LogFloat(caller Contextual, message string, value float64, level Severity) {
	l.Log(caller, message+": "+formatFloat(value), level)
}

// LogVector logs a message with a vector value appended to it.
func (l *Logger) LogVector(caller Contextual, message string, value Vector, level Severity) {
	l.Log(caller, message+": "+value.String(), level)
}

// LogRotator logs a message with a rotator value appended to it.
func (l *Logger) LogRotator(caller Contextual, message string, value Rotator, level Severity) {
	l.Log(caller, message+": "+value.String(), level)
}

// LogObject logs a message with a referenced entity's display identity
// appended to it, or "NULL" if the reference is absent.
func (l *Logger) LogObject(caller Contextual, message string, value Contextual, level Severity) {
	name := "NULL"
	if value != nil {
		name = value.DisplayName()
	}
	l.Log(caller, message+": "+name, level)
}

// LogBool logs a message with a boolean value using the default logger.
func LogBool(caller Contextual, message string, value bool, level Severity) {
	defaultLogger.LogBool(caller, message, value, level)
}

// LogInt logs a message with an integer value using the default logger.
func LogInt(caller Contextual, message string, value int, level Severity) {
	defaultLogger.LogInt(caller, message, value, level)
}

// LogFloat logs a message with a float value using the default logger.
func LogFloat(caller Contextual, message string, value float64, level Severity) {
	defaultLogger.LogFloat(caller, message, value, level)
}

// LogVector logs a message with a vector value using the default logger.
func LogVector(caller Contextual, message string, value Vector, level Severity) {
	defaultLogger.LogVector(caller, message, value, level)
}

// LogRotator logs a message with a rotator value using the default logger.
func LogRotator(caller Contextual, message string, value Rotator, level Severity) {
	defaultLogger.LogRotator(caller, message, value, level)
}

// LogObject logs a message with an entity reference using the default logger.
func LogObject(caller Contextual, message string, value Contextual, level Severity) {
	defaultLogger.LogObject(caller, message, value, level)
}
