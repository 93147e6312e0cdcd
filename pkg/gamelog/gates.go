package gamelog

// Entity is anything whose liveness can be checked. The host supplies the
// liveness semantics; the logger only consumes the answer. A nil Entity is
// never alive.
type Entity interface {
	Alive() bool
}

// ValidityMode determines the condition under which LogOnValidity logs.
type ValidityMode int

const (
	LogWhenValid ValidityMode = iota
	LogWhenInvalid
)

// ConditionMode determines the condition under which LogOnCondition logs.
type ConditionMode int

const (
	LogWhenTrue ConditionMode = iota
	LogWhenFalse
)

// ValidityOutcome reports which branch a LogOnValidity call took.
type ValidityOutcome int

const (
	IsValid ValidityOutcome = iota
	IsNotValid
)

// String returns the string representation of a ValidityOutcome.
func (o ValidityOutcome) String() string {
	if o == IsValid {
		return "IsValid"
	}
	return "IsNotValid"
}

// ConditionOutcome reports which branch a LogOnCondition call took.
type ConditionOutcome int

const (
	IsTrue ConditionOutcome = iota
	IsFalse
)

// String returns the string representation of a ConditionOutcome.
func (o ConditionOutcome) String() string {
	if o == IsTrue {
		return "IsTrue"
	}
	return "IsFalse"
}

// LogOnValidity checks a candidate entity for liveness and logs the message
// iff the mode's condition is met. The returned outcome reflects only the
// liveness check, never whether logging occurred.
func (l *Logger) LogOnValidity(caller Contextual, candidate Entity, mode ValidityMode, message string, level Severity) ValidityOutcome {
	alive := candidate != nil && candidate.Alive()

	if (mode == LogWhenValid && alive) || (mode == LogWhenInvalid && !alive) {
		l.Log(caller, message, level)
	}

	if alive {
		return IsValid
	}
	return IsNotValid
}

// LogOnCondition checks a boolean condition and logs the message iff the
// mode's condition is met. The returned outcome reflects only the condition,
// never whether logging occurred.
func (l *Logger) LogOnCondition(caller Contextual, condition bool, mode ConditionMode, message string, level Severity) ConditionOutcome {
	if (mode == LogWhenTrue && condition) || (mode == LogWhenFalse && !condition) {
		l.Log(caller, message, level)
	}

	if condition {
		return IsTrue
	}
	return IsFalse
}

// LogOnValidity checks a candidate's liveness using the default logger.
func LogOnValidity(caller Contextual, candidate Entity, mode ValidityMode, message string, level Severity) ValidityOutcome {
	return defaultLogger.LogOnValidity(caller, candidate, mode, message, level)
}

// LogOnCondition checks a boolean condition using the default logger.
func LogOnCondition(caller Contextual, condition bool, mode ConditionMode, message string, level Severity) ConditionOutcome {
	return defaultLogger.LogOnCondition(caller, condition, mode, message, level)
}
