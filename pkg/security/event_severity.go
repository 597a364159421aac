package security

import "go.uber.org/zap/zapcore"

// Severity represents the severity level of a security event.
// This is derived from EventType, NOT user-provided.
type Severity string

const (
	SeverityINFO   Severity = "INFO"
	SeverityMEDIUM Severity = "MEDIUM"
	SeverityWARN   Severity = "WARN"
	SeverityHIGH   Severity = "HIGH"
)

// eventSeverity is the hard-coded severity for each event type
var eventSeverity = map[EventType]Severity{
	// A rejected sign-up form is routine user error
	EventValidationFailed: SeverityINFO,

	// Clients only ever know candidate and employer; anything else is probing
	EventUnsupportedRole:    SeverityWARN,
	EventRateLimitTriggered: SeverityWARN,

	EventServerError: SeverityHIGH,
}

// GetSeverity returns the severity for an event type, MEDIUM if unmapped
func GetSeverity(eventType EventType) Severity {
	if severity, ok := eventSeverity[eventType]; ok {
		return severity
	}
	return SeverityMEDIUM
}

// zapLevel is the level an event of this severity is written at
func (s Severity) zapLevel() zapcore.Level {
	switch s {
	case SeverityINFO:
		return zapcore.InfoLevel
	case SeverityHIGH:
		return zapcore.ErrorLevel
	default:
		return zapcore.WarnLevel
	}
}
