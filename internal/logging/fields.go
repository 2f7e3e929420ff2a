package logging

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldCorrelationID is the standardized key for the per-run identifier.
	FieldCorrelationID = "correlation_id"
	// FieldSource is the catalog source label an event belongs to.
	FieldSource = "source"
	// FieldPath is a filesystem path or remote URL.
	FieldPath = "path"
	// FieldEventType classifies notable events for filtering.
	FieldEventType = "event_type"
	// FieldErrorHint suggests the next step for the operator.
	FieldErrorHint = "error_hint"
	// FieldImpact is the user-facing consequence of a warning.
	FieldImpact = "impact"
	// FieldCount carries an entry or file count.
	FieldCount = "count"
)
