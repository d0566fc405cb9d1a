package constants

// RunStatus is the canonical status for rows in ingest_runs.
type RunStatus string

// Stable values (store these exact strings in DB).
const (
	RunStatusRunning          RunStatus = "RUNNING"           // in progress
	RunStatusSucceeded        RunStatus = "SUCCEEDED"         // parsed, tagged and validated clean
	RunStatusValidationFailed RunStatus = "VALIDATION_FAILED" // finished but validator reported problems
	RunStatusFailed           RunStatus = "FAILED"            // terminal failure
)
