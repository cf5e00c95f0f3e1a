package cli

// Error codes for structured error responses.
// These codes are stable and can be relied upon by agents.
const (
	// Vault errors
	ErrVaultNotFound     = "VAULT_NOT_FOUND"
	ErrVaultNotSpecified = "VAULT_NOT_SPECIFIED"
	ErrConfigInvalid     = "CONFIG_INVALID"

	// Rules errors
	ErrRulesInvalid    = "RULES_INVALID"
	ErrRulesetNotFound = "RULESET_NOT_FOUND"

	// Note errors
	ErrNoteNotFound   = "NOTE_NOT_FOUND"
	ErrNoteInvalid    = "NOTE_INVALID"
	ErrFileReadError  = "FILE_READ_ERROR"
	ErrFileWriteError = "FILE_WRITE_ERROR"

	// Organize errors
	ErrNotComplete    = "RULESET_NOT_COMPLETE"
	ErrNoDestination  = "NO_DESTINATION"
	ErrMoveFailed     = "MOVE_FAILED"
	ErrPathObstructed = "PATH_OBSTRUCTED"

	// Marker errors
	ErrNoMarkers = "NO_MARKERS"

	// Inference errors
	ErrInferenceUnavailable = "INFERENCE_UNAVAILABLE"
	ErrTemplateInvalid      = "TEMPLATE_INVALID"

	// Database errors
	ErrDatabaseError = "DATABASE_ERROR"

	// Input errors
	ErrInvalidInput = "INVALID_INPUT"

	// General errors
	ErrInternal = "INTERNAL_ERROR"
)

// Warning codes for non-fatal issues.
const (
	WarnRulesIssue      = "RULES_ISSUE"
	WarnInvalidMetadata = "INVALID_METADATA"
	WarnAlreadyThere    = "ALREADY_ORGANIZED"
)
