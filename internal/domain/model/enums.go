package model

// CredentialStatus is the last-known validation state of a credential.
// It changes only through an explicit validation call.
type CredentialStatus string

const (
	CredentialStatusUnvalidated CredentialStatus = "unvalidated"
	CredentialStatusValidating  CredentialStatus = "validating"
	CredentialStatusValid       CredentialStatus = "valid"
	CredentialStatusInvalid     CredentialStatus = "invalid"
)

// Operation tags a provider call with what the caller is asking for.
// Providers dispatch on it; they never infer it from prompt text.
type Operation string

const (
	OperationDiscoverNiches Operation = "discover_niches"
	OperationWriteScript    Operation = "write_script"
)

// ResponseShape describes the structured output a caller expects back.
type ResponseShape string

const (
	ShapeText              ResponseShape = "text"
	ShapeNicheListBasic    ResponseShape = "niche_list_basic"
	ShapeNicheListExtended ResponseShape = "niche_list_extended"
)

// ValidationFailure says why a credential check did not pass.
type ValidationFailure string

const (
	ValidationFailureNone        ValidationFailure = "none"
	ValidationFailureEmptySecret ValidationFailure = "empty_secret"
	ValidationFailureMalformed   ValidationFailure = "malformed"   // Fails the provider's local format rules.
	ValidationFailureRejected    ValidationFailure = "rejected"    // Provider refused the key.
	ValidationFailureUnreachable ValidationFailure = "unreachable" // Transport or remote-side failure.
)

// Outlook is the consumer-facing reading of a score.
type Outlook string

const (
	OutlookFavorable   Outlook = "favorable"
	OutlookModerate    Outlook = "moderate"
	OutlookUnfavorable Outlook = "unfavorable"
)
