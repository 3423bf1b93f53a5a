package model

import "time"

// Credential is a named, provider-scoped API secret plus its last-known
// validation status. Several credentials may exist for one provider; the
// active one is the first with CredentialStatusValid.
type Credential struct {
	ID        string           `json:"id"`
	Provider  ProviderID       `json:"provider"`
	Secret    string           `json:"key"`
	Name      string           `json:"name"`
	Status    CredentialStatus `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
}

// Masked returns the secret with everything but the first and last four
// characters elided, e.g. "sk-a...wxyz". Short secrets are fully masked.
func (c Credential) Masked() string {
	const visible = 4
	if len(c.Secret) <= visible*2 {
		return "****"
	}
	return c.Secret[:visible] + "..." + c.Secret[len(c.Secret)-visible:]
}

// ValidationResult is the outcome of a credential check. Failure carries the
// reason so callers can tell a refused key from an unreachable provider.
type ValidationResult struct {
	Failure ValidationFailure
}

// ValidationOK is the passing result.
var ValidationOK = ValidationResult{Failure: ValidationFailureNone}

// ValidationFailed returns a failing result with the given reason.
func ValidationFailed(reason ValidationFailure) ValidationResult {
	return ValidationResult{Failure: reason}
}

// Valid reports whether the check passed.
func (r ValidationResult) Valid() bool {
	return r.Failure == ValidationFailureNone || r.Failure == ""
}

// Status maps the result to the credential status it produces.
func (r ValidationResult) Status() CredentialStatus {
	if r.Valid() {
		return CredentialStatusValid
	}
	return CredentialStatusInvalid
}
