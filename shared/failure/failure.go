package failure

import (
	"errors"
)

// Kind classifies a failure for the presentation layer. Transport problems,
// backend-reported errors, and client-side precondition misses are surfaced
// differently, so callers branch on the kind rather than the message.
type Kind int

const (
	KindUnknown Kind = iota
	KindNetwork
	KindApplication
	KindValidation
	KindInvalidCredentials
	KindVerification
	KindLoginRequired
)

// Failure is a wrapper for user-facing error messages classified by kind.
type Failure struct {
	Kind    Kind
	Message string
}

var LoginRequired = &Failure{Kind: KindLoginRequired, Message: "Admin login required."}
var InvalidCredentialsError = &Failure{Kind: KindInvalidCredentials, Message: "Invalid username or password."}
var VerificationError = &Failure{Kind: KindVerification, Message: "Failed to verify credentials."}

// Error returns the user-facing message.
func (e *Failure) Error() string {
	return e.Message
}

// Network returns a new Failure for a transport-level problem. The original
// cause is expected to be logged by the caller; only a generic message is
// carried to the user.
func Network(msg string) error {
	return &Failure{
		Kind:    KindNetwork,
		Message: msg,
	}
}

// Application returns a new Failure for a backend-reported error. When the
// backend supplied no message, fallback is used verbatim.
func Application(msg, fallback string) error {
	if msg == "" {
		msg = fallback
	}

	return &Failure{
		Kind:    KindApplication,
		Message: msg,
	}
}

// Validation returns a new Failure for a client-side precondition miss caught
// before any network call.
func Validation(msg string) error {
	return &Failure{
		Kind:    KindValidation,
		Message: msg,
	}
}

// ValidationFromError returns a new validation Failure with message derived
// from an error interface.
func ValidationFromError(err error) error {
	if err != nil {
		return &Failure{
			Kind:    KindValidation,
			Message: err.Error(),
		}
	}

	return nil
}

// GetKind returns the kind of an error interface.
func GetKind(err error) Kind {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Kind
	}

	return KindUnknown
}

// IsKind reports whether err is a Failure of the given kind.
func IsKind(err error, kind Kind) bool {
	return GetKind(err) == kind
}
