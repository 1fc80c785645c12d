package common

import "errors"

// Kind groups errors by how a transport should surface them.
type Kind int

const (
	// KindInfrastructure covers store failures, corrupt data and anything
	// unclassified.
	KindInfrastructure Kind = iota
	KindValidation
	KindAuth
	KindState
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuth:
		return "auth"
	case KindState:
		return "state"
	default:
		return "infrastructure"
	}
}

var kinds = []struct {
	err  error
	kind Kind
}{
	{ErrDuplicateEmail, KindValidation},
	{ErrWrongEmail, KindValidation},
	{ErrWrongPassword, KindValidation},
	{ErrInvalidInput, KindValidation},
	{ErrMissingToken, KindAuth},
	{ErrInvalidSignature, KindAuth},
	{ErrTokenExpired, KindAuth},
	{ErrNotFound, KindState},
	{ErrNothingToRemove, KindState},
}

// KindOf reports the kind of err. Errors that wrap none of the known
// sentinels are infrastructure errors.
func KindOf(err error) Kind {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return KindInfrastructure
}

// PublicMessage returns the text that may be shown to a client for err.
// Infrastructure errors are collapsed to a generic message.
func PublicMessage(err error) string {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			if k.err == ErrInvalidInput {
				// validation details are user facing
				return err.Error()
			}
			return k.err.Error()
		}
	}
	return ErrInternal.Error()
}
