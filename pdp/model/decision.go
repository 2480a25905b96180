package model

import (
	"github.com/dev-mohitbeniwal/quill/model"
)

// Outcome is the result category of an authorization check.
type Outcome int

const (
	Allow Outcome = iota
	Unauthenticated
	Forbidden
	Error
)

func (o Outcome) String() string {
	switch o {
	case Allow:
		return "allow"
	case Unauthenticated:
		return "unauthenticated"
	case Forbidden:
		return "forbidden"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Decision is what a guard returns. User is set only on Allow; Err only on
// Error. Reason is for logs and never shown to clients.
type Decision struct {
	Outcome Outcome
	User    *model.User
	Reason  string
	Err     error
}

func Allowed(user *model.User, reason string) Decision {
	return Decision{Outcome: Allow, User: user, Reason: reason}
}

func Denied(reason string) Decision {
	return Decision{Outcome: Forbidden, Reason: reason}
}

func Failed(err error) Decision {
	return Decision{Outcome: Error, Reason: "role lookup failed", Err: err}
}
