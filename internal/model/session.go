package model

import "context"

// Storage keys shared by both persistence tiers.
const (
	KeyToken = "token"
	KeyUser  = "user"
)

// Tier selects where a session is persisted.
type Tier int

const (
	// TierDurable survives restarts.
	TierDurable Tier = iota
	// TierEphemeral is cleared when the browsing session ends.
	TierEphemeral
)

func (t Tier) String() string {
	switch t {
	case TierDurable:
		return "durable"
	case TierEphemeral:
		return "ephemeral"
	default:
		return "unknown"
	}
}

// AuthState is the per-process authentication state.
type AuthState int

const (
	// StateUnknown is the state before bootstrap has run.
	StateUnknown AuthState = iota
	StateUnauthenticated
	StateAuthenticated
)

func (s AuthState) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Decision is the outcome of an authorization check.
type Decision int

const (
	Allow Decision = iota
	// DenyUnknown means the session has not been bootstrapped yet.
	DenyUnknown
	// DenyUnauthenticated means nobody is logged in.
	DenyUnauthenticated
	// DenyForbidden means the user is logged in with a role outside the required set.
	DenyForbidden
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case DenyUnknown:
		return "deny: session not bootstrapped"
	case DenyUnauthenticated:
		return "deny: not logged in"
	case DenyForbidden:
		return "deny: insufficient role"
	default:
		return "deny"
	}
}

// Allowed reports whether d permits access.
func (d Decision) Allowed() bool {
	return d == Allow
}

// Session is the active credential and profile pair.
type Session struct {
	Token   string
	Profile Profile
	Tier    Tier
}

// KVStore is a string key-value persistence tier.
type KVStore interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// LogoutNotifier tells the backend that a token is being abandoned.
type LogoutNotifier interface {
	Logout(ctx context.Context, token string) error
}

// Navigator moves the user to another route.
type Navigator interface {
	Navigate(path string)
}

// Notifier displays transient messages to the user.
type Notifier interface {
	Success(msg string)
	Info(msg string)
	Error(msg string)
}
