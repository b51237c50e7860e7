package link

import (
	"crypto/subtle"
	"fmt"

	"github.com/heartmarshall/rotection-backend/internal/domain"
)

// State is a step of the OAuth account linking flow.
type State int

const (
	StateIdle State = iota
	StateAwaitingRedirectReturn
	StateVerifying
	StateLinked
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingRedirectReturn:
		return "awaiting_redirect_return"
	case StateVerifying:
		return "verifying"
	case StateLinked:
		return "linked"
	case StateError:
		return "error"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// IsTerminal reports whether no further transition except Reset is expected.
func (s State) IsTerminal() bool {
	return s == StateLinked || s == StateError
}

// User-facing messages of the OAuth path.
const (
	MsgProviderDenied  = "Roblox authorization was not completed."
	MsgMissingCode     = "No authorization code received"
	MsgNoSession       = "No authenticated user found. Please sign in first."
	MsgStateMismatch   = "Invalid state parameter. Possible CSRF attack."
	MsgBadTransition   = "Account linking is not in progress. Please start again."
	MsgExchangeFailed  = "Could not complete Roblox sign-in. Please try again."
	MsgProfileFailed   = "Could not read your Roblox profile. Please try again."
	MsgAlreadyLinked   = "This Roblox account is already linked to another Rotection account."
	MsgLinkSaveFailed  = "Could not save the linked Roblox account. Please try again."
	MsgNotFound        = "Roblox user not found"
	MsgNoChallenge     = "No verification in progress. Please start again."
	MsgPhraseNotFound  = "Verification phrase not found in your Roblox profile description."
	MsgLookupFailed    = "Could not reach Roblox. Please try again."
	MsgInvalidUsername = "Roblox usernames are 3 to 20 letters, numbers or underscores."
)

// Callback is what the identity provider sends back on the redirect, plus
// whether the caller holds a local session.
type Callback struct {
	Code             string
	State            string
	Error            string
	ErrorDescription string
	Authenticated    bool
}

// Flow is an immutable value of the OAuth linking state machine. Every
// transition returns a new Flow and never performs I/O.
type Flow struct {
	state    State
	expected string
	code     string
	link     *domain.RobloxLink
	err      error
}

// NewFlow returns a flow in the Idle state.
func NewFlow() Flow {
	return Flow{state: StateIdle}
}

// State returns the current step.
func (f Flow) State() State { return f.state }

// Code returns the authorization code accepted by Return.
func (f Flow) Code() string { return f.code }

// Link returns the linked identity once the flow is Linked.
func (f Flow) Link() *domain.RobloxLink { return f.link }

// Err returns the failure of a flow in the Error state. It is a
// *domain.UserError so callers can show its message.
func (f Flow) Err() error { return f.err }

// Begin records the anti-CSRF state persisted before redirecting to the
// provider. It is allowed from Idle and from either terminal state.
func (f Flow) Begin(state string) (Flow, error) {
	if f.state != StateIdle && !f.state.IsTerminal() {
		return f, fmt.Errorf("link: begin from %s: %w", f.state, domain.ErrConflict)
	}
	if state == "" {
		return f, fmt.Errorf("link: begin: %w", domain.NewValidationError("state", "required"))
	}
	return Flow{state: StateAwaitingRedirectReturn, expected: state}, nil
}

// Return validates the provider callback. On success the flow is Verifying and
// holds the code; otherwise it is Error. The checks run before any network
// call is made, so a forged callback never reaches the token endpoint.
func (f Flow) Return(cb Callback) Flow {
	switch {
	case cb.Error != "":
		msg := MsgProviderDenied
		if cb.ErrorDescription != "" {
			msg = cb.ErrorDescription
		}
		return f.Fail(domain.ErrValidation, msg)
	case cb.Code == "":
		return f.Fail(domain.ErrValidation, MsgMissingCode)
	case !cb.Authenticated:
		return f.Fail(domain.ErrUnauthorized, MsgNoSession)
	case f.state != StateAwaitingRedirectReturn:
		return f.Fail(domain.ErrIntegrity, MsgStateMismatch)
	case !sameState(f.expected, cb.State):
		return f.Fail(domain.ErrIntegrity, MsgStateMismatch)
	}

	return Flow{state: StateVerifying, expected: f.expected, code: cb.Code}
}

// Succeed completes a Verifying flow with the identity now stored on the account.
func (f Flow) Succeed(link domain.RobloxLink) Flow {
	if f.state != StateVerifying {
		return f.Fail(domain.ErrConflict, MsgBadTransition)
	}
	return Flow{state: StateLinked, link: &link}
}

// Fail moves the flow to Error with a user-facing message of the given kind.
func (f Flow) Fail(kind error, msg string) Flow {
	return Flow{state: StateError, err: domain.NewUserError(kind, msg)}
}

// Reset returns to Idle, discarding any pending state.
func (f Flow) Reset() Flow {
	return NewFlow()
}

func sameState(expected, got string) bool {
	if expected == "" || got == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(got)) == 1
}
