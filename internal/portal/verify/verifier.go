// Package verify runs debounced student identity validation against the
// backend. Edits arrive on every keystroke; the network is only touched
// after a quiet period, and only the most recently scheduled check may
// publish its result.
package verify

import (
	"context"
	"log"
	"regexp"
	"sync"
	"time"

	"studesk/internal/portal/gateway"
)

// DefaultDebounce is the quiet period before a validation call fires
const DefaultDebounce = 600 * time.Millisecond

const networkTimeout = 15 * time.Second

var (
	emailPattern  = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	apogeePattern = regexp.MustCompile(`^\d{8}$`)
)

// State is the verifier's lifecycle state
type State int

const (
	// StateIdle means no well-formed identity is pending
	StateIdle State = iota
	// StateValidating means a check is scheduled or in flight
	StateValidating
	// StateVerified means the backend matched the identity
	StateVerified
	// StateRejected means the backend did not match it, or the call failed
	StateRejected
)

func (s State) String() string {
	switch s {
	case StateValidating:
		return "validating"
	case StateVerified:
		return "verified"
	case StateRejected:
		return "rejected"
	default:
		return "idle"
	}
}

// StudentValidator is the slice of the gateway the verifier needs
type StudentValidator interface {
	ValidateStudent(ctx context.Context, identity gateway.Identity) (*gateway.Student, bool, error)
}

// Verifier debounces identity edits and validates the settled value
type Verifier struct {
	validator StudentValidator
	debounce  time.Duration
	logger    *log.Logger

	// OnResult, when set, is called after each validation resolves or is
	// rejected locally. Invoked outside the lock.
	OnResult func(state State, student *gateway.Student)

	mu         sync.Mutex
	timer      *time.Timer
	generation uint64
	state      State
	student    *gateway.Student
	identity   gateway.Identity
}

// NewVerifier creates a verifier with the default quiet period
func NewVerifier(validator StudentValidator) *Verifier {
	return NewVerifierWith(validator, DefaultDebounce, log.Default())
}

// NewVerifierWith allows a custom debounce and logger, used by tests
func NewVerifierWith(validator StudentValidator, debounce time.Duration, logger *log.Logger) *Verifier {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Verifier{
		validator: validator,
		debounce:  debounce,
		logger:    logger,
		state:     StateIdle,
	}
}

// ShapeValid reports whether the triple is well formed: email shape,
// exactly 8 digits of apogee, non-empty CIN
func ShapeValid(email, apogee, cin string) bool {
	return emailPattern.MatchString(email) &&
		apogeePattern.MatchString(apogee) &&
		cin != ""
}

// SetInput records an identity edit. A malformed triple never reaches the
// network: any pending timer is dropped, stale verified state is cleared
// and the verifier returns to idle. A well-formed triple (re)schedules the
// debounced check; every edit supersedes whatever was scheduled before.
func (v *Verifier) SetInput(email, apogee, cin string) {
	v.mu.Lock()

	v.identity = gateway.Identity{Email: email, Apogee: apogee, CIN: cin}
	v.generation++
	if v.timer != nil {
		v.timer.Stop()
		v.timer = nil
	}
	v.student = nil

	if !ShapeValid(email, apogee, cin) {
		v.state = StateIdle
		v.mu.Unlock()
		v.emit(StateIdle, nil)
		return
	}

	v.state = StateValidating
	gen := v.generation
	v.timer = time.AfterFunc(v.debounce, func() { v.fire(gen) })
	v.mu.Unlock()
}

// fire runs the network check for one scheduled generation
func (v *Verifier) fire(gen uint64) {
	v.mu.Lock()
	if gen != v.generation {
		v.mu.Unlock()
		return
	}
	identity := v.identity
	v.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), networkTimeout)
	defer cancel()

	student, valid, err := v.validator.ValidateStudent(ctx, identity)

	v.mu.Lock()
	if gen != v.generation {
		// A newer edit won; this result is stale
		v.mu.Unlock()
		return
	}

	switch {
	case err != nil:
		v.logger.Printf("⚠️ Identity validation failed: %v", err)
		v.state = StateRejected
		v.student = nil
	case valid:
		v.state = StateVerified
		v.student = student
	default:
		v.state = StateRejected
		v.student = nil
	}
	state, result := v.state, v.student
	v.mu.Unlock()

	v.emit(state, result)
}

func (v *Verifier) emit(state State, student *gateway.Student) {
	if v.OnResult != nil {
		v.OnResult(state, student)
	}
}

// State returns the current lifecycle state
func (v *Verifier) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Student returns the verified student, nil unless state is verified
func (v *Verifier) Student() *gateway.Student {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.student
}

// Reset drops any pending check and returns to idle
func (v *Verifier) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.generation++
	if v.timer != nil {
		v.timer.Stop()
		v.timer = nil
	}
	v.state = StateIdle
	v.student = nil
	v.identity = gateway.Identity{}
}
