package verify

import (
	"context"
	"io"
	"log"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studesk/internal/portal/gateway"
)

// fakeValidator records calls and answers from a canned table
type fakeValidator struct {
	mu      sync.Mutex
	calls   []gateway.Identity
	known   map[string]*gateway.Student // keyed by apogee
	delay   time.Duration
	failErr error
}

func (f *fakeValidator) ValidateStudent(ctx context.Context, identity gateway.Identity) (*gateway.Student, bool, error) {
	f.mu.Lock()
	f.calls = append(f.calls, identity)
	delay, failErr := f.delay, f.failErr
	student := f.known[identity.Apogee]
	f.mu.Unlock()

	if delay > 0 {
		time.Sleep(delay)
	}
	if failErr != nil {
		return nil, false, failErr
	}
	if student == nil {
		return nil, false, nil
	}
	return student, true, nil
}

func (f *fakeValidator) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeValidator) lastCall() gateway.Identity {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[len(f.calls)-1]
}

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func newTestVerifier(validator StudentValidator) (*Verifier, chan State) {
	results := make(chan State, 8)
	v := NewVerifierWith(validator, 20*time.Millisecond, quietLogger())
	v.OnResult = func(state State, _ *gateway.Student) {
		if state != StateIdle {
			results <- state
		}
	}
	return v, results
}

func waitResult(t *testing.T, results chan State) State {
	t.Helper()
	select {
	case state := <-results:
		return state
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for validation result")
		return StateIdle
	}
}

func Test_ShapeValid(t *testing.T) {
	assert.True(t, ShapeValid("a@univ.ma", "20250001", "AB123456"))
	assert.False(t, ShapeValid("not-an-email", "20250001", "AB123456"))
	assert.False(t, ShapeValid("a@univ.ma", "1234567", "AB123456"))  // 7 digits
	assert.False(t, ShapeValid("a@univ.ma", "123456789", "AB12345")) // 9 digits
	assert.False(t, ShapeValid("a@univ.ma", "20250001", ""))
}

func Test_Verifier_RapidEditsFireOnce_WithLastValues(t *testing.T) {
	fake := &fakeValidator{known: map[string]*gateway.Student{
		"20250003": {ID: 3, Apogee: "20250003"},
	}}
	v, results := newTestVerifier(fake)

	// Three keystroke bursts inside one quiet period
	v.SetInput("a@univ.ma", "20250001", "AB1")
	v.SetInput("a@univ.ma", "20250002", "AB1")
	v.SetInput("a@univ.ma", "20250003", "AB1")

	state := waitResult(t, results)
	assert.Equal(t, StateVerified, state)
	assert.Equal(t, 1, fake.callCount())
	assert.Equal(t, "20250003", fake.lastCall().Apogee)

	require.NotNil(t, v.Student())
	assert.Equal(t, uint(3), v.Student().ID)
}

func Test_Verifier_MalformedInputNeverHitsNetwork(t *testing.T) {
	fake := &fakeValidator{}
	v, _ := newTestVerifier(fake)

	v.SetInput("not-an-email", "123", "")
	time.Sleep(100 * time.Millisecond)

	assert.Equal(t, StateIdle, v.State())
	assert.Equal(t, 0, fake.callCount())
}

func Test_Verifier_EditClearsVerifiedState(t *testing.T) {
	fake := &fakeValidator{known: map[string]*gateway.Student{
		"20250001": {ID: 1, Apogee: "20250001"},
	}}
	v, results := newTestVerifier(fake)

	v.SetInput("a@univ.ma", "20250001", "AB1")
	require.Equal(t, StateVerified, waitResult(t, results))
	require.NotNil(t, v.Student())

	// A malformed edit drops the verified identity immediately
	v.SetInput("a@univ.ma", "2025", "AB1")
	assert.Equal(t, StateIdle, v.State())
	assert.Nil(t, v.Student())
}

func Test_Verifier_StaleResultDiscarded(t *testing.T) {
	fake := &fakeValidator{
		delay: 80 * time.Millisecond,
		known: map[string]*gateway.Student{
			"20250001": {ID: 1, Apogee: "20250001"},
			"20250002": {ID: 2, Apogee: "20250002"},
		},
	}
	v, results := newTestVerifier(fake)

	v.SetInput("a@univ.ma", "20250001", "AB1")
	// Let the first call get in flight, then supersede it
	time.Sleep(40 * time.Millisecond)
	v.SetInput("a@univ.ma", "20250002", "AB1")

	state := waitResult(t, results)
	assert.Equal(t, StateVerified, state)

	// Only the second result may publish
	require.NotNil(t, v.Student())
	assert.Equal(t, uint(2), v.Student().ID)

	// No second emission from the stale call
	select {
	case extra := <-results:
		t.Fatalf("stale result published: %v", extra)
	case <-time.After(200 * time.Millisecond):
	}
}

func Test_Verifier_NoMatchRejects(t *testing.T) {
	fake := &fakeValidator{}
	v, results := newTestVerifier(fake)

	v.SetInput("a@univ.ma", "99999999", "ZZ1")
	assert.Equal(t, StateRejected, waitResult(t, results))
	assert.Nil(t, v.Student())
}

func Test_Verifier_NetworkErrorRejects(t *testing.T) {
	fake := &fakeValidator{failErr: context.DeadlineExceeded}
	v, results := newTestVerifier(fake)

	v.SetInput("a@univ.ma", "20250001", "AB1")
	assert.Equal(t, StateRejected, waitResult(t, results))
}

func Test_Verifier_Reset(t *testing.T) {
	fake := &fakeValidator{known: map[string]*gateway.Student{
		"20250001": {ID: 1, Apogee: "20250001"},
	}}
	v, results := newTestVerifier(fake)

	v.SetInput("a@univ.ma", "20250001", "AB1")
	require.Equal(t, StateVerified, waitResult(t, results))

	v.Reset()
	assert.Equal(t, StateIdle, v.State())
	assert.Nil(t, v.Student())
}
