package otp

import (
	"context"
	"errors"
	"testing"
	"time"

	"partyinbangalore-backend/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const phone = "+919876543210"

type fakeSender struct {
	sent []string
	fail bool
}

func (f *fakeSender) Send(to, message string) (string, error) {
	if f.fail {
		return "", errors.New("carrier unreachable")
	}
	f.sent = append(f.sent, message)
	return "SM123", nil
}

func newTestService(sender *fakeSender) (*Service, ChallengeStore) {
	store := NewMemoryStore()
	svc := NewService(store, sender)
	return svc, store
}

func storedCode(t *testing.T, store ChallengeStore) string {
	t.Helper()
	ch, ok, err := store.Get(phone)
	require.NoError(t, err)
	require.True(t, ok)
	return ch.Code
}

func TestRequestRejectsBadPhones(t *testing.T) {
	svc, _ := newTestService(&fakeSender{})
	for _, p := range []string{"", "9876543210", "+9198765432", "+9198765432101", "+91abcdefghij"} {
		err := svc.Request(context.Background(), p)
		assert.Equal(t, response.InvalidPhone(), err, "phone %q", p)
	}
}

func TestRequestStoresAndSendsSixDigitCode(t *testing.T) {
	sender := &fakeSender{}
	svc, store := newTestService(sender)

	require.NoError(t, svc.Request(context.Background(), phone))

	code := storedCode(t, store)
	assert.Regexp(t, `^[0-9]{6}$`, code)
	require.Len(t, sender.sent, 1)
	assert.Contains(t, sender.sent[0], code)
}

func TestRequestRollsBackOnSendFailure(t *testing.T) {
	sender := &fakeSender{fail: true}
	svc, store := newTestService(sender)

	err := svc.Request(context.Background(), phone)
	assert.Equal(t, response.SMSNotSent(), err)

	_, ok, err := store.Get(phone)
	require.NoError(t, err)
	assert.False(t, ok, "challenge must not survive a failed dispatch")

	// A retry starts clean and succeeds.
	sender.fail = false
	require.NoError(t, svc.Request(context.Background(), phone))
	_, ok, _ = store.Get(phone)
	assert.True(t, ok)
}

func TestVerifyWithoutRequest(t *testing.T) {
	svc, _ := newTestService(&fakeSender{})
	err := svc.Verify(context.Background(), phone, "123456")
	assert.Equal(t, response.OTPNotRequested(), err)
}

func TestVerifyMismatchKeepsChallengeThenSucceeds(t *testing.T) {
	svc, store := newTestService(&fakeSender{})
	require.NoError(t, svc.Request(context.Background(), phone))
	code := storedCode(t, store)

	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}
	err := svc.Verify(context.Background(), phone, wrong)
	assert.Equal(t, response.OTPMismatch(), err)

	// Challenge survives the mismatch and the right code still works.
	require.NoError(t, svc.Verify(context.Background(), phone, code))

	// Single use: the consumed code is gone.
	err = svc.Verify(context.Background(), phone, code)
	assert.Equal(t, response.OTPNotRequested(), err)
}

func TestVerifyExpiry(t *testing.T) {
	svc, store := newTestService(&fakeSender{})
	require.NoError(t, svc.Request(context.Background(), phone))
	code := storedCode(t, store)

	svc.now = func() time.Time { return time.Now().Add(TTL + time.Second) }

	err := svc.Verify(context.Background(), phone, code)
	assert.Equal(t, response.OTPExpired(), err)

	_, ok, _ := store.Get(phone)
	assert.False(t, ok, "expired challenge must be removed")
}

func TestVerifyFailsClosedAfterMaxAttempts(t *testing.T) {
	svc, store := newTestService(&fakeSender{})
	require.NoError(t, svc.Request(context.Background(), phone))
	code := storedCode(t, store)

	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}

	for i := 0; i < MaxAttempts-1; i++ {
		err := svc.Verify(context.Background(), phone, wrong)
		assert.Equal(t, response.OTPMismatch(), err, "attempt %d", i+1)
	}

	err := svc.Verify(context.Background(), phone, wrong)
	assert.Equal(t, response.OTPAttemptsExceeded(), err)

	// Even the right code is dead now; a fresh request is required.
	err = svc.Verify(context.Background(), phone, code)
	assert.Equal(t, response.OTPNotRequested(), err)

	_, ok, _ := store.Get(phone)
	assert.False(t, ok)
}

func TestNewRequestOverwritesOldChallenge(t *testing.T) {
	svc, store := newTestService(&fakeSender{})
	require.NoError(t, svc.Request(context.Background(), phone))
	first := storedCode(t, store)

	require.NoError(t, svc.Request(context.Background(), phone))
	second := storedCode(t, store)

	if first != second {
		err := svc.Verify(context.Background(), phone, first)
		assert.Equal(t, response.OTPMismatch(), err)
	}
	require.NoError(t, svc.Verify(context.Background(), phone, second))
}
