// Package otp runs the phone verification challenge: request a code,
// verify it once, within five minutes and five attempts.
package otp

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"partyinbangalore-backend/logger"
	"partyinbangalore-backend/response"
	"partyinbangalore-backend/twilio"
	"regexp"
	"sync"
	"time"
)

const (
	TTL         = 5 * time.Minute
	MaxAttempts = 5

	otpMessage = "Your Party In Bangalore OTP is %s. It expires in 5 minutes."
)

// Indian mobile numbers only: the +91 prefix followed by ten digits.
var phoneRx = regexp.MustCompile(`^\+91[0-9]{10}$`)

func ValidPhone(phone string) bool {
	return phoneRx.MatchString(phone)
}

func NewService(store ChallengeStore, sender twilio.Sender) *Service {
	return &Service{
		store:  store,
		sender: sender,
		now:    time.Now,
	}
}

type Service struct {
	store  ChallengeStore
	sender twilio.Sender
	now    func() time.Time

	requests sync.Map
}

// Request issues a fresh challenge for the phone and dispatches it by SMS.
// A concurrent request for the same number is turned away instead of
// racing; a failed dispatch rolls the stored challenge back so the next
// request starts clean.
func (s *Service) Request(ctx context.Context, phone string) error {
	if !ValidPhone(phone) {
		return response.InvalidPhone()
	}

	if _, loaded := s.requests.LoadOrStore(phone, true); loaded {
		return response.ValidationFailed("An OTP is already on its way, please wait")
	}
	defer s.requests.Delete(phone)

	code, err := generateCode()
	if err != nil {
		return fmt.Errorf("request: unable to generate otp: %w", err)
	}

	ch := Challenge{Code: code, IssuedAt: s.now().UTC()}
	if err := s.store.Put(phone, ch); err != nil {
		return fmt.Errorf("request: unable to save otp for %s: %w", phone, err)
	}

	sid, err := s.sender.Send(phone, fmt.Sprintf(otpMessage, code))
	if err != nil {
		logger.Errorf(ctx, "request: unable to send otp to %s: %+v", phone, err)
		if delErr := s.store.Delete(phone); delErr != nil {
			logger.Errorf(ctx, "request: unable to roll back otp for %s: %+v", phone, delErr)
		}
		return response.SMSNotSent()
	}

	logger.Infof(ctx, "request: otp dispatched to %s: sid: %s", phone, sid)
	return nil
}

// Verify consumes the challenge. The code is single use: success, expiry
// and the attempt cap all remove it, only a plain mismatch keeps it.
func (s *Service) Verify(ctx context.Context, phone, code string) error {
	if !ValidPhone(phone) {
		return response.InvalidPhone()
	}

	ch, ok, err := s.store.Get(phone)
	if err != nil {
		return fmt.Errorf("verify: unable to read otp for %s: %w", phone, err)
	}
	if !ok {
		return response.OTPNotRequested()
	}

	if s.now().UTC().After(ch.IssuedAt.Add(TTL)) {
		if err := s.store.Delete(phone); err != nil {
			logger.Errorf(ctx, "verify: unable to delete expired otp for %s: %+v", phone, err)
		}
		return response.OTPExpired()
	}

	if ch.Code != code {
		ch.Attempts++
		if ch.Attempts >= MaxAttempts {
			if err := s.store.Delete(phone); err != nil {
				logger.Errorf(ctx, "verify: unable to delete exhausted otp for %s: %+v", phone, err)
			}
			return response.OTPAttemptsExceeded()
		}
		if err := s.store.Put(phone, ch); err != nil {
			return fmt.Errorf("verify: unable to record attempt for %s: %w", phone, err)
		}
		return response.OTPMismatch()
	}

	if err := s.store.Delete(phone); err != nil {
		return fmt.Errorf("verify: unable to consume otp for %s: %w", phone, err)
	}
	return nil
}

// generateCode draws a uniformly random six digit code, leading zeros
// included.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
