// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package flow

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/lara-connect/internal/validators"
	"github.com/MKhiriev/lara-connect/models"
)

//go:generate mockgen -source=sequencer.go -destination=../mock/flow_mock.go -package=mock

var (
	// ErrPasswordsDoNotMatch is the local confirmation check of the signup
	// and reset steps.
	ErrPasswordsDoNotMatch = errors.New("passwords do not match")

	// ErrBusy is returned when Submit is called while a step is in flight.
	ErrBusy = errors.New("a step is already being submitted")

	// ErrNothingToSubmit is returned in a state that has no step.
	ErrNothingToSubmit = errors.New("nothing to submit in this state")
)

// API is the server side of every step.
type API interface {
	Signup(ctx context.Context, req models.SignupRequest) (models.SignupResponse, error)
	VerifySignup(ctx context.Context, req models.VerifySignupRequest) (models.MessageResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (models.Session, error)
	ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) (models.MessageResponse, error)
	VerifyReset(ctx context.Context, req models.VerifyResetRequest) (models.MessageResponse, error)
	ResetPassword(ctx context.Context, req models.ResetPasswordRequest) (models.MessageResponse, error)
}

// Landing is where the client goes after a successful login.
type Landing struct {
	Route      string
	Identifier string
	Role       models.Role
	Token      string
}

// Sequencer drives the credential steps. It is safe for concurrent use; the
// API call of Submit runs without holding the lock so the state can be read
// while a step is in flight.
type Sequencer struct {
	api       API
	validator validators.Validator

	mu      sync.Mutex
	state   State
	form    Form
	err     error
	notice  string
	landing *Landing
	busy    bool
}

// NewSequencer returns a sequencer in [StateSignup].
func NewSequencer(api API, validator validators.Validator) *Sequencer {
	return &Sequencer{api: api, validator: validator, state: StateSignup}
}

// State returns the current step.
func (s *Sequencer) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Form returns a copy of the form values.
func (s *Sequencer) Form() Form {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

// Set updates one form value.
func (s *Sequencer) Set(field Field, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form.Set(field, value)
}

// Err returns the error of the last failed step, nil after a success or a
// navigation.
func (s *Sequencer) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Notice returns the server message of the last successful step.
func (s *Sequencer) Notice() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notice
}

// Landing returns the login result, nil unless authenticated.
func (s *Sequencer) Landing() *Landing {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.landing == nil {
		return nil
	}
	landing := *s.landing
	return &landing
}

// Busy reports whether a step is in flight.
func (s *Sequencer) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// ToSignup, ToLogin and ToForgot switch forms. The form is cleared, as are
// the last error and notice. They are ignored while a step is in flight.
func (s *Sequencer) ToSignup() { s.navigate(StateSignup) }

func (s *Sequencer) ToLogin() { s.navigate(StateLogin) }

func (s *Sequencer) ToForgot() { s.navigate(StateForgotEmailEntry) }

func (s *Sequencer) navigate(to State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return
	}

	s.state = to
	s.form = Form{}
	s.err = nil
	s.notice = ""
	s.landing = nil
}

// Resume enters [StateAuthenticated] with a session restored from an earlier
// run.
func (s *Sequencer) Resume(session models.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = StateAuthenticated
	s.form = Form{Identifier: session.Identifier}
	s.err = nil
	s.notice = ""
	s.landing = landingFor(session)
}

// Logout leaves [StateAuthenticated] for the login form.
func (s *Sequencer) Logout() {
	s.ToLogin()
}

// Submit sends the step of the current state. On success the state advances
// and the server message becomes the notice; on failure the state is kept
// and the error is recorded and returned.
func (s *Sequencer) Submit(ctx context.Context) error {
	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return ErrBusy
	}
	state, form := s.state, s.form
	s.busy = true
	s.mu.Unlock()

	next, notice, landing, err := s.step(ctx, state, form)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy = false

	if err != nil {
		s.err = err
		return err
	}

	s.err = nil
	s.notice = notice
	s.state = next
	s.landing = landing

	switch next {
	case StateSignupOtpPending, StateForgotOtpPending, StateForgotResetPending:
		s.form.OTP = ""
	case StateLogin:
		if state == StateForgotResetPending {
			s.form = Form{}
		} else {
			s.form.OTP = ""
			s.form.ConfirmPassword = ""
		}
	case StateAuthenticated:
		s.form.clearSecrets()
	}

	return nil
}

// step runs the request of state without touching the sequencer.
func (s *Sequencer) step(ctx context.Context, state State, form Form) (State, string, *Landing, error) {
	switch state {
	case StateSignup:
		if form.Password != form.ConfirmPassword {
			return state, "", nil, ErrPasswordsDoNotMatch
		}
		req := models.SignupRequest{
			Identifier:      form.Identifier,
			Email:           form.Email,
			Password:        form.Password,
			ConfirmPassword: form.ConfirmPassword,
		}
		if err := s.validator.Validate(ctx, req); err != nil {
			return state, "", nil, err
		}
		resp, err := s.api.Signup(ctx, req)
		if err != nil {
			return state, "", nil, err
		}
		return StateSignupOtpPending, resp.Message, nil, nil

	case StateSignupOtpPending:
		req := models.VerifySignupRequest{Identifier: form.Identifier, OTP: form.OTP}
		if err := s.validator.Validate(ctx, req); err != nil {
			return state, "", nil, err
		}
		resp, err := s.api.VerifySignup(ctx, req)
		if err != nil {
			return state, "", nil, err
		}
		return StateLogin, resp.Message, nil, nil

	case StateLogin:
		req := models.LoginRequest{Identifier: form.Identifier, Password: form.Password}
		if err := s.validator.Validate(ctx, req); err != nil {
			return state, "", nil, err
		}
		session, err := s.api.Login(ctx, req)
		if err != nil {
			return state, "", nil, err
		}
		return StateAuthenticated, "", landingFor(session), nil

	case StateForgotEmailEntry:
		req := models.ForgotPasswordRequest{Email: form.Email}
		if err := s.validator.Validate(ctx, req); err != nil {
			return state, "", nil, err
		}
		resp, err := s.api.ForgotPassword(ctx, req)
		if err != nil {
			return state, "", nil, err
		}
		return StateForgotOtpPending, resp.Message, nil, nil

	case StateForgotOtpPending:
		req := models.VerifyResetRequest{Email: form.Email, OTP: form.OTP}
		if err := s.validator.Validate(ctx, req); err != nil {
			return state, "", nil, err
		}
		resp, err := s.api.VerifyReset(ctx, req)
		if err != nil {
			return state, "", nil, err
		}
		return StateForgotResetPending, resp.Message, nil, nil

	case StateForgotResetPending:
		if form.Password != form.ConfirmPassword {
			return state, "", nil, ErrPasswordsDoNotMatch
		}
		req := models.ResetPasswordRequest{
			Email:           form.Email,
			Password:        form.Password,
			ConfirmPassword: form.ConfirmPassword,
		}
		if err := s.validator.Validate(ctx, req); err != nil {
			return state, "", nil, err
		}
		resp, err := s.api.ResetPassword(ctx, req)
		if err != nil {
			return state, "", nil, err
		}
		return StateLogin, resp.Message, nil, nil
	}

	return state, "", nil, ErrNothingToSubmit
}

func landingFor(session models.Session) *Landing {
	route := session.Landing
	if route == "" {
		route = session.Role.Landing()
	}

	return &Landing{
		Route:      route,
		Identifier: session.Identifier,
		Role:       session.Role,
		Token:      session.Token,
	}
}

// ErrorMessage renders err for the user. Server errors already carry the
// server's message.
func ErrorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrPasswordsDoNotMatch):
		return "Passwords do not match"
	case errors.Is(err, context.DeadlineExceeded):
		return "The server did not answer in time"
	}
	return err.Error()
}
