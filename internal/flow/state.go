// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package flow

// State is a step of the credential lifecycle as seen by the client.
type State int

const (
	StateSignup State = iota
	StateSignupOtpPending
	StateLogin
	StateForgotEmailEntry
	StateForgotOtpPending
	StateForgotResetPending
	StateAuthenticated
)

var stateNames = map[State]string{
	StateSignup:             "Signup",
	StateSignupOtpPending:   "SignupOtpPending",
	StateLogin:              "Login",
	StateForgotEmailEntry:   "ForgotEmailEntry",
	StateForgotOtpPending:   "ForgotOtpPending",
	StateForgotResetPending: "ForgotResetPending",
	StateAuthenticated:      "Authenticated",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "Unknown"
}

// Field is an input of the credential form.
type Field int

const (
	FieldIdentifier Field = iota
	FieldEmail
	FieldPassword
	FieldConfirmPassword
	FieldOTP
)

// stateFields lists the inputs each state asks for, in display order.
var stateFields = map[State][]Field{
	StateSignup:             {FieldIdentifier, FieldEmail, FieldPassword, FieldConfirmPassword},
	StateSignupOtpPending:   {FieldOTP},
	StateLogin:              {FieldIdentifier, FieldPassword},
	StateForgotEmailEntry:   {FieldEmail},
	StateForgotOtpPending:   {FieldOTP},
	StateForgotResetPending: {FieldPassword, FieldConfirmPassword},
}

// Fields returns the inputs of the state. Authenticated has none.
func (s State) Fields() []Field {
	return stateFields[s]
}

// Form holds every value the steps may send. Values survive transitions
// where the next step needs them (the identifier after signup, the email
// during the forgot-password steps).
type Form struct {
	Identifier      string
	Email           string
	Password        string
	ConfirmPassword string
	OTP             string
}

// Get returns the value of field.
func (f *Form) Get(field Field) string {
	switch field {
	case FieldIdentifier:
		return f.Identifier
	case FieldEmail:
		return f.Email
	case FieldPassword:
		return f.Password
	case FieldConfirmPassword:
		return f.ConfirmPassword
	case FieldOTP:
		return f.OTP
	}
	return ""
}

// Set stores value into field.
func (f *Form) Set(field Field, value string) {
	switch field {
	case FieldIdentifier:
		f.Identifier = value
	case FieldEmail:
		f.Email = value
	case FieldPassword:
		f.Password = value
	case FieldConfirmPassword:
		f.ConfirmPassword = value
	case FieldOTP:
		f.OTP = value
	}
}

func (f *Form) clearSecrets() {
	f.Password = ""
	f.ConfirmPassword = ""
	f.OTP = ""
}
