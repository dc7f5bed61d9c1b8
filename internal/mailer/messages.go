// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mailer

import (
	"fmt"
	"time"
)

const (
	SignupVerificationSubject = "LARA CONNECT - Email Verification"
	PasswordResetSubject      = "LARA CONNECT - Password Reset OTP"
)

// SignupVerificationMessage is sent right after an account is created.
func SignupVerificationMessage(to, identifier, otp string, validFor time.Duration) Message {
	return Message{
		To:      to,
		Subject: SignupVerificationSubject,
		Body: fmt.Sprintf("Hello %s,\n\n"+
			"Welcome to LARA CONNECT! Your account has been successfully created.\n\n"+
			"Please use this OTP to verify your email: %s\n\n"+
			"This OTP is valid for %s.\n\n"+
			"Best Regards,\nLARA CONNECT Team", identifier, otp, validity(validFor)),
	}
}

// PasswordResetMessage is sent when a password reset is requested.
func PasswordResetMessage(to, identifier, otp string, validFor time.Duration) Message {
	return Message{
		To:      to,
		Subject: PasswordResetSubject,
		Body: fmt.Sprintf("Hello %s,\n\n"+
			"You requested a password reset. Use this OTP: %s\n\n"+
			"Valid for %s.\n\n"+
			"Best Regards,\nLARA CONNECT Team", identifier, otp, validity(validFor)),
	}
}

// validity renders d in whole hours when it has no minutes, else in minutes.
func validity(d time.Duration) string {
	d = d.Round(time.Minute)
	if d >= time.Hour && d%time.Hour == 0 {
		return plural(int(d/time.Hour), "hour")
	}
	return plural(int(d/time.Minute), "minute")
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
