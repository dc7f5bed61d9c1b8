// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

const (
	otpMin = 100000
	otpMax = 999999
)

// randomOTPGenerator draws six-digit codes from a cryptographic source.
type randomOTPGenerator struct {
	rand io.Reader
}

func NewOTPGenerator() OTPGenerator {
	return &randomOTPGenerator{rand: rand.Reader}
}

// Generate returns a code in [100000, 999999].
func (g *randomOTPGenerator) Generate() (string, error) {
	n, err := rand.Int(g.rand, big.NewInt(otpMax-otpMin+1))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrOTPGeneration, err)
	}

	return fmt.Sprintf("%06d", n.Int64()+otpMin), nil
}
