// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomOTPGenerator_Range(t *testing.T) {
	gen := NewOTPGenerator()

	for range 200 {
		code, err := gen.Generate()
		require.NoError(t, err)
		require.Len(t, code, 6)

		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, otpMin)
		assert.LessOrEqual(t, n, otpMax)
	}
}

type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestRandomOTPGenerator_SourceFailure(t *testing.T) {
	gen := &randomOTPGenerator{rand: brokenReader{}}

	_, err := gen.Generate()
	assert.ErrorIs(t, err, ErrOTPGeneration)
}

func TestComparePassword(t *testing.T) {
	hash, err := hashPassword("Abcd123!", testAppConfig.BcryptCost)
	require.NoError(t, err)

	ok, err := comparePassword(hash, "Abcd123!")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = comparePassword(hash, "abcd123!")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = comparePassword("not-a-hash", "Abcd123!")
	assert.ErrorIs(t, err, ErrPasswordHashing)
}
