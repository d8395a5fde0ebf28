//go:build unit

package jwt_test

import (
	"strings"
	"testing"
	"time"

	"paradise-inn/internal/pkg/clock"
	"paradise-inn/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret  = "test-signing-secret"
	testSubject = "guest@example.com"
)

func newService(clk clock.Clock) *jwt.Service {
	return jwt.NewService(testSecret, 168*time.Hour, clk)
}

func TestService_RoundTrip(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC))
	svc := newService(clk)

	token, err := svc.GenerateToken(testSubject)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := svc.ExtractSubject(token)
	require.NoError(t, err)
	assert.Equal(t, testSubject, subject)

	assert.True(t, svc.Valid(token, testSubject))
}

func TestService_Expiry(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC))
	svc := newService(clk)

	token, err := svc.GenerateToken(testSubject)
	require.NoError(t, err)

	t.Run("valid just before expiry", func(t *testing.T) {
		clk.Add(168*time.Hour - time.Minute)
		assert.True(t, svc.Valid(token, testSubject))
	})

	t.Run("rejected after expiry", func(t *testing.T) {
		clk.Add(2 * time.Minute)
		assert.False(t, svc.Valid(token, testSubject))

		_, err := svc.ExtractSubject(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})
}

func TestService_WrongSubject(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC))
	svc := newService(clk)

	token, err := svc.GenerateToken(testSubject)
	require.NoError(t, err)

	assert.False(t, svc.Valid(token, "someone-else@example.com"))
}

func TestService_TamperedToken(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC))
	svc := newService(clk)

	token, err := svc.GenerateToken(testSubject)
	require.NoError(t, err)

	t.Run("modified payload", func(t *testing.T) {
		parts := strings.Split(token, ".")
		require.Len(t, parts, 3)
		tampered := parts[0] + "." + "eyJzdWIiOiJhdHRhY2tlckBleGFtcGxlLmNvbSJ9" + "." + parts[2]

		assert.False(t, svc.Valid(tampered, testSubject))
		_, err := svc.ExtractSubject(tampered)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("wrong signing key", func(t *testing.T) {
		other := jwt.NewService("a-different-secret", 168*time.Hour, clk)
		foreign, err := other.GenerateToken(testSubject)
		require.NoError(t, err)

		assert.False(t, svc.Valid(foreign, testSubject))
	})

	t.Run("garbage input", func(t *testing.T) {
		_, err := svc.ExtractSubject("not-a-token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
