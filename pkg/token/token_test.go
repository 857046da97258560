package token_test

import (
	"testing"
	"time"

	"go-jobportal-backend/pkg/token"

	"github.com/stretchr/testify/assert"
)

func TestIssueAndValidate(t *testing.T) {
	m := token.NewManager("secret", 30*time.Minute)
	now := time.Now()

	signed, err := m.Issue("a@x.com", "seeker", now)
	assert.NoError(t, err)

	t.Run("Should validate any time before expiry", func(t *testing.T) {
		claims, err := m.Validate(signed, now.Add(29*time.Minute))
		assert.NoError(t, err)
		assert.Equal(t, "a@x.com", claims.Subject)
		assert.Equal(t, "seeker", claims.Role)
	})

	t.Run("Should fail exactly at expiry with no grace period", func(t *testing.T) {
		_, err := m.Validate(signed, now.Add(30*time.Minute))
		assert.ErrorIs(t, err, token.ErrInvalid)
	})

	t.Run("Should fail after expiry", func(t *testing.T) {
		_, err := m.Validate(signed, now.Add(31*time.Minute))
		assert.ErrorIs(t, err, token.ErrInvalid)
	})
}

func TestValidateRejectsTampering(t *testing.T) {
	m := token.NewManager("secret", 30*time.Minute)
	now := time.Now()

	signed, err := m.Issue("a@x.com", "seeker", now)
	assert.NoError(t, err)

	t.Run("Should reject a token with one flipped byte", func(t *testing.T) {
		raw := []byte(signed)
		raw[len(raw)/2] ^= 0x01
		_, err := m.Validate(string(raw), now)
		assert.ErrorIs(t, err, token.ErrInvalid)
	})

	t.Run("Should reject a token signed with another secret", func(t *testing.T) {
		other := token.NewManager("other-secret", 30*time.Minute)
		forged, err := other.Issue("a@x.com", "admin", now)
		assert.NoError(t, err)

		_, err = m.Validate(forged, now)
		assert.ErrorIs(t, err, token.ErrInvalid)
	})

	t.Run("Should reject garbage", func(t *testing.T) {
		_, err := m.Validate("not.a.token", now)
		assert.ErrorIs(t, err, token.ErrInvalid)
	})

	t.Run("Should return the same error for expired and forged tokens", func(t *testing.T) {
		_, expiredErr := m.Validate(signed, now.Add(time.Hour))

		raw := []byte(signed)
		raw[len(raw)-1] ^= 0x01
		_, forgedErr := m.Validate(string(raw), now)

		assert.Equal(t, expiredErr, forgedErr)
	})
}
