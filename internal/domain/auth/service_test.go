package auth

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

var testNow = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

func authService(t *testing.T) (*Service, *MockUserRepo, *clockwork.FakeClock) {
	t.Helper()

	repo := NewMockUserRepo(gomock.NewController(t))
	clock := clockwork.NewFakeClockAt(testNow)
	service := NewService(repo, "test-secret", 24*time.Hour, clock)

	return service, repo, clock
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestService_PhoneLogin(t *testing.T) {
	t.Parallel()

	t.Run("creates the user on first login", func(t *testing.T) {
		service, repo, _ := authService(t)

		repo.EXPECT().GetUserByPhone(gomock.Any(), "+911234567890").Return(nil, nil)
		repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, nu NewUser) (*User, error) {
				assert.Equal(t, "+911234567890", nu.Phone)
				assert.Equal(t, "User +911234567890", nu.Name)
				assert.NotEmpty(t, nu.PasswordHash)
				return &User{ID: 1, Phone: nu.Phone, Name: nu.Name, PasswordHash: nu.PasswordHash, CreatedAt: testNow}, nil
			})

		result, err := service.PhoneLogin(context.Background(), "+911234567890", "")

		require.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.Equal(t, int64(1), result.User.ID)

		userID, phone, err := service.VerifyToken(result.Token)
		require.NoError(t, err)
		assert.Equal(t, int64(1), userID)
		assert.Equal(t, "+911234567890", phone)
	})

	t.Run("recovers when a concurrent first login wins the insert", func(t *testing.T) {
		service, repo, _ := authService(t)
		existing := &User{ID: 3, Phone: "+911234567890", PasswordHash: hashOf(t, "other"), CreatedAt: testNow}

		gomock.InOrder(
			repo.EXPECT().GetUserByPhone(gomock.Any(), "+911234567890").Return(nil, nil),
			repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil, ErrPhoneTaken),
			repo.EXPECT().GetUserByPhone(gomock.Any(), "+911234567890").Return(existing, nil),
		)

		result, err := service.PhoneLogin(context.Background(), "+911234567890", "")

		require.NoError(t, err)
		assert.Equal(t, int64(3), result.User.ID)
		assert.NotEmpty(t, result.Token)
	})

	t.Run("accepts an existing user with the right password", func(t *testing.T) {
		service, repo, _ := authService(t)
		existing := &User{ID: 2, Phone: "+911234567890", PasswordHash: hashOf(t, "secret")}

		repo.EXPECT().GetUserByPhone(gomock.Any(), "+911234567890").Return(existing, nil)

		result, err := service.PhoneLogin(context.Background(), "+911234567890", "secret")

		require.NoError(t, err)
		assert.Equal(t, int64(2), result.User.ID)
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		service, repo, _ := authService(t)
		existing := &User{ID: 2, Phone: "+911234567890", PasswordHash: hashOf(t, "secret")}

		repo.EXPECT().GetUserByPhone(gomock.Any(), "+911234567890").Return(existing, nil)

		_, err := service.PhoneLogin(context.Background(), "+911234567890", "not-the-secret")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("rejects a malformed phone", func(t *testing.T) {
		service, _, _ := authService(t)

		for _, phone := range []string{"", "12ab", "123", "+91 12345 67890"} {
			_, err := service.PhoneLogin(context.Background(), phone, "")
			assert.ErrorIs(t, err, ErrMalformedPhone, "phone %q", phone)
		}
	})
}

func TestService_VerifyToken(t *testing.T) {
	t.Parallel()

	t.Run("rejects garbage", func(t *testing.T) {
		service, _, _ := authService(t)

		_, _, err := service.VerifyToken("not-a-jwt")

		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects a token signed with a different secret", func(t *testing.T) {
		service, repo, _ := authService(t)
		other := NewService(repo, "other-secret", 24*time.Hour, clockwork.NewFakeClockAt(testNow))

		token, err := other.generateToken(&User{ID: 1, Phone: "+911234567890"})
		require.NoError(t, err)

		_, _, err = service.VerifyToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		service, _, clock := authService(t)

		token, err := service.generateToken(&User{ID: 1, Phone: "+911234567890"})
		require.NoError(t, err)

		clock.Advance(25 * time.Hour)

		_, _, err = service.VerifyToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
