package services

import (
	"testing"
	"time"

	"farm_manager/internal/models"
	"farm_manager/internal/repository"
	"farm_manager/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuth(t *testing.T) (AuthService, *memorySessions) {
	t.Helper()
	sessions := newMemorySessions()
	db := testutil.NewDB(t)
	return NewAuthService(repository.NewUserRepository(db), sessions, time.Hour), sessions
}

func TestRegisterValidation(t *testing.T) {
	auth, _ := newAuth(t)
	shortPhone := "090123456"

	cases := map[string]RegisterInput{
		"email":     {Email: "not-an-email", Password: "secret1", FullName: "Lan"},
		"password":  {Email: "lan@example.com", Password: "123", FullName: "Lan"},
		"full_name": {Email: "lan@example.com", Password: "secret1", FullName: "  "},
		"phone":     {Email: "lan@example.com", Password: "secret1", FullName: "Lan", Phone: &shortPhone},
	}
	for field, input := range cases {
		_, err := auth.Register(input)
		var verr *models.ValidationError
		require.ErrorAs(t, err, &verr, field)
		assert.Equal(t, field, verr.Field)
	}
}

func TestRegisterAndLogin(t *testing.T) {
	auth, sessions := newAuth(t)
	phone := "0901234567"

	user, err := auth.Register(RegisterInput{Email: "Lan@Example.com", Password: "secret1", FullName: "Lan", Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, "lan@example.com", user.Email)
	assert.NotEqual(t, "secret1", user.PasswordHash)

	_, err = auth.Register(RegisterInput{Email: "lan@example.com", Password: "secret2", FullName: "Other"})
	assert.ErrorIs(t, err, models.ErrDuplicate)
	_, err = auth.Register(RegisterInput{Email: "other@example.com", Password: "secret2", FullName: "Other", Phone: &phone})
	assert.ErrorIs(t, err, models.ErrDuplicate)

	byEmail, err := auth.Login("lan@example.com", "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, byEmail.Token)
	assert.Equal(t, user.ID, byEmail.User.ID)
	assert.Equal(t, time.Hour, sessions.ttls[byEmail.Token])

	byPhone, err := auth.Login(phone, "secret1")
	require.NoError(t, err)
	assert.NotEqual(t, byEmail.Token, byPhone.Token)

	_, err = auth.Login("lan@example.com", "wrong-password")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
	_, err = auth.Login("nobody@example.com", "secret1")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)

	session, err := auth.Authenticate(byEmail.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, session.UserID)

	me, err := auth.Me(session)
	require.NoError(t, err)
	assert.Equal(t, "Lan", me.FullName)

	require.NoError(t, auth.Logout(byEmail.Token))
	_, err = auth.Authenticate(byEmail.Token)
	assert.ErrorIs(t, err, models.ErrUnauthenticated)
	_, err = auth.Authenticate("")
	assert.ErrorIs(t, err, models.ErrUnauthenticated)
}

func TestChangePassword(t *testing.T) {
	auth, _ := newAuth(t)
	_, err := auth.Register(RegisterInput{Email: "lan@example.com", Password: "secret1", FullName: "Lan"})
	require.NoError(t, err)
	login, err := auth.Login("lan@example.com", "secret1")
	require.NoError(t, err)
	session, err := auth.Authenticate(login.Token)
	require.NoError(t, err)

	err = auth.ChangePassword(session, "wrong", "secret2")
	assert.True(t, models.IsValidation(err))
	err = auth.ChangePassword(session, "secret1", "123")
	assert.True(t, models.IsValidation(err))

	require.NoError(t, auth.ChangePassword(session, "secret1", "secret2"))
	_, err = auth.Login("lan@example.com", "secret1")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
	_, err = auth.Login("lan@example.com", "secret2")
	assert.NoError(t, err)
}
