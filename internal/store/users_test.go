package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowmanager-dev/flowmanager/internal/models"
	"github.com/flowmanager-dev/flowmanager/internal/store"
)

func TestNormalizeEmailIdempotent(t *testing.T) {
	cases := []string{
		"  Alice@Example.COM ",
		"bob@example.com",
		"",
		"\tMIXED.Case+tag@Example.Org\n",
	}
	for _, email := range cases {
		once := store.NormalizeEmail(email)
		assert.Equal(t, once, store.NormalizeEmail(once))
	}

	assert.Equal(t, "alice@example.com", store.NormalizeEmail("  Alice@Example.COM "))
}

func TestCreateUserDefaults(t *testing.T) {
	db := newTestDB(t)

	user, err := store.CreateUser(db, store.CreateUserParams{
		Email:    "plain@example.com",
		Password: "pw123456",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, user.Role.Name)
	assert.Nil(t, user.Profile)

	// Credential row exists alongside the user.
	assert.EqualValues(t, 1, count(t, db, &models.Credential{}, "user_id = ?", user.ID))
}

func TestCreateUserNormalizesEmail(t *testing.T) {
	db := newTestDB(t)

	user := createTestUser(t, db, "  UPPER@Example.Com ")
	assert.Equal(t, "upper@example.com", user.Email)

	got, err := store.GetUserByEmail(db, "Upper@EXAMPLE.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	db := newTestDB(t)

	first := createTestUser(t, db, "dupe@example.com")

	_, err := store.CreateUser(db, store.CreateUserParams{
		Email:    " DUPE@example.com ",
		Password: "pw123456",
	})
	require.Error(t, err)

	var emailTaken *store.EmailTakenError
	require.ErrorAs(t, err, &emailTaken)
	assert.Equal(t, first.ID, emailTaken.UserID)

	// No duplicate row was created.
	assert.EqualValues(t, 1, count(t, db, &models.User{}, "email = ?", "dupe@example.com"))
}

func TestCreateUserUnknownRole(t *testing.T) {
	db := newTestDB(t)

	_, err := store.CreateUser(db, store.CreateUserParams{
		Email:    "norole@example.com",
		Password: "pw123456",
		RoleName: "Astronaut",
	})
	assert.ErrorIs(t, err, store.ErrRoleNotFound)
}

func TestCreateUserSupervisorMustBeAdministrative(t *testing.T) {
	db := newTestDB(t)

	regular := createTestUser(t, db, "regular@example.com")

	manager, err := store.CreateUser(db, store.CreateUserParams{
		Email:    "boss@example.com",
		Password: "pw123456",
		RoleName: models.RoleManager,
	})
	require.NoError(t, err)

	_, err = store.CreateUser(db, store.CreateUserParams{
		Email:    "minion@example.com",
		Password: "pw123456",
		Profile: &store.ProfileParams{
			FirstName:    "Mini",
			LastName:     "On",
			SupervisorID: &regular.ID,
		},
	})
	assert.ErrorIs(t, err, store.ErrInvalidSupervisor)

	user, err := store.CreateUser(db, store.CreateUserParams{
		Email:    "minion@example.com",
		Password: "pw123456",
		Profile: &store.ProfileParams{
			FirstName:    "Mini",
			LastName:     "On",
			SupervisorID: &manager.ID,
		},
	})
	require.NoError(t, err)
	require.NotNil(t, user.Profile)
	assert.Equal(t, manager.ID, *user.Profile.SupervisorID)
}

func TestVerifyCredentialsSuccess(t *testing.T) {
	db := newTestDB(t)

	created := createTestUser(t, db, "login@example.com")

	user, err := store.VerifyCredentials(db, " LOGIN@example.COM ", "pw123456")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
}

func TestVerifyCredentialsFailuresAreIndistinguishable(t *testing.T) {
	db := newTestDB(t)

	createTestUser(t, db, "known@example.com")

	cases := []struct {
		name     string
		email    string
		password string
	}{
		{"missing user", "ghost@example.com", "pw123456"},
		{"wrong password", "known@example.com", "wrongpass"},
		{"empty email", "", "pw123456"},
		{"empty password", "known@example.com", ""},
		{"both empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			user, err := store.VerifyCredentials(db, tc.email, tc.password)
			assert.Nil(t, user)
			// Every failure mode surfaces as the exact same error value.
			assert.ErrorIs(t, err, store.ErrInvalidCredentials)
			assert.EqualError(t, err, "Invalid email or password")
		})
	}
}

func TestUpdateUserEmailConflict(t *testing.T) {
	db := newTestDB(t)

	createTestUser(t, db, "taken@example.com")
	other := createTestUser(t, db, "other@example.com")

	email := "taken@example.com"
	_, err := store.UpdateUser(db, other.ID, store.UpdateUserParams{Email: &email})

	var emailTaken *store.EmailTakenError
	require.ErrorAs(t, err, &emailTaken)
}

func TestUpdatePassword(t *testing.T) {
	db := newTestDB(t)

	user := createTestUser(t, db, "rotate@example.com")

	require.NoError(t, store.UpdatePassword(db, user.ID, "newpass99"))

	_, err := store.VerifyCredentials(db, "rotate@example.com", "pw123456")
	assert.ErrorIs(t, err, store.ErrInvalidCredentials)

	got, err := store.VerifyCredentials(db, "rotate@example.com", "newpass99")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestCreateThenDeleteThenLoginFails(t *testing.T) {
	db := newTestDB(t)

	user, err := store.CreateUser(db, store.CreateUserParams{
		Email:    "a@b.com",
		Password: "pw123456",
		RoleName: models.RoleUser,
	})
	require.NoError(t, err)

	_, err = store.DeleteUser(db, user.ID)
	require.NoError(t, err)

	_, err = store.VerifyCredentials(db, "a@b.com", "pw123456")
	assert.ErrorIs(t, err, store.ErrInvalidCredentials)
	assert.EqualError(t, err, "Invalid email or password")
}
