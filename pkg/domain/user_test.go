package domain_test

import (
	"strings"
	"testing"

	"stays/pkg/domain"
	"stays/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestNewUser_Validation(t *testing.T) {
	longName := strings.Repeat("x", domain.MaxNameLength+1)

	tests := []struct {
		name      string
		firstName string
		lastName  string
		email     string
		wantErr   string
	}{
		{name: "valid", firstName: "Jane", lastName: "Doe", email: "jane@example.com"},
		{name: "empty first name", firstName: "", lastName: "Doe", email: "jane@example.com", wantErr: "first_name"},
		{name: "blank first name", firstName: "   ", lastName: "Doe", email: "jane@example.com", wantErr: "first_name"},
		{name: "long first name", firstName: longName, lastName: "Doe", email: "jane@example.com", wantErr: "first_name"},
		{name: "empty last name", firstName: "Jane", lastName: "", email: "jane@example.com", wantErr: "last_name"},
		{name: "long last name", firstName: "Jane", lastName: longName, email: "jane@example.com", wantErr: "last_name"},
		{name: "empty email", firstName: "Jane", lastName: "Doe", email: "", wantErr: "email"},
		{name: "malformed email", firstName: "Jane", lastName: "Doe", email: "not-an-email", wantErr: "email"},
		{name: "email with display name", firstName: "Jane", lastName: "Doe", email: "Jane <jane@example.com>", wantErr: "email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := domain.NewUser(tt.firstName, tt.lastName, tt.email, false)
			if tt.wantErr != "" {
				require.Error(t, err)
				require.ErrorIs(t, err, serrors.ErrValidation)
				require.Contains(t, err.Error(), tt.wantErr)

				return
			}
			require.NoError(t, err)
			require.NotEqual(t, domain.UserID{}, u.ID)
			require.False(t, u.CreatedAt.IsZero())
			require.True(t, u.UpdatedAt.IsZero())
		})
	}
}

func TestNewUser_NormalizesEmail(t *testing.T) {
	u, err := domain.NewUser("Jane", "Doe", "  Jane.Doe@Example.COM ", false)
	require.NoError(t, err)
	require.Equal(t, "jane.doe@example.com", u.Email)
}

func TestUser_Apply(t *testing.T) {
	u, err := domain.NewUser("Jane", "Doe", "jane@example.com", false)
	require.NoError(t, err)

	newFirst := "Janet"
	require.NoError(t, u.Apply(domain.UserPatch{FirstName: &newFirst}))
	require.Equal(t, "Janet", u.FirstName)
	require.Equal(t, "Doe", u.LastName)
	require.False(t, u.UpdatedAt.IsZero())

	// invalid value leaves the entity untouched
	empty := ""
	err = u.Apply(domain.UserPatch{LastName: &empty})
	require.ErrorIs(t, err, serrors.ErrValidation)
	require.Equal(t, "Doe", u.LastName)
}

func TestUser_PasswordHashNeverMarshalled(t *testing.T) {
	u, err := domain.NewUser("Jane", "Doe", "jane@example.com", false)
	require.NoError(t, err)
	u.PasswordHash = "secret-blob"

	out := marshal(t, u)
	require.NotContains(t, out, "secret-blob")
	require.NotContains(t, out, "PasswordHash")
}
