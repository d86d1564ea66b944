package firebase

import (
	"context"
	"encoding/base64"
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"firebase.google.com/go/v4/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartserver/pkg/errors"
)

type stubVerifier struct {
	token *auth.Token
	err   error
}

func (s stubVerifier) VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error) {
	return s.token, s.err
}

func TestVerifyToken(t *testing.T) {
	tests := []struct {
		name      string
		stub      stubVerifier
		wantEmail string
		wantErr   bool
	}{
		{
			name:      "valid",
			stub:      stubVerifier{token: &auth.Token{UID: "u1", Claims: map[string]interface{}{"email": "a@x.com"}}},
			wantEmail: "a@x.com",
		},
		{
			name:    "expired",
			stub:    stubVerifier{err: stderrors.New("ID token has expired")},
			wantErr: true,
		},
		{
			name:    "no_email_claim",
			stub:    stubVerifier{token: &auth.Token{UID: "u2", Claims: map[string]interface{}{}}},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			client := &FirebaseAuthClient{client: tc.stub}

			identity, err := client.VerifyToken(context.Background(), "token")
			if tc.wantErr {
				require.Error(t, err)
				appErr, ok := errors.As(err)
				require.True(t, ok)
				assert.Equal(t, "Unauthorized access", appErr.Message)
				assert.Nil(t, identity)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantEmail, identity.Email)
		})
	}
}

func TestCredentialsOption(t *testing.T) {
	_, err := CredentialsOption("", "")
	assert.Error(t, err)

	_, err = CredentialsOption("%%%not-base64", "")
	assert.Error(t, err)

	opt, err := CredentialsOption(base64.StdEncoding.EncodeToString([]byte(`{"type":"service_account"}`)), "")
	require.NoError(t, err)
	assert.NotNil(t, opt)

	_, err = CredentialsOption("", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "key.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o600))
	opt, err = CredentialsOption("", path)
	require.NoError(t, err)
	assert.NotNil(t, opt)
}
