package firebase

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"

	fbapp "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"smartserver/internal/domain/entity"
	"smartserver/pkg/errors"
	"smartserver/pkg/logger"
)

// tokenVerifier is the part of *auth.Client used here.
type tokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

type FirebaseAuthClient struct {
	client tokenVerifier
}

func NewFirebaseAuthClient(client *auth.Client) *FirebaseAuthClient {
	return &FirebaseAuthClient{
		client: client,
	}
}

// VerifyToken checks an ID token and returns the identity it asserts.
// Every failure is reported as the same Unauthorized error.
func (f *FirebaseAuthClient) VerifyToken(ctx context.Context, token string) (*entity.Identity, error) {
	result, err := f.client.VerifyIDToken(ctx, token)
	if err != nil {
		logger.Warn("verifyIdToken error: %v", err)
		return nil, errors.Unauthorized("Unauthorized access", err)
	}

	email, _ := result.Claims["email"].(string)
	if email == "" {
		logger.Warn("verified token for uid %s carries no email claim", result.UID)
		return nil, errors.Unauthorized("Unauthorized access", nil)
	}

	return &entity.Identity{
		UID:   result.UID,
		Email: email,
	}, nil
}

// CredentialsOption picks service-account credentials: a base64 encoded
// JSON key first, then a key file path.
func CredentialsOption(serviceKey, serviceAccountPath string) (option.ClientOption, error) {
	if serviceKey != "" {
		decoded, err := base64.StdEncoding.DecodeString(serviceKey)
		if err != nil {
			return nil, fmt.Errorf("decode FIREBASE_SERVICE_KEY: %w", err)
		}
		return option.WithCredentialsJSON(decoded), nil
	}

	if serviceAccountPath != "" {
		if _, err := os.Stat(serviceAccountPath); err != nil {
			return nil, fmt.Errorf("service account file: %w", err)
		}
		return option.WithCredentialsFile(serviceAccountPath), nil
	}

	return nil, fmt.Errorf("no firebase credentials configured")
}

// NewApp initializes the Firebase app shared by Auth and Firestore.
func NewApp(ctx context.Context, projectID string, opt option.ClientOption) (*fbapp.App, error) {
	var cfg *fbapp.Config
	if projectID != "" {
		cfg = &fbapp.Config{ProjectID: projectID}
	}
	app, err := fbapp.NewApp(ctx, cfg, opt)
	if err != nil {
		return nil, fmt.Errorf("initialize firebase: %w", err)
	}
	return app, nil
}
