package firebase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"firebase.google.com/go/v4/auth"
)

const identityToolkitURL = "https://identitytoolkit.googleapis.com/v1"

// FirebaseAuthClient wraps the Admin SDK for account management and the
// identity-toolkit REST API for the flows the Admin SDK does not cover
// (password sign-in, password-reset email).
type FirebaseAuthClient struct {
	client *auth.Client
	apiKey string
}

func NewFirebaseAuthClient(client *auth.Client, apiKey string) *FirebaseAuthClient {
	return &FirebaseAuthClient{
		client: client,
		apiKey: apiKey,
	}
}

func (f *FirebaseAuthClient) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(displayName)

	user, err := f.client.CreateUser(ctx, params)
	if err != nil {
		return "", err
	}

	return user.UID, nil
}

func (f *FirebaseAuthClient) VerifyToken(ctx context.Context, token string) (string, error) {
	result, err := f.client.VerifyIDToken(ctx, token)
	if err != nil {
		return "", err
	}

	return result.UID, nil
}

type signInResponse struct {
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	LocalID      string `json:"localId"`
}

type restError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// SignInWithEmailPassword exchanges credentials for an ID token via the
// identity-toolkit REST API.
func (f *FirebaseAuthClient) SignInWithEmailPassword(email, password string) (string, error) {
	payload := map[string]interface{}{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}

	body, err := f.post("accounts:signInWithPassword", payload)
	if err != nil {
		return "", err
	}

	var result signInResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", err
	}

	return result.IDToken, nil
}

// SendPasswordResetEmail asks the identity provider to mail a reset
// link to the address.
func (f *FirebaseAuthClient) SendPasswordResetEmail(email string) error {
	payload := map[string]interface{}{
		"requestType": "PASSWORD_RESET",
		"email":       email,
	}

	_, err := f.post("accounts:sendOobCode", payload)
	return err
}

func (f *FirebaseAuthClient) post(endpoint string, payload map[string]interface{}) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/%s?key=%s", identityToolkitURL, endpoint, f.apiKey)
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		var restErr restError
		if err := json.Unmarshal(body, &restErr); err == nil && restErr.Error.Message != "" {
			return nil, fmt.Errorf("identity toolkit: %s", restErr.Error.Message)
		}
		return nil, fmt.Errorf("identity toolkit: unexpected status %d", resp.StatusCode)
	}

	return body, nil
}
