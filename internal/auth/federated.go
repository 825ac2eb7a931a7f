package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/desertthunder/reel/internal/models"
	"github.com/desertthunder/reel/internal/shared"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
)

const (
	googleAuthURL     = "https://accounts.google.com/o/oauth2/auth"
	googleTokenURL    = "https://oauth2.googleapis.com/token"
	googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

	facebookAuthURL     = "https://www.facebook.com/v18.0/dialog/oauth"
	facebookTokenURL    = "https://graph.facebook.com/v18.0/oauth/access_token"
	facebookUserInfoURL = "https://graph.facebook.com/me?fields=id,name,email,picture.type(large)"

	appleAuthURL  = "https://appleid.apple.com/auth/authorize"
	appleTokenURL = "https://appleid.apple.com/auth/token"
)

// Claims is the normalized identity returned by a provider.
type Claims struct {
	ID        string
	Name      string
	Email     string
	AvatarURL string
}

// User converts provider claims into the canonical user shape.
func (c Claims) User(provider models.Provider) models.User {
	return models.User{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Provider:  provider,
		AvatarURL: c.AvatarURL,
	}
}

// Flow drives the OAuth2 authorization flow for one identity provider.
//
// Each flow wraps an [oauth2.Config]; the browser/callback mechanics live in
// the server package. After the code exchange the flow fetches the provider's
// identity claims and normalizes them into the canonical [models.User] shape,
// so the session slot never varies by provider.
type Flow struct {
	provider   models.Provider
	config     *oauth2.Config
	httpClient *http.Client
}

// NewFlow creates a federated login flow for the given provider.
//
// Credentials must contain client_id and client_secret; redirect_uri
// defaults to the local callback server.
func NewFlow(provider models.Provider, credentials map[string]string) (*Flow, error) {
	clientID, ok := credentials["client_id"]
	if !ok || clientID == "" {
		return nil, fmt.Errorf("%w: missing client_id for %s", shared.ErrFederatedLogin, provider)
	}

	clientSecret, ok := credentials["client_secret"]
	if !ok || clientSecret == "" {
		return nil, fmt.Errorf("%w: missing client_secret for %s", shared.ErrFederatedLogin, provider)
	}

	redirectURI, ok := credentials["redirect_uri"]
	if !ok || redirectURI == "" {
		redirectURI = "http://localhost:8080/callback"
	}

	var endpoint oauth2.Endpoint
	var scopes []string

	switch provider {
	case models.ProviderGoogle:
		endpoint = oauth2.Endpoint{AuthURL: googleAuthURL, TokenURL: googleTokenURL}
		scopes = []string{"openid", "profile", "email"}
	case models.ProviderFacebook:
		endpoint = oauth2.Endpoint{AuthURL: facebookAuthURL, TokenURL: facebookTokenURL}
		scopes = []string{"public_profile", "email"}
	case models.ProviderApple:
		endpoint = oauth2.Endpoint{AuthURL: appleAuthURL, TokenURL: appleTokenURL}
		scopes = []string{"name", "email"}
	default:
		return nil, fmt.Errorf("%w: unsupported provider %q", shared.ErrFederatedLogin, provider)
	}

	config := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURI,
		Scopes:       scopes,
		Endpoint:     endpoint,
	}

	return &Flow{
		provider:   provider,
		config:     config,
		httpClient: http.DefaultClient,
	}, nil
}

// Provider returns the provider this flow authenticates with.
func (f *Flow) Provider() models.Provider {
	return f.provider
}

// AuthURL returns the provider's authorization URL for user login.
func (f *Flow) AuthURL(state string) string {
	return f.config.AuthCodeURL(state)
}

// OAuthConfig returns the underlying OAuth2 config for the callback server.
func (f *Flow) OAuthConfig() *oauth2.Config {
	return f.config
}

// FetchClaims retrieves identity claims for an exchanged token.
//
// Google and Facebook expose a userinfo endpoint; Apple returns claims only
// inside the id_token issued during the exchange.
func (f *Flow) FetchClaims(ctx context.Context, token *oauth2.Token) (*Claims, error) {
	switch f.provider {
	case models.ProviderGoogle:
		return f.fetchUserInfo(ctx, token, googleUserInfoURL)
	case models.ProviderFacebook:
		return f.fetchUserInfo(ctx, token, facebookUserInfoURL)
	case models.ProviderApple:
		return appleClaims(token)
	default:
		return nil, fmt.Errorf("%w: unsupported provider %q", shared.ErrFederatedLogin, f.provider)
	}
}

// userInfo covers the overlapping Google and Facebook userinfo payloads.
type userInfo struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture any    `json:"picture"` // Google: string; Facebook: nested object
}

// avatarURL extracts the avatar URL from either provider's picture shape.
func (u userInfo) avatarURL() string {
	switch pic := u.Picture.(type) {
	case string:
		return pic
	case map[string]any:
		if data, ok := pic["data"].(map[string]any); ok {
			if url, ok := data["url"].(string); ok {
				return url
			}
		}
	}
	return ""
}

// fetchUserInfo performs an authenticated GET against a userinfo endpoint.
func (f *Flow) fetchUserInfo(ctx context.Context, token *oauth2.Token, endpoint string) (*Claims, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token.AccessToken)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrFederatedLogin, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: userinfo status %d", shared.ErrFederatedLogin, resp.StatusCode)
	}

	var info userInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("%w: failed to decode userinfo: %v", shared.ErrFederatedLogin, err)
	}

	if info.ID == "" {
		return nil, fmt.Errorf("%w: userinfo response missing subject id", shared.ErrFederatedLogin)
	}

	return &Claims{
		ID:        info.ID,
		Name:      info.Name,
		Email:     info.Email,
		AvatarURL: info.avatarURL(),
	}, nil
}

// appleClaims extracts identity claims from the id_token in the token response.
//
// The token arrived over TLS directly from Apple's token endpoint, so the
// signature is not re-verified here.
func appleClaims(token *oauth2.Token) (*Claims, error) {
	raw, ok := token.Extra("id_token").(string)
	if !ok || raw == "" {
		return nil, fmt.Errorf("%w: token response missing id_token", shared.ErrFederatedLogin)
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(raw, claims); err != nil {
		return nil, fmt.Errorf("%w: failed to parse id_token: %v", shared.ErrFederatedLogin, err)
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, fmt.Errorf("%w: id_token missing subject", shared.ErrFederatedLogin)
	}

	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)
	if name == "" {
		name = email
	}

	return &Claims{ID: sub, Name: name, Email: email}, nil
}
