package main

import (
	"context"
	"fmt"
	"time"

	"github.com/desertthunder/reel/internal/auth"
	"github.com/desertthunder/reel/internal/models"
	"github.com/desertthunder/reel/internal/server"
	"github.com/desertthunder/reel/internal/shared"
	"github.com/urfave/cli/v3"
	"golang.org/x/oauth2"
)

// AuthRegister creates an email-provider account and signs in.
func (r *Runner) AuthRegister(ctx context.Context, cmd *cli.Command) error {
	sessions, err := r.sessions()
	if err != nil {
		return err
	}

	user, err := sessions.Register(cmd.String("name"), cmd.String("email"), cmd.String("password"))
	if err != nil {
		return err
	}

	r.logger.Info("account created", "email", user.Email)

	if err := r.writePlain("✓ Account created for %s\n", user.Email); err != nil {
		return err
	}
	return r.writePlain("✓ Signed in as %s\n", user.Name)
}

// AuthLogin signs in an existing email-provider account.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	sessions, err := r.sessions()
	if err != nil {
		return err
	}

	user, err := sessions.Login(cmd.String("email"), cmd.String("password"))
	if err != nil {
		return err
	}

	r.logger.Info("session started", "email", user.Email)

	return r.writePlain("✓ Signed in as %s\n", user.Name)
}

// AuthLogout clears the active session.
//
// Logging out while signed out is a no-op, not an error.
func (r *Runner) AuthLogout(ctx context.Context, cmd *cli.Command) error {
	sessions, err := r.sessions()
	if err != nil {
		return err
	}

	if sessions.CurrentSession() == nil {
		return r.writePlain("Not signed in\n")
	}

	if err := sessions.EndSession(); err != nil {
		return err
	}

	return r.writePlain("✓ Signed out\n")
}

// AuthWhoami shows the signed-in user.
func (r *Runner) AuthWhoami(ctx context.Context, cmd *cli.Command) error {
	user, err := r.requireSession()
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(user, true)
	}

	if err := r.writePlain("Name: %s\n", user.Name); err != nil {
		return err
	}
	if err := r.writePlain("Email: %s\n", user.Email); err != nil {
		return err
	}
	if err := r.writePlain("Provider: %s\n", user.Provider); err != nil {
		return err
	}
	if user.AvatarURL != "" {
		return r.writePlain("Avatar: %s\n", user.AvatarURL)
	}
	return nil
}

// AuthSocial signs in through a federated identity provider.
//
// Runs the OAuth2 authorization code flow against the named provider, fetches
// the identity claims, and records the normalized user in the profile store.
func (r *Runner) AuthSocial(ctx context.Context, cmd *cli.Command) error {
	provider := models.Provider(cmd.StringArg("provider"))
	if provider == "" {
		return fmt.Errorf("%w: provider argument is required (google, facebook, apple)", shared.ErrMissingArgument)
	}

	credentials, err := r.providerCredentials(provider)
	if err != nil {
		return err
	}

	flow, err := auth.NewFlow(provider, credentials)
	if err != nil {
		return err
	}

	token, err := r.doOAuth(flow)
	if err != nil {
		return err
	}

	claims, err := flow.FetchClaims(ctx, token)
	if err != nil {
		return err
	}

	sessions, err := r.sessions()
	if err != nil {
		return err
	}

	user := claims.User(provider)
	if err := sessions.FederatedLogin(user); err != nil {
		return err
	}

	r.logger.Info("federated session started", "provider", provider, "id", user.ID)

	return r.writePlain("✓ Signed in as %s via %s\n", user.Name, provider)
}

// providerCredentials resolves configured OAuth2 credentials for a provider.
func (r *Runner) providerCredentials(provider models.Provider) (map[string]string, error) {
	var pc shared.ProviderConfig

	switch provider {
	case models.ProviderGoogle:
		pc = r.config.Providers.Google
	case models.ProviderFacebook:
		pc = r.config.Providers.Facebook
	case models.ProviderApple:
		pc = r.config.Providers.Apple
	default:
		return nil, fmt.Errorf("%w: unsupported provider %q", shared.ErrFederatedLogin, provider)
	}

	if pc.ClientID == "" || pc.ClientSecret == "" {
		return nil, fmt.Errorf("%w: %s client_id and client_secret must be set in config.toml", shared.ErrFederatedLogin, provider)
	}

	return pc.Map(), nil
}

// doOAuth executes the OAuth2 authorization flow with a local HTTP server
func (r *Runner) doOAuth(flow *auth.Flow) (*oauth2.Token, error) {
	state, err := shared.GenerateState()
	if err != nil {
		return nil, fmt.Errorf("failed to generate state token: %w", err)
	}

	authURL := flow.AuthURL(state)
	oauthHandler := server.NewOAuthHandler(flow.OAuthConfig(), state)

	serverAddr := fmt.Sprintf("%s:%d", r.config.Server.Host, r.config.Server.Port)
	callback := server.NewCallback(serverAddr, oauthHandler)

	r.logger.Infof("starting callback server for %s at %v", flow.Provider(), serverAddr)
	serverErrors := callback.Start()

	time.Sleep(100 * time.Millisecond)

	r.writePlain("→ Opening browser for %s sign-in...\n", flow.Provider())
	if err := shared.OpenBrowser(authURL); err != nil {
		r.logger.Warnf("failed to open browser automatically %v", err)
		r.writePlainln("⚠ Could not open browser automatically.")
		r.writePlain("Please open this URL in your browser:\n%s\n\n", authURL)
	}

	r.writePlain("→ Waiting for authorization (2 minute timeout)...\n")

	timeout := time.NewTimer(2 * time.Minute)
	defer timeout.Stop()

	var result server.OAuthResult

	select {
	case result = <-oauthHandler.Result():
		// Got result from callback
	case err := <-serverErrors:
		return nil, fmt.Errorf("server error: %w", err)
	case <-timeout.C:
		return nil, fmt.Errorf("%w: authorization timed out after 2 minutes", shared.ErrTimeout)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := callback.Shutdown(shutdownCtx); err != nil {
		r.logger.Warn("error shutting down server", "error", err)
	}

	if result.Error() != nil {
		return nil, fmt.Errorf("authorization failed: %w", result.Error())
	}

	if result.Token == nil {
		return nil, fmt.Errorf("no token received")
	}

	return result.Token, nil
}
