package server

import (
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"

	"golang.org/x/oauth2"
)

// OAuthResult carries the outcome of one authorization flow.
type OAuthResult struct {
	Token *oauth2.Token
	err   error
}

func (o *OAuthResult) Error() error {
	return o.err
}

// OAuthHandler completes the authorization code flow at /callback.
//
// The first request wins: the state parameter is checked against the CSRF
// token minted for this flow, the code is exchanged for tokens, and exactly
// one result is delivered before the channel closes. Repeat requests are
// rejected so a stale browser tab cannot replay the flow.
type OAuthHandler struct {
	config  *oauth2.Config
	state   string
	results chan OAuthResult
	handled atomic.Bool
	once    sync.Once
}

// NewOAuthHandler creates a handler bound to one flow's config and CSRF state token.
func NewOAuthHandler(config *oauth2.Config, state string) *OAuthHandler {
	return &OAuthHandler{
		config:  config,
		state:   state,
		results: make(chan OAuthResult, 1),
	}
}

// Routes returns the HTTP routes this handler serves.
func (h *OAuthHandler) Routes() []string {
	return []string{"/callback"}
}

// ServeHTTP handles the provider redirect.
func (h *OAuthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !h.handled.CompareAndSwap(false, true) {
		http.Error(w, "Callback already processed", http.StatusBadRequest)
		return
	}

	query := r.URL.Query()

	if query.Get("state") != h.state {
		h.fail(w, "Invalid state parameter", http.StatusBadRequest,
			fmt.Errorf("invalid state parameter"))
		return
	}

	code := query.Get("code")
	if code == "" {
		h.fail(w, "Authorization failed", http.StatusBadRequest,
			fmt.Errorf("authorization failed: %s - %s", query.Get("error"), query.Get("error_description")))
		return
	}

	token, err := h.config.Exchange(r.Context(), code)
	if err != nil {
		h.fail(w, "Token exchange failed", http.StatusInternalServerError,
			fmt.Errorf("token exchange failed: %w", err))
		return
	}

	h.deliver(OAuthResult{Token: token})

	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, successPage)
}

// Result returns the channel carrying the flow's single outcome.
//
// The channel receives exactly one result and is then closed.
func (h *OAuthHandler) Result() <-chan OAuthResult {
	return h.results
}

func (h *OAuthHandler) fail(w http.ResponseWriter, message string, status int, err error) {
	h.deliver(OAuthResult{err: err})
	http.Error(w, message, status)
}

func (h *OAuthHandler) deliver(result OAuthResult) {
	h.once.Do(func() {
		h.results <- result
		close(h.results)
	})
}

const successPage = `
<!DOCTYPE html>
<html>
<head>
    <title>Sign-in Complete</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
               display: flex; align-items: center; justify-content: center; height: 100vh;
               margin: 0; background: #0f1115; }
        .container { text-align: center; background: #1c1f26; padding: 2rem;
                     border-radius: 8px; box-shadow: 0 2px 4px rgba(0,0,0,0.4); }
        h1 { color: #2563eb; margin: 0 0 1rem 0; }
        p { color: #9ca3af; margin: 0; }
    </style>
</head>
<body>
    <div class="container">
        <h1>✓ Sign-in Complete</h1>
        <p>You can close this window and return to the terminal.</p>
    </div>
</body>
</html>
`
