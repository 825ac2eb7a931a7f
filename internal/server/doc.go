// The server package hosts the short-lived localhost HTTP server used during
// federated login. The identity provider redirects the browser back to
// /callback with an authorization code; the handler validates the CSRF state,
// exchanges the code for tokens, and hands the result to the waiting command
// through a one-shot channel. The server is shut down as soon as a result is
// delivered or the flow times out.
package server
