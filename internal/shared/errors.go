package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Account and session errors
	ErrValidation         = fmt.Errorf("required field missing")
	ErrDuplicateEmail     = fmt.Errorf("email already registered")
	ErrUserNotFound       = fmt.Errorf("no account for email")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrFederatedLogin     = fmt.Errorf("federated login failed")
	ErrNotAuthenticated   = fmt.Errorf("not signed in")
	ErrTimeout            = fmt.Errorf("operation timed out")

	// Catalog errors. ErrMovieNotFound wraps ErrCatalog so callers can treat
	// every remote lookup failure uniformly while still matching the
	// missing-movie case.
	ErrCatalog       = fmt.Errorf("catalog request failed")
	ErrMovieNotFound = fmt.Errorf("%w: movie not found", ErrCatalog)
	ErrNoTrailer     = fmt.Errorf("no trailer available")

	// Input validation errors
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
)
