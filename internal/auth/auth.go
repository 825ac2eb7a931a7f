package auth

import (
	"fmt"
	"strings"
	"sync"

	"github.com/desertthunder/reel/internal/models"
	"github.com/desertthunder/reel/internal/shared"
	"github.com/desertthunder/reel/internal/store"
	"golang.org/x/crypto/bcrypt"
)

// Service manages the user registry and the session slot over a profile store.
//
// Read-modify-write sequences on the registry are serialized behind a mutex
// so concurrent commands sharing one profile cannot interleave writes.
type Service struct {
	store store.Store
	mu    sync.Mutex
}

// NewService creates a new [Service] backed by the given store.
func NewService(s store.Store) *Service {
	return &Service{store: s}
}

// ListUsers returns the full registry in insertion order, empty if none.
func (s *Service) ListUsers() []models.User {
	return store.ReadJSON(s.store, store.KeyUsers, []models.User{})
}

// AddUser appends a user to the registry and persists it.
//
// Duplicate-email detection is the caller's responsibility; Register applies
// that policy before calling here.
func (s *Service) AddUser(user models.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrValidation, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users := s.ListUsers()
	users = append(users, user)
	return store.WriteJSON(s.store, store.KeyUsers, users)
}

// FindByEmail returns the first registry entry with a matching email.
func (s *Service) FindByEmail(email string) (*models.User, bool) {
	for _, user := range s.ListUsers() {
		if user.Email == email {
			return &user, true
		}
	}
	return nil, false
}

// StartSession overwrites the session slot with a snapshot of user.
func (s *Service) StartSession(user models.User) error {
	return store.WriteJSON(s.store, store.KeySession, &user)
}

// CurrentSession returns the signed-in user, or nil when signed out.
func (s *Service) CurrentSession() *models.User {
	return store.ReadJSON[*models.User](s.store, store.KeySession, nil)
}

// EndSession clears the session slot.
func (s *Service) EndSession() error {
	return store.WriteJSON[*models.User](s.store, store.KeySession, nil)
}

// Register creates an email-provider account and starts a session for it.
//
// Fails with [shared.ErrValidation] when any field is blank and with
// [shared.ErrDuplicateEmail] when the registry already holds the email;
// neither failure mutates the registry or the session slot.
func (s *Service) Register(name, email, password string) (*models.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if name == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", shared.ErrValidation)
	}

	if _, exists := s.FindByEmail(email); exists {
		return nil, fmt.Errorf("%w: %s", shared.ErrDuplicateEmail, email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:           shared.GenerateID(),
		Name:         name,
		Email:        email,
		Provider:     models.ProviderEmail,
		PasswordHash: string(hash),
	}

	if err := s.AddUser(user); err != nil {
		return nil, err
	}

	if err := s.StartSession(user); err != nil {
		return nil, err
	}

	return &user, nil
}

// Login starts a session for an email-provider account.
//
// Fails with [shared.ErrUserNotFound] when no registry entry matches and
// with [shared.ErrInvalidCredentials] when the password does not match the
// stored hash; the session slot is untouched on failure.
func (s *Service) Login(email, password string) (*models.User, error) {
	user, ok := s.FindByEmail(email)
	if !ok {
		return nil, fmt.Errorf("%w: %s", shared.ErrUserNotFound, email)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("%w: wrong password", shared.ErrInvalidCredentials)
	}

	if err := s.StartSession(*user); err != nil {
		return nil, err
	}

	return user, nil
}

// FederatedLogin records a provider-verified identity and starts a session.
//
// The user is appended to the registry on first login (matched by provider
// id afterwards) and the session snapshot always reflects the latest claims.
func (s *Service) FederatedLogin(user models.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrFederatedLogin, err)
	}

	s.mu.Lock()
	users := s.ListUsers()
	known := false
	for _, u := range users {
		if u.ID == user.ID {
			known = true
			break
		}
	}
	var err error
	if !known {
		users = append(users, user)
		err = store.WriteJSON(s.store, store.KeyUsers, users)
	}
	s.mu.Unlock()

	if err != nil {
		return err
	}

	return s.StartSession(user)
}
