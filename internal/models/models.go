package models

import "fmt"

// Provider identifies how a user authenticates.
type Provider string

const (
	ProviderEmail    Provider = "email"
	ProviderGoogle   Provider = "google"
	ProviderFacebook Provider = "facebook"
	ProviderApple    Provider = "apple"
)

// Valid reports whether the provider is one of the supported values.
func (p Provider) Valid() bool {
	switch p {
	case ProviderEmail, ProviderGoogle, ProviderFacebook, ProviderApple:
		return true
	}
	return false
}

// User represents a registered identity.
//
// PasswordHash is a bcrypt hash, present only for the email provider.
// AvatarURL is populated for federated users from the provider's profile.
type User struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email,omitempty"`
	Provider     Provider `json:"provider"`
	PasswordHash string   `json:"passwordHash,omitempty"`
	AvatarURL    string   `json:"avatarUrl,omitempty"`
}

// Validate checks that the user record is well formed.
func (u *User) Validate() error {
	if u.ID == "" {
		return fmt.Errorf("user id is required")
	}
	if u.Name == "" {
		return fmt.Errorf("user name is required")
	}
	if !u.Provider.Valid() {
		return fmt.Errorf("unknown provider %q", u.Provider)
	}
	return nil
}

// Genre represents a TMDB genre tag.
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CastMember represents one credited actor on a movie.
type CastMember struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Character   string `json:"character"`
	ProfilePath string `json:"profile_path"`
	Order       int    `json:"order"`
}

// Credits holds the cast list returned with a movie detail.
type Credits struct {
	Cast []CastMember `json:"cast"`
}

// Video represents a promotional video attached to a movie.
type Video struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Name string `json:"name"`
	Site string `json:"site"`
	Type string `json:"type"`
}

// Videos holds the video list returned with a movie detail.
type Videos struct {
	Results []Video `json:"results"`
}

// Movie represents a TMDB movie.
//
// List endpoints populate the summary fields only; Details adds runtime,
// genres, credits and videos in one round trip.
type Movie struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Overview     string  `json:"overview"`
	ReleaseDate  string  `json:"release_date"`
	Runtime      int     `json:"runtime"`
	VoteAverage  float64 `json:"vote_average"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	Genres       []Genre `json:"genres,omitempty"`
	Credits      Credits `json:"credits,omitempty"`
	Videos       Videos  `json:"videos,omitempty"`
}

// Trailer returns the first YouTube trailer attached to the movie, or nil.
func (m *Movie) Trailer() *Video {
	for i := range m.Videos.Results {
		v := &m.Videos.Results[i]
		if v.Site == "YouTube" && v.Type == "Trailer" {
			return v
		}
	}
	return nil
}

// Page represents one page of movie summaries from a list or search endpoint.
type Page struct {
	Page         int     `json:"page"`
	Results      []Movie `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
}
