package models

import "testing"

func TestProviderValid(t *testing.T) {
	for _, p := range []Provider{ProviderEmail, ProviderGoogle, ProviderFacebook, ProviderApple} {
		if !p.Valid() {
			t.Errorf("expected %s to be valid", p)
		}
	}

	for _, p := range []Provider{"", "twitter", "Email"} {
		if p.Valid() {
			t.Errorf("expected %s to be invalid", p)
		}
	}
}

func TestUserValidate(t *testing.T) {
	t.Run("well formed", func(t *testing.T) {
		user := User{ID: "u1", Name: "Ada", Provider: ProviderEmail}
		if err := user.Validate(); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("missing id", func(t *testing.T) {
		user := User{Name: "Ada", Provider: ProviderEmail}
		if err := user.Validate(); err == nil {
			t.Error("expected error for missing id")
		}
	})

	t.Run("missing name", func(t *testing.T) {
		user := User{ID: "u1", Provider: ProviderEmail}
		if err := user.Validate(); err == nil {
			t.Error("expected error for missing name")
		}
	})

	t.Run("unknown provider", func(t *testing.T) {
		user := User{ID: "u1", Name: "Ada", Provider: "myspace"}
		if err := user.Validate(); err == nil {
			t.Error("expected error for unknown provider")
		}
	})
}

func TestMovieTrailer(t *testing.T) {
	t.Run("picks the first YouTube trailer", func(t *testing.T) {
		movie := Movie{Videos: Videos{Results: []Video{
			{Key: "teaser", Site: "YouTube", Type: "Teaser"},
			{Key: "offsite", Site: "Vimeo", Type: "Trailer"},
			{Key: "winner", Site: "YouTube", Type: "Trailer"},
			{Key: "second", Site: "YouTube", Type: "Trailer"},
		}}}

		trailer := movie.Trailer()
		if trailer == nil || trailer.Key != "winner" {
			t.Errorf("expected first YouTube trailer, got %v", trailer)
		}
	})

	t.Run("no videos", func(t *testing.T) {
		movie := Movie{}
		if movie.Trailer() != nil {
			t.Error("expected nil trailer")
		}
	})

	t.Run("no matching videos", func(t *testing.T) {
		movie := Movie{Videos: Videos{Results: []Video{
			{Key: "clip", Site: "YouTube", Type: "Clip"},
		}}}
		if movie.Trailer() != nil {
			t.Error("expected nil trailer without a Trailer-typed video")
		}
	})
}
