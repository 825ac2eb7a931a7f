package formatter

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/desertthunder/reel/internal/models"
)

func sampleMovie() models.Movie {
	return models.Movie{
		ID:          27205,
		Title:       "Inception",
		Overview:    "A thief who steals corporate secrets.",
		ReleaseDate: "2010-07-16",
		Runtime:     148,
		VoteAverage: 8.4,
		Genres:      []models.Genre{{ID: 28, Name: "Action"}, {ID: 878, Name: "Science Fiction"}},
		Credits: models.Credits{Cast: []models.CastMember{
			{Name: "Leonardo DiCaprio", Character: "Cobb"},
			{Name: "Joseph Gordon-Levitt", Character: "Arthur"},
		}},
		Videos: models.Videos{Results: []models.Video{
			{Key: "YoHD9XEInc0", Site: "YouTube", Type: "Trailer"},
		}},
	}
}

func TestMovieLine(t *testing.T) {
	t.Run("includes title, year and rating", func(t *testing.T) {
		line := MovieLine(1, sampleMovie())

		if !strings.Contains(line, "Inception") {
			t.Errorf("expected title, got %s", line)
		}
		if !strings.Contains(line, "(2010)") {
			t.Errorf("expected year, got %s", line)
		}
		if !strings.Contains(line, "8.4") {
			t.Errorf("expected rating, got %s", line)
		}
	})

	t.Run("missing release date renders dashes", func(t *testing.T) {
		movie := sampleMovie()
		movie.ReleaseDate = ""

		line := MovieLine(1, movie)
		if !strings.Contains(line, "(----)") {
			t.Errorf("expected placeholder year, got %s", line)
		}
	})
}

func TestMovieList(t *testing.T) {
	movies := []models.Movie{sampleMovie(), {ID: 157336, Title: "Interstellar", ReleaseDate: "2014-11-05"}}
	out := MovieList("Popular", movies)

	if !strings.Contains(out, "Popular (2 results)") {
		t.Errorf("expected header with count, got %s", out)
	}
	if !strings.Contains(out, "1. Inception") || !strings.Contains(out, "2. Interstellar") {
		t.Errorf("expected numbered entries, got %s", out)
	}
	if !strings.Contains(out, "ID: 27205") {
		t.Errorf("expected ids for followup commands, got %s", out)
	}
}

func TestMovieDetail(t *testing.T) {
	t.Run("full record", func(t *testing.T) {
		movie := sampleMovie()
		out := MovieDetail(&movie, "https://image.tmdb.org/t/p/w342/poster.jpg")

		for _, want := range []string{
			"Inception (2010)",
			"Action, Science Fiction",
			"Runtime: 2h 28m",
			"Rating: 8.4",
			"Poster: https://image.tmdb.org/t/p/w342/poster.jpg",
			"A thief who steals corporate secrets.",
			"Leonardo DiCaprio as Cobb",
			"Trailer: https://www.youtube.com/watch?v=YoHD9XEInc0",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("expected %q in output:\n%s", want, out)
			}
		}
	})

	t.Run("caps the cast list", func(t *testing.T) {
		movie := sampleMovie()
		movie.Credits.Cast = nil
		for i := 0; i < 12; i++ {
			movie.Credits.Cast = append(movie.Credits.Cast, models.CastMember{
				Name: "Actor", Character: "Role",
			})
		}

		out := MovieDetail(&movie, "")
		if got := strings.Count(out, "Actor as Role"); got != maxCastDisplay {
			t.Errorf("expected %d cast lines, got %d", maxCastDisplay, got)
		}
	})

	t.Run("sparse record omits sections", func(t *testing.T) {
		movie := models.Movie{ID: 1, Title: "Bare"}
		out := MovieDetail(&movie, "")

		if strings.Contains(out, "Cast:") {
			t.Error("expected no cast section for empty credits")
		}
		if strings.Contains(out, "Trailer:") {
			t.Error("expected no trailer line without videos")
		}
		if strings.Contains(out, "Poster:") {
			t.Error("expected no poster line without URL")
		}
	})
}

func TestExportToCSV(t *testing.T) {
	data, err := ExportToCSV([]models.Movie{sampleMovie()})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	out := string(data)
	lines := strings.Split(strings.TrimSpace(out), "\n")

	if lines[0] != "ID,Title,Year,Rating,Runtime" {
		t.Errorf("unexpected header %s", lines[0])
	}
	if len(lines) != 2 {
		t.Fatalf("expected header plus one record, got %d lines", len(lines))
	}
	if !strings.Contains(lines[1], "27205,Inception,2010,8.4,148") {
		t.Errorf("unexpected record %s", lines[1])
	}
}

func TestExportToMarkdown(t *testing.T) {
	data, err := ExportToMarkdown([]models.Movie{sampleMovie()})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	out := string(data)
	if !strings.Contains(out, "# My Favorites") {
		t.Errorf("expected document title, got %s", out)
	}
	if !strings.Contains(out, "**Movies**: 1") {
		t.Errorf("expected count, got %s", out)
	}
	if !strings.Contains(out, "1. Inception (2010)") {
		t.Errorf("expected entry, got %s", out)
	}
}

func TestWriteFavoritesExport(t *testing.T) {
	movies := []models.Movie{sampleMovie()}

	t.Run("json default", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.json")

		got, err := WriteFavoritesExport(movies, "json", path)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got != path {
			t.Errorf("expected returned path %s, got %s", path, got)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("expected file to exist: %v", err)
		}

		var decoded []models.Movie
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("expected valid JSON export: %v", err)
		}
		if len(decoded) != 1 || decoded[0].Title != "Inception" {
			t.Errorf("unexpected export content %v", decoded)
		}
	})

	t.Run("csv", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.csv")

		if _, err := WriteFavoritesExport(movies, "csv", path); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		data, _ := os.ReadFile(path)
		if !strings.HasPrefix(string(data), "ID,Title") {
			t.Errorf("expected CSV content, got %q", data)
		}
	})

	t.Run("markdown", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.md")

		if _, err := WriteFavoritesExport(movies, "markdown", path); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		data, _ := os.ReadFile(path)
		if !strings.HasPrefix(string(data), "# My Favorites") {
			t.Errorf("expected Markdown content, got %q", data)
		}
	})

	t.Run("unsupported format", func(t *testing.T) {
		if _, err := WriteFavoritesExport(movies, "xml", ""); err == nil {
			t.Error("expected error for unsupported format")
		}
	})
}
