// package formatter provides functions to render movie data as plain text and to export favorites to various formats (CSV, Markdown, JSON)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/desertthunder/reel/internal/models"
	"github.com/desertthunder/reel/internal/shared"
)

// maxCastDisplay caps how many cast members the detail view lists.
const maxCastDisplay = 8

// MovieLine renders one movie as a single summary line.
func MovieLine(index int, movie models.Movie) string {
	year := shared.ReleaseYear(movie.ReleaseDate)
	if year == "" {
		year = "----"
	}
	return fmt.Sprintf("%d. %s (%s) ★ %.1f", index, movie.Title, year, movie.VoteAverage)
}

// MovieList renders a page of movie summaries as plain text.
func MovieList(title string, movies []models.Movie) string {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("%s (%d results)\n\n", title, len(movies)))
	for i, movie := range movies {
		buf.WriteString(MovieLine(i+1, movie) + "\n")
		buf.WriteString(fmt.Sprintf("   ID: %d\n", movie.ID))
	}

	return buf.String()
}

// MovieDetail renders a full movie record, including genres, cast and trailer.
func MovieDetail(movie *models.Movie, posterURL string) string {
	var buf bytes.Buffer

	year := shared.ReleaseYear(movie.ReleaseDate)
	if year != "" {
		buf.WriteString(fmt.Sprintf("%s (%s)\n", movie.Title, year))
	} else {
		buf.WriteString(movie.Title + "\n")
	}

	if len(movie.Genres) > 0 {
		names := make([]string, len(movie.Genres))
		for i, g := range movie.Genres {
			names[i] = g.Name
		}
		buf.WriteString(strings.Join(names, ", ") + "\n")
	}

	buf.WriteString(fmt.Sprintf("Runtime: %s\n", shared.FormatRuntime(movie.Runtime)))
	buf.WriteString(fmt.Sprintf("Rating: %.1f\n", movie.VoteAverage))
	if posterURL != "" {
		buf.WriteString(fmt.Sprintf("Poster: %s\n", posterURL))
	}

	if movie.Overview != "" {
		buf.WriteString("\n" + movie.Overview + "\n")
	}

	cast := movie.Credits.Cast
	if len(cast) > maxCastDisplay {
		cast = cast[:maxCastDisplay]
	}
	if len(cast) > 0 {
		buf.WriteString("\nCast:\n")
		for _, member := range cast {
			buf.WriteString(fmt.Sprintf("  %s as %s\n", member.Name, member.Character))
		}
	}

	if trailer := movie.Trailer(); trailer != nil {
		buf.WriteString(fmt.Sprintf("\nTrailer: https://www.youtube.com/watch?v=%s\n", trailer.Key))
	}

	return buf.String()
}

// ExportToCSV converts resolved favorites to CSV with columns: ID, Title, Year, Rating, Runtime
func ExportToCSV(movies []models.Movie) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Title", "Year", "Rating", "Runtime"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, movie := range movies {
		record := []string{
			strconv.FormatInt(movie.ID, 10),
			movie.Title,
			shared.ReleaseYear(movie.ReleaseDate),
			fmt.Sprintf("%.1f", movie.VoteAverage),
			strconv.Itoa(movie.Runtime),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts resolved favorites to a Markdown document.
func ExportToMarkdown(movies []models.Movie) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString("# My Favorites\n\n")
	buf.WriteString(fmt.Sprintf("**Movies**: %d\n\n", len(movies)))

	for i, movie := range movies {
		year := shared.ReleaseYear(movie.ReleaseDate)
		yearPart := ""
		if year != "" {
			yearPart = fmt.Sprintf(" (%s)", year)
		}
		buf.WriteString(fmt.Sprintf("%d. %s%s — ★ %.1f\n", i+1, movie.Title, yearPart, movie.VoteAverage))
	}

	return buf.Bytes(), nil
}

// WriteFavoritesExport writes resolved favorites to path in the requested format.
//
// Supported formats: json (default), csv, markdown.
func WriteFavoritesExport(movies []models.Movie, format, path string) (string, error) {
	var data []byte
	var err error

	switch format {
	case "csv":
		if path == "" {
			path = "favorites.csv"
		}
		data, err = ExportToCSV(movies)
	case "markdown":
		if path == "" {
			path = "favorites.md"
		}
		data, err = ExportToMarkdown(movies)
	case "json", "":
		if path == "" {
			path = "favorites.json"
		}
		data, err = shared.MarshalJSON(movies, true)
	default:
		return "", fmt.Errorf("unsupported export format: %s", format)
	}

	if err != nil {
		return "", fmt.Errorf("failed to generate %s export: %w", format, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}

	return path, nil
}
