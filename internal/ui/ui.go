package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/reel/internal/catalog"
	"github.com/desertthunder/reel/internal/favorites"
	"github.com/desertthunder/reel/internal/models"
	"github.com/desertthunder/reel/internal/shared"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	BrowseView ViewState = iota
	DetailView
)

// Section identifies which catalog list the browser shows.
type Section string

const (
	SectionPopular    Section = "popular"
	SectionNowPlaying Section = "now-playing"
	SectionUpcoming   Section = "upcoming"
	SectionTopRated   Section = "top-rated"
)

// Title returns the display title for the section.
func (s Section) Title() string {
	switch s {
	case SectionNowPlaying:
		return "Now Playing"
	case SectionUpcoming:
		return "Upcoming"
	case SectionTopRated:
		return "Top Rated"
	default:
		return "Popular"
	}
}

// Model represents the TUI application state.
type Model struct {
	ctx       context.Context
	view      ViewState
	section   Section
	catalog   catalog.Service
	favorites *favorites.Service
	width     int
	height    int
	movieList list.Model
	detail    *models.Movie
	status    string
	err       error
	help      help.Model
	keys      keyMap
}

// keyMap defines the key bindings for the TUI.
type keyMap struct {
	up       key.Binding
	down     key.Binding
	enter    key.Binding
	back     key.Binding
	favorite key.Binding
	trailer  key.Binding
	quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		favorite: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "favorite"),
		),
		trailer: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "trailer"),
		),
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.enter},
		{k.back, k.favorite, k.trailer},
		{k.quit},
	}
}

// movieItem wraps [models.Movie] to implement list.Item.
type movieItem struct {
	movie models.Movie
}

func (i movieItem) FilterValue() string { return i.movie.Title }
func (i movieItem) Title() string       { return i.movie.Title }
func (i movieItem) Description() string {
	desc := fmt.Sprintf("★ %.1f", i.movie.VoteAverage)
	if year := shared.ReleaseYear(i.movie.ReleaseDate); year != "" {
		desc = fmt.Sprintf("%s • %s", year, desc)
	}
	return desc
}

type moviesFetchedMsg struct {
	movies []models.Movie
	err    error
}

type detailFetchedMsg struct {
	movie *models.Movie
	err   error
}

type favoritesToggledMsg struct {
	id  int64
	ids []int64
	err error
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(ctx context.Context, section Section, c catalog.Service, f *favorites.Service) *Model {
	return &Model{
		ctx:       ctx,
		view:      BrowseView,
		section:   section,
		catalog:   c,
		favorites: f,
		help:      help.New(),
		keys:      newKeyMap(),
	}
}

// Init initializes the TUI by fetching the selected catalog section.
func (m *Model) Init() tea.Cmd {
	return m.fetchMovies()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.movieList.Width() == 0 {
			m.movieList.SetSize(msg.Width-4, msg.Height-8)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case BrowseView:
			return m.handleBrowseKeys(msg)
		case DetailView:
			return m.handleDetailKeys(msg)
		}

	case moviesFetchedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		items := make([]list.Item, len(msg.movies))
		for i, movie := range msg.movies {
			items[i] = movieItem{movie: movie}
		}
		m.movieList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.movieList.Title = m.section.Title()
		m.movieList.SetSize(m.width-4, m.height-8)
		return m, nil

	case detailFetchedMsg:
		if msg.err != nil {
			m.status = styles.err.Render(fmt.Sprintf("Failed to load details: %v", msg.err))
			return m, nil
		}
		m.detail = msg.movie
		m.view = DetailView
		return m, nil

	case favoritesToggledMsg:
		if msg.err != nil {
			m.status = styles.err.Render(fmt.Sprintf("Failed to update favorites: %v", msg.err))
			return m, nil
		}
		if containsID(msg.ids, msg.id) {
			m.status = styles.ok.Render("✓ Added to favorites")
		} else {
			m.status = styles.warn.Render("Removed from favorites")
		}
		return m, nil
	}

	var cmd tea.Cmd
	if m.view == BrowseView {
		m.movieList, cmd = m.movieList.Update(msg)
	}
	return m, cmd
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}

	switch m.view {
	case DetailView:
		return m.renderDetail()
	default:
		return m.renderBrowse()
	}
}

func (m *Model) handleBrowseKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "enter":
		if selected, ok := m.movieList.SelectedItem().(movieItem); ok {
			return m, m.fetchDetail(selected.movie.ID)
		}
	case "f":
		if selected, ok := m.movieList.SelectedItem().(movieItem); ok {
			return m, m.toggleFavorite(selected.movie.ID)
		}
	}

	var cmd tea.Cmd
	m.movieList, cmd = m.movieList.Update(msg)
	return m, cmd
}

func (m *Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = BrowseView
		m.detail = nil
		m.status = ""
		return m, nil
	case "f":
		if m.detail != nil {
			return m, m.toggleFavorite(m.detail.ID)
		}
	case "t":
		if m.detail != nil {
			if url, err := catalog.TrailerURL(m.detail); err == nil {
				if err := shared.OpenBrowser(url); err != nil {
					m.status = styles.err.Render("Could not open browser")
				} else {
					m.status = styles.ok.Render("Opening trailer...")
				}
			} else {
				m.status = styles.warn.Render("No trailer available")
			}
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) fetchMovies() tea.Cmd {
	return func() tea.Msg {
		var page *models.Page
		var err error

		switch m.section {
		case SectionNowPlaying:
			page, err = m.catalog.NowPlaying(m.ctx, 1)
		case SectionUpcoming:
			page, err = m.catalog.Upcoming(m.ctx, 1)
		case SectionTopRated:
			page, err = m.catalog.TopRated(m.ctx, 1)
		default:
			page, err = m.catalog.Popular(m.ctx, 1)
		}

		if err != nil {
			return moviesFetchedMsg{err: err}
		}
		return moviesFetchedMsg{movies: page.Results}
	}
}

func (m *Model) fetchDetail(id int64) tea.Cmd {
	return func() tea.Msg {
		movie, err := m.catalog.Details(m.ctx, id)
		return detailFetchedMsg{movie: movie, err: err}
	}
}

func (m *Model) toggleFavorite(id int64) tea.Cmd {
	return func() tea.Msg {
		ids, err := m.favorites.Toggle(id)
		return favoritesToggledMsg{id: id, ids: ids, err: err}
	}
}

func (m *Model) renderBrowse() string {
	helpKeys := []key.Binding{m.keys.enter, m.keys.favorite, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	if m.status != "" {
		return fmt.Sprintf("%s\n%s\n\n%s", m.movieList.View(), m.status, helpView)
	}
	return fmt.Sprintf("%s\n\n%s", m.movieList.View(), helpView)
}

func (m *Model) renderDetail() string {
	title := styles.title.Render(m.detail.Title)

	year := shared.ReleaseYear(m.detail.ReleaseDate)
	info := fmt.Sprintf(
		"\nReleased: %s\nRuntime: %s\nRating: %.1f\n\n%s",
		year,
		shared.FormatRuntime(m.detail.Runtime),
		m.detail.VoteAverage,
		m.detail.Overview,
	)

	fav := ""
	if m.favorites.Contains(m.detail.ID) {
		fav = "\n\n" + styles.ok.Render("♥ In favorites")
	}

	helpKeys := []key.Binding{m.keys.favorite, m.keys.trailer, m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	body := fmt.Sprintf("%s%s%s", title, info, fav)
	if m.status != "" {
		body = fmt.Sprintf("%s\n\n%s", body, m.status)
	}
	return fmt.Sprintf("%s\n\n%s", body, helpView)
}

func containsID(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
