// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// setupCommand handles setup operations for the config file and profile store.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Initialize configuration and the profile store",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
		},
		Action: r.Setup,
	}
}

// authCommand handles account and session operations
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Manage accounts and the active session",
		Commands: []*cli.Command{
			{
				Name:  "register",
				Usage: "Create an account and sign in",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "name",
						Usage:    "Display name",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "email",
						Usage:    "Email address",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "password",
						Usage:    "Password",
						Required: true,
					},
				},
				Action: r.AuthRegister,
			},
			{
				Name:  "login",
				Usage: "Sign in with email and password",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "email",
						Usage:    "Email address",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "password",
						Usage:    "Password",
						Required: true,
					},
				},
				Action: r.AuthLogin,
			},
			{
				Name:  "social",
				Usage: "Sign in with a federated identity provider (google, facebook, apple)",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "provider"},
				},
				Action: r.AuthSocial,
			},
			{
				Name:   "logout",
				Usage:  "Clear the active session",
				Action: r.AuthLogout,
			},
			{
				Name:  "whoami",
				Usage: "Show the signed-in user",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.AuthWhoami,
			},
		},
	}
}

// browseCommand handles catalog list operations
func browseCommand(r *Runner) *cli.Command {
	sections := []struct {
		name    string
		aliases []string
		usage   string
	}{
		{"popular", []string{"pop"}, "List popular movies"},
		{"now-playing", []string{"now"}, "List movies currently in theatres"},
		{"upcoming", nil, "List upcoming releases"},
		{"top-rated", []string{"top"}, "List top rated movies"},
	}

	commands := []*cli.Command{}
	for _, s := range sections {
		commands = append(commands, &cli.Command{
			Name:    s.name,
			Aliases: s.aliases,
			Usage:   s.usage,
			Flags:   listFlags(),
			Action:  r.Browse,
		})
	}

	return &cli.Command{
		Name:     "browse",
		Usage:    "Browse catalog sections",
		Commands: commands,
	}
}

// searchCommand handles free-text catalog search
func searchCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: "Search the catalog for movies",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "query"},
		},
		Flags:  listFlags(),
		Action: r.Search,
	}
}

// movieCommand shows one movie's full record
func movieCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "movie",
		Usage: "Show details for one movie",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "id"},
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "trailer",
				Usage: "Open the trailer in the browser",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
				Value: true,
			},
		},
		Action: r.Movie,
	}
}

// favoritesCommand handles the favorites set
func favoritesCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "favorites",
		Aliases: []string{"fav"},
		Usage:   "Manage favorite movies",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List favorites resolved against the catalog",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.FavoritesList,
			},
			{
				Name:  "toggle",
				Usage: "Add or remove a movie from favorites",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Action: r.FavoritesToggle,
			},
			{
				Name:  "remove",
				Usage: "Remove a movie from favorites",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Action: r.FavoritesRemove,
			},
			{
				Name:  "export",
				Usage: "Export resolved favorites to a file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Export format (json, csv, markdown)",
						Value:   "json",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path",
					},
				},
				Action: r.FavoritesExport,
			},
		},
	}
}

// tuiCommand returns the top-level TUI command for interactive browsing.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch interactive movie browser",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "section",
				Aliases: []string{"s"},
				Usage:   "Catalog section to open (popular, now-playing, upcoming, top-rated)",
				Value:   "popular",
			},
		},
		Action: r.TUI,
	}
}

// listFlags returns the shared flag set for paged list output.
func listFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "page",
			Aliases: []string{"p"},
			Usage:   "Result page to fetch",
			Value:   1,
		},
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Output raw JSON",
		},
		&cli.BoolFlag{
			Name:  "pretty",
			Usage: "Pretty-print output",
		},
	}
}
