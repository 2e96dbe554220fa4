package cli

import (
	"fmt"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/idilsaglam/tada/internal/config"
	"github.com/idilsaglam/tada/internal/store"
	"github.com/idilsaglam/tada/internal/store/jsonstore"
	"github.com/idilsaglam/tada/internal/store/sqlitestore"
)

// Context is handed to every command's Run.
type Context struct {
	Items *store.Items
}

// CLI is the command tree. Global flags override the TADA_* environment.
type CLI struct {
	Version kong.VersionFlag `help:"Print version."`
	Store   string           `help:"Storage backend (json|sqlite|memory)." enum:"${backends}" default:"${store}"`
	Path    string           `help:"Data file for the json and sqlite backends." type:"path" default:"${path}"`
	Debug   bool             `help:"Log debug output to stderr." default:"${debug}"`
	Theme   string           `help:"Color theme (classic|mono)." enum:"classic,mono" default:"${theme}"`

	Add  AddCmd  `cmd:"" help:"Add a new item."`
	Ls   LsCmd   `cmd:"" help:"List items." default:"1"`
	Show ShowCmd `cmd:"" help:"Show one item."`
	Done DoneCmd `cmd:"" help:"Toggle done for an item."`
	Rm   RmCmd   `cmd:"" help:"Remove an item."`
	Tui  TuiCmd  `cmd:"" help:"Launch the interactive list."`
}

// Vars seeds flag defaults from cfg.
func Vars(cfg *config.Config, version string) kong.Vars {
	return kong.Vars{
		"version":  version,
		"backends": strings.Join([]string{config.BackendJSON, config.BackendSQLite, config.BackendMemory}, ","),
		"store":    cfg.Store,
		"path":     cfg.Path,
		"debug":    fmt.Sprint(cfg.Debug),
		"theme":    cfg.Theme,
	}
}

// OpenStorage returns the adapter for backend and a func releasing it.
func OpenStorage(backend, path string) (store.Storage, func() error, error) {
	noop := func() error { return nil }
	switch backend {
	case config.BackendMemory:
		return store.NewMemory(), noop, nil
	case config.BackendSQLite:
		s, err := sqlitestore.Open(path)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	case config.BackendJSON, "":
		return jsonstore.New(path), noop, nil
	}
	return nil, nil, fmt.Errorf("unknown storage backend %q", backend)
}
