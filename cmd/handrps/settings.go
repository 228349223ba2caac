package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/ayusman/handrps/internal/store"
)

// dataDir returns $HANDRPS_HOME, or ~/.handrps when unset.
func dataDir() string {
	if dir := os.Getenv("HANDRPS_HOME"); dir != "" {
		return dir
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".handrps"
	}
	return filepath.Join(homeDir, ".handrps")
}

// openStore opens the settings database in dir, creating dir if needed.
func openStore(dir string) (*store.Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	st, err := store.New(filepath.Join(dir, store.DefaultFile))
	if err != nil {
		return nil, fmt.Errorf("open settings: %w", err)
	}
	return st, nil
}

// loadSettings reads the saved settings. A store that cannot be opened
// yields no settings so play still works with built-in defaults.
func loadSettings(dir string) map[string]string {
	st, err := openStore(dir)
	if err != nil {
		return nil
	}
	defer st.Close()

	values, err := st.Settings().All()
	if err != nil {
		return nil
	}
	return values
}

// settingsResolver supplies saved values for play flags that were not
// given on the command line.
func settingsResolver(settings map[string]string) kong.Resolver {
	return kong.ResolverFunc(func(ctx *kong.Context, parent *kong.Path, flag *kong.Flag) (any, error) {
		if parent == nil || parent.Command == nil || parent.Command.Name != playCommand {
			return nil, nil
		}
		value, ok := settings[flag.Name]
		if !ok {
			return nil, nil
		}
		return value, nil
	})
}
