package main

import (
	"errors"
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/ayusman/handrps/internal/store"
)

// ConfigCmd manages saved defaults for play flags.
type ConfigCmd struct {
	Set   ConfigSetCmd   `kong:"cmd,help='Save a default for a play flag'"`
	Get   ConfigGetCmd   `kong:"cmd,help='Show the saved value of a play flag'"`
	Unset ConfigUnsetCmd `kong:"cmd,help='Remove a saved value'"`
	List  ConfigListCmd  `kong:"cmd,help='List saved values'"`
}

type ConfigSetCmd struct {
	Key   string `kong:"arg,help='Play flag name, e.g. camera'"`
	Value string `kong:"arg,help='Value as it would be given on the command line'"`
}

func (c *ConfigSetCmd) Run(g *Globals) error {
	if err := validateSetting(c.Key, c.Value); err != nil {
		return err
	}

	st, err := openStore(g.home)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Settings().Set(c.Key, c.Value); err != nil {
		return fmt.Errorf("save %s: %w", c.Key, err)
	}
	return nil
}

type ConfigGetCmd struct {
	Key string `kong:"arg,help='Play flag name'"`
}

func (c *ConfigGetCmd) Run(g *Globals, ctx *kong.Context) error {
	st, err := openStore(g.home)
	if err != nil {
		return err
	}
	defer st.Close()

	value, err := st.Settings().Get(c.Key)
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("%s is not set", c.Key)
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", c.Key, err)
	}

	fmt.Fprintln(ctx.Stdout, value)
	return nil
}

type ConfigUnsetCmd struct {
	Key string `kong:"arg,help='Play flag name'"`
}

func (c *ConfigUnsetCmd) Run(g *Globals) error {
	st, err := openStore(g.home)
	if err != nil {
		return err
	}
	defer st.Close()

	err = st.Settings().Delete(c.Key)
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("%s is not set", c.Key)
	}
	return err
}

type ConfigListCmd struct{}

func (c *ConfigListCmd) Run(g *Globals, ctx *kong.Context) error {
	st, err := openStore(g.home)
	if err != nil {
		return err
	}
	defer st.Close()

	settings, err := st.Settings().List()
	if err != nil {
		return fmt.Errorf("list settings: %w", err)
	}

	for _, s := range settings {
		fmt.Fprintf(ctx.Stdout, "%s=%s\n", s.Key, s.Value)
	}
	return nil
}

// validateSetting checks that key names a play flag and that value parses
// for it, by parsing a throwaway command line.
func validateSetting(key, value string) error {
	var cli CLI
	parser, err := kong.New(&cli, kong.Name("handrps"), kong.Vars{"version": version})
	if err != nil {
		return err
	}

	if !hasPlayFlag(parser.Model, key) {
		return fmt.Errorf("unknown play flag %q", key)
	}

	if _, err := parser.Parse([]string{playCommand, "--" + key + "=" + value}); err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}
	return nil
}

func hasPlayFlag(app *kong.Application, name string) bool {
	for _, cmd := range app.Children {
		if cmd.Name != playCommand {
			continue
		}
		for _, flag := range cmd.Flags {
			if flag.Name == name {
				return true
			}
		}
	}
	return false
}
