package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command.
type Globals struct {
	Debug bool `kong:"help='Enable debug logging'"`

	home string
}

// Logger builds the process logger.
func (g *Globals) Logger() *log.Logger {
	level := log.InfoLevel
	if g.Debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "handrps",
	})
}

type CLI struct {
	Globals

	Version kong.VersionFlag `short:"v" help:"Show version"`
	Play    PlayCmd          `cmd:"" default:"withargs" help:"Play rock-paper-scissors against the bot (default)"`
	Config  ConfigCmd        `cmd:"" help:"Manage saved defaults for play flags"`
}

func main() {
	home := dataDir()

	cli := CLI{Globals: Globals{home: home}}
	ctx := kong.Parse(&cli,
		kong.Name("handrps"),
		kong.Description("Webcam hand-gesture rock-paper-scissors"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Resolvers(settingsResolver(loadSettings(home))),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
