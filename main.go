package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/aura-ide/aura/internal/cmd"
	"github.com/aura-ide/aura/internal/config"
	"github.com/aura-ide/aura/internal/ui"
	"github.com/aura-ide/aura/internal/version"
)

func main() {
	ui.SetVersionInfo(ui.VersionInfo{
		Commit:    version.Commit,
		Date:      version.Date,
		GoVersion: version.GoVersion,
		Tagline:   version.Tagline,
		Version:   version.Version,
	})

	// Load settings from $AURA_HOME/settings.json
	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load settings: %v\n", err)
		settings = &config.Settings{}
	}

	// Container is created in CLI.AfterApply() after logging is initialized
	var cli cmd.CLI
	cli.SetSettings(settings)
	ctx := kong.Parse(&cli,
		kong.Name("aura"),
		kong.Description(version.Tagline),
		kong.Vars{
			"version": version.Info(),
		},
		kong.UsageOnError(),
		kong.Bind(&cli),
	)

	err = ctx.Run()
	cli.Close()
	if err != nil {
		if code, ok := cmd.IsExitError(err); ok {
			os.Exit(max(code, 1))
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
