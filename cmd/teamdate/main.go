// Command teamdate shows the time for every member of a team.
//
// Usage:
//
//	teamdate                       # default team, now
//	teamdate tomorrow 3pm          # default team at a parsed date
//	teamdate -t managers           # a specific team
//	teamdate --all -z              # every team, grouped by timezone
//	teamdate -w                    # redraw every second
//	teamdate config init           # write a sample ~/.config/teamdate/teams.toml
package main

import (
	"context"
	"os"
	_ "time/tzdata"

	"github.com/Iron-Ham/teamdate/internal/cmd"
	"github.com/Iron-Ham/teamdate/internal/config"
	"github.com/Iron-Ham/teamdate/internal/errors"
	"github.com/Iron-Ham/teamdate/internal/version"
)

// Set via ldflags during build: -ldflags="-X main.buildVersion=1.0.0 -X main.buildCommit=abc1234"
var (
	buildVersion = "dev"
	buildCommit  = ""
)

func main() {
	opts := cmd.Options{
		Version:    version.New(buildVersion, buildCommit),
		ConfigPath: config.DefaultPath(),
	}
	if err := cmd.Execute(context.Background(), opts); err != nil {
		cmd.PrintError(os.Stderr, err)
		os.Exit(errors.ExitCode(err))
	}
}
