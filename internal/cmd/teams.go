package cmd

import "github.com/spf13/cobra"

func newTeamsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "teams",
		Short: "List configured teams",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig(cmd)
			if err != nil {
				return err
			}
			r, err := a.reporter(cmd)
			if err != nil {
				return err
			}
			return r.Roster(cfg.Teams())
		},
	}
}
