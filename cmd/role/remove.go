package role

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func NewRemoveCmd(deps Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "remove <role-name>",
		Short:        "Remove a configured role",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := deps.Store.RemoveRole(args[0]); err != nil {
				return err
			}
			log.Info("removed role", "name", args[0])
			return nil
		},
	}
	return cmd
}
