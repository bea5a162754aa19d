package role

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewListCmd(deps Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "list",
		Short:        "List configured roles",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			roles, err := deps.Store.ListRoles()
			if err != nil {
				return err
			}
			if len(roles) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No roles configured")
				return nil
			}
			for _, r := range roles {
				fmt.Fprintf(cmd.OutOrStdout(), "- %s (%s)\n", r.Name, r.Definition.RoleARN)
			}
			return nil
		},
	}
	return cmd
}
