package root

import (
	roleCmd "github.com/BerryBytes/aws-assume-role/cmd/role"
	"github.com/BerryBytes/aws-assume-role/internal/config"
	"github.com/BerryBytes/aws-assume-role/internal/sts"
	"github.com/BerryBytes/aws-assume-role/utils/common"
	promptutils "github.com/BerryBytes/aws-assume-role/utils/prompt"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Version is stamped by the release build; "dev" otherwise.
var Version = "dev"

func NewRootCmd(deps roleCmd.Dependencies) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "aws-assume-role",
		Short: "Assume AWS IAM roles and export temporary credentials",
		Long: `aws-assume-role stores named role definitions and exchanges them for
temporary credentials through STS. Shell-export output is designed to be
eval'd by the accompanying wrapper; diagnostics stay on stderr.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")

	cmd.AddCommand(
		roleCmd.NewConfigureCmd(deps),
		roleCmd.NewAssumeCmd(deps),
		roleCmd.NewListCmd(deps),
		roleCmd.NewRemoveCmd(deps),
		roleCmd.NewVerifyCmd(deps),
	)
	return cmd
}

// DefaultDependencies wires the production collaborators.
func DefaultDependencies() roleCmd.Dependencies {
	return roleCmd.Dependencies{
		Store:    config.NewDefaultStore(),
		Assumer:  sts.NewClient(sts.AwsConfigLoader{}),
		Prompter: promptutils.NewPrompt(),
		Executor: &common.RealCommandExecutor{},
	}
}
