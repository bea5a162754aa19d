package role

import (
	"context"

	"github.com/BerryBytes/aws-assume-role/internal/sts"
	"github.com/BerryBytes/aws-assume-role/models"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

type ConfigureOptions struct {
	Name       string
	RoleARN    string
	AccountID  string
	Region     string
	Duration   int
	SkipVerify bool
}

func NewConfigureCmd(deps Dependencies) *cobra.Command {
	var opts ConfigureOptions

	cmd := &cobra.Command{
		Use:   "configure",
		Short: "Add or update a role definition",
		Long: `Add a named role to the configuration, or update it if the name already
exists. After saving, a trial assumption confirms the role is reachable;
its failure is reported but does not undo the configuration.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigure(cmd.Context(), deps, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Name, "name", "n", "", "role name used on the command line")
	cmd.Flags().StringVarP(&opts.RoleARN, "role-arn", "r", "", "ARN of the role to assume")
	cmd.Flags().StringVarP(&opts.AccountID, "account-id", "a", "", "AWS account ID that owns the role")
	cmd.Flags().StringVar(&opts.Region, "region", "", "region used when assuming this role")
	cmd.Flags().IntVarP(&opts.Duration, "duration", "d", 0, "session duration in seconds (900-43200)")
	cmd.Flags().BoolVar(&opts.SkipVerify, "skip-verify", false, "skip the trial assumption after saving")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("role-arn")
	_ = cmd.MarkFlagRequired("account-id")

	return cmd
}

func runConfigure(ctx context.Context, deps Dependencies, opts ConfigureOptions) error {
	def := models.RoleDefinition{
		RoleARN:         opts.RoleARN,
		AccountID:       opts.AccountID,
		Region:          opts.Region,
		DurationSeconds: opts.Duration,
	}

	if err := deps.Store.AddRole(opts.Name, def); err != nil {
		return err
	}
	log.Info("saved role", "name", opts.Name, "arn", opts.RoleARN)

	if opts.SkipVerify {
		return nil
	}
	if err := trialAssume(ctx, deps, opts.Name, def); err != nil {
		log.Warn("could not verify role; it was saved anyway, run verify after fixing access",
			"name", opts.Name, "error", err)
		return nil
	}
	log.Info("verified role", "name", opts.Name)
	return nil
}

func trialAssume(ctx context.Context, deps Dependencies, name string, def models.RoleDefinition) error {
	cfg, err := deps.Store.Load()
	if err != nil {
		return err
	}
	_, err = deps.Assumer.Assume(ctx, sts.AssumeRequest{
		RoleName:               name,
		Role:                   def,
		DefaultDurationSeconds: cfg.DefaultDurationSeconds,
		DefaultRegion:          cfg.DefaultRegion,
	})
	return err
}
