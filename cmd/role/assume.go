package role

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	errUtils "github.com/BerryBytes/aws-assume-role/errors"
	"github.com/BerryBytes/aws-assume-role/internal/config"
	"github.com/BerryBytes/aws-assume-role/internal/export"
	"github.com/BerryBytes/aws-assume-role/internal/sts"
	"github.com/BerryBytes/aws-assume-role/models"
	promptutils "github.com/BerryBytes/aws-assume-role/utils/prompt"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

type AssumeOptions struct {
	Name     string
	Duration int
	Region   string
	Format   string
	Exec     string
}

func NewAssumeCmd(deps Dependencies) *cobra.Command {
	var opts AssumeOptions

	cmd := &cobra.Command{
		Use:   "assume [role-name]",
		Short: "Assume a configured role and emit its temporary credentials",
		Long: `Assume a configured role and print temporary credentials to stdout,
either as shell export statements for eval or as a JSON object. With no
role name an interactive picker runs on stderr. Nothing but credential
output ever goes to stdout, so wrappers can eval it blindly on exit 0.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.Name = args[0]
			}
			err := runAssume(cmd, deps, opts)
			if errors.Is(err, promptutils.ErrInterrupted) {
				return nil
			}
			return err
		},
	}

	cmd.Flags().IntVarP(&opts.Duration, "duration", "d", 0, "session duration in seconds (900-43200)")
	cmd.Flags().StringVar(&opts.Region, "region", "", "region override for this invocation")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "export", "output format, export or json")
	cmd.Flags().StringVar(&opts.Exec, "exec", "", "run a command with the credentials instead of printing them")

	return cmd
}

func runAssume(cmd *cobra.Command, deps Dependencies, opts AssumeOptions) error {
	mode, err := export.ParseMode(opts.Format)
	if err != nil {
		return err
	}

	cfg, err := deps.Store.Load()
	if err != nil {
		return err
	}

	name := opts.Name
	if name == "" {
		if name, err = selectRole(deps, cfg); err != nil {
			return err
		}
	}

	def, ok := cfg.Roles[name]
	if !ok {
		return config.UnknownRoleError(cfg, name)
	}

	req := sts.AssumeRequest{
		RoleName:                name,
		Role:                    def,
		OverrideDurationSeconds: opts.Duration,
		OverrideRegion:          opts.Region,
		DefaultDurationSeconds:  cfg.DefaultDurationSeconds,
		DefaultRegion:           cfg.DefaultRegion,
	}

	creds, err := deps.Assumer.Assume(cmd.Context(), req)
	if err != nil {
		return err
	}
	log.Debug("issued credentials", "role", name, "expires", creds.Expiration)

	if opts.Exec != "" {
		return runWithCredentials(cmd.Context(), deps, creds, req.ResolveRegion(), opts.Exec)
	}

	out, err := export.Format(creds, mode)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

func selectRole(deps Dependencies, cfg *models.Configuration) (string, error) {
	if len(cfg.Roles) == 0 {
		return "", fmt.Errorf("%w: no roles configured; run configure first", errUtils.ErrConfig)
	}
	names := make([]string, 0, len(cfg.Roles))
	for name := range cfg.Roles {
		names = append(names, name)
	}
	sort.Strings(names)
	return deps.Prompter.PromptForSelection("Choose a role", names)
}

func runWithCredentials(ctx context.Context, deps Dependencies, creds *models.AWSCredentials, region, command string) error {
	argv := strings.Fields(command)
	if len(argv) == 0 {
		return fmt.Errorf("%w: --exec command must not be empty", errUtils.ErrInvalidInput)
	}
	env := export.EnvVars(creds, region)
	return deps.Executor.RunWithEnv(ctx, env, argv[0], argv[1:]...)
}
