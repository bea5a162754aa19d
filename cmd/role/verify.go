package role

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BerryBytes/aws-assume-role/internal/config"
	"github.com/BerryBytes/aws-assume-role/internal/sts"
	"github.com/spf13/cobra"
)

func NewVerifyCmd(deps Dependencies) *cobra.Command {
	var roleName string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check configuration, base credentials and role reachability",
		Long: `Run read-only diagnostics: the configuration file, the aws CLI on PATH,
the base credential chain, and a trial assumption of each configured role.
Nothing is mutated.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd, deps, roleName)
		},
	}

	cmd.Flags().StringVar(&roleName, "role", "", "verify a single role instead of all of them")
	return cmd
}

func runVerify(cmd *cobra.Command, deps Dependencies, roleName string) error {
	w := cmd.OutOrStdout()
	ctx := cmd.Context()
	problems := 0

	cfg, err := deps.Store.Load()
	if err != nil {
		fmt.Fprintf(w, "configuration: failed (%v)\n", err)
		return err
	}
	fmt.Fprintf(w, "configuration: ok, %d role(s) at %s\n", len(cfg.Roles), deps.Store.Path())

	if path, lookErr := deps.Executor.LookPath("aws"); lookErr != nil {
		fmt.Fprintln(w, "aws cli: not found (optional; all calls go through the SDK)")
	} else if version, verErr := deps.Executor.RunCommand(path, "--version"); verErr == nil {
		fmt.Fprintf(w, "aws cli: %s (%s)\n", path, strings.TrimSpace(string(version)))
	} else {
		fmt.Fprintf(w, "aws cli: %s\n", path)
	}

	credentialsOK := true
	if err := deps.Assumer.CheckCredentials(ctx); err != nil {
		problems++
		credentialsOK = false
		fmt.Fprintf(w, "base credentials: failed (%v)\n", err)
	} else {
		fmt.Fprintln(w, "base credentials: ok")
	}

	names := make([]string, 0, len(cfg.Roles))
	if roleName != "" {
		if _, ok := cfg.Roles[roleName]; !ok {
			return config.UnknownRoleError(cfg, roleName)
		}
		names = append(names, roleName)
	} else {
		for name := range cfg.Roles {
			names = append(names, name)
		}
		sort.Strings(names)
	}

	if !credentialsOK && len(names) > 0 {
		fmt.Fprintln(w, "role checks: skipped (no base credentials)")
	} else {
		for _, name := range names {
			req := sts.AssumeRequest{
				RoleName:               name,
				Role:                   cfg.Roles[name],
				DefaultDurationSeconds: cfg.DefaultDurationSeconds,
				DefaultRegion:          cfg.DefaultRegion,
			}
			if _, err := deps.Assumer.Assume(ctx, req); err != nil {
				problems++
				fmt.Fprintf(w, "role %s: failed (%v)\n", name, err)
			} else {
				fmt.Fprintf(w, "role %s: ok\n", name)
			}
		}
	}

	if problems > 0 {
		return fmt.Errorf("verification found %d problem(s)", problems)
	}
	return nil
}
