package sts

import (
	"context"

	"github.com/BerryBytes/aws-assume-role/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// STSAPI is the slice of the STS SDK surface this tool calls.
type STSAPI interface {
	AssumeRole(ctx context.Context, input *sts.AssumeRoleInput, opts ...func(*sts.Options)) (*sts.AssumeRoleOutput, error)
}

// ConfigLoader resolves the ambient AWS configuration and credential chain.
type ConfigLoader interface {
	LoadDefaultConfig(ctx context.Context, opts ...func(*config.LoadOptions) error) (aws.Config, error)
}

// AssumeRequest carries a role definition together with the command-line
// overrides and the configured fallbacks. Resolution order for duration
// and region is override, then role, then default.
type AssumeRequest struct {
	RoleName string
	Role     models.RoleDefinition

	OverrideDurationSeconds int
	OverrideRegion          string

	DefaultDurationSeconds int
	DefaultRegion          string
}

// ResolveDurationSeconds applies the fallback chain; the result still has
// to pass bounds validation.
func (r AssumeRequest) ResolveDurationSeconds() int {
	switch {
	case r.OverrideDurationSeconds != 0:
		return r.OverrideDurationSeconds
	case r.Role.DurationSeconds != 0:
		return r.Role.DurationSeconds
	case r.DefaultDurationSeconds != 0:
		return r.DefaultDurationSeconds
	}
	return models.DefaultDurationSeconds
}

// ResolveRegion applies the fallback chain; empty means the SDK's own
// resolution decides.
func (r AssumeRequest) ResolveRegion() string {
	switch {
	case r.OverrideRegion != "":
		return r.OverrideRegion
	case r.Role.Region != "":
		return r.Role.Region
	}
	return r.DefaultRegion
}

// Assumer issues temporary credentials for configured roles.
type Assumer interface {
	Assume(ctx context.Context, req AssumeRequest) (*models.AWSCredentials, error)
	CheckCredentials(ctx context.Context) error
}
