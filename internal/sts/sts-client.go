package sts

import (
	"context"
	"errors"
	"fmt"
	"time"

	errUtils "github.com/BerryBytes/aws-assume-role/errors"
	cfgstore "github.com/BerryBytes/aws-assume-role/internal/config"
	"github.com/BerryBytes/aws-assume-role/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/aws/smithy-go"
	"github.com/charmbracelet/log"
)

const sessionNamePrefix = "aws-assume-role"

// AwsConfigLoader is the production ConfigLoader backed by the SDK's
// default resolution chain.
type AwsConfigLoader struct{}

func (AwsConfigLoader) LoadDefaultConfig(ctx context.Context, opts ...func(*config.LoadOptions) error) (aws.Config, error) {
	return config.LoadDefaultConfig(ctx, opts...)
}

// Client performs the single role-assumption call. NewSTS and Now are
// swappable for tests.
type Client struct {
	Loader ConfigLoader
	NewSTS func(cfg aws.Config) STSAPI
	Now    func() time.Time
}

func NewClient(loader ConfigLoader) *Client {
	return &Client{
		Loader: loader,
		NewSTS: func(cfg aws.Config) STSAPI { return sts.NewFromConfig(cfg) },
		Now:    time.Now,
	}
}

// Assume resolves the effective duration and region, validates locally,
// and performs exactly one AssumeRole call. Assumption is not idempotent
// against rate-limited endpoints, so there is no retry loop here.
func (c *Client) Assume(ctx context.Context, req AssumeRequest) (*models.AWSCredentials, error) {
	duration := req.ResolveDurationSeconds()
	if err := cfgstore.ValidateDuration(duration); err != nil {
		return nil, err
	}

	cfg, err := c.loadVerifiedConfig(ctx)
	if err != nil {
		return nil, err
	}

	region := req.ResolveRegion()
	sessionName := fmt.Sprintf("%s-%d", sessionNamePrefix, c.Now().Unix())
	log.Debug("assuming role", "role", req.RoleName, "session", sessionName, "duration", duration, "region", region)

	input := &sts.AssumeRoleInput{
		RoleArn:         aws.String(req.Role.RoleARN),
		RoleSessionName: aws.String(sessionName),
		DurationSeconds: aws.Int32(int32(duration)),
	}

	var opts []func(*sts.Options)
	if region != "" {
		opts = append(opts, func(o *sts.Options) { o.Region = region })
	}

	out, err := c.NewSTS(cfg).AssumeRole(ctx, input, opts...)
	if err != nil {
		return nil, mapAssumeError(req.RoleName, err)
	}
	if out.Credentials == nil {
		return nil, errUtils.NewAssumeRoleError(req.RoleName, errUtils.ReasonTransport,
			errors.New("response contained no credentials"))
	}

	return &models.AWSCredentials{
		AccessKeyID:     models.Secret(aws.ToString(out.Credentials.AccessKeyId)),
		SecretAccessKey: models.Secret(aws.ToString(out.Credentials.SecretAccessKey)),
		SessionToken:    models.Secret(aws.ToString(out.Credentials.SessionToken)),
		Expiration:      aws.ToTime(out.Credentials.Expiration),
	}, nil
}

// CheckCredentials reports whether the ambient credential chain can
// produce base credentials at all, without calling STS.
func (c *Client) CheckCredentials(ctx context.Context) error {
	_, err := c.loadVerifiedConfig(ctx)
	return err
}

func (c *Client) loadVerifiedConfig(ctx context.Context) (aws.Config, error) {
	cfg, err := c.Loader.LoadDefaultConfig(ctx)
	if err != nil {
		return aws.Config{}, fmt.Errorf("%w: loading AWS configuration: %v", errUtils.ErrCredentialsUnavailable, err)
	}
	if cfg.Credentials == nil {
		return aws.Config{}, fmt.Errorf("%w: no credential provider configured", errUtils.ErrCredentialsUnavailable)
	}
	if _, err := cfg.Credentials.Retrieve(ctx); err != nil {
		return aws.Config{}, fmt.Errorf("%w: %v", errUtils.ErrCredentialsUnavailable, err)
	}
	return cfg, nil
}

// mapAssumeError folds SDK failures into the local taxonomy, keeping the
// role name attached for user-facing messages.
func mapAssumeError(role string, err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "AccessDenied", "AccessDeniedException", "UnauthorizedOperation":
			return errUtils.NewAssumeRoleError(role, errUtils.ReasonPermissionDenied, err)
		case "NoSuchEntity", "ResourceNotFoundException":
			return errUtils.NewAssumeRoleError(role, errUtils.ReasonNotFound, err)
		}
		return errUtils.NewAssumeRoleError(role, errUtils.ReasonTransport, err)
	}
	return errUtils.NewAssumeRoleError(role, errUtils.ReasonTransport, err)
}
