package export

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"al.essio.dev/pkg/shellescape"
	errUtils "github.com/BerryBytes/aws-assume-role/errors"
	"github.com/BerryBytes/aws-assume-role/models"
)

// Mode selects the output encoding. The set is closed; it is part of the
// CLI contract consumed by the shell wrapper.
type Mode string

const (
	ModeExport Mode = "export"
	ModeJSON   Mode = "json"
)

// Environment variable names understood by the AWS SDKs and CLI.
const (
	EnvAccessKeyID          = "AWS_ACCESS_KEY_ID"
	EnvSecretAccessKey      = "AWS_SECRET_ACCESS_KEY"
	EnvSessionToken         = "AWS_SESSION_TOKEN"
	EnvCredentialExpiration = "AWS_CREDENTIAL_EXPIRATION"
	EnvRegion               = "AWS_REGION"
	EnvDefaultRegion        = "AWS_DEFAULT_REGION"
)

// ParseMode validates a --format value.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeExport:
		return ModeExport, nil
	case ModeJSON:
		return ModeJSON, nil
	}
	return "", fmt.Errorf("%w: unknown output format %q (expected export or json)", errUtils.ErrInvalidInput, s)
}

// Format renders a credential set in the requested mode. It is pure:
// no disk, no logging; the caller owns where the string goes.
func Format(creds *models.AWSCredentials, mode Mode) (string, error) {
	switch mode {
	case ModeExport:
		return formatExport(creds), nil
	case ModeJSON:
		return formatJSON(creds)
	}
	return "", fmt.Errorf("%w: unknown output format %q (expected export or json)", errUtils.ErrInvalidInput, mode)
}

type envPair struct {
	key   string
	value string
}

func credentialPairs(creds *models.AWSCredentials) []envPair {
	return []envPair{
		{EnvAccessKeyID, creds.AccessKeyID.Reveal()},
		{EnvSecretAccessKey, creds.SecretAccessKey.Reveal()},
		{EnvSessionToken, creds.SessionToken.Reveal()},
		{EnvCredentialExpiration, creds.Expiration.Format(time.RFC3339)},
	}
}

// formatExport emits one export statement per field. Values are quoted so
// that eval in a POSIX shell reproduces them byte-for-byte, whatever they
// contain.
func formatExport(creds *models.AWSCredentials) string {
	var b strings.Builder
	for _, p := range credentialPairs(creds) {
		fmt.Fprintf(&b, "export %s=%s\n", p.key, shellescape.Quote(p.value))
	}
	return b.String()
}

func formatJSON(creds *models.AWSCredentials) (string, error) {
	payload := struct {
		AccessKeyID     string `json:"AccessKeyId"`
		SecretAccessKey string `json:"SecretAccessKey"`
		SessionToken    string `json:"SessionToken"`
		Expiration      string `json:"Expiration"`
	}{
		AccessKeyID:     creds.AccessKeyID.Reveal(),
		SecretAccessKey: creds.SecretAccessKey.Reveal(),
		SessionToken:    creds.SessionToken.Reveal(),
		Expiration:      creds.Expiration.Format(time.RFC3339),
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding credentials: %w", err)
	}
	return string(data) + "\n", nil
}

// EnvVars returns KEY=value assignments for running a child process with
// the issued credentials. The region is included when known so SDK-based
// children resolve the same one.
func EnvVars(creds *models.AWSCredentials, region string) []string {
	vars := make([]string, 0, 6)
	for _, p := range credentialPairs(creds) {
		vars = append(vars, p.key+"="+p.value)
	}
	if region != "" {
		vars = append(vars, EnvRegion+"="+region, EnvDefaultRegion+"="+region)
	}
	return vars
}
