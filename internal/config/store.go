package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	errUtils "github.com/BerryBytes/aws-assume-role/errors"
	"github.com/BerryBytes/aws-assume-role/models"
	"github.com/spf13/afero"
)

// Role names become shell words downstream, so the pattern stays strict:
// alphanumerics, hyphens and underscores only, 64 characters at most, and
// no leading hyphen (it would parse as a flag).
var validRoleName = regexp.MustCompile(`^[A-Za-z0-9_][A-Za-z0-9_-]{0,63}$`)

// NamedRole pairs a role with its map key for ordered listings.
type NamedRole struct {
	Name       string
	Definition models.RoleDefinition
}

// Store persists the role configuration document.
type Store struct {
	Fs   afero.Fs
	path string
}

func NewStore(fs afero.Fs, path string) *Store {
	return &Store{Fs: fs, path: path}
}

// NewDefaultStore builds a store against the real filesystem and the
// resolved per-user config path.
func NewDefaultStore() *Store {
	return NewStore(afero.NewOsFs(), ResolveConfigPath(os.LookupEnv))
}

func (s *Store) Path() string { return s.path }

// Load reads the configuration document. A missing file yields an empty
// in-memory default without creating anything on disk; malformed JSON is
// fatal rather than silently reset.
func (s *Store) Load() (*models.Configuration, error) {
	data, err := afero.ReadFile(s.Fs, s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.NewConfiguration(), nil
		}
		return nil, fmt.Errorf("%w: reading %s: %v", errUtils.ErrIO, s.path, err)
	}

	var cfg models.Configuration
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s is not valid JSON: %v", errUtils.ErrConfig, s.path, err)
	}
	if cfg.Roles == nil {
		cfg.Roles = make(map[string]models.RoleDefinition)
	}
	if cfg.DefaultDurationSeconds == 0 {
		cfg.DefaultDurationSeconds = models.DefaultDurationSeconds
	}
	return &cfg, nil
}

// Save writes the document to a sibling temp file and renames it over the
// target, so readers never observe a partial write.
func (s *Store) Save(cfg *models.Configuration) error {
	dir := filepath.Dir(s.path)
	if err := s.Fs.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("%w: creating %s: %v", errUtils.ErrIO, dir, err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encoding configuration: %v", errUtils.ErrConfig, err)
	}
	data = append(data, '\n')

	tmp, err := afero.TempFile(s.Fs, dir, ConfigFileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: creating temp file in %s: %v", errUtils.ErrIO, dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = s.Fs.Remove(tmpName)
		return fmt.Errorf("%w: writing %s: %v", errUtils.ErrIO, tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		_ = s.Fs.Remove(tmpName)
		return fmt.Errorf("%w: closing %s: %v", errUtils.ErrIO, tmpName, err)
	}
	// Owner-only where the filesystem honors modes.
	_ = s.Fs.Chmod(tmpName, 0o600)

	if err := s.Fs.Rename(tmpName, s.path); err != nil {
		_ = s.Fs.Remove(tmpName)
		return fmt.Errorf("%w: replacing %s: %v", errUtils.ErrIO, s.path, err)
	}
	return nil
}

// AddRole validates and upserts a definition. Overwriting an existing name
// silently replaces it; re-running configure is the documented way to fix
// a role.
func (s *Store) AddRole(name string, def models.RoleDefinition) error {
	if err := ValidateRoleName(name); err != nil {
		return err
	}
	if err := validateDefinition(def); err != nil {
		return err
	}

	cfg, err := s.Load()
	if err != nil {
		return err
	}
	cfg.Roles[name] = def
	return s.Save(cfg)
}

// RemoveRole deletes a role. The file is only rewritten when the role
// actually existed.
func (s *Store) RemoveRole(name string) error {
	cfg, err := s.Load()
	if err != nil {
		return err
	}
	if _, ok := cfg.Roles[name]; !ok {
		return UnknownRoleError(cfg, name)
	}
	delete(cfg.Roles, name)
	return s.Save(cfg)
}

func (s *Store) GetRole(name string) (models.RoleDefinition, error) {
	cfg, err := s.Load()
	if err != nil {
		return models.RoleDefinition{}, err
	}
	def, ok := cfg.Roles[name]
	if !ok {
		return models.RoleDefinition{}, UnknownRoleError(cfg, name)
	}
	return def, nil
}

// ListRoles returns every role sorted by name.
func (s *Store) ListRoles() ([]NamedRole, error) {
	cfg, err := s.Load()
	if err != nil {
		return nil, err
	}
	roles := make([]NamedRole, 0, len(cfg.Roles))
	for name, def := range cfg.Roles {
		roles = append(roles, NamedRole{Name: name, Definition: def})
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i].Name < roles[j].Name })
	return roles, nil
}

// UnknownRoleError builds a role-not-found error that names the known
// roles so the user can spot a typo without a second command.
func UnknownRoleError(cfg *models.Configuration, name string) error {
	if len(cfg.Roles) == 0 {
		return fmt.Errorf("%w: %q is not configured; no roles exist yet, run configure first", errUtils.ErrRoleNotFound, name)
	}
	names := make([]string, 0, len(cfg.Roles))
	for known := range cfg.Roles {
		names = append(names, known)
	}
	sort.Strings(names)
	return fmt.Errorf("%w: %q is not configured; known roles: %s", errUtils.ErrRoleNotFound, name, strings.Join(names, ", "))
}

// ValidateRoleName rejects names that could escape quoting or act as path
// segments.
func ValidateRoleName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: role name must not be empty", errUtils.ErrInvalidInput)
	}
	if !validRoleName.MatchString(name) {
		return fmt.Errorf("%w: role name %q may only contain letters, digits, hyphens and underscores (64 chars max, no leading hyphen)", errUtils.ErrInvalidInput, name)
	}
	return nil
}

// ValidateDuration enforces the provider's session bounds locally, before
// any network call.
func ValidateDuration(seconds int) error {
	if seconds < models.MinDurationSeconds || seconds > models.MaxDurationSeconds {
		return fmt.Errorf("%w: duration %d is outside the accepted range %d-%d seconds",
			errUtils.ErrInvalidInput, seconds, models.MinDurationSeconds, models.MaxDurationSeconds)
	}
	return nil
}

func validateDefinition(def models.RoleDefinition) error {
	if def.RoleARN == "" {
		return fmt.Errorf("%w: role ARN is required", errUtils.ErrInvalidInput)
	}
	if def.AccountID == "" {
		return fmt.Errorf("%w: account ID is required", errUtils.ErrInvalidInput)
	}
	if def.DurationSeconds != 0 {
		return ValidateDuration(def.DurationSeconds)
	}
	return nil
}
