package config_test

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	errUtils "github.com/BerryBytes/aws-assume-role/errors"
	"github.com/BerryBytes/aws-assume-role/internal/config"
	"github.com/BerryBytes/aws-assume-role/models"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigPath = "/home/dev/.aws-assume-role/config.json"

func newTestStore() (*config.Store, afero.Fs) {
	fs := afero.NewMemMapFs()
	return config.NewStore(fs, testConfigPath), fs
}

func devRole() models.RoleDefinition {
	return models.RoleDefinition{
		RoleARN:   "arn:aws:iam::123456789012:role/DevRole",
		AccountID: "123456789012",
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	store, fs := newTestStore()

	cfg, err := store.Load()
	require.NoError(t, err)

	assert.Empty(t, cfg.Roles)
	assert.Equal(t, models.DefaultDurationSeconds, cfg.DefaultDurationSeconds)

	exists, err := afero.Exists(fs, testConfigPath)
	require.NoError(t, err)
	assert.False(t, exists, "load must not create the file")
}

func TestLoadMalformedJSONIsFatal(t *testing.T) {
	store, fs := newTestStore()
	require.NoError(t, afero.WriteFile(fs, testConfigPath, []byte("{ not json"), 0o600))

	_, err := store.Load()
	assert.ErrorIs(t, err, errUtils.ErrConfig)
}

func TestLoadFillsZeroDefaults(t *testing.T) {
	store, fs := newTestStore()
	require.NoError(t, afero.WriteFile(fs, testConfigPath, []byte(`{"roles":{}}`), 0o600))

	cfg, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultDurationSeconds, cfg.DefaultDurationSeconds)
	assert.NotNil(t, cfg.Roles)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store, _ := newTestStore()

	original := &models.Configuration{
		Roles: map[string]models.RoleDefinition{
			"dev": devRole(),
			"prod": {
				RoleARN:         "arn:aws:iam::210987654321:role/ProdRole",
				AccountID:       "210987654321",
				Region:          "eu-west-1",
				DurationSeconds: 7200,
			},
		},
		DefaultDurationSeconds: 1800,
		DefaultRegion:          "us-east-1",
	}

	require.NoError(t, store.Save(original))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}

func TestSaveSetsRestrictivePermissions(t *testing.T) {
	store, fs := newTestStore()
	require.NoError(t, store.Save(models.NewConfiguration()))

	info, err := fs.Stat(testConfigPath)
	require.NoError(t, err)
	assert.Equal(t, 0o600, int(info.Mode().Perm()))
}

func TestAddRoleUpsertIsIdempotent(t *testing.T) {
	store, fs := newTestStore()

	require.NoError(t, store.AddRole("dev", devRole()))
	first, err := afero.ReadFile(fs, testConfigPath)
	require.NoError(t, err)

	require.NoError(t, store.AddRole("dev", devRole()))
	second, err := afero.ReadFile(fs, testConfigPath)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAddRoleOverwritesExistingDefinition(t *testing.T) {
	store, _ := newTestStore()

	require.NoError(t, store.AddRole("dev", devRole()))

	updated := devRole()
	updated.Region = "ap-south-1"
	updated.DurationSeconds = 3600
	require.NoError(t, store.AddRole("dev", updated))

	def, err := store.GetRole("dev")
	require.NoError(t, err)
	assert.Equal(t, updated, def)
}

func TestAddRoleRejectsBadNames(t *testing.T) {
	store, fs := newTestStore()

	badNames := []string{
		"",
		"a/b",
		"a\\b",
		"a'b",
		`a"b`,
		"a;b",
		"$(whoami)",
		"a b",
		"-leading-dash",
		strings.Repeat("a", 65),
	}
	for _, name := range badNames {
		err := store.AddRole(name, devRole())
		assert.ErrorIs(t, err, errUtils.ErrInvalidInput, "name %q", name)
	}

	exists, err := afero.Exists(fs, testConfigPath)
	require.NoError(t, err)
	assert.False(t, exists, "rejected input must not touch disk")
}

func TestAddRoleRejectsBadDefinitions(t *testing.T) {
	store, _ := newTestStore()

	tests := []struct {
		name string
		def  models.RoleDefinition
	}{
		{name: "missing arn", def: models.RoleDefinition{AccountID: "123456789012"}},
		{name: "missing account", def: models.RoleDefinition{RoleARN: "arn:aws:iam::123456789012:role/DevRole"}},
		{
			name: "duration below minimum",
			def: models.RoleDefinition{
				RoleARN:         "arn:aws:iam::123456789012:role/DevRole",
				AccountID:       "123456789012",
				DurationSeconds: 899,
			},
		},
		{
			name: "duration above maximum",
			def: models.RoleDefinition{
				RoleARN:         "arn:aws:iam::123456789012:role/DevRole",
				AccountID:       "123456789012",
				DurationSeconds: 43201,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, store.AddRole("dev", tt.def), errUtils.ErrInvalidInput)
		})
	}
}

func TestAddRoleAcceptsBoundaryDurations(t *testing.T) {
	store, _ := newTestStore()

	for _, seconds := range []int{900, 43200} {
		def := devRole()
		def.DurationSeconds = seconds
		assert.NoError(t, store.AddRole("dev", def))
	}
}

func TestRemoveRolePersists(t *testing.T) {
	store, _ := newTestStore()
	require.NoError(t, store.AddRole("dev", devRole()))

	require.NoError(t, store.RemoveRole("dev"))

	cfg, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.Roles)
}

func TestRemoveGhostRoleLeavesFileIntact(t *testing.T) {
	store, fs := newTestStore()
	require.NoError(t, store.AddRole("dev", devRole()))

	before, err := afero.ReadFile(fs, testConfigPath)
	require.NoError(t, err)

	err = store.RemoveRole("ghost")
	assert.ErrorIs(t, err, errUtils.ErrRoleNotFound)

	after, err := afero.ReadFile(fs, testConfigPath)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestGetRoleNamesKnownRolesOnMiss(t *testing.T) {
	store, _ := newTestStore()
	require.NoError(t, store.AddRole("dev", devRole()))
	require.NoError(t, store.AddRole("prod", devRole()))

	_, err := store.GetRole("stage")
	assert.ErrorIs(t, err, errUtils.ErrRoleNotFound)
	assert.Contains(t, err.Error(), "dev, prod")
}

func TestListRolesSortedByName(t *testing.T) {
	store, _ := newTestStore()
	for _, name := range []string{"prod", "dev", "stage"} {
		require.NoError(t, store.AddRole(name, devRole()))
	}

	roles, err := store.ListRoles()
	require.NoError(t, err)

	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"dev", "prod", "stage"}, names)
}

// renameFailFs simulates a crash between the temp-file write and the
// rename that would publish it.
type renameFailFs struct {
	afero.Fs
}

func (f *renameFailFs) Rename(oldname, newname string) error {
	return errors.New("rename blocked")
}

func TestSaveFailureBeforeRenameKeepsOldFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := config.NewStore(fs, testConfigPath)
	require.NoError(t, store.AddRole("dev", devRole()))

	before, err := afero.ReadFile(fs, testConfigPath)
	require.NoError(t, err)

	broken := config.NewStore(&renameFailFs{Fs: fs}, testConfigPath)
	err = broken.AddRole("prod", devRole())
	assert.ErrorIs(t, err, errUtils.ErrIO)

	after, err := afero.ReadFile(fs, testConfigPath)
	require.NoError(t, err)
	assert.Equal(t, before, after, "original file must survive a failed rename")

	entries, err := afero.ReadDir(fs, filepath.Dir(testConfigPath))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must be cleaned up")
}
