package role_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/BerryBytes/aws-assume-role/cmd/role"
	errUtils "github.com/BerryBytes/aws-assume-role/errors"
	"github.com/BerryBytes/aws-assume-role/internal/config"
	"github.com/BerryBytes/aws-assume-role/models"
	mock_config "github.com/BerryBytes/aws-assume-role/tests/mock/config"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCmd(t *testing.T) {
	tests := []struct {
		name       string
		mockSetup  func(*mock_config.MockRoleStore)
		wantOutput string
		wantErr    error
	}{
		{
			name: "lists roles sorted with their ARNs",
			mockSetup: func(store *mock_config.MockRoleStore) {
				store.EXPECT().ListRoles().Return([]config.NamedRole{
					{Name: "dev", Definition: models.RoleDefinition{RoleARN: "arn:aws:iam::123456789012:role/DevRole"}},
					{Name: "prod", Definition: models.RoleDefinition{RoleARN: "arn:aws:iam::999999999999:role/ProdRole"}},
				}, nil)
			},
			wantOutput: "- dev (arn:aws:iam::123456789012:role/DevRole)\n" +
				"- prod (arn:aws:iam::999999999999:role/ProdRole)\n",
		},
		{
			name: "empty configuration",
			mockSetup: func(store *mock_config.MockRoleStore) {
				store.EXPECT().ListRoles().Return(nil, nil)
			},
			wantOutput: "No roles configured\n",
		},
		{
			name: "load failure propagates",
			mockSetup: func(store *mock_config.MockRoleStore) {
				store.EXPECT().ListRoles().Return(nil, errUtils.ErrConfig)
			},
			wantErr: errUtils.ErrConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mock_config.NewMockRoleStore(ctrl)
			tt.mockSetup(store)

			cmd := role.NewListCmd(role.Dependencies{Store: store})

			var stdout bytes.Buffer
			cmd.SetOut(&stdout)
			cmd.SetErr(&nullWriter{})
			cmd.SetArgs([]string{})

			err := cmd.Execute()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOutput, stdout.String())
		})
	}
}

func TestRemoveCmd(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		mockSetup func(*mock_config.MockRoleStore)
		wantErr   error
	}{
		{
			name: "removes an existing role",
			args: []string{"dev"},
			mockSetup: func(store *mock_config.MockRoleStore) {
				store.EXPECT().RemoveRole("dev").Return(nil)
			},
		},
		{
			name: "unknown role propagates",
			args: []string{"ghost"},
			mockSetup: func(store *mock_config.MockRoleStore) {
				store.EXPECT().RemoveRole("ghost").
					Return(fmt.Errorf("%w: %q is not configured", errUtils.ErrRoleNotFound, "ghost"))
			},
			wantErr: errUtils.ErrRoleNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mock_config.NewMockRoleStore(ctrl)
			tt.mockSetup(store)

			cmd := role.NewRemoveCmd(role.Dependencies{Store: store})
			cmd.SetOut(&nullWriter{})
			cmd.SetErr(&nullWriter{})
			cmd.SetArgs(tt.args)

			err := cmd.Execute()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRemoveCmdRequiresExactlyOneArg(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cmd := role.NewRemoveCmd(role.Dependencies{Store: mock_config.NewMockRoleStore(ctrl)})
	cmd.SetOut(&nullWriter{})
	cmd.SetErr(&nullWriter{})
	cmd.SetArgs([]string{})

	assert.Error(t, cmd.Execute())
}
