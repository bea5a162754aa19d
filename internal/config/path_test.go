package config_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/BerryBytes/aws-assume-role/internal/config"
	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
)

func lookupFrom(env map[string]string) config.EnvLookup {
	return func(key string) (string, bool) {
		value, ok := env[key]
		return value, ok
	}
}

func TestResolveConfigPath(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{
			name: "unix home wins",
			env:  map[string]string{"HOME": "/home/dev"},
			want: filepath.Join("/home/dev", ".aws-assume-role", "config.json"),
		},
		{
			name: "windows profile when no unix home",
			env:  map[string]string{"USERPROFILE": `C:\Users\dev`},
			want: filepath.Join(`C:\Users\dev`, ".aws-assume-role", "config.json"),
		},
		{
			name: "unix home preferred over windows profile",
			env:  map[string]string{"HOME": "/home/dev", "USERPROFILE": `C:\Users\dev`},
			want: filepath.Join("/home/dev", ".aws-assume-role", "config.json"),
		},
		{
			name: "empty values are skipped",
			env:  map[string]string{"HOME": "", "USERPROFILE": `C:\Users\dev`},
			want: filepath.Join(`C:\Users\dev`, ".aws-assume-role", "config.json"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := config.ResolveConfigPath(lookupFrom(tt.env))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveConfigPathWithoutHomeVariables(t *testing.T) {
	got := config.ResolveConfigPath(lookupFrom(nil))

	assert.True(t, strings.HasSuffix(got, filepath.Join(".aws-assume-role", "config.json")))
	if xdg.Home != "" {
		assert.Equal(t, filepath.Join(xdg.Home, ".aws-assume-role", "config.json"), got)
	} else {
		assert.Equal(t, filepath.Join(".", ".aws-assume-role", "config.json"), got)
	}
}
