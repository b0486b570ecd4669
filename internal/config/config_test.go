package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		flags []string
		want  Config
	}{
		{
			name: "defaults",
			want: Config{
				RunAddress: DefaultRunAddress,
				APIAddress: DefaultAPIAddress,
				TokenFile:  DefaultTokenFile,
				LogLevel:   DefaultLogLevel,
			},
		},
		{
			name: "flags only",
			flags: []string{
				"-a", "localhost:9000",
				"-r", "http://api:8000",
				"-f", "/tmp/state.json",
				"-d", "postgres://u:p@localhost/vv",
				"-l", "debug",
				"-t", "3s",
			},
			want: Config{
				RunAddress:  "localhost:9000",
				APIAddress:  "http://api:8000",
				TokenFile:   "/tmp/state.json",
				DatabaseURI: "postgres://u:p@localhost/vv",
				LogLevel:    "debug",
				APITimeout:  3 * time.Second,
			},
		},
		{
			name: "env overrides flags",
			env: map[string]string{
				"RUN_ADDRESS": "env:9100",
				"API_ADDRESS": "http://env-api",
				"API_TIMEOUT": "10s",
			},
			flags: []string{"-a", "flag:9000", "-r", "http://flag-api"},
			want: Config{
				RunAddress: "env:9100",
				APIAddress: "http://env-api",
				TokenFile:  DefaultTokenFile,
				LogLevel:   DefaultLogLevel,
				APITimeout: 10 * time.Second,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)

			for _, k := range []string{"RUN_ADDRESS", "API_ADDRESS", "TOKEN_FILE", "DATABASE_URI", "LOG_LEVEL", "API_TIMEOUT"} {
				t.Setenv(k, "")
				os.Unsetenv(k)
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			oldArgs := os.Args
			os.Args = append([]string{"test"}, tt.flags...)
			t.Cleanup(func() { os.Args = oldArgs })

			cfg, err := New()
			require.NoError(t, err)
			assert.Equal(t, tt.want, *cfg)
		})
	}
}
