package flagx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value",
			args:    []string{"-d", "admin.db", "-x", "other"},
			allowed: []string{"-d"},
			want:    []string{"-d", "admin.db"},
		},
		{
			name:    "equals form",
			args:    []string{"--delay=250ms", "-d", "admin.db"},
			allowed: []string{"--delay"},
			want:    []string{"--delay=250ms"},
		},
		{
			name:    "flag without value",
			args:    []string{"-v", "-d", "admin.db"},
			allowed: []string{"-v"},
			want:    []string{"-v"},
		},
		{
			name:    "nothing allowed",
			args:    []string{"-a", "b"},
			allowed: []string{"-z"},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}
