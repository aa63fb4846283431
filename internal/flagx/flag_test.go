package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
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
			args:    []string{"-f", "vault.json", "-x", "1"},
			allowed: []string{"-f"},
			want:    []string{"-f", "vault.json"},
		},
		{
			name:    "equals form",
			args:    []string{"--file=vault.json", "--other=2"},
			allowed: []string{"--file"},
			want:    []string{"--file=vault.json"},
		},
		{
			name:    "flag without value",
			args:    []string{"-v", "-f", "vault.json"},
			allowed: []string{"-v"},
			want:    []string{"-v"},
		},
		{
			name:    "nothing allowed",
			args:    []string{"-a", "b"},
			allowed: []string{},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}
