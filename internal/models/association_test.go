package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "zero", input: "0", want: 0},
		{name: "max", input: "100", want: 100},
		{name: "middle", input: "42", want: 42},
		{name: "surrounding whitespace", input: " 7 ", want: 7},
		{name: "negative", input: "-1", wantErr: true},
		{name: "above max", input: "101", wantErr: true},
		{name: "not a number", input: "abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "decimal", input: "3.5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAssociationLevelValue(t *testing.T) {
	assoc := Association{ID: 1, Name: "Go", Level: "80"}
	n, err := assoc.LevelValue()
	require.NoError(t, err)
	assert.Equal(t, 80, n)

	assoc.Level = "over 9000"
	_, err = assoc.LevelValue()
	assert.Error(t, err)
}
