package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeProfileID(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Alice", "p_alice"},
		{"alice", "p_alice"},
		{"Mary Jane O'Hara", "p_mary_jane_o_hara"},
		{"Guest", "p_guest"},
		{"", "p_guest"},
		{"!!!", "p__"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MakeProfileID(tt.name), "name %q", tt.name)
	}
}

func TestMakeProfileIDTruncates(t *testing.T) {
	id := MakeProfileID(strings.Repeat("a", 100))
	assert.Equal(t, "p_"+strings.Repeat("a", 24), id)
}

func TestMakeProfileIDStable(t *testing.T) {
	assert.Equal(t, MakeProfileID("Same Name"), MakeProfileID("Same Name"),
		"the same name must always reopen the same closet")
}
