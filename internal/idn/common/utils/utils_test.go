package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"example.com", "example.com"},
		{"  WwW.ExAmPlE.CoM.  ", "www.example.com"},
		{"example.com..", "example.com"},
		{".", ""},
		{" \t ", ""},
		{"xn--pple-43d.com", "xn--pple-43d.com"},
	}
	for _, tt := range tests {
		got := CanonicalName(tt.in)
		assert.Equal(t, tt.want, got, "CanonicalName(%q)", tt.in)
		assert.Equal(t, got, CanonicalName(got), "not idempotent for %q", tt.in)
	}
}

func TestCanonicalASCIIName(t *testing.T) {
	got, err := CanonicalASCIIName(" АPPLE.com. ")
	require.NoError(t, err)
	assert.Equal(t, "xn--pple-43d.com", got)

	got, err = CanonicalASCIIName("Example.COM")
	require.NoError(t, err)
	assert.Equal(t, "example.com", got)

	got, err = CanonicalASCIIName("xn--pple-43d.com")
	require.NoError(t, err)
	assert.Equal(t, "xn--pple-43d.com", got)

	_, err = CanonicalASCIIName("   ")
	assert.Error(t, err)

	_, err = CanonicalASCIIName("bad_label.com")
	assert.Error(t, err)
}

func TestRegistrableDomain(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"www.example.com.", "example.com"},
		{"example.co.uk", "example.co.uk"},
		{"a.b.example.co.uk", "example.co.uk"},
		{"sub.user.github.io", "user.github.io"},
		{"localhost", "localhost"},
		{"", ""},
		{"xn--pple-43d.com", "xn--pple-43d.com"},
		{"www.xn--pple-43d.com", "xn--pple-43d.com"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RegistrableDomain(tt.in), "RegistrableDomain(%q)", tt.in)
	}
}

func TestPublicSuffix(t *testing.T) {
	suffix, icann := PublicSuffix("www.example.co.uk")
	assert.Equal(t, "co.uk", suffix)
	assert.True(t, icann)

	suffix, _ = PublicSuffix("")
	assert.Equal(t, "", suffix)
}
