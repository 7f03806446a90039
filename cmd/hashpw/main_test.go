package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/internhub/internship-service/internal/auth"
)

func TestHashpwDefaultsToSeedPasswords(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--cost", "4"})

	require.NoError(t, cmd.Execute())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, len(defaultPasswords))
	for i, line := range lines {
		prefix := "Password " + string(rune('1'+i)) + ": "
		require.True(t, strings.HasPrefix(line, prefix), line)
		assert.NoError(t, auth.ComparePassword(strings.TrimPrefix(line, prefix), defaultPasswords[i]))
	}
}

func TestHashpwHashesArguments(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--cost", "4", "hunter2"})

	require.NoError(t, cmd.Execute())

	hash := strings.TrimPrefix(strings.TrimSpace(out.String()), "Password 1: ")
	assert.NoError(t, auth.ComparePassword(hash, "hunter2"))
}
