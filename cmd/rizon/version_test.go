package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion, originalCommit, originalDate := version, commit, date
	t.Cleanup(func() {
		version, commit, date = originalVersion, originalCommit, originalDate
	})

	version = "0.4.0"
	commit = "9f1c2ab"
	date = "2026-10-01"

	stdout, _, err := executeCommand(t, "version")
	require.NoError(t, err)
	require.Equal(t, "Rizon 0.4.0\ncommit: 9f1c2ab\nbuilt: 2026-10-01\n", stdout)
}
