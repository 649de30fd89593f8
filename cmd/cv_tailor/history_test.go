package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunHistoryRejectsInvalidRunID(t *testing.T) {
	// The run ID is validated before any database work happens.
	err := runHistory(historyCmd, []string{"not-a-uuid"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid run ID")
}
