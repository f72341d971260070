// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_buildListCommentsQuery_SQLContainsParts(t *testing.T) {
	itemID := int64(42)
	threshold := int64(1700000000)

	query, args, err := buildListCommentsQuery(itemID, threshold)
	require.NoError(t, err)

	// args checks
	require.Len(t, args, 2)
	require.Equal(t, itemID, args[0])
	require.Equal(t, threshold, args[1])

	// query checks (contains parts)
	q := strings.ToLower(query)

	require.Contains(t, q, "select")
	require.Contains(t, q, "from comments c")
	require.Contains(t, q, "inner join users u")
	require.Contains(t, q, "c.itemid")
	require.Contains(t, q, "c.time >")
	require.Contains(t, q, "order by c.time asc")
	require.Contains(t, q, "limit 10")

	// placeholder format should be ? (SQLite)
	require.Contains(t, query, "?")
	require.NotContains(t, query, "$1")
}

func Test_buildListCommentsQuery_SelectsAllExpectedColumns(t *testing.T) {
	query, _, err := buildListCommentsQuery(1, 0)
	require.NoError(t, err)

	q := strings.ToLower(query)

	// Check that all expected columns are present in the SELECT section.
	// This is a "contains" check; it does not enforce order but catches
	// regressions quickly.
	cols := []string{
		"u.id",
		"u.name",
		"c.id",
		"c.message",
		"c.time",
	}
	for _, col := range cols {
		require.Contains(t, q, col)
	}

	// The parent column must NOT be selected: threading is not resolved on read.
	require.NotContains(t, q, "parentid")
}
