//go:build database

package integration

import (
	"database/sql"
	"fmt"
	"strings"
	"testing"

	"github.com/huangsam/treehealth/schema"
	"github.com/stretchr/testify/require"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// rawTree is one census row before grouping.
type rawTree struct {
	species any
	borough any
	health  any
	steward any
}

var seedRows = []rawTree{
	{"pin oak", 1, "Good", "None"},
	{"pin oak", 1, "Good", "None"},
	{"pin oak", 1, "Fair", "None"},
	{"pin oak", 4, "Poor", "1or2"},
	{"american beech", 3, "Good", "3or4"},
	{"american beech", 3, "Fair", "4orMore"},
	{nil, 5, nil, nil}, // stump
}

// seedTrees inserts seedRows into the mirror table.
func seedTrees(t *testing.T, backend schema.SourceBackend, connStr, placeholder string) {
	t.Helper()

	driver := "mysql"
	if backend == schema.PostgreSQLSource {
		driver = "pgx"
	}
	db, err := sql.Open(driver, connStr)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	stmt := "INSERT INTO street_trees (tree_id, spc_common, borocode, health, steward) VALUES " + placeholders(placeholder, 5)
	for i, tree := range seedRows {
		_, err := db.Exec(stmt, i+1, tree.species, tree.borough, tree.health, tree.steward)
		require.NoError(t, err)
	}
}

// placeholders renders a bind list such as (?, ?, ?) or ($1, $2, $3).
func placeholders(style string, n int) string {
	parts := make([]string, n)
	for i := range parts {
		if style == "$" {
			parts[i] = fmt.Sprintf("$%d", i+1)
		} else {
			parts[i] = "?"
		}
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
