package source

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
	"github.com/huangsam/treehealth/internal/contract"
	"github.com/huangsam/treehealth/schema"
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	_ "modernc.org/sqlite"             // SQLite driver
)

// SQLSource reads grouped counts from a mirror table of individual census
// trees. It only ever issues SELECT statements.
type SQLSource struct {
	db      *sql.DB
	backend schema.SourceBackend
	table   string
	limit   int
}

var _ contract.RecordSource = &SQLSource{} // Compile-time check

// openDatabase opens and pings a connection for the given backend.
func openDatabase(backend schema.SourceBackend, connStr string) (*sql.DB, error) {
	var db *sql.DB
	var err error

	switch backend {
	case schema.SQLiteSource:
		dbPath := connStr
		if dbPath == "" {
			dbPath = contract.GetMirrorDBFilePath()
		}
		db, err = sql.Open("sqlite", dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open SQLite mirror at %q: %w", dbPath, err)
		}
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)

	case schema.MySQLSource:
		// connStr should be:
		// user:password@tcp(host:port)/dbname
		db, err = sql.Open("mysql", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to MySQL mirror: %w. Check connection format: user:password@tcp(host:port)/dbname", err)
		}

	case schema.PostgreSQLSource:
		// connStr should be:
		// host=localhost port=5432 user=postgres password=mysecretpassword dbname=postgres
		db, err = sql.Open("pgx", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL mirror: %w. Check connection format: host=localhost port=5432 user=postgres dbname=mydb", err)
		}

	default:
		return nil, fmt.Errorf("unsupported database source: %s. Must be sqlite, mysql, or postgresql", backend)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s database. Check that the server is running and connection parameters are valid: %w", backend, err)
	}
	return db, nil
}

// quoteIdentifier quotes a validated table name for the backend's dialect.
func quoteIdentifier(name string, backend schema.SourceBackend) string {
	if backend == schema.MySQLSource {
		return "`" + name + "`"
	}
	return `"` + name + `"`
}

// NewSQLSource connects to the mirror database.
func NewSQLSource(backend schema.SourceBackend, connStr, table string, limit int) (*SQLSource, error) {
	if err := contract.ValidateTableName(table); err != nil {
		return nil, err
	}
	db, err := openDatabase(backend, connStr)
	if err != nil {
		return nil, err
	}
	return &SQLSource{db: db, backend: backend, table: table, limit: limit}, nil
}

// groupedCountQuery returns the SQL form of the SoQL grouped-count query.
func (s *SQLSource) groupedCountQuery() string {
	group := strings.Join(groupColumns, ", ")
	return fmt.Sprintf("SELECT %s, COUNT(%s) AS %s FROM %s GROUP BY %s LIMIT %d",
		group, treeIDColumn, countColumn, quoteIdentifier(s.table, s.backend), group, s.limit)
}

// Fetch runs the grouped-count query. NULL columns become nil fields.
func (s *SQLSource) Fetch(ctx context.Context) ([]schema.RawCandidate, error) {
	rows, err := s.db.QueryContext(ctx, s.groupedCountQuery())
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", s.table, err)
	}
	defer func() { _ = rows.Close() }()

	var out []schema.RawCandidate
	for rows.Next() {
		var species, health, steward sql.NullString
		var borough, count sql.NullInt64
		if err := rows.Scan(&species, &borough, &health, &steward, &count); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		out = append(out, schema.RawCandidate{
			Species:     nullableString(species),
			BoroughCode: nullableInt(borough),
			Health:      nullableString(health),
			Steward:     nullableString(steward),
			Count:       nullableInt(count),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	return out, nil
}

// Describe implements contract.RecordSource.
func (s *SQLSource) Describe() string {
	return fmt.Sprintf("%s table %s", s.backend, s.table)
}

// Close implements contract.RecordSource.
func (s *SQLSource) Close() error {
	return s.db.Close()
}

func nullableString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return blankToNil(&v.String)
}

func nullableInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}
