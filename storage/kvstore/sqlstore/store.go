package sqlstore

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/trezcool/goose"
	_ "modernc.org/sqlite"

	"github.com/umairnumplate/noor-ul-masajid/core"
	"github.com/umairnumplate/noor-ul-masajid/fs"
)

const (
	EngineSQLite   = "sqlite"
	EnginePostgres = "postgres"
)

// Store keeps every key as one row of the `kv` table.
type Store struct {
	db     *sqlx.DB
	engine string
}

var _ core.KVStore = (*Store)(nil)

var gooseRunFunc = goose.RunFS // mockable

// DefaultDSN is the sqlite database file in `dataDir`.
func DefaultDSN(dataDir string) string {
	return "file:" + filepath.Join(dataDir, "madrasa.db") + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
}

// Open connects to the database and applies pending migrations.
func Open(conf core.StoreConfig, dataDir string) (*Store, error) {
	engine, dsn := conf.Engine, conf.DSN
	switch engine {
	case EngineSQLite:
		if dsn == "" {
			if err := os.MkdirAll(dataDir, 0o700); err != nil {
				return nil, errors.Wrap(err, "creating data directory")
			}
			dsn = DefaultDSN(dataDir)
		}
	case EnginePostgres:
		if dsn == "" {
			return nil, errors.New("store.dsn is required with the postgres engine")
		}
	default:
		return nil, errors.Errorf("unsupported sql engine %q", engine)
	}

	db, err := sqlx.Open(engine, dsn)
	if err != nil {
		return nil, errors.Wrap(err, "opening database")
	}
	if engine == EngineSQLite {
		db.SetMaxOpenConns(1) // single writer
	}
	if err = ping(db.DB, engine); err != nil {
		_ = db.Close()
		return nil, err
	}

	s := &Store{db: db, engine: engine}
	if err = s.Migrate("up"); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// ping waits for the database to be ready. Waits 100ms longer between each attempt.
func ping(db *sql.DB, engine string) error {
	maxAttempts := 1
	if engine == EnginePostgres {
		maxAttempts = 30
	}

	var err error
	for attempts := 1; attempts <= maxAttempts; attempts++ {
		if err = db.Ping(); err == nil {
			return nil
		}
		time.Sleep(time.Duration(attempts) * 100 * time.Millisecond)
	}
	return errors.Wrap(err, "DB ping timeout")
}

// Migrate runs a goose command (up, down, status, version, redo...) over the embedded migrations.
func (s *Store) Migrate(command string, args ...string) error {
	dialect := "postgres"
	if s.engine == EngineSQLite {
		dialect = "sqlite3"
	}
	if err := goose.SetDialect(dialect); err != nil {
		return errors.Wrap(err, "setting migration dialect")
	}
	if err := gooseRunFunc(command, s.db.DB, appfs.FS, "migrations", args...); err != nil {
		return errors.Wrap(err, "migrating database")
	}
	return nil
}

func (s *Store) Get(key string) ([]byte, error) {
	var value string
	err := s.db.Get(&value, s.db.Rebind(`SELECT value FROM kv WHERE key = ?`), key)
	if errors.Cause(err) == sql.ErrNoRows {
		return nil, core.ErrKeyNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", key)
	}
	return []byte(value), nil
}

func (s *Store) Set(key string, value []byte) error {
	q := s.db.Rebind(`
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`)
	if _, err := s.db.Exec(q, key, string(value)); err != nil {
		return errors.Wrapf(err, "writing %s", key)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
