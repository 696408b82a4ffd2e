package data

import (
	"database/sql"
	"time"

	"github.com/ansel1/merry"
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/powerman/structlog"
)

var log = structlog.New()

// DB is the single database handle of the process. The console is the only
// writer, so one open connection is enough.
type DB struct {
	db     *sqlx.DB
	driver string
	now    func() time.Time
}

func Open(c Config) (*DB, error) {
	dsn, err := c.DSN()
	if err != nil {
		return nil, err
	}
	driver := c.driverName()
	conn, err := openDBx(driver, dsn)
	if err != nil {
		return nil, merry.Append(err, "open database")
	}
	if err := conn.Ping(); err != nil {
		log.ErrIfFail(conn.Close)
		return nil, merry.Append(err, "connect database")
	}
	if err := Migrate(conn.DB, driver); err != nil {
		log.ErrIfFail(conn.Close)
		return nil, err
	}
	log.Debug("database opened", "driver", driver)
	return &DB{db: conn, driver: driver, now: time.Now}, nil
}

func (db *DB) Close() error {
	return db.db.Close()
}

// Today returns the current date at midnight UTC, the form every date
// column is written in.
func (db *DB) Today() time.Time {
	return DateOnly(db.now())
}

func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func openDB(driver, dsn string) (*sql.DB, error) {
	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	conn.SetMaxIdleConns(1)
	conn.SetMaxOpenConns(1)
	conn.SetConnMaxLifetime(0)
	return conn, err
}

func openDBx(driver, dsn string) (*sqlx.DB, error) {
	conn, err := openDB(driver, dsn)
	if err != nil {
		return nil, err
	}
	return sqlx.NewDb(conn, driver), nil
}

// insertReturningID runs an INSERT and returns the generated key of the new
// row. Postgres has no LastInsertId, so the key comes back through RETURNING.
func (db *DB) insertReturningID(query, idColumn string, args ...interface{}) (int64, error) {
	args = bindArgs(args)
	if db.driver == DriverPostgres {
		var id int64
		err := db.db.Get(&id, db.db.Rebind(query+" RETURNING "+idColumn), args...)
		if err == sql.ErrNoRows {
			return 0, ErrNotInserted.Here()
		}
		return id, err
	}
	r, err := db.db.Exec(db.db.Rebind(query), args...)
	if err != nil {
		return 0, err
	}
	n, err := r.RowsAffected()
	if err != nil {
		return 0, err
	}
	if n != 1 {
		return 0, merry.Appendf(ErrNotInserted, "expected 1 row affected, got %d", n)
	}
	return getNewInsertedID(r)
}

func getNewInsertedID(r sql.Result) (int64, error) {
	id, err := r.LastInsertId()
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, ErrNotInserted.Here()
	}
	return id, nil
}
