package postgres

//nolint:revive
import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"shoppinglist/config"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	driverName = "postgres"

	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
)

var errConnect = errors.New("could not connect to database")

// Connection is the long-lived database handle owned by the application. Reads and writes may
// go to different servers; callers pick one per operation and pass it down.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func New(config *config.Config) (*Connection, error) {
	write, err := CreatePostgresConnection("write", *config, config.DB.Postgres.Write)
	if err != nil {
		return nil, err
	}

	read, err := CreatePostgresConnection("read", *config, config.DB.Postgres.Read)
	if err != nil {
		write.Close()

		return nil, err
	}

	return &Connection{
		Read:  read,
		Write: write,
	}, nil
}

// Close closes both handles.
func (c *Connection) Close() error {
	return errors.Join(c.Read.Close(), c.Write.Close())
}

// DatabaseName returns the database name with prefix if configured.
func DatabaseName(config config.Config, baseName string) string {
	return config.DB.Postgres.Prefix + baseName
}

// DSN builds a postgres:// URL for one endpoint.
func DSN(config config.Config, endpoint config.Endpoint) string {
	descriptor := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(endpoint.Username, endpoint.Password),
		Host:   net.JoinHostPort(endpoint.Host, endpoint.Port),
		Path:   "/" + DatabaseName(config, endpoint.Name),
	}

	query := url.Values{}
	query.Set("sslmode", endpoint.SSLMode)
	descriptor.RawQuery = query.Encode()

	return descriptor.String()
}

// CreatePostgresConnection connects to one endpoint, retrying up to DB_POSTGRES_MAX_RETRY times.
func CreatePostgresConnection(name string, config config.Config, endpoint config.Endpoint) (*sqlx.DB, error) {
	dbName := DatabaseName(config, endpoint.Name)
	maxRetry := max(config.DB.Postgres.MaxRetry, 1)

	var lastErr error

	for retry := range maxRetry {
		sqlDB, err := sqlx.Connect(driverName, DSN(config, endpoint))
		if err == nil {
			log.
				Info().
				Str("name", name).
				Str("host", endpoint.Host).
				Str("port", endpoint.Port).
				Str("dbName", dbName).
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)

			return sqlDB, nil
		}

		lastErr = err

		log.
			Error().
			Err(err).
			Str("name", name).
			Str("host", endpoint.Host).
			Str("port", endpoint.Port).
			Str("dbName", dbName).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		if retry+1 < maxRetry {
			time.Sleep(time.Duration(config.DB.Postgres.RetryWaitTime) * time.Second)
		}
	}

	return nil, fmt.Errorf("%w (%s): %w", errConnect, name, lastErr)
}
