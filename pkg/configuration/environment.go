package configuration

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/colophon-press/colophon/pkg/logging"
)

const Production = "production"

var singleton = sync.OnceValue(func() *Configuration {
	c := &Configuration{}
	if err := c.load([]string{".env", ".env.local"}); err != nil {
		panic(err)
	}
	return c
})

// LoadEnv loads whichever of the given env files exist. Missing files are
// not an error; explicit env vars always win over file contents.
func LoadEnv(envFiles []string) (int, error) {
	existing := make([]string, 0, len(envFiles))
	for _, file := range envFiles {
		if _, err := os.Stat(file); err == nil {
			existing = append(existing, file)
		}
	}
	if len(existing) == 0 {
		return 0, nil
	}
	return len(existing), godotenv.Load(existing...)
}

type DatabaseOptions struct {
	Name     string `env:"DB_NAME" envDefault:"colophon"`
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     string `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER" envDefault:"postgres"`
	Password string `env:"DB_PASSWORD" envDefault:"postgres"`

	// Bounded pool shared across concurrent requests; acquiring a connection
	// blocks up to AcquireTimeout, then the operation fails rather than hang.
	MaxConns       int32         `env:"DB_MAX_CONNS" envDefault:"10"`
	AcquireTimeout time.Duration `env:"DB_ACQUIRE_TIMEOUT" envDefault:"5s"`
}

func (d *DatabaseOptions) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s dbname=%s password=%s sslmode=disable pool_max_conns=%d",
		d.Host, d.Port, d.User, d.Name, d.Password, d.MaxConns,
	)
}

// PoolConfig parses the connection string and applies AcquireTimeout as the
// connect timeout, which transaction acquisition also honours.
func (d *DatabaseOptions) PoolConfig() (*pgxpool.Config, error) {
	cfg, err := pgxpool.ParseConfig(d.ConnectionString())
	if err != nil {
		return nil, err
	}
	cfg.ConnConfig.ConnectTimeout = d.AcquireTimeout
	return cfg, nil
}

func (d *DatabaseOptions) Pool(ctx context.Context) (*pgxpool.Pool, error) {
	cfg, err := d.PoolConfig()
	if err != nil {
		return nil, err
	}
	return pgxpool.NewWithConfig(ctx, cfg)
}

type Configuration struct {
	Database DatabaseOptions

	GoAppEnvironment string `env:"GO_APP_ENV" envDefault:"development"`
	LogLevel         string `env:"LOG_LEVEL" envDefault:"info"`

	logger *logrus.Logger
}

func Use() *Configuration {
	return singleton()
}

func (c *Configuration) Logger() *logrus.Logger {
	return c.logger
}

func (c *Configuration) load(envFiles []string) error {
	if _, err := LoadEnv(envFiles); err != nil {
		return err
	}
	if err := env.Parse(c); err != nil {
		return err
	}
	c.logger = logging.Setup(c.LogLevel, c.GoAppEnvironment == Production)
	return nil
}
