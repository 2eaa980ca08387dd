package db

import (
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	mysqldrv "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/yungbote/quizhub-backend/internal/platform/envutil"
	"github.com/yungbote/quizhub-backend/internal/platform/logger"
)

type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectMySQL    Dialect = "mysql"
	DialectSQLite   Dialect = "sqlite"
)

type Config struct {
	Driver          Dialect
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	SlowThreshold   time.Duration
}

// ConfigFromEnv reads DB_DRIVER and DB_DSN, falling back to per-driver parts.
func ConfigFromEnv() Config {
	cfg := Config{
		Driver:          Dialect(strings.ToLower(envutil.String("DB_DRIVER", string(DialectPostgres)))),
		DSN:             envutil.String("DB_DSN", ""),
		MaxOpenConns:    envutil.Int("DB_MAX_OPEN_CONNS", 20),
		MaxIdleConns:    envutil.Int("DB_MAX_IDLE_CONNS", 5),
		ConnMaxLifetime: envutil.Seconds("DB_CONN_MAX_LIFETIME_SECONDS", 30*time.Minute),
		SlowThreshold:   envutil.Seconds("DB_SLOW_QUERY_SECONDS", time.Second),
	}
	if cfg.DSN != "" {
		return cfg
	}
	switch cfg.Driver {
	case DialectMySQL:
		mc := mysqldrv.NewConfig()
		mc.User = envutil.String("MYSQL_USER", "root")
		mc.Passwd = envutil.String("MYSQL_PASSWORD", "")
		mc.Net = "tcp"
		mc.Addr = net.JoinHostPort(envutil.String("MYSQL_HOST", "localhost"), envutil.String("MYSQL_PORT", "3306"))
		mc.DBName = envutil.String("MYSQL_NAME", "quizzes_db")
		mc.ParseTime = true
		mc.Params = map[string]string{"charset": "utf8mb4"}
		cfg.DSN = mc.FormatDSN()
	case DialectSQLite:
		cfg.DSN = SQLiteDSN(envutil.String("SQLITE_PATH", "quizhub.db"))
	default:
		cfg.DSN = fmt.Sprintf(
			"postgres://%s:%s@%s:%s/%s?sslmode=disable",
			envutil.String("POSTGRES_USER", "postgres"),
			envutil.String("POSTGRES_PASSWORD", ""),
			envutil.String("POSTGRES_HOST", "localhost"),
			envutil.String("POSTGRES_PORT", "5432"),
			envutil.String("POSTGRES_NAME", "quizhub"),
		)
	}
	return cfg
}

// SQLiteDSN turns a file path into a DSN with foreign keys enforced.
func SQLiteDSN(path string) string {
	return path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

type Service struct {
	db      *gorm.DB
	log     *logger.Logger
	dialect Dialect
}

func NewService(log *logger.Logger, cfg Config) (*Service, error) {
	serviceLog := log.With("service", "DBService", "driver", string(cfg.Driver))

	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}
	theDB, err := gorm.Open(dialector, &gorm.Config{
		Logger: NewGormLogger(serviceLog, cfg.SlowThreshold),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", cfg.Driver, err)
	}

	sqlDB, err := theDB.DB()
	if err != nil {
		return nil, fmt.Errorf("sql handle: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	serviceLog.Info("Database connected")
	return &Service{db: theDB, log: serviceLog, dialect: cfg.Driver}, nil
}

func dialectorFor(cfg Config) (gorm.Dialector, error) {
	if strings.TrimSpace(cfg.DSN) == "" {
		return nil, fmt.Errorf("empty DSN for driver %q", cfg.Driver)
	}
	switch cfg.Driver {
	case DialectPostgres:
		return postgres.Open(cfg.DSN), nil
	case DialectMySQL:
		return mysql.Open(cfg.DSN), nil
	case DialectSQLite:
		return sqlite.Open(cfg.DSN), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Driver)
	}
}

func (s *Service) DB() *gorm.DB { return s.db }

func (s *Service) Dialect() Dialect { return s.dialect }

func (s *Service) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// DialectOf reports the dialect behind an open handle.
func DialectOf(db *gorm.DB) Dialect {
	if db == nil || db.Dialector == nil {
		return ""
	}
	return Dialect(db.Dialector.Name())
}

type gormWriter struct {
	log *logger.Logger
}

func (w gormWriter) Printf(format string, args ...interface{}) {
	w.log.Warn(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

// NewGormLogger routes gorm's warnings and slow query reports through the app logger.
func NewGormLogger(log *logger.Logger, slow time.Duration) gormLogger.Interface {
	if slow <= 0 {
		slow = time.Second
	}
	return gormLogger.New(gormWriter{log: log.With("component", "gorm")}, gormLogger.Config{
		SlowThreshold:             slow,
		LogLevel:                  gormLogger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
