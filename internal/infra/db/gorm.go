package db

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"retail/internal/config"
	"retail/internal/domain/model"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// gorm.Configの調整（テストで時刻を固定するなど）
type Option func(*gorm.Config)

// 書き込み時刻の取得元を差し替える
func WithNowFunc(now func() time.Time) Option {
	return func(c *gorm.Config) {
		c.NowFunc = now
	}
}

// gormのログをslogへ流す
func WithLogger(l *slog.Logger, level slog.Level) Option {
	return func(c *gorm.Config) {
		c.Logger = logger.New(slog.NewLogLogger(l.Handler(), level), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormLogLevel(level),
			IgnoreRecordNotFoundError: true,
		})
	}
}

// Connect はDBに接続して *gorm.DB を返す。
func Connect(cfg config.Config, opts ...Option) (*gorm.DB, error) {
	switch cfg.DBDriver {
	case config.DriverSQLite:
		return OpenSQLite(cfg.SQLitePath, opts...)
	case config.DriverPostgres, "":
		return gorm.Open(postgres.Open(cfg.PostgresDSN()), newConfig(opts))
	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.DBDriver)
	}
}

// sqliteは外部キー制約が既定で無効なので必ず有効にする
func OpenSQLite(path string, opts ...Option) (*gorm.DB, error) {
	gdb, err := gorm.Open(sqlite.Open(sqliteDSN(path)), newConfig(opts))
	if err != nil {
		return nil, err
	}

	//同時書き込みでロックされないよう接続は1本
	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	return gdb, nil
}

// テーブル作成（参照される側から）
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(model.AllModels()...)
}

func newConfig(opts []Option) *gorm.Config {
	c := &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func sqliteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=1"
}

func gormLogLevel(level slog.Level) logger.LogLevel {
	switch {
	case level <= slog.LevelDebug:
		return logger.Info
	case level <= slog.LevelWarn:
		return logger.Warn
	default:
		return logger.Error
	}
}
