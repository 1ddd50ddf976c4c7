package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"bakery/internal/adapters/out/postgres/customerrepo"
	"bakery/internal/adapters/out/postgres/orderrepo"
	"bakery/internal/adapters/out/postgres/productrepo"
	"bakery/internal/adapters/out/postgres/settingsrepo"
	"bakery/internal/core/domain/model/catalog"
	"bakery/internal/core/domain/model/store"

	"gorm.io/driver/mysql"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// DatabaseConfig holds connection settings. Driver is "postgres" (default)
// or "mysql".
type DatabaseConfig struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DSN renders the driver specific connection string.
func (c DatabaseConfig) DSN() (string, error) {
	switch c.Driver {
	case "", DriverPostgres:
		sslMode := c.SSLMode
		if sslMode == "" {
			sslMode = "disable"
		}
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			c.Host, c.Port, c.User, c.Password, c.Name, sslMode), nil
	case DriverMySQL:
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			c.User, c.Password, c.Host, c.Port, c.Name), nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", c.Driver)
	}
}

// Open connects to the configured database and applies pool settings.
func Open(cfg DatabaseConfig) (*gorm.DB, error) {
	dsn, err := cfg.DSN()
	if err != nil {
		return nil, err
	}

	var dialector gorm.Dialector
	if cfg.Driver == DriverMySQL {
		dialector = mysql.Open(dsn)
	} else {
		dialector = gormpostgres.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:  logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", dialector.Name(), err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
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

	return db, nil
}

// Migrate creates or updates every table the service uses.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&customerrepo.CustomerDTO{},
		&settingsrepo.SettingsDTO{},
	)
}

// Seed fills an empty catalog with the default products and writes the
// default store settings when none exist. It is safe to run on every start.
func Seed(ctx context.Context, db *gorm.DB, log *slog.Logger) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		uow := &GormUnitOfWork{db: db, tx: tx}

		products := uow.ProductRepository()
		count, err := products.Count(ctx)
		if err != nil {
			return err
		}
		if count == 0 {
			defaults, catErr := catalog.DefaultCatalog()
			if catErr != nil {
				return catErr
			}
			for _, p := range defaults {
				if err = products.Add(ctx, p); err != nil {
					return err
				}
			}
			log.Info("catalog seeded", "products", len(defaults))
		}

		var settingsRows int64
		if err = tx.Model(&settingsrepo.SettingsDTO{}).Count(&settingsRows).Error; err != nil {
			return err
		}
		if settingsRows == 0 {
			if err = uow.StoreSettingsRepository().Save(ctx, store.DefaultSettings(time.Now())); err != nil {
				return err
			}
			log.Info("store settings seeded")
		}

		return nil
	})
}
