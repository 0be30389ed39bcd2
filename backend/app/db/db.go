package db

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type Config struct {
	Driver   string
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	Path     string
}

// Connect opens the configured database. TranslateError is on so unique
// index violations surface as gorm.ErrDuplicatedKey on both drivers.
func Connect(cfg Config) (*gorm.DB, error) {
	gcfg := &gorm.Config{TranslateError: true}
	switch cfg.Driver {
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local", cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.DBName)
		return gorm.Open(mysql.Open(dsn), gcfg)
	case "sqlite", "":
		return gorm.Open(sqlite.Open(cfg.Path), gcfg)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.Driver)
	}
}
