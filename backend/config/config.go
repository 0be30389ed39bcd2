package config

import (
	"strings"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host string
	Port int
}

type DB struct {
	Driver string // mysql or sqlite
	Host   string
	Port   int
	User   string
	Pass   string
	Name   string
	Path   string // sqlite file path
}

type Redis struct {
	Addr     string
	Password string
	DB       int
}

type Seed struct {
	Demo          bool
	AdminPassword string
}

type Auth struct {
	// RequireAdminDelete gates DELETE /api/products/{id} behind the admin
	// role. The system this replaces shipped without that check; set false
	// to keep wire-level parity with it.
	RequireAdminDelete bool
}

type Config struct {
	HTTP  HTTP
	DB    DB
	Redis Redis
	Seed  Seed
	Auth  Auth
	JWT   struct {
		Secret string
		Issuer string
	}
	Dev bool
}

func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("backend.http.host", "127.0.0.1")
	v.SetDefault("backend.http.port", 5000)
	v.SetDefault("backend.db.driver", "sqlite")
	v.SetDefault("backend.db.host", "127.0.0.1")
	v.SetDefault("backend.db.port", 3306)
	v.SetDefault("backend.db.user", "root")
	v.SetDefault("backend.db.pass", "")
	v.SetDefault("backend.db.name", "stocklist")
	v.SetDefault("backend.db.path", "stocklist.db")
	v.SetDefault("backend.seed.demo", false)
	v.SetDefault("backend.seed.admin_password", "admin123")
	v.SetDefault("backend.auth.require_admin_delete", true)
	v.SetDefault("backend.dev", false)

	// STOCKLIST_BACKEND_JWT_SECRET, STOCKLIST_BACKEND_DB_HOST, ...
	v.SetEnvPrefix("stocklist")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	cfg.HTTP = HTTP{Host: v.GetString("backend.http.host"), Port: v.GetInt("backend.http.port")}
	cfg.DB = DB{
		Driver: v.GetString("backend.db.driver"),
		Host:   v.GetString("backend.db.host"),
		Port:   v.GetInt("backend.db.port"),
		User:   v.GetString("backend.db.user"),
		Pass:   v.GetString("backend.db.pass"),
		Name:   v.GetString("backend.db.name"),
		Path:   v.GetString("backend.db.path"),
	}
	cfg.Redis = Redis{
		Addr:     v.GetString("backend.redis.addr"),
		Password: v.GetString("backend.redis.password"),
		DB:       v.GetInt("backend.redis.db"),
	}
	cfg.Seed = Seed{
		Demo:          v.GetBool("backend.seed.demo"),
		AdminPassword: v.GetString("backend.seed.admin_password"),
	}
	cfg.Auth = Auth{RequireAdminDelete: v.GetBool("backend.auth.require_admin_delete")}
	cfg.JWT.Secret = v.GetString("backend.jwt.secret")
	if cfg.JWT.Secret == "" {
		cfg.JWT.Secret = "dev-secret"
	}
	cfg.JWT.Issuer = v.GetString("backend.jwt.issuer")
	if cfg.JWT.Issuer == "" {
		cfg.JWT.Issuer = "stocklist"
	}
	cfg.Dev = v.GetBool("backend.dev")
	return cfg, nil
}
