package initialize

import (
	"fmt"
	"net/http"

	"stocklist/backend/app/cache"
	"stocklist/backend/app/controllers"
	"stocklist/backend/app/db"
	jwtutil "stocklist/backend/app/jwt"
	"stocklist/backend/app/middleware"
	"stocklist/backend/app/models"
	"stocklist/backend/app/repo"
	"stocklist/backend/app/services"
	"stocklist/backend/config"
	"stocklist/backend/global"
	"stocklist/backend/router"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type App struct {
	Cfg      *config.Config
	DB       *gorm.DB
	Router   http.Handler
	Auth     *controllers.AuthController
	Products *controllers.ProductController
	Users    *services.AuthService
	Catalog  *services.CatalogService
}

func Build(configPath string) (*App, error) {
	// Load config
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	global.Config = cfg

	// Connect DB
	gdb, err := db.Connect(db.Config{
		Driver: cfg.DB.Driver, Host: cfg.DB.Host, Port: cfg.DB.Port,
		User: cfg.DB.User, Password: cfg.DB.Pass, DBName: cfg.DB.Name, Path: cfg.DB.Path,
	})
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	global.Mdb = gdb

	// Migrate
	if err := gdb.AutoMigrate(&models.User{}, &models.Product{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	// Optional redis-backed catalog cache
	var catalogCache *cache.Catalog
	if cfg.Redis.Addr != "" {
		global.Rdb = redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		catalogCache = cache.NewCatalog(global.Rdb)
	}

	// Services
	userRepo := repo.NewUserRepository(gdb)
	productRepo := repo.NewProductRepository(gdb)
	userSvc := services.NewAuthService(userRepo)
	catalogSvc := services.NewCatalogService(productRepo, catalogCache)

	if err := Seed(cfg, userSvc, userRepo, productRepo); err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}

	// Controllers
	signer := &jwtutil.Signer{Secret: []byte(cfg.JWT.Secret), Issuer: cfg.JWT.Issuer}
	authCtrl := controllers.NewAuthController(userSvc, signer, cfg.Dev)
	productCtrl := controllers.NewProductController(catalogSvc, cfg.Dev)
	mw := &middleware.Auth{Signer: signer, Dev: cfg.Dev}

	// Router
	h := router.NewRouter(authCtrl, productCtrl, mw, cfg.Auth.RequireAdminDelete)
	h = middleware.Logging(h)

	return &App{Cfg: cfg, DB: gdb, Router: h, Auth: authCtrl, Products: productCtrl, Users: userSvc, Catalog: catalogSvc}, nil
}
