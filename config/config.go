package config

import (
	"os"
	"strconv"

	"ding-dong-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Config struct {
	Port       string
	DBPath     string
	GinMode    string
	BcryptCost int
}

// Load reads configuration from the environment, with an optional .env
// file layered underneath.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:       getEnv("PORT", "5000"),
		DBPath:     getEnv("DB_PATH", "delivery.db"),
		GinMode:    getEnv("GIN_MODE", ""),
		BcryptCost: getEnvInt("BCRYPT_COST", bcrypt.DefaultCost),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

// NewLogger builds the process-wide structured logger.
func NewLogger(cfg Config) (*zap.Logger, error) {
	if cfg.GinMode == "release" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// InitDB opens the sqlite store and migrates the schema.
func InitDB(cfg Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.Dish{},
		&models.Order{},
		&models.Driver{},
		&models.Review{},
		&models.Category{},
	); err != nil {
		return nil, err
	}
	return db, nil
}
