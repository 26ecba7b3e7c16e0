package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/marcelosanto/telegram-food-boot/models"
)

// Env holds every knob the API and the bot read. One object, loaded once,
// instead of per-package os.Getenv calls.
type Env struct {
	Server struct {
		Port int
	}
	Database struct {
		Path string
	}
	JWT struct {
		Secret     string
		TTLMinutes int
	}
	Bot struct {
		APIBaseURL  string
		WebhookPort int
	}
	Food struct {
		TablePath string
	}
}

var (
	Cfg *Env
	DB  *gorm.DB
)

// LoadEnv reads .env (when present), then config.yml, then plain environment
// variables. Environment variables win over the file.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file found, relying on environment")
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("reading config file: %v", err)
		}
	}
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("server.port", 8000)
	viper.SetDefault("database.path", "nutribot.db")
	viper.SetDefault("jwt.ttl_minutes", 30)
	viper.SetDefault("bot.api_base_url", "http://localhost:8000/api/v1")
	viper.SetDefault("bot.webhook_port", 8443)
	viper.SetDefault("food.table_path", "tabela_alimentos.json")

	var cfg Env
	cfg.Server.Port = viper.GetInt("server.port")
	cfg.Database.Path = viper.GetString("database.path")
	cfg.JWT.Secret = viper.GetString("jwt.secret")
	cfg.JWT.TTLMinutes = viper.GetInt("jwt.ttl_minutes")
	cfg.Bot.APIBaseURL = viper.GetString("bot.api_base_url")
	cfg.Bot.WebhookPort = viper.GetInt("bot.webhook_port")
	cfg.Food.TablePath = viper.GetString("food.table_path")

	Cfg = &cfg
}

// RequireJWTSecret aborts when no signing secret is configured. Only the API
// process signs and verifies tokens; the bot never reads the secret.
func RequireJWTSecret() {
	if Cfg.JWT.Secret == "" {
		log.Fatal("JWT_SECRET is not set")
	}
}

func InitDB() {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on", Cfg.Database.Path)

	var err error
	DB, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.UserToken{},
		&models.MealEntry{},
		&models.Goal{},
		&models.WaterEntry{},
		&models.Calculation{},
		&models.Reminder{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}
