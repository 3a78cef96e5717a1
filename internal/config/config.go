package config

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env    string `yaml:"env" env:"APP_ENV" env-default:"local" validate:"oneof=local dev prod"`
	Listen struct {
		BindIP string `yaml:"bind_ip" env:"BIND_IP" env-default:"0.0.0.0" validate:"required,ip"`
		Port   string `yaml:"port" env:"PORT" env-default:"3000" validate:"required,numeric"`
	} `yaml:"listen"`
	QuickBase struct {
		BaseURL   string        `yaml:"base_url" env:"QUICKBASE_BASE_URL" env-default:"https://api.quickbase.com" validate:"required,url"`
		Realm     string        `yaml:"realm" env:"QUICKBASE_REALM" env-default:"iammanagementsolution.quickbase.com" validate:"required,hostname"`
		UserToken string        `yaml:"user_token" env:"QUICKBASE_USER_TOKEN" env-default:"" validate:"required"`
		AppToken  string        `yaml:"app_token" env:"QUICKBASE_APP_TOKEN" env-default:""`
		TableID   string        `yaml:"table_id" env:"QUICKBASE_TABLE_ID" env-default:"bsc9dxrdu" validate:"required"`
		Timeout   time.Duration `yaml:"timeout" env:"QUICKBASE_TIMEOUT" env-default:"0s"`
	} `yaml:"quickbase"`
	CallTools struct {
		Disposition string `yaml:"disposition" env:"DISPOSITION_TRIGGER" env-default:"Cita Spanish" validate:"required"`
	} `yaml:"calltools"`
	Telegram struct {
		Enabled bool   `yaml:"enabled" env:"TELEGRAM_ENABLED" env-default:"false"`
		ApiKey  string `yaml:"api_key" env:"TELEGRAM_API_KEY" env-default:"" validate:"required_if=Enabled true"`
		AdminId int64  `yaml:"admin_id" env:"TELEGRAM_ADMIN_ID" env-default:"0" validate:"required_if=Enabled true"`
	} `yaml:"telegram"`
}

var instance *Config
var once sync.Once

// MustLoad reads the configuration once per process and exits on failure.
func MustLoad(path string) *Config {
	once.Do(func() {
		conf, err := Load(path)
		if err != nil {
			log.Fatal(err)
		}
		instance = conf
	})
	return instance
}

// Load reads path (YAML or .env) when given, the environment otherwise.
func Load(path string) (*Config, error) {
	conf := &Config{}

	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, conf)
	} else {
		// a missing .env is normal outside local development
		_ = godotenv.Load()
		err = cleanenv.ReadEnv(conf)
	}
	if err != nil {
		desc, _ := cleanenv.GetDescription(conf, nil)
		return nil, fmt.Errorf("%s; %s", err, desc)
	}

	if err = validator.New().Struct(conf); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return conf, nil
}
