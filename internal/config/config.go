package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string `yaml:"env" env-default:"prod"`
	HTTPServer `yaml:"http_server"`

	// Upstream РГИС ПРИО API
	API API `yaml:"api"`

	// Файл сессии оператора (token + user, аналог localStorage фронтенда)
	SessionFile string `yaml:"session_file" env-default:"./session.json"`

	// Политика обработки неизвестной формы списка: true — пустой список + warn,
	// false — ошибка malformed response
	LenientLists bool `yaml:"lenient_lists" env-default:"false"`

	// Папка собранного фронтенда (vue dist)
	FrontendDir string `yaml:"frontend_dir" env-default:"./frontend-dist"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env-default:"localhost:4001"`
	Timeout     time.Duration `yaml:"timeout"  env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout"  env-default:"60s"`
}

type API struct {
	BaseURL string        `yaml:"base_url" env-required:"true"`
	Timeout time.Duration `yaml:"timeout" env-default:"30s"`
}

func MustConfig() *Config {
	//configPath := os.Getenv("CONFIG_PATH")
	//if configPath == "" {
	//	log.Fatal("CONFIG_PATH is not set")
	//}

	var cfg Config
	a := "./config/local.yaml"

	if err := cleanenv.ReadConfig(a, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return &cfg
}
