package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	Seed          Seed          `mapstructure:",squash"`
	LedgerCache   LedgerCache   `mapstructure:",squash"`
	LedgerRefresh LedgerRefresh `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	Path string `mapstructure:"database_path"`
}

// Seed fixa os parâmetros da geração inicial do ledger. Mantê-los em
// configuração permite reproduzir o mesmo banco em qualquer ambiente.
type Seed struct {
	Value     int64  `mapstructure:"seed_value"`
	StartDate string `mapstructure:"seed_start_date"`
	Days      int    `mapstructure:"seed_days"`
}

type LedgerCache struct {
	TTLSeconds int `mapstructure:"ledger_cache_ttl_seconds"`
}

type LedgerRefresh struct {
	CronSchedule string `mapstructure:"ledger_refresh_cron"`
	Enabled      bool   `mapstructure:"ledger_refresh_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_PATH", "sales.db")

	// Parâmetros fixos da semeadura (180 dias a partir de 01/01/2026)
	viper.SetDefault("SEED_VALUE", 42)
	viper.SetDefault("SEED_START_DATE", "2026-01-01")
	viper.SetDefault("SEED_DAYS", 180)

	viper.SetDefault("LEDGER_CACHE_TTL_SECONDS", 600) // 10 minutos

	viper.SetDefault("LEDGER_REFRESH_CRON", "*/10 * * * *") // A cada 10 minutos
	viper.SetDefault("LEDGER_REFRESH_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
