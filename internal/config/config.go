package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	Pipeline      Pipeline      `mapstructure:",squash"`
	DailyLoadSync DailyLoadSync `mapstructure:",squash"`
	Simulator     Simulator     `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Pipeline struct {
	// Diretório de entrada com exports do PowerApps (.json, .csv, .xlsx)
	InputDir string `mapstructure:"pipeline_input_dir"`
	// Diretório de saída para relatórios de qualidade
	ProcessedDir string `mapstructure:"pipeline_processed_dir"`
	// Executa uma passada completa do pipeline na inicialização
	RunOnStartup bool `mapstructure:"pipeline_run_on_startup"`
}

type DailyLoadSync struct {
	CronSchedule string `mapstructure:"daily_load_sync_cron"`
	Enabled      bool   `mapstructure:"daily_load_sync_enabled"`
}

type Simulator struct {
	Enabled       bool   `mapstructure:"simulator_enabled"`
	Days          int    `mapstructure:"simulator_days"`
	RecordsPerDay int    `mapstructure:"simulator_records_per_day"`
	OutputDir     string `mapstructure:"simulator_output_dir"`
}

func SetDefaults() {
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/warehouse?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("PIPELINE_INPUT_DIR", "sample_exports")
	viper.SetDefault("PIPELINE_PROCESSED_DIR", "processed_data")
	viper.SetDefault("PIPELINE_RUN_ON_STARTUP", true)

	viper.SetDefault("DAILY_LOAD_SYNC_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("DAILY_LOAD_SYNC_ENABLED", false)

	viper.SetDefault("SIMULATOR_ENABLED", false)
	viper.SetDefault("SIMULATOR_DAYS", 7)
	viper.SetDefault("SIMULATOR_RECORDS_PER_DAY", 20)
	viper.SetDefault("SIMULATOR_OUTPUT_DIR", "sample_exports")

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}
}
