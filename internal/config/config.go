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
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	SocialData    SocialData    `mapstructure:",squash"`
	Auth          Auth          `mapstructure:",squash"`
	Analysis      Analysis      `mapstructure:",squash"`
	ReportRefresh ReportRefresh `mapstructure:",squash"`
	SecretKey     string        `mapstructure:"secret_key"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type SocialData struct {
	URL         string `mapstructure:"socialdata_url"`
	AccessToken string `mapstructure:"socialdata_access_token"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// Analysis controla o processamento de lotes de perfis: quantos itens em
// paralelo e o intervalo entre chamadas ao provedor externo
type Analysis struct {
	MaxConcurrentJobs   int `mapstructure:"analysis_max_concurrent_jobs"`
	RequestDelaySeconds int `mapstructure:"analysis_request_delay_seconds"`
}

type ReportRefresh struct {
	CronSchedule        string `mapstructure:"report_refresh_cron"`
	StaleAfterDays      int    `mapstructure:"report_refresh_stale_after_days"`
	RequestDelaySeconds int    `mapstructure:"report_refresh_request_delay_seconds"`
	MaxConcurrentJobs   int    `mapstructure:"report_refresh_max_concurrent_jobs"`
	Enabled             bool   `mapstructure:"report_refresh_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/kolmanager")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SOCIALDATA_URL", "https://api.socialdata.dev/v1")
	viper.SetDefault("SOCIALDATA_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	// Defaults para análise em lote de perfis
	viper.SetDefault("ANALYSIS_MAX_CONCURRENT_JOBS", 3)   // 3 perfis concorrentes
	viper.SetDefault("ANALYSIS_REQUEST_DELAY_SECONDS", 2) // 2 segundos entre requisições

	// Defaults para renovação de relatórios antigos
	viper.SetDefault("REPORT_REFRESH_CRON", "0 3 * * *") // Todos os dias às 3h da manhã
	viper.SetDefault("REPORT_REFRESH_STALE_AFTER_DAYS", 7)
	viper.SetDefault("REPORT_REFRESH_REQUEST_DELAY_SECONDS", 2)
	viper.SetDefault("REPORT_REFRESH_MAX_CONCURRENT_JOBS", 3)
	viper.SetDefault("REPORT_REFRESH_ENABLED", false)

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
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Info("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
