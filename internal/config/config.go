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
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	Revcontent      Revcontent      `mapstructure:",squash"`
	Render          Render          `mapstructure:",squash"`
	Auth            Auth            `mapstructure:",squash"`
	PerformanceSync PerformanceSync `mapstructure:",squash"`
	Archive         Archive         `mapstructure:",squash"`
	SecretKey       string          `mapstructure:"secret_key"`
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

type Revcontent struct {
	BaseURL      string `mapstructure:"revcontent_base_url"`
	ClientID     string `mapstructure:"revcontent_client_id"`
	ClientSecret string `mapstructure:"revcontent_client_secret"`
}

type Render struct {
	APIKey    string `mapstructure:"render_api_key"`
	ServiceID string `mapstructure:"render_service_id"`
}

type App struct {
	LogLevel   string `mapstructure:"log_level"`
	LogFileDir string `mapstructure:"log_file_dir"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type PerformanceSync struct {
	CronSchedule        string `mapstructure:"performance_sync_cron"`
	RequestDelaySeconds int    `mapstructure:"performance_sync_request_delay_seconds"`
	MaxConcurrentJobs   int    `mapstructure:"performance_sync_max_concurrent_jobs"`
	Enabled             bool   `mapstructure:"performance_sync_enabled"`
}

type Archive struct {
	Dir     string `mapstructure:"archive_dir"`
	Enabled bool   `mapstructure:"archive_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/boosts")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("REVCONTENT_BASE_URL", "https://api.revcontent.io")
	viper.SetDefault("REVCONTENT_CLIENT_ID", "your_client_id")         // ONLY LOCAL
	viper.SetDefault("REVCONTENT_CLIENT_SECRET", "your_client_secret") // ONLY LOCAL

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("RENDER_API_KEY", "")
	viper.SetDefault("RENDER_SERVICE_ID", "")

	// Defaults para a sincronização de performance dos boosts
	viper.SetDefault("PERFORMANCE_SYNC_CRON", "0 */6 * * *")        // A cada 6 horas
	viper.SetDefault("PERFORMANCE_SYNC_REQUEST_DELAY_SECONDS", 2)   // 2 segundos entre requisições
	viper.SetDefault("PERFORMANCE_SYNC_MAX_CONCURRENT_JOBS", 3)     // 3 jobs concorrentes
	viper.SetDefault("PERFORMANCE_SYNC_ENABLED", false)             // Habilitar sincronização de performance

	// Defaults para o arquivamento de estatísticas em JSON
	viper.SetDefault("ARCHIVE_DIR", "./stats")
	viper.SetDefault("ARCHIVE_ENABLED", true)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("LOG_FILE_DIR", "")
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

	// Em produção as credenciais da Revcontent ficam no secret storage do Render
	if config.Render.ServiceID != "" {
		renderClient := NewRenderClient(config)

		clientID, clientSecret, err := renderClient.RevcontentCredentials(config.Render.ServiceID)
		if err != nil {
			logrus.Error("Erro ao obter secrets do Render:", err)
			return nil, err
		}

		if clientID != "" && config.Revcontent.ClientID == "your_client_id" {
			config.Revcontent.ClientID = clientID
		}

		if clientSecret != "" && config.Revcontent.ClientSecret == "your_client_secret" {
			config.Revcontent.ClientSecret = clientSecret
		}
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
