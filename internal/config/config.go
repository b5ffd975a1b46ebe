package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Supabase   Supabase   `mapstructure:",squash"`
	RecordSync RecordSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Supabase contém as credenciais do armazenamento remoto de registros (PostgREST)
type Supabase struct {
	URL            string `mapstructure:"supabase_url"`
	APIKey         string `mapstructure:"supabase_api_key"`
	Table          string `mapstructure:"supabase_table"`
	TimeoutSeconds int    `mapstructure:"supabase_timeout_seconds"`
	RestURL        string `mapstructure:"-"`
}

// RecordSync configura o agendador de atualização do snapshot de registros
type RecordSync struct {
	CronSchedule string `mapstructure:"record_sync_cron"`
	Enabled      bool   `mapstructure:"record_sync_enabled"`
	TTLSeconds   int    `mapstructure:"record_sync_ttl_seconds"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("SUPABASE_URL", "https://your-project.supabase.co")
	viper.SetDefault("SUPABASE_API_KEY", "your_anon_key")
	viper.SetDefault("SUPABASE_TABLE", "records")
	viper.SetDefault("SUPABASE_TIMEOUT_SECONDS", 10)

	// Defaults para o snapshot de registros
	viper.SetDefault("RECORD_SYNC_CRON", "*/15 * * * *") // Atualiza o snapshot a cada 15 minutos
	viper.SetDefault("RECORD_SYNC_ENABLED", true)
	viper.SetDefault("RECORD_SYNC_TTL_SECONDS", 60) // Snapshot considerado atual por 60 segundos

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

	config.Supabase.RestURL = fmt.Sprintf(
		"%s/rest/v1/%s",
		strings.TrimRight(config.Supabase.URL, "/"),
		config.Supabase.Table,
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
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
