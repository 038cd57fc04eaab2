package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	StoreConfig struct {
		Engine string // sqlite (default), postgres, file, memory
		DSN    string
	}

	GenAIConfig struct {
		APIKey  string
		Timeout time.Duration
	}

	ServerConfig struct {
		Host               string
		JWTExpirationDelta time.Duration
		ShutdownTimeout    time.Duration
	}

	EmailConfig struct {
		DefaultFrom string
		SendgridKey string
		Recipients  []string
	}

	Config struct {
		Env          string
		Build        string
		Debug        bool
		TestMode     bool
		AppName      string
		SecretKey    string
		DataDir      string
		RollbarToken string
		Store        StoreConfig
		GenAI        GenAIConfig
		Server       ServerConfig
		Email        EmailConfig
	}
)

// NewConfig reads the configuration from defaults, the optional `config/.env.<env>` file
// and the environment (prefixed by the env name, eg. `DEV_STORE_ENGINE`).
func NewConfig() *Config {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("build", "dev")
	v.SetDefault("appName", "Noor ul Masajid")
	v.SetDefault("secretKey", "n0or-ul-m@sajid$+57=dz&uoxh2(h!x)#*c2(#yg4h^$cegm2emy")
	v.SetDefault("dataDir", defaultDataDir())
	v.SetDefault("rollbarToken", "")
	v.SetDefault("store.engine", "sqlite")
	v.SetDefault("store.dsn", "")
	v.SetDefault("genai.apiKey", "")
	v.SetDefault("genai.timeout", 60*time.Second)
	v.SetDefault("server.host", "127.0.0.1:8080")
	v.SetDefault("server.jwtExpirationDelta", 7*24*time.Hour)
	v.SetDefault("server.shutdownTimeout", 5*time.Second)
	v.SetDefault("email.defaultFrom", "noreply@localhost")
	v.SetDefault("email.sendgridKey", "")
	v.SetDefault("email.recipients", []string{})

	env := strings.ToUpper(os.Getenv("ENV")) // DEV (local; default), TEST, PROD
	if env == "" {
		env = "DEV"
	}
	if env == "TEST" {
		v.SetDefault("testMode", true)
	}
	v.SetEnvPrefix(env)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	apiKey := v.GetString("genai.apiKey")
	if apiKey == "" {
		apiKey = os.Getenv("API_KEY")
	}

	return &Config{
		Env:          env,
		Build:        v.GetString("build"),
		Debug:        v.GetBool("debug"),
		TestMode:     v.GetBool("testMode"),
		AppName:      v.GetString("appName"),
		SecretKey:    v.GetString("secretKey"),
		DataDir:      v.GetString("dataDir"),
		RollbarToken: v.GetString("rollbarToken"),
		Store: StoreConfig{
			Engine: strings.ToLower(v.GetString("store.engine")),
			DSN:    v.GetString("store.dsn"),
		},
		GenAI: GenAIConfig{
			APIKey:  apiKey,
			Timeout: v.GetDuration("genai.timeout"),
		},
		Server: ServerConfig{
			Host:               v.GetString("server.host"),
			JWTExpirationDelta: v.GetDuration("server.jwtExpirationDelta"),
			ShutdownTimeout:    v.GetDuration("server.shutdownTimeout"),
		},
		Email: EmailConfig{
			DefaultFrom: v.GetString("email.defaultFrom"),
			SendgridKey: v.GetString("email.sendgridKey"),
			Recipients:  v.GetStringSlice("email.recipients"),
		},
	}
}

func defaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "noor-ul-masajid")
	}
	return ".noor-ul-masajid"
}
