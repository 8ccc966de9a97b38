package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultOutputFilename is the download name of the annotated workbook.
const DefaultOutputFilename = "不担保人事用合同记录表_审核标注版.xlsx"

type Config struct {
	ServerPort     string
	MaxUploadMB    int64
	LogLevel       string
	LogFormat      string
	OutputFilename string
	GinMode        string
}

// LoadConfig reads configuration from, in order of precedence, environment
// variables, .env files, an optional ledger-audit.yaml, and defaults.
func LoadConfig() *Config {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("server_port", "8080")
	v.SetDefault("max_upload_mb", 32)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("output_filename", DefaultOutputFilename)
	v.SetDefault("gin_mode", "release")

	v.SetConfigName("ledger-audit")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME")
	// Read config file (ignore error if not found)
	_ = v.ReadInConfig()

	maxUpload := v.GetInt64("max_upload_mb")
	if maxUpload <= 0 {
		maxUpload = 32
	}

	return &Config{
		ServerPort:     v.GetString("server_port"),
		MaxUploadMB:    maxUpload,
		LogLevel:       v.GetString("log_level"),
		LogFormat:      v.GetString("log_format"),
		OutputFilename: v.GetString("output_filename"),
		GinMode:        v.GetString("gin_mode"),
	}
}
