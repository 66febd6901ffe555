package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port          string `env:"PORT,            default=8080"`
	Env           string `env:"ENV,             default=development"`
	LogLevel      string `env:"LOG_LEVEL,       default=info"`
	OtpTTLMinutes int    `env:"OTP_TTL_MINUTES, default=7"`
	AppLink       string `env:"TOWING_APP_LINK, default=www.towingbuddy.in"`

	Mongo  MongoConfig
	Twilio TwilioConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=towtrack"`
}

// TwilioConfig is optional: when SID, token, or sender number is missing the
// SMS gateway is disabled and every send becomes a logged no-op.
type TwilioConfig struct {
	AccountSID string `env:"TWILIO_ACCOUNT_SID"`
	AuthToken  string `env:"TWILIO_AUTH_TOKEN"`
	From       string `env:"TWILIO_PHONE_NUMBER"`
	Template   string `env:"TWILIO_SMS_TEMPLATE"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
