package config

import (
	"fmt"
	"time"
)

type AppConfig struct {
	HTTPAddr string

	TokenSecret string
	TokenTTL    time.Duration

	// Создавать ли авансовый платёж (половина стоимости) при бронировании.
	DownPayment bool
	// Интервал фонового пересчёта статусов номеров; 0 — отключён.
	SweepInterval time.Duration

	MailjetAPIKey    string
	MailjetSecretKey string
	MailFromEmail    string
	MailFromName     string
}

func LoadAppConfig() (*AppConfig, error) {
	cfg := &AppConfig{
		HTTPAddr:         getEnv("HTTP_ADDR", ":8080"),
		TokenSecret:      getEnv("TOKEN_SECRET", ""),
		TokenTTL:         time.Duration(getEnvInt("TOKEN_TTL_HOURS", 24)) * time.Hour,
		DownPayment:      getEnvBool("BOOKING_DOWN_PAYMENT", true),
		SweepInterval:    time.Duration(getEnvInt("ROOM_STATUS_SWEEP_MIN", 60)) * time.Minute,
		MailjetAPIKey:    getEnv("MJ_APIKEY_PUBLIC", ""),
		MailjetSecretKey: getEnv("MJ_APIKEY_PRIVATE", ""),
		MailFromEmail:    getEnv("MAIL_FROM_EMAIL", "noreply@hotel.local"),
		MailFromName:     getEnv("MAIL_FROM_NAME", "Hotel Booking"),
	}

	if cfg.TokenSecret == "" {
		return nil, fmt.Errorf("invalid app config: TOKEN_SECRET must be set")
	}

	return cfg, nil
}

func getEnvBool(key string, def bool) bool {
	switch getEnv(key, "") {
	case "1", "true", "yes":
		return true
	case "0", "false", "no":
		return false
	}
	return def
}
