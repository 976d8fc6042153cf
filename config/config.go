package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Business hours. Workday offsets are minutes from midnight in the
	// business time zone, so 540 is 9:00 and 1020 is 17:00.
	BusinessTimezone string `mapstructure:"BUSINESS_TIMEZONE"`
	WorkdayStartMin  int    `mapstructure:"WORKDAY_START_MIN"`
	WorkdayEndMin    int    `mapstructure:"WORKDAY_END_MIN"`
	SlotDurationMin  int    `mapstructure:"SLOT_DURATION_MIN"`
	SlotStepMin      int    `mapstructure:"SLOT_STEP_MIN"`

	// Google Calendar.
	CalendarID            string `mapstructure:"CALENDAR_ID"`
	GoogleCredentialsFile string `mapstructure:"GOOGLE_CREDENTIALS_FILE"`

	// SMTP settings for confirmation and reminder mail.
	SMTPHost      string `mapstructure:"SMTP_HOST"`
	SMTPPort      int    `mapstructure:"SMTP_PORT"`
	SMTPUsername  string `mapstructure:"SMTP_USERNAME"`
	SMTPPassword  string `mapstructure:"SMTP_PASSWORD"`
	SMTPFrom      string `mapstructure:"SMTP_FROM"`
	SMTPFromName  string `mapstructure:"SMTP_FROM_NAME"`
	OperatorEmail string `mapstructure:"OPERATOR_EMAIL"`

	// CRM form endpoint.
	CRMFormURL string `mapstructure:"CRM_FORM_URL"`

	// Reminder scheduling.
	ReminderLeadMin int `mapstructure:"REMINDER_LEAD_MIN"`

	// Redis configuration (reminder queue).
	RedisAddr            string `mapstructure:"REDIS_ADDR"`
	RedisPassword        string `mapstructure:"REDIS_PASSWORD"`
	RedisReminderQueueDB int    `mapstructure:"REDIS_REMINDER_QUEUE_DB"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("BUSINESS_TIMEZONE", "America/New_York")
	viper.SetDefault("WORKDAY_START_MIN", 540)
	viper.SetDefault("WORKDAY_END_MIN", 1020)
	viper.SetDefault("SLOT_DURATION_MIN", 20)
	viper.SetDefault("SLOT_STEP_MIN", 30)
	viper.SetDefault("CALENDAR_ID", "primary")
	viper.SetDefault("GOOGLE_CREDENTIALS_FILE", "credentials.json")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("SMTP_FROM", "noreply@slotbook.app")
	viper.SetDefault("SMTP_FROM_NAME", "Slotbook")
	viper.SetDefault("REMINDER_LEAD_MIN", 60)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_REMINDER_QUEUE_DB", 3)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// BusinessLocation resolves the configured business time zone.
func BusinessLocation() *time.Location {
	loc, err := time.LoadLocation(AppConfig.BusinessTimezone)
	if err != nil {
		log.Printf("Invalid BUSINESS_TIMEZONE %q, falling back to UTC: %v", AppConfig.BusinessTimezone, err)
		return time.UTC
	}
	return loc
}
