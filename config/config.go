package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port      string
	PublicDir string
	Origins   []string

	// Storage: "memory" keeps everything for the process lifetime,
	// "postgres" persists through GORM.
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	JWTSecret   string
	JWTTTLHours int

	// ✅ Redis token store (optional)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// ✅ Kafka announcement fan-out (optional)
	KafkaBrokers []string
	KafkaTopic   string
	KafkaGroupID string

	// ✅ SMTP Config
	SMTPHost      string
	SMTPPort      string
	SMTPUsername  string
	SMTPPassword  string
	SMTPFromName  string
	SMTPFromEmail string

	AdminEmail       string
	AdminPassword    string
	SeedSampleEvents bool
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "3000")
	v.SetDefault("PUBLIC_DIR", "./public")
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("DB_DRIVER", "memory")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("JWT_TTL_HOURS", 0)
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("KAFKA_TOPIC", "event-announcements")
	v.SetDefault("KAFKA_GROUP_ID", "event-announcements-mailer")
	v.SetDefault("SMTP_PORT", "587")
	v.SetDefault("SMTP_FROM_NAME", "Event Desk")
	v.SetDefault("ADMIN_EMAIL", "admin@local")
	v.SetDefault("ADMIN_PASSWORD", "admin123")
	v.SetDefault("SEED_SAMPLE_EVENTS", false)
}

// Load reads environment variables and returns a Config object
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, using environment variables")
	}
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	return v
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) *Config {
	return &Config{
		Port:      v.GetString("PORT"),
		PublicDir: v.GetString("PUBLIC_DIR"),
		Origins:   splitList(v.GetString("CORS_ORIGINS")),

		DBDriver:   strings.ToLower(v.GetString("DB_DRIVER")),
		DBHost:     v.GetString("DB_HOST"),
		DBPort:     v.GetString("DB_PORT"),
		DBUser:     v.GetString("DB_USER"),
		DBPassword: v.GetString("DB_PASSWORD"),
		DBName:     v.GetString("DB_NAME"),
		DBSSLMode:  v.GetString("DB_SSLMODE"),

		JWTSecret:   v.GetString("JWT_SECRET"),
		JWTTTLHours: v.GetInt("JWT_TTL_HOURS"),

		RedisAddr:     v.GetString("REDIS_ADDR"),
		RedisPassword: v.GetString("REDIS_PASSWORD"),
		RedisDB:       v.GetInt("REDIS_DB"),

		KafkaBrokers: splitList(v.GetString("KAFKA_BROKERS")),
		KafkaTopic:   v.GetString("KAFKA_TOPIC"),
		KafkaGroupID: v.GetString("KAFKA_GROUP_ID"),

		SMTPHost:      v.GetString("SMTP_HOST"),
		SMTPPort:      v.GetString("SMTP_PORT"),
		SMTPUsername:  v.GetString("SMTP_USERNAME"),
		SMTPPassword:  v.GetString("SMTP_PASSWORD"),
		SMTPFromName:  v.GetString("SMTP_FROM_NAME"),
		SMTPFromEmail: v.GetString("SMTP_FROM_EMAIL"),

		AdminEmail:       v.GetString("ADMIN_EMAIL"),
		AdminPassword:    v.GetString("ADMIN_PASSWORD"),
		SeedSampleEvents: v.GetBool("SEED_SAMPLE_EVENTS"),
	}
}

// Defaults returns the configuration with no environment applied.
func Defaults() *Config {
	v := viper.New()
	setDefaults(v)
	return FromViper(v)
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
