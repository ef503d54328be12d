package config

import (
	"errors"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	CORS      CORSConfig
	Log       LogConfig
	Seed      SeedConfig
	Assistant AssistantConfig
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// SeedConfig sizes the generated dataset. A fixed Seed value makes the
// dataset reproducible across restarts.
type SeedConfig struct {
	Seed               int64
	SectionsPerGrade   int
	ParentCount        int
	StudentsPerSection int
	TeacherCount       int
	TeacherSections    int
	ScheduleFill       float64
	EmailDomain        string
}

// AssistantConfig points at the LLM completion service.
type AssistantConfig struct {
	APIKey       string
	BaseURL      string
	AdminModel   string
	TeacherModel string
	SpeechModel  string
	SpeechVoice  string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Seed = SeedConfig{
		Seed:               v.GetInt64("SEED"),
		SectionsPerGrade:   v.GetInt("SEED_SECTIONS_PER_GRADE"),
		ParentCount:        v.GetInt("SEED_PARENT_COUNT"),
		StudentsPerSection: v.GetInt("SEED_STUDENTS_PER_SECTION"),
		TeacherCount:       v.GetInt("SEED_TEACHER_COUNT"),
		TeacherSections:    v.GetInt("SEED_TEACHER_SECTIONS"),
		ScheduleFill:       v.GetFloat64("SEED_SCHEDULE_FILL"),
		EmailDomain:        v.GetString("SEED_EMAIL_DOMAIN"),
	}

	cfg.Assistant = AssistantConfig{
		APIKey:       v.GetString("GEMINI_API_KEY"),
		BaseURL:      v.GetString("GEMINI_BASE_URL"),
		AdminModel:   v.GetString("ASSISTANT_ADMIN_MODEL"),
		TeacherModel: v.GetString("ASSISTANT_TEACHER_MODEL"),
		SpeechModel:  v.GetString("ASSISTANT_SPEECH_MODEL"),
		SpeechVoice:  v.GetString("ASSISTANT_SPEECH_VOICE"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("SEED", 0)
	v.SetDefault("SEED_SECTIONS_PER_GRADE", 8)
	v.SetDefault("SEED_PARENT_COUNT", 300)
	v.SetDefault("SEED_STUDENTS_PER_SECTION", 30)
	v.SetDefault("SEED_TEACHER_COUNT", 20)
	v.SetDefault("SEED_TEACHER_SECTIONS", 8)
	v.SetDefault("SEED_SCHEDULE_FILL", 0.9)
	v.SetDefault("SEED_EMAIL_DOMAIN", "alnajat.edu")

	v.SetDefault("GEMINI_API_KEY", "")
	v.SetDefault("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta")
	v.SetDefault("ASSISTANT_ADMIN_MODEL", "gemini-3-pro-preview")
	v.SetDefault("ASSISTANT_TEACHER_MODEL", "gemini-3-flash-preview")
	v.SetDefault("ASSISTANT_SPEECH_MODEL", "gemini-2.5-flash-preview-tts")
	v.SetDefault("ASSISTANT_SPEECH_VOICE", "Kore")
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
