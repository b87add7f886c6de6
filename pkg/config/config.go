package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	AppEnv        string
	DatabaseURL   string
	JWTSecret     string
	JWTIssuer     string
	JWTTTLMinutes int

	// Embeddings provider (OpenAI-compatible API)
	EmbeddingsBaseURL string
	EmbeddingsAPIKey  string
	EmbeddingsModel   string
	EmbedWorkers      int

	// Classifier artifacts
	ModelsDir string
	ModelName string

	// Resume processing
	SkillsFile      string
	UploadDir       string
	ResumeMaxSizeMB int
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		AppEnv:        getEnv("APP_ENV", "development"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		JWTSecret:     getEnv("JWT_SECRET", "dev-secret-change"),
		JWTIssuer:     getEnv("JWT_ISSUER", "screening-service"),
		JWTTTLMinutes: getEnvInt("JWT_TTL_MINUTES", 60),

		EmbeddingsBaseURL: getEnv("EMBEDDINGS_BASE_URL", "https://api.openai.com/v1"),
		EmbeddingsAPIKey:  os.Getenv("EMBEDDINGS_API_KEY"),
		EmbeddingsModel:   getEnv("EMBEDDINGS_MODEL", "text-embedding-3-small"),
		EmbedWorkers:      getEnvInt("EMBED_WORKERS", 4),

		ModelsDir: getEnv("MODELS_DIR", "models"),
		ModelName: getEnv("MODEL_NAME", "resume_classifier"),

		SkillsFile:      getEnv("SKILLS_FILE", "data/skills.json"),
		UploadDir:       getEnv("UPLOAD_DIR", "uploads"),
		ResumeMaxSizeMB: getEnvInt("RESUME_MAX_SIZE_MB", 15),
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
