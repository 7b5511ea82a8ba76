package config

import "time"

const (
	DefaultHTTPAddress   = "0.0.0.0:5000"
	DefaultAllowedOrigin = "http://localhost:3000"
	DefaultTokenSignKey  = "study-buddy-secret-key"
	DefaultTokenIssuer   = "go-study-buddy"
	DefaultTokenDuration = 7 * 24 * time.Hour
	DefaultDataDir       = "data"
	DefaultMaxSessions   = 50
	DefaultMaxUploadSize = 10 << 20
	DefaultDBDriver      = DriverPostgres
	DefaultInferenceURL  = "https://api-inference.huggingface.co/models/facebook/bart-large-cnn"
	DefaultTranscribeURL = "https://api-inference.huggingface.co/models/openai/whisper-small"
	DefaultVersion       = "1.0.0"
)

// defaultConfig holds the values used when no other source sets a field.
// The sign key is a development fallback and must be overridden in production.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:  DefaultTokenSignKey,
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
			Version:       DefaultVersion,
		},
		Storage: Storage{
			DB:          DB{Driver: DefaultDBDriver},
			Files:       Files{DataDir: DefaultDataDir},
			MaxSessions: DefaultMaxSessions,
		},
		Server: Server{
			HTTPAddress:   DefaultHTTPAddress,
			AllowedOrigin: DefaultAllowedOrigin,
			MaxUploadSize: DefaultMaxUploadSize,
		},
		Adapter: Adapter{
			InferenceURL:     DefaultInferenceURL,
			TranscriptionURL: DefaultTranscribeURL,
		},
	}
}
