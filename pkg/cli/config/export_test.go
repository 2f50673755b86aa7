package config

// NewLoggerForTest creates a Logger config for testing purposes
func NewLoggerForTest(level, format, output string) *Logger {
	return &Logger{
		level:  level,
		format: format,
		output: output,
	}
}

// NewLLMForTest creates an LLM config for testing purposes
func NewLLMForTest(provider, openaiAPIKey, geminiProject string) *LLM {
	return &LLM{
		provider:       provider,
		openaiAPIKey:   openaiAPIKey,
		openaiModel:    "gpt-4o",
		geminiProject:  geminiProject,
		geminiLocation: "us-central1",
	}
}

// NewSearchForTest creates a Search config for testing purposes
func NewSearchForTest(apiKey string) *Search {
	return &Search{apiKey: apiKey}
}

// NewRepositoryForTest creates a Repository config for testing purposes
func NewRepositoryForTest(backend, projectID, databaseID string) *Repository {
	return &Repository{
		backend:    backend,
		projectID:  projectID,
		databaseID: databaseID,
	}
}
