package factory

import (
	"fmt"

	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/pkg/llm"
	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/pkg/llm/ollama"
	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/pkg/llm/openai"
)

func NewLLMProvider(providerType, modelName, baseURL, apiKey string) (llm.LLMProvider, error) {
	switch providerType {
	case "openai":
		if modelName == "" {
			modelName = "gpt-4o" // Default
		}
		return openai.NewOpenAIProvider(apiKey, modelName), nil
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
