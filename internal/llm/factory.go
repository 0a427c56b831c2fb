package llm

import (
	"fmt"
	"strings"

	"github.com/Shamanthsheni/SmartCareerAI/internal/config"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// NewClient 按配置创建AI客户端。Provider 留空时默认 gemini。
func NewClient(cfg config.AIConfig) (Client, error) {
	switch strings.ToLower(cfg.Provider) {
	case ProviderGemini, "":
		return NewGemini(cfg.APIKey, cfg.Model, cfg.AnalysisModel)
	case ProviderOpenAI:
		return NewOpenAI(cfg.APIKey, cfg.BaseURL, cfg.Model), nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", cfg.Provider)
	}
}
