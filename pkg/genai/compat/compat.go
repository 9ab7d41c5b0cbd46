// Package compat 提供 Generator 的统一工厂
//
// 使用方式：
//
//	g, err := compat.New(&genai.Config{
//	    Backend: genai.BackendOllama,
//	    Model:   "llama3.2",
//	})
//
//	// 本地 Mock（无需配置）
//	g := compat.Mock()
package compat

import (
	"github.com/lwmacct/260828-go-pkg-genai/pkg/genai"
	"github.com/lwmacct/260828-go-pkg-genai/pkg/genai/compat/openai"
	"github.com/lwmacct/260828-go-pkg-genai/pkg/genai/mock"
)

// ═══════════════════════════════════════════════════════════════════════════
// 工厂函数
// ═══════════════════════════════════════════════════════════════════════════

// New 创建 Generator
func New(cfg *genai.Config) (genai.Generator, error) {
	if cfg == nil {
		return nil, genai.NewConfigError("config is required", nil)
	}

	// 确定 Backend 类型（默认 OpenAI）
	backend := cfg.Backend
	if backend == "" {
		backend = genai.BackendOpenAI
	}

	if backend == genai.BackendMock {
		return mock.New(), nil
	}

	// 本地/自托管服务不需要 API Key
	if backend.RequiresAPIKey() && cfg.APIKey == "" {
		return nil, genai.NewConfigError("API key is required", nil)
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = backend.DefaultBaseURL()
	}

	model := cfg.Model
	if model == "" {
		model = backend.DefaultModel()
	}

	return openai.New(&openai.Config{
		APIKey:  cfg.APIKey,
		BaseURL: baseURL,
		Model:   model,
		Timeout: cfg.Timeout,
		Headers: cfg.Headers,
	})
}

// Mock 创建本地 Mock Generator（测试/开发用，无需配置）
func Mock(opts ...mock.Option) *mock.Client {
	return mock.New(opts...)
}
