package genai

import (
	"os"
	"time"
)

// ═══════════════════════════════════════════════════════════════════════════
// Backend 预设
// ═══════════════════════════════════════════════════════════════════════════

// Backend 目标服务类型
//
// 除 Mock 外均为 OpenAI 兼容的 chat-completions 服务，差异仅在默认
// 地址、默认模型和是否需要 API Key。
type Backend string

const (
	// BackendOpenAI OpenAI 官方 API
	BackendOpenAI Backend = "openai"

	// BackendOpenRouter OpenRouter 聚合服务
	BackendOpenRouter Backend = "openrouter"

	// BackendDeepSeek DeepSeek API
	BackendDeepSeek Backend = "deepseek"

	// BackendGroq Groq 快速推理 API
	BackendGroq Backend = "groq"

	// BackendMistral Mistral AI API
	BackendMistral Backend = "mistral"

	// BackendOllama Ollama 本地模型服务
	BackendOllama Backend = "ollama"

	// BackendLMStudio LM Studio 本地服务
	BackendLMStudio Backend = "lmstudio"

	// BackendVLLM vLLM 自托管推理服务
	BackendVLLM Backend = "vllm"

	// BackendLlamaCpp llama.cpp server
	BackendLlamaCpp Backend = "llamacpp"

	// BackendMock 本地 Mock（测试用）
	BackendMock Backend = "mock"
)

// String 返回字符串表示
func (b Backend) String() string {
	return string(b)
}

// DefaultBaseURL 返回默认 Base URL
func (b Backend) DefaultBaseURL() string {
	switch b {
	case BackendOpenAI:
		return "https://api.openai.com/v1"
	case BackendOpenRouter:
		return "https://openrouter.ai/api/v1"
	case BackendDeepSeek:
		return "https://api.deepseek.com/v1"
	case BackendGroq:
		return "https://api.groq.com/openai/v1"
	case BackendMistral:
		return "https://api.mistral.ai/v1"
	case BackendOllama:
		return "http://localhost:11434/v1"
	case BackendLMStudio:
		return "http://localhost:1234/v1"
	case BackendVLLM:
		return "http://localhost:8000/v1"
	case BackendLlamaCpp:
		return "http://localhost:8080/v1"
	default:
		return ""
	}
}

// DefaultModel 返回默认模型
func (b Backend) DefaultModel() string {
	switch b {
	case BackendOpenAI:
		return "gpt-4o-mini"
	case BackendOpenRouter:
		return "anthropic/claude-haiku-4.5"
	case BackendDeepSeek:
		return "deepseek-chat"
	case BackendGroq:
		return "llama-3.3-70b-versatile"
	case BackendMistral:
		return "mistral-large-latest"
	case BackendOllama:
		return "llama3.2"
	default:
		return "" // 自托管服务需要用户指定加载的模型
	}
}

// RequiresAPIKey 判断是否必须提供 API Key
//
// 本地/自托管服务通常不校验鉴权头。
func (b Backend) RequiresAPIKey() bool {
	switch b {
	case BackendOllama, BackendLMStudio, BackendVLLM, BackendLlamaCpp, BackendMock:
		return false
	default:
		return true
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// Generator 配置
// ═══════════════════════════════════════════════════════════════════════════

// Config Generator 创建配置
//
// 用于通过统一工厂函数创建不同类型的 Generator。
//
// 基本用法：
//
//	cfg := &genai.Config{
//	    Backend: genai.BackendOllama,
//	    Model:   "llama3.2",
//	}
//
// 自托管服务：
//
//	cfg := &genai.Config{
//	    Backend: genai.BackendVLLM,
//	    BaseURL: "http://10.0.0.5:8000/v1",
//	    Model:   "qwen2.5-7b-instruct",
//	}
type Config struct {
	// Backend 目标服务类型（默认 OpenAI）
	Backend Backend `yaml:"backend"`

	// APIKey（本地服务可省略，其他 Backend 必需）
	APIKey string `yaml:"api-key"`

	// 可选字段（有默认值）
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base-url"`

	// 网络配置
	Timeout time.Duration `yaml:"timeout"`

	// Headers 额外的请求头
	Headers map[string]string `yaml:"headers"`
}

// DefaultConfig 返回默认的 Generator 配置
//
// 不指定类型时默认使用 OpenAI；API Key、Base URL、模型从环境变量探测。
func DefaultConfig(backends ...Backend) Config {
	b := BackendOpenAI
	if len(backends) > 0 {
		b = backends[0]
	}

	baseURL := EnvBaseURL()
	if baseURL == "" {
		baseURL = b.DefaultBaseURL()
	}

	model := EnvModel()
	if model == "" {
		model = b.DefaultModel()
	}

	return Config{
		Backend: b,
		APIKey:  EnvAPIKey(),
		BaseURL: baseURL,
		Model:   model,
		Timeout: 120 * time.Second,
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// 环境变量探测
// ═══════════════════════════════════════════════════════════════════════════

// EnvAPIKey 从环境变量探测 API Key
func EnvAPIKey() string {
	return firstEnv("OPENAI_API_KEY", "GENAI_API_KEY", "LLM_API_KEY")
}

// EnvBaseURL 从环境变量探测 Base URL
func EnvBaseURL() string {
	return firstEnv("OPENAI_BASE_URL", "OPENAI_API_BASE", "GENAI_BASE_URL")
}

// EnvModel 从环境变量探测模型名称
func EnvModel() string {
	return firstEnv("OPENAI_MODEL", "GENAI_MODEL", "MODEL")
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}
