package openai

import (
	"context"
	"encoding/json"
	"maps"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/lwmacct/260828-go-pkg-genai/pkg/genai"
	"github.com/lwmacct/260828-go-pkg-genai/pkg/genai/core"
)

// ═══════════════════════════════════════════════════════════════════════════
// 配置和客户端
// ═══════════════════════════════════════════════════════════════════════════

// Config 客户端配置
type Config struct {
	// APIKey API 密钥。本地服务通常不校验鉴权，可留空；
	// 非空时以 Bearer 方式附加到 Authorization 头。
	APIKey string

	// BaseURL API 基础地址，默认 https://api.openai.com/v1
	BaseURL string

	// Model 模型名称
	Model string

	// Timeout 请求超时时间，默认 120 秒。适配器自身不附加超时，
	// 依赖传输层的超时行为。
	Timeout time.Duration

	// Headers 额外的请求头
	Headers map[string]string
}

// Client OpenAI 兼容的内容生成客户端
//
// 实现 [genai.Generator] 接口，支持同步和流式生成。
//
// 架构设计：
//   - 使用 core.ToChatMessages 处理内容转换
//   - 使用 core.EventScanner 处理流式响应
//   - 使用 core.EstimateTokens 做 Token 估算
//
// 每次调用独占自己的请求和网络流，调用之间没有共享可变状态。
type Client struct {
	config *Config
	resty  *resty.Client
}

// New 创建新的 OpenAI 兼容客户端
//
// 参数 config 必需。如果 BaseURL 为空，默认使用 OpenAI 官方地址。
func New(config *Config) (*Client, error) {
	if config == nil {
		return nil, genai.NewConfigError("config is required", nil)
	}

	// 应用默认值
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = genai.BackendOpenAI.DefaultBaseURL()
	}

	timeout := config.Timeout
	if timeout == 0 {
		timeout = 120 * time.Second
	}

	// 构建请求头
	headers := map[string]string{
		"Content-Type": "application/json",
	}
	if config.APIKey != "" {
		headers["Authorization"] = "Bearer " + config.APIKey
	}
	maps.Copy(headers, config.Headers)

	// 创建 resty 客户端
	r := resty.New()
	r.SetBaseURL(baseURL)
	r.SetTimeout(timeout)
	for k, v := range headers {
		r.SetHeader(k, v)
	}

	return &Client{
		config: config,
		resty:  r,
	}, nil
}

// ═══════════════════════════════════════════════════════════════════════════
// Generator 接口实现
// ═══════════════════════════════════════════════════════════════════════════

// GenerateContent 同步生成
//
// 实现 [genai.Generator] 接口。发起单次请求并等待完整 JSON 响应体。
// 非 2xx 状态返回 [genai.APIError]（携带状态码、状态文本和完整读出的
// 响应体），无法解码的响应体返回 [genai.DecodeError]；两者都不重试。
func (c *Client) GenerateContent(ctx context.Context, contents []genai.Content, cfg *genai.GenerationConfig) (*genai.Response, error) {
	body := c.buildRequest(contents, cfg, false)
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return nil, genai.NewRequestError("marshal", err)
	}

	resp, err := c.resty.R().
		SetContext(ctx).
		SetBody(bodyBytes).
		Post("/chat/completions")
	if err != nil {
		return nil, genai.NewHTTPError("request failed", err)
	}

	if resp.StatusCode() >= 400 {
		return nil, genai.NewAPIError(resp.StatusCode(), http.StatusText(resp.StatusCode()), resp.String())
	}

	payload, err := decodeCompletion(resp.Body())
	if err != nil {
		return nil, err
	}

	return payload.toResponse(), nil
}

// CountTokens 估算 Token 数量
//
// 实现 [genai.Generator] 接口。本地启发式计算（ceil(字符数/4)），
// 不发起网络请求，确定性且无副作用。
func (c *Client) CountTokens(_ context.Context, contents []genai.Content) (*genai.CountTokensResponse, error) {
	return &genai.CountTokensResponse{
		TotalTokens: core.EstimateTokens(contents),
	}, nil
}

// EmbedContent 生成 Embedding
//
// 实现 [genai.Generator] 接口。目标协议不承载 Embedding，恒定同步
// 返回 [genai.UnsupportedError]，对任意输入都是如此。
func (c *Client) EmbedContent(_ context.Context, _ []genai.Content) (*genai.EmbedResponse, error) {
	return nil, genai.NewUnsupportedError("embedContent")
}

// Close 关闭客户端
//
// 实现 [genai.Generator] 接口。当前实现为空操作，HTTP 客户端无需显式关闭。
func (c *Client) Close() error {
	return nil
}

// ═══════════════════════════════════════════════════════════════════════════
// 请求构建
// ═══════════════════════════════════════════════════════════════════════════

// buildRequest 构建 API 请求体
//
// 可选字段（temperature、max_tokens）未设置时不出现在请求中，
// 由服务端应用自身默认值。
func (c *Client) buildRequest(contents []genai.Content, cfg *genai.GenerationConfig, stream bool) *chatRequest {
	if cfg == nil {
		cfg = &genai.GenerationConfig{}
	}

	return &chatRequest{
		Model:       c.config.Model,
		Messages:    core.ToChatMessages(contents),
		Temperature: cfg.Temperature,
		MaxTokens:   cfg.MaxOutputTokens,
		Stream:      stream,
	}
}

// 确保 Client 实现了 Generator 接口
var _ genai.Generator = (*Client)(nil)
