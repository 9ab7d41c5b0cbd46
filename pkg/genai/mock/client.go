package mock

import (
	"context"
	"sync"
	"time"

	"github.com/lwmacct/260828-go-pkg-genai/pkg/genai"
	"github.com/lwmacct/260828-go-pkg-genai/pkg/genai/core"
)

// ═══════════════════════════════════════════════════════════════════════════
// Mock 客户端
// ═══════════════════════════════════════════════════════════════════════════

// CallRecord 记录一次调用的详情
type CallRecord struct {
	Contents []genai.Content
	Config   *genai.GenerationConfig
	Stream   bool
	Time     time.Time
}

// ResponseFunc 动态响应函数类型
//
// 接收内容列表和调用次数，返回响应文本。
type ResponseFunc func(contents []genai.Content, callCount int) string

// Client Mock Generator
type Client struct {
	mu        sync.RWMutex
	response  string       // 默认响应
	responses []string     // 响应队列（依次返回，用完后循环）
	respIdx   int          // 当前响应索引
	respFunc  ResponseFunc // 动态响应函数
	chunkSize int          // 流式增量片段大小（rune 数）
	delay     time.Duration
	err       error        // 返回错误
	calls     []CallRecord // 调用记录
	counter   int          // 调用计数
}

// New 创建 Mock Client
//
// 使用示例:
//
//	client := mock.New()                                // 默认响应
//	client := mock.New(mock.WithResponse("pong"))       // 预设响应
//	client := mock.New(mock.WithConfigFile("cfg.yaml")) // 配置文件
func New(opts ...Option) *Client {
	c := &Client{
		response:  "This is a mock response.",
		chunkSize: 5,
		calls:     make([]CallRecord, 0),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Option 配置选项函数
type Option func(*Client)

// WithResponse 设置预设响应文本
func WithResponse(text string) Option {
	return func(c *Client) {
		c.response = text
	}
}

// WithResponses 设置响应队列（依次返回，用完后循环）
func WithResponses(texts ...string) Option {
	return func(c *Client) {
		c.responses = texts
	}
}

// WithResponseFunc 设置动态响应函数
func WithResponseFunc(fn ResponseFunc) Option {
	return func(c *Client) {
		c.respFunc = fn
	}
}

// WithChunkSize 设置流式增量片段大小（rune 数，默认 5）
func WithChunkSize(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.chunkSize = n
		}
	}
}

// WithDelay 设置响应延迟
func WithDelay(d time.Duration) Option {
	return func(c *Client) {
		c.delay = d
	}
}

// WithError 设置返回错误
func WithError(err error) Option {
	return func(c *Client) {
		c.err = err
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// Generator 接口实现
// ═══════════════════════════════════════════════════════════════════════════

// GenerateContent 同步生成
//
// 实现 [genai.Generator] 接口。返回由脚本化文本派生的单候选响应。
func (c *Client) GenerateContent(ctx context.Context, contents []genai.Content, cfg *genai.GenerationConfig) (*genai.Response, error) {
	text, err := c.next(contents, cfg, false)
	if err != nil {
		return nil, err
	}

	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	return genai.NewResponse([]genai.Candidate{
		genai.NewCandidate(0, text, "stop"),
	}), nil
}

// GenerateContentStream 流式生成
//
// 实现 [genai.Generator] 接口。把响应文本切成增量片段逐个送出，
// 每个片段一个独立的响应视图，最后一个片段携带 finishReason。
func (c *Client) GenerateContentStream(ctx context.Context, contents []genai.Content, cfg *genai.GenerationConfig) (<-chan *genai.StreamEvent, error) {
	text, err := c.next(contents, cfg, true)
	if err != nil {
		return nil, err
	}

	chunks := splitChunks(text, c.chunkSize)
	events := make(chan *genai.StreamEvent, 1)

	go func() {
		defer close(events)

		for i, chunk := range chunks {
			// wait 只会因消费方自身取消而失败，与网络解码协程的
			// 放弃语义一致：静默关闭，不送终止事件
			if err := c.wait(ctx); err != nil {
				return
			}

			finishReason := ""
			if i == len(chunks)-1 {
				finishReason = "stop"
			}

			ev := &genai.StreamEvent{
				Response: genai.NewResponse([]genai.Candidate{
					genai.NewCandidate(0, chunk, finishReason),
				}),
			}

			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	return events, nil
}

// CountTokens 估算 Token 数量
//
// 实现 [genai.Generator] 接口。使用与兼容适配器相同的启发式。
func (c *Client) CountTokens(_ context.Context, contents []genai.Content) (*genai.CountTokensResponse, error) {
	return &genai.CountTokensResponse{
		TotalTokens: core.EstimateTokens(contents),
	}, nil
}

// EmbedContent 生成 Embedding
//
// 实现 [genai.Generator] 接口。与兼容适配器契约一致：恒定不支持。
func (c *Client) EmbedContent(_ context.Context, _ []genai.Content) (*genai.EmbedResponse, error) {
	return nil, genai.NewUnsupportedError("embedContent")
}

// Close 关闭客户端（空操作）
func (c *Client) Close() error {
	return nil
}

// ═══════════════════════════════════════════════════════════════════════════
// 调用记录
// ═══════════════════════════════════════════════════════════════════════════

// Calls 返回所有调用记录的副本
func (c *Client) Calls() []CallRecord {
	c.mu.RLock()
	defer c.mu.RUnlock()
	calls := make([]CallRecord, len(c.calls))
	copy(calls, c.calls)
	return calls
}

// CallCount 返回调用次数
func (c *Client) CallCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.counter
}

// Reset 清空调用记录并重置响应队列
func (c *Client) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = c.calls[:0]
	c.counter = 0
	c.respIdx = 0
}

// ═══════════════════════════════════════════════════════════════════════════
// 内部方法
// ═══════════════════════════════════════════════════════════════════════════

// next 记录调用并取出下一个响应文本
func (c *Client) next(contents []genai.Content, cfg *genai.GenerationConfig, stream bool) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.calls = append(c.calls, CallRecord{
		Contents: contents,
		Config:   cfg,
		Stream:   stream,
		Time:     time.Now(),
	})
	c.counter++

	if c.err != nil {
		return "", c.err
	}

	// 优先使用动态响应函数
	if c.respFunc != nil {
		return c.respFunc(contents, c.counter), nil
	}

	// 其次使用响应队列
	if len(c.responses) > 0 {
		resp := c.responses[c.respIdx%len(c.responses)]
		c.respIdx++
		return resp, nil
	}

	return c.response, nil
}

// wait 应用配置的响应延迟，同时响应 ctx 取消
func (c *Client) wait(ctx context.Context) error {
	if c.delay <= 0 {
		return nil
	}
	select {
	case <-time.After(c.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// splitChunks 按 rune 把文本切成固定大小的片段
//
// 空文本返回单个空片段，保证序列至少产出一个事件。
func splitChunks(text string, size int) []string {
	runes := []rune(text)
	if len(runes) == 0 {
		return []string{""}
	}

	var chunks []string
	for i := 0; i < len(runes); i += size {
		end := i + size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[i:end]))
	}
	return chunks
}

// 确保 Client 实现了 Generator 接口
var _ genai.Generator = (*Client)(nil)
