package genai

import "context"

// ═══════════════════════════════════════════════════════════════════════════
// Generator 接口
// ═══════════════════════════════════════════════════════════════════════════

// Generator 内容生成接口
type Generator interface {
	// GenerateContent 同步生成，等待完整响应
	GenerateContent(ctx context.Context, contents []Content, cfg *GenerationConfig) (*Response, error)

	// GenerateContentStream 流式生成
	//
	// 返回一个 channel，逐事件接收规范化响应。channel 在流正常结束
	// （[DONE] 哨兵或传输 EOF）或致命错误后关闭；致命错误作为最后一个
	// 事件的 Err 字段送出，之前已送出的事件仍然有效。
	//
	// 提前放弃消费时必须取消 ctx，以释放底层网络流。
	GenerateContentStream(ctx context.Context, contents []Content, cfg *GenerationConfig) (<-chan *StreamEvent, error)

	// CountTokens 估算 Token 数量
	//
	// 兼容适配器使用字符数启发式（ceil(字符数/4)），不是真实分词器，
	// 结果仅作近似参考。
	CountTokens(ctx context.Context, contents []Content) (*CountTokensResponse, error)

	// EmbedContent 生成 Embedding
	//
	// 兼容适配器不支持此操作，恒定返回 [UnsupportedError]。
	EmbedContent(ctx context.Context, contents []Content) (*EmbedResponse, error)

	// Close 关闭连接
	Close() error
}

// ═══════════════════════════════════════════════════════════════════════════
// 生成配置
// ═══════════════════════════════════════════════════════════════════════════

// GenerationConfig 单次生成的采样配置
//
// 字段均为可选：nil 表示不随请求发送，由服务端应用自身默认值，
// 适配器从不代填默认值。
type GenerationConfig struct {
	Temperature     *float64 `json:"temperature,omitempty"`
	MaxOutputTokens *int     `json:"maxOutputTokens,omitempty"`
}

// ═══════════════════════════════════════════════════════════════════════════
// 流式事件与辅助响应
// ═══════════════════════════════════════════════════════════════════════════

// StreamEvent 流式生成事件
//
// Response 与 Err 互斥：正常事件携带一个独立的响应视图（事件之间
// 从不复用），致命错误事件携带 Err 且是序列的最后一个事件。
type StreamEvent struct {
	Response *Response `json:"response,omitempty"`
	Err      error     `json:"-"`
}

// CountTokensResponse Token 估算结果
type CountTokensResponse struct {
	TotalTokens int `json:"total_tokens"`
}

// EmbedResponse Embedding 结果
//
// 仅为满足接口契约而定义；兼容适配器从不产生该值。
type EmbedResponse struct {
	Values []float64 `json:"values,omitempty"`
}
