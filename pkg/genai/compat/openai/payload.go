package openai

import (
	"encoding/json"
	"errors"

	"github.com/lwmacct/260828-go-pkg-genai/pkg/genai"
	"github.com/lwmacct/260828-go-pkg-genai/pkg/genai/core"
)

// ═══════════════════════════════════════════════════════════════════════════
// 服务端负载
// ═══════════════════════════════════════════════════════════════════════════

// chatRequest chat-completions 请求体
type chatRequest struct {
	Model       string             `json:"model"`
	Messages    []core.ChatMessage `json:"messages"`
	Temperature *float64           `json:"temperature,omitempty"`
	MaxTokens   *int               `json:"max_tokens,omitempty"`
	Stream      bool               `json:"stream"`
}

// chatCompletion chat-completions 响应负载
//
// 非流式完整响应和流式增量共用此形状：choices 必有，区别仅在每个
// choice 携带 message 还是 delta。
type chatCompletion struct {
	Choices []chatChoice `json:"choices"`
}

// chatChoice 单个候选
type chatChoice struct {
	Index        int             `json:"index"`
	Message      *chatChoiceBody `json:"message,omitempty"`
	Delta        *chatChoiceBody `json:"delta,omitempty"`
	FinishReason string          `json:"finish_reason,omitempty"`
}

// chatChoiceBody 消息体（完整消息或增量片段）
type chatChoiceBody struct {
	Content string `json:"content"`
}

var errMissingChoices = errors.New("missing required field")

// decodeCompletion 在边界处解码并校验响应负载
//
// JSON 解析失败或缺失 choices 字段都转换为 [genai.DecodeError]，
// 不向下游静默传播空值。choices 为空数组是合法的（候选列表为空）。
func decodeCompletion(data []byte) (*chatCompletion, error) {
	var payload chatCompletion
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, genai.NewDecodeError("body", err)
	}
	if payload.Choices == nil {
		return nil, genai.NewDecodeError("choices", errMissingChoices)
	}
	return &payload, nil
}

// ═══════════════════════════════════════════════════════════════════════════
// 响应视图构造
// ═══════════════════════════════════════════════════════════════════════════

// toResponse 将负载归一化为规范响应视图
//
// 每个 choice 派生一个候选：角色 model，消息内容作为唯一文本 Part
// （缺失按空字符串处理），finishReason 原样透传，引用来源恒为空。
// 流式增量在此处归一化为消息形状（delta 当作 message 读取）。
func (p *chatCompletion) toResponse() *genai.Response {
	candidates := make([]genai.Candidate, 0, len(p.Choices))

	for _, choice := range p.Choices {
		body := choice.Message
		if body == nil {
			body = choice.Delta
		}

		var text string
		if body != nil {
			text = body.Content
		}

		candidates = append(candidates, genai.NewCandidate(choice.Index, text, choice.FinishReason))
	}

	return genai.NewResponse(candidates)
}
