package genai

import "iter"

// ═══════════════════════════════════════════════════════════════════════════
// 规范化响应视图
// ═══════════════════════════════════════════════════════════════════════════

// Response 规范化的只读响应视图
//
// 在构造时一次性完成归一化（非流式完整响应和流式增量共用同一形状），
// 构造后不再修改。流式路径上每个事件都拥有独立的 Response，从不跨
// 事件复用。
//
// 目标协议不承载 functionCalls、executableCode、codeExecutionResult
// 和安全评级，对应访问器恒为空/中性值。
type Response struct {
	Candidates     []Candidate    `json:"candidates"`
	PromptFeedback PromptFeedback `json:"prompt_feedback"`
}

// Candidate 候选结果
//
// 每个候选的 Content.Parts 恰好包含一个文本 Part（消息内容作为单个
// Part 还原），FinishReason 原样透传，CitationSources 恒为空。
type Candidate struct {
	Content         Content          `json:"content"`
	Index           int              `json:"index"`
	FinishReason    string           `json:"finish_reason,omitempty"`
	CitationSources []CitationSource `json:"citation_sources,omitempty"`
}

// CitationSource 引用来源（目标协议不提供，恒为空）
type CitationSource struct {
	StartIndex int    `json:"start_index,omitempty"`
	EndIndex   int    `json:"end_index,omitempty"`
	URI        string `json:"uri,omitempty"`
}

// PromptFeedback 提示反馈（恒为中性值）
type PromptFeedback struct {
	BlockReason   string         `json:"block_reason,omitempty"`
	SafetyRatings []SafetyRating `json:"safety_ratings,omitempty"`
}

// SafetyRating 安全评级（目标协议不提供，列表恒为空）
type SafetyRating struct {
	Category    string `json:"category"`
	Probability string `json:"probability"`
}

// ═══════════════════════════════════════════════════════════════════════════
// 构造
// ═══════════════════════════════════════════════════════════════════════════

// NewResponse 从派生的候选列表构造响应视图
//
// PromptFeedback 固定为中性值：无屏蔽原因、空安全评级。
func NewResponse(candidates []Candidate) *Response {
	return &Response{
		Candidates:     candidates,
		PromptFeedback: PromptFeedback{},
	}
}

// NewCandidate 从单条消息文本派生候选
//
// 角色固定为 model，文本作为唯一的 Part，finishReason 原样透传。
func NewCandidate(index int, text, finishReason string) Candidate {
	return Candidate{
		Content: Content{
			Role:  RoleModel,
			Parts: []Part{{Text: text}},
		},
		Index:        index,
		FinishReason: finishReason,
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// 只读访问器
// ═══════════════════════════════════════════════════════════════════════════

// Text 返回第一个候选的文本内容
//
// 没有候选时返回空字符串。调用方应仅在至少存在一个候选时读取文本。
func (r *Response) Text() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	return r.Candidates[0].Content.JoinedText()
}

// FunctionCalls 返回函数调用列表
//
// 目标协议不承载函数调用，恒为 nil。
func (r *Response) FunctionCalls() []FunctionCall {
	return nil
}

// ExecutableCode 返回可执行代码（目标协议不承载，恒为空字符串）
func (r *Response) ExecutableCode() string {
	return ""
}

// CodeExecutionResult 返回代码执行结果（目标协议不承载，恒为空字符串）
func (r *Response) CodeExecutionResult() string {
	return ""
}

// Seq 单元素迭代
//
// 抽象接口要求响应对象可作为恰好产出自身一次的序列被迭代。
func (r *Response) Seq() iter.Seq[*Response] {
	return func(yield func(*Response) bool) {
		yield(r)
	}
}

// FunctionCall 函数调用（目标协议不承载，仅为接口形状而定义）
type FunctionCall struct {
	Name string         `json:"name"`
	Args map[string]any `json:"args,omitempty"`
}
