package genai

import "strings"

// ═══════════════════════════════════════════════════════════════════════════
// 角色定义
// ═══════════════════════════════════════════════════════════════════════════

// Role 内容角色
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// ═══════════════════════════════════════════════════════════════════════════
// 结构化内容
// ═══════════════════════════════════════════════════════════════════════════

// Part 内容片段
//
// 目标协议只承载文本，因此当前仅有 Text 字段。Text 为空的 Part 视为
// 零长度贡献，不是错误。
type Part struct {
	Text string `json:"text,omitempty"`
}

// Content 结构化对话内容
//
// 由角色和有序的 Part 列表组成。适配器只读取 Content，构造后不修改。
type Content struct {
	Role  Role   `json:"role"`
	Parts []Part `json:"parts,omitempty"`
}

// JoinedText 按顺序拼接所有 Part 的文本（无分隔符）
func (c Content) JoinedText() string {
	var sb strings.Builder
	for _, p := range c.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String()
}

// ═══════════════════════════════════════════════════════════════════════════
// 构造辅助函数
// ═══════════════════════════════════════════════════════════════════════════

// Text 将裸字符串包装为单条 user 内容
//
// 对应"调用方直接传入原始文本"的便捷用法：等价于一条 user 角色、
// 单个文本 Part 的 Content。
func Text(s string) []Content {
	return []Content{NewUserContent(s)}
}

// NewUserContent 创建 user 角色的文本内容
func NewUserContent(texts ...string) Content {
	return newContent(RoleUser, texts)
}

// NewModelContent 创建 model 角色的文本内容
func NewModelContent(texts ...string) Content {
	return newContent(RoleModel, texts)
}

func newContent(role Role, texts []string) Content {
	parts := make([]Part, 0, len(texts))
	for _, t := range texts {
		parts = append(parts, Part{Text: t})
	}
	return Content{Role: role, Parts: parts}
}
