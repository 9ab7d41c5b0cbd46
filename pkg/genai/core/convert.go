package core

import (
	"github.com/lwmacct/260828-go-pkg-genai/pkg/genai"
)

// ═══════════════════════════════════════════════════════════════════════════
// 消息转换
// ═══════════════════════════════════════════════════════════════════════════

// 目标协议的消息角色
const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

// ChatMessage 目标协议的扁平消息单元
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ToChatMessages 将结构化内容转换为扁平的 role/text 消息列表
//
// 转换规则：
//   - 角色映射：model → assistant，其余一律 → user
//   - 文本：按顺序拼接该条内容所有 Part 的文本（无分隔符），
//     缺失的文本按零长度处理，不是错误
//   - 不合并相邻同角色条目，输出与输入 1:1 保序
func ToChatMessages(contents []genai.Content) []ChatMessage {
	result := make([]ChatMessage, 0, len(contents))

	for _, content := range contents {
		role := ChatRoleUser
		if content.Role == genai.RoleModel {
			role = ChatRoleAssistant
		}

		result = append(result, ChatMessage{
			Role:    role,
			Content: content.JoinedText(),
		})
	}

	return result
}
