package core

import (
	"unicode/utf8"

	"github.com/lwmacct/260828-go-pkg-genai/pkg/genai"
)

// ═══════════════════════════════════════════════════════════════════════════
// Token 估算
// ═══════════════════════════════════════════════════════════════════════════

// EstimateTokens 估算内容的 Token 数量
//
// 启发式近似：拼接所有条目所有 Part 的文本（无分隔符、无角色标记），
// 返回 ceil(字符数/4)。不是真实分词器，结果从不保证与服务端实际计数
// 一致。确定性且无副作用。
func EstimateTokens(contents []genai.Content) int {
	var chars int
	for _, content := range contents {
		for _, part := range content.Parts {
			chars += utf8.RuneCountInString(part.Text)
		}
	}
	return (chars + 3) / 4
}
