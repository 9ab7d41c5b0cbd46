package core

import (
	"bufio"
	"bytes"
	"io"
	"strings"
)

// ═══════════════════════════════════════════════════════════════════════════
// SSE 事件扫描器
// ═══════════════════════════════════════════════════════════════════════════

// SSE 协议字面量
const (
	// DataPrefix SSE 数据行前缀
	DataPrefix = "data: "

	// DoneSentinel 流正常结束的哨兵值（data: [DONE]）
	DoneSentinel = "[DONE]"
)

// EventScanner SSE 事件扫描器
//
// 以双换行（"\n\n"）为事件边界，将字节流切分为完整事件。内部维护
// 跨读取的持久缓冲区：一次网络读取在事件中间结束时，不完整的尾段
// 保留在缓冲区中等待后续字节，不会被当作截断事件误解析。
//
// 扫描是拉取式的：每次 Scan 最多推进一个事件，消费方驱动节奏。
//
// 使用示例：
//
//	sc := core.NewEventScanner(resp.RawBody())
//	for sc.Scan() {
//	    data, ok := core.DataPayload(sc.Event())
//	    if !ok {
//	        continue // keep-alive 或注释行
//	    }
//	    if core.IsDone(data) {
//	        break
//	    }
//	    // 解析 data 为 JSON ...
//	}
type EventScanner struct {
	scanner *bufio.Scanner
}

// NewEventScanner 创建 SSE 事件扫描器
func NewEventScanner(r io.Reader) *EventScanner {
	scanner := bufio.NewScanner(r)
	// 单个事件可能承载较大的 JSON 负载，放宽默认的 64KB 上限
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	scanner.Split(scanEvents)
	return &EventScanner{scanner: scanner}
}

// Scan 推进到下一个事件
//
// 返回 false 表示流结束或底层读取出错（通过 Err 区分）。
func (s *EventScanner) Scan() bool {
	return s.scanner.Scan()
}

// Event 返回当前事件内容（不含边界分隔符）
func (s *EventScanner) Event() string {
	return s.scanner.Text()
}

// Err 返回扫描过程中遇到的底层读取错误（EOF 不算错误）
func (s *EventScanner) Err() error {
	return s.scanner.Err()
}

// scanEvents bufio.SplitFunc：以 "\n\n" 为事件边界
//
// 流在未遇到边界时结束，剩余字节作为最后一个事件返回。
func scanEvents(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.Index(data, []byte("\n\n")); i >= 0 {
		return i + 2, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	// 事件尚不完整，等待更多字节
	return 0, nil, nil
}

// ═══════════════════════════════════════════════════════════════════════════
// 事件内容辅助函数
// ═══════════════════════════════════════════════════════════════════════════

// DataPayload 提取事件的数据负载
//
// 事件必须以 "data: " 前缀开头；不带前缀的段（keep-alive、注释行、
// 空段）返回 ok=false，由调用方忽略，不是错误。
func DataPayload(event string) (data string, ok bool) {
	return strings.CutPrefix(event, DataPrefix)
}

// IsDone 检查数据负载是否为 [DONE] 终止哨兵
func IsDone(data string) bool {
	return strings.TrimSpace(data) == DoneSentinel
}
