package openai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/lwmacct/260828-go-pkg-genai/pkg/genai"
	"github.com/lwmacct/260828-go-pkg-genai/pkg/genai/core"
)

// ═══════════════════════════════════════════════════════════════════════════
// 流式生成
// ═══════════════════════════════════════════════════════════════════════════

// GenerateContentStream 流式生成
//
// 实现 [genai.Generator] 接口。请求构建与同步路径一致（stream: true），
// 非 2xx 状态的失败策略也一致：响应体完整读出后随 [genai.APIError]
// 返回。成功状态但无可读响应体时返回 [genai.StreamError]。
//
// 返回的 channel 是单生产者/单消费者的拉取管道：缓冲为 1，消费方
// 驱动节奏，不会无界缓冲。序列有限且不可重放——每次调用都打开新的
// 网络流。提前放弃消费时必须取消 ctx，底层网络流在解码协程退出的
// 任何路径上都会被释放。
func (c *Client) GenerateContentStream(ctx context.Context, contents []genai.Content, cfg *genai.GenerationConfig) (<-chan *genai.StreamEvent, error) {
	body := c.buildRequest(contents, cfg, true)
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return nil, genai.NewRequestError("marshal", err)
	}

	resp, err := c.resty.R().
		SetContext(ctx).
		SetBody(bodyBytes).
		SetDoNotParseResponse(true).
		Post("/chat/completions")
	if err != nil {
		return nil, genai.NewHTTPError("request failed", err)
	}

	if resp.StatusCode() >= 400 {
		return nil, genai.NewAPIError(resp.StatusCode(), http.StatusText(resp.StatusCode()), drainBody(resp.RawBody()))
	}

	raw := resp.RawBody()
	if raw == nil {
		return nil, genai.NewStreamError("response body is missing", nil)
	}

	events := make(chan *genai.StreamEvent, 1)
	go decodeStream(ctx, raw, events)
	return events, nil
}

// decodeStream 将 SSE 字节流重放为规范化响应事件序列
//
// 解码规则：
//   - 以 "\n\n" 为事件边界，跨读取维护持久缓冲区，边界恰好落在
//     网络分块边缘时尾段不会被截断误判
//   - 不带 "data: " 前缀的段忽略（keep-alive、注释行），不是错误
//   - [DONE] 哨兵使序列正常终止
//   - 事件负载 JSON 解析失败对序列剩余部分是致命的：错误作为最后
//     一个事件送出，此前已送出的事件不被撤回
//   - 传输在未观察到 [DONE] 时 EOF：序列正常结束，不视为错误
//
// 任何退出路径都关闭响应体并关闭 channel。
func decodeStream(ctx context.Context, body io.ReadCloser, events chan<- *genai.StreamEvent) {
	defer func() { _ = body.Close() }()
	defer close(events)

	sc := core.NewEventScanner(body)
	for sc.Scan() {
		data, ok := core.DataPayload(sc.Event())
		if !ok {
			continue
		}

		if core.IsDone(data) {
			return
		}

		payload, err := decodeCompletion([]byte(data))
		if err != nil {
			send(ctx, events, &genai.StreamEvent{Err: err})
			return
		}

		if !send(ctx, events, &genai.StreamEvent{Response: payload.toResponse()}) {
			return
		}
	}

	if err := sc.Err(); err != nil {
		send(ctx, events, &genai.StreamEvent{Err: genai.NewStreamError("read stream", err)})
	}
}

// send 向消费方投递事件，同时响应 ctx 取消
//
// 返回 false 表示消费方已放弃（ctx 取消），解码协程应立即退出。
func send(ctx context.Context, events chan<- *genai.StreamEvent, ev *genai.StreamEvent) bool {
	select {
	case events <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}

// drainBody 完整读出并关闭原始响应体（用于失败前收集错误详情）
func drainBody(body io.ReadCloser) string {
	if body == nil {
		return ""
	}
	defer func() { _ = body.Close() }()

	b, err := io.ReadAll(body)
	if err != nil {
		return ""
	}
	return string(b)
}
