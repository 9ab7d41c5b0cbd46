package mock_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwmacct/260828-go-pkg-genai/pkg/genai"
	"github.com/lwmacct/260828-go-pkg-genai/pkg/genai/mock"
)

// ═══════════════════════════════════════════════════════════════════════════
// 同步生成测试
// ═══════════════════════════════════════════════════════════════════════════

func TestClient_GenerateContent(t *testing.T) {
	t.Run("预设响应", func(t *testing.T) {
		client := mock.New(mock.WithResponse("pong"))

		resp, err := client.GenerateContent(context.Background(), genai.Text("ping"), nil)
		require.NoError(t, err)

		assert.Equal(t, "pong", resp.Text())
		require.Len(t, resp.Candidates, 1)
		assert.Equal(t, "stop", resp.Candidates[0].FinishReason)
	})

	t.Run("响应队列依次返回并循环", func(t *testing.T) {
		client := mock.New(mock.WithResponses("one", "two"))
		ctx := context.Background()

		for _, want := range []string{"one", "two", "one"} {
			resp, err := client.GenerateContent(ctx, genai.Text("q"), nil)
			require.NoError(t, err)
			assert.Equal(t, want, resp.Text())
		}
	})

	t.Run("动态响应函数", func(t *testing.T) {
		client := mock.New(mock.WithResponseFunc(func(contents []genai.Content, callCount int) string {
			return contents[0].JoinedText()
		}))

		resp, err := client.GenerateContent(context.Background(), genai.Text("echo me"), nil)
		require.NoError(t, err)
		assert.Equal(t, "echo me", resp.Text())
	})

	t.Run("模拟错误", func(t *testing.T) {
		boom := errors.New("boom")
		client := mock.New(mock.WithError(boom))

		_, err := client.GenerateContent(context.Background(), genai.Text("q"), nil)
		require.ErrorIs(t, err, boom)
	})
}

// ═══════════════════════════════════════════════════════════════════════════
// 流式生成测试
// ═══════════════════════════════════════════════════════════════════════════

func TestClient_GenerateContentStream(t *testing.T) {
	t.Run("文本切片为增量序列", func(t *testing.T) {
		client := mock.New(mock.WithResponse("Hello!"), mock.WithChunkSize(2))

		events, err := client.GenerateContentStream(context.Background(), genai.Text("hi"), nil)
		require.NoError(t, err)

		var got []string
		var lastFinish string
		for ev := range events {
			require.NoError(t, ev.Err)
			got = append(got, ev.Response.Text())
			lastFinish = ev.Response.Candidates[0].FinishReason
		}

		assert.Equal(t, []string{"He", "ll", "o!"}, got)
		assert.Equal(t, "stop", lastFinish)
	})

	t.Run("延迟流被消费方取消后序列关闭", func(t *testing.T) {
		client := mock.New(
			mock.WithResponse("Hello, world!"),
			mock.WithChunkSize(2),
			mock.WithDelay(10*time.Millisecond),
		)

		ctx, cancel := context.WithCancel(context.Background())
		events, err := client.GenerateContentStream(ctx, genai.Text("hi"), nil)
		require.NoError(t, err)

		// 消费第一个事件后放弃，与网络路径的放弃方式一致
		first := <-events
		require.NotNil(t, first)
		require.NoError(t, first.Err)
		cancel()

		// 生产协程必须退出并关闭 channel，剩余事件不再送出
		deadline := time.After(2 * time.Second)
		for {
			select {
			case ev, open := <-events:
				if !open {
					return
				}
				require.NoError(t, ev.Err)
			case <-deadline:
				t.Fatal("stream did not close after context cancellation")
			}
		}
	})

	t.Run("空响应至少产出一个事件", func(t *testing.T) {
		client := mock.New(mock.WithResponse(""))

		events, err := client.GenerateContentStream(context.Background(), genai.Text("hi"), nil)
		require.NoError(t, err)

		count := 0
		for ev := range events {
			require.NoError(t, ev.Err)
			count++
		}
		assert.Equal(t, 1, count)
	})
}

// ═══════════════════════════════════════════════════════════════════════════
// 其余接口与调用记录测试
// ═══════════════════════════════════════════════════════════════════════════

func TestClient_CountTokens(t *testing.T) {
	client := mock.New()

	resp, err := client.CountTokens(context.Background(), genai.Text("abcd"))
	require.NoError(t, err)
	assert.Equal(t, 1, resp.TotalTokens)
}

func TestClient_EmbedContent(t *testing.T) {
	client := mock.New()

	_, err := client.EmbedContent(context.Background(), genai.Text("x"))
	require.Error(t, err)
	assert.True(t, genai.IsUnsupportedError(err))
}

func TestClient_CallRecords(t *testing.T) {
	client := mock.New()
	ctx := context.Background()

	_, err := client.GenerateContent(ctx, genai.Text("first"), nil)
	require.NoError(t, err)
	_, err = client.GenerateContentStream(ctx, genai.Text("second"), nil)
	require.NoError(t, err)

	calls := client.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, "first", calls[0].Contents[0].JoinedText())
	assert.False(t, calls[0].Stream)
	assert.True(t, calls[1].Stream)
	assert.Equal(t, 2, client.CallCount())

	client.Reset()
	assert.Empty(t, client.Calls())
	assert.Equal(t, 0, client.CallCount())
}
