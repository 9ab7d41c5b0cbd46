package openai

import (
	"context"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwmacct/260828-go-pkg-genai/pkg/genai"
)

// ═══════════════════════════════════════════════════════════════════════════
// 客户端创建测试
// ═══════════════════════════════════════════════════════════════════════════

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{
			name:    "nil config",
			config:  nil,
			wantErr: true,
		},
		{
			name:    "empty config uses defaults",
			config:  &Config{},
			wantErr: false,
		},
		{
			name: "local server without API key",
			config: &Config{
				BaseURL: "http://localhost:11434/v1",
				Model:   "llama3.2",
			},
			wantErr: false,
		},
		{
			name: "with timeout",
			config: &Config{
				APIKey:  "test-key",
				Timeout: 60 * time.Second,
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := New(tt.config)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, genai.IsConfigError(err))
				return
			}
			require.NoError(t, err)
			require.NotNil(t, client)
		})
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// 请求构建测试
// ═══════════════════════════════════════════════════════════════════════════

func TestClient_buildRequest(t *testing.T) {
	client, err := New(&Config{APIKey: "test-key", Model: "qwen2.5"})
	require.NoError(t, err)

	t.Run("未设置的可选字段不发送", func(t *testing.T) {
		req := client.buildRequest(genai.Text("hi"), nil, false)

		assert.Equal(t, "qwen2.5", req.Model)
		assert.False(t, req.Stream)
		assert.Nil(t, req.Temperature)
		assert.Nil(t, req.MaxTokens)

		data, err := json.Marshal(req)
		require.NoError(t, err)
		assert.NotContains(t, string(data), "temperature")
		assert.NotContains(t, string(data), "max_tokens")
	})

	t.Run("已设置的可选字段透传", func(t *testing.T) {
		temp := 0.0 // 零值也是显式设置，必须发送
		maxTokens := 256
		req := client.buildRequest(genai.Text("hi"), &genai.GenerationConfig{
			Temperature:     &temp,
			MaxOutputTokens: &maxTokens,
		}, true)

		require.NotNil(t, req.Temperature)
		assert.Equal(t, 0.0, *req.Temperature)
		require.NotNil(t, req.MaxTokens)
		assert.Equal(t, 256, *req.MaxTokens)
		assert.True(t, req.Stream)

		data, err := json.Marshal(req)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"temperature":0`)
		assert.Contains(t, string(data), `"max_tokens":256`)
	})

	t.Run("消息来自内容转换", func(t *testing.T) {
		req := client.buildRequest([]genai.Content{
			genai.NewUserContent("question"),
			genai.NewModelContent("answer"),
		}, nil, false)

		require.Len(t, req.Messages, 2)
		assert.Equal(t, "user", req.Messages[0].Role)
		assert.Equal(t, "assistant", req.Messages[1].Role)
	})
}

// ═══════════════════════════════════════════════════════════════════════════
// 同步生成测试
// ═══════════════════════════════════════════════════════════════════════════

func TestClient_GenerateContent(t *testing.T) {
	t.Run("成功响应规范化为视图", func(t *testing.T) {
		var gotPath, gotAuth string
		var gotBody map[string]any

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotAuth = r.Header.Get("Authorization")
			body, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(body, &gotBody)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"choices":[{"index":0,"message":{"content":"hi"},"finish_reason":"stop"}]}`))
		}))
		defer server.Close()

		client, err := New(&Config{APIKey: "sk-test", BaseURL: server.URL, Model: "test-model"})
		require.NoError(t, err)

		resp, err := client.GenerateContent(context.Background(), genai.Text("Hello"), nil)
		require.NoError(t, err)

		// 请求形状
		assert.Equal(t, "/chat/completions", gotPath)
		assert.Equal(t, "Bearer sk-test", gotAuth)
		assert.Equal(t, "test-model", gotBody["model"])
		assert.Equal(t, false, gotBody["stream"])

		// 响应视图
		assert.Equal(t, "hi", resp.Text())
		require.Len(t, resp.Candidates, 1)
		assert.Equal(t, "stop", resp.Candidates[0].FinishReason)
		assert.Equal(t, genai.RoleModel, resp.Candidates[0].Content.Role)
		require.Len(t, resp.Candidates[0].Content.Parts, 1)
		assert.Equal(t, "hi", resp.Candidates[0].Content.Parts[0].Text)
	})

	t.Run("候选数量等于 choices 数量", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"choices":[` +
				`{"index":0,"message":{"content":"a"},"finish_reason":"stop"},` +
				`{"index":1,"message":{"content":"b"},"finish_reason":"length"}]}`))
		}))
		defer server.Close()

		client, err := New(&Config{BaseURL: server.URL})
		require.NoError(t, err)

		resp, err := client.GenerateContent(context.Background(), genai.Text("Hello"), nil)
		require.NoError(t, err)

		require.Len(t, resp.Candidates, 2)
		assert.Equal(t, "a", resp.Candidates[0].Content.Parts[0].Text)
		assert.Equal(t, 1, resp.Candidates[1].Index)
		assert.Equal(t, "length", resp.Candidates[1].FinishReason)
	})

	t.Run("非 2xx 状态返回 APIError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte("boom"))
		}))
		defer server.Close()

		client, err := New(&Config{BaseURL: server.URL})
		require.NoError(t, err)

		_, err = client.GenerateContent(context.Background(), genai.Text("Hello"), nil)
		require.Error(t, err)

		apiErr, ok := genai.GetAPIError(err)
		require.True(t, ok)
		assert.Equal(t, 500, apiErr.StatusCode)
		assert.Equal(t, "boom", apiErr.Body)
		assert.Contains(t, err.Error(), "500")
		assert.Contains(t, err.Error(), "boom")
	})

	t.Run("无法解码的响应体返回 DecodeError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("not json"))
		}))
		defer server.Close()

		client, err := New(&Config{BaseURL: server.URL})
		require.NoError(t, err)

		_, err = client.GenerateContent(context.Background(), genai.Text("Hello"), nil)
		require.Error(t, err)
		assert.True(t, genai.IsDecodeError(err))
	})

	t.Run("缺失 choices 字段返回 DecodeError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"object":"chat.completion"}`))
		}))
		defer server.Close()

		client, err := New(&Config{BaseURL: server.URL})
		require.NoError(t, err)

		_, err = client.GenerateContent(context.Background(), genai.Text("Hello"), nil)
		require.Error(t, err)
		assert.True(t, genai.IsDecodeError(err))
	})

	t.Run("无法序列化的请求返回 RequestError", func(t *testing.T) {
		client, err := New(&Config{APIKey: "test-key"})
		require.NoError(t, err)

		temp := math.Inf(1) // JSON 无法表示无穷大
		_, err = client.GenerateContent(context.Background(), genai.Text("Hello"), &genai.GenerationConfig{
			Temperature: &temp,
		})
		require.Error(t, err)
		assert.True(t, genai.IsRequestError(err))
	})

	t.Run("消息内容缺失按空字符串处理", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"choices":[{"index":0,"message":{},"finish_reason":"stop"}]}`))
		}))
		defer server.Close()

		client, err := New(&Config{BaseURL: server.URL})
		require.NoError(t, err)

		resp, err := client.GenerateContent(context.Background(), genai.Text("Hello"), nil)
		require.NoError(t, err)
		assert.Equal(t, "", resp.Text())
	})
}

// ═══════════════════════════════════════════════════════════════════════════
// CountTokens / EmbedContent / Close 测试
// ═══════════════════════════════════════════════════════════════════════════

func TestClient_CountTokens(t *testing.T) {
	client, err := New(&Config{APIKey: "test-key"})
	require.NoError(t, err)

	resp, err := client.CountTokens(context.Background(), genai.Text("abcde"))
	require.NoError(t, err)
	assert.Equal(t, 2, resp.TotalTokens)

	empty, err := client.CountTokens(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.TotalTokens)
}

func TestClient_EmbedContent(t *testing.T) {
	client, err := New(&Config{APIKey: "test-key"})
	require.NoError(t, err)

	// 对任意输入恒定失败，同步返回，不发起网络请求
	for _, contents := range [][]genai.Content{nil, genai.Text("anything")} {
		_, err := client.EmbedContent(context.Background(), contents)
		require.Error(t, err)
		assert.True(t, genai.IsUnsupportedError(err))
	}
}

func TestClient_Close(t *testing.T) {
	client, err := New(&Config{APIKey: "test-key"})
	require.NoError(t, err)
	assert.NoError(t, client.Close())
}
