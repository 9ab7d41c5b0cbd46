// Package mock 提供本地 Mock 的 [genai.Generator] 实现
//
// 用于测试和开发：无需网络和 API Key，返回预设或脚本化的响应，
// 并记录每次调用的入参，便于断言。
//
// 基本用法：
//
//	g := mock.New(mock.WithResponse("Hello!"))
//	resp, _ := g.GenerateContent(ctx, genai.Text("Hi"), nil)
//
// 响应队列与 YAML 配置：
//
//	g := mock.New(mock.WithResponses("first", "second"))
//	g := mock.New(mock.WithConfigFile("testdata/replies.yaml"))
//
// 流式模式把响应文本切成固定大小的增量片段逐个送出，
// 行为上与兼容适配器的事件序列一致（有限、不可重放）。
package mock
