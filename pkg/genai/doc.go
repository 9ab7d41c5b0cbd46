// Package genai 提供统一的内容生成（Content Generation）抽象层
//
// 本包定义了与内容生成服务交互所需的核心类型和接口，包括：
//   - [Generator]: 统一的内容生成调用抽象
//   - [Content]: 结构化多段对话内容
//   - [Response]: 规范化的只读响应视图
//   - [Config]: Backend 预设与环境变量探测
//
// 完整使用示例请参考 example_test.go。
//
// # 核心类型
//
// [Generator] 接口定义了内容生成服务的调用契约，支持同步和流式两种模式，
// 以及 Token 估算和 Embedding（兼容适配器不支持 Embedding）。
//
// [Content] 表示对话中的单条结构化内容，由角色和有序的 [Part] 列表组成。
//
// [Response] 是对服务端原始响应的规范化只读投影：candidates 派生自
// choices，文本取第一个候选，functionCalls/executableCode 等目标协议
// 不承载的字段恒为空。
//
// # 错误处理
//
// 所有错误都直接上抛给调用方，不吞没、不重试：
//   - [APIError]: 非 2xx HTTP 状态（携带状态码、状态文本、响应体）
//   - [DecodeError]: 响应体或流式事件 JSON 解析失败
//   - [StreamError]: 流式路径异常（如成功状态但无响应体）
//   - [UnsupportedError]: 不支持的操作（EmbedContent 恒定返回）
//
// # 环境变量
//
// 本包支持从环境变量自动探测配置：
//
// API Key（按优先级）:
//   - OPENAI_API_KEY
//   - GENAI_API_KEY
//   - LLM_API_KEY
//
// Base URL:
//   - OPENAI_BASE_URL
//   - OPENAI_API_BASE
//   - GENAI_BASE_URL
//
// Model:
//   - OPENAI_MODEL
//   - GENAI_MODEL
//   - MODEL
//
// # 实现
//
// 具体的 Generator 实现位于子包：
//   - [pkg/genai/compat/openai]: OpenAI 兼容协议实现（本地推理服务、代理等）
//   - [pkg/genai/mock]: 本地 Mock 实现（用于测试）
//
// 通过 [pkg/genai/compat] 的工厂函数可按 [Config] 统一创建。
//
// # 包文件组织
//
//   - generator.go: Generator 接口、GenerationConfig、流式事件
//   - content.go: Content、Part、构造辅助函数
//   - response.go: Response、Candidate、PromptFeedback
//   - errors.go: 错误类型体系
//   - config.go: Config、Backend 预设、环境变量探测
package genai
