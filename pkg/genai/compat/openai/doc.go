// Package openai 提供 OpenAI 兼容协议的 [genai.Generator] 实现
//
// 面向所有实现 OpenAI 风格 chat-completions HTTP API 的服务：本地推理
// 服务（Ollama、LM Studio、vLLM、llama.cpp）、代理和自托管端点。
//
// 核心工作是响应规范化与流式适配：在结构化多段内容模型和扁平
// 聊天消息列表之间转换，并把增量的 SSE token 流重放为一系列规范化
// 响应视图。请求构建、鉴权头、JSON 编码只是外围胶水。
//
// 有意的空缺（目标协议不承载）：安全评级、引用元数据、代码执行结果、
// 函数调用输出均保持空/中性默认值；EmbedContent 恒定不支持。
//
// 任何失败对当次调用都是终止性的：不重试、不退避、不吞错。
package openai
