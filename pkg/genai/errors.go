package genai

import (
	"errors"
	"fmt"
)

// ═══════════════════════════════════════════════════════════════════════════
// 错误类型
// ═══════════════════════════════════════════════════════════════════════════

// ErrorType 错误类型
type ErrorType string

const (
	// ErrTypeConfig 配置错误
	ErrTypeConfig ErrorType = "config_error"

	// ErrTypeRequest 请求错误（序列化、构建等）
	ErrTypeRequest ErrorType = "request_error"

	// ErrTypeHTTP HTTP 层错误（网络、超时等）
	ErrTypeHTTP ErrorType = "http_error"

	// ErrTypeAPI API 业务错误（非 2xx 状态）
	ErrTypeAPI ErrorType = "api_error"

	// ErrTypeDecode 响应解析错误（非流式响应体或流式事件负载）
	ErrTypeDecode ErrorType = "decode_error"

	// ErrTypeStream 流式错误（如成功状态但无响应体）
	ErrTypeStream ErrorType = "stream_error"

	// ErrTypeUnsupported 不支持的操作
	ErrTypeUnsupported ErrorType = "unsupported_error"
)

// ═══════════════════════════════════════════════════════════════════════════
// 基础错误
// ═══════════════════════════════════════════════════════════════════════════

// BaseError 基础错误实现
type BaseError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *BaseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *BaseError) Unwrap() error {
	return e.Err
}

// ═══════════════════════════════════════════════════════════════════════════
// 配置错误
// ═══════════════════════════════════════════════════════════════════════════

// ConfigError 配置错误
type ConfigError struct {
	*BaseError
}

// NewConfigError 创建配置错误
func NewConfigError(message string, err error) *ConfigError {
	return &ConfigError{
		BaseError: &BaseError{
			Type:    ErrTypeConfig,
			Message: message,
			Err:     err,
		},
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// 请求错误
// ═══════════════════════════════════════════════════════════════════════════

// RequestError 请求错误
type RequestError struct {
	*BaseError

	Stage string // "marshal", "build", etc.
}

// NewRequestError 创建请求错误
func NewRequestError(stage string, err error) *RequestError {
	return &RequestError{
		BaseError: &BaseError{
			Type:    ErrTypeRequest,
			Message: fmt.Sprintf("failed to %s request", stage),
			Err:     err,
		},
		Stage: stage,
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// HTTP 错误
// ═══════════════════════════════════════════════════════════════════════════

// HTTPError HTTP 层错误
type HTTPError struct {
	*BaseError
}

// NewHTTPError 创建 HTTP 错误
func NewHTTPError(message string, err error) *HTTPError {
	return &HTTPError{
		BaseError: &BaseError{
			Type:    ErrTypeHTTP,
			Message: message,
			Err:     err,
		},
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// API 错误
// ═══════════════════════════════════════════════════════════════════════════

// APIError API 业务错误
//
// 对应非 2xx HTTP 状态。响应体在失败前完整读出并携带，便于调用方
// 定位服务端报错。对此类错误适配器从不重试。
type APIError struct {
	*BaseError

	StatusCode int
	StatusText string
	Body       string
}

// NewAPIError 创建 API 错误
func NewAPIError(statusCode int, statusText, body string) *APIError {
	return &APIError{
		BaseError: &BaseError{
			Type:    ErrTypeAPI,
			Message: fmt.Sprintf("API returned error status %d %s: %s", statusCode, statusText, body),
		},
		StatusCode: statusCode,
		StatusText: statusText,
		Body:       body,
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// 响应解析错误
// ═══════════════════════════════════════════════════════════════════════════

// DecodeError 响应解析错误
//
// 非流式响应体或流式事件负载无法解码时产生。对整个调用（流式为整个
// 序列的剩余部分）是致命的；流式路径上此前已送出的事件不被撤回。
type DecodeError struct {
	*BaseError

	Field string // 出错的字段
}

// NewDecodeError 创建解析错误
func NewDecodeError(field string, err error) *DecodeError {
	return &DecodeError{
		BaseError: &BaseError{
			Type:    ErrTypeDecode,
			Message: fmt.Sprintf("failed to decode response field '%s'", field),
			Err:     err,
		},
		Field: field,
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// 流式错误
// ═══════════════════════════════════════════════════════════════════════════

// StreamError 流式错误
type StreamError struct {
	*BaseError
}

// NewStreamError 创建流式错误
func NewStreamError(message string, err error) *StreamError {
	return &StreamError{
		BaseError: &BaseError{
			Type:    ErrTypeStream,
			Message: message,
			Err:     err,
		},
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// 不支持的操作
// ═══════════════════════════════════════════════════════════════════════════

// UnsupportedError 不支持的操作
//
// 设计如此而非暂时性故障：兼容适配器对 EmbedContent 恒定返回此错误。
type UnsupportedError struct {
	*BaseError

	Operation string
}

// NewUnsupportedError 创建不支持操作错误
func NewUnsupportedError(operation string) *UnsupportedError {
	return &UnsupportedError{
		BaseError: &BaseError{
			Type:    ErrTypeUnsupported,
			Message: fmt.Sprintf("operation '%s' is not supported", operation),
		},
		Operation: operation,
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// 错误匹配函数（支持 errors.Is/As）
// ═══════════════════════════════════════════════════════════════════════════

// IsConfigError 检查是否为配置错误
func IsConfigError(err error) bool {
	var e *ConfigError
	return errors.As(err, &e)
}

// IsRequestError 检查是否为请求错误
func IsRequestError(err error) bool {
	var e *RequestError
	return errors.As(err, &e)
}

// IsHTTPError 检查是否为 HTTP 错误
func IsHTTPError(err error) bool {
	var e *HTTPError
	return errors.As(err, &e)
}

// IsAPIError 检查是否为 API 错误
func IsAPIError(err error) bool {
	var e *APIError
	return errors.As(err, &e)
}

// IsDecodeError 检查是否为响应解析错误
func IsDecodeError(err error) bool {
	var e *DecodeError
	return errors.As(err, &e)
}

// IsStreamError 检查是否为流式错误
func IsStreamError(err error) bool {
	var e *StreamError
	return errors.As(err, &e)
}

// IsUnsupportedError 检查是否为不支持操作错误
func IsUnsupportedError(err error) bool {
	var e *UnsupportedError
	return errors.As(err, &e)
}

// GetAPIError 提取 APIError（如果存在）
func GetAPIError(err error) (*APIError, bool) {
	var e *APIError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// GetStatusCode 提取 HTTP 状态码（如果是 API 错误）
func GetStatusCode(err error) int {
	if e, ok := GetAPIError(err); ok {
		return e.StatusCode
	}
	return 0
}
