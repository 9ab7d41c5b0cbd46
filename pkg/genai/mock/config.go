package mock

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed examples/basic.yaml
var exampleConfigYAML []byte

// ═══════════════════════════════════════════════════════════════════════════
// 配置文件
// ═══════════════════════════════════════════════════════════════════════════

// Config 配置文件结构
type Config struct {
	// DefaultResponse 默认响应（响应队列为空时使用）
	DefaultResponse string `yaml:"default_response" json:"default_response"`

	// Responses 响应队列（依次返回，用完后循环）
	Responses []string `yaml:"responses" json:"responses"`

	// ChunkSize 流式增量片段大小（rune 数）
	ChunkSize int `yaml:"chunk_size" json:"chunk_size"`

	// Delay 响应延迟（如 "100ms", "1s"）
	Delay string `yaml:"delay" json:"delay"`

	// SimulateError 模拟错误消息
	SimulateError string `yaml:"simulate_error" json:"simulate_error"`
}

// LoadConfigFile 从文件加载配置
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	return LoadConfigFromBytes(data, ext)
}

// LoadConfigFromBytes 从字节数据加载配置
func LoadConfigFromBytes(data []byte, format string) (*Config, error) {
	cfg := &Config{}

	// 规范化格式字符串（支持 ".yaml" 或 "yaml"）
	format = strings.TrimPrefix(strings.ToLower(format), ".")

	switch format {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse YAML: %w", err)
		}
	case "json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format: %s (expected yaml, yml, or json)", format)
	}

	return cfg, nil
}

// LoadExampleConfig 加载内嵌的示例配置
func LoadExampleConfig() (*Config, error) {
	return LoadConfigFromBytes(exampleConfigYAML, "yaml")
}

// ═══════════════════════════════════════════════════════════════════════════
// 配置应用
// ═══════════════════════════════════════════════════════════════════════════

// WithConfigFile 从配置文件加载设置
func WithConfigFile(path string) Option {
	return func(c *Client) {
		cfg, err := LoadConfigFile(path)
		if err != nil {
			// 将错误存储到客户端，在首次调用时返回
			c.err = fmt.Errorf("load config file: %w", err)
			return
		}
		applyConfig(c, cfg)
	}
}

// WithConfig 从配置对象加载设置
func WithConfig(cfg *Config) Option {
	return func(c *Client) {
		applyConfig(c, cfg)
	}
}

// applyConfig 将配置应用到客户端
func applyConfig(c *Client, cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.DefaultResponse != "" {
		c.response = cfg.DefaultResponse
	}
	if len(cfg.Responses) > 0 {
		c.responses = cfg.Responses
	}
	if cfg.ChunkSize > 0 {
		c.chunkSize = cfg.ChunkSize
	}
	if cfg.Delay != "" {
		if d, err := time.ParseDuration(cfg.Delay); err == nil {
			c.delay = d
		}
	}
	if cfg.SimulateError != "" {
		c.err = fmt.Errorf("%s", cfg.SimulateError)
	}
}
