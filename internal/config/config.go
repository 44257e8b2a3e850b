package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"ats-analyzer-go/internal/constants"

	"gopkg.in/yaml.v3"
)

// Config 应用程序配置
type Config struct {
	// 服务器配置
	Server ServerConfig `yaml:"server"`

	// 文档提取器配置
	Extractor ExtractorConfig `yaml:"extractor"`

	// 分析引擎配置
	Analyzer AnalyzerConfig `yaml:"analyzer"`

	// 词典配置（技能表/标题词表/停用词等）
	Dictionary DictionaryConfig `yaml:"dictionary"`

	// 日志配置
	Logger LoggerConfig `yaml:"logger"`
}

// ServerConfig 定义服务器配置
type ServerConfig struct {
	Address string `yaml:"address"`           // 例如 ":8080" or "0.0.0.0:8080"
	APIKey  string `yaml:"api_key,omitempty"` // 可选，非空时开启X-API-Key校验
	// 单个上传文件的大小上限(MB)
	MaxUploadMB int `yaml:"max_upload_mb"`
	// 分析接口每分钟请求数上限，0表示不限流
	RateLimitQPM int `yaml:"rate_limit_qpm,omitempty"`
}

// ExtractorConfig 文档提取器配置
type ExtractorConfig struct {
	// PDF解析器类型: "eino"(默认) 或 "ledong"
	PDFParser string `yaml:"pdf_parser"`
	// 单个文档解析超时(秒)
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// AnalyzerConfig 分析引擎配置
type AnalyzerConfig struct {
	// 提取后的简历文本最少字符数，低于该值拒绝分析
	MinResumeChars int `yaml:"min_resume_chars"`
}

// DictionaryConfig 词典配置
type DictionaryConfig struct {
	// 可选的外部词典文件路径，为空时使用内置词典
	Path string `yaml:"path,omitempty"`
}

// LoggerConfig 日志配置
type LoggerConfig struct {
	Level        string `yaml:"level"`         // debug, info, warn, error
	Format       string `yaml:"format"`        // json, pretty
	TimeFormat   string `yaml:"time_format"`   // 时间格式
	ReportCaller bool   `yaml:"report_caller"` // 是否报告调用位置
}

// LoadConfig 从文件加载配置
// 未指定路径时在常见位置查找，找不到时回退到内置默认值
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		searchPaths := []string{
			"config.yaml",
			"./config.yaml",
			"../config.yaml",
			"../../config.yaml",
			"internal/config/config.yaml",
			filepath.Join(os.Getenv("HOME"), ".ats-analyzer", "config.yaml"),
		}

		// 可执行文件所在目录及其上级
		if execPath, err := os.Executable(); err == nil {
			execDir := filepath.Dir(execPath)
			searchPaths = append(searchPaths,
				filepath.Join(execDir, "config.yaml"),
				filepath.Join(execDir, "..", "config.yaml"),
			)
		}

		for _, path := range searchPaths {
			if _, err := os.Stat(path); err == nil {
				configPath = path
				break
			}
		}

		// 仍找不到配置文件时使用默认配置，不报错
		if configPath == "" {
			config := DefaultConfig()
			applyEnvOverrides(config)
			normalize(config)
			return config, nil
		}
	}

	if _, err := os.Stat(configPath); err != nil {
		return nil, fmt.Errorf("配置文件不存在: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	applyEnvOverrides(config)
	normalize(config)

	return config, nil
}

// DefaultConfig 返回内置默认配置
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Address:     ":8080",
			MaxUploadMB: constants.DefaultMaxUploadMB,
		},
		Extractor: ExtractorConfig{
			PDFParser:      "eino",
			TimeoutSeconds: 30,
		},
		Analyzer: AnalyzerConfig{
			MinResumeChars: constants.DefaultMinResumeChars,
		},
		Logger: LoggerConfig{
			Level:      "info",
			Format:     "pretty",
			TimeFormat: "15:04:05",
		},
	}
}

// applyEnvOverrides 从环境变量覆盖配置（如果存在）
func applyEnvOverrides(config *Config) {
	if addr := os.Getenv("ATS_SERVER_ADDRESS"); addr != "" {
		config.Server.Address = addr
	}
	if key := os.Getenv("ATS_API_KEY"); key != "" {
		config.Server.APIKey = key
	}
	if level := os.Getenv("ATS_LOG_LEVEL"); level != "" {
		config.Logger.Level = level
	}
	if parser := os.Getenv("ATS_PDF_PARSER"); parser != "" {
		config.Extractor.PDFParser = parser
	}
	if maxMB := os.Getenv("ATS_MAX_UPLOAD_MB"); maxMB != "" {
		if n, err := strconv.Atoi(maxMB); err == nil && n > 0 {
			config.Server.MaxUploadMB = n
		}
	}
	if qpm := os.Getenv("ATS_RATE_LIMIT_QPM"); qpm != "" {
		if n, err := strconv.Atoi(qpm); err == nil && n >= 0 {
			config.Server.RateLimitQPM = n
		}
	}
}

// normalize 修正非法或缺省的配置项
func normalize(config *Config) {
	if config.Server.Address == "" {
		config.Server.Address = ":8080"
	}
	if config.Server.MaxUploadMB <= 0 {
		config.Server.MaxUploadMB = constants.DefaultMaxUploadMB
	}
	config.Extractor.PDFParser = strings.ToLower(strings.TrimSpace(config.Extractor.PDFParser))
	if config.Extractor.PDFParser == "" {
		config.Extractor.PDFParser = "eino"
	}
	if config.Extractor.TimeoutSeconds <= 0 {
		config.Extractor.TimeoutSeconds = 30
	}
	if config.Analyzer.MinResumeChars <= 0 {
		config.Analyzer.MinResumeChars = constants.DefaultMinResumeChars
	}
}

// MaxUploadBytes 上传文件大小上限（字节）
func (s ServerConfig) MaxUploadBytes() int64 {
	return int64(s.MaxUploadMB) * 1024 * 1024
}
