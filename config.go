package rbot

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"
)

// TransportConfig 描述宿主传输通道的连接参数。
type TransportConfig struct {
	Kind               string `toml:"kind"` // "quic" 或 "ws"
	Addr               string `toml:"addr"`
	InsecureSkipVerify bool   `toml:"insecureSkipVerify"`
	HandshakeTimeoutMS int    `toml:"handshakeTimeoutMS"`
}

// WaitConfig 描述等待循环的轮询参数。
type WaitConfig struct {
	PollIntervalMS int `toml:"pollIntervalMS"`
}

// LoggingConfig 描述日志级别等基本开关。
type LoggingConfig struct {
	Level       string `toml:"level"`
	Development bool   `toml:"development"`
}

// Config 汇总客户端的全部配置。
// 库本身不依赖配置文件，只有 CLI 和传输适配器的构建需要它。
type Config struct {
	Transport TransportConfig `toml:"transport"`
	Wait      WaitConfig      `toml:"wait"`
	Logging   LoggingConfig   `toml:"logging"`
}

// LoadConfig 从指定路径读取 TOML 配置文件。
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (cfg *Config) validate() error {
	switch cfg.Transport.Kind {
	case "":
		cfg.Transport.Kind = "quic"
	case "quic", "ws":
	default:
		return fmt.Errorf("unsupported transport kind: %q", cfg.Transport.Kind)
	}
	if cfg.Transport.Addr == "" {
		return fmt.Errorf("transport.addr required")
	}
	if cfg.Wait.PollIntervalMS < 0 {
		return fmt.Errorf("wait.pollIntervalMS must not be negative")
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	return nil
}

// PollInterval 返回配置的轮询间隔，未配置时使用默认值。
func (cfg *Config) PollInterval() time.Duration {
	if cfg.Wait.PollIntervalMS <= 0 {
		return DefaultPollInterval
	}
	return time.Duration(cfg.Wait.PollIntervalMS) * time.Millisecond
}

// NewLogger 按配置构建 zap 日志器。
func NewLogger(cfg LoggingConfig) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	var zapCfg zap.Config
	if cfg.Development {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}
	zapCfg.Level = level

	return zapCfg.Build()
}
