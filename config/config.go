package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config 应用全局配置结构体
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"db"`
	Log      LogConfig      `mapstructure:"log"`
	Seed     SeedConfig     `mapstructure:"seed"`
}

// ServerConfig HTTP 服务器配置
type ServerConfig struct {
	Port      int        `mapstructure:"port"`
	BodyLimit int64      `mapstructure:"body_limit"` // 请求体上限（字节）
	CORS      CORSConfig `mapstructure:"cors"`
}

// CORSConfig 跨域配置
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// DatabaseConfig SQLite 数据库配置
type DatabaseConfig struct {
	Path        string `mapstructure:"path"`         // 数据库文件路径
	BusyTimeout int    `mapstructure:"busy_timeout"` // SQLITE_BUSY 等待毫秒数
	LogLevel    string `mapstructure:"log_level"`    // silent | error | warn | info
}

// DSN 生成 SQLite 连接字符串
// 外键约束必须始终开启，级联删除依赖于它；WAL 允许读写并发
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"file:%s?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=%d",
		c.Path, c.BusyTimeout,
	)
}

// LogConfig 日志配置
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// SeedConfig 预置数据播种配置
type SeedConfig struct {
	Accommodations bool `mapstructure:"accommodations"`
}

// Load 从配置文件与环境变量加载配置
// 优先级：环境变量 > 配置文件 > 默认值
func Load(path string) (*Config, error) {
	v := viper.New()

	// ── 默认值 ──
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.body_limit", 1<<20) // 1MB
	v.SetDefault("server.cors.allow_origins", []string{"http://localhost:5173"})

	v.SetDefault("db.path", "./data/saccom.db")
	v.SetDefault("db.busy_timeout", 5000)
	v.SetDefault("db.log_level", "warn")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("seed.accommodations", true)

	// ── 配置文件 ──
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	// ── 环境变量 ──
	v.SetEnvPrefix("SACCOM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
		// 配置文件不存在时仅依赖默认值和环境变量
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	return &cfg, nil
}
