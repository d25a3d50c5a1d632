package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Auth     AuthConfig     `mapstructure:"auth"`
}

type ServerConfig struct {
	Port      string `mapstructure:"port"`
	StaticDir string `mapstructure:"static_dir"`
}

type DatabaseConfig struct {
	Driver string `mapstructure:"driver"` // sqlite (默认) 或 mysql
	DSN    string `mapstructure:"dsn"`
}

// JWTConfig 签名密钥是进程级配置，启动时读一次，之后只存在于 TokenManager 里。
// 生产环境必须通过环境变量 WISHLEDGER_JWT_SECRET 注入，不要把真实密钥写进 yaml。
type JWTConfig struct {
	Secret        string `mapstructure:"secret"`
	Algorithm     string `mapstructure:"algorithm"` // 目前只支持 HS256
	ExpireMinutes int    `mapstructure:"expire_minutes"`
}

type AuthConfig struct {
	BcryptCost     int `mapstructure:"bcrypt_cost"`
	MinPasswordLen int `mapstructure:"min_password_len"`
}

// LoadConfig 读取配置文件
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config") // 配置文件名 (不带扩展名)
	viper.SetConfigType("yaml")   // 文件类型
	viper.AddConfigPath(".")      // 查找路径：根目录

	// 支持环境变量覆盖 (例如在 Docker 中)
	// 比如设置环境变量 WISHLEDGER_JWT_SECRET 可以覆盖 yaml 里的值
	viper.SetEnvPrefix("WISHLEDGER")
	viper.AutomaticEnv()

	// 留出合理默认值，本地跑起来不需要完整配置
	viper.SetDefault("server.port", ":8080")
	viper.SetDefault("server.static_dir", "./front")
	viper.SetDefault("database.driver", "sqlite")
	viper.SetDefault("database.dsn", "./database.db")
	viper.SetDefault("jwt.algorithm", "HS256")
	viper.SetDefault("jwt.expire_minutes", 30)
	viper.SetDefault("auth.bcrypt_cost", 10)
	viper.SetDefault("auth.min_password_len", 6)

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("jwt.secret 未配置 (可通过 WISHLEDGER_JWT_SECRET 注入)")
	}
	if cfg.JWT.Algorithm != "HS256" {
		return nil, fmt.Errorf("不支持的签名算法: %s", cfg.JWT.Algorithm)
	}

	return &cfg, nil
}
