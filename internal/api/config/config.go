package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Cfg 全局配置实例，进程启动时填充一次后只读
var Cfg *Config

// LoadConfig 读取 configs/config.yaml 并填充到 Cfg
func LoadConfig() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return fmt.Errorf("配置文件缺失: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("配置解析失败: %w", err)
	}

	Cfg = &cfg

	return nil
}
