package config

// 从yaml文件加载爬虫配置，文件中缺省的键保持默认值

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	LogLevel    string        `yaml:"logLevel"`
	LogFile     string        `yaml:"logFile"` // 非空时日志同时写入该文件并按大小轮转
	BaseURL     string        `yaml:"baseURL"`
	ListingPath string        `yaml:"listingPath"`
	Output      string        `yaml:"output"`
	WorkCount   int           `yaml:"workCount"`
	Fetcher     FetcherConfig `yaml:"fetcher"`
	Storage     StorageConfig `yaml:"storage"`
}

type FetcherConfig struct {
	Timeout   int      `yaml:"timeout"` // 毫秒，0表示不设置超时
	Cookie    string   `yaml:"cookie"`
	UserAgent string   `yaml:"userAgent"`
	Proxy     []string `yaml:"proxy"`
}

type StorageConfig struct {
	SqlURL     string `yaml:"sqlURL"` // 为空时不写入MySQL
	Table      string `yaml:"table"`
	BatchCount int    `yaml:"batchCount"`
}

func (f FetcherConfig) TimeoutDuration() time.Duration {
	return time.Duration(f.Timeout) * time.Millisecond
}

// 默认配置，与原始抓取脚本的行为一致
func Default() Config {
	return Config{
		LogLevel:    "INFO",
		BaseURL:     "https://www.fut.gg",
		ListingPath: "/evolutions/",
		Output:      "evolutions_full.json",
		WorkCount:   1,
		Fetcher: FetcherConfig{
			Timeout: 30000,
		},
		Storage: StorageConfig{
			Table:      "evolutions",
			BatchCount: 50,
		},
	}
}

/*
输入配置文件路径，输出配置和一个error

path为空时直接返回默认配置；文件中出现的键覆盖默认值
*/
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s failed: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s failed: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.BaseURL == "" {
		return errors.New("baseURL can not be empty")
	}
	if c.Output == "" {
		return errors.New("output can not be empty")
	}
	if c.WorkCount < 1 {
		return fmt.Errorf("workCount must be positive, got %d", c.WorkCount)
	}
	if c.Fetcher.Timeout < 0 {
		return fmt.Errorf("fetcher timeout can not be negative, got %d", c.Fetcher.Timeout)
	}
	return nil
}
