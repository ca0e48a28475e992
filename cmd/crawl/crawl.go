package crawl

// crawl负责把配置文件和命令行标志组装成爬虫引擎并执行一次完整的爬取

import (
	"context"
	"fmt"

	"github.com/dszqbsm/evocrawler/collect"
	"github.com/dszqbsm/evocrawler/config"
	"github.com/dszqbsm/evocrawler/engine"
	"github.com/dszqbsm/evocrawler/log"
	"github.com/dszqbsm/evocrawler/proxy"
	"github.com/dszqbsm/evocrawler/storage"
	"github.com/dszqbsm/evocrawler/storage/jsonstorage"
	"github.com/dszqbsm/evocrawler/storage/sqlstorage"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// 命令行标志，显式设置时覆盖配置文件中的同名项
type Flags struct {
	ConfigFile string
	BaseURL    string
	Output     string
	LogLevel   string
	Workers    int
}

func (f *Flags) Register(fs *pflag.FlagSet) {
	fs.StringVar(&f.ConfigFile, "config", "", "set config file (yaml)")
	fs.StringVar(&f.BaseURL, "base-url", "", "set site base url")
	fs.StringVar(&f.Output, "output", "", "set output json file")
	fs.StringVar(&f.LogLevel, "log-level", "", "set log level")
	fs.IntVar(&f.Workers, "workers", 0, "set concurrent detail page workers")
}

/*
输入已解析的标志集合，输出最终配置和一个error

先加载配置文件（未指定时使用默认配置），再用显式设置过的标志覆盖
*/
func (f *Flags) Config(fs *pflag.FlagSet) (config.Config, error) {
	cfg, err := config.Load(f.ConfigFile)
	if err != nil {
		return cfg, err
	}
	if fs.Changed("base-url") {
		cfg.BaseURL = f.BaseURL
	}
	if fs.Changed("output") {
		cfg.Output = f.Output
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = f.LogLevel
	}
	if fs.Changed("workers") {
		cfg.WorkCount = f.Workers
	}
	return cfg, cfg.Validate()
}

/*
输入上下文和配置，输出一个error

初始化日志、采集器和存储器后启动引擎；列表页抓取失败等致命错误原样返回，由调用方决定退出码
*/
func Run(ctx context.Context, cfg config.Config) error {
	logger, closer, err := log.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return fmt.Errorf("init logger failed: %w", err)
	}
	defer closer.Close()
	defer func() { _ = logger.Sync() }()
	logger.Info("log init end")

	f, err := NewFetcher(cfg.Fetcher, logger)
	if err != nil {
		return err
	}

	s, err := NewStorage(cfg, logger)
	if err != nil {
		return err
	}

	e := engine.NewEngine(
		engine.WithFetcher(f),
		engine.WithLogger(logger),
		engine.WithWorkCount(cfg.WorkCount),
		engine.WithStorage(s),
		engine.WithBaseURL(cfg.BaseURL),
		engine.WithListingPath(cfg.ListingPath),
	)

	n, err := e.Run(ctx)
	if err != nil {
		logger.Error("crawl failed", zap.Error(err))
		return err
	}
	logger.Info("crawl finished",
		zap.Int("count", n),
		zap.String("output", cfg.Output),
	)
	return nil
}

// 根据采集器配置创建BaseFetch，配置了代理列表时按轮询方式切换代理
func NewFetcher(cfg config.FetcherConfig, logger *zap.Logger) (collect.Fetcher, error) {
	var p proxy.ProxyFunc
	if len(cfg.Proxy) > 0 {
		var err error
		if p, err = proxy.RoundRobinProxySwitcher(cfg.Proxy...); err != nil {
			return nil, fmt.Errorf("create proxy switcher failed: %w", err)
		}
		logger.Info("proxy enabled", zap.Strings("proxy", cfg.Proxy))
	}
	return &collect.BaseFetch{
		Timeout:   cfg.TimeoutDuration(),
		Cookie:    cfg.Cookie,
		UserAgent: cfg.UserAgent,
		Proxy:     p,
		Logger:    logger,
	}, nil
}

// json文件始终写出；配置了sqlURL时同时写入MySQL
func NewStorage(cfg config.Config, logger *zap.Logger) (storage.Storage, error) {
	storages := []storage.Storage{
		jsonstorage.New(
			jsonstorage.WithPath(cfg.Output),
			jsonstorage.WithLogger(logger.Named("json")),
		),
	}
	if cfg.Storage.SqlURL != "" {
		s, err := sqlstorage.New(
			sqlstorage.WithSqlURL(cfg.Storage.SqlURL),
			sqlstorage.WithTable(cfg.Storage.Table),
			sqlstorage.WithBatchCount(cfg.Storage.BatchCount),
			sqlstorage.WithLogger(logger.Named("sqlDB")),
		)
		if err != nil {
			return nil, fmt.Errorf("create sqlstorage failed: %w", err)
		}
		storages = append(storages, s)
	}
	return storage.Multi(storages...), nil
}
