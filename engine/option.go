package engine

import (
	"github.com/dszqbsm/evocrawler/collect"
	"github.com/dszqbsm/evocrawler/storage"
	"go.uber.org/zap"
)

type Option func(opts *options)

// 爬虫配置选项
type options struct {
	WorkCount   int             // 并发抓取详情页的协程数，1表示完全顺序执行
	Fetcher     collect.Fetcher // 采集器
	Logger      *zap.Logger     // 日志
	Storage     storage.Storage // 存储器
	BaseURL     string          // 站点根地址
	ListingPath string          // 列表页路径
}

var defaultOptions = options{
	WorkCount:   1,
	Logger:      zap.NewNop(),
	BaseURL:     "https://www.fut.gg",
	ListingPath: "/evolutions/",
}

func WithLogger(logger *zap.Logger) Option {
	return func(opts *options) {
		opts.Logger = logger
	}
}

func WithFetcher(fetcher collect.Fetcher) Option {
	return func(opts *options) {
		opts.Fetcher = fetcher
	}
}

func WithWorkCount(workCount int) Option {
	return func(opts *options) {
		opts.WorkCount = workCount
	}
}

func WithStorage(s storage.Storage) Option {
	return func(opts *options) {
		opts.Storage = s
	}
}

func WithBaseURL(baseURL string) Option {
	return func(opts *options) {
		opts.BaseURL = baseURL
	}
}

func WithListingPath(path string) Option {
	return func(opts *options) {
		opts.ListingPath = path
	}
}
