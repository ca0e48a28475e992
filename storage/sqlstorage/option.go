package sqlstorage

// 用于配置sql存储相关的选项，用于存储引擎的函数选择模式

import (
	"github.com/dszqbsm/evocrawler/sqldb"
	"go.uber.org/zap"
)

type options struct {
	logger     *zap.Logger
	sqlURL     string
	table      string
	BatchCount int // 批量数
	dber       sqldb.DBer
}

// 默认选项
var defaultOptions = options{
	logger:     zap.NewNop(),
	table:      "evolutions",
	BatchCount: 50,
}

type Option func(opts *options)

// 配置日志器
func WithLogger(logger *zap.Logger) Option {
	return func(opts *options) {
		opts.logger = logger
	}
}

// 配置数据库的链接url
func WithSqlURL(sqlURL string) Option {
	return func(opts *options) {
		opts.sqlURL = sqlURL
	}
}

// 配置表名
func WithTable(table string) Option {
	return func(opts *options) {
		opts.table = table
	}
}

// 配置批量处理的数量
func WithBatchCount(batchCount int) Option {
	return func(opts *options) {
		opts.BatchCount = batchCount
	}
}

// 使用已有的数据库实例，不再根据sqlURL建立连接
func WithDB(db sqldb.DBer) Option {
	return func(opts *options) {
		opts.dber = db
	}
}
