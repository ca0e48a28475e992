package jsonstorage

import "go.uber.org/zap"

type options struct {
	logger *zap.Logger
	path   string
	indent string
}

var defaultOptions = options{
	logger: zap.NewNop(),
	path:   "evolutions_full.json",
	indent: "  ",
}

type Option func(opts *options)

func WithLogger(logger *zap.Logger) Option {
	return func(opts *options) {
		opts.logger = logger
	}
}

// 输出文件路径
func WithPath(path string) Option {
	return func(opts *options) {
		opts.path = path
	}
}
