package log

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Plugin = zapcore.Core

/*
输入一个日志核心和可选的zap选项，输出日志器

先应用DefaultOption中的调用者和堆栈选项，调用方传入的options追加在其后，可覆盖默认行为
*/
func NewLogger(plugin zapcore.Core, options ...zap.Option) *zap.Logger {
	return zap.New(plugin, append(DefaultOption(), options...)...)
}

// 用默认编码器把日志写到writer，级别由enabler过滤
func NewPlugin(writer zapcore.WriteSyncer, enabler zapcore.LevelEnabler) Plugin {
	return zapcore.NewCore(DefaultEncoder(), writer, enabler)
}

/*
输入一个级别过滤器，输出绑定到标准输出的日志核心

"found evolution urls"、"processing evolution"等进度信息都经由它打印；写入加锁，多个抓取协程可以同时记录
*/
func NewStdoutPlugin(enabler zapcore.LevelEnabler) Plugin {
	return NewPlugin(zapcore.Lock(zapcore.AddSync(os.Stdout)), enabler)
}

// 与NewStdoutPlugin相同，但写到标准错误
func NewStderrPlugin(enabler zapcore.LevelEnabler) Plugin {
	return NewPlugin(zapcore.Lock(zapcore.AddSync(os.Stderr)), enabler)
}

/*
输入日志文件路径和级别过滤器，输出写文件的日志核心和一个closer

lumberjack没有暴露sync方法，zap的Sync无法把内容刷到磁盘，所以额外返回closer，进程退出前需要close
*/
func NewFilePlugin(filePath string, enabler zapcore.LevelEnabler) (Plugin, io.Closer) {
	var writer = DefaultLumberjackLogger()
	writer.Filename = filePath
	return NewPlugin(zapcore.AddSync(writer), enabler), writer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

/*
输入日志级别文本和日志文件路径，输出日志器、closer和一个错误

日志始终写到标准输出；filePath非空时同时写入轮转文件
*/
func New(levelText string, filePath string) (*zap.Logger, io.Closer, error) {
	level, err := zapcore.ParseLevel(levelText)
	if err != nil {
		return nil, nil, err
	}

	plugins := []Plugin{NewStdoutPlugin(level)}
	var closer io.Closer = nopCloser{}
	if filePath != "" {
		var file Plugin
		file, closer = NewFilePlugin(filePath, level)
		plugins = append(plugins, file)
	}
	return NewLogger(zapcore.NewTee(plugins...)), closer, nil
}
