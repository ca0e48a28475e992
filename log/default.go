package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

/*
无输入，输出爬虫使用的编码器配置

在zap生产环境配置的基础上把级别写成INFO、DEBUG这样的大写形式，时间写成ISO8601，便于和抓取进度日志对照
*/
func DefaultEncoderConfig() zapcore.EncoderConfig {
	var encoderConfig = zap.NewProductionEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return encoderConfig
}

// 基于DefaultEncoderConfig的json编码器，每条日志一行
func DefaultEncoder() zapcore.Encoder {
	return zapcore.NewJSONEncoder(DefaultEncoderConfig())
}

/*
无输入，输出一个Zap日志库的选项列表

附带调用者的文件名和行号；只有DPanic及以上级别才附带堆栈，详情页失败这类Error日志不会刷出堆栈
*/
func DefaultOption() []zap.Option {
	var stackTraceLevel zap.LevelEnablerFunc = func(level zapcore.Level) bool {
		return level >= zapcore.DPanicLevel
	}
	return []zap.Option{
		zap.AddCaller(),
		zap.AddStacktrace(stackTraceLevel),
	}
}

/*
无输入，输出一个未设置文件名的日志轮转器

单个文件超过100MB时轮转，最多保留7个旧文件，旧文件名使用本地时间并压缩；文件名由NewFilePlugin填入
*/
func DefaultLumberjackLogger() *lumberjack.Logger {
	return &lumberjack.Logger{
		MaxSize:    100,
		MaxBackups: 7,
		LocalTime:  true,
		Compress:   true,
	}
}
