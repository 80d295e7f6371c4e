package logger

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"fgblog/config"
)

// Logger 封装zap日志库
type Logger struct {
	*zap.Logger
	file *dailyFile
}

// NewLogger 创建一个只输出到控制台的日志记录器
func NewLogger(level string) *Logger {
	return NewLoggerWithConfig(level, config.LogFileConfig{})
}

// NewNop 创建一个丢弃所有输出的日志记录器，用于测试
func NewNop() *Logger {
	return &Logger{Logger: zap.NewNop()}
}

// NewLoggerWithConfig 使用配置创建一个新的日志记录器
func NewLoggerWithConfig(level string, logFileConfig config.LogFileConfig) *Logger {
	zapLevel := parseLevel(level)

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	enabled := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= zapLevel
	})

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.Lock(os.Stdout), enabled),
	}

	var file *dailyFile
	if logFileConfig.Enabled && logFileConfig.Path != "" {
		logDir := filepath.Dir(logFileConfig.Path)
		if err := os.MkdirAll(logDir, 0755); err != nil {
			panic(err)
		}

		file = newDailyFile(logDir, &lumberjack.Logger{
			MaxSize:    logFileConfig.MaxSize,
			MaxBackups: logFileConfig.MaxBackups,
			MaxAge:     logFileConfig.MaxAge,
			Compress:   logFileConfig.Compress,
			LocalTime:  true,
		}, time.Now)

		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(file), enabled))
	}

	logger := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(1))
	return &Logger{Logger: logger, file: file}
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func dailyFileName(dir string, t time.Time) string {
	return filepath.Join(dir, t.Format("2006-01-02")+".log")
}

// dailyFile 按日期切换文件名的写入器，日期变化发生在写入时并由锁保护
type dailyFile struct {
	mu  sync.Mutex
	dir string
	day string
	out *lumberjack.Logger
	now func() time.Time
}

func newDailyFile(dir string, out *lumberjack.Logger, now func() time.Time) *dailyFile {
	d := &dailyFile{dir: dir, out: out, now: now}
	d.day = now().Format("2006-01-02")
	d.out.Filename = dailyFileName(dir, now())
	return d
}

func (d *dailyFile) Write(p []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()
	if day := now.Format("2006-01-02"); day != d.day {
		// 关闭后下次写入会打开新日期的文件
		if err := d.out.Close(); err != nil {
			return 0, err
		}
		d.day = day
		d.out.Filename = dailyFileName(d.dir, now)
	}
	return d.out.Write(p)
}

// Close 关闭日志文件
func (d *dailyFile) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.out.Close()
}

// Close 刷新缓冲并关闭日志文件
func (l *Logger) Close() error {
	_ = l.Logger.Sync()
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// With 返回附带固定字段的子记录器
func (l *Logger) With(fields ...interface{}) *Logger {
	return &Logger{Logger: l.Logger.With(fieldsToZapFields(fields...)...), file: l.file}
}

// Info 记录信息级别日志
func (l *Logger) Info(msg string, fields ...interface{}) {
	l.Logger.Info(msg, fieldsToZapFields(fields...)...)
}

// Debug 记录调试级别日志
func (l *Logger) Debug(msg string, fields ...interface{}) {
	l.Logger.Debug(msg, fieldsToZapFields(fields...)...)
}

// Warn 记录警告级别日志
func (l *Logger) Warn(msg string, fields ...interface{}) {
	l.Logger.Warn(msg, fieldsToZapFields(fields...)...)
}

// Error 记录错误级别日志
func (l *Logger) Error(msg string, fields ...interface{}) {
	l.Logger.Error(msg, fieldsToZapFields(fields...)...)
}

// Fatal 记录致命错误日志并退出程序
func (l *Logger) Fatal(msg string, fields ...interface{}) {
	l.Logger.Fatal(msg, fieldsToZapFields(fields...)...)
}

// 将通用接口转换为zap字段
func fieldsToZapFields(fields ...interface{}) []zap.Field {
	zapFields := make([]zap.Field, 0, len(fields))
	for i := 0; i < len(fields); i++ {
		switch f := fields[i].(type) {
		case error:
			zapFields = append(zapFields, zap.Error(f))
		case string:
			if i+1 < len(fields) {
				zapFields = append(zapFields, zap.Any(f, fields[i+1]))
				i++
			}
		default:
			zapFields = append(zapFields, zap.Any("field", f))
		}
	}
	return zapFields
}
