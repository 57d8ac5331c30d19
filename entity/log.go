package entity

// LogLevel DEBUG, INFO, WARN, ERROR, FATAL
type LogLevel string

const (
	LogLevelDebug LogLevel = "DEBUG"
	LogLevelInfo  LogLevel = "INFO"
	LogLevelWarn  LogLevel = "WARN"
	LogLevelError LogLevel = "ERROR"
	LogLevelFatal LogLevel = "FATAL"
)

// LogRecord 结构化日志记录, 与协议报文共用同一套字段词汇。
type LogRecord struct {
	// 记录时间
	Timestamp UnixNanos
	// 日志级别
	Level LogLevel
	// 产生日志的goroutine ID
	ThreadID int64
	// 日志内容
	Text string
}
