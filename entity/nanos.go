package entity

import (
	"time"
)

// UnixNanos 自Unix纪元起的纳秒时间戳。零值表示未设置。
// 协议内所有事件时间统一使用该类型承载。
type UnixNanos int64

// NanosFromTime 由 time.Time 转换, 零时间返回零值。
func NanosFromTime(t time.Time) UnixNanos {
	if t.IsZero() {
		return 0
	}
	return UnixNanos(t.UnixNano())
}

// NanosFromMillis 毫秒时间戳转换, 交易所与行情源多以毫秒计时。
func NanosFromMillis(ms int64) UnixNanos {
	return UnixNanos(ms * int64(time.Millisecond))
}

// NanosFromMicros 微秒时间戳转换, Tardis 等历史数据源以微秒计时。
func NanosFromMicros(us int64) UnixNanos {
	return UnixNanos(us * int64(time.Microsecond))
}

// ParseNanos 解析RFC3339格式的时间字符串。
func ParseNanos(s string) (UnixNanos, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return 0, err
	}
	return UnixNanos(t.UnixNano()), nil
}

// Time 转换为UTC的 time.Time。
func (n UnixNanos) Time() time.Time {
	return time.Unix(0, int64(n)).UTC()
}

// Millis 转换为毫秒时间戳。
func (n UnixNanos) Millis() int64 {
	return int64(n) / int64(time.Millisecond)
}

// Micros 转换为微秒时间戳。
func (n UnixNanos) Micros() int64 {
	return int64(n) / int64(time.Microsecond)
}

// Add 时间戳加上一段时长。
func (n UnixNanos) Add(d time.Duration) UnixNanos {
	return n + UnixNanos(d)
}

// Sub 返回两个时间戳之间的时长。
func (n UnixNanos) Sub(o UnixNanos) time.Duration {
	return time.Duration(n - o)
}

// Before 报告 n 是否早于 o。
func (n UnixNanos) Before(o UnixNanos) bool {
	return n < o
}

// After 报告 n 是否晚于 o。
func (n UnixNanos) After(o UnixNanos) bool {
	return n > o
}

// IsZero 报告时间戳是否未设置。
func (n UnixNanos) IsZero() bool {
	return n == 0
}

// String RFC3339格式, UTC, 纳秒精度。
func (n UnixNanos) String() string {
	return n.Time().Format(time.RFC3339Nano)
}
