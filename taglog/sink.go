package taglog

import (
	"context"
	"io"
	"os"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -destination=./mock/sink.go -package=mock_taglog . Sink

// Sink 日志文档的写入目的地。
type Sink interface {
	Write(ctx context.Context, key string, payload []byte) error
	Close() error
}

type stdSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewStdSink 每行写出一个JSON文档。
func NewStdSink(w io.Writer) Sink {
	return &stdSink{w: w}
}

func (s *stdSink) Write(ctx context.Context, key string, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.w.Write(payload); err != nil {
		return err
	}
	_, err := s.w.Write([]byte{'\n'})
	return err
}

func (s *stdSink) Close() error {
	return nil
}

type redisSink struct {
	client  *redis.Client
	ttl     time.Duration
	timeout time.Duration
}

type RedisSinkOption func(*redisSink)

// WithTTL 设置日志键的过期时间, 默认10天。
func WithTTL(ttl time.Duration) RedisSinkOption {
	return func(s *redisSink) {
		s.ttl = ttl
	}
}

// WithWriteTimeout 设置单次写入的超时, 默认3秒。
func WithWriteTimeout(d time.Duration) RedisSinkOption {
	return func(s *redisSink) {
		s.timeout = d
	}
}

// NewRedisSink 将日志文档存储到Redis。
func NewRedisSink(client *redis.Client, opts ...RedisSinkOption) Sink {
	s := &redisSink{
		client:  client,
		ttl:     10 * 24 * time.Hour,
		timeout: 3 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *redisSink) Write(ctx context.Context, key string, payload []byte) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	// 使用 JSON.SET 存储到 Redis
	if _, err := s.client.Do(ctx, "JSON.SET", key, ".", string(payload)).Result(); err != nil {
		return err
	}
	// 设置过期时间
	return s.client.Expire(ctx, key, s.ttl).Err()
}

func (s *redisSink) Close() error {
	return s.client.Close()
}

func newRedisClient(addr, passwd string, db int32) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: passwd,
		DB:       int(db),
	})
}

// NewRedisLogger 按环境组合sink: 生产环境stdout加Redis, 其余仅stdout。
func NewRedisLogger(env, service, addr, passwd string, db int32) *Logger {
	sinks := []Sink{NewStdSink(os.Stdout)}
	if env == "PRD" {
		sinks = append(sinks, NewRedisSink(newRedisClient(addr, passwd, db)))
	}
	return NewLogger(service, WithSinks(sinks...))
}
