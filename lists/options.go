package lists

import "github.com/sirupsen/logrus"

// defaultCapacity is used by NewDynamicArray when no positive capacity is given.
const defaultCapacity = 10

// Option configures a container at construction time.
type Option[T any] func(*config[T])

type config[T any] struct {
	destroy DestroyFunc[T]
	log     logrus.FieldLogger
	maxCap  int // 0 means unbounded
}

func newConfig[T any](opts []Option[T]) config[T] {
	cfg := config[T]{log: logrus.StandardLogger()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithDestroy hands payload ownership to the container: fn is called on every
// payload the container discards (remove, dedup, terminate).
func WithDestroy[T any](fn DestroyFunc[T]) Option[T] {
	return func(c *config[T]) {
		c.destroy = fn
	}
}

// WithLogger sets where rejected operations are reported.
// Misuse is logged at Debug level, allocation failures at Error level.
// A nil logger keeps the default (logrus.StandardLogger).
func WithLogger[T any](log logrus.FieldLogger) Option[T] {
	return func(c *config[T]) {
		if log != nil {
			c.log = log
		}
	}
}

// WithMaxCapacity bounds the buffer of a DynamicArray. Growth beyond n fails
// with ErrAllocationFailed. Non-positive n means unbounded.
// Linked containers ignore it.
func WithMaxCapacity[T any](n int) Option[T] {
	return func(c *config[T]) {
		if n > 0 {
			c.maxCap = n
		} else {
			c.maxCap = 0
		}
	}
}
