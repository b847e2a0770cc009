package lists

import (
	"cmp"

	"github.com/sirupsen/logrus"
)

// DestroyFunc releases one payload when a container discards it.
// A nil DestroyFunc means the caller keeps ownership of every payload and
// must release it after removal or termination.
type DestroyFunc[T any] func(data T)

// CompareFunc is a three-way comparator.
// It returns a negative value if a < b, zero if a == b and a positive value if a > b,
// the same contract as strings.Compare.
type CompareFunc[T any] func(a, b T) int

// Ordered returns the natural comparator for ordered types.
func Ordered[T cmp.Ordered]() CompareFunc[T] {
	return cmp.Compare[T]
}

// Reversed flips a comparator, turning an ascending order into a descending one.
func Reversed[T any](compare CompareFunc[T]) CompareFunc[T] {
	return func(a, b T) int {
		return compare(b, a)
	}
}

// diagnostics reports rejected operations. Both helpers return err unchanged
// so call sites can log and return in one statement.
type diagnostics struct {
	log       logrus.FieldLogger
	container string
}

func (d diagnostics) misuse(op string, err error, fields logrus.Fields) error {
	d.entry(op, err, fields).Debug("operation rejected")
	return err
}

func (d diagnostics) fatal(op string, err error, fields logrus.Fields) error {
	d.entry(op, err, fields).Error("allocation failed")
	return err
}

func (d diagnostics) entry(op string, err error, fields logrus.Fields) *logrus.Entry {
	return d.log.WithFields(logrus.Fields{
		"container": d.container,
		"op":        op,
	}).WithFields(fields).WithError(err)
}
