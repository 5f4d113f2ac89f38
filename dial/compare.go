package dial

import "time"

// Anything that exposes its epoch milliseconds, e.g., Moment or time.Time.
type Instant interface {
	UnixMilli() int64
}

func instantOf(o Instant) (int64, bool) {
	if o == nil {
		return 0, false
	}
	switch p := o.(type) {
	case *Moment:
		if p == nil {
			return 0, false
		}
	case *time.Time:
		if p == nil {
			return 0, false
		}
	}
	return o.UnixMilli(), true
}

// Whether both refer to the same instant, false if o is nil.
func (m Moment) Eq(o Instant) bool {
	v, ok := instantOf(o)
	return ok && m.UnixMilli() == v
}

func (m Moment) Gt(o Instant) bool {
	v, ok := instantOf(o)
	return ok && m.UnixMilli() > v
}

func (m Moment) Gte(o Instant) bool {
	v, ok := instantOf(o)
	return ok && m.UnixMilli() >= v
}

func (m Moment) Lt(o Instant) bool {
	v, ok := instantOf(o)
	return ok && m.UnixMilli() < v
}

func (m Moment) Lte(o Instant) bool {
	v, ok := instantOf(o)
	return ok && m.UnixMilli() <= v
}

// -1 if m is before o, 0 if they are equal, +1 if m is after o. A nil o is treated as before
// every moment.
func (m Moment) Compare(o Instant) int {
	v, ok := instantOf(o)
	if !ok {
		return 1
	}
	mv := m.UnixMilli()
	switch {
	case mv < v:
		return -1
	case mv > v:
		return 1
	}
	return 0
}
