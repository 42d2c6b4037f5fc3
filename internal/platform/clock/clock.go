package clock

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

const DateLayout = "2006-01-02"

type Clock interface {
	Now() time.Time
}

type realClock struct{ loc *time.Location }

// New returns a Clock reporting wall time in loc (UTC when nil).
func New(loc *time.Location) Clock {
	if loc == nil {
		loc = time.UTC
	}
	return realClock{loc: loc}
}

func (c realClock) Now() time.Time { return time.Now().In(c.loc) }

// Fixed always reports t. Used by tests.
type Fixed time.Time

func (f Fixed) Now() time.Time { return time.Time(f) }

// Today truncates the clock's current time to a calendar date in its zone.
func Today(c Clock) time.Time {
	y, m, d := c.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type IDGen interface {
	New() (string, error)
}

// ULIDGen emits monotonic ULIDs so ids sort by creation order.
type ULIDGen struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

func NewULIDGen() *ULIDGen {
	return &ULIDGen{entropy: ulid.Monotonic(rand.Reader, 0)}
}

func (g *ULIDGen) New() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	id, err := ulid.New(ulid.Timestamp(time.Now().UTC()), g.entropy)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
