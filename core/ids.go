package core

import (
	"strconv"
	"sync"

	"github.com/google/uuid"
)

// IDGenerator hands out fresh record ids.
type IDGenerator interface {
	NewID(prefix string) string
}

type UUIDGenerator struct{}

var _ IDGenerator = UUIDGenerator{}

func (UUIDGenerator) NewID(prefix string) string {
	return prefix + uuid.NewString()
}

// SequenceGenerator returns `<prefix><n>` with n increasing from 1; used in tests and fixtures.
type SequenceGenerator struct {
	mu sync.Mutex
	n  int
}

var _ IDGenerator = (*SequenceGenerator)(nil)

func (g *SequenceGenerator) NewID(prefix string) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return prefix + strconv.Itoa(g.n)
}
