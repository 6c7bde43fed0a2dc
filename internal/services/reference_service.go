package services

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// ReferenceService issues human-readable reference numbers for issue
// reports, of the form CP-YYYYMMDD-NNNN.
type ReferenceService struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

// NewReferenceService creates a reference number generator.
func NewReferenceService() *ReferenceService {
	return &ReferenceService{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
		now: time.Now,
	}
}

// CreateReference returns a new reference number. The random suffix keeps
// references guessable-resistant without being globally unique; the issue
// service resolves collisions by regenerating.
func (r *ReferenceService) CreateReference() string {
	r.mu.Lock()
	n := 1000 + r.rng.Intn(9000)
	r.mu.Unlock()

	return fmt.Sprintf("CP-%s-%d", r.now().UTC().Format("20060102"), n)
}
