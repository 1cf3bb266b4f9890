package state

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDSource hands out shape ids of the form shape-<site>-<n>. The site part is
// random per source, n increases by one for every id.
type IDSource struct {
	site    string
	counter uint64
}

func NewIDSource() *IDSource {
	return &IDSource{site: uuid.NewString()[:8]}
}

// Next returns a fresh id.
func (s *IDSource) Next() string {
	n := atomic.AddUint64(&s.counter, 1)
	return fmt.Sprintf("shape-%s-%d", s.site, n)
}

// Site returns the random prefix shared by every id from this source.
func (s *IDSource) Site() string {
	return s.site
}
