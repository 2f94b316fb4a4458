package places

import (
	"context"
	"sync/atomic"

	"github.com/aafham/Masjid-hunt/internal/domain"
	"github.com/aafham/Masjid-hunt/internal/ports"
)

// MockPlacesProvider returns a fixed candidate list or error.
type MockPlacesProvider struct {
	Candidates []ports.PlaceCandidate
	Err        error
	calls      atomic.Int32
}

func (p *MockPlacesProvider) SearchNearby(
	ctx context.Context,
	origin domain.Coordinates,
	radiusMeters int,
	category string,
) ([]ports.PlaceCandidate, error) {
	p.calls.Add(1)
	if p.Err != nil {
		return nil, p.Err
	}
	out := make([]ports.PlaceCandidate, len(p.Candidates))
	copy(out, p.Candidates)
	return out, nil
}

// Calls reports how many times SearchNearby was invoked.
func (p *MockPlacesProvider) Calls() int { return int(p.calls.Load()) }
