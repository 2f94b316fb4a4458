package distance

import (
	"context"
	"sync/atomic"

	"github.com/aafham/Masjid-hunt/internal/domain"
	"github.com/aafham/Masjid-hunt/internal/ports"
)

// MockMatrixProvider returns canned elements keyed by destination "lat,lng".
// Destinations without an entry come back as NOT_FOUND elements.
type MockMatrixProvider struct {
	m     map[string]ports.DistanceResult
	Err   error
	calls atomic.Int32
}

type MockElement struct {
	To      domain.Coordinates
	Meters  int
	Seconds int
}

func NewMockMatrixProvider(elements []MockElement) *MockMatrixProvider {
	m := make(map[string]ports.DistanceResult, len(elements))
	for _, e := range elements {
		m[e.To.LatLng()] = ports.DistanceResult{DistanceMeters: e.Meters, DurationSeconds: e.Seconds}
	}
	return &MockMatrixProvider{m: m}
}

func (p *MockMatrixProvider) GetDistances(
	ctx context.Context,
	origin domain.Coordinates,
	destinations []domain.Coordinates,
) ([]ports.MatrixElement, error) {
	p.calls.Add(1)
	if p.Err != nil {
		return nil, p.Err
	}

	out := make([]ports.MatrixElement, 0, len(destinations))
	for _, d := range destinations {
		r, ok := p.m[d.LatLng()]
		if !ok {
			out = append(out, ports.MatrixElement{OK: false, Status: "NOT_FOUND"})
			continue
		}
		out = append(out, ports.MatrixElement{OK: true, Status: "OK", Result: r})
	}

	return out, nil
}

// Calls reports how many times GetDistances was invoked.
func (p *MockMatrixProvider) Calls() int { return int(p.calls.Load()) }
