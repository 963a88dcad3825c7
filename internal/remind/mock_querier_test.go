package remind

import (
	"context"

	"github.com/mfeehan/vitals/pkg/vitals"
)

type mockQuerier struct {
	snapshot   vitals.Snapshot
	advisories []vitals.Advisory
	subs       []string
	err        error
}

func (m *mockQuerier) GetSnapshot(ctx context.Context) (vitals.Snapshot, error) {
	return m.snapshot, m.err
}

func (m *mockQuerier) GetInsights(ctx context.Context) ([]vitals.Advisory, error) {
	return m.advisories, m.err
}

func (m *mockQuerier) ListSubscribers(ctx context.Context) ([]string, error) {
	return m.subs, m.err
}
