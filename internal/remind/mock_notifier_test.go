package remind

import "github.com/mfeehan/vitals/pkg/vitals"

type mockNotifier struct {
	waterCalls  int
	waterTo     []string
	waterAt     int
	digestCalls int
	digestAdv   []vitals.Advisory
	err         error
}

func (m *mockNotifier) RemindWater(to []string, glasses, goal int) error {
	m.waterCalls++
	m.waterTo = to
	m.waterAt = glasses
	return m.err
}

func (m *mockNotifier) SendDigest(to []string, advisories []vitals.Advisory) error {
	m.digestCalls++
	m.digestAdv = advisories
	return m.err
}
