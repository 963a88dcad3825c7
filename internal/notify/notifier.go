// Package notify is the best-effort notification side-channel. When no
// provider is configured the no-op notifier is used and reminders silently
// do nothing.
package notify

import "github.com/mfeehan/vitals/pkg/vitals"

type Notifier interface {
	// RemindWater nudges about hydration progress.
	RemindWater(to []string, glasses, goal int) error
	// SendDigest delivers the current advisories.
	SendDigest(to []string, advisories []vitals.Advisory) error
}

// Noop is selected when the notification capability is absent. It never
// errors, matching the degrade-to-inert contract.
type Noop struct{}

func (Noop) RemindWater([]string, int, int) error         { return nil }
func (Noop) SendDigest([]string, []vitals.Advisory) error { return nil }
