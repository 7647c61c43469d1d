package colorscheme

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/bnema/dusk/internal/logging"
)

const (
	detectorNameSchedule = "schedule"
	prioritySchedule     = 40
)

// ScheduleDetector answers from a light/dark timetable. It reports dark
// while the next scheduled switch is the one back to light.
type ScheduleDetector struct {
	dark  cron.Schedule
	light cron.Schedule
	now   func() time.Time
}

// NewScheduleDetector parses the two switch times. Both accept standard
// five-field cron expressions and descriptors such as "@daily".
func NewScheduleDetector(darkSpec, lightSpec string) (*ScheduleDetector, error) {
	dark, err := cron.ParseStandard(darkSpec)
	if err != nil {
		return nil, fmt.Errorf("parse dark schedule %q: %w", darkSpec, err)
	}
	light, err := cron.ParseStandard(lightSpec)
	if err != nil {
		return nil, fmt.Errorf("parse light schedule %q: %w", lightSpec, err)
	}
	return &ScheduleDetector{dark: dark, light: light, now: time.Now}, nil
}

// Name implements port.ColorSchemeDetector.
func (*ScheduleDetector) Name() string {
	return detectorNameSchedule
}

// Priority implements port.ColorSchemeDetector.
func (*ScheduleDetector) Priority() int {
	return prioritySchedule
}

// Available implements port.ColorSchemeDetector.
func (*ScheduleDetector) Available() bool {
	return true
}

// Detect implements port.ColorSchemeDetector. A schedule that never fires
// gives no answer.
func (d *ScheduleDetector) Detect() (prefersDark, ok bool) {
	now := d.now()
	nextDark := d.dark.Next(now)
	nextLight := d.light.Next(now)
	if nextDark.IsZero() || nextLight.IsZero() {
		return false, false
	}
	return nextLight.Before(nextDark), true
}

// ScheduleMonitor fires at every switch time of a ScheduleDetector.
type ScheduleMonitor struct {
	detector *ScheduleDetector
}

// NewScheduleMonitor creates a monitor for the detector's switch times.
func NewScheduleMonitor(detector *ScheduleDetector) *ScheduleMonitor {
	return &ScheduleMonitor{detector: detector}
}

// Name implements Monitor.
func (*ScheduleMonitor) Name() string {
	return detectorNameSchedule
}

// Run implements Monitor.
func (m *ScheduleMonitor) Run(ctx context.Context, onChange func()) error {
	log := logging.FromContext(logging.WithDetector(ctx, detectorNameSchedule))

	c := cron.New()
	c.Schedule(m.detector.dark, cron.FuncJob(onChange))
	c.Schedule(m.detector.light, cron.FuncJob(onChange))
	c.Start()

	log.Debug().
		Time("next_dark", m.detector.dark.Next(time.Now())).
		Time("next_light", m.detector.light.Next(time.Now())).
		Msg("schedule monitor started")

	<-ctx.Done()
	<-c.Stop().Done()
	return nil
}
