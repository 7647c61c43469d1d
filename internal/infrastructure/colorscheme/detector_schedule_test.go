package colorscheme

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleDetector(t *testing.T) {
	d, err := NewScheduleDetector("0 19 * * *", "0 7 * * *")
	require.NoError(t, err)
	assert.Equal(t, "schedule", d.Name())
	assert.True(t, d.Available())

	tests := []struct {
		name     string
		at       string
		wantDark bool
	}{
		{"morning", "08:00", false},
		{"afternoon", "18:59", false},
		{"at dark switch", "19:00", true},
		{"evening", "22:30", true},
		{"night", "03:00", true},
		{"at light switch", "07:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock, err := time.ParseInLocation("2006-01-02 15:04", "2026-03-10 "+tt.at, time.Local)
			require.NoError(t, err)
			d.now = func() time.Time { return clock }

			dark, ok := d.Detect()
			assert.True(t, ok)
			assert.Equal(t, tt.wantDark, dark)
		})
	}
}

func TestNewScheduleDetector_InvalidSpec(t *testing.T) {
	_, err := NewScheduleDetector("sunset", "0 7 * * *")
	assert.ErrorContains(t, err, "dark schedule")

	_, err = NewScheduleDetector("0 19 * * *", "* * *")
	assert.ErrorContains(t, err, "light schedule")
}

func TestScheduleDetector_Priority(t *testing.T) {
	d, err := NewScheduleDetector("@daily", "@daily")
	require.NoError(t, err)

	assert.Greater(t, d.Priority(), (&EnvDetector{}).Priority())
	assert.Greater(t, d.Priority(), (&GsettingsDetector{}).Priority())
	assert.Less(t, d.Priority(), NewFileDetector("").Priority())
}

func TestScheduleMonitor_FiresOnSwitch(t *testing.T) {
	d, err := NewScheduleDetector("@every 1s", "@every 1h")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	var fired atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- NewScheduleMonitor(d).Run(ctx, func() { fired.Add(1) })
	}()

	require.Eventually(t, func() bool { return fired.Load() > 0 }, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("monitor did not stop after cancel")
	}
}
