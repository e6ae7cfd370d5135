package service

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/xolan/datepicker/internal/config"
	"github.com/xolan/datepicker/internal/daterange"
	"github.com/xolan/datepicker/internal/state"
)

// Wednesday 2024-06-05 10:00 UTC
var fixedNow = time.Date(2024, time.June, 5, 10, 0, 0, 0, time.UTC)

func setupPickerService(t *testing.T, granularity string) (*PickerService, string) {
	t.Helper()
	statePath := filepath.Join(t.TempDir(), state.StateFile)
	cfg := config.DefaultConfig()
	cfg.Timezone = "UTC"
	cfg.DefaultGranularity = granularity

	svc := NewPickerService(statePath, cfg)
	svc.SetClock(func() time.Time { return fixedNow })
	return svc, statePath
}

func TestPickerService_Show_DefaultsFromConfig(t *testing.T) {
	svc, statePath := setupPickerService(t, "week")

	result, err := svc.Show()
	if err != nil {
		t.Fatalf("Show() returned unexpected error: %v", err)
	}
	if result.Granularity != daterange.Week {
		t.Errorf("Granularity = %q, expected week", result.Granularity)
	}
	if got := result.Range.String(); got != "2024-06-03..2024-06-09" {
		t.Errorf("Range = %s, expected 2024-06-03..2024-06-09", got)
	}
	if result.Label != "03.06.2024 - 09.06.2024" {
		t.Errorf("Label = %q, expected %q", result.Label, "03.06.2024 - 09.06.2024")
	}
	if result.Changed {
		t.Error("Show() must not report a change")
	}

	// Show never writes state
	if _, err := os.Stat(statePath); !os.IsNotExist(err) {
		t.Error("expected no state file after Show()")
	}
}

func TestPickerService_StepPersists(t *testing.T) {
	svc, _ := setupPickerService(t, "month")

	result, err := svc.Step(-1)
	if err != nil {
		t.Fatalf("Step() returned unexpected error: %v", err)
	}
	if !result.Changed {
		t.Error("expected Step(-1) to change the range")
	}
	if got := result.Range.String(); got != "2024-05-01..2024-05-31" {
		t.Errorf("Range = %s, expected 2024-05-01..2024-05-31", got)
	}

	// A second service invocation continues from the saved range
	result, err = svc.Step(-5)
	if err != nil {
		t.Fatalf("Step() returned unexpected error: %v", err)
	}
	if got := result.Range.String(); got != "2023-12-01..2023-12-31" {
		t.Errorf("Range = %s, expected 2023-12-01..2023-12-31", got)
	}

	shown, err := svc.Show()
	if err != nil {
		t.Fatalf("Show() returned unexpected error: %v", err)
	}
	if !shown.Range.Equal(result.Range) {
		t.Errorf("Show() = %v, expected persisted %v", shown.Range, result.Range)
	}
}

func TestPickerService_StepZeroIsNoOp(t *testing.T) {
	svc, statePath := setupPickerService(t, "day")

	result, err := svc.Step(0)
	if err != nil {
		t.Fatalf("Step(0) returned unexpected error: %v", err)
	}
	if result.Changed {
		t.Error("expected Step(0) on a canonical range to be a no-op")
	}
	if _, err := os.Stat(statePath); !os.IsNotExist(err) {
		t.Error("expected no state file after a no-op")
	}
}

func TestPickerService_Pick(t *testing.T) {
	svc, _ := setupPickerService(t, "week")

	result, err := svc.Pick("2024-02-29")
	if err != nil {
		t.Fatalf("Pick() returned unexpected error: %v", err)
	}
	if !result.Changed {
		t.Error("expected Pick() to change the range")
	}
	if got := result.Range.String(); got != "2024-02-26..2024-03-03" {
		t.Errorf("Range = %s, expected 2024-02-26..2024-03-03", got)
	}

	// Picking another day of the same week is a no-op
	result, err = svc.Pick("01.03.2024")
	if err != nil {
		t.Fatalf("Pick() returned unexpected error: %v", err)
	}
	if result.Changed {
		t.Error("expected picking a date inside the shown week to be a no-op")
	}
}

func TestPickerService_Pick_InvalidDate(t *testing.T) {
	svc, _ := setupPickerService(t, "week")

	if _, err := svc.Pick("2024-13-01"); err == nil {
		t.Error("expected error for invalid date")
	}
}

func TestPickerService_Today(t *testing.T) {
	svc, _ := setupPickerService(t, "day")
	if _, err := svc.Step(-10); err != nil {
		t.Fatalf("Step() returned unexpected error: %v", err)
	}

	result, err := svc.Today()
	if err != nil {
		t.Fatalf("Today() returned unexpected error: %v", err)
	}
	if !result.Changed || !result.Range.Contains(fixedNow) {
		t.Errorf("Today() = %+v, expected a changed range containing %v", result, fixedNow)
	}
	if result.Label != "Wednesday 05.06.2024" {
		t.Errorf("Label = %q, expected %q", result.Label, "Wednesday 05.06.2024")
	}
}

func TestPickerService_SetGranularity(t *testing.T) {
	svc, _ := setupPickerService(t, "day")

	result, err := svc.SetGranularity("months")
	if err != nil {
		t.Fatalf("SetGranularity() returned unexpected error: %v", err)
	}
	if result.Granularity != daterange.Month || !result.Changed {
		t.Errorf("SetGranularity() = %+v, expected changed month", result)
	}
	if got := result.Range.String(); got != "2024-06-01..2024-06-30" {
		t.Errorf("Range = %s, expected 2024-06-01..2024-06-30", got)
	}

	shown, err := svc.Show()
	if err != nil {
		t.Fatalf("Show() returned unexpected error: %v", err)
	}
	if shown.Granularity != daterange.Month {
		t.Errorf("persisted granularity = %q, expected month", shown.Granularity)
	}
}

func TestPickerService_SetGranularity_Invalid(t *testing.T) {
	svc, statePath := setupPickerService(t, "day")

	_, err := svc.SetGranularity("quarter")
	if !errors.Is(err, daterange.ErrInvalidGranularity) {
		t.Errorf("SetGranularity() error = %v, expected ErrInvalidGranularity", err)
	}
	if _, err := os.Stat(statePath); !os.IsNotExist(err) {
		t.Error("expected no state file after failed SetGranularity")
	}
}

func TestPickerService_Reset(t *testing.T) {
	svc, statePath := setupPickerService(t, "day")
	if _, err := svc.Step(3); err != nil {
		t.Fatalf("Step() returned unexpected error: %v", err)
	}

	if err := svc.Reset(); err != nil {
		t.Fatalf("Reset() returned unexpected error: %v", err)
	}
	if _, err := os.Stat(statePath); !os.IsNotExist(err) {
		t.Error("expected state file to be removed")
	}

	shown, err := svc.Show()
	if err != nil {
		t.Fatalf("Show() returned unexpected error: %v", err)
	}
	if !shown.Range.Contains(fixedNow) {
		t.Errorf("Show() after reset = %v, expected today's range", shown.Range)
	}
}

func TestPickerService_CorruptedState(t *testing.T) {
	svc, statePath := setupPickerService(t, "day")
	if err := os.WriteFile(statePath, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := svc.Show()
	if err == nil {
		t.Fatal("expected error for corrupted state")
	}
	if !strings.Contains(err.Error(), "failed to load picker state") {
		t.Errorf("expected load error, got: %v", err)
	}
}

func TestPickerService_SaveError(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Timezone = "UTC"
	svc := NewPickerService(filepath.Join(t.TempDir(), "missing", state.StateFile), cfg)
	svc.SetClock(func() time.Time { return fixedNow })

	if _, err := svc.Step(1); err == nil {
		t.Error("expected error when state cannot be saved")
	}
}

func TestPickerService_StepPastYear9999(t *testing.T) {
	svc, statePath := setupPickerService(t, "month")
	if _, err := svc.Step(1); err != nil {
		t.Fatalf("Step() returned unexpected error: %v", err)
	}
	saved, err := os.ReadFile(statePath)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Step(100000); !errors.Is(err, state.ErrYearOutOfRange) {
		t.Fatalf("Step(100000) error = %v, expected ErrYearOutOfRange", err)
	}

	after, err := os.ReadFile(statePath)
	if err != nil {
		t.Fatal(err)
	}
	if string(after) != string(saved) {
		t.Errorf("state file changed after a failed step:\n%s", after)
	}
	shown, err := svc.Show()
	if err != nil {
		t.Fatalf("Show() after a failed step returned error: %v", err)
	}
	if got := shown.Range.String(); got != "2024-07-01..2024-07-31" {
		t.Errorf("Range = %s, expected the last saved 2024-07-01..2024-07-31", got)
	}
}

func TestPickerService_StepOutOfRange(t *testing.T) {
	svc, statePath := setupPickerService(t, "week")

	if _, err := svc.Step(math.MaxInt / 4); !errors.Is(err, daterange.ErrStepOutOfRange) {
		t.Errorf("Step() error = %v, expected ErrStepOutOfRange", err)
	}
	if _, err := os.Stat(statePath); !os.IsNotExist(err) {
		t.Error("expected no state file after a rejected step")
	}
}

func TestPickerService_SavedStateUsesConfiguredZone(t *testing.T) {
	svc, _ := setupPickerService(t, "day")
	if _, err := svc.Step(1); err != nil {
		t.Fatalf("Step() returned unexpected error: %v", err)
	}

	sess, err := svc.Open()
	if err != nil {
		t.Fatalf("Open() returned unexpected error: %v", err)
	}
	if loc := sess.Range().Start.Location(); loc != time.UTC {
		t.Errorf("restored range location = %v, expected UTC", loc)
	}
}
