package enforce

import (
	"errors"
	"testing"
	"time"

	gderrors "github.com/vnykmshr/godeadline/pkg/common/errors"
)

func TestCheckpoint_CheckWhileArmed(t *testing.T) {
	cp := newCheckpoint()

	// Must be a no-op until the deadline fires.
	cp.Check()
	cp.Check()

	if cp.Expired() {
		t.Error("armed checkpoint should not be expired")
	}
}

func TestCheckpoint_TripUnwinds(t *testing.T) {
	cp := newCheckpoint()

	if err := cp.trip(); err != nil {
		t.Fatalf("trip: %v", err)
	}
	if !cp.Expired() {
		t.Error("tripped checkpoint should be expired")
	}

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Check on a tripped checkpoint should unwind")
		}
		m, ok := r.(cancellationMarker)
		if !ok {
			t.Fatalf("recovered %T, want cancellationMarker", r)
		}
		if m.cp != cp {
			t.Error("marker should identify its own checkpoint")
		}
	}()
	cp.Check()
}

func TestCheckpoint_TripIsOneShot(t *testing.T) {
	cp := newCheckpoint()

	if err := cp.trip(); err != nil {
		t.Fatalf("first trip: %v", err)
	}
	if err := cp.trip(); err != nil {
		t.Fatalf("second trip should be a no-op, got %v", err)
	}
}

func TestCheckpoint_ReleasedTripIsInert(t *testing.T) {
	cp := newCheckpoint()
	cp.release()

	if err := cp.trip(); err != nil {
		t.Fatalf("trip after release should be a no-op, got %v", err)
	}

	// A late trip must not unwind a completed call.
	cp.Check()
	if cp.Expired() {
		t.Error("released checkpoint should not report expired")
	}
}

func TestCheckpoint_TripNeverArmed(t *testing.T) {
	var cp Checkpoint // zero value, never armed

	err := cp.trip()
	if err == nil {
		t.Fatal("trip on a never-armed checkpoint should fail")
	}
	if !errors.Is(err, gderrors.ErrInjectionFault) {
		t.Errorf("err = %v, want ErrInjectionFault", err)
	}
}

func TestCheckpoint_Sleep(t *testing.T) {
	cp := newCheckpoint()

	start := time.Now()
	cp.Sleep(50 * time.Millisecond)
	elapsed := time.Since(start)

	if elapsed < 50*time.Millisecond {
		t.Errorf("Sleep returned early after %v", elapsed)
	}
	if elapsed > time.Second {
		t.Errorf("Sleep took too long: %v", elapsed)
	}
}

func TestCheckpoint_SleepUnwindsOnTrip(t *testing.T) {
	cp := newCheckpoint()

	time.AfterFunc(30*time.Millisecond, func() { _ = cp.trip() })

	start := time.Now()
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("Sleep should unwind once the checkpoint trips")
		}
		if elapsed := time.Since(start); elapsed > time.Second {
			t.Errorf("Sleep unwound too late: %v", elapsed)
		}
	}()
	cp.Sleep(5 * time.Second)
}
