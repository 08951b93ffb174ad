package goid

import "testing"

func TestCurrent(t *testing.T) {
	id := Current()
	if id == 0 {
		t.Fatal("Current() = 0, want a goroutine id")
	}

	// Stable within one goroutine.
	if again := Current(); again != id {
		t.Errorf("Current() changed within a goroutine: %d then %d", id, again)
	}
}

func TestCurrent_DiffersAcrossGoroutines(t *testing.T) {
	id := Current()

	ch := make(chan uint64)
	go func() {
		ch <- Current()
	}()

	other := <-ch
	if other == 0 {
		t.Fatal("Current() = 0 in spawned goroutine")
	}
	if other == id {
		t.Error("distinct goroutines reported the same id")
	}
}

func TestOnMain_ConsistentWithMainID(t *testing.T) {
	// Test bodies run off the main goroutine, so OnMain must agree with a
	// direct comparison rather than being assumed true or false here.
	want := Current() == mainID
	if got := OnMain(); got != want {
		t.Errorf("OnMain() = %v, want %v", got, want)
	}
}
