package vecmath

import (
	"testing"

	"github.com/cwbudde/algo-saxpy/internal/cpu"
	"github.com/cwbudde/algo-saxpy/internal/vecmath/registry"
)

// TestRegisteredImplementations verifies both backends register on init.
func TestRegisteredImplementations(t *testing.T) {
	entries := registry.Global.ListEntries()

	if len(entries) == 0 {
		t.Fatal("no implementations registered - init() functions not running")
	}

	names := make(map[string]bool)
	for _, e := range entries {
		names[e.Name] = true
		t.Logf("registered: %s (priority %d)", e.Name, e.Priority)
	}

	if !names["generic"] {
		t.Error("generic implementation not registered")
	}
	if !names["accel"] {
		t.Error("accel implementation not registered")
	}
}

// TestLookupPrefersAccel verifies the accelerated entry wins by priority
// whenever it is not disabled.
func TestLookupPrefersAccel(t *testing.T) {
	entry := registry.Global.Lookup(cpu.Features{})
	if entry == nil {
		t.Fatal("Lookup returned nil")
	}
	if entry.Name != "accel" {
		t.Errorf("selected %q, want accel", entry.Name)
	}
	if entry.AddMulBlock == nil {
		t.Error("accel entry missing AddMulBlock")
	}
}

// TestLookupForceGeneric verifies ForceGeneric falls back to the scalar
// implementation, which must carry every operation.
func TestLookupForceGeneric(t *testing.T) {
	entry := registry.Global.Lookup(cpu.Features{ForceGeneric: true})
	if entry == nil {
		t.Fatal("Lookup returned nil")
	}
	if entry.Name != "generic" {
		t.Errorf("selected %q, want generic", entry.Name)
	}
	if entry.AddMulBlock == nil || entry.Sum == nil || entry.MinMax == nil {
		t.Error("generic entry must implement all operations")
	}
}

func TestImplementationName(t *testing.T) {
	name := ImplementationName()
	if name != "accel" && name != "generic" {
		t.Errorf("ImplementationName = %q, want accel or generic", name)
	}
}
