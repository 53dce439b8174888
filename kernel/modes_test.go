package kernel

import (
	"testing"

	"github.com/cwbudde/algo-lanes/internal/cpu"
	"github.com/cwbudde/algo-lanes/internal/testutil"
	"github.com/cwbudde/algo-lanes/lane"
)

func TestModesCoverPolicies(t *testing.T) {
	modes := Modes()
	if len(modes) != len(lane.Policies()) {
		t.Fatalf("got %d modes, want %d", len(modes), len(lane.Policies()))
	}

	active := 0
	for _, m := range modes {
		if m.Active {
			active++
			if m.Name != lane.Mode {
				t.Errorf("active mode %q, lane.Mode %q", m.Name, lane.Mode)
			}
		}
	}
	if active != 1 {
		t.Errorf("%d modes marked active, want 1", active)
	}

	if last := modes[len(modes)-1]; last.Name != "scalar" || !last.Native {
		t.Errorf("last mode = %+v, want native scalar", last)
	}
}

func TestActiveMode(t *testing.T) {
	m := ActiveMode()
	if m.Name != lane.Mode || m.Lanes != lane.Width || m.Alignment != lane.Alignment || m.FusedOps != lane.FusedOps {
		t.Fatalf("ActiveMode() = %+v does not match lane constants", m)
	}
}

func TestNativeMode(t *testing.T) {
	defer cpu.ResetDetection()

	cases := []struct {
		features cpu.Features
		want     string
	}{
		{cpu.Features{HasSSE2: true, HasAVX: true, HasAVX2: true, HasFMA: true}, "wide8-fma"},
		{cpu.Features{HasSSE2: true}, "wide4"},
		{cpu.Features{HasNEON: true, HasFMA: true}, "wide4-fma"},
		{cpu.Features{ForceGeneric: true}, "scalar"},
	}
	for _, tc := range cases {
		cpu.SetForcedFeatures(tc.features)
		if got := NativeMode(); got.Name != tc.want || !got.Native {
			t.Errorf("features %+v: NativeMode() = %+v, want %s", tc.features, got, tc.want)
		}
	}
}

func TestModeUnknown(t *testing.T) {
	if _, ok := Mode("wide16"); ok {
		t.Error("Mode(wide16) reported ok")
	}
	if _, ok := OpsFor("wide16"); ok {
		t.Error("OpsFor(wide16) reported ok")
	}
}

func TestOpsForMatchesGeneric(t *testing.T) {
	a := testutil.DeterministicNoise(31, 1, 45)
	b := testutil.DeterministicNoise(32, 1, 45)

	for _, p := range allPolicies {
		ops, ok := OpsFor(p.name)
		if !ok {
			t.Fatalf("OpsFor(%q) missing", p.name)
		}
		if got, want := ops.DotProduct(45, a, b), p.dot(45, a, b); got != want {
			t.Errorf("%s: registry dot %g, generic dot %g", p.name, got, want)
		}
		if got, want := ops.ScaledSum(45, a, 1.5), p.sum(45, a, 1.5); got != want {
			t.Errorf("%s: registry sum %g, generic sum %g", p.name, got, want)
		}
	}
}
