package star

import (
	"context"
	"testing"

	"github.com/san-kum/tovstar/internal/eos"
)

func sweepTable(t *testing.T) *eos.Table {
	t.Helper()
	tab, err := eos.Polytrope(100, 2.0, 400, 1e-4, 1e-2)
	if err != nil {
		t.Fatalf("polytrope failed: %v", err)
	}
	return tab
}

func sweepParams() Params {
	return Params{RMin: 1e-6, RMax: 20.0, Samples: 500, PressureFloor: 0}
}

func TestBuildFindsInteriorMaximum(t *testing.T) {
	b := NewSequenceBuilder(sweepTable(t), sweepParams())
	b.SetSamples(40)

	seq, err := b.Build(context.Background())
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	if seq.Len() != 40 {
		t.Fatalf("expected 40 models, got %d", seq.Len())
	}

	// The reported index must match a direct scan (first occurrence wins).
	want := 0
	for i, m := range seq.Masses {
		if m > seq.Masses[want] {
			want = i
		}
	}
	if seq.MaxIndex != want {
		t.Errorf("max index %d does not match direct scan %d", seq.MaxIndex, want)
	}

	// A well-behaved EoS swept past its turning point has an interior
	// maximum, not an endpoint artifact.
	if seq.MaxIndex == 0 || seq.MaxIndex == seq.Len()-1 {
		t.Errorf("maximum at boundary index %d", seq.MaxIndex)
	}

	peak := seq.MaxMass()
	if peak.Mass <= seq.Masses[0] {
		t.Errorf("peak mass %.4f not above low-density mass %.4f", peak.Mass, seq.Masses[0])
	}
	if peak.CentralDensity != seq.Densities[seq.MaxIndex] {
		t.Errorf("peak density mismatch: %g vs %g", peak.CentralDensity, seq.Densities[seq.MaxIndex])
	}
}

func TestBuildSweepSpansTableDomain(t *testing.T) {
	tab := sweepTable(t)
	b := NewSequenceBuilder(tab, sweepParams())
	b.SetSamples(10)

	seq, err := b.Build(context.Background())
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	min, max := tab.DensityDomain()
	if seq.Densities[0] != min {
		t.Errorf("sweep should start at table min %g, got %g", min, seq.Densities[0])
	}
	if seq.Densities[len(seq.Densities)-1] != max {
		t.Errorf("sweep should end at table max %g, got %g", max, seq.Densities[len(seq.Densities)-1])
	}
}

func TestBuildParallelMatchesSequential(t *testing.T) {
	tab := sweepTable(t)
	params := sweepParams()

	seqB := NewSequenceBuilder(tab, params)
	seqB.SetSamples(24)
	sequential, err := seqB.Build(context.Background())
	if err != nil {
		t.Fatalf("sequential build failed: %v", err)
	}

	parB := NewSequenceBuilder(tab, params)
	parB.SetSamples(24)
	parB.SetWorkers(4)
	parallel, err := parB.Build(context.Background())
	if err != nil {
		t.Fatalf("parallel build failed: %v", err)
	}

	for i := range sequential.Masses {
		if sequential.Masses[i] != parallel.Masses[i] {
			t.Errorf("mass %d differs: %g vs %g", i, sequential.Masses[i], parallel.Masses[i])
		}
		if sequential.Radii[i] != parallel.Radii[i] {
			t.Errorf("radius %d differs: %g vs %g", i, sequential.Radii[i], parallel.Radii[i])
		}
	}
	if sequential.MaxIndex != parallel.MaxIndex {
		t.Errorf("max index differs: %d vs %d", sequential.MaxIndex, parallel.MaxIndex)
	}
}

func TestBuildObserverSeesEveryModel(t *testing.T) {
	b := NewSequenceBuilder(sweepTable(t), sweepParams())
	b.SetSamples(12)

	seen := make([]bool, 12)
	b.OnModel(func(i int, m Model) { seen[i] = true })

	if _, err := b.Build(context.Background()); err != nil {
		t.Fatalf("build failed: %v", err)
	}

	for i, ok := range seen {
		if !ok {
			t.Errorf("observer missed model %d", i)
		}
	}
}

func TestBuildCanceledContext(t *testing.T) {
	b := NewSequenceBuilder(sweepTable(t), sweepParams())
	b.SetSamples(50)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := b.Build(ctx); err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}

	b.SetWorkers(4)
	if _, err := b.Build(ctx); err != context.Canceled {
		t.Errorf("expected context.Canceled from parallel build, got %v", err)
	}
}
