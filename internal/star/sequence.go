package star

import (
	"context"
	"sync"

	"github.com/san-kum/tovstar/internal/eos"
	"github.com/san-kum/tovstar/internal/integrators"
)

const DefaultDensitySamples = 200

// Sequence is a mass-radius curve: parallel slices indexed by central
// density sample, plus the index of the maximum-mass configuration.
type Sequence struct {
	Densities []float64
	Radii     []float64
	Masses    []float64
	MaxIndex  int
}

func (s *Sequence) Len() int {
	return len(s.Masses)
}

// MaxMass returns the maximum-mass configuration of the curve.
func (s *Sequence) MaxMass() Model {
	return Model{
		CentralDensity: s.Densities[s.MaxIndex],
		Radius:         s.Radii[s.MaxIndex],
		Mass:           s.Masses[s.MaxIndex],
		SurfaceFound:   true,
	}
}

// SequenceBuilder sweeps central density across the EoS table's own
// density domain and collects one Model per sample. Runs share only the
// read-only table, so the sweep may fan out over workers; result order is
// the sample order either way.
type SequenceBuilder struct {
	table      *eos.Table
	params     Params
	samples    int
	workers    int
	newStepper func() integrators.Stepper
	onModel    func(i int, m Model)
}

func NewSequenceBuilder(table *eos.Table, params Params) *SequenceBuilder {
	return &SequenceBuilder{
		table:      table,
		params:     params,
		samples:    DefaultDensitySamples,
		workers:    1,
		newStepper: func() integrators.Stepper { return integrators.NewRK4() },
	}
}

// SetSamples sets the number of central-density sweep points.
func (b *SequenceBuilder) SetSamples(n int) {
	if n > 1 {
		b.samples = n
	}
}

// SetWorkers sets the sweep fan-out; n <= 1 keeps the sweep sequential.
func (b *SequenceBuilder) SetWorkers(n int) {
	if n < 1 {
		n = 1
	}
	b.workers = n
}

// SetStepper overrides the per-worker stepper factory.
func (b *SequenceBuilder) SetStepper(f func() integrators.Stepper) {
	if f != nil {
		b.newStepper = f
	}
}

// OnModel registers a progress hook invoked once per completed model. With
// workers > 1 it is called from multiple goroutines.
func (b *SequenceBuilder) OnModel(f func(i int, m Model)) {
	b.onModel = f
}

// Build runs the sweep over a uniform partition of the tabulated density
// domain and locates the maximum-mass index (first occurrence on ties).
func (b *SequenceBuilder) Build(ctx context.Context) (*Sequence, error) {
	min, max := b.table.DensityDomain()

	densities := make([]float64, b.samples)
	step := (max - min) / float64(b.samples-1)
	for i := range densities {
		densities[i] = min + float64(i)*step
	}

	models := make([]Model, b.samples)

	var err error
	if b.workers > 1 {
		err = b.runParallel(ctx, densities, models)
	} else {
		err = b.runSequential(ctx, densities, models)
	}
	if err != nil {
		return nil, err
	}

	seq := &Sequence{
		Densities: densities,
		Radii:     make([]float64, b.samples),
		Masses:    make([]float64, b.samples),
	}
	for i, m := range models {
		seq.Radii[i] = m.Radius
		seq.Masses[i] = m.Mass
		if m.Mass > seq.Masses[seq.MaxIndex] {
			seq.MaxIndex = i
		}
	}

	return seq, nil
}

func (b *SequenceBuilder) runSequential(ctx context.Context, densities []float64, models []Model) error {
	solver := NewSolver(b.table, b.newStepper(), b.params)

	for i, rho := range densities {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		models[i] = solver.Solve(rho)
		if b.onModel != nil {
			b.onModel(i, models[i])
		}
	}
	return nil
}

func (b *SequenceBuilder) runParallel(ctx context.Context, densities []float64, models []Model) error {
	indices := make(chan int)
	errs := make([]error, b.workers)

	var wg sync.WaitGroup
	for w := 0; w < b.workers; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()

			solver := NewSolver(b.table, b.newStepper(), b.params)
			for i := range indices {
				select {
				case <-ctx.Done():
					errs[worker] = ctx.Err()
					return
				default:
				}

				models[i] = solver.Solve(densities[i])
				if b.onModel != nil {
					b.onModel(i, models[i])
				}
			}
		}(w)
	}

feed:
	for i := range densities {
		select {
		case indices <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(indices)
	wg.Wait()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
