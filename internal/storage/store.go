// Package storage persists mass-radius sweeps as per-run directories with
// JSON metadata and a CSV curve.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/tovstar/internal/star"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID             string    `json:"id"`
	Timestamp      time.Time `json:"timestamp"`
	EoS            string    `json:"eos"`
	Integrator     string    `json:"integrator"`
	RMin           float64   `json:"rmin"`
	RMax           float64   `json:"rmax"`
	Samples        int       `json:"samples"`
	DensitySamples int       `json:"density_samples"`
	LengthKM       float64   `json:"length_km"`
	MaxMass        float64   `json:"max_mass"`
	MaxMassRadius  float64   `json:"max_mass_radius"`
	MaxMassDensity float64   `json:"max_mass_density"`
}

// Save writes one sweep as <id>/metadata.json plus <id>/curve.csv and
// returns the run id.
func (s *Store) Save(meta RunMetadata, seq *star.Sequence) (string, error) {
	runID := fmt.Sprintf("%s_%d", meta.EoS, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	peak := seq.MaxMass()
	meta.ID = runID
	meta.Timestamp = time.Now()
	meta.DensitySamples = seq.Len()
	meta.MaxMass = peak.Mass
	meta.MaxMassRadius = peak.Radius
	meta.MaxMassDensity = peak.CentralDensity

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(runDir, "curve.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"central_density", "radius", "mass"}); err != nil {
		return "", err
	}

	for i := 0; i < seq.Len(); i++ {
		row := []string{
			strconv.FormatFloat(seq.Densities[i], 'g', -1, 64),
			strconv.FormatFloat(seq.Radii[i], 'g', -1, 64),
			strconv.FormatFloat(seq.Masses[i], 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadCurve reads a stored mass-radius curve back into a Sequence, with
// the maximum-mass index relocated by direct scan.
func (s *Store) LoadCurve(runID string) (*star.Sequence, error) {
	csvPath := filepath.Join(s.baseDir, runID, "curve.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	seq := &star.Sequence{}
	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < 3 {
			continue
		}

		rho, errD := strconv.ParseFloat(record[0], 64)
		radius, errR := strconv.ParseFloat(record[1], 64)
		mass, errM := strconv.ParseFloat(record[2], 64)
		if errD != nil || errR != nil || errM != nil {
			continue
		}

		seq.Densities = append(seq.Densities, rho)
		seq.Radii = append(seq.Radii, radius)
		seq.Masses = append(seq.Masses, mass)
	}

	for i, m := range seq.Masses {
		if m > seq.Masses[seq.MaxIndex] {
			seq.MaxIndex = i
		}
	}

	return seq, nil
}
