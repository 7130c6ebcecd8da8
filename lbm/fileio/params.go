// Package fileio holds the file-format collaborators of the simulation core:
// the parameter and obstacle loaders and the result writers. All format and
// IO failures surface here as descriptive errors; the core itself never
// touches a file.
package fileio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/AmosHolland/hpc-submission/lbm"
)

// paramFields names the classic layout's values in file order.
var paramFields = []string{"nx", "ny", "maxIters", "reynolds_dim", "density", "accel", "omega"}

// LoadParams reads a parameter file into a validated Params. Two formats are
// supported: the classic whitespace-separated seven-value layout (nx, ny,
// maxIters, reynolds_dim, density, accel, omega in that order) and a YAML
// mapping selected by a .yaml/.yml extension.
func LoadParams(path string) (lbm.Params, error) {
	var p lbm.Params

	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("could not open input parameter file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &p); err != nil {
			return p, fmt.Errorf("could not parse param file %s: %w", path, err)
		}
	default:
		if err := parsePlainParams(string(data), &p); err != nil {
			return p, fmt.Errorf("could not read param file %s: %w", path, err)
		}
	}

	if err := p.Validate(); err != nil {
		return p, fmt.Errorf("param file %s: %w", path, err)
	}
	return p, nil
}

func parsePlainParams(data string, p *lbm.Params) error {
	fields := strings.Fields(data)
	if len(fields) < len(paramFields) {
		return fmt.Errorf("expected %d values, found %d", len(paramFields), len(fields))
	}

	dests := []any{&p.NX, &p.NY, &p.MaxIters, &p.ReynoldsDim, &p.Density, &p.Accel, &p.Omega}
	for i, name := range paramFields {
		if _, err := fmt.Sscan(fields[i], dests[i]); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}
