package catalog

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"laundry_dispatch/internal/domain/entities"
)

var ErrInvalidCatalog = errors.New("invalid catalog")

// File is the on-disk plant configuration.
//
//	linen_types:   [{id, code, name, category, billing_mode, unit_price, average_weight_grams}]
//	aliases:       {collected name: linen type id}
//	default_alias: linen type id for unknown collected names
//	machines:      [{id, type, brand, model, capacity, status, compatible_program_ids}]
//	programs:      [{id, code, name, stage, suitable_categories, duration_minutes, resource_consumption}]
type File struct {
	LinenTypes   []entities.LinenType `yaml:"linen_types" validate:"dive"`
	Aliases      map[string]string    `yaml:"aliases"`
	DefaultAlias string               `yaml:"default_alias"`
	Machines     []entities.Machine   `yaml:"machines" validate:"dive"`
	Programs     []entities.Program   `yaml:"programs" validate:"dive"`
}

// Load reads and validates a catalog file.
func Load(path string) (entities.Plant, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return entities.Plant{}, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML (or JSON) catalog content into a plant.
func Parse(data []byte) (entities.Plant, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return entities.Plant{}, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	if err := f.Validate(); err != nil {
		return entities.Plant{}, err
	}
	return f.Plant(), nil
}

// Validate checks field constraints and cross references: unique ids, aliases and machine
// programs that exist, and programs of the machine's own stage.
func (f File) Validate() error {
	if err := validator.New().Struct(f); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	types := map[string]bool{}
	for _, t := range f.LinenTypes {
		if types[t.ID] {
			return fmt.Errorf("%w: duplicate linen type %q", ErrInvalidCatalog, t.ID)
		}
		types[t.ID] = true
	}
	for name, id := range f.Aliases {
		if !types[id] {
			return fmt.Errorf("%w: alias %q points to unknown linen type %q", ErrInvalidCatalog, name, id)
		}
	}
	if f.DefaultAlias != "" && !types[f.DefaultAlias] {
		return fmt.Errorf("%w: unknown default alias %q", ErrInvalidCatalog, f.DefaultAlias)
	}

	programs := map[string]entities.StageType{}
	for _, p := range f.Programs {
		if _, dup := programs[p.ID]; dup {
			return fmt.Errorf("%w: duplicate program %q", ErrInvalidCatalog, p.ID)
		}
		programs[p.ID] = p.Stage
	}

	machines := map[string]bool{}
	for _, m := range f.Machines {
		if machines[m.ID] {
			return fmt.Errorf("%w: duplicate machine %q", ErrInvalidCatalog, m.ID)
		}
		machines[m.ID] = true
		for _, pid := range m.CompatibleProgramIDs {
			stage, ok := programs[pid]
			if !ok {
				return fmt.Errorf("%w: machine %q lists unknown program %q", ErrInvalidCatalog, m.ID, pid)
			}
			if stage != m.Type {
				return fmt.Errorf("%w: machine %q (%s) lists %s program %q", ErrInvalidCatalog, m.ID, m.Type, stage, pid)
			}
		}
	}
	return nil
}

func (f File) Plant() entities.Plant {
	return entities.Plant{
		Linen:    entities.NewLinenCatalog(f.LinenTypes, f.Aliases, f.DefaultAlias),
		Machines: f.Machines,
		Programs: f.Programs,
	}
}
