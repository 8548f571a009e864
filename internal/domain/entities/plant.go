package entities

// Plant bundles the static configuration a laundry runs with: the linen catalog,
// the machine registry and the program catalog of every stage.
type Plant struct {
	Linen    *LinenCatalog
	Machines []Machine
	Programs []Program
}

// ProgramsFor returns the programs of one stage in catalog order.
func (p Plant) ProgramsFor(stage StageType) []Program {
	var out []Program
	for _, pr := range p.Programs {
		if pr.Stage == stage {
			out = append(out, pr)
		}
	}
	return out
}

// MachinesFor returns the machines of one stage in registry order, whatever their status.
func (p Plant) MachinesFor(stage StageType) []Machine {
	var out []Machine
	for _, m := range p.Machines {
		if m.Type == stage {
			out = append(out, m)
		}
	}
	return out
}
