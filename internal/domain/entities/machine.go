package entities

import "strings"

// StageType identifies which production stage a machine or program serves.
type StageType string

const (
	StageWasher   StageType = "washer"
	StageDryer    StageType = "dryer"
	StageFinisher StageType = "finisher"
)

func (s StageType) IsValid() bool {
	switch s {
	case StageWasher, StageDryer, StageFinisher:
		return true
	}
	return false
}

type MachineStatus string

const (
	MachineStatusActive       MachineStatus = "active"
	MachineStatusMaintenance  MachineStatus = "maintenance"
	MachineStatusOutOfService MachineStatus = "out_of_service"
)

// Machine is a physical processing unit.
//
// Capacity is expressed in kilograms for washers and dryers and in pieces for finishers.
type Machine struct {
	ID                   string        `json:"id" yaml:"id" validate:"required"`
	Type                 StageType     `json:"type" yaml:"type" validate:"required,oneof=washer dryer finisher"`
	Brand                string        `json:"brand,omitempty" yaml:"brand"`
	Model                string        `json:"model,omitempty" yaml:"model"`
	Capacity             float64       `json:"capacity" yaml:"capacity" validate:"gt=0"`
	Status               MachineStatus `json:"status" yaml:"status" validate:"required,oneof=active maintenance out_of_service"`
	CompatibleProgramIDs []string      `json:"compatible_program_ids" yaml:"compatible_program_ids"`
}

func (m Machine) IsActive() bool {
	return m.Status == MachineStatusActive
}

func (m Machine) Supports(programID string) bool {
	for _, id := range m.CompatibleProgramIDs {
		if id == programID {
			return true
		}
	}
	return false
}

// DisplayName is "brand model", or the id when both are empty.
func (m Machine) DisplayName() string {
	name := strings.TrimSpace(m.Brand + " " + m.Model)
	if name == "" {
		return m.ID
	}
	return name
}
