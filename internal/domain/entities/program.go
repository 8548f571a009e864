package entities

// Program is a processing recipe for one stage.
//
// ResourceConsumption is litres of water for wash programs and kWh for dry and finish programs.
type Program struct {
	ID                  string          `json:"id" yaml:"id" validate:"required"`
	Code                string          `json:"code,omitempty" yaml:"code"`
	Name                string          `json:"name" yaml:"name" validate:"required"`
	Stage               StageType       `json:"stage" yaml:"stage" validate:"required,oneof=washer dryer finisher"`
	SuitableCategories  []LinenCategory `json:"suitable_categories" yaml:"suitable_categories" validate:"dive,oneof=flat shaped other"`
	DurationMinutes     int             `json:"duration_minutes" yaml:"duration_minutes" validate:"gte=0"`
	ResourceConsumption float64         `json:"resource_consumption" yaml:"resource_consumption" validate:"gte=0"`
}

func (p Program) Suits(c LinenCategory) bool {
	for _, s := range p.SuitableCategories {
		if s == c {
			return true
		}
	}
	return false
}
