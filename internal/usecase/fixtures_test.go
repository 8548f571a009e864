package usecase

import (
	"time"

	"laundry_dispatch/internal/domain/entities"
)

const (
	typeSheet  = "lt-001"
	typeTowel  = "lt-002"
	typeShirt  = "lt-003"
	typeApron  = "lt-004"
	progWash   = "p-wash-flat"
	progWashSh = "p-wash-shaped"
	progDry    = "p-dry"
	progCal    = "p-calender"
	progPress  = "p-press"
)

func machine(id string, stage entities.StageType, capacity float64, programs ...string) entities.Machine {
	return entities.Machine{
		ID:                   id,
		Type:                 stage,
		Brand:                "Electrolux",
		Model:                id,
		Capacity:             capacity,
		Status:               entities.MachineStatusActive,
		CompatibleProgramIDs: programs,
	}
}

func program(id string, stage entities.StageType, categories ...entities.LinenCategory) entities.Program {
	return entities.Program{
		ID:                  id,
		Name:                id,
		Stage:               stage,
		SuitableCategories:  categories,
		DurationMinutes:     45,
		ResourceConsumption: 120,
	}
}

func flatItem(orderID string, kg float64) entities.LinenItem {
	return entities.LinenItem{
		OrderID:     orderID,
		LinenTypeID: typeSheet,
		Category:    entities.LinenCategoryFlat,
		PieceCount:  int(kg),
		WeightGrams: int64(kg * 1000),
	}
}

func testLinenCatalog() *entities.LinenCatalog {
	return entities.NewLinenCatalog(
		[]entities.LinenType{
			{ID: typeSheet, Code: "DRP", Name: "Sheet", Category: entities.LinenCategoryFlat, BillingMode: entities.BillingModeWeight, UnitPrice: 2.5, AverageWeightGrams: 700},
			{ID: typeTowel, Code: "SRV", Name: "Towel", Category: entities.LinenCategoryFlat, BillingMode: entities.BillingModeWeight, UnitPrice: 3, AverageWeightGrams: 400},
			{ID: typeShirt, Code: "CHM", Name: "Shirt", Category: entities.LinenCategoryShaped, BillingMode: entities.BillingModePiece, UnitPrice: 1.2},
			{ID: typeApron, Code: "TAB", Name: "Apron", Category: entities.LinenCategoryShaped, BillingMode: entities.BillingModePiece, UnitPrice: 0.8, AverageWeightGrams: 300},
		},
		map[string]string{
			"drap":      typeSheet,
			"Serviette": typeTowel,
			"chemise":   typeShirt,
			"tablier":   typeApron,
		},
		typeSheet,
	)
}

// testPlant has room for a few hundred kilograms a day: two washers, one dryer, a calender
// for flat goods and a press for shaped goods.
func testPlant() entities.Plant {
	return entities.Plant{
		Linen: testLinenCatalog(),
		Machines: []entities.Machine{
			machine("w-small", entities.StageWasher, 40, progWash, progWashSh),
			machine("w-large", entities.StageWasher, 80, progWash, progWashSh),
			machine("d-1", entities.StageDryer, 120, progDry),
			machine("cal-1", entities.StageFinisher, 200, progCal),
			machine("press-1", entities.StageFinisher, 100, progPress),
		},
		Programs: []entities.Program{
			program(progWash, entities.StageWasher, entities.LinenCategoryFlat),
			program(progWashSh, entities.StageWasher, entities.LinenCategoryShaped, entities.LinenCategoryOther),
			program(progDry, entities.StageDryer, entities.LinenCategoryFlat, entities.LinenCategoryShaped, entities.LinenCategoryOther),
			program(progCal, entities.StageFinisher, entities.LinenCategoryFlat),
			program(progPress, entities.StageFinisher, entities.LinenCategoryShaped, entities.LinenCategoryOther),
		},
	}
}

var runDay = time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)
