package services

import (
	"fmt"

	"drivesense/model"
)

// GenerateAnalysis produces the analysis payload for a vehicle. This is a
// fixed mock standing in for the external AI inference call; only the
// vehicle label varies with the input.
// TODO: swap for the real inference client once the AI endpoint ships.
func GenerateAnalysis(brand, vehicleModel string, year int) model.VehicleAnalysis {
	return model.VehicleAnalysis{
		Vehicle:        fmt.Sprintf("%s %s %d", brand, vehicleModel, year),
		Score:          8.5,
		Recommendation: "Recommended",
		WorthIt:        true,
		Summary:        "Reliable vehicle with good value for money. Recommended for anyone looking for economy and practicality in daily use.",
		Pros: []string{
			"Reliable and economical engine",
			"Low maintenance cost",
			"Good value retention",
			"Parts are easy to find",
			"Efficient fuel consumption",
		},
		Cons: []string{
			"Suspension may show wear",
			"Electrical system needs attention",
			"Air conditioning may need a recharge",
		},
		CommonIssues: []string{
			"Premature shock absorber wear",
			"Alternator problems after 80,000 km",
			"Oil leaks on older engines",
		},
		FuelConsumption: model.FuelConsumption{
			City:    "10.5 km/l",
			Highway: "13.2 km/l",
		},
		MaintenanceCost: "Medium - $800 to $1,200/year",
		TargetAudience:  "Ideal for urban and family use",
		Competitors:     []string{"Toyota Corolla", "Hyundai Elantra", "Volkswagen Jetta"},
		Recalls: []model.Recall{
			{
				Title:       "Airbag recall",
				Severity:    "High",
				Status:      "Resolved",
				Description: "Airbag module replacement",
			},
		},
		CareTips: []string{
			"Inspect suspension every 10,000 km",
			"Change oil every 5,000 km or 6 months",
			"Review the electrical system yearly",
			"Check tire pressure weekly",
		},
	}
}
