package countries

import "github.com/sig-0/policyrates/storage/types"

// Fallbacks returns the curated fallback rate table, keyed by country.
// Values track the official central bank announcements and are updated
// by hand; the change column is the move made at the listed announcement,
// not a delta computed from stored history
func Fallbacks() map[types.Country]types.Observation {
	return map[types.Country]types.Observation{
		US:          {Rate: 5.25, Date: "2024-12-18", Change: 0.0},
		SouthKorea:  {Rate: 3.25, Date: "2024-11-21", Change: 0.0},
		Japan:       {Rate: 0.10, Date: "2024-12-19", Change: 0.10},
		Eurozone:    {Rate: 4.25, Date: "2024-12-12", Change: -0.25},
		UK:          {Rate: 5.25, Date: "2024-12-19", Change: 0.0},
		China:       {Rate: 3.45, Date: "2024-12-20", Change: 0.0},
		Canada:      {Rate: 5.00, Date: "2024-12-04", Change: 0.0},
		Australia:   {Rate: 4.35, Date: "2024-12-03", Change: 0.0},
		NewZealand:  {Rate: 5.50, Date: "2024-11-27", Change: 0.0},
		Switzerland: {Rate: 1.50, Date: "2024-12-19", Change: -0.25},
		Sweden:      {Rate: 4.00, Date: "2024-11-27", Change: 0.0},
		Norway:      {Rate: 4.50, Date: "2024-12-19", Change: 0.0},
		India:       {Rate: 6.50, Date: "2024-12-06", Change: 0.0},
		Brazil:      {Rate: 10.50, Date: "2024-12-11", Change: -0.50},
		Mexico:      {Rate: 11.25, Date: "2024-12-12", Change: 0.0},
		Turkey:      {Rate: 45.00, Date: "2024-12-19", Change: 0.0},
		SouthAfrica: {Rate: 8.25, Date: "2024-11-21", Change: 0.0},
		Russia:      {Rate: 16.00, Date: "2024-12-13", Change: 0.0},
		Singapore:   {Rate: 3.00, Date: "2024-10-14", Change: 0.0},
		HongKong:    {Rate: 5.75, Date: "2024-12-19", Change: 0.0},
	}
}
