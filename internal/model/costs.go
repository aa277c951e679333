package model

// CareType identifies one of the four care categories the site covers.
type CareType string

const (
	CareAssistedLiving    CareType = "assisted_living"
	CareMemoryCare        CareType = "memory_care"
	CareIndependentLiving CareType = "independent_living"
	CareNursingHome       CareType = "nursing_home"
)

// CareTypes lists all care types in canonical order.
var CareTypes = []CareType{
	CareAssistedLiving,
	CareMemoryCare,
	CareIndependentLiving,
	CareNursingHome,
}

// CareAverage is a monthly/annual cost pair. Annual is always monthly * 12.
type CareAverage struct {
	Monthly int `json:"monthly"`
	Annual  int `json:"annual"`
}

// MonthlyRange is the [low, high] monthly cost band around an average.
type MonthlyRange struct {
	Low  int `json:"low"`
	High int `json:"high"`
}

// CareCost is the full cost record for one care type in one city.
// Invariants: AnnualAvg == MonthlyAvg * 12; Low <= MonthlyAvg <= High.
type CareCost struct {
	MonthlyAvg   int          `json:"monthly_avg"`
	AnnualAvg    int          `json:"annual_avg"`
	MonthlyRange MonthlyRange `json:"monthly_range"`
}

// CityCosts is the per-city cost profile across all four care types.
type CityCosts struct {
	City              string   `json:"city"`
	State             string   `json:"state"`
	AssistedLiving    CareCost `json:"assisted_living"`
	MemoryCare        CareCost `json:"memory_care"`
	IndependentLiving CareCost `json:"independent_living"`
	NursingHome       CareCost `json:"nursing_home"`
	CostFactors       []string `json:"cost_factors"`
}

// Care returns the cost record for the given care type.
func (c *CityCosts) Care(t CareType) *CareCost {
	switch t {
	case CareAssistedLiving:
		return &c.AssistedLiving
	case CareMemoryCare:
		return &c.MemoryCare
	case CareIndependentLiving:
		return &c.IndependentLiving
	case CareNursingHome:
		return &c.NursingHome
	}
	return nil
}

// CostMeta summarizes a cost modeling run.
type CostMeta struct {
	LastUpdated   string   `json:"last_updated"`
	Sources       []string `json:"sources"`
	CitiesCovered int      `json:"cities_covered"`
	StatesCovered int      `json:"states_covered"`
}

// CostData is the cost modeling output file.
type CostData struct {
	NationalAverages map[CareType]CareAverage            `json:"national_averages"`
	StateAverages    map[string]map[CareType]CareAverage `json:"state_averages"`
	Cities           map[string]CityCosts                `json:"cities"`
	Meta             CostMeta                            `json:"meta"`
}
