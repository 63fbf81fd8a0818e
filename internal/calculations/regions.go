package calculations

import "fmt"

// DepreciationClass selects one of the fixed AfA rates of § 7 EStG. The set
// is closed; the engine never interpolates between rates.
type DepreciationClass string

const (
	OldBuildingPre1925  DepreciationClass = "altbau_vor_1925" // 2.5%
	OldBuildingFrom1925 DepreciationClass = "altbau_ab_1925"  // 2.0%
	NewBuildingFrom2023 DepreciationClass = "neubau_ab_2023"  // 3.0%, § 7 Abs. 5a EStG
	ListedBuilding      DepreciationClass = "denkmalschutz"   // 9.0%
)

var depreciationRates = map[DepreciationClass]float64{
	OldBuildingPre1925:  2.5,
	OldBuildingFrom1925: 2.0,
	NewBuildingFrom2023: 3.0,
	ListedBuilding:      9.0,
}

// Rate returns the annual depreciation percentage for the class.
func (c DepreciationClass) Rate() (float64, error) {
	rate, ok := depreciationRates[c]
	if !ok {
		return 0, fmt.Errorf("unknown depreciation class: %q", c)
	}
	return rate, nil
}

// State identifies a German federal state for the transfer-tax lookup.
type State string

const (
	BadenWuerttemberg     State = "baden_wuerttemberg"
	Bayern                State = "bayern"
	Berlin                State = "berlin"
	Brandenburg           State = "brandenburg"
	Bremen                State = "bremen"
	Hamburg               State = "hamburg"
	Hessen                State = "hessen"
	MecklenburgVorpommern State = "mecklenburg_vorpommern"
	Niedersachsen         State = "niedersachsen"
	NordrheinWestfalen    State = "nordrhein_westfalen"
	RheinlandPfalz        State = "rheinland_pfalz"
	Saarland              State = "saarland"
	Sachsen               State = "sachsen"
	SachsenAnhalt         State = "sachsen_anhalt"
	SchleswigHolstein     State = "schleswig_holstein"
	Thueringen            State = "thueringen"
)

type stateInfo struct {
	DisplayName    string
	TransferTaxPct float64
}

// Transfer-tax rates as of 2024.
var states = map[State]stateInfo{
	BadenWuerttemberg:     {"Baden-Württemberg", 5.0},
	Bayern:                {"Bayern", 3.5},
	Berlin:                {"Berlin", 6.0},
	Brandenburg:           {"Brandenburg", 6.5},
	Bremen:                {"Bremen", 5.0},
	Hamburg:               {"Hamburg", 5.5},
	Hessen:                {"Hessen", 6.0},
	MecklenburgVorpommern: {"Mecklenburg-Vorpommern", 6.0},
	Niedersachsen:         {"Niedersachsen", 5.0},
	NordrheinWestfalen:    {"Nordrhein-Westfalen", 6.5},
	RheinlandPfalz:        {"Rheinland-Pfalz", 5.0},
	Saarland:              {"Saarland", 6.5},
	Sachsen:               {"Sachsen", 5.5},
	SachsenAnhalt:         {"Sachsen-Anhalt", 5.0},
	SchleswigHolstein:     {"Schleswig-Holstein", 6.5},
	Thueringen:            {"Thüringen", 5.0},
}

// TransferTaxRate returns the state's transfer-tax percentage.
func (s State) TransferTaxRate() (float64, error) {
	info, ok := states[s]
	if !ok {
		return 0, fmt.Errorf("unknown state: %q", s)
	}
	return info.TransferTaxPct, nil
}

// DisplayName returns the human-readable state name.
func (s State) DisplayName() (string, error) {
	info, ok := states[s]
	if !ok {
		return "", fmt.Errorf("unknown state: %q", s)
	}
	return info.DisplayName, nil
}
