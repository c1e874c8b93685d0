package types

import "fmt"

// MitigationStrategy classifies how a risk is planned to be mitigated,
// following the hierarchy of controls.
type MitigationStrategy string

const (
	StrategyEliminate      MitigationStrategy = "ELIMINATE"
	StrategySubstitute     MitigationStrategy = "SUBSTITUTE"
	StrategyEngineering    MitigationStrategy = "ENGINEERING"
	StrategyAdministrative MitigationStrategy = "ADMINISTRATIVE"
	StrategyPPE            MitigationStrategy = "PPE"
)

// AllMitigationStrategies returns all valid mitigation strategies
func AllMitigationStrategies() []MitigationStrategy {
	return []MitigationStrategy{
		StrategyEliminate,
		StrategySubstitute,
		StrategyEngineering,
		StrategyAdministrative,
		StrategyPPE,
	}
}

// IsValid checks if the mitigation strategy is valid
func (s MitigationStrategy) IsValid() bool {
	switch s {
	case StrategyEliminate,
		StrategySubstitute,
		StrategyEngineering,
		StrategyAdministrative,
		StrategyPPE:
		return true
	default:
		return false
	}
}

// String returns the string representation of the mitigation strategy
func (s MitigationStrategy) String() string {
	return string(s)
}

// DisplayName returns the report label of the strategy
func (s MitigationStrategy) DisplayName() string {
	switch s {
	case StrategyEliminate:
		return "Yok Etme"
	case StrategySubstitute:
		return "Yerine Koyma"
	case StrategyEngineering:
		return "Mühendislik Kontrolleri"
	case StrategyAdministrative:
		return "İdari Önlemler"
	case StrategyPPE:
		return "KKD Kullanımı"
	default:
		return string(s)
	}
}

// ParseMitigationStrategy parses a string into a MitigationStrategy
func ParseMitigationStrategy(s string) (MitigationStrategy, error) {
	strategy := MitigationStrategy(s)
	if !strategy.IsValid() {
		return "", fmt.Errorf("invalid mitigation strategy: %s", s)
	}
	return strategy, nil
}
