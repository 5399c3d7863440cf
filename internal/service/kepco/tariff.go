package kepco

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/PSJ84/jssolar-project-portal-sub002/internal/domain/kepco"
)

//go:embed tariffs.yaml
var defaultTariffYAML []byte

var (
	allVoltages = []kepco.VoltageType{kepco.VoltageLow, kepco.VoltageHigh, kepco.VoltageExtraHigh}
	allSupplies = []kepco.SupplyType{kepco.SupplyOverhead, kepco.SupplyUnderground}
)

// DefaultTariff 내장 단가표
func DefaultTariff() (*kepco.Tariff, error) {
	return ParseTariff(defaultTariffYAML)
}

// LoadTariff 단가표 파일 로드 (path가 비어 있으면 내장 단가표)
func LoadTariff(path string) (*kepco.Tariff, error) {
	if path == "" {
		return DefaultTariff()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tariff file: %w", err)
	}
	return ParseTariff(data)
}

// ParseTariff YAML 단가표 파싱 및 검증
// 모든 전압/공급 방식 조합이 있어야 하며 단가는 양수여야 함
func ParseTariff(data []byte) (*kepco.Tariff, error) {
	var t kepco.Tariff
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("%w: %v", kepco.ErrInvalidTariff, err)
	}

	for _, v := range allVoltages {
		for _, s := range allSupplies {
			rate, ok := t.Lookup(v, s)
			if !ok {
				return nil, fmt.Errorf("%w: missing %s/%s", kepco.ErrInvalidTariff, v, s)
			}
			if rate.PerKW <= 0 || rate.PerKW > kepco.MaxPerKW {
				return nil, fmt.Errorf("%w: %s/%s per_kw must be in (0, %d]", kepco.ErrInvalidTariff, v, s, kepco.MaxPerKW)
			}
			if v == kepco.VoltageLow && (rate.BaseCharge <= 0 || rate.BaseCharge > kepco.MaxBaseCharge) {
				return nil, fmt.Errorf("%w: %s/%s base_charge must be in (0, %d]", kepco.ErrInvalidTariff, v, s, int64(kepco.MaxBaseCharge))
			}
		}
	}

	return &t, nil
}
