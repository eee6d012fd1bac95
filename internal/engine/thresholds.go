package engine

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/loupelabs/apilens/internal/models"
)

// thresholdPackFile is the YAML root of an on-disk threshold pack. Tables are
// optional; absent tables keep their defaults.
type thresholdPackFile struct {
	ResponseTimeMs *models.Band `yaml:"response_time_ms"`
	ErrorRatePct   *models.Band `yaml:"error_rate_pct"`
}

// LoadThresholdPack reads a YAML threshold pack and merges it over the
// defaults. An empty or missing path yields the defaults unchanged.
func LoadThresholdPack(path string) (models.Thresholds, error) {
	thresholds := models.DefaultThresholds()
	if path == "" {
		return thresholds, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return thresholds, nil
		}
		return thresholds, err
	}

	var pack thresholdPackFile
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return thresholds, err
	}
	if pack.ResponseTimeMs != nil {
		thresholds.ResponseTimeMs = *pack.ResponseTimeMs
	}
	if pack.ErrorRatePct != nil {
		thresholds.ErrorRatePct = *pack.ErrorRatePct
	}
	return thresholds, nil
}
