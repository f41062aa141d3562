package wardstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/couchcryptid/aqi-insights-service/internal/domain"
	"gopkg.in/yaml.v3"
)

// LoadFile reads a ward collection from a JSON or YAML file, chosen by
// extension (.json, .yaml, .yml). The file holds a top-level list of wards.
func LoadFile(path string) ([]domain.Ward, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read ward file: %w", err)
	}

	var wards []domain.Ward
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &wards)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &wards)
	default:
		return nil, fmt.Errorf("unsupported ward file extension %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}

	for i := range wards {
		wards[i].ID = strings.TrimSpace(wards[i].ID)
		if wards[i].ID == "" {
			return nil, fmt.Errorf("decode %s: ward %d has no id", filepath.Base(path), i)
		}
	}
	return wards, nil
}
