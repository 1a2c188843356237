package swash

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/example/cropdb/internal/ports/primary"
)

type linksDoc struct {
	CropScenarios []linkGroup `json:"crop_scenarios"`
	Items         []linkGroup `json:"items"`
}

type linkGroup struct {
	Crop      string       `json:"crop"`
	Scenarios scenarioList `json:"scenarios"`
}

// scenarioList accepts either a JSON array of codes or a single
// comma-separated string, as both occur in hand-maintained link files.
type scenarioList []string

func (s *scenarioList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*s = list
		return nil
	}

	var joined string
	if err := json.Unmarshal(data, &joined); err != nil {
		return fmt.Errorf("scenarios must be an array or a comma-separated string")
	}
	var out []string
	for _, part := range strings.Split(joined, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	*s = out
	return nil
}

// ReadLinksJSON parses a crop-scenario link document and expands each group
// into one link per scenario code, with no waterbody and is_default_run set.
// Groups without a crop name or without scenarios are dropped.
func ReadLinksJSON(path string) ([]primary.CropScenarioLink, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var doc linksDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	groups := doc.CropScenarios
	if len(groups) == 0 {
		groups = doc.Items
	}
	if len(groups) == 0 {
		return nil, fmt.Errorf("no 'crop_scenarios' or 'items' array in %s", path)
	}

	var links []primary.CropScenarioLink
	for _, g := range groups {
		crop := strings.TrimSpace(g.Crop)
		if crop == "" || len(g.Scenarios) == 0 {
			continue
		}
		for _, code := range g.Scenarios {
			code = strings.TrimSpace(code)
			if code == "" {
				continue
			}
			links = append(links, primary.CropScenarioLink{
				Crop:          crop,
				ScenarioCode:  code,
				WaterbodyType: "",
				IsDefaultRun:  1,
			})
		}
	}
	return links, nil
}
