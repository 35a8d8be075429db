package benchmark

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/nvr-ai/go-nms/suppression"
)

// Scenario describes one suppression workload to measure.
type Scenario struct {
	Name          string                `json:"name"`
	Clusters      int                   `json:"clusters"`
	PerCluster    int                   `json:"per_cluster"`
	Classes       int                   `json:"classes"`
	Algorithm     suppression.Algorithm `json:"algorithm"`
	ClassAgnostic bool                  `json:"class_agnostic"`
	Iterations    int                   `json:"iterations"`
	WarmupRuns    int                   `json:"warmup_runs"`
	Seed          int64                 `json:"seed"`
}

// candidateCount is the size of the synthetic input this scenario generates.
func (s Scenario) candidateCount() int {
	return s.Clusters * s.PerCluster
}

// ScenarioSet represents a collection of related scenarios.
type ScenarioSet struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Scenarios   []Scenario `json:"scenarios"`
}

// LoadScenarioSet reads a scenario set from a JSON file.
func LoadScenarioSet(path string) (*ScenarioSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading scenario file %s", path)
	}
	set := &ScenarioSet{}
	if err := json.Unmarshal(data, set); err != nil {
		return nil, errors.Wrapf(err, "parsing scenario file %s", path)
	}
	return set, nil
}

// QuickScenarios is a small set for smoke-testing throughput.
func QuickScenarios() ScenarioSet {
	return ScenarioSet{
		Name:        "quick",
		Description: "Small workloads across all algorithms",
		Scenarios: []Scenario{
			{Name: "standard-small", Clusters: 20, PerCluster: 5, Classes: 4, Algorithm: suppression.Standard, Iterations: 200, WarmupRuns: 10, Seed: 1},
			{Name: "soft-small", Clusters: 20, PerCluster: 5, Classes: 4, Algorithm: suppression.Soft, Iterations: 200, WarmupRuns: 10, Seed: 1},
			{Name: "weighted-small", Clusters: 20, PerCluster: 5, Classes: 4, Algorithm: suppression.Weighted, Iterations: 200, WarmupRuns: 10, Seed: 1},
			{Name: "adaptive-small", Clusters: 20, PerCluster: 5, Classes: 4, Algorithm: suppression.Adaptive, Iterations: 200, WarmupRuns: 10, Seed: 1},
		},
	}
}

// ComprehensiveScenarios sweeps candidate counts and grouping modes.
func ComprehensiveScenarios() ScenarioSet {
	set := ScenarioSet{
		Name:        "comprehensive",
		Description: "Candidate-count sweep per algorithm, per-class and class-agnostic",
	}
	for _, alg := range []suppression.Algorithm{suppression.Standard, suppression.Soft, suppression.Weighted, suppression.Adaptive} {
		for _, clusters := range []int{10, 50, 200} {
			for _, agnostic := range []bool{false, true} {
				mode := "per-class"
				if agnostic {
					mode = "agnostic"
				}
				set.Scenarios = append(set.Scenarios, Scenario{
					Name:          fmt.Sprintf("%s-%dx8-%s", alg, clusters, mode),
					Clusters:      clusters,
					PerCluster:    8,
					Classes:       8,
					Algorithm:     alg,
					ClassAgnostic: agnostic,
					Iterations:    100,
					WarmupRuns:    10,
					Seed:          42,
				})
			}
		}
	}
	return set
}

// ComparisonScenarios runs every algorithm over the identical candidate
// field so their costs are directly comparable.
func ComparisonScenarios(clusters, perCluster int) ScenarioSet {
	set := ScenarioSet{
		Name:        "algorithm-comparison",
		Description: fmt.Sprintf("All algorithms over one %d-candidate field", clusters*perCluster),
	}
	for _, alg := range []suppression.Algorithm{suppression.Standard, suppression.Soft, suppression.Weighted, suppression.Adaptive} {
		set.Scenarios = append(set.Scenarios, Scenario{
			Name:       fmt.Sprintf("compare-%s", alg),
			Clusters:   clusters,
			PerCluster: perCluster,
			Classes:    6,
			Algorithm:  alg,
			Iterations: 100,
			WarmupRuns: 10,
			Seed:       7,
		})
	}
	return set
}
