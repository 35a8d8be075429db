package main

import (
	"fmt"
	"os"

	"github.com/akamensky/argparse"

	"github.com/nvr-ai/go-nms/benchmark"
	"github.com/nvr-ai/go-nms/profiler"
)

func main() {
	parser := argparse.NewParser("suppress-bench", "Benchmark suppression algorithms over synthetic detection workloads")
	scenarioFile := parser.String("s", "scenarios", &argparse.Options{Help: "Path to a scenario set JSON file", Required: false})
	quick := parser.Flag("q", "quick", &argparse.Options{Help: "Run the quick scenario set", Required: false})
	comprehensive := parser.Flag("c", "comprehensive", &argparse.Options{Help: "Run the comprehensive scenario sweep", Required: false})
	compare := parser.Flag("", "compare", &argparse.Options{Help: "Compare all algorithms over one candidate field", Required: false})
	clusters := parser.Int("", "clusters", &argparse.Options{Help: "Cluster count for --compare", Required: false, Default: 50})
	perCluster := parser.Int("", "percluster", &argparse.Options{Help: "Candidates per cluster for --compare", Required: false, Default: 8})
	output := parser.String("o", "output", &argparse.Options{Help: "Write results JSON to this path", Required: false})
	profile := parser.Flag("p", "profile", &argparse.Options{Help: "Emit periodic runtime profiling reports", Required: false})
	if err := parser.Parse(os.Args); err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(1)
	}

	suite := benchmark.NewSuite()
	if *profile {
		prof := profiler.New(profiler.Options{})
		prof.Start()
		defer prof.Stop()
		suite.SetProfiler(prof)
	}

	if *scenarioFile != "" {
		set, err := benchmark.LoadScenarioSet(*scenarioFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load scenarios: %v\n", err)
			os.Exit(1)
		}
		suite.AddScenarioSet(*set)
		fmt.Printf("Loaded %d scenarios from %s\n", len(set.Scenarios), *scenarioFile)
	}
	if *quick {
		suite.AddScenarioSet(benchmark.QuickScenarios())
	}
	if *comprehensive {
		suite.AddScenarioSet(benchmark.ComprehensiveScenarios())
	}
	if *compare {
		suite.AddScenarioSet(benchmark.ComparisonScenarios(*clusters, *perCluster))
	}
	// Default to the quick set when nothing was requested.
	if *scenarioFile == "" && !*quick && !*comprehensive && !*compare {
		suite.AddScenarioSet(benchmark.QuickScenarios())
	}

	if err := suite.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Benchmark failed: %v\n", err)
		os.Exit(1)
	}

	results := suite.Results()
	fmt.Printf("\n=== SUPPRESSION BENCHMARK RESULTS ===\n")
	var bestThroughput float64
	var bestScenario string
	for _, r := range results {
		if r.BoxesPerSecond > bestThroughput {
			bestThroughput = r.BoxesPerSecond
			bestScenario = r.Scenario.Name
		}
		fmt.Printf("  %-40s %10.0f boxes/s  %6.1f calls/s  in=%d out=%d\n",
			r.Scenario.Name, r.BoxesPerSecond, r.CallsPerSecond, r.InputBoxes, r.OutputBoxes)
	}
	fmt.Printf("\nBest throughput: %s (%.0f boxes/s)\n", bestScenario, bestThroughput)

	if *output != "" {
		if err := suite.WriteResults(*output); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write results: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Results saved to %s\n", *output)
	}
}
