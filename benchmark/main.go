// Package main provides a performance benchmarking tool for the roastcurve CLI.
// It generates synthetic roast logs of several batch sizes, runs each command
// multiple times, treating the first successful run as cold and averaging the
// rest as warm, and writes the timings as CSV.
//
// Prerequisites:
// - roastcurve binary installed and available in PATH
//
// Usage: go run benchmark/main.go [work-dir]
//
//	work-dir: Directory where synthetic logs are generated
package main

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// BenchmarkResult holds the result of a benchmark run (cold run and average of warm runs).
type BenchmarkResult struct {
	Batch    string
	Command  string
	ColdTime string
	WarmTime string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	WorkDir  string
	Timeout  time.Duration
	Workers  int
	Runs     int
	Batches  map[string]int // batch name -> number of recordings
	Seconds  int            // length of every synthetic roast
	Commands []string
}

func main() {
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [work-dir]\n", os.Args[0])
		os.Exit(1)
	}

	config := BenchmarkConfig{
		WorkDir:  os.Args[1],
		Timeout:  2 * time.Minute,
		Workers:  8,
		Runs:     4,
		Batches:  map[string]int{"single": 1, "small": 5, "medium": 50, "large": 500},
		Seconds:  900,
		Commands: []string{"analyze", "series", "keypoints"},
	}

	if err := checkPrerequisites(); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	for name, n := range config.Batches {
		if err := generateBatch(filepath.Join(config.WorkDir, name), n, config.Seconds); err != nil {
			fmt.Printf("Error generating batch %s: %v\n", name, err)
			os.Exit(1)
		}
	}

	fmt.Println("Roastcurve Benchmark")
	fmt.Println("====================")
	fmt.Printf("Work dir: %s\n", config.WorkDir)
	fmt.Printf("Runs per command: %d (1 cold + %d warm)\n", config.Runs, config.Runs-1)
	fmt.Println()

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Error saving results: %v\n", err)
		os.Exit(1)
	}
	printSummary(results)
}

// checkPrerequisites verifies that the roastcurve binary is available.
func checkPrerequisites() error {
	if _, err := exec.LookPath("roastcurve"); err != nil {
		return fmt.Errorf("roastcurve binary not found in PATH")
	}
	return nil
}

// generateBatch writes n synthetic roast logs with slightly shifted curves.
func generateBatch(dir string, n, seconds int) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for i := range n {
		var b strings.Builder
		b.WriteString("Time,ET,BT,RoR\n")
		shift := float64(i%7) * 1.5
		for t := 0; t <= seconds; t++ {
			bt := 210 - 2.2*float64(t) + shift
			if t > 55 {
				bt = 90 + 120*(1-math.Exp(-float64(t-55)/400)) + shift
			}
			fmt.Fprintf(&b, "%02d:%02d,%.1f,%.1f,%.1f\n", t/60, t%60, bt+40, bt, 12*math.Exp(-float64(t)/500))
		}
		path := filepath.Join(dir, fmt.Sprintf("roast-%d.csv", i+1))
		if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
			return err
		}
	}
	return nil
}

// runBenchmarks executes every command against every batch.
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult
	for _, batch := range []string{"single", "small", "medium", "large"} {
		dir := filepath.Join(config.WorkDir, batch)
		fmt.Printf("Testing batch: %s (%d recordings)\n", batch, config.Batches[batch])
		for _, command := range config.Commands {
			cold, warm := runBenchmark(config, dir, command)
			results = append(results, BenchmarkResult{
				Batch:    batch,
				Command:  command,
				ColdTime: formatSeconds(cold),
				WarmTime: formatSeconds(average(warm)),
			})
			fmt.Printf("  %-10s cold %s, warm %s\n", command, formatSeconds(cold), formatSeconds(average(warm)))
		}
		fmt.Println()
	}
	return results
}

// runBenchmark runs a command several times and reports cold and warm timings.
// Failed runs are skipped.
func runBenchmark(config BenchmarkConfig, dir, command string) (coldTime float64, warmTimes []float64) {
	coldTime = -1
	for range config.Runs {
		args := []string{command, dir, "--workers", fmt.Sprint(config.Workers), "--output", "json", "--output-file", os.DevNull}
		cmd := exec.Command("roastcurve", args...)

		start := time.Now()
		done := make(chan error, 1)
		if err := cmd.Start(); err != nil {
			continue
		}
		go func() { done <- cmd.Wait() }()

		select {
		case err := <-done:
			if err != nil {
				continue
			}
		case <-time.After(config.Timeout):
			_ = cmd.Process.Kill()
			continue
		}

		elapsed := time.Since(start).Seconds()
		if coldTime < 0 {
			coldTime = elapsed
		} else {
			warmTimes = append(warmTimes, elapsed)
		}
	}
	return coldTime, warmTimes
}

func average(values []float64) float64 {
	if len(values) == 0 {
		return -1
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func formatSeconds(v float64) string {
	if v < 0 {
		return "FAILED"
	}
	return fmt.Sprintf("%.3fs", v)
}

// saveResults writes benchmark results to a CSV file.
func saveResults(results []BenchmarkResult) error {
	filename := fmt.Sprintf("benchmark_results_%s.csv", time.Now().Format("20060102_150405"))
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"Batch", "Command", "Cold", "Warm"}); err != nil {
		return err
	}
	for _, r := range results {
		if err := writer.Write([]string{r.Batch, r.Command, r.ColdTime, r.WarmTime}); err != nil {
			return err
		}
	}
	fmt.Printf("Results saved to: %s\n", filename)
	return nil
}

// printSummary prints a per-command summary of the results.
func printSummary(results []BenchmarkResult) {
	fmt.Println()
	fmt.Println("Summary")
	fmt.Println("=======")
	for _, command := range []string{"analyze", "series", "keypoints"} {
		fmt.Printf("%s:\n", command)
		for _, r := range results {
			if r.Command == command {
				fmt.Printf("  %-8s cold %-10s warm %s\n", r.Batch, r.ColdTime, r.WarmTime)
			}
		}
	}
}
