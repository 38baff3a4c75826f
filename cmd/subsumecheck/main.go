// Command subsumecheck decides whether every JSON value accepted by a
// producer JSON Schema is also accepted by a consumer JSON Schema, and
// prints a concrete counterexample plus diagnosis when it is not.
//
// Usage:
//
//	subsumecheck [flags] <producer-schema> <consumer-schema>
//
// Flags:
//
//	-output-format string   One of "pretty", "json", "minimal" (default: "pretty")
//	-timeout duration       Solver deadline (default: 5s)
//	-locale string          Locale for messages and recommendations, e.g. en, zh-Hans
//	-verbose                Verbose progress logging
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/kaptinlin/go-i18n"
	"golang.org/x/xerrors"

	"github.com/kaptinlin/subsumecheck"
)

var (
	outputFormat = flag.String("output-format", "pretty", "Output format: pretty, json, minimal")
	timeout      = flag.Duration("timeout", 5*time.Second, "Solver deadline")
	verbose      = flag.Bool("verbose", false, "Verbose progress logging")
	locale       = flag.String("locale", "", "Locale for messages and recommendations, e.g. en, zh-Hans (default: untranslated English)")
	help         = flag.Bool("help", false, "Show help message")
)

// jsonReport is the bit-exact shape of `--output-format json` (§6).
type jsonReport struct {
	Compatible        bool     `json:"compatible"`
	Counterexample    any      `json:"counterexample"`
	SolverTime        float64  `json:"solver_time"`
	Explanation       string   `json:"explanation,omitempty"`
	FailedConstraints []string `json:"failed_constraints,omitempty"`
	Recommendations   []string `json:"recommendations,omitempty"`
}

func main() {
	flag.Parse()

	if *help || flag.NArg() != 2 {
		showHelp()
		if *help {
			return
		}
		os.Exit(2)
	}

	producerPath := flag.Arg(0)
	consumerPath := flag.Arg(1)

	if *verbose {
		log.Printf("loading producer schema: %s", producerPath)
		log.Printf("loading consumer schema: %s", consumerPath)
	}

	producerDoc, err := loadDocument(producerPath)
	if err != nil {
		reportError(err)
		os.Exit(2)
	}
	consumerDoc, err := loadDocument(consumerPath)
	if err != nil {
		reportError(err)
		os.Exit(2)
	}

	localizer, err := buildLocalizer(*locale)
	if err != nil {
		reportError(err)
		os.Exit(2)
	}

	start := time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	result, err := subsumecheck.Check(ctx, producerDoc, consumerDoc, subsumecheck.WithTimeout(*timeout))
	elapsed := time.Since(start)
	if err != nil {
		reportError(err)
		os.Exit(2)
	}

	if *verbose {
		log.Printf("solver finished in %s", elapsed)
	}

	switch *outputFormat {
	case "json":
		printJSON(result, elapsed, localizer)
	case "minimal":
		printMinimal(result)
	default:
		printPretty(result, elapsed, localizer)
	}

	if !result.Subsumed {
		os.Exit(1)
	}
}

// buildLocalizer returns nil (meaning: render plain English) when locale is
// empty, otherwise loads the embedded bundle and resolves a Localizer for it.
func buildLocalizer(locale string) (*i18n.Localizer, error) {
	if locale == "" {
		return nil, nil
	}
	bundle, err := subsumecheck.GetI18n()
	if err != nil {
		return nil, err
	}
	return bundle.NewLocalizer(locale), nil
}

// loadDocument reads a schema file, sniffing YAML vs JSON by extension and
// converting YAML to JSON so the rest of the pipeline only ever sees JSON.
func loadDocument(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var doc any
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
		return json.Marshal(doc)
	default:
		return raw, nil
	}
}

func printJSON(result *subsumecheck.SubsumptionResult, elapsed time.Duration, localizer *i18n.Localizer) {
	report := jsonReport{
		Compatible:      result.Subsumed,
		Counterexample:  result.Witness,
		SolverTime:      elapsed.Seconds(),
		Recommendations: result.LocalizedRecommendations(localizer),
	}
	if !result.Subsumed {
		report.Explanation = result.Localize(localizer)
		for _, v := range result.ViolatedInC {
			report.FailedConstraints = append(report.FailedConstraints, v.Label)
		}
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(report)
}

func printMinimal(result *subsumecheck.SubsumptionResult) {
	if result.Subsumed {
		fmt.Println("compatible")
		return
	}
	fmt.Println("incompatible")
}

func printPretty(result *subsumecheck.SubsumptionResult, elapsed time.Duration, localizer *i18n.Localizer) {
	if result.Subsumed {
		color.New(color.FgGreen, color.Bold).Println("✓ compatible")
		fmt.Printf("  %s\n", result.Localize(localizer))
		fmt.Printf("  solved in %s\n", elapsed)
		return
	}

	color.New(color.FgRed, color.Bold).Println("✗ incompatible")
	fmt.Printf("  %s\n", result.Localize(localizer))
	fmt.Printf("  found a counterexample in %s\n\n", elapsed)

	counterexample, _ := json.MarshalIndent(result.Witness, "  ", "  ")
	fmt.Printf("  counterexample:\n  %s\n\n", counterexample)

	if len(result.ViolatedInC) > 0 {
		color.New(color.FgYellow).Println("  violated consumer constraints:")
		for _, v := range result.ViolatedInC {
			fmt.Printf("    - %s\n", v.Label)
			if rec := v.LocalizedRecommendation(localizer); rec != "" {
				fmt.Printf("      recommendation: %s\n", rec)
			}
		}
	}
}

// reportError wraps err in an xerrors chain so -verbose can print the frame
// where it was wrapped; non-verbose output still reads as a plain %v line.
func reportError(err error) {
	wrapped := xerrors.Errorf("subsumecheck: %w", err)
	if *verbose {
		fmt.Fprintf(os.Stderr, "%+v\n", wrapped)
		return
	}
	fmt.Fprintln(os.Stderr, wrapped)
}

func showHelp() {
	fmt.Fprintln(os.Stderr, "Usage: subsumecheck [flags] <producer-schema> <consumer-schema>")
	flag.PrintDefaults()
}
