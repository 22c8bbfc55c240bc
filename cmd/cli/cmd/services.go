package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/arnlink/arnlink"
	"github.com/arnlink/arnlink/internal/config"
	"github.com/arnlink/arnlink/internal/output"
)

var servicesOutput string

var servicesCmd = &cobra.Command{
	Use:   "services",
	Short: "List the services and resource types the link table covers",
	Args:  cobra.NoArgs,
	RunE:  servicesRun,
}

func init() {
	rootCmd.AddCommand(servicesCmd)
	servicesCmd.Flags().StringVarP(&servicesOutput, "output", "o", "", "Output format: text or yaml (default from config)")
}

// typeCoverage is one resource type row of the coverage report. Linked is
// false for types the table knows about but has no console link for yet.
type typeCoverage struct {
	Type   string `yaml:"type"`
	Linked bool   `yaml:"linked"`
}

// serviceCoverage groups a service's resource types.
type serviceCoverage struct {
	Service string         `yaml:"service"`
	Types   []typeCoverage `yaml:"types"`
}

// coverage snapshots the link table as a sorted report.
func coverage() []serviceCoverage {
	services := arnlink.Services()
	report := make([]serviceCoverage, 0, len(services))
	for _, service := range services {
		types, _ := arnlink.ResourceTypes(service)
		rows := make([]typeCoverage, 0, len(types))
		for _, rtype := range types {
			rows = append(rows, typeCoverage{
				Type:   rtype,
				Linked: arnlink.Supported(service, rtype),
			})
		}
		report = append(report, serviceCoverage{Service: service, Types: rows})
	}
	return report
}

func servicesRun(_ *cobra.Command, _ []string) error {
	format := servicesOutput
	if format == "" {
		format = cfg.Output
	}

	switch format {
	case config.OutputYAML:
		encoded, err := yaml.Marshal(coverage())
		if err != nil {
			return fmt.Errorf("error encoding output: %w", err)
		}
		output.Printf("%s", encoded)
		return nil
	case config.OutputText, "", config.OutputJSON:
		servicesText()
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func servicesText() {
	for _, svc := range coverage() {
		linked := 0
		for _, row := range svc.Types {
			if row.Linked {
				linked++
			}
		}
		output.Println(fmt.Sprintf("%s (%d/%d resource types linked)", svc.Service, linked, len(svc.Types)))
		for _, row := range svc.Types {
			name := row.Type
			if name == "" {
				name = "(no type segment)"
			}
			marker := " "
			if row.Linked {
				marker = "✓"
			}
			output.Printf("  %s %s\n", marker, name)
		}
	}
}
