package cmd

import (
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/arnlink/arnlink"
	"github.com/arnlink/arnlink/internal/config"
	"github.com/arnlink/arnlink/internal/output"
)

var parseOutput string

var parseCmd = &cobra.Command{
	Use:   "parse <arn ...>",
	Short: "Show the parsed fields of one or more ARNs",
	Args:  cobra.MinimumNArgs(1),
	RunE:  parseRun,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&parseOutput, "output", "o", "", "Output format: text or json (default from config)")
}

// parsedView is the JSON projection of a parsed ARN. The console link is
// included when one can be resolved.
type parsedView struct {
	Arn              string `json:"arn"`
	Partition        string `json:"partition"`
	Service          string `json:"service"`
	Region           string `json:"region,omitempty"`
	Account          string `json:"account,omitempty"`
	ResourceType     string `json:"resource_type,omitempty"`
	Resource         string `json:"resource"`
	ResourceRevision string `json:"resource_revision,omitempty"`
	HasPath          bool   `json:"has_path"`
	ConsoleLink      string `json:"console_link,omitempty"`
	Error            string `json:"error,omitempty"`
}

func parseRun(_ *cobra.Command, args []string) error {
	format := parseOutput
	if format == "" {
		format = cfg.Output
	}

	switch format {
	case config.OutputJSON:
		return parseJSON(args)
	case config.OutputText, "":
		parseText(args)
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// parseText prints one field block per input. A failing input is reported
// and processing continues with the next.
func parseText(args []string) {
	for i, input := range args {
		if i > 0 {
			output.Blank()
		}

		a, err := arnlink.Parse(input)
		if err != nil {
			output.Errorf("%s: %v", input, err)
			continue
		}

		output.KeyValue("ARN", a.String())
		output.KeyValue("Partition", a.Partition)
		output.KeyValue("Service", a.Service)
		output.KeyValue("Region", a.Region)
		output.KeyValue("Account", a.Account)
		output.KeyValue("Resource type", a.ResourceType)
		output.KeyValue("Resource", a.Resource)
		if a.ResourceRevision != "" {
			output.KeyValue("Revision", a.ResourceRevision)
		}
		output.KeyValue("Path form", strconv.FormatBool(a.HasPath))

		if link, err := arnlink.ConsoleLink(a); err == nil {
			output.KeyValue("Console link", link)
		}
	}
}

// parseJSON prints a JSON array with one element per input, carrying the
// error message inline so one bad ARN does not abort the rest.
func parseJSON(args []string) error {
	views := make([]parsedView, 0, len(args))
	for _, input := range args {
		a, err := arnlink.Parse(input)
		if err != nil {
			views = append(views, parsedView{Arn: input, Error: err.Error()})
			continue
		}

		view := parsedView{
			Arn:              a.String(),
			Partition:        a.Partition,
			Service:          a.Service,
			Region:           a.Region,
			Account:          a.Account,
			ResourceType:     a.ResourceType,
			Resource:         a.Resource,
			ResourceRevision: a.ResourceRevision,
			HasPath:          a.HasPath,
		}
		if link, err := arnlink.ConsoleLink(a); err == nil {
			view.ConsoleLink = link
		}
		views = append(views, view)
	}

	encoded, err := json.MarshalIndent(views, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding output: %w", err)
	}
	output.Println(string(encoded))
	return nil
}
