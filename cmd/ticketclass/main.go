package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/lluichi/ticket-classifier/pkg/adapter"
	"github.com/lluichi/ticket-classifier/pkg/config"
	"github.com/lluichi/ticket-classifier/pkg/pipeline"
	"github.com/lluichi/ticket-classifier/pkg/schema"
	"github.com/spf13/cobra"
)

var (
	adapterFlag  string
	modelFlag    string
	attemptsFlag int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ticketclass",
		Short: "Structured support-ticket classification via LLM with deterministic guardrails",
		Long: `Ticketclass sends customer support messages to a generative model for
	structured classification (urgency, intent, product area, language,
	confidence, suggested reply), retries transient failures with exponential
	backoff, and applies deterministic escalation rules the model is not
	trusted to enforce. It always produces a well-formed result; total model
	failure degrades to a safe classification escalated to a human.`,
	}

	rootCmd.PersistentFlags().StringVar(&adapterFlag, "adapter", "", "override the configured provider adapter")
	rootCmd.PersistentFlags().StringVar(&modelFlag, "model", "", "override the configured model")
	rootCmd.PersistentFlags().IntVar(&attemptsFlag, "attempts", 0, "override max classification attempts")

	rootCmd.AddCommand(classifyCmd())
	rootCmd.AddCommand(demoCmd())
	rootCmd.AddCommand(modelsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func classifyCmd() *cobra.Command {
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "classify [message]",
		Short: "Classify one support message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			message := strings.TrimSpace(args[0])
			if message == "" {
				return fmt.Errorf("message must not be empty")
			}

			classifier, err := buildClassifier()
			if err != nil {
				return err
			}

			result := classifier.Classify(cmd.Context(), message)
			return printClassification(result, jsonFlag)
		},
	}

	cmd.Flags().BoolVar(&jsonFlag, "json", false, "print the classification as JSON")
	return cmd
}

func demoCmd() *cobra.Command {
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Classify a set of sample tickets",
		Long: `Runs the pipeline over a fixed set of sample tickets covering the
	urgency spectrum, multiple channels, and a non-English message. A short
	pause between tickets keeps within provider rate limits.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			classifier, err := buildClassifier()
			if err != nil {
				return err
			}

			for i, ticket := range sampleTickets {
				if i > 0 {
					time.Sleep(2 * time.Second)
				}
				fmt.Printf("\n=== Ticket %d (%s) ===\n", i+1, ticket.Channel)
				fmt.Printf("Message: %s\n", truncate(ticket.Message, 80))

				result := classifier.Classify(cmd.Context(), ticket.classifierInput())
				if err := printClassification(result, jsonFlag); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonFlag, "json", false, "print classifications as JSON")
	return cmd
}

func modelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List configured adapters and their models",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			adapters, err := createAdapters(cfg)
			if err != nil {
				return err
			}

			names := make([]string, 0, len(adapters))
			for name := range adapters {
				names = append(names, name)
			}
			sort.Strings(names)

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ADAPTER\tMODEL")
			for _, name := range names {
				for _, model := range adapters[name].Models() {
					fmt.Fprintf(w, "%s\t%s\n", name, model)
				}
			}
			return w.Flush()
		},
	}
}

// buildClassifier wires config, the selected gateway, and the pipeline.
// Missing credentials surface here, before any classification is attempted.
func buildClassifier() (*pipeline.Classifier, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	adapterName := cfg.Adapter
	if adapterFlag != "" {
		adapterName = adapterFlag
	}
	model := cfg.Model
	if modelFlag != "" {
		model = modelFlag
	}

	if !cfg.HasAdapter(adapterName) {
		return nil, fmt.Errorf("no API key configured for adapter %q", adapterName)
	}

	adapters, err := createAdapters(cfg)
	if err != nil {
		return nil, err
	}

	gateway, ok := adapters[adapterName]
	if !ok {
		return nil, fmt.Errorf("adapter %q not available", adapterName)
	}

	maxAttempts := cfg.MaxAttempts
	if attemptsFlag > 0 {
		maxAttempts = attemptsFlag
	}

	fmt.Fprintf(os.Stderr, "Classifying with %s/%s\n", gateway.Name(), model)

	classifier := pipeline.New(gateway, model, pipeline.Options{
		MaxAttempts: maxAttempts,
		Logger: func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		},
	})
	return classifier, nil
}

// createAdapters constructs every adapter with a configured credential,
// plus the credential-free mock adapter for offline runs.
func createAdapters(cfg *config.Config) (map[string]adapter.Adapter, error) {
	adapters := map[string]adapter.Adapter{
		"mock": adapter.NewMockAdapter(),
	}

	if cfg.GoogleAPIKey != "" {
		a, err := adapter.NewGoogleAdapter(cfg.GoogleAPIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create google adapter: %w", err)
		}
		adapters["google"] = a
	}
	if cfg.AnthropicAPIKey != "" {
		a, err := adapter.NewAnthropicAdapter(cfg.AnthropicAPIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create anthropic adapter: %w", err)
		}
		adapters["anthropic"] = a
	}
	if cfg.OpenAIAPIKey != "" {
		a, err := adapter.NewOpenAIAdapter(cfg.OpenAIAPIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create openai adapter: %w", err)
		}
		adapters["openai"] = a
	}

	return adapters, nil
}

func printClassification(c schema.Classification, asJSON bool) error {
	if asJSON {
		data, err := json.MarshalIndent(c, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "urgency\t%s\n", c.Urgency)
	fmt.Fprintf(w, "intent\t%s\n", c.Intent)
	fmt.Fprintf(w, "product_area\t%s\n", c.ProductArea)
	fmt.Fprintf(w, "language\t%s\n", c.Language)
	fmt.Fprintf(w, "confidence\t%.2f\n", c.Confidence)
	fmt.Fprintf(w, "suggested_reply\t%s\n", c.SuggestedReply)
	fmt.Fprintf(w, "needs_human\t%t\n", c.NeedsHuman)
	return w.Flush()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
