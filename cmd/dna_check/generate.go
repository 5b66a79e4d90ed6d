package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"smartdna/internal/config"
	"smartdna/internal/domain"
	"smartdna/internal/llm"
	"smartdna/internal/service"
)

var (
	generateFile    string
	generateHub     string
	generatePrompt  string
	generatePersona string
	generateTimeout time.Duration
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate DNA-aligned content with the configured providers",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		hub, ok := domain.ParseHub(generateHub)
		if !ok {
			return eris.Errorf("unknown hub %q", generateHub)
		}
		dna, err := resolveDNA()
		if err != nil {
			return err
		}

		providers, err := config.LoadProviders()
		if err != nil {
			return eris.Wrap(err, "load provider config")
		}
		gen := newGeneration(ctx, providers)

		prompt := generatePrompt
		if prompt == "" {
			prompt = fmt.Sprintf("Generate a short introduction for %s", hub)
		}
		res, err := gen.Generate(ctx, service.GenerationRequest{
			Prompt:     prompt,
			Category:   service.TaskCategoryForHub(hub),
			DNA:        dna,
			HubContext: string(hub),
		})
		if err != nil {
			return eris.Wrap(err, "generate")
		}

		out := cmd.OutOrStdout()
		for _, a := range res.Attempts {
			fmt.Fprintf(out, "  %-10s %s\n", a.Provider, a.Outcome)
		}
		if res.Unavailable {
			return eris.New(res.Content)
		}
		fmt.Fprintf(out, "\n[%s / %s] tokens=%d cost=$%.4f alignment=%.1f fallback=%t\n\n%s\n",
			res.Provider, res.Model, res.TokensUsed, res.Cost, res.AlignmentScore, res.Fallback, res.Content)
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVarP(&generateFile, "file", "f", "", "YAML transcript fixture used to build the DNA context")
	generateCmd.Flags().StringVar(&generatePersona, "persona", "visionary", "demo persona used when no fixture is given")
	generateCmd.Flags().StringVar(&generateHub, "hub", string(domain.HubOmni), "target hub")
	generateCmd.Flags().StringVarP(&generatePrompt, "prompt", "p", "", "prompt to send")
	generateCmd.Flags().DurationVar(&generateTimeout, "timeout", 30*time.Second, "per-provider timeout")
	rootCmd.AddCommand(generateCmd)
}

func resolveDNA() (domain.DNAContext, error) {
	if generateFile == "" {
		dna, ok := domain.DemoPersonas[generatePersona]
		if !ok {
			return domain.DNAContext{}, eris.Errorf("unknown persona %q", generatePersona)
		}
		return dna, nil
	}
	fixture, err := LoadFixture(generateFile)
	if err != nil {
		return domain.DNAContext{}, err
	}
	profile, err := service.NewDNAEngine(service.NoJitter{}, logger).Analyze("cli", fixture.Company, fixture.Transcripts())
	if err != nil {
		return domain.DNAContext{}, eris.Wrap(err, "analyze fixture")
	}
	return profile.Context(), nil
}

func newGeneration(ctx context.Context, providers *config.ProvidersConfig) *service.GenerationService {
	registry := llm.NewRegistry(providers.Configs())
	dispatcher := llm.NewDefaultDispatcher(ctx, registry, providers.RPS, providers.Burst, logger)
	return service.NewGenerationService(registry, dispatcher, dispatcher, service.NewUsageTracker(registry), generateTimeout, logger)
}
