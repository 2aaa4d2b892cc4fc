package main

import (
	"encoding/json"
	"os"
	"os/signal"
	"syscall"

	"github.com/kapu/paderewski-ai-go/internal/domain"
	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Resolve participant and jury lists and print them as JSON",
	RunE:  runScrape,
}

func init() {
	rootCmd.AddCommand(scrapeCmd)
}

type scrapeResult struct {
	Participants []domain.Person `json:"participants"`
	Jury         []domain.Person `json:"jury"`
}

func runScrape(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	container, err := buildContainer(ctx)
	if err != nil {
		return err
	}

	// The two lists are independent; each resolver still walks its own
	// candidate pages one at a time.
	var result scrapeResult
	p := pool.New().WithMaxGoroutines(2)
	p.Go(func() {
		result.Participants = container.Resolver.ResolveParticipants(ctx)
	})
	p.Go(func() {
		result.Jury = container.Resolver.ResolveJury(ctx)
	})
	p.Wait()

	logger.Info("Scrape finished",
		zap.Int("participants", len(result.Participants)),
		zap.Int("jury", len(result.Jury)))

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(result)
}
