package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aleeshaaz/lostfound/internal/artifact"
	"github.com/aleeshaaz/lostfound/internal/config"
	"github.com/aleeshaaz/lostfound/internal/engine"
	"github.com/aleeshaaz/lostfound/internal/inference"
	"github.com/aleeshaaz/lostfound/internal/logging"
	"github.com/aleeshaaz/lostfound/internal/metrics"
	"github.com/aleeshaaz/lostfound/internal/model"
)

func newClassifyCmd() *cobra.Command {
	var showProbs bool

	cmd := &cobra.Command{
		Use:   "classify TEXT...",
		Short: "Score report text into an urgency tier",
		Long: `Loads the persisted pair and scores the given text. With no loadable
pair the command still answers, printing the Unrated sentinel — the same
degradation the report intake flow sees.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}

			logger, err := logging.New(cfg.Logging.Level)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			metrics.Register()

			svc := inference.NewService(logger)
			_ = svc.Load(cfg.Artifact.Dir) // failure already logged; Disabled mode answers

			text := strings.Join(args, " ")
			tier := svc.ClassifyUrgency(text)
			fmt.Println(tier)

			if showProbs && svc.Mode() == inference.ModeReady {
				// Probabilities need direct pair access; reload for the one-shot CLI.
				vec, cls, err := artifact.Load(cfg.Artifact.Dir)
				if err != nil {
					return err
				}
				printProbs(engine.New(vec, cls).Probabilities(text))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showProbs, "probs", false, "print the per-tier probability distribution")
	return cmd
}

func printProbs(probs map[model.UrgencyTier]float64) {
	tiers := make([]model.UrgencyTier, 0, len(probs))
	for t := range probs {
		tiers = append(tiers, t)
	}
	sort.Slice(tiers, func(i, j int) bool { return probs[tiers[i]] > probs[tiers[j]] })
	for _, t := range tiers {
		fmt.Printf("  %-12s %.4f\n", t, probs[t])
	}
}
