package main

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/knowledge-engine/plagcheck/internal/batch"
	"github.com/knowledge-engine/plagcheck/internal/config"
	"github.com/knowledge-engine/plagcheck/internal/loader"
	"github.com/knowledge-engine/plagcheck/internal/report"
	"github.com/knowledge-engine/plagcheck/internal/similarity"
	"github.com/knowledge-engine/plagcheck/internal/tokenizer"
)

func newRootCommand(cfg *config.Config) *cobra.Command {
	var summary bool

	rootCmd := &cobra.Command{
		Use:           "plagcheck <reference-file> <candidate-pattern> <output-file>",
		Short:         "Score candidate documents against a reference for plagiarism screening",
		Example:       "  plagcheck orig.txt 'orig_0.8_*' output.txt",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 3 {
				return fmt.Errorf("usage: %s\nexample:\n%s", cmd.UseLine(), cmd.Example)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(cfg.Log, cmd.ErrOrStderr())

			seg, err := tokenizer.NewGSESegmenter(cfg.Tokenizer.DictFiles...)
			if err != nil {
				return err
			}

			driver := batch.NewDriver(
				cfg.Batch,
				log,
				loader.NewLoader(cfg.Loader),
				tokenizer.NewTokenizer(seg, cfg.Tokenizer.MinTokenLen),
				similarity.NewTFIDFCosine(),
			)

			results, err := driver.Run(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			if err := report.Write(args[2], results); err != nil {
				return err
			}
			log.WithField("output", args[2]).Infof("Wrote %d scores", len(results))

			if summary {
				fmt.Fprintln(cmd.OutOrStdout(), report.Summary(results))
			}
			return nil
		},
	}

	rootCmd.Flags().BoolVar(&summary, "summary", false, "Print a score table to stdout")

	return rootCmd
}

// newLogger builds the run's logrus entry writing to out
func newLogger(cfg config.LogConfig, out io.Writer) *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(out)

	switch cfg.Format {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	return logger.WithField("service", "plagcheck")
}
