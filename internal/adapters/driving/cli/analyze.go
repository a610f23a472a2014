package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docsight-cli/internal/core/domain"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [doc-id]",
	Short: "Run full analysis on a stored document",
	Long: `Scores a stored document for sentiment, keywords, and readability,
and reports word and sentence counts.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

var sentimentCmd = &cobra.Command{
	Use:   "sentiment [text]",
	Short: "Classify text sentiment",
	Args:  cobra.ExactArgs(1),
	RunE:  runSentiment,
}

var keywordsCmd = &cobra.Command{
	Use:   "keywords [text]",
	Short: "Extract keywords from text",
	Args:  cobra.ExactArgs(1),
	RunE:  runKeywords,
}

var readabilityCmd = &cobra.Command{
	Use:   "readability [text]",
	Short: "Score text readability",
	Long:  `Computes the Flesch-Kincaid grade level. Prints n/a when the text has no words.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runReadability,
}

var keywordsLimit int

func init() {
	keywordsCmd.Flags().IntVarP(&keywordsLimit, "limit", "n", domain.DefaultKeywordLimit, "maximum number of keywords")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(sentimentCmd)
	rootCmd.AddCommand(keywordsCmd)
	rootCmd.AddCommand(readabilityCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if analysisService == nil {
		return errors.New("analysis service not configured")
	}

	analysis, err := analysisService.Analyze(context.Background(), args[0])
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("document %q not found", args[0])
		}
		return fmt.Errorf("analysis failed: %w", err)
	}

	cmd.Printf("%s (%s)\n", analysis.Title, analysis.ID)
	cmd.Printf("  Sentiment:   %s\n", analysis.Sentiment)
	if len(analysis.Keywords) > 0 {
		cmd.Printf("  Keywords:    %s\n", strings.Join(analysis.Keywords, ", "))
	} else {
		cmd.Printf("  Keywords:    (none)\n")
	}
	if analysis.Readability == domain.ReadabilityFailed {
		cmd.Printf("  Readability: n/a\n")
	} else {
		cmd.Printf("  Readability: grade %.1f\n", analysis.Readability)
	}
	cmd.Printf("  Words:       %d\n", analysis.Stats.WordCount)
	cmd.Printf("  Sentences:   %d\n", analysis.Stats.SentenceCount)
	return nil
}

func runSentiment(cmd *cobra.Command, args []string) error {
	if analysisService == nil {
		return errors.New("analysis service not configured")
	}

	sentiment, err := analysisService.Sentiment(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("sentiment failed: %w", err)
	}

	cmd.Println(sentiment)
	return nil
}

func runKeywords(cmd *cobra.Command, args []string) error {
	if analysisService == nil {
		return errors.New("analysis service not configured")
	}

	keywords, err := analysisService.Keywords(context.Background(), args[0], keywordsLimit)
	if err != nil {
		return fmt.Errorf("keyword extraction failed: %w", err)
	}

	if len(keywords) == 0 {
		cmd.Println("No keywords found.")
		return nil
	}
	cmd.Println(strings.Join(keywords, ", "))
	return nil
}

func runReadability(cmd *cobra.Command, args []string) error {
	if analysisService == nil {
		return errors.New("analysis service not configured")
	}

	score, err := analysisService.Readability(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("readability failed: %w", err)
	}

	if score == domain.ReadabilityFailed {
		cmd.Println("n/a")
		return nil
	}
	cmd.Printf("grade %.1f\n", score)
	return nil
}
