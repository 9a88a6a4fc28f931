package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"talent_bridge_backend/internal/engine"
	"talent_bridge_backend/internal/questionnaire"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type scoreOptions struct {
	role       string
	general    string
	category   string
	disability string
	locale     string
	asJSON     bool
}

// NewScoreCommand scores an answer set offline, without a server or the
// survey API.
func NewScoreCommand() *cobra.Command {
	opts := &scoreOptions{}

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a complete answer set offline",
		Long: `Score a complete answer set with the same rules as the server.

Answers are comma separated codes: 0 never, 1 sometimes, 2 always, and "-"
for an unanswered item. The disability section is only needed when the
general section reaches the talent threshold.`,
		Example: `  talent-bridge score --role teacher --general 2,2,2,1,1,2,2,2,1,1 --category adhd --disability 1,1,1,1,1,1,1,1,1,1`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScore(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.role, "role", "teacher", "respondent role: teacher or parent")
	cmd.Flags().StringVar(&opts.general, "general", "", "general section answers")
	cmd.Flags().StringVar(&opts.category, "category", "", "disability category id")
	cmd.Flags().StringVar(&opts.disability, "disability", "", "disability section answers")
	cmd.Flags().StringVar(&opts.locale, "locale", "en", "evaluation text locale: ar or en")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print the result as JSON")
	_ = cmd.MarkFlagRequired("general")

	return cmd
}

func runScore(out io.Writer, opts *scoreOptions) error {
	role, err := questionnaire.ParseRole(opts.role)
	if err != nil {
		return err
	}
	general, err := parseAnswers(opts.general)
	if err != nil {
		return fmt.Errorf("--general: %w", err)
	}
	disability, err := parseAnswers(opts.disability)
	if err != nil {
		return fmt.Errorf("--disability: %w", err)
	}

	result, err := engine.Evaluate(role, general, opts.category, disability)
	if err != nil {
		return err
	}

	if opts.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	printResult(out, result, opts.locale)
	return nil
}

func parseAnswers(raw string) ([]engine.Answer, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	answers := make([]engine.Answer, len(parts))
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "-" {
			answers[i] = engine.Unanswered
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("item %d: %q is not an answer code", i+1, p)
		}
		answers[i] = engine.Answer(n)
	}
	return answers, nil
}

func printResult(out io.Writer, r engine.Result, locale string) {
	bold := color.New(color.Bold)
	green := color.New(color.FgGreen, color.Bold)
	yellow := color.New(color.FgYellow, color.Bold)
	cyan := color.New(color.FgCyan)

	bold.Fprintln(out, "General section")
	fmt.Fprintf(out, "  score:    %d\n", r.GeneralScore)
	fmt.Fprintf(out, "  percent:  %s%%\n", formatPercent(r.GeneralPercent))
	if r.IsTalented {
		green.Fprintln(out, "  talent indicators present")
	} else {
		yellow.Fprintln(out, "  talent indicators insufficient")
	}

	if r.DisabilityCategory != nil {
		bold.Fprintln(out, "Disability section")
		fmt.Fprintf(out, "  category: %s\n", questionnaire.PlanName(*r.DisabilityCategory))
		fmt.Fprintf(out, "  score:    %d\n", *r.DisabilityScore)
		fmt.Fprintf(out, "  percent:  %s%%\n", formatPercent(*r.DisabilityPercent))
		cyan.Fprintf(out, "  plan:     %s.pdf\n", questionnaire.PlanName(*r.PlanArtifactID))
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, r.Evaluation.In(locale))
}

func formatPercent(p float64) string {
	return strconv.FormatFloat(engine.Round(p, 2), 'f', -1, 64)
}
