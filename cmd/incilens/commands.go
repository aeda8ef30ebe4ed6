package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/adaora/incilens/internal/analysis"
	"github.com/adaora/incilens/internal/config"
	"github.com/adaora/incilens/internal/engine"
	"github.com/adaora/incilens/internal/kb"
	"github.com/adaora/incilens/internal/label"
	"github.com/adaora/incilens/internal/profile"
	"github.com/adaora/incilens/internal/remote"
	"github.com/adaora/incilens/internal/storage"
)

// --- analyze ---

var analyzeCmd = &cobra.Command{
	Use:   "analyze [ingredient list]",
	Short: "Analyze a cosmetic ingredient list",
	Long: `Analyze a cosmetic ingredient list and print a safety report.

Examples:
  incilens analyze "Water, Glycerin, Niacinamide, Fragrance"
  incilens analyze --file ./label.pdf
  incilens analyze --url https://example.com/products/glow-serum`,
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")
		url, _ := cmd.Flags().GetString("url")
		asJSON, _ := cmd.Flags().GetBool("json")

		text, source, err := resolveAnalyzeInput(args, file, url)
		if err != nil {
			return err
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		setupLogging(cfg.Log.Level)

		store, err := storage.Open(cfg.Storage.DataDir)
		if err != nil {
			return fmt.Errorf("opening storage: %w", err)
		}
		defer store.Close()

		registry := kb.MustRegistry(kb.Builtin())
		var remoteClient analysis.RemoteAnalyzer
		if cfg.Remote.Enabled {
			remoteClient = remote.NewClientWithBaseURL(cfg.Remote.APIKey, cfg.Remote.BaseURL)
		}
		svc := analysis.New(remoteClient, engine.New(registry), registry, store, profile.NewManager(store))

		res, err := svc.Analyze(cmd.Context(), text, source)
		if err != nil {
			return err
		}

		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		}

		printResult(res)
		return nil
	},
}

func init() {
	analyzeCmd.Flags().String("file", "", "label file to analyze (.pdf or plain text)")
	analyzeCmd.Flags().String("url", "", "product page URL to fetch and analyze")
	analyzeCmd.Flags().Bool("json", false, "print the full result as JSON")
}

func resolveAnalyzeInput(args []string, file, url string) (text, source string, err error) {
	set := 0
	if len(args) > 0 {
		set++
	}
	if file != "" {
		set++
	}
	if url != "" {
		set++
	}
	if set == 0 {
		return "", "", fmt.Errorf("provide an ingredient list, --file, or --url")
	}
	if set > 1 {
		return "", "", fmt.Errorf("provide only one of: ingredient list, --file, --url")
	}

	switch {
	case len(args) > 0:
		return strings.Join(args, " "), "cli", nil

	case file != "":
		var raw string
		if strings.EqualFold(filepath.Ext(file), ".pdf") {
			raw, err = label.FromPDF(file)
		} else {
			var data []byte
			data, err = os.ReadFile(file)
			raw = string(data)
		}
		if err != nil {
			return "", "", fmt.Errorf("reading label file: %w", err)
		}
		return label.IngredientSection(raw), "file", nil

	default:
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return "", "", fmt.Errorf("invalid url: %w", err)
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return "", "", fmt.Errorf("fetching url: %w", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return "", "", fmt.Errorf("url returned status %d", resp.StatusCode)
		}

		raw, err := label.FromHTML(resp.Body)
		if err != nil {
			return "", "", fmt.Errorf("parsing page: %w", err)
		}
		return label.IngredientSection(raw), "url", nil
	}
}

func printResult(res engine.Result) {
	fmt.Printf("\n%s %s\n",
		colorize(colorBold, "Safety score:"),
		colorize(scoreColor(res.SafetyScore), fmt.Sprintf("%d/100", res.SafetyScore)))
	fmt.Printf("%s\n\n", res.Summary)

	fmt.Println(colorize(colorBold, fmt.Sprintf("Ingredients (%d):", res.TotalIngredients)))
	for _, ing := range res.Ingredients {
		tag := string(ing.Safety)
		line := fmt.Sprintf("  %-28s %s", ing.Name, colorize(safetyColor(tag), tag))
		if len(ing.Concerns) > 0 {
			line += "  " + strings.Join(ing.Concerns, "; ")
		}
		fmt.Println(line)
	}

	if len(res.Allergens) > 0 {
		fmt.Printf("\n%s %s\n", colorize(colorBold, "Allergens:"), strings.Join(res.Allergens, ", "))
	}
	if len(res.Irritants) > 0 {
		fmt.Printf("%s %s\n", colorize(colorBold, "Irritants:"), strings.Join(res.Irritants, ", "))
	}

	fmt.Printf("\n%s\n", colorize(colorBold, "Skin compatibility:"))
	for _, st := range kb.SkinTypes {
		fmt.Printf("  %-12s %s\n", st, res.SkinCompatibility[st])
	}

	fmt.Printf("\n%s\n", colorize(colorBold, "Recommendations:"))
	for _, rec := range res.Recommendations {
		fmt.Printf("  • %s\n", rec)
	}
	fmt.Println()
}

// --- ingredient ---

var ingredientCmd = &cobra.Command{
	Use:   "ingredient <name>",
	Short: "Look up a single ingredient in the knowledge base",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.Join(args, " ")

		registry := kb.MustRegistry(kb.Builtin())
		p, ok := registry.Find(name)
		if !ok {
			printWarning("No entry for %q in the knowledge base", name)
			return nil
		}

		fmt.Printf("\n%s (%s)\n", colorize(colorBold, p.CanonicalName), p.Category)
		fmt.Printf("  %s %s\n", colorize(colorBold, "Safety:"), colorize(safetyColor(string(p.SafetyRating)), string(p.SafetyRating)))
		if len(p.Aliases) > 0 {
			fmt.Printf("  %s %s\n", colorize(colorBold, "Aliases:"), strings.Join(p.Aliases, ", "))
		}
		if len(p.Concerns) > 0 {
			fmt.Printf("  %s %s\n", colorize(colorBold, "Concerns:"), strings.Join(p.Concerns, "; "))
		}
		if p.Concentration != "" {
			fmt.Printf("  %s %s\n", colorize(colorBold, "Typical concentration:"), p.Concentration)
		}
		fmt.Printf("  %s\n", p.Description)
		if p.Benefits != "" {
			fmt.Printf("  %s\n", p.Benefits)
		}
		fmt.Println()
		return nil
	},
}

// --- history ---

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage analysis history",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent analyses",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		client, err := newAPIClient()
		if err != nil {
			return err
		}

		resp, err := client.get(fmt.Sprintf("/analyses?limit=%d", limit))
		if err != nil {
			return err
		}

		var analyses []struct {
			ID          string `json:"id"`
			CreatedAt   string `json:"created_at"`
			SafetyScore int    `json:"safety_score"`
			InputText   string `json:"input_text"`
		}
		if err := decodeJSON(resp, &analyses); err != nil {
			return err
		}

		if len(analyses) == 0 {
			fmt.Println("No analyses found.")
			return nil
		}

		for _, a := range analyses {
			input := a.InputText
			if len(input) > 60 {
				input = input[:60] + "..."
			}
			fmt.Printf("%s  %s  %s  %s\n",
				colorize(colorCyan, a.ID[:8]),
				a.CreatedAt,
				colorize(scoreColor(a.SafetyScore), fmt.Sprintf("%3d", a.SafetyScore)),
				input,
			)
		}
		return nil
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a single stored analysis",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}

		resp, err := client.get("/analyses/" + args[0])
		if err != nil {
			return err
		}

		var a any
		if err := decodeJSON(resp, &a); err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(a)
	},
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a stored analysis",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}

		resp, err := client.delete("/analyses/" + args[0])
		if err != nil {
			return err
		}

		var result map[string]string
		if err := decodeJSON(resp, &result); err != nil {
			return err
		}

		printSuccess("Deleted analysis %s", args[0])
		return nil
	},
}

func init() {
	historyListCmd.Flags().Int("limit", 20, "maximum number of analyses to list")
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyDeleteCmd)
}

// --- profile ---

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage the skin profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current skin profile as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}

		resp, err := client.get("/profile")
		if err != nil {
			return err
		}

		var p any
		if err := decodeJSON(resp, &p); err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(p)
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a skin profile field",
	Long: `Set a skin profile field.

Keys:
  skin_type        one of oily, combination, normal, dry, sensitive
  child_mode       true/false
  pregnant         true/false
  known_allergies  JSON array or comma-separated list of ingredient names`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]

		client, err := newAPIClient()
		if err != nil {
			return err
		}

		resp, err := client.patch("/profile", map[string]string{key: value})
		if err != nil {
			return err
		}

		var result map[string]string
		if err := decodeJSON(resp, &result); err != nil {
			return err
		}

		printSuccess("Set %s = %s", key, value)
		return nil
	},
}

func init() {
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileSetCmd)
}

// --- config ---

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or update configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		for _, k := range config.ShowAll(cfg) {
			fmt.Printf("  %s = %s\n", colorize(colorBold, k.Key), k.Value)
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]

		if err := config.SetKey(key, value); err != nil {
			return err
		}

		printSuccess("Set %s = %s", key, value)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
