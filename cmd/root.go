package cmd

import (
	"context"
	"fmt"
	"strings"

	"codeslides/app"
	"codeslides/config"
	"codeslides/keys"
	"codeslides/log"
	"codeslides/slides"
	"codeslides/ui"

	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	deckName  string
	themeMode string
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "codeslides",
	Short: "Present code examples as slides in the terminal",
	Long: `codeslides steps through decks of syntax-highlighted code examples.
Slides can show a second snippet next to the first, or behind a tab, and
changes between slides are animated line by line.`,
	SilenceUsage: true,
	RunE:         runPresenter,
}

func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path (default ~/.codeslides/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	rootCmd.Flags().StringVarP(&deckName, "deck", "d", "", "deck to present, see the decks command")
	rootCmd.Flags().StringVarP(&themeMode, "theme", "t", "", "theme: system, dark or light")
}

func runPresenter(cmd *cobra.Command, args []string) error {
	if err := log.Initialize(verbose); err != nil {
		return err
	}
	defer log.Close()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if themeMode != "" {
		cfg.Theme = config.ThemeMode(themeMode)
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	deck, err := resolveDeck(deckName, cfg)
	if err != nil {
		return err
	}

	if err := keys.InitializeCustomKeyBindings(); err != nil {
		log.ErrorLog.Printf("Failed to load custom keybindings: %v", err)
	}

	// Only ask the terminal when it matters. The query has to happen before
	// the program owns stdin.
	systemDark := true
	if cfg.Theme == config.ThemeSystem {
		systemDark = ui.DetectDarkBackground()
	}

	log.InfoLog.Printf("presenting deck %s", deck)
	return app.Run(cmd.Context(), app.Options{
		Config:     cfg,
		Deck:       deck,
		SystemDark: systemDark,
	})
}

func loadConfig() (*config.Config, error) {
	path := cfgFile
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return nil, err
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// resolveDeck picks the deck from the flag, then the config, then the
// catalog default. An unknown name is an error.
func resolveDeck(flag string, cfg *config.Config) (string, error) {
	name := flag
	if name == "" {
		name = cfg.DefaultDeck
	}
	if name == "" {
		return slides.Default(), nil
	}
	if _, ok := slides.Lookup(name); !ok {
		return "", fmt.Errorf("unknown deck %q (available: %s)", name, strings.Join(slides.Names(), ", "))
	}
	return name, nil
}
