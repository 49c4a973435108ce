// Package cmd contains all CLI commands for wishcard.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/f3rmion/wishcard/internal/config"
	"github.com/f3rmion/wishcard/internal/preview"
	"github.com/f3rmion/wishcard/internal/tui"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "wishcard",
	Short: "Make greeting cards and birthday wishes from a short description",
	Long: `wishcard turns a one-line description into three ready-to-share
greeting card designs, or a few facts about someone into a birthday pack
of wishes, captions, a short speech and hashtags.

Cards are rendered locally as PNG or JPEG, square or story-sized.

Running 'wishcard' without arguments launches the interactive studio.`,
	SilenceUsage: true,
	RunE:         runStudio,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// Commands run under a context that is cancelled on interrupt.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/wishcard/config.yaml)")
	pf.Bool("verbose", false, "verbose output")
	pf.String("log-level", "", "log level: debug, info, warn, error")
	pf.String("log-format", "", "log format: text or json")
	pf.Bool("no-history", false, "do not record renders in the gallery")

	_ = viper.BindPFlag("verbose", pf.Lookup("verbose"))
	_ = viper.BindPFlag("log-level", pf.Lookup("log-level"))
	_ = viper.BindPFlag("logging.level", pf.Lookup("log-level"))
	_ = viper.BindPFlag("logging.format", pf.Lookup("log-format"))
	_ = viper.BindPFlag("no-history", pf.Lookup("no-history"))
}

// initConfig loads .env and the config file, then layers WISHCARD_*
// environment variables and flags over it through viper.
func initConfig() {
	_ = godotenv.Load()

	path := cfgFile
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		path = p
	}
	viper.Set("config_file", path)

	viper.SetEnvPrefix("WISHCARD")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()
}

// getConfigFile returns the configuration file path.
func getConfigFile() string {
	return viper.GetString("config_file")
}

// loadConfig reads the config file and applies environment and flag
// overrides for the keys that have them.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(getConfigFile())
	if err != nil {
		return nil, err
	}

	viper.SetDefault("logging.level", cfg.Logging.Level)
	viper.SetDefault("logging.format", cfg.Logging.Format)
	viper.SetDefault("logging.add_source", cfg.Logging.AddSource)
	viper.SetDefault("render.width", cfg.Render.Width)
	viper.SetDefault("output.dir", cfg.Output.Dir)
	viper.SetDefault("assets.dir", cfg.Assets.Dir)
	viper.SetDefault("assets.base_url", cfg.Assets.BaseURL)
	viper.SetDefault("server.addr", cfg.Server.Addr)

	cfg.Logging.Level = viper.GetString("logging.level")
	cfg.Logging.Format = viper.GetString("logging.format")
	cfg.Logging.AddSource = viper.GetBool("logging.add_source")
	cfg.Render.Width = viper.GetInt("render.width")
	cfg.Output.Dir = viper.GetString("output.dir")
	cfg.Assets.Dir = viper.GetString("assets.dir")
	cfg.Assets.BaseURL = viper.GetString("assets.base_url")
	cfg.Server.Addr = viper.GetString("server.addr")
	return cfg, nil
}

// runStudio launches the interactive studio. Logs go to studio.log beside
// the config file since the studio owns the terminal.
func runStudio(cmd *cobra.Command, args []string) error {
	dir := filepath.Dir(getConfigFile())
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	logFile, err := openLog(filepath.Join(dir, "studio.log"))
	if err != nil {
		return fmt.Errorf("opening studio log: %w", err)
	}
	defer logFile.Close()

	app, err := buildApp(logFile)
	if err != nil {
		return err
	}
	defer app.Close()

	mode := preview.Color
	if os.Getenv("NO_COLOR") != "" {
		mode = preview.Mono
	}

	p := tea.NewProgram(
		tui.NewApp(tui.Deps{
			Pipeline:  app.pipeline,
			Gallery:   app.gallery,
			OutputDir: app.cfg.Output.Dir,
			Mode:      mode,
		}),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running studio: %w", err)
	}
	return nil
}
