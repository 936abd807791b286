package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pders01/veni/internal/account"
	"github.com/pders01/veni/internal/config"
	"github.com/pders01/veni/internal/debuglog"
	"github.com/pders01/veni/internal/nav"
	"github.com/pders01/veni/internal/tui"
)

// Version is the version of the application, set at build time
var Version = "dev"

var (
	configPath string
	screenFlag string
	logLevel   string
	quiet      bool
)

var rootCmd = &cobra.Command{
	Use:   "veni",
	Short: "Register, Welcome and Login screens in the terminal",
	Long: `veni shows a row of screens with a slide menu underneath.

Step between neighbours with the previous/next keys, or type a screen
name into the menu to jump straight to it.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("veni %s\n", Version)
		fmt.Println("Screen navigator")
		fmt.Println("github.com/pders01/veni")
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configGenCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write the default configuration file",
	Run: func(cmd *cobra.Command, args []string) {
		path := configPath
		if path == "" {
			path = config.DefaultPath()
		}
		if err := config.GenerateDefaultConfig(path); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to generate config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Generated default configuration at: %s\n", path)
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		out, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		fmt.Print(string(out))
		return nil
	},
}

var screensCmd = &cobra.Command{
	Use:   "screens",
	Short: "List the configured screens in order",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		for i, name := range cfg.Navigation.Screens {
			marker := " "
			if name == cfg.Navigation.DefaultScreen {
				marker = "*"
			}
			fmt.Printf("%s %d %s\n", marker, i, name)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to configuration file")
	rootCmd.Flags().StringVar(&screenFlag, "screen", "", "Screen to start on (overrides config)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error or off")
	rootCmd.Flags().BoolVar(&quiet, "quiet", false, "Skip startup banner")

	configCmd.AddCommand(configGenCmd, configShowCmd)
	rootCmd.AddCommand(versionCmd, configCmd, screensCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runTUI() error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if screenFlag != "" {
		cfg.Navigation.DefaultScreen = screenFlag
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	level := cfg.Log.Level
	if logLevel != "" {
		level = logLevel
	}
	if err := debuglog.Setup(debuglog.ParseLogLevel(level), cfg.Log.File); err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer debuglog.Close()
	debuglog.Infof("veni %s starting on %s", Version, cfg.Navigation.DefaultScreen)
	debuglog.Debugf("screens %v, %d slide frames every %s", cfg.Navigation.Screens, cfg.UI.AnimationFrames, cfg.UI.FrameInterval)

	navigator, err := nav.New(cfg.Navigation.Screens, cfg.Navigation.DefaultScreen)
	if err != nil {
		return err
	}

	if !quiet {
		tui.ShowBanner(Version)
	}
	tui.ApplyTheme(cfg.UI.Colors)

	app := tui.NewApp(cfg, navigator, account.NewRegistry())
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		debuglog.Errorf("ui exited: %v", err)
		return fmt.Errorf("running ui: %w", err)
	}
	return nil
}
