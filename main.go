package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/andareed/profilecard/content"
	"github.com/andareed/profilecard/logging"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Version is overridden at build time with -ldflags "-X main.Version=...".
var Version = "dev"

var (
	cfgFile     string
	contentPath string
	imageSrc    string
	logFile     string
	fps         int
	closeGap    bool

	configErr error
)

var rootCmd = &cobra.Command{
	Use:   "profilecard [flags]",
	Short: "A profile card with a draggable skills drawer",
	Long: `profilecard draws a profile screen in the terminal: a portrait backdrop,
a header with social links, and a skills drawer you can drag up and down with
the mouse. Let go and the drawer springs to its nearest resting place.`,
	Args:             cobra.NoArgs,
	SilenceUsage:     true,
	PersistentPreRun: bindFlags,
	RunE:             runProfile,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and exit",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "Version:", Version)
	},
}

func init() {
	cobra.OnInitialize(initConfig)
	setConfigDefaults(viper.GetViper())

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.profilecard.yaml)")

	flags := rootCmd.Flags()
	flags.StringVarP(&contentPath, "content", "c", "", "YAML file with the profile, social links and skills (default: built in)")
	flags.StringVarP(&imageSrc, "image", "i", "", "portrait file or http(s) URL (default: the one in the content file)")
	flags.StringVar(&logFile, "debug", "", "write debug logs to file and show the drawer status bar")
	flags.IntVar(&fps, "fps", 60, "animation frames per second")
	flags.BoolVar(&closeGap, "close-gap", false, "settle releases between the thresholds on the partial position instead of leaving them")

	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".profilecard")
	}
	viper.SetEnvPrefix("profilecard")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			configErr = err
		}
	}
}

// bindFlags copies config values onto flags the user did not set, so explicit
// flags win over the config file and environment.
func bindFlags(cmd *cobra.Command, _ []string) {
	if err := applyConfig(viper.GetViper(), cmd.Flags()); err != nil {
		configErr = errors.Join(configErr, err)
	}
}

// applyConfig sets every unchanged flag whose name is a key in v. Keys use
// the flag name as is (close-gap); the env replacer maps it to CLOSE_GAP.
func applyConfig(v *viper.Viper, flags *pflag.FlagSet) error {
	var errs []error
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Changed || f.Name == "config" || !v.IsSet(f.Name) {
			return
		}
		val := v.Get(f.Name)
		if err := flags.Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
			errs = append(errs, fmt.Errorf("config value %s=%v: %w", f.Name, val, err))
		}
	})
	return errors.Join(errs...)
}

func runProfile(cmd *cobra.Command, _ []string) error {
	if configErr != nil {
		return fmt.Errorf("error reading config: %w", configErr)
	}

	cleanup, err := logging.SetupLogging(logFile)
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	defer cleanup()

	log.Println("profilecard: Started")
	if used := viper.ConfigFileUsed(); used != "" {
		logging.Infof("config file: %s", used)
	}

	sheet, err := content.Load(contentPath)
	if err != nil {
		return fmt.Errorf("failed to load content: %w", err)
	}

	cfg := loadAppConfig(viper.GetViper())
	cfg.drawer.FPS = fps
	cfg.drawer.CloseGap = cfg.drawer.CloseGap || closeGap
	cfg.image = sheet.Profile.Image
	if imageSrc != "" {
		cfg.image = imageSrc
	}

	m := newModel(cfg, sheet)
	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	if err != nil {
		log.Printf("Tea program error: %v", err)
		return err
	}
	return nil
}
