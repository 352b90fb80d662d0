package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/totaltranslate/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "totaltranslate [text...]",
		Short: "Text translation with provider fallback",
		Long: `totaltranslate translates text through a chain of free translation
endpoints, falling back to the next provider when one fails or returns a
bad answer, and to a built-in phrase dictionary when all of them do.

Text can be given as arguments, piped on stdin, read from a batch file
or extracted from an image.

Examples:
  totaltranslate -t ru Hello world          # Detect the source, translate to Russian
  totaltranslate -f de -t en < letter.txt   # Translate stdin
  totaltranslate --batch phrases.txt        # One request per line, "en>ru: text" allowed
  totaltranslate --image sign.jpg -t en     # Extract text from an image and translate it
  totaltranslate --detect "Bonjour à tous"  # Print the detected language`,
		Args:    cobra.ArbitraryArgs,
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.totaltranslate.yaml)")
	cmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable debug logging")

	// Local flags
	cmd.Flags().StringVarP(&flags.From, "from", "f", flags.From, "Source language code or \"auto\"")
	cmd.Flags().StringVarP(&flags.To, "to", "t", flags.To, "Target language code")
	cmd.Flags().StringSliceVarP(&flags.Providers, "providers", "p", flags.Providers, "Providers in priority order: google, mymemory, libretranslate, openai, gemini")
	cmd.Flags().IntVar(&flags.ChunkSize, "chunk-size", flags.ChunkSize, "Maximum characters sent to a provider at once")
	cmd.Flags().StringVarP(&flags.BatchFile, "batch", "b", "", "Translate every line of a file")
	cmd.Flags().StringVarP(&flags.ImageFile, "image", "i", "", "Extract text from an image file and translate it")
	cmd.Flags().BoolVar(&flags.OCRCleanup, "ocr-cleanup", false, "Fix common character recognition errors in text extracted from images")
	cmd.Flags().BoolVar(&flags.Detect, "detect", false, "Only detect and print the language of the text")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List available OpenAI models for the current API key")
	cmd.Flags().BoolVar(&flags.ShowStats, "stats", false, "Print provider statistics after translating")
	cmd.Flags().IntVar(&flags.ShowHistory, "history", 0, "Show the last N recorded translations")
	cmd.Flags().BoolVar(&flags.ArchiveHistory, "archive-history", false, "Move the history database into the archive directory")
	cmd.Flags().BoolVar(&flags.NoHistory, "no-history", false, "Do not record translations in the history database")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("translate.from", cmd.Flags().Lookup("from"))
	viper.BindPFlag("translate.to", cmd.Flags().Lookup("to"))
	viper.BindPFlag("translate.providers", cmd.Flags().Lookup("providers"))
	viper.BindPFlag("translate.chunk_size", cmd.Flags().Lookup("chunk-size"))
	viper.BindPFlag("format.ocr_cleanup", cmd.Flags().Lookup("ocr-cleanup"))
	viper.BindPFlag("log.verbose", cmd.PersistentFlags().Lookup("verbose"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	SetDefaults(viper.GetViper())

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".totaltranslate" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".totaltranslate")
	}

	// Environment variables, e.g. TOTALTRANSLATE_TRANSLATE_TO
	viper.SetEnvPrefix("TOTALTRANSLATE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("openai.key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("gemini.key")
}
