package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/provide-io/gridcipher/internal/config"
	"github.com/provide-io/gridcipher/pkg/gridcipher"
	"github.com/provide-io/gridcipher/pkg/gridcipher/operations"
	"github.com/provide-io/gridcipher/pkg/logging"
)

const version = "0.1.0"

type cipherFlags struct {
	rows      int
	cols      int
	super     bool
	chain     string
	inputPath string
	logLevel  string
}

func getBuildTimestamp() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.time" {
				if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
					return t.UTC().Format(time.RFC3339)
				}
			}
		}
	}
	// Fallback to binary modification time
	if exePath, err := os.Executable(); err == nil {
		if stat, err := os.Stat(exePath); err == nil {
			return stat.ModTime().UTC().Format(time.RFC3339)
		}
	}
	return time.Now().UTC().Format(time.RFC3339)
}

func newRootCmd() *cobra.Command {
	var versionFlag bool
	flags := &cipherFlags{}

	rootCmd := &cobra.Command{
		Use:           "gridcipher",
		Short:         "Grid transposition cipher",
		Long:          "Encrypt and decrypt text with a rows x cols block transposition cipher.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if versionFlag {
				printVersion(cmd.OutOrStdout())
				return nil
			}
			return cmd.Help()
		},
	}
	rootCmd.Flags().BoolVarP(&versionFlag, "version", "V", false, "Show version information")

	pf := rootCmd.PersistentFlags()
	pf.IntVarP(&flags.rows, "rows", "r", 0, "Number of grid rows (env "+config.EnvRows+")")
	pf.IntVarP(&flags.cols, "cols", "c", 0, "Number of grid columns (env "+config.EnvCols+")")
	pf.BoolVar(&flags.super, "super", false, "Use the super cipher (shift, rotate rows, rotate columns, transpose)")
	pf.StringVar(&flags.chain, "chain", "", "Operation chain, a name or pipe list such as shift|rows|cols|transpose (env "+config.EnvChain+")")
	pf.StringVarP(&flags.inputPath, "input", "i", "", "Read the message from a file, - for stdin")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "encrypt [message...]",
			Short: "Encrypt a message",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runCipher(cmd, args, flags, false)
			},
		},
		&cobra.Command{
			Use:   "decrypt [ciphertext...]",
			Short: "Decrypt a message",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runCipher(cmd, args, flags, true)
			},
		},
		&cobra.Command{
			Use:   "chains",
			Short: "List named operation chains",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return listChains(cmd.OutOrStdout())
			},
		},
	)

	return rootCmd
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "gridcipher %s\n", version)
	fmt.Fprintf(w, "Built: %s\n", getBuildTimestamp())
}

// resolveConfig layers flags that were set explicitly over the environment.
func resolveConfig(cmd *cobra.Command, flags *cipherFlags) (*config.Config, error) {
	cfg := config.Load()

	if cmd.Flags().Changed("rows") {
		cfg.Rows = flags.rows
	}
	if cmd.Flags().Changed("cols") {
		cfg.Cols = flags.cols
	}
	if flags.super && cmd.Flags().Changed("chain") {
		return nil, fmt.Errorf("--super and --chain cannot be combined")
	}
	if flags.super {
		cfg.Chain = "super"
	}
	if cmd.Flags().Changed("chain") {
		cfg.Chain = flags.chain
	}
	if flags.logLevel != "" {
		cfg.LogLevel = flags.logLevel
	}

	return cfg, nil
}

func runCipher(cmd *cobra.Command, args []string, flags *cipherFlags, decrypt bool) error {
	cfg, err := resolveConfig(cmd, flags)
	if err != nil {
		return err
	}

	chain, err := cfg.Validate()
	if err != nil {
		return err
	}

	logger := logging.NewLogger("gridcipher", cfg.LogLevel, cmd.ErrOrStderr())
	logger.Debug("🔧 Configuration resolved", "config", cfg.String())

	c, err := gridcipher.New(cfg.Rows, cfg.Cols, gridcipher.WithLogger(logger))
	if err != nil {
		return err
	}

	message, err := readMessage(cmd, args, flags.inputPath)
	if err != nil {
		return err
	}

	var result string
	if decrypt {
		result, err = c.Decrypt(message, chain)
	} else {
		result, err = c.Encrypt(message, chain)
	}
	if err != nil {
		logger.Error("❌ Cipher failed", "error", err)
		return err
	}

	direction := "encrypt"
	if decrypt {
		direction = "decrypt"
	}
	packed, err := operations.PackOperations(chain)
	if err != nil {
		return err
	}
	logger.Info("✅ Done",
		"direction", direction,
		"chain", operations.OperationsToString(packed),
		"input_chars", len([]rune(message)),
		"output_chars", len([]rune(result)),
	)

	_, err = fmt.Fprintln(cmd.OutOrStdout(), result)
	return err
}

// readMessage takes the message from positional args, --input, or stdin.
// A single trailing newline is dropped from file and stdin input.
func readMessage(cmd *cobra.Command, args []string, inputPath string) (string, error) {
	if len(args) > 0 && inputPath != "" {
		return "", fmt.Errorf("pass the message as arguments or with --input, not both")
	}
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	var data []byte
	var err error
	switch inputPath {
	case "", "-":
		data, err = io.ReadAll(cmd.InOrStdin())
	default:
		data, err = os.ReadFile(inputPath)
	}
	if err != nil {
		return "", fmt.Errorf("reading message: %w", err)
	}

	text := string(data)
	if strings.HasSuffix(text, "\r\n") {
		return strings.TrimSuffix(text, "\r\n"), nil
	}
	return strings.TrimSuffix(text, "\n"), nil
}

func listChains(w io.Writer) error {
	for _, c := range operations.NamedChains() {
		if _, err := fmt.Fprintf(w, "%-10s %s\n", c.Name, operations.ChainSteps(c.Operations)); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
