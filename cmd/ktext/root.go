package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/stewi1014/ktext"
	"github.com/stewi1014/ktext/encio"
	"github.com/stewi1014/ktext/internal/logging"
)

var version = "dev"

const defaultSize = 256

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity int
		size      int
		newline   bool
		count     bool
	)

	rootCmd := &cobra.Command{
		Use:   "ktext [flags] TOKEN...",
		Short: "Render typed values into a fixed-size text buffer",
		Long: `ktext composes typed values into a buffer of a fixed size, exactly as the ktext
library does, and writes the resulting text to stdout. Text that does not fit is cut off.

Each TOKEN is kind:value, where kind is one of
  u8 u16 u32 u64 usize   unsigned integers (0x and 0b prefixes allowed)
  i8 i16 i32 i64 isize   signed integers
  ptr                    an address in hex, with or without 0x
  bool                   true or false
  char                   a single character
  str                    text, copied as is
  cstr                   zero-terminated text; Go escapes such as \x00 are allowed
  some                   an optional value wrapping another token, i.e. some:u8:5
or the bare word none for an absent optional value.

Example:
  ktext -n u64:1 'str: ' bool:true`,
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity, cmd.ErrOrStderr())
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if size < 0 {
				return encio.NewError(encio.ErrMalformed, fmt.Sprintf("buffer size %v is negative", size), "ktext")
			}

			seq, err := parseTokens(args)
			if err != nil {
				return err
			}

			logger := logging.GetLogger("render")
			w := ktext.NewWriter(make([]byte, size))
			w.Encode(seq)

			logger.Debug().
				Int("size", size).
				Int("values", len(seq)).
				Int("written", w.Len()).
				Int("needed", seq.Size()).
				Bool("truncated", w.Truncated()).
				Msg("Composed")

			if _, err := w.WriteTo(cmd.OutOrStdout()); err != nil {
				return err
			}
			if newline {
				fmt.Fprintln(cmd.OutOrStdout())
			}

			if count {
				status := "complete"
				if w.Truncated() {
					status = "truncated"
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "%d/%d bytes, %s\n", w.Len(), seq.Size(), status)
			}
			if w.Truncated() {
				logger.Warn().Int("size", size).Int("needed", seq.Size()).Msg("Text truncated")
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.Flags().IntVarP(&size, "size", "s", defaultSize, "Capacity of the destination buffer in bytes")
	rootCmd.Flags().BoolVarP(&newline, "newline", "n", false, "Print a newline after the text")
	rootCmd.Flags().BoolVarP(&count, "count", "c", false, "Report bytes written and needed on stderr")

	return rootCmd
}
