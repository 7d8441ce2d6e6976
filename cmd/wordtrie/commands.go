package main

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/milden6/trie"
	"github.com/milden6/trie/internal/config"
	"github.com/milden6/trie/wordlist"
)

// app is shared by every subcommand. The trie is built once in the root's
// PersistentPreRunE.
type app struct {
	v          *viper.Viper
	configPath string
	cfg        *config.Config
	words      *trie.Trie
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	rootCmd := &cobra.Command{
		Use:   "wordtrie",
		Short: "Query a dictionary through a prefix tree",
		Long: `wordtrie loads a word list into a trie and answers membership,
prefix and completion queries against it.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (yaml, json or toml)")
	flags.String("dict", "", "dictionary file, one or more words per line")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	a.v.BindPFlag("dictionary.path", flags.Lookup("dict"))
	a.v.BindPFlag("log.level", flags.Lookup("log-level"))

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "contains WORD...",
			Short: "Report whether each word is in the dictionary",
			Args:  cobra.MinimumNArgs(1),
			RunE:  a.runContains,
		},
		&cobra.Command{
			Use:   "prefix PREFIX...",
			Short: "Report whether any dictionary word starts with each prefix",
			Args:  cobra.MinimumNArgs(1),
			RunE:  a.runPrefix,
		},
		&cobra.Command{
			Use:     "complete PREFIX",
			Short:   "List dictionary words starting with a prefix, in order",
			Aliases: []string{"c"},
			Args:    cobra.ExactArgs(1),
			RunE:    a.runComplete,
		},
		&cobra.Command{
			Use:   "stats",
			Short: "Print the number of words and nodes",
			Args:  cobra.NoArgs,
			RunE:  a.runStats,
		},
	)

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.v, a.configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	level, _ := cfg.Log.ParseLevel()
	zerolog.SetGlobalLevel(level)
	a.cfg = cfg

	words, err := wordlist.Load(cfg.Dictionary.Path)
	if err != nil {
		return err
	}
	if cfg.Dictionary.Shuffle {
		wordlist.Shuffle(words, cfg.Dictionary.Seed)
	}

	a.words = trie.New()
	skipped := 0
	for _, word := range words {
		if err := a.words.Insert(word); err != nil {
			log.Debug().Err(err).Msg("Skipping word")
			skipped++
		}
	}
	if skipped > 0 {
		log.Warn().Int("skipped", skipped).Msg("Dictionary words outside a-z were not loaded")
	}

	log.Info().
		Str("path", cfg.Dictionary.Path).
		Int("words", a.words.NumAdded()).
		Int("nodes", a.words.NumNodes()).
		Msg("Built trie")
	return nil
}

func (a *app) runContains(cmd *cobra.Command, args []string) error {
	return a.answer(cmd, args, a.words.Contains)
}

func (a *app) runPrefix(cmd *cobra.Command, args []string) error {
	return a.answer(cmd, args, a.words.IsPrefix)
}

func (a *app) answer(cmd *cobra.Command, args []string, query func(string) bool) error {
	for _, arg := range args {
		if err := trie.Validate(arg); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", arg, strconv.FormatBool(query(arg)))
	}
	return nil
}

func (a *app) runComplete(cmd *cobra.Command, args []string) error {
	if err := trie.Validate(args[0]); err != nil {
		return err
	}
	for _, word := range a.words.Extend(args[0], nil) {
		fmt.Fprintln(cmd.OutOrStdout(), word)
	}
	return nil
}

func (a *app) runStats(cmd *cobra.Command, args []string) error {
	fmt.Fprintf(cmd.OutOrStdout(), "words %d\nnodes %d\n", a.words.NumAdded(), a.words.NumNodes())
	return nil
}
