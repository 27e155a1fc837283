package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/blast-util/internal/adapters/driven/config/file"
	"github.com/custodia-labs/blast-util/internal/adapters/driven/fasta"
	"github.com/custodia-labs/blast-util/internal/adapters/driven/ncbi"
	"github.com/custodia-labs/blast-util/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/blast-util/internal/core/domain"
	"github.com/custodia-labs/blast-util/internal/core/ports/driven"
	"github.com/custodia-labs/blast-util/internal/core/services"
	"github.com/custodia-labs/blast-util/internal/logger"
)

// Env is the process environment handed to Run.
type Env struct {
	// Args are the command-line arguments without the program name.
	Args []string

	// Dir is the working directory relative paths resolve against.
	Dir string

	Stdout io.Writer
	Stderr io.Writer
}

// Adapter factories, replaced in tests.
var (
	newSequenceOpener = func() driven.SequenceOpener { return fasta.Opener{} }
	newSearchClient   = func(opts ncbi.Options) driven.SearchClient { return ncbi.NewClient(opts) }
	newResultStore    = func() driven.ResultStore { return sqlite.NewResultStore() }
)

type rootOptions struct {
	inputFile    string
	database     string
	outputFolder string
	limit        int
	matrix       string
	eValue       float64
	configPath   string
	verbose      bool
}

// Run executes the command line in env and returns the process exit code.
// Interruption through ctx is not a failure.
func Run(ctx context.Context, env Env) int {
	cmd := newRootCmd(env)
	cmd.SetArgs(env.Args)
	cmd.SetOut(env.Stdout)
	cmd.SetErr(env.Stderr)

	err := cmd.ExecuteContext(ctx)
	switch {
	case err == nil:
		return 0
	case domain.IsAborted(err):
		fmt.Fprintln(env.Stdout, "\nBLAST search aborted.")
		return 0
	default:
		fmt.Fprintf(env.Stderr, "Operation failed:\n%s\n", err)
		return 1
	}
}

func newRootCmd(env Env) *cobra.Command {
	opts := &rootOptions{}
	defaults := domain.DefaultSearchParameters()

	cmd := &cobra.Command{
		Use:   "blast-util --input-file FILE [flags]",
		Short: "Run FASTA sequences through NCBI BLAST and store the hits",
		Long: `Submits every sequence of a FASTA file to the NCBI BLAST service, one at a
time, and appends the title, percent identity and expect value of each hit
to {output-folder}/{input file name}_blast_results.db.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBlast(cmd, env, opts)
		},
	}
	cmd.SetVersionTemplate(versionTemplate)

	f := cmd.Flags()
	f.StringVar(&opts.inputFile, "input-file", "", "FASTA file with the query sequences (required)")
	f.StringVar(&opts.database, "database", defaults.Database, "BLAST database to search")
	f.StringVar(&opts.outputFolder, "output-folder", "", "folder for the result store (default: working directory)")
	f.IntVar(&opts.limit, "limit", defaults.Limit, "maximum number of hits per sequence")
	f.StringVar(&opts.matrix, "matrix", "", "scoring matrix: "+strings.Join(domain.KnownMatrices, ", "))
	f.Float64Var(&opts.eValue, "e-value", defaults.EValue, "expect value threshold")
	f.StringVar(&opts.configPath, "config", "", "TOML configuration file")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log progress details to stderr")
	_ = cmd.MarkFlagRequired("input-file")

	return cmd
}

func runBlast(cmd *cobra.Command, env Env, opts *rootOptions) error {
	logger.SetOutput(env.Stderr)
	logger.SetVerbose(opts.verbose)

	cfgStore, err := file.NewConfigStore(resolvePath(env.Dir, opts.configPath))
	if err != nil {
		return err
	}
	if cfgStore.Path() != "" {
		logger.Debug("Using config file %s", cfgStore.Path())
	}

	runCfg := buildRunConfig(cmd, env, opts, cfgStore)
	if runCfg.Params.Matrix != "" && !slices.Contains(domain.KnownMatrices, runCfg.Params.Matrix) {
		logger.Warn("Matrix %q is not one of %v; the service may reject it", runCfg.Params.Matrix, domain.KnownMatrices)
	}

	svc := services.NewBlastService(
		newSequenceOpener(),
		newSearchClient(ncbiOptions(cfgStore)),
		newResultStore(),
		NewConsoleReporter(env.Stdout),
	)

	report, err := svc.Run(cmd.Context(), runCfg)
	if report != nil {
		logger.Info("Committed %d rows for %d sequences to %s", report.Rows, report.Queries, report.StorePath)
	}
	return err
}

// buildRunConfig merges flags, the config file and defaults, in that order.
func buildRunConfig(cmd *cobra.Command, env Env, opts *rootOptions, cfg driven.ConfigStore) domain.RunConfig {
	params := domain.DefaultSearchParameters()
	if p := cfg.GetString("ncbi.program"); p != "" {
		params.Program = p
	}

	flags := cmd.Flags()
	params.Database = pickString(flags.Changed("database"), opts.database, cfg, "search.database")
	params.Matrix = pickString(flags.Changed("matrix"), opts.matrix, cfg, "search.matrix")

	params.Limit = opts.limit
	if _, ok := cfg.Get("search.limit"); ok && !flags.Changed("limit") {
		params.Limit = cfg.GetInt("search.limit")
	}
	params.EValue = opts.eValue
	if _, ok := cfg.Get("search.e_value"); ok && !flags.Changed("e-value") {
		params.EValue = cfg.GetFloat("search.e_value")
	}

	output := pickString(flags.Changed("output-folder"), opts.outputFolder, cfg, "search.output_folder")
	if output == "" {
		output = env.Dir
	}

	return domain.RunConfig{
		InputFile:    resolvePath(env.Dir, opts.inputFile),
		OutputFolder: resolvePath(env.Dir, output),
		Params:       params,
	}
}

// pickString returns the flag value when set, else the config value, else the flag default.
func pickString(changed bool, flagValue string, cfg driven.ConfigStore, key string) string {
	if changed {
		return flagValue
	}
	if v := cfg.GetString(key); v != "" {
		return v
	}
	return flagValue
}

// ncbiOptions overlays the [ncbi] table onto the client defaults.
func ncbiOptions(cfg driven.ConfigStore) ncbi.Options {
	opts := ncbi.DefaultOptions()
	if v := cfg.GetString("ncbi.endpoint"); v != "" {
		opts.Endpoint = v
	}
	if v := cfg.GetString("ncbi.program"); v != "" {
		opts.Program = v
	}
	if v := cfg.GetString("ncbi.tool"); v != "" {
		opts.Tool = v
	}
	opts.Email = cfg.GetString("ncbi.email")

	durations := map[string]*time.Duration{
		"ncbi.request_interval": &opts.RequestInterval,
		"ncbi.poll_interval":    &opts.PollInterval,
		"ncbi.max_initial_wait": &opts.MaxInitialWait,
		"ncbi.http_timeout":     &opts.HTTPTimeout,
	}
	for key, dst := range durations {
		if _, ok := cfg.Get(key); !ok {
			continue
		}
		d := cfg.GetDuration(key)
		if d == 0 && cfg.GetString(key) != "0s" && cfg.GetString(key) != "0" {
			logger.Warn("Ignoring %s: %q is not a duration", key, cfg.GetString(key))
			continue
		}
		*dst = d
	}
	return opts
}

func resolvePath(dir, path string) string {
	if path == "" || filepath.IsAbs(path) || dir == "" {
		return path
	}
	return filepath.Join(dir, path)
}
