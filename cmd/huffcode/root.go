package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/chronos-tachyon/huffcode"
	"github.com/chronos-tachyon/huffcode/codec"
	"github.com/chronos-tachyon/huffcode/internal/config"
	"github.com/chronos-tachyon/huffcode/internal/logging"
	"github.com/chronos-tachyon/huffcode/internal/report"
)

// sampleText is the demonstration input selected by --sample.
const sampleText = "abbcccddddeeeeeeefffffffffffffffff"

type options struct {
	configPath string
	text       string
	textSet    bool
	sample     bool
	mode       string
	format     string
	color      string
	encode     bool
	logLevel   string
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "huffcode [flags] [FILE]",
		Short: "Print the Huffman code of every symbol in the input",
		Long: `huffcode counts the symbols of its input, builds an optimal Huffman tree,
and prints the code assigned to each symbol, shortest codes first.

Input comes from FILE, --text, --sample, or standard input, in that order of
preference.  Empty input prints nothing.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.textSet = cmd.Flags().Changed("text")

			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				fmt.Fprintf(stderr, "huffcode: %v\n", err)
				return err
			}

			logger, err := logging.New(cfg.LogLevel, stderr)
			if err != nil {
				fmt.Fprintf(stderr, "huffcode: %v\n", err)
				return err
			}
			defer func() { _ = logger.Sync() }()

			r := runner{
				cfg:    cfg,
				logger: logger,
				stdin:  stdin,
				stdout: stdout,
			}
			if err := r.run(opts, args); err != nil {
				logger.Error("failed", zap.Error(err))
				return err
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	flags.StringVar(&opts.text, "text", "", "use `STRING` as the input")
	flags.BoolVar(&opts.sample, "sample", false, "use the built-in sample text as the input")
	flags.StringVar(&opts.mode, "mode", string(config.ModeRunes), "split input into \"bytes\" or \"runes\"")
	flags.StringVar(&opts.format, "format", config.FormatText, "output format: text, "+strings.Join(codec.Formats(), ", "))
	flags.StringVar(&opts.color, "color", string(config.ColorAuto), "style text output: auto, always, never")
	flags.BoolVar(&opts.encode, "encode", false, "also print the encoded input")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn, error")

	return cmd
}

// resolveConfig loads the config file and lets explicitly set flags override
// it.
func resolveConfig(cmd *cobra.Command, opts options) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("mode") {
		cfg.Mode = config.Mode(opts.mode)
	}
	if flags.Changed("format") {
		cfg.Format = opts.format
	}
	if flags.Changed("color") {
		cfg.Color = config.Color(opts.color)
	}
	if flags.Changed("encode") {
		cfg.Encode = opts.encode
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

type runner struct {
	cfg    config.Config
	logger *zap.Logger
	stdin  io.Reader
	stdout io.Writer
}

func (r runner) run(opts options, args []string) error {
	input, source, err := r.readInput(opts, args)
	if err != nil {
		return err
	}

	var seq []huffcode.Symbol
	switch r.cfg.Mode {
	case config.ModeBytes:
		seq = huffcode.SymbolsFromBytes(input)
	default:
		seq = huffcode.SymbolsFromString(string(input))
	}

	ft := huffcode.Count(seq)
	r.logger.Debug("counted input",
		zap.String("source", source),
		zap.String("mode", string(r.cfg.Mode)),
		zap.Int("length", len(seq)),
		zap.Int("symbols", ft.Len()))

	if ft.Len() == 0 {
		r.logger.Info("empty input; nothing to do", zap.String("source", source))
		return nil
	}

	ct, tree, err := huffcode.CodesFor(ft)
	if err != nil {
		return fmt.Errorf("failed to build codes: %w", err)
	}
	r.logger.Debug("built tree",
		zap.Int("nodes", tree.Len()),
		zap.Uint8("min_bits", ct.MinSize()),
		zap.Uint8("max_bits", ct.MaxSize()))

	rep := report.Build(ft, ct)
	if r.cfg.Encode {
		bits, err := huffcode.Encode(ct, seq)
		if err != nil {
			return fmt.Errorf("failed to encode input: %w", err)
		}
		if err := verifyEncoded(ct, seq, bits); err != nil {
			return err
		}
		r.logger.Debug("verified encoding", zap.Int("bits", len(bits)))
		rep = rep.WithEncoded(bits)
	}

	return r.write(rep)
}

// verifyEncoded decodes bits with a table-driven Decoder and checks that the
// result is seq.
func verifyEncoded(ct huffcode.CodeTable, seq []huffcode.Symbol, bits huffcode.Bits) error {
	var d huffcode.Decoder
	if err := d.Init(ct); err != nil {
		return fmt.Errorf("failed to verify encoding: %w", err)
	}
	decoded, err := d.DecodeBits(bits)
	if err != nil {
		return fmt.Errorf("failed to verify encoding: %w", err)
	}
	if len(decoded) != len(seq) {
		return fmt.Errorf("failed to verify encoding: decoded %d symbols, expected %d", len(decoded), len(seq))
	}
	for index := range seq {
		if decoded[index] != seq[index] {
			return fmt.Errorf("failed to verify encoding: symbol %d decoded as %s, expected %s", index, decoded[index], seq[index])
		}
	}
	return nil
}

func (r runner) readInput(opts options, args []string) ([]byte, string, error) {
	var sources []string
	if len(args) != 0 {
		sources = append(sources, "FILE")
	}
	if opts.textSet {
		sources = append(sources, "--text")
	}
	if opts.sample {
		sources = append(sources, "--sample")
	}
	if len(sources) > 1 {
		return nil, "", fmt.Errorf("conflicting inputs: %s", strings.Join(sources, ", "))
	}

	switch {
	case len(args) != 0:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, "", fmt.Errorf("failed to read input: %w", err)
		}
		return data, args[0], nil
	case opts.textSet:
		return []byte(opts.text), "--text", nil
	case opts.sample:
		return []byte(sampleText), "--sample", nil
	}

	if r.stdin == nil {
		return nil, "", errors.New("no input")
	}
	data, err := io.ReadAll(r.stdin)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read standard input: %w", err)
	}
	return data, "stdin", nil
}

func (r runner) write(rep report.Report) error {
	if strings.EqualFold(r.cfg.Format, config.FormatText) {
		return rep.WriteText(r.stdout, textStyle(r.cfg.Color, r.stdout))
	}

	c, err := codec.ForFormat[report.Report](r.cfg.Format)
	if err != nil {
		return err
	}
	raw, err := c.Encode(rep)
	if err != nil {
		return fmt.Errorf("failed to encode %s output: %w", r.cfg.Format, err)
	}
	if !codec.Format(strings.ToLower(r.cfg.Format)).Binary() && (len(raw) == 0 || raw[len(raw)-1] != '\n') {
		raw = append(raw, '\n')
	}
	_, err = r.stdout.Write(raw)
	return err
}
