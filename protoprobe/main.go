package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"

	"github.com/synadia-labs/protoprobe/extract"
	"github.com/synadia-labs/protoprobe/wire"
)

var version = "dev"

// ErrInputTooLarge is returned when the input exceeds maxInputBytes.
var ErrInputTooLarge = errors.New("input exceeds maxInputBytes")

// CLI defines the protoprobe command-line interface.
//
// Settings resolve in order: built-in defaults, the YAML file named by
// --config, PROTOPROBE_* environment variables, then command flags.
type CLI struct {
	Config   string `short:"c" help:"YAML config file." type:"existingfile"`
	LogLevel string `help:"Log level (trace, debug, info, warn, error)."`

	Decode  decodeCmd  `cmd:"" help:"Decode a protobuf message without a schema."`
	Extract extractCmd `cmd:"" help:"Extract a typed record from a known response shape."`
	Version versionCmd `cmd:"" help:"Print the version."`
}

// app carries what every command needs once flags are parsed.
type app struct {
	cfg    *Config
	log    zerolog.Logger
	stdin  io.Reader
	stdout io.Writer
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "protoprobe:", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("protoprobe"),
		kong.Description("Inspect protobuf payloads without their .proto schema."),
		kong.Writers(stdout, stderr),
		kong.UsageOnError(),
	)
	if err != nil {
		return err
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := Load(cli.Config)
	if err != nil {
		return err
	}
	if cli.LogLevel != "" {
		cfg.LogLevel = cli.LogLevel
	}
	logger, err := newLogger(cfg, stderr)
	if err != nil {
		return err
	}
	return ctx.Run(&app{cfg: cfg, log: logger, stdin: stdin, stdout: stdout})
}

// read returns the whole input named by path ("-" or "" for stdin),
// refusing anything longer than the configured ceiling.
func (a *app) read(path string) ([]byte, error) {
	r := a.stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}
	limit := a.cfg.MaxInputBytes
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w (%d bytes)", ErrInputTooLarge, limit)
	}
	return data, nil
}

func (a *app) writeJSON(v any, pretty bool) error {
	var (
		out []byte
		err error
	)
	if pretty {
		out, err = json.MarshalIndent(v, "", "  ")
	} else {
		out, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(a.stdout, "%s\n", out)
	return err
}

type decodeCmd struct {
	Input  string `arg:"" optional:"" default:"-" help:"Message file, or - for stdin."`
	Format string `short:"f" help:"Output format: json, diag, cbor or msgpack. Defaults to the configured format."`
	Pretty bool   `short:"p" help:"Indent JSON output."`
	Query  string `short:"q" help:"gjson path evaluated over the JSON rendering."`
	Strict bool   `help:"Fail when a field cannot be decoded instead of dropping it."`
	Unwrap bool   `short:"u" help:"Accept base64 or data-URI wrapped input."`
}

func (d *decodeCmd) Run(a *app) error {
	body, err := a.read(d.Input)
	if err != nil {
		return err
	}
	if d.Unwrap {
		if body, err = extract.Unwrap(body); err != nil {
			return err
		}
	}

	tree, err := wire.DecodeStrict(body)
	if err != nil {
		ev := a.log.Warn().Err(err)
		var de *wire.DecodeError
		if errors.As(err, &de) {
			ev = ev.Int("offset", de.Offset).Uint32("field", de.Field).Int("depth", de.Depth)
		}
		ev.Msg("decode stopped early")
		if d.Strict {
			return err
		}
	}
	a.log.Debug().Int("bytes", len(body)).Int("fields", tree.Len()).Msg("decoded")

	if d.Query != "" {
		return a.query(tree, d.Query)
	}

	format := a.cfg.Format
	if d.Format != "" {
		format = d.Format
	}
	switch format {
	case FormatJSON:
		return a.writeJSON(tree, d.Pretty || a.cfg.Pretty)
	case FormatDiag:
		_, err = fmt.Fprintln(a.stdout, wire.Diag(tree))
		return err
	case FormatCBOR:
		out, err := wire.MarshalCBOR(tree)
		if err != nil {
			return err
		}
		_, err = a.stdout.Write(out)
		return err
	case FormatMsgpack:
		_, err = a.stdout.Write(wire.AppendMsgpack(nil, tree))
		return err
	}
	return fmt.Errorf("unknown format %q", format)
}

// query prints the match of path over the JSON rendering of tree. Strings
// print unquoted; everything else prints as raw JSON.
func (a *app) query(tree *wire.Object, path string) error {
	js, err := tree.MarshalJSON()
	if err != nil {
		return err
	}
	res := gjson.GetBytes(js, path)
	if !res.Exists() {
		return fmt.Errorf("query %q matched nothing", path)
	}
	out := res.Raw
	if res.Type == gjson.String {
		out = res.String()
	}
	_, err = fmt.Fprintln(a.stdout, out)
	return err
}

type extractCmd struct {
	Shape  string `arg:"" enum:"user,plan-status,update-seats,update-plan,team-billing,credit-entries,users,analytics" help:"Response shape: ${enum}."`
	Input  string `arg:"" optional:"" default:"-" help:"Response body file, or - for stdin."`
	Pretty bool   `short:"p" help:"Indent JSON output."`
}

func (e *extractCmd) Run(a *app) error {
	body, err := a.read(e.Input)
	if err != nil {
		return err
	}
	resp, perr := extract.Parse(extract.Shape(e.Shape), body)
	if resp == nil {
		return perr
	}
	if s, ok := resp.(interface{ OK() bool }); ok && !s.OK() {
		a.log.Warn().Str("shape", e.Shape).Msg("extraction unsuccessful")
	}
	if err := a.writeJSON(resp, e.Pretty || a.cfg.Pretty); err != nil {
		return err
	}
	return perr
}

type versionCmd struct{}

func (versionCmd) Run(a *app) error {
	_, err := fmt.Fprintln(a.stdout, "protoprobe", version)
	return err
}
