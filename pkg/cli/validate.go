package cli

import (
	"context"
	"fmt"
	"maps"

	"github.com/urfave/cli/v3"

	"github.com/K3nguruh/validation/pkg/logger"
	"github.com/K3nguruh/validation/pkg/ruleset"
	"github.com/K3nguruh/validation/pkg/validation"
)

const name = "validate"

// overridden during build with ldflags
var version = "dev"

// Command returns the validate command. Run it with os.Args.
func Command() *cli.Command {
	return &cli.Command{
		Name:                      name,
		Version:                   version,
		Usage:                     "Validate a record against a rule file",
		UsageText:                 "validate --rules FILE [--record FILE] [--set key=value ...] [--output text|json] [--fail-on-error]",
		DisableSliceFlagSeparator: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "rules",
				Aliases:  []string{"r"},
				Required: true,
				Usage:    "Path to the YAML rule file",
			},
			&cli.StringFlag{
				Name:    "record",
				Aliases: []string{"i"},
				Usage:   "Path to a JSON or YAML record to validate",
			},
			&cli.StringSliceFlag{
				Name:  "set",
				Usage: "Set a record field as key=value; overrides the record file (repeatable)",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output format: text or json (default $VALIDATE_OUTPUT or text)",
			},
			&cli.BoolFlag{
				Name:  "fail-on-error",
				Usage: "Exit with non-zero status if any field fails validation",
			},
		},
		Action: run,
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}

	output := cfg.Output
	if cmd.IsSet("output") {
		output = cmd.String("output")
	}
	format, err := parseOutput(output)
	if err != nil {
		return err
	}

	log, err := cfg.logger(logger.WithOutput(cmd.ErrWriter))
	if err != nil {
		return err
	}

	rulesPath := cmd.String("rules")
	rs, err := ruleset.Load(rulesPath)
	if err != nil {
		return fmt.Errorf("failed to load rules: %w", err)
	}

	record := validation.Record{}
	if path := cmd.String("record"); path != "" {
		fromFile, err := ruleset.LoadRecord(path)
		if err != nil {
			return fmt.Errorf("failed to load record: %w", err)
		}
		maps.Copy(record, fromFile)
	}
	assigned, err := ruleset.ParseAssignments(cmd.StringSlice("set"))
	if err != nil {
		return err
	}
	maps.Copy(record, assigned)

	opts, err := cfg.sessionOptions(log)
	if err != nil {
		return err
	}
	s := validation.New(append(opts, rs.Options()...)...)

	log.InfoContext(ctx, "validating record",
		logger.SessionID(s.ID()),
		logger.Count("fields", len(rs.Fields)),
		logger.Count("values", len(record)),
		"rules", rulesPath)

	errs, err := rs.Validate(s, record)
	if err != nil {
		return fmt.Errorf("invalid rule configuration: %w", err)
	}

	if err := writeResult(cmd.Writer, format, errs); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}

	log.InfoContext(ctx, "validation completed", logger.Count("failed", len(errs)))

	if cmd.Bool("fail-on-error") {
		return errs.Err()
	}
	return nil
}
