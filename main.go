package main

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/Nydauron/trackside/app"
	"github.com/Nydauron/trackside/athletics"
	"github.com/Nydauron/trackside/config"
	"github.com/Nydauron/trackside/export"
	"github.com/Nydauron/trackside/logger"
	"github.com/Nydauron/trackside/parsers"
	"github.com/Nydauron/trackside/prompts"
	"github.com/Nydauron/trackside/setup"
	"github.com/Nydauron/trackside/ui"
	"github.com/Nydauron/trackside/writers"
)

const (
	outputFlag       = "output"
	formatFlag       = "format"
	eventFlag        = "event"
	idFlag           = "id"
	nameFlag         = "name"
	kindFlag         = "kind"
	disciplineFlag   = "discipline"
	phaseFlag        = "phase"
	lanesFlag        = "lanes"
	attemptsFlag     = "attempts"
	windLimitFlag    = "wind-limit"
	byPlaceFlag      = "by-place"
	byTimeFlag       = "by-time"
	distanceFlag     = "distance"
	notesFlag        = "notes"
	participantsFlag = "participants"
	startListFlag    = "start-list"
	csvFlag          = "csv"
	noInputFlag      = "no-input"
)

var build string
var semanticVersion = "v0.1.0-dev" + build

func outputFlags(cfg config.Config) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    outputFlag,
			Aliases: []string{"o"},
			Usage:   "The location to write the result. Can be a file path or \"-\" (for stdout).",
			Value:   writers.Stdout,
		},
		&cli.StringFlag{
			Name:    formatFlag,
			Aliases: []string{"f"},
			Usage:   "Output format: yaml or json",
			Value:   cfg.Format,
		},
	}
}

// encodeTo writes v to the output location chosen on the command line.
func encodeTo(cCtx *cli.Context, v any) error {
	format, err := export.ParseFormat(cCtx.String(formatFlag))
	if err != nil {
		return err
	}
	w, err := writers.Open(cCtx.String(outputFlag))
	if err != nil {
		return err
	}
	if err := export.Encode(w, format, v); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

func setupAction(cfg config.Config, l *slog.Logger) cli.ActionFunc {
	return func(cCtx *cli.Context) error {
		params := setup.Params{
			Name:       cCtx.String(nameFlag),
			Kind:       cCtx.String(kindFlag),
			Discipline: cCtx.String(disciplineFlag),
			Phase:      cCtx.String(phaseFlag),
			Lanes:      cCtx.String(lanesFlag),
			Attempts:   cCtx.String(attemptsFlag),
			WindLimit:  cCtx.String(windLimitFlag),
			ByPlace:    cCtx.String(byPlaceFlag),
			ByTime:     cCtx.String(byTimeFlag),
			Distance:   cCtx.String(distanceFlag),
			Notes:      cCtx.String(notesFlag),
		}

		if !cCtx.Bool(noInputFlag) {
			p := prompts.Default()
			var err error
			if params.Name == "" {
				if params.Name, err = p.EventNamePrompt(); err != nil {
					return err
				}
			}
			if params.Kind == "" {
				kind, err := p.EventKindPrompt()
				if err != nil {
					return err
				}
				params.Kind = string(kind)
			}
			if params.Discipline == "" {
				if params.Discipline, err = p.DisciplinePrompt(athletics.EventKind(params.Kind)); err != nil {
					return err
				}
			}
		}

		params, err := app.ApplyDefaults(params, cfg.FormDefaults(), app.Given{
			Kind:      cCtx.IsSet(kindFlag),
			Phase:     cCtx.IsSet(phaseFlag),
			Lanes:     cCtx.IsSet(lanesFlag),
			Attempts:  cCtx.IsSet(attemptsFlag),
			WindLimit: cCtx.IsSet(windLimitFlag),
			ByPlace:   cCtx.IsSet(byPlaceFlag),
		})
		if err != nil {
			return err
		}

		roster := setup.NewRoster(athletics.NewID)
		if loc := cCtx.String(startListFlag); loc != "" {
			athletes, err := parsers.ParseStartList(loc, cCtx.Bool(csvFlag))
			if err != nil {
				return err
			}
			roster.Import(athletes)
			l.Info("start list imported", "location", loc, "athletes", len(athletes))
		}
		if n := cCtx.Int(participantsFlag); n > 0 {
			roster.AddBatch(n)
		} else if roster.Len() == 0 && !cCtx.Bool(noInputFlag) {
			if err := prompts.Default().ParticipantsPrompt(roster); err != nil {
				return err
			}
		}

		state, ev, err := app.New().OpenSetup().CreateEvent(params, roster.Athletes())
		if err != nil {
			return errors.New(athletics.UserMessage(err, cfg.LanguageTag()))
		}
		l.Info("event created", "event", ev.ID, "kind", ev.Kind, "participants", len(ev.Participants), "events", len(state.Events))
		return encodeTo(cCtx, ev)
	}
}

func runAction(cfg config.Config, l *slog.Logger) cli.ActionFunc {
	return func(cCtx *cli.Context) error {
		f, err := os.Open(cCtx.String(eventFlag))
		if err != nil {
			return fmt.Errorf("opening event: %w", err)
		}
		evs, err := export.ReadEvents(f)
		f.Close()
		if err != nil {
			return err
		}
		if len(evs) == 0 {
			return fmt.Errorf("no event in %s", cCtx.String(eventFlag))
		}
		ev := evs[0]
		if id := cCtx.String(idFlag); id != "" {
			if ev, err = app.New().AddEvents(evs...).Find(id); err != nil {
				return errors.New(athletics.UserMessage(err, cfg.LanguageTag()))
			}
		}

		payload, err := ui.Run(cCtx.Context, ev,
			ui.WithLogger(l),
			ui.WithRefreshInterval(cfg.RefreshInterval),
			ui.WithLanguage(cfg.LanguageTag()))
		if err != nil {
			return errors.New(athletics.UserMessage(err, cfg.LanguageTag()))
		}
		l.Info("dashboard exited", "event", ev.ID, "results", len(payload.Results))
		return encodeTo(cCtx, payload)
	}
}

func demoAction(l *slog.Logger) cli.ActionFunc {
	return func(cCtx *cli.Context) error {
		state := app.New().AddDemoEvents()
		l.Debug("demo events written", "events", len(state.Events))
		return encodeTo(cCtx, state.Events)
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("%v", err)
	}
	l, logCloser, err := logger.New(cfg.LogFile, cfg.Debug)
	if err != nil {
		config.Exitf("%v", err)
	}
	defer logCloser.Close()
	slog.SetDefault(l)

	cliApp := &cli.App{
		Name:    "trackside",
		Usage:   "Record and rank athletics results",
		Version: semanticVersion,
		Commands: []*cli.Command{
			{
				Name:  "setup",
				Usage: "Create an event and write it out",
				Flags: append([]cli.Flag{
					&cli.StringFlag{Name: nameFlag, Aliases: []string{"n"}, Usage: "Event name, e.g. \"Men 100m Final\""},
					&cli.StringFlag{Name: kindFlag, Aliases: []string{"k"}, Usage: "track, field, combined, walk or marathon"},
					&cli.StringFlag{Name: disciplineFlag, Aliases: []string{"d"}, Usage: "Discipline, a preset or free text"},
					&cli.StringFlag{Name: phaseFlag, Usage: "Qualification, Heats, Semifinal, Final, Finals or Single (any case)"},
					&cli.StringFlag{Name: lanesFlag, Usage: "Lanes of a track event"},
					&cli.StringFlag{Name: attemptsFlag, Usage: "Attempts per athlete of a field event"},
					&cli.StringFlag{Name: windLimitFlag, Usage: "Wind legal limit in m/s"},
					&cli.StringFlag{Name: byPlaceFlag, Usage: "Qualifiers by place"},
					&cli.StringFlag{Name: byTimeFlag, Usage: "Qualifying time or mark"},
					&cli.StringFlag{Name: distanceFlag, Usage: "Race distance in meters"},
					&cli.StringFlag{Name: notesFlag, Usage: "Free text notes"},
					&cli.IntFlag{Name: participantsFlag, Aliases: []string{"p"}, Usage: "Number of placeholder athletes to add"},
					&cli.StringFlag{Name: startListFlag, Aliases: []string{"i"}, Usage: "The URL or path to a start list (HTML table or CSV)"},
					&cli.BoolFlag{Name: csvFlag, Usage: "Start list passed in is a CSV rather than an HTML file"},
					&cli.BoolFlag{Name: noInputFlag, Usage: "Never prompt for missing values"},
				}, outputFlags(cfg)...),
				Action: setupAction(cfg, l),
			},
			{
				Name:  "run",
				Usage: "Open the live recorder of an event and write its results",
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:     eventFlag,
						Aliases:  []string{"e"},
						Usage:    "Path to an event written by setup or demo (YAML or JSON)",
						Required: true,
					},
					&cli.StringFlag{
						Name:  idFlag,
						Usage: "Event to open when the file holds several, e.g. the output of demo",
					},
				}, outputFlags(cfg)...),
				Action: runAction(cfg, l),
			},
			{
				Name:   "demo",
				Usage:  "Write the demo track and field events",
				Flags:  outputFlags(cfg),
				Action: demoAction(l),
			},
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		logCloser.Close()
		log.Fatal(err)
	}
}
