package ui

import (
	"context"
	"fmt"
	"os"

	"townpuzzle/src/logx"
	"townpuzzle/ui/gui"
	"townpuzzle/ui/gui/gbase/gconf"

	"github.com/urfave/cli/v3"
)

const logfile string = "townpuzzle.log"

func GetLogger(file *os.File, c *cli.Command) *logx.Logx {
	l := logx.NewLogx(
		logx.GetLoggerLevelByString(c.String("level")),
		c.Bool("debug"),
		c.Bool("console"),
	)
	l.InitLogger(file)
	return l
}

func RunGUI(c *cli.Command) error {
	file, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		fmt.Printf("error open logfile: %v", err)
		return nil
	}
	defer file.Close()
	log := GetLogger(file, c)

	cfg, err := gconf.NewGUIConfig()
	if err != nil {
		log.Errorf("error read config: %v", err)
		return nil
	}
	// flags override the config file for this run
	if c.String("image") != "" {
		cfg.Image = c.String("image")
	}
	if c.Int("cols") > 0 {
		cfg.Cols = int(c.Int("cols"))
	}
	if c.Int("rows") > 0 {
		cfg.Rows = int(c.Int("rows"))
	}
	if c.Bool("debug") {
		cfg.Debug = true
	}
	gconf.CorrectableConfig(cfg)

	g, err := gui.NewGUI(cfg, log)
	if err != nil {
		log.Errorf("error init GUI: %v", err)
		return nil
	}
	return g.Run()
}

func RunTownPuzzle() error {
	imf := &cli.StringFlag{
		Name:  "image",
		Usage: "path to the map picture",
	}
	clf := &cli.IntFlag{
		Name:  "cols",
		Usage: "puzzle grid columns",
	}
	rwf := &cli.IntFlag{
		Name:  "rows",
		Usage: "puzzle grid rows",
	}
	df := &cli.BoolFlag{
		Name:    "debug",
		Aliases: []string{"d"},
		Usage:   "enable debug mod",
	}
	lf := &cli.StringFlag{
		Name:    "level",
		Aliases: []string{"l"},
		Usage:   "logger level",
	}
	cf := &cli.BoolFlag{
		Name:    "console",
		Aliases: []string{"c"},
		Usage:   "console logger encoding",
	}
	guiff := []cli.Flag{imf, clf, rwf, df, lf, cf}

	return (&cli.Command{
		Name:  "townpuzzle",
		Usage: "assemble the town map",
		Commands: []*cli.Command{
			{
				Name:  "gui",
				Flags: guiff,
				Action: func(ctx context.Context, c *cli.Command) error {
					if err := RunGUI(c); err != nil {
						fmt.Printf("error GUI: %v", err)
					}
					return nil
				},
			},
		},
		Flags: guiff,
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := RunGUI(c); err != nil {
				fmt.Printf("error GUI: %v", err)
			}
			return nil
		},
	}).Run(context.Background(), os.Args)
}
