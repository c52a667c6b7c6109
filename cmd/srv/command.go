package main

import "github.com/urfave/cli/v2"

var configFlag = &cli.StringFlag{
	Name:  "config",
	Usage: "The path of toml config file",
	Value: "",
}

func (s *srv) loadApp() {
	app := cli.NewApp()
	app.Action = cli.ShowAppHelp
	app.Name = "Questlane"
	app.Usage = ""
	app.Flags = []cli.Flag{configFlag}
	app.Commands = []*cli.Command{
		{
			Action:      s.startGateway,
			Name:        "gateway",
			Usage:       "Start the api gateway",
			Flags:       []cli.Flag{configFlag},
			Category:    "Gateway",
			Description: `Routes public requests to the auth, catalog, and processing services.`,
		},
		{
			Action:      s.startAuth,
			Name:        "auth",
			Usage:       "Start the auth service",
			Flags:       []cli.Flag{configFlag},
			Category:    "Service",
			Description: `Handles signup, login, token refresh, user lookup, and balances.`,
		},
		{
			Action:      s.startCatalog,
			Name:        "catalog",
			Usage:       "Start the quest catalog service",
			Flags:       []cli.Flag{configFlag},
			Category:    "Service",
			Description: `Manages quest and reward definitions.`,
		},
		{
			Action:      s.startProcessing,
			Name:        "processing",
			Usage:       "Start the quest processing service",
			Flags:       []cli.Flag{configFlag},
			Category:    "Service",
			Description: `Tracks quest assignment, progress, completion, and claiming.`,
		},
		{
			Action:   s.startMigrate,
			Name:     "migrate",
			Usage:    "Migrate the database",
			Category: "Tool",
			Flags: []cli.Flag{
				configFlag,
				&cli.StringFlag{
					Name:  "version",
					Usage: "The version to migrate to",
					Value: "0000",
				},
			},
		},
	}

	s.app = app
}
