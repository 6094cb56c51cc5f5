package main

import (
	"log"
	"os"
	"time"

	"cv-ranking-web/internal/service"
	"cv-ranking-web/internal/widget"
	"cv-ranking-web/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func init() {
	// for development
	//nolint:errcheck
	godotenv.Load()
}

func main() {
	app := &cli.App{
		Name:  "cvrank",
		Usage: "upload CV files and show the candidate ranking from the terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "upload-url",
				Usage:   "endpoint receiving the multipart upload",
				Value:   "http://localhost:5000/upload",
				EnvVars: []string{"UPLOAD_URL"},
			},
			&cli.StringFlag{
				Name:    "ranking-url",
				Usage:   "endpoint returning the ranking JSON array",
				Value:   "http://localhost:5000/ranking",
				EnvVars: []string{"RANKING_URL"},
			},
			&cli.DurationFlag{
				Name:    "timeout",
				Usage:   "per-request timeout",
				Value:   30 * time.Second,
				EnvVars: []string{"REQUEST_TIMEOUT"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				EnvVars: []string{"LOG_LEVEL"},
			},
		},
		Commands: []*cli.Command{
			commandUpload(),
			commandRanking(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func commandUpload() *cli.Command {
	return &cli.Command{
		Name:      "upload",
		Usage:     "upload a file to the upload endpoint",
		ArgsUsage: "<path>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("usage: cvrank upload <path>", 2)
			}

			appLogger := logger.NewLoggerTo(os.Stderr, c.String("log-level"))
			client := service.NewHTTPClient(c.Duration("timeout"))
			uploader := widget.NewUploadWidget(
				service.NewUploadService(c.String("upload-url"), client, appLogger),
				appLogger,
			)

			if err := uploadFile(c.Context, os.Stdout, uploader, c.Args().First()); err != nil {
				return cli.Exit("", 1)
			}
			return nil
		},
	}
}

func commandRanking() *cli.Command {
	return &cli.Command{
		Name:  "ranking",
		Usage: "fetch and print the ranking",
		Action: func(c *cli.Context) error {
			appLogger := logger.NewLoggerTo(os.Stderr, c.String("log-level"))
			client := service.NewHTTPClient(c.Duration("timeout"))
			ranking := widget.NewRankingWidget(
				service.NewRankingService(c.String("ranking-url"), client, appLogger),
				appLogger,
			)

			if err := showRanking(c.Context, os.Stdout, ranking); err != nil {
				return cli.Exit("", 1)
			}
			return nil
		},
	}
}
