package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/codegangsta/cli"
	"github.com/kevin-cantwell/asciimotion"
)

func main() {
	app := cli.NewApp()
	app.Version = "0.1.0"
	app.Name = "asciimotion"
	app.Usage = "A command-line tool for turning videos into character art animations."
	app.UsageText = "1) asciimotion [options] video.mp4\n" +
		/*      */ "   2) asciimotion --save-video out.mp4 --no-play [options] video.mp4"
	app.Author = "Kevin Cantwell"
	app.Email = "kevin.cantwell@gmail.com"
	app.Flags = []cli.Flag{
		cli.IntFlag{
			Name:  "width,w",
			Usage: "`WIDTH` of the output in characters, between 10 and 300.",
			Value: asciimotion.DefaultWidth,
		},
		cli.StringFlag{
			Name:  "quality,q",
			Usage: "`QUALITY` profile: " + strings.Join(asciimotion.BuiltinProfiles().Names(), ", ") + ".",
			Value: asciimotion.DefaultProfile,
		},
		cli.StringFlag{
			Name:  "profiles",
			Usage: "YAML `FILE` of extra quality profiles.",
		},
		cli.BoolFlag{
			Name:  "color,c",
			Usage: "Color the output with the profile's palette.",
		},
		cli.StringFlag{
			Name:  "output,o",
			Usage: "Save the frames as text to `FILE`.",
		},
		cli.StringFlag{
			Name:  "save-video",
			Usage: "Save the frames as a video to `FILE`, e.g. out.mp4.",
		},
		cli.BoolFlag{
			Name:  "no-play",
			Usage: "Don't play the animation in the terminal.",
		},
		cli.Float64Flag{
			Name:  "start,s",
			Usage: "`SECONDS` into the video to start at.",
		},
		cli.Float64Flag{
			Name:  "duration,d",
			Usage: "`SECONDS` of video to convert. Defaults to the rest of the video.",
		},
		cli.IntFlag{
			Name:  "skip",
			Usage: "Convert every `N`th frame.",
			Value: 1,
		},
		cli.StringFlag{
			Name:  "bg-color",
			Usage: "`COLOR` behind the characters in saved videos: black, white, dark-gray or light-gray.",
			Value: "black",
		},
		cli.BoolFlag{
			Name:  "no-audio",
			Usage: "Save the video without the source's audio.",
		},
		cli.BoolFlag{
			Name:  "audio-only",
			Usage: "Only extract the audio track to <video>_audio.wav.",
		},
		cli.BoolFlag{
			Name:  "glyphs",
			Usage: "Draw characters with a monospace font in saved videos instead of solid blocks.",
		},
		cli.StringFlag{
			Name:  "font",
			Usage: "TrueType `FILE` for --glyphs. Common monospace fonts are tried when unset.",
		},
		cli.BoolFlag{
			Name:  "no-enhance",
			Usage: "Skip the contrast and blur pass before converting frames.",
		},
		cli.StringFlag{
			Name:  "display",
			Usage: "`MODE` for playback: screen (full screen) or ansi (escape codes).",
			Value: "screen",
		},
		cli.BoolFlag{
			Name:  "verbose,v",
			Usage: "Log debugging details.",
		},
	}
	app.Action = func(c *cli.Context) error {
		level := slog.LevelInfo
		if c.Bool("verbose") {
			level = slog.LevelDebug
		}
		asciimotion.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

		input := c.Args().First()
		if input == "" {
			cli.ShowAppHelp(c)
			return cli.NewExitError("a video file is required", 1)
		}
		if _, err := os.Stat(input); err != nil {
			return cli.NewExitError(fmt.Sprintf("Error: Video file '%s' not found", input), 1)
		}
		if err := convert(c, input); err != nil {
			return cli.NewExitError("Error: "+err.Error(), 1)
		}
		return nil
	}
	if err := app.Run(os.Args); err != nil {
		exit(err.Error(), 1)
	}
}

func exit(msg string, code int) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(code)
}
