// Command-line tool for handling generated OBX files.
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/atg-survey/gowfi/pkg/obx"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:    "obxtool",
		Usage:   "check and pack Observation Block files",
		Version: "0.1.0",
		Commands: []*cli.Command{
			{
				Name:      "check",
				Usage:     "Check rendered OBX files for leftover placeholders",
				ArgsUsage: "FILE...",
				Action: func(c *cli.Context) error {
					if c.NArg() < 1 {
						return cli.Exit("check needs at least one file", 1)
					}
					nErrs := 0
					for _, path := range c.Args().Slice() {
						if err := checkFile(path); err != nil {
							log.Printf("E! %s: %v", path, err)
							nErrs++
						}
					}
					if nErrs > 0 {
						return cli.Exit(fmt.Sprintf("%d file(s) with problems", nErrs), 1)
					}
					return nil
				},
			},
			{
				Name:      "bundle",
				Usage:     "Pack OBX files into one archive",
				ArgsUsage: "FILE...",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "out",
						Value: "obs.zip",
						Usage: "destination archive, format by suffix (.zip, .tar.gz)",
					},
				},
				Action: func(c *cli.Context) error {
					if c.NArg() < 1 {
						return cli.Exit("bundle needs at least one file", 1)
					}
					return obx.Bundle(c.String("out"), c.Args().Slice())
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("%v", err)
	}
}

// checkFile verifies that an OBX file carries the conventional suffix and
// contains no unresolved template placeholders.
func checkFile(path string) error {
	if !strings.HasSuffix(strings.ToLower(path), ".obx") {
		log.Printf("W! filename %q does not have an OBX extension", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if i := strings.Index(string(data), "{{"); i >= 0 {
		return fmt.Errorf("unresolved placeholder at offset %d", i)
	}
	if len(data) == 0 {
		return fmt.Errorf("empty file")
	}
	return nil
}
