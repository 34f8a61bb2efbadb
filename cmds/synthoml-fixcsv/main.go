package main

import (
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/srikesh3005/SynthoML/pkg/conf"
	"github.com/srikesh3005/SynthoML/pkg/table"
	"github.com/srikesh3005/SynthoML/pkg/utils/errutil"
)

var (
	inputFlag  = conf.NewStringFlag("input", "Path to the input CSV file", "")
	outputFlag = conf.NewStringFlag("output", "Path to the output CSV file (default: overwrites input)", "")
	allFlag    = conf.NewBoolFlag("all", "Fix all CSV files in the current directory", false)
)

// fix reads a CSV with encoding repair, cleans its string columns and writes
// it back as UTF-8 with BOM.
func fix(inputPath, outputPath string) error {
	if outputPath == "" {
		outputPath = inputPath
	}

	logrus.Infof("reading %q", inputPath)
	data, err := table.ReadFile(inputPath)
	if err != nil {
		return err
	}
	logrus.Infof("loaded %d rows, %d columns", data.NumRows(), data.NumColumns())

	table.CleanStrings(data)

	logrus.Infof("writing %q as UTF-8 with BOM", outputPath)
	return data.WriteFile(outputPath)
}

func main() {
	conf.SetAppName("synthoml-fixcsv")
	conf.SetHelp(`Repairs CSV encoding for Windows compatibility: decodes legacy encodings,
strips non-ASCII characters from string columns and re-saves as UTF-8 with BOM.`)

	errutil.Check(conf.ParseFlags())
	logrus.SetLevel(conf.LogLevel())

	if allFlag.Value() {
		paths, err := filepath.Glob("*.csv")
		errutil.Check(err)
		if len(paths) == 0 {
			logrus.Warn("no CSV files found in current directory")
			return
		}
		for _, path := range paths {
			errutil.CheckWithContext(fix(path, ""), path)
		}
		logrus.Infof("processed %d files", len(paths))
		return
	}

	if inputFlag.Value() == "" {
		logrus.Fatal("no input file given; use --input or --all")
	}
	errutil.Check(fix(inputFlag.Value(), outputFlag.Value()))
}
