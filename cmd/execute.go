package cmd

import (
	"os"
	"path/filepath"

	"sablec/astfile"
	"sablec/common"
	"sablec/report"
	"sablec/walk"

	"github.com/ComedicChimera/olive"
)

// Execute is the main entry point for the `sablec` CLI utility.
func Execute() {
	// set up the argument parser and all its extended commands and arguments
	cli := olive.NewCLI("sablec", "sablec is the semantic analyzer for Sable programs", true)

	checkCmd := cli.AddSubcommand("check", "analyze a serialized AST file", true)
	checkCmd.AddPrimaryArg("ast-file", "the path to the serialized AST file to analyze", true)

	cli.AddSubcommand("version", "print the sablec version", false)

	// run the argument parser
	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		report.ReportFatal(err.Error())
	}

	// process the inputed command line
	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "check":
		execCheckCommand(subResult)
	case "version":
		report.DisplayInfoMessage("Sable Version", common.SableVersion)
	}
}

// execCheckCommand executes the check subcommand and handles all errors.
func execCheckCommand(result *olive.ArgParseResult) {
	// get the primary argument: the AST file path
	path, _ := result.PrimaryArg()

	// the display path is always relative to the working directory when
	// possible so diagnostics stay short
	reprPath := path
	if wd, err := os.Getwd(); err == nil {
		if rel, err := filepath.Rel(wd, path); err == nil {
			reprPath = rel
		}
	}

	prog, err := astfile.LoadFile(path)
	if err != nil {
		report.DisplayStdError(reprPath, err)
		os.Exit(1)
	}

	if err := walk.NewWalker().Analyze(prog); err != nil {
		// Analyze only ever returns analysis errors
		report.DisplayAnalysisError(reprPath, err.(*report.AnalysisError))
		os.Exit(1)
	}

	report.DisplaySuccess(reprPath)
}
