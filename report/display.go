package report

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
)

var (
	SuccessColorFG = pterm.FgLightGreen
	SuccessStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	ErrorColorFG   = pterm.FgRed
	ErrorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	InfoColorFG    = pterm.FgLightCyan
	InfoStyleBG    = pterm.NewStyle(pterm.BgLightCyan, pterm.FgBlack)
)

// DisplayAnalysisError displays an analysis error produced while analyzing the
// program at the given representative path.  Internal errors get a distinct
// banner so defect reports are not mistaken for source diagnostics.
func DisplayAnalysisError(reprPath string, aerr *AnalysisError) {
	if aerr.IsInternal() {
		ErrorStyleBG.Print("Internal Error")
		ErrorColorFG.Printf(" %s: %s\n", aerr.Kind, aerr.Message)
		ErrorColorFG.Println("This error was not supposed to happen: please report it to the Sable developers.")
		return
	}

	ErrorStyleBG.Print("Analysis Error")
	fmt.Print(" ")
	InfoColorFG.Print(reprPath)

	if aerr.Span != nil {
		InfoColorFG.Printf(":%d", aerr.Span.StartLine)
	}

	ErrorColorFG.Printf(" %s: %s\n", aerr.Kind, aerr.Message)
}

// DisplayStdError displays a standard Go error, eg. a failure loading a
// serialized AST file.
func DisplayStdError(reprPath string, err error) {
	ErrorStyleBG.Print("Error")
	fmt.Print(" ")
	InfoColorFG.Print(reprPath)
	ErrorColorFG.Printf(" %s\n", err)
}

// DisplayInfoMessage displays a labeled informational message, eg. the
// `sablec` version.
func DisplayInfoMessage(label, msg string) {
	InfoStyleBG.Print(label)
	fmt.Printf(" %s\n", msg)
}

// ReportFatal reports a fatal tool error and exits the program.  It also
// automatically formats error messages as necessary.
func ReportFatal(msg string, args ...interface{}) {
	ErrorStyleBG.Print("Fatal Error")
	ErrorColorFG.Printf(" %s\n", fmt.Sprintf(msg, args...))

	os.Exit(1)
}

// DisplaySuccess displays the closing message for a successful analysis.
func DisplaySuccess(reprPath string) {
	SuccessStyleBG.Print("OK")
	fmt.Print(" ")
	InfoColorFG.Print(reprPath)
	SuccessColorFG.Println(" no semantic errors")
}
