package main

import (
	"bufio"
	"flag"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/trieset"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// main() starts an interactive CLI ("TSet"), where users may enter commands
// to manipulate sets of strings. Every command operates on the current set
// of a workspace. Initially the workspace consists of one trie-backed set.
//
// Commands may be pre-loaded from an init file.
//
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	initf := flag.String("init", "", "Initial load")
	bits := flag.Int("bits", 10, "Capacity of hash sets as a power of 2 [2…31]")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelInfo) // will set the correct level later
	pterm.Info.Println("Welcome to TSet")     // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	tracer().SetTraceLevel(traceLevel(*tlevel)) // now set the user supplied level
	//
	// set up REPL
	repl, err := readline.New("tset> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{
		ws:   NewWorkspace(*bits),
		repl: repl,
	}
	// words given on the command line go into the default set
	if words := flag.Args(); len(words) > 0 {
		n := trieset.AddAll(intp.ws.Current().Set, words...)
		tracer().Infof("Added %d words from command line", n)
	}
	//
	// load an init file and start receiving commands
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.loadInitFile(*initf)           // init file name provided by flag
	intp.REPL()                         // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	ws   *Workspace
	repl *readline.Instance
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if line = strings.TrimSpace(line); line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if _, err := intp.Eval(line); err != nil {
			tracer().Errorf("Error line %d: %v", lineno, err)
		}
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("Error while reading init file: %v", err)
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Eval executes a command line and prints the result.
func (intp *Intp) Eval(line string) (bool, error) {
	msg, quit, err := intp.Execute(line)
	if err != nil {
		pterm.Error.Println(err.Error())
		return false, err
	}
	if msg != "" {
		pterm.Info.Println(msg)
	}
	return quit, nil
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
