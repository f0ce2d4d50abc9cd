package main

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/npillmayer/trieset"
	"github.com/npillmayer/trieset/trie"
	"github.com/pterm/pterm"
)

// command executes a command on the workspace of an interpreter. It returns
// a message to display (or "").
type command struct {
	args    string // usage of arguments
	help    string
	minArgs int
	exec    func(intp *Intp, args []string) (string, error)
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"add":      {"WORD…", "add words to the current set", 1, cmdAdd},
		"remove":   {"WORD…", "remove words from the current set", 1, cmdRemove},
		"contains": {"WORD", "test if the current set contains a word", 1, cmdContains},
		"size":     {"", "print the number of words", 0, cmdSize},
		"clear":    {"", "remove all words", 0, cmdClear},
		"list":     {"", "list all words", 0, cmdList},
		"drop":     {"PREFIX", "remove all words starting with PREFIX", 1, cmdDrop},
		"tree":     {"", "display a trie-backed set as a tree", 0, cmdTree},
		"load":     {"FILE", "add all words of a file", 1, cmdLoad},
		"new":      {"NAME [trie|hash]", "create a new set and make it current", 1, cmdNew},
		"use":      {"NAME", "make a set current", 1, cmdUse},
		"sets":     {"", "list all sets", 0, cmdSets},
		"help":     {"", "print this help", 0, cmdHelp},
	}
}

// Execute tokenizes and executes one command line. Returns true if the user
// asked to quit.
func (intp *Intp) Execute(line string) (string, bool, error) {
	args, err := splitCommand(line)
	if err != nil {
		return "", false, err
	}
	if len(args) == 0 {
		return "", false, nil
	}
	if args[0] == "quit" || args[0] == "exit" {
		return "", true, nil
	}
	cmd, ok := commands[args[0]]
	if !ok {
		return "", false, fmt.Errorf("unknown command %q, try 'help'", args[0])
	}
	if len(args)-1 < cmd.minArgs {
		return "", false, fmt.Errorf("usage: %s %s", args[0], cmd.args)
	}
	tracer().Debugf("executing %s %v", args[0], args[1:])
	msg, err := cmd.exec(intp, args[1:])
	return msg, false, err
}

func current(intp *Intp) trieset.Set {
	return intp.ws.Current().Set
}

func cmdAdd(intp *Intp, args []string) (string, error) {
	n := trieset.AddAll(current(intp), args...)
	return fmt.Sprintf("added %d of %d", n, len(args)), nil
}

func cmdRemove(intp *Intp, args []string) (string, error) {
	n := 0
	for _, w := range args {
		if current(intp).Remove(w) {
			n++
		}
	}
	return fmt.Sprintf("removed %d of %d", n, len(args)), nil
}

func cmdContains(intp *Intp, args []string) (string, error) {
	return fmt.Sprintf("%v", current(intp).Contains(args[0])), nil
}

func cmdSize(intp *Intp, args []string) (string, error) {
	return fmt.Sprintf("%d", current(intp).Size()), nil
}

func cmdClear(intp *Intp, args []string) (string, error) {
	current(intp).Clear()
	return "cleared", nil
}

func cmdList(intp *Intp, args []string) (string, error) {
	words := trieset.Strings(current(intp))
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = fmt.Sprintf("%q", w)
	}
	return strings.Join(quoted, " "), nil
}

func cmdDrop(intp *Intp, args []string) (string, error) {
	prefix := args[0]
	n := trieset.RemoveIf(current(intp), func(w string) bool {
		return strings.HasPrefix(w, prefix)
	})
	return fmt.Sprintf("dropped %d", n), nil
}

func cmdTree(intp *Intp, args []string) (string, error) {
	t, ok := current(intp).(*trie.Trie)
	if !ok {
		return "", fmt.Errorf("set %q is not backed by a trie", intp.ws.Current().Name)
	}
	root := pterm.NewTreeFromLeveledList(leveledTrie(t))
	pterm.DefaultTree.WithRoot(root).Render()
	return "", nil
}

// leveledTrie converts a trie into a leveled list, suitable for pterm's tree
// printer. Nodes which end a word are marked with a '•'.
func leveledTrie(t *trie.Trie) pterm.LeveledList {
	ll := pterm.LeveledList{}
	t.Walk(func(label byte, depth int, word bool) {
		text := fmt.Sprintf("%q", rune(label))
		if word {
			text += " •"
		}
		ll = append(ll, pterm.LeveledListItem{
			Level: depth - 1,
			Text:  text,
		})
	})
	return ll
}

func cmdLoad(intp *Intp, args []string) (string, error) {
	f, err := os.Open(args[0])
	if err != nil {
		return "", fmt.Errorf("unable to open word file: %w", err)
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	scanner.Split(bufio.ScanWords)
	total, n := 0, 0
	for scanner.Scan() {
		if current(intp).Add(scanner.Text()) {
			n++
		}
		total++
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("error while reading word file: %w", err)
	}
	return fmt.Sprintf("added %d of %d", n, total), nil
}

func cmdNew(intp *Intp, args []string) (string, error) {
	kind := TrieKind
	if len(args) > 1 {
		kind = args[1]
	}
	ns, old, err := intp.ws.Define(args[0], kind)
	if err != nil {
		return "", err
	}
	intp.ws.Use(ns.Name)
	if old != nil {
		return fmt.Sprintf("replaced %v", old), nil
	}
	return fmt.Sprintf("created %v", ns), nil
}

func cmdUse(intp *Intp, args []string) (string, error) {
	ns, err := intp.ws.Use(args[0])
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("using %v", ns), nil
}

func cmdSets(intp *Intp, args []string) (string, error) {
	var b strings.Builder
	intp.ws.Each(func(ns *NamedSet) {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		if ns == intp.ws.Current() {
			b.WriteString("* ")
		} else {
			b.WriteString("  ")
		}
		b.WriteString(ns.String())
	})
	return b.String(), nil
}

func cmdHelp(intp *Intp, args []string) (string, error) {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	var b strings.Builder
	for _, name := range names {
		cmd := commands[name]
		b.WriteString(fmt.Sprintf("%-8s %-16s %s\n", name, cmd.args, cmd.help))
	}
	b.WriteString("quit                      leave TSet")
	return b.String(), nil
}
