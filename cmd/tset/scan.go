package main

import (
	"fmt"
	"sync"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token types of command lines.
const (
	tokWord = iota + 1
	tokString
)

var cmdLexer *lexmachine.Lexer
var lexerErr error
var initOnce sync.Once // monitors one-time initialization

// lexer returns a DFA-based lexer for command lines. A command line consists
// of bare words and double-quoted strings, separated by white space.
func lexer() (*lexmachine.Lexer, error) {
	initOnce.Do(func() {
		lx := lexmachine.NewLexer()
		lx.Add([]byte(`\"[^"]*\"`), makeToken(tokString))
		lx.Add([]byte("[^\" \t\n\r]+"), makeToken(tokWord))
		lx.Add([]byte("[ \t\n\r]+"), skip)
		if err := lx.Compile(); err != nil {
			tracer().Errorf("error compiling DFA: %v", err)
			lexerErr = err
			return
		}
		cmdLexer = lx
	})
	return cmdLexer, lexerErr
}

// skip is an action which ignores the scanned match.
func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// makeToken is an action which wraps a scanned match into a token. Quotes of
// strings are stripped.
func makeToken(id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		lexeme := string(m.Bytes)
		if id == tokString {
			lexeme = lexeme[1 : len(lexeme)-1]
		}
		return s.Token(id, lexeme, m), nil
	}
}

// splitCommand tokenizes a command line into its arguments.
func splitCommand(line string) ([]string, error) {
	lx, err := lexer()
	if err != nil {
		return nil, err
	}
	sc, err := lx.Scanner([]byte(line))
	if err != nil {
		return nil, err
	}
	var args []string
	for tok, err, eof := sc.Next(); !eof; tok, err, eof = sc.Next() {
		if err != nil {
			if ui, is := err.(*machines.UnconsumedInput); is {
				return nil, fmt.Errorf("unterminated or misplaced quote at column %d", ui.StartColumn)
			}
			return nil, err
		}
		token := tok.(*lexmachine.Token)
		tracer().Debugf("token %d | %q", token.Type, token.Value)
		args = append(args, token.Value.(string))
	}
	return args, nil
}
