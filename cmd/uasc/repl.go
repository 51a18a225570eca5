package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/uaslang/uasc/pkg/compiler/lexer"
)

const (
	replPrompt         = ">> "
	continuationPrompt = ".. "
)

// runREPL reads UAScript snippets interactively and prints the C++ each
// one transpiles to. Multi-line input is buffered until braces and
// parentheses balance. Syntax errors are reported and the loop continues.
func runREPL() {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(completeKeyword)

	historyFile := filepath.Join(os.TempDir(), ".uasc_history")
	if f, err := os.Open(historyFile); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(historyFile); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}()

	fmt.Println("uasc repl — type UAScript, get C++")
	fmt.Println("Type 'exit' or Ctrl+D to quit")
	fmt.Println()

	var buffer strings.Builder

	for {
		prompt := replPrompt
		if buffer.Len() > 0 {
			prompt = continuationPrompt
		}
		input, err := line.Prompt(prompt)
		if err != nil {
			if err == liner.ErrPromptAborted {
				fmt.Println("^C")
				buffer.Reset()
				continue
			}
			if err == io.EOF {
				fmt.Println()
				return
			}
			fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
			continue
		}

		trimmed := strings.TrimSpace(input)
		if buffer.Len() == 0 && (trimmed == "exit" || trimmed == "quit") {
			return
		}
		if buffer.Len() == 0 && trimmed == "" {
			continue
		}

		if buffer.Len() > 0 {
			buffer.WriteString("\n")
		}
		buffer.WriteString(input)

		snippet := buffer.String()
		if needsMoreInput(snippet) {
			continue
		}
		buffer.Reset()

		line.AppendHistory(snippet)

		code, err := transpile(snippet)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Parser Error: %v\n", err)
			continue
		}
		fmt.Print(code)
	}
}

// completeKeyword offers every registered keyword spelling, Latin and
// Cyrillic, for the word under the cursor.
func completeKeyword(input string) []string {
	words := strings.Fields(input)
	if len(words) == 0 || strings.HasSuffix(input, " ") {
		return nil
	}
	last := words[len(words)-1]
	prefix := input[:len(input)-len(last)]

	var matches []string
	for _, spelling := range lexer.Spellings() {
		if strings.HasPrefix(spelling, last) {
			matches = append(matches, prefix+spelling)
		}
	}
	return matches
}

// needsMoreInput reports whether the snippet has unclosed braces or
// parentheses outside of string literals.
func needsMoreInput(input string) bool {
	braces, parens := 0, 0
	inString := false
	for i := 0; i < len(input); i++ {
		ch := input[i]
		if ch == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}
		switch ch {
		case '{':
			braces++
		case '}':
			braces--
		case '(':
			parens++
		case ')':
			parens--
		}
	}
	return braces > 0 || parens > 0
}
