package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/uaslang/uasc/pkg/compiler/emitter"
	"github.com/uaslang/uasc/pkg/compiler/lexer"
	"github.com/uaslang/uasc/pkg/compiler/parser"
	"github.com/uaslang/uasc/pkg/runtime"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "compile":
		runCompile(os.Args[2:])
	case "watch":
		runWatch(os.Args[2:])
	case "repl":
		runREPL()
	case "runtime":
		runRuntime(os.Args[2:])
	case "help", "-h", "--help":
		usage()
	default:
		// Bare form: uasc <file.uas>
		runCompile(os.Args[1:])
	}
}

func usage() {
	fmt.Println("Usage: uasc <file.uas>")
	fmt.Println("       uasc compile <file.uas> [-o out.cpp] [-runtime dir]")
	fmt.Println("       uasc watch <file.uas> -o out.cpp [-runtime dir]")
	fmt.Println("       uasc repl")
	fmt.Println("       uasc runtime [-dir dir]")
}

// transpile runs the three core passes over one compilation unit.
func transpile(src string) (string, error) {
	tokens := lexer.Tokenize(src)
	prog, err := parser.Parse(tokens)
	if err != nil {
		return "", err
	}
	return emitter.Transpile(prog), nil
}

func runCompile(args []string) {
	if len(args) < 1 {
		usage()
		os.Exit(1)
	}
	path := args[0]

	compileCmd := flag.NewFlagSet("compile", flag.ExitOnError)
	outPath := compileCmd.String("o", "", "write generated C++ to a file instead of stdout")
	runtimeDir := compileCmd.String("runtime", "", "also write runtime.h into this directory")
	compileCmd.Parse(args[1:])

	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not open file %s\n", path)
		os.Exit(1)
	}

	code, err := transpile(string(src))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Parser Error: %v\n", err)
		os.Exit(1)
	}

	if *outPath == "" {
		fmt.Print(code)
	} else if err := os.WriteFile(*outPath, []byte(code), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Could not write %s: %v\n", *outPath, err)
		os.Exit(1)
	}

	if *runtimeDir != "" {
		if _, err := runtime.WriteTo(*runtimeDir); err != nil {
			fmt.Fprintf(os.Stderr, "Could not write runtime header: %v\n", err)
			os.Exit(1)
		}
	}
}

func runRuntime(args []string) {
	runtimeCmd := flag.NewFlagSet("runtime", flag.ExitOnError)
	dir := runtimeCmd.String("dir", ".", "directory to write runtime.h into")
	runtimeCmd.Parse(args)

	path, err := runtime.WriteTo(*dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not write runtime header: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(path)
}
