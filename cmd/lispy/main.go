// Copyright (c) present lispy contributors
//
// lispy is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and
// obligations under this license.
//
// SPDX-License-Identifier: EUPL-1.2

// Command lispy is the interactive REPL / batch-file front-end described in
// spec.md §6: no arguments starts a REPL with prompt "lispy> "; one or more
// arguments are treated as filenames and loaded in order. Grounded on
// sxpf/cmd/main.go's read-eval-print loop structure, simplified to a plain
// bufio scanner (no readline-style history, which the teacher's REPL also
// does not provide beyond line editing via the terminal itself).
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gopherlisp/lispy/internal/builtin"
	ioBuiltin "github.com/gopherlisp/lispy/internal/builtin/io"
	"github.com/gopherlisp/lispy/internal/env"
	"github.com/gopherlisp/lispy/internal/eval"
	"github.com/gopherlisp/lispy/internal/pkgreg"
	"github.com/gopherlisp/lispy/internal/reader"
	"github.com/gopherlisp/lispy/internal/value"
)

const prompt = "lispy> "

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) (code int) {
	root := env.NewRoot()
	registry := pkgreg.NewRegistry()
	builtin.RegisterAll(root, registry)

	defer func() {
		if r := recover(); r != nil {
			if ex, ok := r.(ioBuiltin.ExitRequest); ok {
				code = ex.Code
				return
			}
			panic(r)
		}
	}()

	if len(args) == 0 {
		runREPL(root)
		return 0
	}
	for _, fname := range args {
		loadFile(root, fname)
	}
	return 0
}

func loadFile(root *env.Environment, fname string) {
	f, err := os.Open(fname)
	if err != nil {
		log.Printf("could not load library %s", fname)
		return
	}
	defer f.Close()

	exprs, err := reader.ReadAll(f, fname)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, x := range exprs {
		r := eval.Eval(root, x)
		if errv, ok := r.(*value.Err); ok {
			fmt.Println(errv.String())
		}
	}
}

func runREPL(root *env.Environment) {
	fmt.Println("lispy version 0.1")
	fmt.Println("Press Ctrl+c to Exit\n")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(prompt)
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		if line == "" {
			continue
		}
		evalLine(root, line)
	}
}

func evalLine(root *env.Environment, line string) {
	v, err := reader.ReadOne(strings.NewReader(line), "<repl>")
	if err != nil {
		fmt.Println(err)
		return
	}
	result := eval.Eval(root, v)
	_, _ = value.Print(os.Stdout, result)
	fmt.Println()
}
