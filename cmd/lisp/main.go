// Command lisp reads expressions line by line and prints what they evaluate
// to. Files given as arguments are evaluated in order instead.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/chzyer/readline"
	"github.com/xiam/lisp"
	"github.com/xiam/lisp/ast"
)

var (
	flagConfig   = flag.String("config", "", "path to a YAML config file")
	flagPrompt   = flag.String("prompt", "", "prompt to print before every line")
	flagTrace    = flag.Bool("trace", false, "log every closure application")
	flagMaxDepth = flag.Int("max-depth", -1, "limit evaluation nesting, 0 means no limit")
	flagDump     = flag.Bool("dump", false, "print the tree of every parsed line")
)

func loadConfig() (lisp.Config, error) {
	cfg := lisp.DefaultConfig()
	if *flagConfig != "" {
		var err error
		if cfg, err = lisp.LoadConfig(*flagConfig); err != nil {
			return cfg, err
		}
	}

	if *flagPrompt != "" {
		cfg.Prompt = *flagPrompt
	}
	if *flagTrace {
		cfg.Trace = true
	}
	if *flagMaxDepth >= 0 {
		cfg.MaxDepth = *flagMaxDepth
	}
	return cfg, cfg.Validate()
}

func runFiles(cfg lisp.Config, files []string) error {
	in := lisp.New(cfg)

	for _, file := range files {
		src, err := os.ReadFile(file)
		if err != nil {
			return err
		}
		values, err := in.RunAll(src)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		for _, v := range values {
			fmt.Println(ast.Encode(v))
		}
	}
	return nil
}

func repl(cfg lisp.Config) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      cfg.Prompt,
		HistoryFile: cfg.HistoryFile,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	echo := func(expr *ast.Value) {
		if cfg.EchoInput {
			fmt.Printf("\"%s\"\n", ast.Encode(expr))
		}
		if *flagDump {
			fmt.Print(ast.Dump(expr))
		}
	}

	in := lisp.New(cfg,
		lisp.WithLogger(log.New(rl.Stderr(), "", 0)),
		lisp.WithEcho(echo),
	)
	for {
		line, err := rl.Readline()
		if err != nil {
			// io.EOF or readline.ErrInterrupt
			return nil
		}

		out, err := in.Run(line)
		if err != nil || out.Empty {
			continue
		}

		fmt.Println(ast.Encode(out.Value))
	}
}

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatal(err)
	}

	if flag.NArg() > 0 {
		err = runFiles(cfg, flag.Args())
	} else {
		err = repl(cfg)
	}
	if err != nil {
		log.Fatal(err)
	}
}
