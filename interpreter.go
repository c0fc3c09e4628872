package lisp

import (
	"errors"
	"log"
	"os"

	"github.com/xiam/lisp/ast"
	"github.com/xiam/lisp/lexer"
	"github.com/xiam/lisp/parser"
)

// Interpreter reads and evaluates lines against a global environment. It is
// not safe for concurrent use.
type Interpreter struct {
	cfg     Config
	log     *log.Logger
	global  *Environment
	session *Session
	echo    func(expr *ast.Value)
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithLogger sends diagnostics to logger instead of stderr.
func WithLogger(logger *log.Logger) Option {
	return func(in *Interpreter) {
		in.log = logger
	}
}

// WithEcho calls fn with every expression Run reads, before it is evaluated.
func WithEcho(fn func(expr *ast.Value)) Option {
	return func(in *Interpreter) {
		in.echo = fn
	}
}

// Outcome is the result of running one line.
type Outcome struct {
	// Expr is the expression that was evaluated.
	Expr *ast.Value
	// Value is what Expr evaluated to.
	Value *ast.Value
	// Empty is true when the line had nothing to evaluate.
	Empty bool
	// Rest holds the tokens after the first expression, which are ignored.
	Rest []lexer.Token
}

// Extraneous returns true if the line had input after its first expression.
func (o *Outcome) Extraneous() bool {
	return len(o.Rest) > 0
}

// New creates an interpreter with a bootstrapped global environment.
func New(cfg Config, opts ...Option) *Interpreter {
	in := &Interpreter{
		cfg:    cfg,
		global: NewEnvironment(nil),
	}
	for _, opt := range opts {
		opt(in)
	}
	if in.log == nil {
		in.log = log.New(os.Stderr, "", 0)
	}

	Bootstrap(in.global)
	in.session = NewSession(in.log, cfg)

	return in
}

// Global returns the global environment.
func (in *Interpreter) Global() *Environment {
	return in.global
}

// Config returns the settings the interpreter was created with.
func (in *Interpreter) Config() Config {
	return in.cfg
}

// Eval evaluates expr in the global environment as a new top-level
// evaluation.
func (in *Interpreter) Eval(expr *ast.Value) *ast.Value {
	in.session.Reset()
	return in.session.Eval(expr, in.global)
}

// Run reads the first expression of line and evaluates it. Reader errors are
// reported and returned, nothing is evaluated in that case.
func (in *Interpreter) Run(line string) (*Outcome, error) {
	res, err := parser.Read(line)
	if err != nil {
		if errors.Is(err, parser.ErrUnbalanced) {
			in.log.Printf("Unbalanced parentheses.")
		} else {
			in.log.Printf("%v", err)
		}
		return nil, err
	}

	for _, skipped := range res.Skipped {
		in.log.Printf("%v", skipped)
	}

	if res.Empty {
		return &Outcome{Empty: true}, nil
	}

	if in.echo != nil {
		in.echo(res.Value)
	}

	out := &Outcome{
		Expr:  res.Value,
		Value: in.Eval(res.Value),
		Rest:  res.Rest,
	}
	if out.Extraneous() {
		in.log.Printf("extraneous input: %s...", out.Rest[0].Text())
	}
	return out, nil
}

// RunAll evaluates every expression in src, in order, and returns their
// values. Ignored characters are reported before anything is evaluated.
func (in *Interpreter) RunAll(src []byte) ([]*ast.Value, error) {
	exprs, skipped, err := parser.Parse(src)
	if err != nil {
		return nil, err
	}

	for i := range skipped {
		in.log.Printf("%v", skipped[i])
	}

	values := make([]*ast.Value, 0, len(exprs))
	for _, expr := range exprs {
		values = append(values, in.Eval(expr))
	}
	return values, nil
}
