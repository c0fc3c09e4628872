package lisp

import (
	"log"
	"os"

	"github.com/xiam/lisp/ast"
)

// Session holds the state of one top-level evaluation: the undefined names
// already reported and the current nesting depth.
type Session struct {
	log      *log.Logger
	trace    bool
	maxDepth int

	depth     int
	tooDeep   bool
	undefined map[string]struct{}
}

// NewSession creates a session that reports diagnostics to logger. A nil
// logger writes to stderr.
func NewSession(logger *log.Logger, cfg Config) *Session {
	if logger == nil {
		logger = log.New(os.Stderr, "", 0)
	}
	return &Session{
		log:       logger,
		trace:     cfg.Trace,
		maxDepth:  cfg.MaxDepth,
		undefined: make(map[string]struct{}),
	}
}

// Reset forgets the undefined names reported so far. Call it before every
// top-level evaluation.
func (s *Session) Reset() {
	s.depth = 0
	s.tooDeep = false
	s.undefined = make(map[string]struct{})
}

func (s *Session) report(format string, v ...interface{}) {
	s.log.Printf(format, v...)
}

func (s *Session) lookup(name string, env *Environment) (*ast.Value, bool) {
	value, ok := env.Lookup(name)
	if ok {
		return value, true
	}
	// arithmetic may evaluate the same operand more than once
	if _, seen := s.undefined[name]; !seen {
		s.report("Undefined symbol '%s'", name)
		s.undefined[name] = struct{}{}
	}
	return nil, false
}

// Eval evaluates expr in env. Evaluation failures are values: ast.Error for
// malformed forms, ast.Nil for unresolved symbols, and ast.False for failed
// arithmetic.
func (s *Session) Eval(expr *ast.Value, env *Environment) *ast.Value {
	if expr == nil || ast.IsSentinel(expr) || expr.IsConstant() {
		return expr
	}

	if s.maxDepth > 0 {
		s.depth++
		defer func() { s.depth-- }()
		if s.depth > s.maxDepth {
			if !s.tooDeep {
				s.report("recursion too deep (max depth %d)", s.maxDepth)
				s.tooDeep = true
			}
			return ast.Error
		}
	}

	if expr.IsAtom() {
		if !expr.IsSymbol() {
			// closures and procedures
			return expr
		}
		if value, ok := s.lookup(expr.Text(), env); ok {
			return value
		}
		return ast.Nil
	}

	head, args := expr.Head(), expr.Tail()
	switch {
	case head == nil, ast.IsSentinel(head), head.IsConstant():
		return ast.Error

	case head.IsSymbol():
		switch head.Text() {
		case "quote":
			return args
		case "lambda":
			return makeLambda(args, env)
		}
		fn, ok := s.lookup(head.Text(), env)
		if !ok {
			return ast.Error
		}
		return s.call(fn, args, env)

	case head.IsPair():
		return s.call(s.Eval(head, env), args, env)
	}

	return s.call(head, args, env)
}

// makeLambda builds a closure out of (params body). params must be empty or
// a list. A bare symbol is rejected, (lambda (a b)) reads as params a and
// body b.
func makeLambda(form *ast.Value, env *Environment) *ast.Value {
	if !form.IsPair() {
		return nil
	}
	params, body := form.Head(), form.Tail()
	if body == nil {
		return nil
	}
	if params != nil && !params.IsPair() {
		return nil
	}
	return ast.NewClosure(params, body, env)
}

func (s *Session) call(fn *ast.Value, args *ast.Value, env *Environment) *ast.Value {
	switch {
	case fn.IsClosure():
		return s.apply(fn.Closure(), args, env)
	case fn.IsProcedure():
		if b, ok := fn.Procedure().(*builtin); ok {
			return b.fn(s, args, env)
		}
	}
	return nil
}

func (s *Session) apply(c *ast.Closure, args *ast.Value, env *Environment) *ast.Value {
	outer, _ := c.Env.(*Environment)

	if s.trace {
		s.report("apply: (lambda %s) <- %s", ast.Encode(c.Params), ast.Encode(args))
	}

	frame := s.bind(c.Params, args, env, outer)
	return s.Eval(c.Body, frame)
}

// bind creates the environment of a closure call. Arguments are evaluated in
// argEnv and bound in a new environment chained to outer. A symbol in the
// tail slot of the parameter list, or the last parameter, takes whatever is
// left of the arguments as a single expression. Extra parameters stay unbound and
// extra arguments are ignored.
func (s *Session) bind(params *ast.Value, args *ast.Value, argEnv *Environment, outer *Environment) *Environment {
	frame := NewEnvironment(outer)

	for params != nil {
		if params.IsSymbol() {
			frame.Define(params.Text(), s.Eval(args, argEnv))
			break
		}

		param, rest := params.Head(), params.Tail()
		if rest == nil || !args.IsPair() {
			if param.IsSymbol() {
				frame.Define(param.Text(), s.Eval(args, argEnv))
			}
			break
		}

		if param.IsSymbol() {
			frame.Define(param.Text(), s.Eval(args.Head(), argEnv))
		}
		params, args = rest, args.Tail()
	}

	return frame
}
