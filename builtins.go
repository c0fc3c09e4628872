package lisp

import (
	"errors"

	"github.com/xiam/lisp/ast"
)

var errDivisionByZero = errors.New("division by zero")

type builtinFunc func(s *Session, args *ast.Value, env *Environment) *ast.Value

// builtin is a procedure implemented in Go. It receives its arguments
// unevaluated.
type builtin struct {
	name string
	fn   builtinFunc
}

func (b *builtin) ProcedureName() string {
	return b.name
}

type arithOp func(n1, n2 int64) (int64, error)

type compareOp func(n1, n2 int64) bool

var builtins = []*builtin{
	{"+", arithmetic(func(n1, n2 int64) (int64, error) { return n1 + n2, nil })},
	{"-", arithmetic(func(n1, n2 int64) (int64, error) { return n1 - n2, nil })},
	{"*", arithmetic(func(n1, n2 int64) (int64, error) { return n1 * n2, nil })},
	{"/", arithmetic(func(n1, n2 int64) (int64, error) {
		if n2 == 0 {
			return 0, errDivisionByZero
		}
		return n1 / n2, nil
	})},

	{">", comparison(func(n1, n2 int64) bool { return n1 > n2 })},
	{">=", comparison(func(n1, n2 int64) bool { return n1 >= n2 })},
	{"<", comparison(func(n1, n2 int64) bool { return n1 < n2 })},
	{"<=", comparison(func(n1, n2 int64) bool { return n1 <= n2 })},
	{"eq", comparison(func(n1, n2 int64) bool { return n1 == n2 })},
	{"ne", comparison(func(n1, n2 int64) bool { return n1 != n2 })},

	{"begin", builtinBegin},
	{"car", builtinCar},
	{"cdr", builtinCdr},
	{"cons", builtinCons},
	{"define", builtinDefine},
	{"if", builtinIf},
	{"list", builtinList},
	{"setq", builtinSetq},
}

// Bootstrap registers the constants and the builtin procedures in env.
func Bootstrap(env *Environment) {
	env.Define("nil", ast.Nil)
	env.Define("#f", ast.False)
	env.Define("#t", ast.True)

	for _, b := range builtins {
		env.Define(b.name, ast.NewProcedure(b))
	}
}

// operands collects the integers of an arithmetic form. A tail that
// evaluates to an integer as a whole is taken as the last operand, so
// (+ 1 (f 2)) adds 1 to the result of calling f. Otherwise the tail is
// walked as more operands.
func (s *Session) operands(args *ast.Value, env *Environment) ([]int64, bool) {
	values := []int64{}

	for args != nil {
		if args.IsAtom() {
			n, ok := s.Eval(args, env).AsInt()
			if !ok {
				return nil, false
			}
			values = append(values, n)
			break
		}

		n, ok := s.Eval(args.Head(), env).AsInt()
		if !ok {
			return nil, false
		}
		values = append(values, n)

		tail := args.Tail()
		if tail == nil {
			break
		}
		if n, ok := s.Eval(tail, env).AsInt(); ok {
			values = append(values, n)
			break
		}
		if tail.IsAtom() {
			return nil, false
		}
		args = tail
	}

	if len(values) == 0 {
		return nil, false
	}
	return values, true
}

func arithmetic(op arithOp) builtinFunc {
	return func(s *Session, args *ast.Value, env *Environment) *ast.Value {
		values, ok := s.operands(args, env)
		if !ok {
			return ast.False
		}

		result := values[0]
		for _, n := range values[1:] {
			var err error
			if result, err = op(result, n); err != nil {
				s.report("%v", err)
				return ast.False
			}
		}
		return ast.NewInt(result)
	}
}

func comparison(op compareOp) builtinFunc {
	return func(s *Session, args *ast.Value, env *Environment) *ast.Value {
		values, ok := s.operands(args, env)
		if !ok {
			return ast.False
		}

		for i := 1; i < len(values); i++ {
			if !op(values[i-1], values[i]) {
				return ast.False
			}
		}
		return ast.True
	}
}

// (begin a b) evaluates a and then b, returning the last value.
func builtinBegin(s *Session, args *ast.Value, env *Environment) *ast.Value {
	if args == nil {
		return nil
	}
	if args.IsAtom() {
		return s.Eval(args, env)
	}

	value := s.Eval(args.Head(), env)
	if tail := args.Tail(); tail != nil {
		value = s.Eval(tail, env)
	}
	return value
}

func builtinCar(s *Session, args *ast.Value, env *Environment) *ast.Value {
	if args == nil {
		return nil
	}
	value := s.Eval(args, env)
	if !value.IsPair() {
		return ast.Error
	}
	return value.Head()
}

func builtinCdr(s *Session, args *ast.Value, env *Environment) *ast.Value {
	if args == nil {
		return nil
	}
	value := s.Eval(args, env)
	if !value.IsPair() {
		return ast.Error
	}
	return value.Tail()
}

func builtinCons(s *Session, args *ast.Value, env *Environment) *ast.Value {
	if !args.IsPair() {
		return ast.Error
	}
	return ast.Cons(s.Eval(args.Head(), env), s.Eval(args.Tail(), env))
}

// (if cond then else) picks then unless cond evaluates to #f.
func builtinIf(s *Session, args *ast.Value, env *Environment) *ast.Value {
	if !args.IsPair() || args.Head() == nil {
		return ast.Error
	}
	branches := args.Tail()
	if !branches.IsPair() {
		return ast.Error
	}

	if s.Eval(args.Head(), env) != ast.False {
		return s.Eval(branches.Head(), env)
	}
	return s.Eval(branches.Tail(), env)
}

func builtinList(s *Session, args *ast.Value, env *Environment) *ast.Value {
	if args == nil {
		return nil
	}

	values := []*ast.Value{}
	for ; args.IsPair(); args = args.Tail() {
		values = append(values, s.Eval(args.Head(), env))
	}
	if args != nil {
		values = append(values, s.Eval(args, env))
	}
	return ast.List(values...)
}

func builtinDefine(s *Session, args *ast.Value, env *Environment) *ast.Value {
	return s.assign(args, env, true)
}

func builtinSetq(s *Session, args *ast.Value, env *Environment) *ast.Value {
	return s.assign(args, env, false)
}

// assign handles (define name expr) and (setq name expr). define binds in
// the current environment, setq updates the closest existing binding.
func (s *Session) assign(args *ast.Value, env *Environment, define bool) *ast.Value {
	if !args.IsPair() || args.Tail() == nil {
		return ast.Error
	}
	name := args.Head()
	if !name.IsSymbol() {
		return ast.Error
	}

	value := s.Eval(args.Tail(), env)
	if err := env.Update(name.Text(), value, define); err != nil {
		s.report("Variable '%s' does not exist.", name.Text())
		return ast.Nil
	}
	return value
}
