package ast

import (
	"strings"
)

// Procedure is an opaque handle to a native procedure. The evaluator is the
// only one that knows how to call it.
type Procedure interface {
	ProcedureName() string
}

// Scope is the environment a closure was created in.
type Scope interface {
	Lookup(name string) (*Value, bool)
}

// Closure pairs a parameter list and a body with the scope in effect when the
// lambda form was evaluated.
type Closure struct {
	Params *Value
	Body   *Value
	Env    Scope
}

// Value represents any runtime datum. A nil *Value is the absent value.
type Value struct {
	t ValueType
	v interface{}
}

type pair struct {
	head *Value
	tail *Value
}

// Sentinel values, compared by identity.
var (
	False = newSentinel("#f")
	True  = newSentinel("#t")
	Nil   = newSentinel("#nil")
	Error = newSentinel("#error")
)

func newSentinel(name string) *Value {
	return &Value{t: ValueTypeSymbol, v: name}
}

// IsSentinel returns true if v is one of False, True, Nil or Error.
func IsSentinel(v *Value) bool {
	return v == False || v == True || v == Nil || v == Error
}

// NewInt creates an integer value
func NewInt(i int64) *Value {
	return &Value{t: ValueTypeInt, v: i}
}

// NewFloat creates a floating point value
func NewFloat(f float64) *Value {
	return &Value{t: ValueTypeFloat, v: f}
}

// NewString creates a string literal value
func NewString(s string) *Value {
	return &Value{t: ValueTypeString, v: s}
}

// NewSymbol creates a symbol value, the name is normalized to lower case.
func NewSymbol(name string) *Value {
	return &Value{t: ValueTypeSymbol, v: strings.ToLower(name)}
}

// NewProcedure wraps a native procedure handle
func NewProcedure(p Procedure) *Value {
	return &Value{t: ValueTypeProcedure, v: p}
}

// NewClosure creates a closure value
func NewClosure(params *Value, body *Value, env Scope) *Value {
	return &Value{t: ValueTypeClosure, v: &Closure{Params: params, Body: body, Env: env}}
}

// Type returns the variant of the value
func (v *Value) Type() ValueType {
	return v.t
}

// Int returns the payload of an integer value
func (v *Value) Int() int64 {
	return v.v.(int64)
}

// Float64 returns the payload of a float value
func (v *Value) Float64() float64 {
	return v.v.(float64)
}

// Text returns the payload of a string or symbol value
func (v *Value) Text() string {
	return v.v.(string)
}

// Procedure returns the native handle of a procedure value
func (v *Value) Procedure() Procedure {
	return v.v.(Procedure)
}

// Closure returns the payload of a closure value
func (v *Value) Closure() *Closure {
	return v.v.(*Closure)
}

// AsInt returns the integer payload if v is an integer.
func (v *Value) AsInt() (int64, bool) {
	if v == nil || v.t != ValueTypeInt {
		return 0, false
	}
	return v.v.(int64), true
}

// IsInt returns true if v is an integer.
func (v *Value) IsInt() bool {
	return v != nil && v.t == ValueTypeInt
}

// IsSymbol returns true if v is a symbol, sentinels included.
func (v *Value) IsSymbol() bool {
	return v != nil && v.t == ValueTypeSymbol
}

// IsClosure returns true if v is a closure.
func (v *Value) IsClosure() bool {
	return v != nil && v.t == ValueTypeClosure
}

// IsProcedure returns true if v is a native procedure.
func (v *Value) IsProcedure() bool {
	return v != nil && v.t == ValueTypeProcedure
}

// IsConstant returns true for self-evaluating values: integers, floats and
// string literals.
func (v *Value) IsConstant() bool {
	if v == nil {
		return false
	}
	switch v.t {
	case ValueTypeInt, ValueTypeFloat, ValueTypeString:
		return true
	}
	return false
}

func (v *Value) String() string {
	return Encode(v)
}
