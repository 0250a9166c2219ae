// ============================================================================
// Monkey - Interpreter Frontend
// ============================================================================
//
// Package:     ast
// Description: Visitor pattern and traversal helpers for the Monkey AST:
//              an indented tree dump, a generic pre-order walk, node
//              collection and depth measurement.
// Author:      Mike Stoffels
// Created:     2026-01-12
// License:     MIT
// ============================================================================

package ast

import (
	"fmt"
	"strings"
)

// Visitor interface for traversing AST nodes using the visitor pattern
type Visitor interface {
	VisitProgram(program *Program) interface{}

	// Statements
	VisitLetStatement(stmt *LetStatement) interface{}
	VisitReturnStatement(stmt *ReturnStatement) interface{}
	VisitExpressionStatement(stmt *ExpressionStatement) interface{}
	VisitBlockStatement(stmt *BlockStatement) interface{}

	// Expressions
	VisitIdentifier(expr *Identifier) interface{}
	VisitIntegerLiteral(expr *IntegerLiteral) interface{}
	VisitBoolean(expr *Boolean) interface{}
	VisitPrefixExpression(expr *PrefixExpression) interface{}
	VisitInfixExpression(expr *InfixExpression) interface{}
	VisitIfExpression(expr *IfExpression) interface{}
	VisitFunctionLiteral(expr *FunctionLiteral) interface{}
	VisitCallExpression(expr *CallExpression) interface{}
}

// Children returns the direct child nodes of node in source order
func Children(node Node) []Node {
	var out []Node
	add := func(n Node) {
		if !isNil(n) {
			out = append(out, n)
		}
	}

	switch n := node.(type) {
	case *Program:
		for _, s := range n.Statements {
			add(s)
		}
	case *LetStatement:
		add(n.Name)
		add(n.Value)
	case *ReturnStatement:
		add(n.Value)
	case *ExpressionStatement:
		add(n.Expression)
	case *BlockStatement:
		for _, s := range n.Statements {
			add(s)
		}
	case *PrefixExpression:
		add(n.Right)
	case *InfixExpression:
		add(n.Left)
		add(n.Right)
	case *IfExpression:
		add(n.Condition)
		add(n.Consequence)
		add(n.Alternative)
	case *FunctionLiteral:
		for _, p := range n.Parameters {
			add(p)
		}
		add(n.Body)
	case *CallExpression:
		add(n.Function)
		for _, a := range n.Arguments {
			add(a)
		}
	}

	return out
}

// Walk traverses node in pre-order. Children of a node are skipped when fn
// returns false for it.
func Walk(node Node, fn func(Node) bool) {
	if isNil(node) || !fn(node) {
		return
	}
	for _, child := range Children(node) {
		Walk(child, fn)
	}
}

// Depth returns the nesting depth of node; a leaf has depth 1
func Depth(node Node) int {
	if isNil(node) {
		return 0
	}
	deepest := 0
	for _, child := range Children(node) {
		if d := Depth(child); d > deepest {
			deepest = d
		}
	}
	return deepest + 1
}

// Collection holds nodes gathered by Collect
type Collection struct {
	Identifiers []*Identifier
	Integers    []*IntegerLiteral
	Calls       []*CallExpression
	Functions   []*FunctionLiteral
}

// Collect gathers identifiers, integer literals, calls and function
// literals from node in source order
func Collect(node Node) *Collection {
	c := &Collection{}
	Walk(node, func(n Node) bool {
		switch v := n.(type) {
		case *Identifier:
			c.Identifiers = append(c.Identifiers, v)
		case *IntegerLiteral:
			c.Integers = append(c.Integers, v)
		case *CallExpression:
			c.Calls = append(c.Calls, v)
		case *FunctionLiteral:
			c.Functions = append(c.Functions, v)
		}
		return true
	})
	return c
}

// StringVisitor creates an indented tree representation of the AST
type StringVisitor struct {
	buffer strings.Builder
	indent int
}

// NewStringVisitor creates a new string visitor
func NewStringVisitor() *StringVisitor {
	return &StringVisitor{}
}

// String returns the built string representation
func (sv *StringVisitor) String() string {
	return sv.buffer.String()
}

// Reset clears the internal buffer
func (sv *StringVisitor) Reset() {
	sv.buffer.Reset()
	sv.indent = 0
}

// MaxDumpIndent caps the indentation of Dump output. Lines nested deeper are
// printed at the cap with a "+N " marker giving the remaining levels, so a
// long operator chain yields output linear in its length.
const MaxDumpIndent = 32

func (sv *StringVisitor) line(format string, args ...interface{}) {
	levels := sv.indent
	if levels > MaxDumpIndent {
		levels = MaxDumpIndent
	}
	for i := 0; i < levels; i++ {
		sv.buffer.WriteString("  ")
	}
	if sv.indent > MaxDumpIndent {
		fmt.Fprintf(&sv.buffer, "+%d ", sv.indent-MaxDumpIndent)
	}
	fmt.Fprintf(&sv.buffer, format, args...)
	sv.buffer.WriteByte('\n')
}

func (sv *StringVisitor) nested(label string, nodes ...Node) {
	sv.line("%s", label)
	sv.indent++
	for _, n := range nodes {
		if isNil(n) {
			sv.line("<nil>")
			continue
		}
		n.Accept(sv)
	}
	sv.indent--
}

func (sv *StringVisitor) VisitProgram(program *Program) interface{} {
	nodes := make([]Node, 0, len(program.Statements))
	for _, s := range program.Statements {
		nodes = append(nodes, s)
	}
	sv.nested("Program", nodes...)
	return nil
}

func (sv *StringVisitor) VisitLetStatement(stmt *LetStatement) interface{} {
	sv.nested("Let "+stmt.Name.Name, stmt.Value)
	return nil
}

func (sv *StringVisitor) VisitReturnStatement(stmt *ReturnStatement) interface{} {
	if stmt.Value == nil {
		sv.line("Return")
		return nil
	}
	sv.nested("Return", stmt.Value)
	return nil
}

func (sv *StringVisitor) VisitExpressionStatement(stmt *ExpressionStatement) interface{} {
	sv.nested("ExpressionStatement", stmt.Expression)
	return nil
}

func (sv *StringVisitor) VisitBlockStatement(stmt *BlockStatement) interface{} {
	nodes := make([]Node, 0, len(stmt.Statements))
	for _, s := range stmt.Statements {
		nodes = append(nodes, s)
	}
	sv.nested("Block", nodes...)
	return nil
}

func (sv *StringVisitor) VisitIdentifier(expr *Identifier) interface{} {
	sv.line("Identifier %s", expr.Name)
	return nil
}

func (sv *StringVisitor) VisitIntegerLiteral(expr *IntegerLiteral) interface{} {
	sv.line("Integer %d", expr.Value)
	return nil
}

func (sv *StringVisitor) VisitBoolean(expr *Boolean) interface{} {
	sv.line("Boolean %t", expr.Value)
	return nil
}

func (sv *StringVisitor) VisitPrefixExpression(expr *PrefixExpression) interface{} {
	sv.nested("Prefix "+expr.Operator.String(), expr.Right)
	return nil
}

func (sv *StringVisitor) VisitInfixExpression(expr *InfixExpression) interface{} {
	sv.nested("Infix "+expr.Operator.String(), expr.Left, expr.Right)
	return nil
}

func (sv *StringVisitor) VisitIfExpression(expr *IfExpression) interface{} {
	sv.line("If")
	sv.indent++
	sv.nested("Condition", expr.Condition)
	sv.nested("Consequence", expr.Consequence)
	if expr.Alternative != nil {
		sv.nested("Alternative", expr.Alternative)
	}
	sv.indent--
	return nil
}

func (sv *StringVisitor) VisitFunctionLiteral(expr *FunctionLiteral) interface{} {
	names := make([]string, 0, len(expr.Parameters))
	for _, p := range expr.Parameters {
		names = append(names, p.Name)
	}
	sv.nested(fmt.Sprintf("Function(%s)", strings.Join(names, ", ")), expr.Body)
	return nil
}

func (sv *StringVisitor) VisitCallExpression(expr *CallExpression) interface{} {
	sv.line("Call")
	sv.indent++
	sv.nested("Function", expr.Function)
	args := make([]Node, 0, len(expr.Arguments))
	for _, a := range expr.Arguments {
		args = append(args, a)
	}
	sv.nested("Arguments", args...)
	sv.indent--
	return nil
}

// Dump converts an AST node to an indented tree representation
func Dump(node Node) string {
	visitor := NewStringVisitor()
	node.Accept(visitor)
	return visitor.String()
}
