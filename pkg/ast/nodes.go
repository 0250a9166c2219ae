// ============================================================================
// Monkey - Interpreter Frontend
// ============================================================================
//
// Package:     ast
// Description: AST node definitions for Monkey programs, statements and
//              expressions. Nodes are pure data; the parser never mutates a
//              node after it has been handed out.
// Author:      Mike Stoffels
// Created:     2026-01-12
// License:     MIT
// ============================================================================

package ast

import (
	"strconv"
	"strings"

	"github.com/msto63/monkey/pkg/token"
)

// Node represents the base interface for all AST nodes
type Node interface {
	// String returns a fully parenthesised source representation
	String() string

	// Position returns the source position of the node
	Position() token.Position

	// Accept implements the visitor pattern
	Accept(visitor Visitor) interface{}
}

// Statement is a node that appears in statement position
type Statement interface {
	Node
	statementNode()
}

// Expression is a node that produces a value
type Expression interface {
	Node
	expressionNode()
}

// PrefixOperator is the operator of a PrefixExpression
type PrefixOperator int

const (
	Not    PrefixOperator = iota + 1 // !
	Negate                           // -
)

// String returns the operator symbol
func (op PrefixOperator) String() string {
	switch op {
	case Not:
		return "!"
	case Negate:
		return "-"
	default:
		return "?"
	}
}

// InfixOperator is the operator of an InfixExpression
type InfixOperator int

const (
	Add         InfixOperator = iota + 1 // +
	Sub                                  // -
	Mul                                  // *
	Div                                  // /
	Equals                               // ==
	NotEquals                            // !=
	LessThan                             // <
	GreaterThan                          // >
)

// String returns the operator symbol
func (op InfixOperator) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case Equals:
		return "=="
	case NotEquals:
		return "!="
	case LessThan:
		return "<"
	case GreaterThan:
		return ">"
	default:
		return "?"
	}
}

// Program is the root node of one parse unit
type Program struct {
	Statements []Statement
}

// LetStatement binds Name to Value: let <name> = <value>;
type LetStatement struct {
	Name  *Identifier
	Value Expression
	Pos   token.Position
}

// ReturnStatement yields Value from the enclosing function. Value is nil for
// a bare "return;".
type ReturnStatement struct {
	Value Expression
	Pos   token.Position
}

// ExpressionStatement wraps a bare expression
type ExpressionStatement struct {
	Expression Expression
	Pos        token.Position
}

// BlockStatement is a braced statement list
type BlockStatement struct {
	Statements []Statement
	Pos        token.Position
}

// Identifier is a name reference
type Identifier struct {
	Name string
	Pos  token.Position
}

// IntegerLiteral is a signed 64-bit integer constant
type IntegerLiteral struct {
	Value int64
	Pos   token.Position
}

// Boolean is true or false
type Boolean struct {
	Value bool
	Pos   token.Position
}

// PrefixExpression is <operator><right>
type PrefixExpression struct {
	Operator PrefixOperator
	Right    Expression
	Pos      token.Position
}

// InfixExpression is <left> <operator> <right>
type InfixExpression struct {
	Operator InfixOperator
	Left     Expression
	Right    Expression
	Pos      token.Position
}

// IfExpression is if (<condition>) <consequence> else <alternative>.
// Alternative is nil when there is no else branch.
type IfExpression struct {
	Condition   Expression
	Consequence *BlockStatement
	Alternative *BlockStatement
	Pos         token.Position
}

// FunctionLiteral is fn(<parameters>) <body>
type FunctionLiteral struct {
	Parameters []*Identifier
	Body       *BlockStatement
	Pos        token.Position
}

// CallExpression is <function>(<arguments>)
type CallExpression struct {
	Function  Expression
	Arguments []Expression
	Pos       token.Position
}

// nodeWriter is implemented by every node in this package. Rendering goes
// through one shared builder so that output size stays linear in the number
// of nodes, also for long left-associative chains.
type nodeWriter interface {
	writeTo(b *strings.Builder)
}

func render(n nodeWriter) string {
	var b strings.Builder
	n.writeTo(&b)
	return b.String()
}

func writeNode(b *strings.Builder, n Node) {
	if isNil(n) {
		return
	}
	if w, ok := n.(nodeWriter); ok {
		w.writeTo(b)
		return
	}
	b.WriteString(n.String())
}

// Program

func (p *Program) String() string { return render(p) }

func (p *Program) writeTo(b *strings.Builder) {
	for i, s := range p.Statements {
		if i > 0 {
			b.WriteByte('\n')
		}
		writeNode(b, s)
	}
}

func (p *Program) Position() token.Position {
	if len(p.Statements) > 0 {
		return p.Statements[0].Position()
	}
	return token.Position{Line: 1, Column: 1}
}

func (p *Program) Accept(visitor Visitor) interface{} {
	return visitor.VisitProgram(p)
}

// Statements

func (ls *LetStatement) String() string { return render(ls) }

func (ls *LetStatement) writeTo(b *strings.Builder) {
	b.WriteString("let ")
	writeNode(b, ls.Name)
	b.WriteString(" = ")
	writeNode(b, ls.Value)
	b.WriteByte(';')
}

func (ls *LetStatement) Position() token.Position { return ls.Pos }

func (ls *LetStatement) Accept(visitor Visitor) interface{} {
	return visitor.VisitLetStatement(ls)
}

func (ls *LetStatement) statementNode() {}

func (rs *ReturnStatement) String() string { return render(rs) }

func (rs *ReturnStatement) writeTo(b *strings.Builder) {
	if isNil(rs.Value) {
		b.WriteString("return;")
		return
	}
	b.WriteString("return ")
	writeNode(b, rs.Value)
	b.WriteByte(';')
}

func (rs *ReturnStatement) Position() token.Position { return rs.Pos }

func (rs *ReturnStatement) Accept(visitor Visitor) interface{} {
	return visitor.VisitReturnStatement(rs)
}

func (rs *ReturnStatement) statementNode() {}

func (es *ExpressionStatement) String() string { return render(es) }

func (es *ExpressionStatement) writeTo(b *strings.Builder) {
	writeNode(b, es.Expression)
}

func (es *ExpressionStatement) Position() token.Position { return es.Pos }

func (es *ExpressionStatement) Accept(visitor Visitor) interface{} {
	return visitor.VisitExpressionStatement(es)
}

func (es *ExpressionStatement) statementNode() {}

func (bs *BlockStatement) String() string { return render(bs) }

func (bs *BlockStatement) writeTo(b *strings.Builder) {
	if len(bs.Statements) == 0 {
		b.WriteString("{ }")
		return
	}
	b.WriteString("{ ")
	for i, s := range bs.Statements {
		if i > 0 {
			b.WriteByte(' ')
		}
		writeNode(b, s)
	}
	b.WriteString(" }")
}

func (bs *BlockStatement) Position() token.Position { return bs.Pos }

func (bs *BlockStatement) Accept(visitor Visitor) interface{} {
	return visitor.VisitBlockStatement(bs)
}

func (bs *BlockStatement) statementNode() {}

// Expressions

func (i *Identifier) String() string { return i.Name }

func (i *Identifier) writeTo(b *strings.Builder) { b.WriteString(i.Name) }

func (i *Identifier) Position() token.Position { return i.Pos }

func (i *Identifier) Accept(visitor Visitor) interface{} {
	return visitor.VisitIdentifier(i)
}

func (i *Identifier) expressionNode() {}

func (il *IntegerLiteral) String() string { return strconv.FormatInt(il.Value, 10) }

func (il *IntegerLiteral) writeTo(b *strings.Builder) {
	var buf [20]byte
	b.Write(strconv.AppendInt(buf[:0], il.Value, 10))
}

func (il *IntegerLiteral) Position() token.Position { return il.Pos }

func (il *IntegerLiteral) Accept(visitor Visitor) interface{} {
	return visitor.VisitIntegerLiteral(il)
}

func (il *IntegerLiteral) expressionNode() {}

func (bl *Boolean) String() string { return strconv.FormatBool(bl.Value) }

func (bl *Boolean) writeTo(b *strings.Builder) { b.WriteString(strconv.FormatBool(bl.Value)) }

func (bl *Boolean) Position() token.Position { return bl.Pos }

func (bl *Boolean) Accept(visitor Visitor) interface{} {
	return visitor.VisitBoolean(bl)
}

func (bl *Boolean) expressionNode() {}

func (pe *PrefixExpression) String() string { return render(pe) }

func (pe *PrefixExpression) writeTo(b *strings.Builder) {
	b.WriteByte('(')
	b.WriteString(pe.Operator.String())
	writeNode(b, pe.Right)
	b.WriteByte(')')
}

func (pe *PrefixExpression) Position() token.Position { return pe.Pos }

func (pe *PrefixExpression) Accept(visitor Visitor) interface{} {
	return visitor.VisitPrefixExpression(pe)
}

func (pe *PrefixExpression) expressionNode() {}

func (ie *InfixExpression) String() string { return render(ie) }

func (ie *InfixExpression) writeTo(b *strings.Builder) {
	b.WriteByte('(')
	writeNode(b, ie.Left)
	b.WriteByte(' ')
	b.WriteString(ie.Operator.String())
	b.WriteByte(' ')
	writeNode(b, ie.Right)
	b.WriteByte(')')
}

func (ie *InfixExpression) Position() token.Position { return ie.Pos }

func (ie *InfixExpression) Accept(visitor Visitor) interface{} {
	return visitor.VisitInfixExpression(ie)
}

func (ie *InfixExpression) expressionNode() {}

func (ie *IfExpression) String() string { return render(ie) }

func (ie *IfExpression) writeTo(b *strings.Builder) {
	b.WriteString("if ")
	writeNode(b, ie.Condition)
	b.WriteByte(' ')
	writeNode(b, ie.Consequence)
	if ie.Alternative != nil {
		b.WriteString(" else ")
		writeNode(b, ie.Alternative)
	}
}

func (ie *IfExpression) Position() token.Position { return ie.Pos }

func (ie *IfExpression) Accept(visitor Visitor) interface{} {
	return visitor.VisitIfExpression(ie)
}

func (ie *IfExpression) expressionNode() {}

func (fl *FunctionLiteral) String() string { return render(fl) }

func (fl *FunctionLiteral) writeTo(b *strings.Builder) {
	b.WriteString("fn(")
	for i, p := range fl.Parameters {
		if i > 0 {
			b.WriteString(", ")
		}
		writeNode(b, p)
	}
	b.WriteString(") ")
	writeNode(b, fl.Body)
}

func (fl *FunctionLiteral) Position() token.Position { return fl.Pos }

func (fl *FunctionLiteral) Accept(visitor Visitor) interface{} {
	return visitor.VisitFunctionLiteral(fl)
}

func (fl *FunctionLiteral) expressionNode() {}

func (ce *CallExpression) String() string { return render(ce) }

func (ce *CallExpression) writeTo(b *strings.Builder) {
	writeNode(b, ce.Function)
	b.WriteByte('(')
	for i, a := range ce.Arguments {
		if i > 0 {
			b.WriteString(", ")
		}
		writeNode(b, a)
	}
	b.WriteByte(')')
}

func (ce *CallExpression) Position() token.Position { return ce.Pos }

func (ce *CallExpression) Accept(visitor Visitor) interface{} {
	return visitor.VisitCallExpression(ce)
}

func (ce *CallExpression) expressionNode() {}
