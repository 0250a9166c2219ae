package ast

// Equal reports whether a and b are structurally equal. Source positions are
// ignored, so a hand-built tree compares equal to a parsed one.
func Equal(a, b Node) bool {
	if isNil(a) || isNil(b) {
		return isNil(a) && isNil(b)
	}

	switch x := a.(type) {
	case *Program:
		y, ok := b.(*Program)
		return ok && statementsEqual(x.Statements, y.Statements)
	case *LetStatement:
		y, ok := b.(*LetStatement)
		return ok && Equal(x.Name, y.Name) && Equal(x.Value, y.Value)
	case *ReturnStatement:
		y, ok := b.(*ReturnStatement)
		return ok && Equal(x.Value, y.Value)
	case *ExpressionStatement:
		y, ok := b.(*ExpressionStatement)
		return ok && Equal(x.Expression, y.Expression)
	case *BlockStatement:
		y, ok := b.(*BlockStatement)
		return ok && statementsEqual(x.Statements, y.Statements)
	case *Identifier:
		y, ok := b.(*Identifier)
		return ok && x.Name == y.Name
	case *IntegerLiteral:
		y, ok := b.(*IntegerLiteral)
		return ok && x.Value == y.Value
	case *Boolean:
		y, ok := b.(*Boolean)
		return ok && x.Value == y.Value
	case *PrefixExpression:
		y, ok := b.(*PrefixExpression)
		return ok && x.Operator == y.Operator && Equal(x.Right, y.Right)
	case *InfixExpression:
		y, ok := b.(*InfixExpression)
		return ok && x.Operator == y.Operator && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	case *IfExpression:
		y, ok := b.(*IfExpression)
		return ok && Equal(x.Condition, y.Condition) &&
			Equal(x.Consequence, y.Consequence) && Equal(x.Alternative, y.Alternative)
	case *FunctionLiteral:
		y, ok := b.(*FunctionLiteral)
		if !ok || len(x.Parameters) != len(y.Parameters) {
			return false
		}
		for i := range x.Parameters {
			if !Equal(x.Parameters[i], y.Parameters[i]) {
				return false
			}
		}
		return Equal(x.Body, y.Body)
	case *CallExpression:
		y, ok := b.(*CallExpression)
		if !ok || len(x.Arguments) != len(y.Arguments) || !Equal(x.Function, y.Function) {
			return false
		}
		for i := range x.Arguments {
			if !Equal(x.Arguments[i], y.Arguments[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func statementsEqual(a, b []Statement) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// isNil catches both untyped nil and typed nil pointers stored in a Node
func isNil(n Node) bool {
	switch v := n.(type) {
	case nil:
		return true
	case *Program:
		return v == nil
	case *LetStatement:
		return v == nil
	case *ReturnStatement:
		return v == nil
	case *ExpressionStatement:
		return v == nil
	case *BlockStatement:
		return v == nil
	case *Identifier:
		return v == nil
	case *IntegerLiteral:
		return v == nil
	case *Boolean:
		return v == nil
	case *PrefixExpression:
		return v == nil
	case *InfixExpression:
		return v == nil
	case *IfExpression:
		return v == nil
	case *FunctionLiteral:
		return v == nil
	case *CallExpression:
		return v == nil
	}
	return false
}
