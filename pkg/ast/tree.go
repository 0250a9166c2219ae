package ast

// Tree converts node into nested maps and slices suitable for YAML or JSON
// encoding. Every map has a "node" key naming the node type.
func Tree(node Node) interface{} {
	if isNil(node) {
		return nil
	}

	pos := node.Position()
	m := map[string]interface{}{
		"line":   pos.Line,
		"column": pos.Column,
	}

	switch n := node.(type) {
	case *Program:
		delete(m, "line")
		delete(m, "column")
		m["node"] = "Program"
		m["statements"] = statementTrees(n.Statements)
	case *LetStatement:
		m["node"] = "Let"
		m["name"] = n.Name.Name
		m["value"] = Tree(n.Value)
	case *ReturnStatement:
		m["node"] = "Return"
		m["value"] = Tree(n.Value)
	case *ExpressionStatement:
		m["node"] = "ExpressionStatement"
		m["expression"] = Tree(n.Expression)
	case *BlockStatement:
		m["node"] = "Block"
		m["statements"] = statementTrees(n.Statements)
	case *Identifier:
		m["node"] = "Identifier"
		m["name"] = n.Name
	case *IntegerLiteral:
		m["node"] = "Integer"
		m["value"] = n.Value
	case *Boolean:
		m["node"] = "Boolean"
		m["value"] = n.Value
	case *PrefixExpression:
		m["node"] = "Prefix"
		m["operator"] = n.Operator.String()
		m["right"] = Tree(n.Right)
	case *InfixExpression:
		m["node"] = "Infix"
		m["operator"] = n.Operator.String()
		m["left"] = Tree(n.Left)
		m["right"] = Tree(n.Right)
	case *IfExpression:
		m["node"] = "If"
		m["condition"] = Tree(n.Condition)
		m["consequence"] = Tree(n.Consequence)
		m["alternative"] = Tree(n.Alternative)
	case *FunctionLiteral:
		params := make([]string, 0, len(n.Parameters))
		for _, p := range n.Parameters {
			params = append(params, p.Name)
		}
		m["node"] = "Function"
		m["parameters"] = params
		m["body"] = Tree(n.Body)
	case *CallExpression:
		args := make([]interface{}, 0, len(n.Arguments))
		for _, a := range n.Arguments {
			args = append(args, Tree(a))
		}
		m["node"] = "Call"
		m["function"] = Tree(n.Function)
		m["arguments"] = args
	}

	return m
}

func statementTrees(stmts []Statement) []interface{} {
	out := make([]interface{}, 0, len(stmts))
	for _, s := range stmts {
		out = append(out, Tree(s))
	}
	return out
}
