package ast

// Tokens and values are plain structs with immutable string payloads,
// so assigning them copies them.

func cloneExpr(e Expr) Expr {
	if e == nil {
		return nil
	}
	return e.Clone()
}

func (a *Assign) Clone() Expr {
	return &Assign{Name: a.Name, Value: cloneExpr(a.Value)}
}

func (b *Binary) Clone() Expr {
	return &Binary{Left: cloneExpr(b.Left), Operator: b.Operator, Right: cloneExpr(b.Right)}
}

func (c *Call) Clone() Expr {
	var args []Expr
	if c.Args != nil {
		args = make([]Expr, len(c.Args))
		for i, arg := range c.Args {
			args[i] = cloneExpr(arg)
		}
	}
	return &Call{Callee: cloneExpr(c.Callee), Paren: c.Paren, Args: args}
}

func (g *Get) Clone() Expr {
	return &Get{Object: cloneExpr(g.Object), Name: g.Name}
}

func (g *Grouping) Clone() Expr {
	return &Grouping{Expression: cloneExpr(g.Expression)}
}

func (l *Literal) Clone() Expr {
	return &Literal{Value: l.Value}
}

func (l *Logical) Clone() Expr {
	return &Logical{Left: cloneExpr(l.Left), Operator: l.Operator, Right: cloneExpr(l.Right)}
}

func (s *Set) Clone() Expr {
	return &Set{Object: cloneExpr(s.Object), Name: s.Name, Value: cloneExpr(s.Value)}
}

func (s *Super) Clone() Expr {
	return &Super{Keyword: s.Keyword, Method: s.Method}
}

func (t *This) Clone() Expr {
	return &This{Keyword: t.Keyword}
}

func (u *Unary) Clone() Expr {
	return &Unary{Operator: u.Operator, Right: cloneExpr(u.Right)}
}

func (v *Variable) Clone() Expr {
	return &Variable{Name: v.Name}
}
