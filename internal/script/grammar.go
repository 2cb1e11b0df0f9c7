package script

// Program is one scenario fixture: a sequence of let-bindings followed
// by a single return expression, matching the shape of spec.md §8's
// S1-S6 table entries.
type Program struct {
	Stmts  []*Stmt     `@@*`
	Return *ReturnStmt `@@`
}

// Stmt binds Name to the value produced by Rhs, mirroring the
// "x <- ..." notation spec.md's scenarios use.
type Stmt struct {
	Name string `@Ident "<-"`
	Rhs  *Rhs    `@@`
}

// Rhs is the closed set of binding right-hand sides: the two
// allocation forms that aren't ordinary expressions, a pair
// constructor, or a fallback to a general Expr.
type Rhs struct {
	Pair     *PairRhs     `  @@`
	InputArr *InputArrRhs `| @@`
	Input    *InputRhs    `| @@`
	Expr     *Expr        `| @@`
}

// InputRhs binds a fresh scalar input variable.
type InputRhs struct {
	Marker string `@"input"`
}

// InputArrRhs binds a fresh input array of N elements.
type InputArrRhs struct {
	N int `"input_arr" "(" @Integer ")"`
}

// PairRhs binds a fresh pair of two expressions.
type PairRhs struct {
	A *Expr `"pair" "(" @@`
	B *Expr `"," @@ ")"`
}

// ReturnStmt names the program's designated output expression.
type ReturnStmt struct {
	Expr *Expr `"return" @@`
}

// Expr is the lowest-precedence level: a sum of products.
type Expr struct {
	Left *Product `@@`
	Ops  []*AddOp `@@*`
}

// AddOp is one "+" or "-" applied to the running sum.
type AddOp struct {
	Op    string   `@("+" | "-")`
	Right *Product `@@`
}

// Product is a product of unary terms.
type Product struct {
	Left *Unary   `@@`
	Ops  []*MulOp `@@*`
}

// MulOp is one "*" or "/" applied to the running product.
type MulOp struct {
	Op    string `@("*" | "/")`
	Right *Unary `@@`
}

// Unary is an optionally-negated primary.
type Unary struct {
	Neg     bool     `@"-"?`
	Primary *Primary `@@`
}

// Primary is the closed set of atomic/parenthesized forms. Keyword-led
// alternatives are tried before the bare-identifier fallback so a
// keyword never parses as a reference to an undeclared name.
type Primary struct {
	If     *IfExpr    `  @@`
	Eq     *EqExpr    `| @@`
	Get    *GetExpr   `| @@`
	Fst    *FstExpr   `| @@`
	Snd    *SndExpr   `| @@`
	BigSum *BigSumExpr `| @@`
	Int    *int       `| @Integer`
	Ident  *string    `| @Ident`
	Paren  *Expr      `| "(" @@ ")"`
}

// IfExpr is a conditional expression.
type IfExpr struct {
	Cond *Expr `"if" @@`
	Then *Expr `"then" @@`
	Else *Expr `"else" @@`
}

// EqExpr is a general field-equality test.
type EqExpr struct {
	A *Expr `"eq" "(" @@`
	B *Expr `"," @@ ")"`
}

// GetExpr reads one element of an array by a compile-time index.
type GetExpr struct {
	Array *Expr `"get" "(" @@`
	Index int    `"," @Integer ")"`
}

// FstExpr projects a pair's first component.
type FstExpr struct {
	Pair *Expr `"fst" "(" @@ ")"`
}

// SndExpr projects a pair's second component.
type SndExpr struct {
	Pair *Expr `"snd" "(" @@ ")"`
}

// BigSumExpr sums Body(i) for i in [0, N], binding the loop variable
// as Var inside Body, matching spec.md's "bigsum n (\i -> ...)" form.
type BigSumExpr struct {
	N    int    `"bigsum" @Integer "("`
	Var  string `"lambda" @Ident "->"`
	Body *Expr  `@@ ")"`
}
