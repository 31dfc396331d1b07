/*
Package arith is the front end for plain arithmetic expressions: a lexer
that produces one token at a time on demand, and a precedence climbing
parser that builds an expression tree from the token stream.

Grammars

	expression --> additive EOF ;
	additive   --> multiply ( ( "+" | "-" ) multiply )* ;
	multiply   --> divide ( "*" divide )* ;
	divide     --> modulo ( "/" modulo )* ;
	modulo     --> unary ( "%" unary )* ;
	unary      --> ( "+" | "-" ) unary
	             | primary ;
	primary    --> NUMBER
	             | "(" expression ")" ;

The parser is a single climbing loop rather than one function per
production, the productions above describe the trees it builds. Chains of
operators at the same level group to the left.

"unary" has some matches for error generations:
+ Unary '%' expressions are not supported.
+ Unary '/' expressions are not supported.
+ Unary '*' expressions are not supported.
*/
package arith
