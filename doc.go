/*
Package forth implements a small FORTH-like stack language.

FORTH programs are sequences of words, separated by whitespace.  A word is
either an integer literal, which pushes itself onto the stack, or the name of
a definition, which runs.  Built-in primitives are indistinguishable from
user-defined words: both live in the same dictionary, and either may be
redefined.

The primitives operate on a stack of ints:

	Symbol   Stack effect       Function
	  +      ( a b -- a+b )     add
	  -      ( a b -- a-b )     subtract
	  *      ( a b -- a*b )     multiply
	  /      ( a b -- a/b )     divide, truncating toward zero
	 dup     ( a -- a a )       copy the top of the stack
	 drop    ( a -- )           throw away the top of the stack
	 swap    ( a b -- b a )     exchange the top two items
	 over    ( a b -- a b a )   copy the second item to the top

New words are defined between a colon and a semicolon:

	: double dup + ;
	: quadruple double double ;
	2 quadruple

leaves 8 on the stack.  Word names are case insensitive.

A definition may only use words that are already defined when it is made;
there is no recursion, mutual or otherwise.  Each word used in a body is
bound to its definition at that time, so redefining a word later changes the
meaning of later uses only:

	: foo 5 ;
	: bar foo ;
	: foo 6 ;
	bar foo

leaves 5 6 on the stack.

Any error aborts the rest of an evaluation, and is returned as an *Error
wrapping one of ErrStackUnderflow, ErrDivisionByZero, ErrUnknownWord, or
ErrInvalidWord.  By default any operands popped by the failing word stay
popped; WithRollback restores them instead.
*/
package forth
