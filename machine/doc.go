// Package machine implements the SimpleLang accumulator machine and its
// assembler.
//
// The machine has a fixed size word memory, a single accumulator, and a
// program counter indexing an immutable program of instructions. Each
// instruction is one of seven opcodes (LOAD, STORE, ADD, SUB, EQUAL, JUMP,
// HALT) with either an immediate operand (#n) or a memory reference operand.
//
// The assembler accepts whitespace separated MNEMONIC OPERAND pairs, for
// example:
//
//	LOAD #5 STORE 15 LOAD #0 EQUAL 15 JUMP #6 HALT ADD #1 JUMP #3
//
// A program can also be supplied pre-assembled as a list of Lines.
package machine
