package parser

import (
	"strings"
	"testing"

	"github.com/JWesker/SalviaRenderer/common"
)

// Token kinds shared by the engine tests. Real kind spaces come from the
// lexer; these are stand-ins with the same shape.
const (
	kindID common.Kind = 1 + iota
	kindNum
	kindPlus
	kindLParen
	kindRParen
	kindSemi
)

var kindNames = map[string]common.Kind{
	"ID":   kindID,
	"NUM":  kindNum,
	"PLUS": kindPlus,
	"LP":   kindLParen,
	"RP":   kindRParen,
	"SEMI": kindSemi,
}

func tokID(s string) common.Token { return common.Token{Kind: kindID, Str: s} }

func tokNum(s string) common.Token { return common.Token{Kind: kindNum, Str: s} }

func tokOf(k common.Kind, s string) common.Token {
	return common.Token{Kind: k, Str: s}
}

// toks builds a token stream from "KIND:lexeme" specs (lexeme optional)
// and assigns indexes and columns.
func toks(t *testing.T, specs ...string) []common.Token {
	t.Helper()
	out := make([]common.Token, len(specs))
	col := 1
	for i, spec := range specs {
		kindName, lexeme, ok := strings.Cut(spec, ":")
		if !ok {
			lexeme = strings.ToLower(kindName)
		}
		kind, found := kindNames[kindName]
		if !found {
			t.Fatalf("unknown token kind %q", kindName)
		}
		out[i] = common.Token{
			Kind:  kind,
			Str:   lexeme,
			Pos:   common.SourcePos{Filename: "test.ss", Line: 1, Col: col, Offset: col - 1},
			Index: i,
		}
		col += len(lexeme) + 1
	}
	return out
}

func termID() *Terminal     { return NewTerminal(kindID, "identifier") }
func termNum() *Terminal    { return NewTerminal(kindNum, "number") }
func termPlus() *Terminal   { return NewTerminal(kindPlus, "'+'") }
func termLParen() *Terminal { return NewTerminal(kindLParen, "'('") }
func termRParen() *Terminal { return NewTerminal(kindRParen, "')'") }

// parse runs p over the tokens with a fresh cursor and chat and returns
// everything a test might want to inspect.
func parse(t *testing.T, p Parser, tokens []common.Token) (Result, Attribute, *Cursor, *common.DiagChat) {
	t.Helper()
	cur := NewCursor(tokens)
	chat := common.NewChat()
	var attr Attribute
	res := p.Parse(cur, &attr, chat)
	return res, attr, cur, chat
}
