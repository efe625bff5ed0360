package lkit

import "testing"

func allTokens(src string) []Token {
	l := NewLexer(src)
	var toks []Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Type == TOKEN_EOF {
			return toks
		}
	}
}

func TestLexerStructuralTokens(t *testing.T) {
	toks := allTokens("(+ 1 2)")
	want := []TokenType{TOKEN_LPAREN, TOKEN_ATOM, TOKEN_ATOM, TOKEN_ATOM, TOKEN_RPAREN, TOKEN_EOF}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, w := range want {
		if toks[i].Type != w {
			t.Fatalf("token %d: got %v, want %v", i, toks[i].Type, w)
		}
	}
}

func TestLexerQuotedTimestamp(t *testing.T) {
	toks := allTokens("(+ '2012-03-21 11:45:16' 0)")
	if toks[2].Type != TOKEN_QUOTED {
		t.Fatalf("got %v, want TOKEN_QUOTED", toks[2].Type)
	}
	if toks[2].Value != "2012-03-21 11:45:16" {
		t.Fatalf("got %q, quotes should be stripped", toks[2].Value)
	}
}

func TestLexerUnterminatedQuoteIsIllegal(t *testing.T) {
	toks := allTokens("('2012")
	found := false
	for _, tok := range toks {
		if tok.Type == TOKEN_ILLEGAL {
			found = true
		}
	}
	if !found {
		t.Fatal("expected an ILLEGAL token for an unterminated quote")
	}
}

func TestLexerAtomsAcceptOperatorCharacters(t *testing.T) {
	toks := allTokens("(== 1 1.0)")
	if toks[1].Type != TOKEN_ATOM || toks[1].Value != "==" {
		t.Fatalf("got %+v, want ATOM \"==\"", toks[1])
	}
}

func TestLexerTracksLineAndColumn(t *testing.T) {
	toks := allTokens("(+\n1\n2)")
	// The second '1' atom is on line 2.
	var oneTok Token
	for _, tok := range toks {
		if tok.Value == "1" {
			oneTok = tok
			break
		}
	}
	if oneTok.Position.Line != 2 {
		t.Fatalf("got line %d, want 2", oneTok.Position.Line)
	}
}
