package rlf

import (
	"strings"

	"github.com/dreamtides/rules-engine/internal/engineerr"
)

// Lex scans text into a token stream: runs of literal text interleaved
// with brace-delimited directives. A directive body is either a bare name
// ("Dissolve") or a name followed by a parenthesized, comma-separated
// argument list ("energy-cost(e:1)"); argument keys and values are split
// on the first colon and trimmed of surrounding whitespace.
func Lex(text string) ([]Token, error) {
	var tokens []Token
	var textBuf strings.Builder
	line, col := 1, 1
	textStartLine, textStartCol := line, col

	flushText := func() {
		if textBuf.Len() == 0 {
			return
		}
		tokens = append(tokens, Token{
			Kind: TokenText,
			Text: textBuf.String(),
			Span: Span{Line: textStartLine, Column: textStartCol},
		})
		textBuf.Reset()
	}

	advance := func(r rune) {
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}

	runes := []rune(text)
	for i := 0; i < len(runes); {
		r := runes[i]
		if r != '{' {
			textBuf.WriteRune(r)
			advance(r)
			i++
			continue
		}

		flushText()
		directiveLine, directiveCol := line, col
		advance(r) // consume '{'
		i++

		start := i
		for i < len(runes) && runes[i] != '}' {
			advance(runes[i])
			i++
		}
		if i >= len(runes) {
			return nil, engineerr.ParseError("unterminated directive", engineerr.ParseErrorDetail{
				Line: directiveLine, Column: directiveCol,
			})
		}
		body := string(runes[start:i])
		advance(runes[i]) // consume '}'
		i++

		name, args, err := parseDirectiveBody(body)
		if err != nil {
			return nil, engineerr.ParseError(err.Error(), engineerr.ParseErrorDetail{
				Line: directiveLine, Column: directiveCol,
			})
		}
		tokens = append(tokens, Token{
			Kind: TokenDirective,
			Name: name,
			Args: args,
			Span: Span{Line: directiveLine, Column: directiveCol},
		})
		textStartLine, textStartCol = line, col
	}
	flushText()
	return tokens, nil
}

// parseDirectiveBody splits "name" or "name(k:v, k2:v2)" into a directive
// name and its argument map.
func parseDirectiveBody(body string) (string, map[string]string, error) {
	open := strings.IndexByte(body, '(')
	if open < 0 {
		return strings.TrimSpace(body), nil, nil
	}
	if !strings.HasSuffix(body, ")") {
		return "", nil, errUnclosedArgs
	}
	name := strings.TrimSpace(body[:open])
	argList := body[open+1 : len(body)-1]
	args := map[string]string{}
	if strings.TrimSpace(argList) == "" {
		return name, args, nil
	}
	for _, pair := range strings.Split(argList, ",") {
		kv := strings.SplitN(pair, ":", 2)
		if len(kv) != 2 {
			return "", nil, errMalformedArg
		}
		args[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
	}
	return name, args, nil
}
