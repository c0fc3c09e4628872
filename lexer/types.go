package lexer

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid         TokenType = iota
	TokenOpenExpression            // Open parenthesis: "("
	TokenCloseExpression           // Close parenthesis: ")"
	TokenOpenList                  // Open square bracket: "["
	TokenCloseList                 // Close square bracket: "]"
	TokenOpenMap                   // Open curly bracket: "{"
	TokenCloseMap                  // Close curly bracket: "}"
	TokenColon                     // Colon: ":"
	TokenStar                      // Star: "*"
	TokenSlash                     // Slash: "/"
	TokenWord                      // Identifier: [A-Za-z_][A-Za-z0-9_]*
	TokenHashWord                  // Hash prefixed identifier: "#t"
	TokenInteger                   // Signed decimal or 0x hexadecimal integer
	TokenFloat                     // Signed decimal with a fractional part
	TokenSign                      // Bare "+" or "-"
	TokenRelational                // "<", ">", "<=" or ">="
	TokenString                    // Double quoted string, quotes included
	TokenEOF                       // End of input
)

// structural tokens are always a single character
var structuralTokens = []TokenType{
	TokenOpenExpression,
	TokenCloseExpression,
	TokenOpenList,
	TokenCloseList,
	TokenOpenMap,
	TokenCloseMap,
	TokenColon,
	TokenStar,
	TokenSlash,
}

var tokenValues = map[TokenType][]rune{
	TokenOpenExpression:  []rune{'('},
	TokenCloseExpression: []rune{')'},
	TokenOpenList:        []rune{'['},
	TokenCloseList:       []rune{']'},
	TokenOpenMap:         []rune{'{'},
	TokenCloseMap:        []rune{'}'},
	TokenColon:           []rune{':'},
	TokenStar:            []rune{'*'},
	TokenSlash:           []rune{'/'},
	TokenWord:            []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ_"),
	TokenInteger:         []rune("0123456789"),
	TokenSign:            []rune("+-"),
	TokenRelational:      []rune("<>"),
}

var tokenNames = map[TokenType]string{
	TokenInvalid:         "invalid",
	TokenOpenExpression:  "open_expression",
	TokenCloseExpression: "close_expression",
	TokenOpenList:        "open_list",
	TokenCloseList:       "close_list",
	TokenOpenMap:         "open_map",
	TokenCloseMap:        "close_map",
	TokenColon:           "colon",
	TokenStar:            "star",
	TokenSlash:           "slash",
	TokenWord:            "word",
	TokenHashWord:        "hash_word",
	TokenInteger:         "integer",
	TokenFloat:           "float",
	TokenSign:            "sign",
	TokenRelational:      "relational",
	TokenString:          "string",
	TokenEOF:             "EOF",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

func isTokenType(tt TokenType) func(r rune) bool {
	return func(r rune) bool {
		for _, v := range tokenValues[tt] {
			if v == r {
				return true
			}
		}
		return false
	}
}

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func isWordBody(r rune) bool {
	return isWordStart(r) || isDigit(r)
}

func isLetter(r rune) bool {
	return r != '_' && isWordStart(r)
}
