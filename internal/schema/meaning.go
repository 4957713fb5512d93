package schema

import (
	"strings"
	"unicode"
)

var abbreviations = map[string]string{
	"nm": "name", "dt": "date", "no": "number", "cd": "code",
	"desc": "description", "amt": "amount", "qty": "quantity", "cnt": "count",
	"addr": "address", "tel": "phone", "ph": "phone", "mob": "phone",
	"pwd": "password", "pw": "password", "mail": "email",
	"zip": "zipcode", "msg": "message", "txt": "text", "usr": "user",
	"emp": "employee", "dept": "department", "cat": "category",
	"bal": "balance", "prc": "price", "stat": "status", "flg": "flag",
	"yn": "yesno", "is": "yesno", "seq": "sequence", "idx": "index",
}

var meaningKeywords = []struct {
	keyword string
	meaning string
}{
	{"email", "email"},
	{"phone", "phone"},
	{"address", "address"},
	{"zipcode", "zipcode"},
	{"password", "password"},
	{"country", "country"},
	{"city", "city"},
	{"name", "name"},
	{"title", "title"},
	{"description", "description"},
	{"date", "date"},
	{"price", "price"},
	{"amount", "price"},
	{"balance", "price"},
	{"quantity", "count"},
	{"count", "count"},
	{"yesno", "yesno"},
	{"flag", "yesno"},
	{"url", "url"},
}

// AnalyzeMeaning guesses what a column holds from its name. Abbreviated
// name parts are expanded first; the result is one of a small set of
// meanings ("email", "phone", "name", ...) or the expanded name itself.
func AnalyzeMeaning(colName string) string {
	words := splitName(colName)
	for i, w := range words {
		if full, ok := abbreviations[w]; ok {
			words[i] = full
		}
	}
	expanded := strings.Join(words, " ")

	for _, k := range meaningKeywords {
		if strings.Contains(expanded, k.keyword) {
			return k.meaning
		}
	}
	return expanded
}

// splitName breaks snake_case and CamelCase identifiers into lower-case words.
func splitName(name string) []string {
	var words []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			words = append(words, strings.ToLower(string(cur)))
			cur = cur[:0]
		}
	}

	runes := []rune(name)
	for i, r := range runes {
		switch {
		case r == '_' || r == '-' || r == ' ':
			flush()
		case unicode.IsUpper(r) && i > 0 && (unicode.IsLower(runes[i-1]) ||
			(i+1 < len(runes) && unicode.IsLower(runes[i+1]) && unicode.IsUpper(runes[i-1]))):
			flush()
			cur = append(cur, r)
		default:
			cur = append(cur, r)
		}
	}
	flush()
	return words
}
