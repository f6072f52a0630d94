package redis

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arkline/orgsearch/internal/db"
	"github.com/arkline/orgsearch/internal/domain/search/query"
)

// Render translates a query.Expression into FT.SEARCH query syntax. An
// empty expression renders as "*" (match everything).
//
// Nested clauses render as a flattened conjunction over the child_* index
// aliases. RediSearch indexes multi-value JSONPaths per document, not per
// array element, so the flattened form is a candidate superset of the true
// same-element matches; callers re-verify candidates against the document
// source.
func Render(expr query.Expression) string {
	if expr.IsEmpty() {
		return "*"
	}

	parts := make([]string, 0, len(expr.Clauses()))
	for _, c := range expr.Clauses() {
		parts = append(parts, renderClause(c, ""))
	}
	return strings.Join(parts, " ")
}

func renderClause(c query.Clause, aliasPrefix string) string {
	field := aliasPrefix + c.Field()

	switch c.Kind() {
	case query.KindTerm:
		return fmt.Sprintf("@%s:{%s}", field, tagEscaper.Replace(c.Value()))

	case query.KindAnyOf:
		values := make([]string, 0, len(c.Values()))
		for _, v := range c.Values() {
			values = append(values, tagEscaper.Replace(v))
		}
		return fmt.Sprintf("@%s:{%s}", field, strings.Join(values, "|"))

	case query.KindMatch:
		return fmt.Sprintf("@%s:(%s)", field, escapeQuery(c.Value()))

	case query.KindNumericEq:
		n := strconv.FormatFloat(c.Number(), 'f', -1, 64)
		return fmt.Sprintf("@%s:[%s %s]", field, n, n)

	case query.KindNested:
		inner := make([]string, 0, len(c.Children()))
		for _, child := range c.Children() {
			inner = append(inner, renderClause(child, db.NestedAliasPrefix))
		}
		return "(" + strings.Join(inner, " ") + ")"

	default:
		return ""
	}
}

var tagEscaper = strings.NewReplacer(
	",", "\\,",
	".", "\\.",
	"<", "\\<",
	">", "\\>",
	"{", "\\{",
	"}", "\\}",
	"\"", "\\\"",
	"'", "\\'",
	":", "\\:",
	";", "\\;",
	"!", "\\!",
	"@", "\\@",
	"#", "\\#",
	"$", "\\$",
	"%", "\\%",
	"^", "\\^",
	"&", "\\&",
	"*", "\\*",
	"(", "\\(",
	")", "\\)",
	"-", "\\-",
	"+", "\\+",
	"=", "\\=",
	"~", "\\~",
	"|", "\\|",
	" ", "\\ ",
)

func escapeQuery(s string) string {
	return queryEscaper.Replace(s)
}

var queryEscaper = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	`"`, `\"`,
	`@`, `\@`,
	`{`, `\{`,
	`}`, `\}`,
	`(`, `\(`,
	`)`, `\)`,
	`|`, `\|`,
	`-`, `\-`,
	`~`, `\~`,
	`*`, `\*`,
	`[`, `\[`,
	`]`, `\]`,
	`!`, `\!`,
	`%`, `\%`,
	`^`, `\^`,
	`$`, `\$`,
	`<`, `\<`,
	`>`, `\>`,
	`=`, `\=`,
	`;`, `\;`,
	`+`, `\+`,
)
