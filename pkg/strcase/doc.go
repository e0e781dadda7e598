// Package strcase converts strings between common identifier naming
// conventions: camelCase, PascalCase, snake_case, SCREAMING_SNAKE_CASE,
// kebab-case and Title Case.
//
// All conversions share one tokenizer that splits on whitespace, hyphens,
// underscores and letter-case boundaries (including acronym runs, so
// "HTTPServer" becomes "http_server" rather than "h_t_t_p_server"). Case
// folding is ASCII-oriented; the helpers pass non-Latin letters through
// Go's unicode case mapping without any locale-specific handling.
package strcase
