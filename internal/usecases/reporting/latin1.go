package reporting

import "golang.org/x/text/encoding/charmap"

// toLatin1 transcodifica um campo para latin-1, substituindo caracteres
// sem representação por '?' em vez de abortar a renderização. Exigência do
// formato de saída, que só aceita esse encoding de byte único.
func toLatin1(s string) string {
	out := make([]byte, 0, len(s))

	for _, r := range s {
		b, ok := charmap.ISO8859_1.EncodeRune(r)
		if !ok {
			b = '?'
		}
		out = append(out, b)
	}

	return string(out)
}
