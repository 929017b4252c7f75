package apigen

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// AnchorID slugifies a fully-qualified type name into the anchor form the
// site generator produces: lower-cased with dots, angle brackets and generic
// arity backticks stripped. Names are NFC-normalized first so composed and
// decomposed identifier spellings produce the same anchor.
func AnchorID(fullName string) string {
	s := strings.ToLower(norm.NFC.String(fullName))
	return strings.NewReplacer(".", "", "<", "", ">", "", "`", "").Replace(s)
}
