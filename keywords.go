package activitystreams

// JSON-LD keywords the codec recognises. Everything else starting with an @
// is preserved as an extension.
const (
	KeywordContext = "@context"
	KeywordID      = "@id"
	KeywordType    = "@type"
)

// looksLikeKeyword determines if a string has the general shape of a JSON-LD
// keyword.
//
// It returns true for strings of the form: "@[alpha]".
func looksLikeKeyword(s string) bool {
	if s == "" {
		return false
	}

	if s == "@" {
		return false
	}

	if s[0] != '@' {
		return false
	}

	for _, char := range s[1:] {
		if (char < 'a' || char > 'z') &&
			(char < 'A' || char > 'Z') {
			return false
		}
	}

	return true
}
