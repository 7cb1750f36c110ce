package detect

import "regexp"

// Config carries the keyword sets and limits the detection rules run with.
// Keywords are matched as lowercase substrings, so every entry must be
// lowercase already.
type Config struct {
	// AuthKeywords is the general vocabulary matched against element
	// attributes. Order matters: the form-content rule checks input
	// placeholders against the first ten entries only.
	AuthKeywords []string

	// AuthInputNames are common name attributes of credential inputs.
	AuthInputNames []string

	// ContainerKeywords is the narrower set the container rule uses.
	ContainerKeywords []string

	// LinkHrefHints are href substrings that suggest an auth endpoint.
	LinkHrefHints []string

	// LinkTextHints are visible-text substrings required alongside an
	// href hint before a link counts as an auth link.
	LinkTextHints []string

	// OAuthTextPattern matches "sign in / log in / continue" followed by
	// "with / using / via" in a link or button's visible text.
	OAuthTextPattern *regexp.Regexp

	// SnippetMaxLen is the character budget for a component's serialized
	// markup before truncation.
	SnippetMaxLen int

	// DedupPrefixLen is how many leading characters of a snippet form its
	// deduplication key.
	DedupPrefixLen int
}

var oauthTextPattern = regexp.MustCompile(`(?i)(sign\s*in|log\s*in|continue)\s*(with|using|via)`)

// DefaultAuthKeywords is the canonical attribute vocabulary.
var DefaultAuthKeywords = []string{
	"login", "log-in", "log_in", "signin", "sign-in", "sign_in",
	"auth", "authenticate", "credentials", "sso", "oauth",
	"username", "user-name", "user_name", "userid",
	"password", "passwd", "passcode",
	"email", "e-mail",
}

// DefaultAuthInputNames covers the name attributes login forms commonly use.
var DefaultAuthInputNames = []string{
	"username", "user", "login", "email", "password", "passwd",
	"pass", "user_name", "user_email", "user_login",
	"session[email]", "session[password]", "credentials",
}

// DefaultContainerKeywords is the narrower set for the container rule.
var DefaultContainerKeywords = []string{"login", "signin", "sign-in", "auth", "credentials"}

// DefaultLinkHrefHints flag hrefs that point at auth endpoints.
var DefaultLinkHrefHints = []string{"/auth/", "/login", "/sso", "oauth"}

// DefaultLinkTextHints are the link texts accepted by the auth-link rule.
var DefaultLinkTextHints = []string{"sign in", "log in", "login", "sign up"}

// DefaultConfig returns the canonical rule configuration.
func DefaultConfig() Config {
	return Config{
		AuthKeywords:      DefaultAuthKeywords,
		AuthInputNames:    DefaultAuthInputNames,
		ContainerKeywords: DefaultContainerKeywords,
		LinkHrefHints:     DefaultLinkHrefHints,
		LinkTextHints:     DefaultLinkTextHints,
		OAuthTextPattern:  oauthTextPattern,
		SnippetMaxLen:     3000,
		DedupPrefixLen:    200,
	}
}
