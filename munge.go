package main

import "regexp"

// A noiseRule deletes unwanted boilerplate from decoded message text.
// Rules with firstOnly delete their first match; the rest delete every
// occurrence.
type noiseRule struct {
	name      string
	re        *regexp.Regexp
	firstOnly bool
}

// defaultNoiseRules run in order. Order is significant: the reply and
// forward rules must run before link removal so that their markers are
// still intact when they are matched.
var defaultNoiseRules = []noiseRule{
	{name: "quoted-reply", re: regexp.MustCompile(`(\n|^)On.*\n?.*wrote:\n+(.|\n)*$`), firstOnly: true},
	{name: "reply-header", re: regexp.MustCompile(`(\n|^)From:(.|\n)*$`), firstOnly: true},
	{name: "forwarded", re: regexp.MustCompile(`(\n|^)---------- Forwarded message ----------(.|\n)*$`), firstOnly: true},
	{name: "pgp-block", re: regexp.MustCompile(`(\n|^)-----BEGIN PGP MESSAGE-----\n(.|\n)*-----END PGP MESSAGE-----\n`), firstOnly: true},
	{name: "embedded-link", re: regexp.MustCompile(`<[^ ]+>`), firstOnly: false},
}

// munge strips reply chains, forwarded-message banners, PGP blocks and
// embedded link placeholders from message text.
func munge(text string) string {
	return applyNoiseRules(text, defaultNoiseRules)
}

func applyNoiseRules(text string, rules []noiseRule) string {
	for _, r := range rules {
		if r.firstOnly {
			if loc := r.re.FindStringIndex(text); loc != nil {
				text = text[:loc[0]] + text[loc[1]:]
			}
			continue
		}
		text = r.re.ReplaceAllString(text, "")
	}
	return text
}
