package main

import "testing"

func TestMungeQuotedReply(t *testing.T) {
	in := "New content here.\n\nOn Jan 1, 2020, X wrote:\n\n> quoted text\n> more quoted\n"
	want := "New content here.\n"
	if got := munge(in); got != want {
		t.Errorf("munge = %q, want %q", got, want)
	}
}

func TestMungeCleanTextUnchanged(t *testing.T) {
	in := "Nothing to strip here.\nJust two lines.\n"
	if got := munge(in); got != in {
		t.Errorf("munge changed clean text: %q", got)
	}
}

func TestMungeReplyHeader(t *testing.T) {
	in := "Reply body.\n\nFrom: Someone <someone@example.com>\nSent: Monday\n\nOld text.\n"
	want := "Reply body.\n"
	if got := munge(in); got != want {
		t.Errorf("munge = %q, want %q", got, want)
	}
}

func TestMungeForwardedBanner(t *testing.T) {
	in := "See below.\n---------- Forwarded message ----------\nforwarded content\n"
	want := "See below."
	if got := munge(in); got != want {
		t.Errorf("munge = %q, want %q", got, want)
	}
}

func TestMungePGPBlockKeepsTrailingText(t *testing.T) {
	in := "before\n-----BEGIN PGP MESSAGE-----\nhQEMA1xyz\n-----END PGP MESSAGE-----\nafter\n"
	// The rule consumes the leading newline together with the block.
	want := "beforeafter\n"
	if got := munge(in); got != want {
		t.Errorf("munge = %q, want %q", got, want)
	}
}

func TestMungeEmbeddedLinks(t *testing.T) {
	in := "see <http://example.com/a> and <mailto:x@y.z> here\n"
	want := "see  and  here\n"
	if got := munge(in); got != want {
		t.Errorf("munge = %q, want %q", got, want)
	}
}

func TestMungeLinkWithSpaceKept(t *testing.T) {
	in := "math: a < b and c > d\n"
	if got := munge(in); got != in {
		t.Errorf("munge removed a bracketed span containing spaces: %q", got)
	}
}

func TestApplyNoiseRulesSubset(t *testing.T) {
	in := "x\n-----BEGIN PGP MESSAGE-----\naaa\n-----END PGP MESSAGE-----\nmiddle\n"
	got := applyNoiseRules(in, defaultNoiseRules[3:4])
	want := "xmiddle\n"
	if got != want {
		t.Errorf("applyNoiseRules = %q, want %q", got, want)
	}
}

func TestNoiseRuleOrderFixed(t *testing.T) {
	names := []string{"quoted-reply", "reply-header", "forwarded", "pgp-block", "embedded-link"}
	if len(defaultNoiseRules) != len(names) {
		t.Fatalf("rule count = %d, want %d", len(defaultNoiseRules), len(names))
	}
	for i, r := range defaultNoiseRules {
		if r.name != names[i] {
			t.Errorf("rule %d = %q, want %q", i, r.name, names[i])
		}
	}
}
