package main

import (
	"regexp"
	"sort"
	"strings"
)

var subjectPrefixRe = regexp.MustCompile(`(?i)^(Re:|Fwd:)\s*`)

// cleanSubject removes one leading "Re:" or "Fwd:" prefix and trims
// surrounding whitespace. Repeated prefixes are stripped one at a time:
// "Re: Re: X" keeps the inner "Re:".
func cleanSubject(subject string) string {
	subject = strings.TrimSpace(subject)
	if loc := subjectPrefixRe.FindStringIndex(subject); loc != nil {
		subject = subject[loc[1]:]
	}
	return strings.TrimSpace(subject)
}

// threadKey derives the conversation key for a message: the trimmed
// In-Reply-To header when present, the cleaned raw Subject otherwise.
// A message with neither keys to the empty string.
func threadKey(m *Message) string {
	if ref := strings.TrimSpace(m.Header.Get("In-Reply-To")); ref != "" {
		return ref
	}
	return cleanSubject(m.Header.Get("Subject"))
}

// Thread is one conversation: every message sharing a key, in date
// order.
type Thread struct {
	Key      string
	Messages []*Message
}

// groupThreads buckets messages by thread key, preserving first-seen
// key order, and sorts each bucket ascending by the raw Date header
// string. The comparison is lexical, not calendar: messages without a
// Date header sort first as the empty string.
func groupThreads(msgs []*Message) []*Thread {
	byKey := make(map[string]*Thread)
	var threads []*Thread
	for _, m := range msgs {
		key := threadKey(m)
		t, ok := byKey[key]
		if !ok {
			t = &Thread{Key: key}
			byKey[key] = t
			threads = append(threads, t)
		}
		t.Messages = append(t.Messages, m)
	}
	for _, t := range threads {
		sort.SliceStable(t.Messages, func(i, j int) bool {
			return t.Messages[i].Header.Get("Date") < t.Messages[j].Header.Get("Date")
		})
	}
	return threads
}
