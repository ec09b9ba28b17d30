package main

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net/mail"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
)

const (
	maxMessageBytes = 12 << 20 // cap total message read to avoid huge attachments
	maxPartBytes    = 2 << 20  // cap per MIME part when decoding bodies
)

// Message is one mailbox entry: parsed RFC 5322 headers plus the raw
// (still transfer-encoded) body bytes.
type Message struct {
	Header mail.Header
	Body   []byte
}

func readMessage(r io.Reader) (*Message, error) {
	msg, err := mail.ReadMessage(io.LimitReader(r, maxMessageBytes))
	if err != nil {
		return nil, err
	}
	body, err := io.ReadAll(io.LimitReader(msg.Body, maxMessageBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return &Message{Header: msg.Header, Body: body}, nil
}

// messageToText concatenates the decoded text of every qualifying
// plain-text part in MIME tree order. Parts that do not qualify
// contribute nothing; a message with no qualifying part yields "".
func messageToText(m *Message) string {
	var b strings.Builder
	walkParts(m.Header, m.Body, &b)
	return b.String()
}

func walkParts(h mail.Header, body []byte, out *strings.Builder) {
	mediaType, params, err := mime.ParseMediaType(h.Get("Content-Type"))
	if err != nil {
		return
	}
	if strings.HasPrefix(mediaType, "multipart/") {
		boundary := params["boundary"]
		if boundary == "" {
			return
		}
		mr := multipart.NewReader(bytes.NewReader(body), boundary)
		for {
			part, err := mr.NextPart()
			if err != nil {
				return
			}
			partBody, _ := io.ReadAll(io.LimitReader(part, maxPartBytes))
			walkParts(mail.Header(part.Header), partBody, out)
		}
	}
	if text, ok := partToText(h, mediaType, params, body); ok {
		out.WriteString(text)
	}
}

// partToText decodes a single leaf part. Only text/plain parts that
// declare a charset qualify; everything else is skipped. Parts marked
// format=flowed are unflowed, honoring their delsp parameter.
func partToText(h mail.Header, mediaType string, params map[string]string, body []byte) (string, bool) {
	if mediaType != "text/plain" {
		return "", false
	}
	if params["charset"] == "" {
		return "", false
	}
	decoded, err := decodeTransfer(h.Get("Content-Transfer-Encoding"), body)
	if err != nil {
		decoded = body
	}
	text := decodeCharset(decoded, params["charset"])
	if strings.EqualFold(params["format"], "flowed") {
		text = unflowText(text, strings.EqualFold(params["delsp"], "yes"))
	}
	return text, true
}

func decodeTransfer(encoding string, body []byte) ([]byte, error) {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "base64":
		r := base64.NewDecoder(base64.StdEncoding, bytes.NewReader(body))
		return io.ReadAll(io.LimitReader(r, maxPartBytes))
	case "quoted-printable":
		r := quotedprintable.NewReader(bytes.NewReader(body))
		return io.ReadAll(io.LimitReader(r, maxPartBytes))
	default:
		return body, nil
	}
}

// decodeCharset converts body to UTF-8, silently dropping byte
// sequences that do not decode. Unknown charset labels degrade to the
// raw bytes with invalid UTF-8 removed.
func decodeCharset(body []byte, label string) string {
	r, err := charset.NewReaderLabel(label, bytes.NewReader(body))
	if err != nil {
		return strings.ToValidUTF8(string(body), "")
	}
	converted, err := io.ReadAll(io.LimitReader(r, maxPartBytes))
	if err != nil {
		return strings.ToValidUTF8(string(body), "")
	}
	// The charset decoders substitute U+FFFD for undecodable input;
	// drop those to match the lossy-but-silent contract.
	return dropReplacementRunes(strings.ToValidUTF8(string(converted), ""))
}

func dropReplacementRunes(s string) string {
	if !strings.ContainsRune(s, utf8.RuneError) {
		return s
	}
	return strings.Map(func(r rune) rune {
		if r == utf8.RuneError {
			return -1
		}
		return r
	}, s)
}
