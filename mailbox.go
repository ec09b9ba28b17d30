package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/emersion/go-mbox"
)

// MailboxScanner iterates over the messages of an mbox file in file
// order, one pass. Re-iterating requires opening a new scanner.
type MailboxScanner struct {
	f        *os.File
	r        *mbox.Reader
	msg      *Message
	err      error
	name     string
	warnings int
}

func OpenMailbox(path string) (*MailboxScanner, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open mailbox: %w", err)
	}
	return &MailboxScanner{f: f, r: mbox.NewReader(f), name: path}, nil
}

// Next advances to the next parseable message. Messages that fail to
// parse are skipped with a warning rather than ending the scan.
func (s *MailboxScanner) Next() bool {
	for {
		mr, err := s.r.NextMessage()
		if err == io.EOF {
			return false
		}
		if err != nil {
			s.err = err
			return false
		}
		msg, err := readMessage(mr)
		if err != nil {
			if s.warnings < 3 {
				log.Printf("warn: %s: %v", s.name, err)
			}
			s.warnings++
			continue
		}
		s.msg = msg
		return true
	}
}

// Message returns the message read by the last successful Next.
func (s *MailboxScanner) Message() *Message { return s.msg }

func (s *MailboxScanner) Err() error { return s.err }

func (s *MailboxScanner) Close() error { return s.f.Close() }

// relevant reports whether a message was sent by author to someone
// else: From must contain author as a substring and To must exist
// without containing it. A missing From or To never matches.
func relevant(m *Message, author string) bool {
	from := m.Header.Get("From")
	if from == "" || !strings.Contains(from, author) {
		return false
	}
	to := m.Header.Get("To")
	if to == "" || strings.Contains(to, author) {
		return false
	}
	return true
}
