package main

import (
	"fmt"
	"io"
	"os"
)

// Exporter renders threads and single messages as readable text.
// Progress snippets go to the diagnostic writer.
type Exporter struct {
	Out      io.Writer
	Diag     io.Writer
	Progress bool
}

// WriteThread prints one thread: a heading, then every message whose
// cleaned text is non-empty.
func (e *Exporter) WriteThread(t *Thread) {
	fmt.Fprintf(e.Out, "Email thread %s:\n\n", t.Key)
	for _, m := range t.Messages {
		text := munge(messageToText(m))
		if text == "" {
			continue
		}
		fmt.Fprintf(e.Out, "Subject: %s\n\n", cleanSubject(m.Header.Get("Subject")))
		fmt.Fprintf(e.Out, "%s\n\n----\n\n", text)
		e.progress(text)
	}
}

// WriteMessage prints one message body in single-message mode.
func (e *Exporter) WriteMessage(text string) {
	fmt.Fprintf(e.Out, "%s\n\n----\n\n", text)
	e.progress(text)
}

// progress mirrors the first 20 bytes of each printed body to the
// diagnostic stream as a lightweight progress indicator.
func (e *Exporter) progress(text string) {
	if !e.Progress || e.Diag == nil {
		return
	}
	b := []byte(text)
	if len(b) > 20 {
		b = b[:20]
	}
	e.Diag.Write(append(b, '\n'))
}

// exportThreads reads the whole mailbox, groups it into conversation
// threads and prints them. The author argument is accepted for symmetry
// with the messages mode; threads include every participant.
func exportThreads(path, author string, progress bool) error {
	_ = author
	sc, err := OpenMailbox(path)
	if err != nil {
		return err
	}
	defer sc.Close()
	var msgs []*Message
	for sc.Next() {
		msgs = append(msgs, sc.Message())
	}
	if err := sc.Err(); err != nil {
		return err
	}
	e := &Exporter{Out: os.Stdout, Diag: os.Stderr, Progress: progress}
	for _, t := range groupThreads(msgs) {
		e.WriteThread(t)
	}
	return nil
}

// exportMessages streams the mailbox once, printing the cleaned text of
// every message sent by author to someone else.
func exportMessages(path, author string, progress bool) error {
	sc, err := OpenMailbox(path)
	if err != nil {
		return err
	}
	defer sc.Close()
	e := &Exporter{Out: os.Stdout, Diag: os.Stderr, Progress: progress}
	for sc.Next() {
		m := sc.Message()
		if !relevant(m, author) {
			continue
		}
		text := munge(messageToText(m))
		if text == "" {
			continue
		}
		e.WriteMessage(text)
	}
	return sc.Err()
}
