package main

import (
	"log"
	"os"

	"github.com/spf13/pflag"
)

func main() {
	log.SetFlags(0)
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "threads":
		threadsMain(os.Args[2:])
	case "messages":
		messagesMain(os.Args[2:])
	case "help", "-h", "--help":
		usage()
	default:
		// Convenience: `mbox2txt <file> <author>` runs the threaded export.
		threadsMain(os.Args[1:])
	}
}

func threadsMain(args []string) {
	cmd := pflag.NewFlagSet("threads", pflag.ExitOnError)
	noProgress := cmd.Bool("no-progress", false, "suppress the stderr progress snippets")
	cmd.Parse(args)
	pos := cmd.Args()
	if len(pos) != 2 {
		log.Fatalf("threads: mailbox file and author required")
	}
	if err := exportThreads(pos[0], pos[1], !*noProgress); err != nil {
		log.Fatalf("threads: %v", err)
	}
}

func messagesMain(args []string) {
	cmd := pflag.NewFlagSet("messages", pflag.ExitOnError)
	noProgress := cmd.Bool("no-progress", false, "suppress the stderr progress snippets")
	cmd.Parse(args)
	pos := cmd.Args()
	if len(pos) != 2 {
		log.Fatalf("messages: mailbox file and author required")
	}
	if err := exportMessages(pos[0], pos[1], !*noProgress); err != nil {
		log.Fatalf("messages: %v", err)
	}
}

func usage() {
	log.Println("Usage: mbox2txt [command] <mbox-file> <author>")
	log.Println("Commands:")
	log.Println("  threads   export conversation threads as readable text (default)")
	log.Println("  messages  export single messages from <author> to someone else")
	log.Println()
	log.Println("Examples:")
	log.Println("  mbox2txt archive.mbox alice@example.com")
	log.Println("  mbox2txt messages archive.mbox alice@example.com --no-progress")
}
