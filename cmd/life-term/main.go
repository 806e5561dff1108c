package main

import (
	"bufio"
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"lifegrid/internal/term"

	"golang.org/x/sync/errgroup"
)

func main() {
	cfg := term.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger := log.New(os.Stderr, "life: ", log.LstdFlags)
	runner := term.NewRunner(cfg, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmds := make(chan term.Command)
	frames := make(chan string, 1)

	// Stdin reads cannot be interrupted, so the reader lives outside the
	// group and is abandoned when the process exits.
	go readCommands(ctx, cmds, logger)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return runner.Run(ctx, cmds, frames)
	})
	g.Go(func() error {
		out := bufio.NewWriter(os.Stdout)
		for frame := range frames {
			if _, err := out.WriteString(frame); err != nil {
				return err
			}
			if err := out.Flush(); err != nil {
				return err
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
}

func readCommands(ctx context.Context, cmds chan<- term.Command, logger *log.Logger) {
	defer close(cmds)
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		cmd, err := term.ParseCommand(scanner.Text())
		if err != nil {
			logger.Print(err)
			continue
		}
		select {
		case cmds <- cmd:
		case <-ctx.Done():
			return
		}
	}
}
