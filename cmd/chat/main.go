// Command chat simula no terminal a conversa de agendamento pelo WhatsApp.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barberpro/internal/app"
	"github.com/BruksfildServices01/barberpro/internal/chatbot"
	"github.com/BruksfildServices01/barberpro/internal/config"
	"github.com/BruksfildServices01/barberpro/internal/logger"
)

func main() {
	cfg := config.Load()

	// Logs só de aviso para cima, para não poluir a conversa.
	zlog, err := logger.New(cfg.Env, "warn")
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, zlog)
	if err != nil {
		zlog.Fatal("failed to start", zap.Error(err))
	}
	defer a.Close()

	s, err := a.Bot.Open()
	if err != nil {
		zlog.Fatal("failed to open chat session", zap.Error(err))
	}
	for _, e := range s.Transcript() {
		printBot(chatbot.Reply{Text: e.Text, Options: e.Options})
	}

	in := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !in.Scan() {
			return
		}

		text := strings.TrimSpace(in.Text())
		if text == "" {
			continue
		}
		if text == "/sair" {
			return
		}

		fmt.Println("digitando...")
		reply, err := s.Send(ctx, text)
		if errors.Is(err, chatbot.ErrSessionClosed) {
			fmt.Println("conversa encerrada por inatividade")
			return
		}
		if err != nil {
			return
		}
		printBot(reply)
	}
}

func printBot(r chatbot.Reply) {
	fmt.Println()
	for _, line := range strings.Split(r.Text, "\n") {
		fmt.Println("  " + line)
	}
	if len(r.Options) > 0 {
		fmt.Printf("  [%s]\n", strings.Join(r.Options, " | "))
	}
	fmt.Println()
}
