package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"support-widget/internal/config"
	"support-widget/internal/domain/entities"
	"support-widget/internal/infra/api"
	"support-widget/internal/infra/logger"
	"support-widget/internal/infra/probe"
	"support-widget/internal/infra/services"
	"support-widget/internal/infra/store"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

func main() {
	seed := flag.Bool("seed", false, "write the sample canned answers when none exist")
	flag.Parse()

	config.LoadEnv()
	ctx := context.Background()

	storeDir := config.GetEnvOrDefault("LOCAL_STORE_DIR", ".support-widget")
	log, closeLog, err := fileLogger(ctx, storeDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "widget: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	baseURL := strings.TrimRight(config.GetEnvOrDefault("API_BASE_URL", "http://localhost:3002/api"), "/")
	p := probe.NewProbe(log, nil, baseURL+"/health", config.GetDurationOrDefault("PROBE_TIMEOUT", probe.DefaultTimeout))
	localStore := store.NewFileStore(storeDir, log)
	client := api.NewClient(log, p, localStore, api.Options{
		BaseURL: baseURL,
		ChatURL: os.Getenv("CHAT_ENDPOINT_URL"),
	})

	if *seed {
		if err := seedCannedAnswers(ctx, client); err != nil {
			log.Warn(fmt.Sprintf("Failed to seed canned answers: %v", err))
		}
	}

	session := services.NewSessionService(log, client, localStore, services.SessionOptions{})
	session.Open()
	log.Info("Widget session started", logrus.Fields{"session": session.ID, "backend": baseURL})

	program := tea.NewProgram(newModel(ctx, log, session), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.Error(fmt.Sprintf("Widget exited with error: %v", err))
		os.Exit(1)
	}
}

// fileLogger keeps log output away from the terminal UI.
func fileLogger(ctx context.Context, dir string) (*logger.Logger, func(), error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create %s: %w", dir, err)
	}
	f, err := os.OpenFile(filepath.Join(dir, "widget.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	level, err := logrus.ParseLevel(config.GetEnvOrDefault("LOG_LEVEL", "info"))
	if err != nil {
		level = logrus.InfoLevel
	}
	return logger.New(ctx, f, level, config.GetBoolOrDefault("LOG_JSON", false)), func() { f.Close() }, nil
}

func seedCannedAnswers(ctx context.Context, client *api.Client) error {
	existing, err := api.Get[[]entities.ChatResponseEntry](ctx, client, api.ResourceChatResponses)
	if err != nil {
		return err
	}
	if len(existing.Data) > 0 {
		return nil
	}

	for _, entry := range services.SampleChatResponses() {
		if _, err := api.Post[entities.ChatResponseEntry](ctx, client, api.ResourceChatResponses, entry); err != nil {
			return err
		}
	}
	return nil
}
