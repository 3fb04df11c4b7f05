package main

import (
	"context"
	"log"

	"bottle-gate/config"
	telegram "bottle-gate/internal/api"
	app "bottle-gate/internal/application"
	"bottle-gate/internal/container"
	"bottle-gate/internal/domain/port"
	"bottle-gate/internal/infrastructure/frame"
	"bottle-gate/internal/infrastructure/opc"
	"bottle-gate/internal/infrastructure/vision"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	// Подключаемся к контроллеру линии
	link, err := opc.Connect(ctx, cfg.Endpoint)
	if err != nil {
		log.Fatalf("Failed to connect to controller: %v", err)
	}
	log.Println("Connected to server")

	// Выбираем источник кадров: камера, папка или одиночный файл
	frames, err := newFrameSource(cfg)
	if err != nil {
		link.Close(ctx)
		log.Fatalf("Failed to create frame source: %v", err)
	}

	classifier := vision.NewLabelDetector()
	defer classifier.Close()

	// Оповещения оператора включаются только при заданном токене
	var notifier port.RejectNotifier
	if cfg.TelegramToken != "" && cfg.TelegramChatID != 0 {
		n, err := telegram.NewNotifier(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			link.Close(ctx)
			log.Fatalf("Failed to create notifier: %v", err)
		}
		notifier = n
	}

	nodes := app.Nodes{
		Sensor:  cfg.SensorNode,
		Eject:   cfg.EjectNode,
		Exit:    cfg.ExitNode,
		Session: cfg.SessionNode,
	}
	c := container.New(link, frames, classifier, notifier, nodes, cfg.PollInterval)

	log.Println("Bottle gate is running...")
	if err := c.Gate.Run(ctx); err != nil {
		link.Close(ctx)
		log.Fatalf("Gate error: %v", err)
	}

	if err := link.Close(ctx); err != nil {
		log.Printf("Error disconnecting: %v", err)
	}
	log.Println("Disconnected")
}

func newFrameSource(cfg *config.Config) (port.FrameSource, error) {
	if cfg.CameraID >= 0 {
		return frame.OpenCamera(cfg.CameraID)
	}
	if cfg.FrameDir != "" {
		return frame.NewFolderSource(cfg.FrameDir)
	}
	return frame.NewFileSource(cfg.FramePath), nil
}
