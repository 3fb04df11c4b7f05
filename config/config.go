package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Endpoint string // адрес OPC UA сервера контроллера

	// Узлы контроллера (идентификаторы настраиваются, не зашиты в код)
	SensorNode  string
	EjectNode   string
	ExitNode    string
	SessionNode string

	// Источник кадров: одиночный файл, папка со снимками или камера
	FramePath string
	FrameDir  string
	CameraID  int

	PollInterval time.Duration

	TelegramToken  string
	TelegramChatID int64
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		Endpoint:      getEnv("OPC_ENDPOINT", "opc.tcp://localhost:4840"),
		SensorNode:    getEnv("NODE_SENSOR", "ns=4;s=LadderLogicBottleChecker.BottleDetected"),
		EjectNode:     getEnv("NODE_EJECT", "ns=4;s=LadderLogicBottleChecker.EjectBottle"),
		ExitNode:      getEnv("NODE_EXIT", "ns=4;s=LadderLogicBottleChecker.ExitScript"),
		SessionNode:   getEnv("NODE_SESSION", "ns=4;s=LadderLogicBottleChecker.sessionNumber"),
		FramePath:     getEnv("FRAME_PATH", "Resources/bottle_with_label.png"),
		FrameDir:      os.Getenv("FRAME_DIR"),
		CameraID:      -1,
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
	}

	if v := os.Getenv("CAMERA_ID"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("parse CAMERA_ID: %w", err)
		}
		cfg.CameraID = id
	}

	if v := os.Getenv("POLL_INTERVAL_MS"); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("parse POLL_INTERVAL_MS: %w", err)
		}
		cfg.PollInterval = time.Duration(ms) * time.Millisecond
	}

	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse TELEGRAM_CHAT_ID: %w", err)
		}
		cfg.TelegramChatID = id
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
