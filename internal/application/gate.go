package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"bottle-gate/internal/domain/entity"
	"bottle-gate/internal/domain/port"
)

// Nodes адреса логических узлов контроллера.
type Nodes struct {
	Sensor  string // датчик присутствия бутылки
	Eject   string // команда отбраковки
	Exit    string // запрос завершения работы
	Session string // счётчик сессий
}

// GateService ведёт цикл контроля качества: опрашивает контроллер,
// снимает кадр на каждую новую бутылку и бракует её, если этикетки нет.
type GateService struct {
	link       port.ControllerLink
	frames     port.FrameSource
	classifier port.LabelClassifier
	notifier   port.RejectNotifier // nil — оповещения выключены
	nodes      Nodes
	interval   time.Duration // пауза между опросами, 0 — без паузы
}

// NewGateService создаёт сервис контроля качества.
func NewGateService(link port.ControllerLink, frames port.FrameSource, classifier port.LabelClassifier, notifier port.RejectNotifier, nodes Nodes, interval time.Duration) *GateService {
	return &GateService{
		link:       link,
		frames:     frames,
		classifier: classifier,
		notifier:   notifier,
		nodes:      nodes,
		interval:   interval,
	}
}

// Run крутит цикл опроса до флага завершения от контроллера.
// Ошибки связи с контроллером фатальны — повторных попыток нет.
func (s *GateService) Run(ctx context.Context) error {
	var state entity.SessionState

	for {
		snap, err := s.snapshot(ctx)
		if err != nil {
			return err
		}

		if snap.ExitRequested {
			log.Println("Exit requested by controller")
			return nil
		}

		if snap.SensorTriggered && state.ShouldProcess(snap.SessionID) {
			state, err = s.inspect(ctx, snap, state)
			if err != nil {
				return err
			}
		}

		if err := s.pause(ctx); err != nil {
			return err
		}
	}
}

// snapshot читает флаги контроллера для текущего цикла.
// Порядок фиксирован: сначала флаг завершения, потом датчик и сессия;
// при запросе завершения других обращений к контроллеру не делается.
func (s *GateService) snapshot(ctx context.Context) (entity.ControllerSnapshot, error) {
	exit, err := s.link.ReadBool(ctx, s.nodes.Exit)
	if err != nil {
		return entity.ControllerSnapshot{}, fmt.Errorf("read exit flag: %w", err)
	}
	if exit {
		return entity.ControllerSnapshot{ExitRequested: true}, nil
	}

	sensor, err := s.link.ReadBool(ctx, s.nodes.Sensor)
	if err != nil {
		return entity.ControllerSnapshot{}, fmt.Errorf("read sensor flag: %w", err)
	}

	session, err := s.link.ReadInt(ctx, s.nodes.Session)
	if err != nil {
		return entity.ControllerSnapshot{}, fmt.Errorf("read session counter: %w", err)
	}

	return entity.ControllerSnapshot{SensorTriggered: sensor, SessionID: session}, nil
}

// inspect снимает кадр, классифицирует его и при отсутствии этикетки
// командует отбраковку. Состояние сессии фиксируется только после
// успешного захвата кадра: сорвавшийся захват повторится на следующем
// опросе той же сессии.
func (s *GateService) inspect(ctx context.Context, snap entity.ControllerSnapshot, state entity.SessionState) (entity.SessionState, error) {
	frame, err := s.frames.NextFrame(ctx)
	if err != nil {
		log.Printf("Frame acquisition failed: %v", err)
		return state, nil
	}

	state = state.MarkProcessed(snap.SessionID)

	result, err := s.classifier.Classify(ctx, frame)
	if err != nil {
		log.Printf("Classification failed: %v", err)
		return state, nil
	}

	if result.LabelFound() {
		log.Println("Label found")
		return state, nil
	}

	log.Println("No labels detected, ejecting bottle")
	if err := s.link.WriteBool(ctx, s.nodes.Eject, true); err != nil {
		return state, fmt.Errorf("write eject command: %w", err)
	}

	s.notifyReject(ctx, snap.SessionID)
	return state, nil
}

// notifyReject шлёт оповещение оператору, не задерживая цикл.
func (s *GateService) notifyReject(ctx context.Context, sessionID int64) {
	if s.notifier == nil {
		return
	}

	overlay, err := s.classifier.Overlay()
	if err != nil {
		log.Printf("Overlay snapshot failed: %v", err)
	}

	if err := s.notifier.NotifyReject(ctx, sessionID, overlay); err != nil {
		log.Printf("Reject notification failed: %v", err)
	}
}

func (s *GateService) pause(ctx context.Context) error {
	if s.interval <= 0 {
		return nil
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(s.interval):
		return nil
	}
}
