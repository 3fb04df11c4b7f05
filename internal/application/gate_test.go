package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"bottle-gate/internal/domain/entity"
	"bottle-gate/internal/infrastructure/opc"
)

var testNodes = Nodes{
	Sensor:  "ns=4;s=Line.BottleDetected",
	Eject:   "ns=4;s=Line.EjectBottle",
	Exit:    "ns=4;s=Line.ExitScript",
	Session: "ns=4;s=Line.sessionNumber",
}

// scriptedFrames выдаёт кадры по сценарию; nil в сценарии — сбой захвата.
type scriptedFrames struct {
	frames [][]byte
	calls  int
}

func (s *scriptedFrames) NextFrame(ctx context.Context) ([]byte, error) {
	if s.calls >= len(s.frames) {
		return nil, errors.New("unexpected frame request")
	}
	frame := s.frames[s.calls]
	s.calls++
	if frame == nil {
		return nil, errors.New("camera fault")
	}
	return frame, nil
}

// scriptedClassifier отвечает вердиктами по сценарию; пустой вердикт — сбой.
type scriptedClassifier struct {
	verdicts []entity.Verdict
	calls    int
}

func (c *scriptedClassifier) Classify(ctx context.Context, frame []byte) (*entity.Classification, error) {
	if c.calls >= len(c.verdicts) {
		return nil, errors.New("unexpected classification call")
	}
	v := c.verdicts[c.calls]
	c.calls++
	if v == "" {
		return nil, errors.New("classifier failure")
	}
	return &entity.Classification{Verdict: v}, nil
}

func (c *scriptedClassifier) Overlay() ([]byte, error) {
	return []byte("overlay"), nil
}

// recordingNotifier запоминает оповещения об отбраковке.
type recordingNotifier struct {
	sessions  []int64
	snapshots [][]byte
}

func (n *recordingNotifier) NotifyReject(ctx context.Context, sessionID int64, snapshot []byte) error {
	n.sessions = append(n.sessions, sessionID)
	n.snapshots = append(n.snapshots, snapshot)
	return nil
}

func TestGateServiceScenario(t *testing.T) {
	// Сессии 3 -> 4 -> 4 -> 5: кадр с этикеткой, кадр без этикетки,
	// повтор сессии 4 (не переобрабатывается), новый кадр с этикеткой.
	link := opc.NewMemoryLink()
	link.QueueBool(testNodes.Exit, false, false, false, false, true)
	link.SetBool(testNodes.Sensor, true)
	link.QueueInt(testNodes.Session, 3, 4, 4, 5)

	frames := &scriptedFrames{frames: [][]byte{[]byte("f1"), []byte("f2"), []byte("f3")}}
	classifier := &scriptedClassifier{verdicts: []entity.Verdict{entity.LabelPresent, entity.LabelMissing, entity.LabelPresent}}
	notifier := &recordingNotifier{}

	svc := NewGateService(link, frames, classifier, notifier, testNodes, 0)
	require.NoError(t, svc.Run(context.Background()))

	// Отбраковка ровно одна — на сессии 4 без этикетки
	require.Equal(t, []opc.BoolWrite{{NodeID: testNodes.Eject, Value: true}}, link.Writes())
	require.Equal(t, 3, frames.calls)
	require.Equal(t, 3, classifier.calls)
	require.Equal(t, []int64{4}, notifier.sessions)
	require.Equal(t, [][]byte{[]byte("overlay")}, notifier.snapshots)
}

func TestGateServiceExitHaltsImmediately(t *testing.T) {
	// Узлы датчика и сессии не заданы: при флаге завершения цикл не
	// должен к ним обращаться
	link := opc.NewMemoryLink()
	link.QueueBool(testNodes.Exit, true)

	frames := &scriptedFrames{}
	classifier := &scriptedClassifier{}

	svc := NewGateService(link, frames, classifier, nil, testNodes, 0)
	require.NoError(t, svc.Run(context.Background()))

	require.Empty(t, link.Writes())
	require.Zero(t, frames.calls)
	require.Zero(t, classifier.calls)
}

func TestGateServiceSensorQuiet(t *testing.T) {
	link := opc.NewMemoryLink()
	link.QueueBool(testNodes.Exit, false, false, true)
	link.SetBool(testNodes.Sensor, false)
	link.SetInt(testNodes.Session, 1)

	frames := &scriptedFrames{}
	classifier := &scriptedClassifier{}

	svc := NewGateService(link, frames, classifier, nil, testNodes, 0)
	require.NoError(t, svc.Run(context.Background()))

	require.Zero(t, frames.calls)
	require.Empty(t, link.Writes())
}

func TestGateServiceDuplicateSessionSkipped(t *testing.T) {
	link := opc.NewMemoryLink()
	link.QueueBool(testNodes.Exit, false, false, true)
	link.SetBool(testNodes.Sensor, true)
	link.SetInt(testNodes.Session, 4)

	frames := &scriptedFrames{frames: [][]byte{[]byte("f1")}}
	classifier := &scriptedClassifier{verdicts: []entity.Verdict{entity.LabelPresent}}

	svc := NewGateService(link, frames, classifier, nil, testNodes, 0)
	require.NoError(t, svc.Run(context.Background()))

	require.Equal(t, 1, frames.calls)
	require.Equal(t, 1, classifier.calls)
}

func TestGateServiceAcquisitionRetriesNextPoll(t *testing.T) {
	// Сбой захвата не фиксирует сессию: следующий опрос той же сессии
	// повторяет попытку
	link := opc.NewMemoryLink()
	link.QueueBool(testNodes.Exit, false, false, true)
	link.SetBool(testNodes.Sensor, true)
	link.SetInt(testNodes.Session, 4)

	frames := &scriptedFrames{frames: [][]byte{nil, []byte("f1")}}
	classifier := &scriptedClassifier{verdicts: []entity.Verdict{entity.LabelMissing}}

	svc := NewGateService(link, frames, classifier, nil, testNodes, 0)
	require.NoError(t, svc.Run(context.Background()))

	require.Equal(t, 2, frames.calls)
	require.Equal(t, []opc.BoolWrite{{NodeID: testNodes.Eject, Value: true}}, link.Writes())
}

func TestGateServiceClassifierErrorSkipsEject(t *testing.T) {
	link := opc.NewMemoryLink()
	link.QueueBool(testNodes.Exit, false, true)
	link.SetBool(testNodes.Sensor, true)
	link.SetInt(testNodes.Session, 4)

	frames := &scriptedFrames{frames: [][]byte{[]byte("f1")}}
	classifier := &scriptedClassifier{verdicts: []entity.Verdict{""}}

	svc := NewGateService(link, frames, classifier, nil, testNodes, 0)
	require.NoError(t, svc.Run(context.Background()))

	require.Empty(t, link.Writes())
}

func TestGateServiceLinkFailureIsFatal(t *testing.T) {
	// Неопределённый узел завершения имитирует оборванную связь
	link := opc.NewMemoryLink()

	svc := NewGateService(link, &scriptedFrames{}, &scriptedClassifier{}, nil, testNodes, 0)
	require.Error(t, svc.Run(context.Background()))
}
