package container

import (
	"time"

	app "bottle-gate/internal/application"
	"bottle-gate/internal/domain/port"
)

type Container struct {
	Gate *app.GateService
}

func New(link port.ControllerLink, frames port.FrameSource, classifier port.LabelClassifier, notifier port.RejectNotifier, nodes app.Nodes, interval time.Duration) *Container {
	return &Container{
		Gate: app.NewGateService(link, frames, classifier, notifier, nodes, interval),
	}
}
