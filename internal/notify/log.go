package notify

import (
	"context"

	"github.com/sirupsen/logrus"
)

// LogPublisher writes events to the log. It is used when no broker is configured.
type LogPublisher struct {
	logger *logrus.Logger
}

func NewLogPublisher(logger *logrus.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, event Event) error {
	entry := p.logger.WithFields(logrus.Fields{
		"eventID":   event.ID,
		"eventType": string(event.Type),
		"userID":    event.UserID.String(),
	})
	if event.Transaction != nil {
		entry = entry.WithField("transactionID", event.Transaction.ID.String())
	}
	if event.Goal != nil {
		entry = entry.WithFields(logrus.Fields{
			"goalID":            event.Goal.ID.String(),
			"goalCurrentAmount": event.Goal.CurrentAmount.String(),
		})
	}
	if event.Error != "" {
		entry = entry.WithField("eventError", event.Error)
	}
	entry.Info("Notify.Event")
	return nil
}
