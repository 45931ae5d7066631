package journalLogger

import (
	"github.com/sirupsen/logrus"
	"github.com/ssgreg/journald"
)

//go:generate mockery --name IJournalWriter --inpackage
type IJournalWriter interface {
	Send(msg string, p journald.Priority, fields map[string]interface{}) error
}

type JournalWriter struct{}

func (w *JournalWriter) Send(msg string, p journald.Priority, fields map[string]interface{}) error {
	return journald.Send(msg, p, fields)
}

type JournalHook struct {
	writer IJournalWriter
	fields map[string]interface{}
}

func NewJournalHook(writer IJournalWriter, fields map[string]interface{}) *JournalHook {
	return &JournalHook{
		writer: writer,
		fields: fields,
	}
}

func (h *JournalHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func levelToPriority(level logrus.Level) journald.Priority {
	switch level {
	case logrus.PanicLevel:
		return journald.PriorityEmerg
	case logrus.FatalLevel:
		return journald.PriorityCrit
	case logrus.ErrorLevel:
		return journald.PriorityErr
	case logrus.WarnLevel:
		return journald.PriorityWarning
	case logrus.InfoLevel:
		return journald.PriorityInfo
	default:
		return journald.PriorityDebug
	}
}

func (h *JournalHook) Fire(entry *logrus.Entry) error {
	msg, err := entry.String()
	if err != nil {
		return err
	}
	return h.writer.Send(msg, levelToPriority(entry.Level), h.fields)
}
