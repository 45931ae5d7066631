package util

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/terraform-tools/terraform-ansible-inventory/pkg/journalLogger"
)

// The inventory document is the only thing allowed on stdout, so every
// diagnostic sink configured here writes somewhere else.
var getTextWriter = func() io.Writer {
	return os.Stderr
}

func setLogging(logger *logrus.Logger, journalWriter journalLogger.IJournalWriter, name string, textLogging bool, journalLogging bool) {
	logger.SetFormatter(&logrus.TextFormatter{})
	if textLogging {
		logger.SetOutput(getTextWriter())
	} else {
		logger.SetOutput(io.Discard)
	}
	if journalLogging {
		logger.AddHook(journalLogger.NewJournalHook(journalWriter, map[string]interface{}{
			"TAG": name,
		}))
	}
}

func SetLogging(name string, textLogging bool, journalLogging bool) {
	setLogging(logrus.StandardLogger(), &journalLogger.JournalWriter{}, name, textLogging, journalLogging)
}
