// README: Shared logrus logger setup.
package logging

import (
	"os"

	formatter "github.com/antonfisher/nested-logrus-formatter"
	"github.com/sirupsen/logrus"
)

// New builds the process logger. Level comes from AGENT_LOG_LEVEL
// (default info).
func New() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	level, err := logrus.ParseLevel(os.Getenv("AGENT_LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	logger.SetFormatter(&formatter.Formatter{
		TimestampFormat: "2006-01-02 15:04:05",
		HideKeys:        false,
		NoColors:        os.Getenv("AGENT_LOG_COLOR") == "off",
	})
	return logger
}
