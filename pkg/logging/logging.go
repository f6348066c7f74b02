package logging

import "github.com/sirupsen/logrus"

// Setup builds the process logger: JSON in production, text elsewhere.
func Setup(level string, production bool) *logrus.Logger {
	log := logrus.New()
	if production {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
	return log
}
