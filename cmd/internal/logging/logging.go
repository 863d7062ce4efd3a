package logging

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
)

var (
	Verbose bool
	File    string
)

// Setup sets the logrus level from Verbose and, when File is set, adds a hook
// writing every entry to it as JSON.
func Setup() error {
	if Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}

	if File == "" {
		return nil
	}

	dir := filepath.Dir(File)
	if _, err := os.Stat(dir); err != nil {
		return errors.Wrapf(err, "log file directory %v", dir)
	}

	paths := lfshook.PathMap{}
	for _, level := range logrus.AllLevels {
		paths[level] = File
	}
	logrus.AddHook(lfshook.NewHook(paths, &logrus.JSONFormatter{}))
	return nil
}
