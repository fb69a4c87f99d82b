// Package logrus adapts a *logrus.Entry to prophy.Logger.
package logrus

import (
	"github.com/Jiish/prophy"
	"github.com/sirupsen/logrus"
)

var _ prophy.Logger = Logger{}

type Logger struct{ E *logrus.Entry }

func (l Logger) Debug(msg string, f prophy.Fields) { l.E.WithFields(logrus.Fields(f)).Debug(msg) }
func (l Logger) Info(msg string, f prophy.Fields)  { l.E.WithFields(logrus.Fields(f)).Info(msg) }
func (l Logger) Warn(msg string, f prophy.Fields)  { l.E.WithFields(logrus.Fields(f)).Warn(msg) }
func (l Logger) Error(msg string, f prophy.Fields) { l.E.WithFields(logrus.Fields(f)).Error(msg) }
