// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"log"
	"os"

	"github.com/cpmech/gosl/io"
)

// logFile holds the handle to the current run's log file.
var logFile *os.File

// InitLogFile opens dirout/fnamekey.log and connects the standard logger to
// it. The core solver never logs; only this CLI-facing boundary does.
func InitLogFile(dirout, fnamekey string) (err error) {
	f, err := os.Create(io.Sf("%s/%s.log", dirout, fnamekey))
	if err != nil {
		return err
	}
	logFile = f
	log.SetOutput(logFile)
	return nil
}

// FlushLog closes the log file.
func FlushLog() {
	if logFile != nil {
		logFile.Close()
	}
}

// LogErr logs a non-nil error under msg and reports whether the caller
// should stop.
func LogErr(err error, msg string) (stop bool) {
	if err != nil {
		log.Printf("ERROR: %s: %v", msg, err)
		return true
	}
	return false
}

// LogErrCond logs and reports stop=true when condition holds.
func LogErrCond(condition bool, msg string, prm ...interface{}) (stop bool) {
	if condition {
		log.Printf("ERROR: "+msg, prm...)
		return true
	}
	return false
}
