package mpi

import logging "github.com/ipfs/go-log"

// logger is this package's subsystem logger. It is adapted from the
// teacher's common/logger.go (var Logger = log.Logger("tss-lib")); here it
// reports sliding-window parameter choices, Miller-Rabin witness
// rejections, and prime-search retry counts at Debug level, none of which
// are part of the functional contract.
var logger = logging.Logger("mpi")

// SetLogLevel adjusts the verbosity of this package's subsystem logger.
// Valid levels are "debug", "info", "warn", "error", "fatal", and
// "panic" (see github.com/ipfs/go-log).
func SetLogLevel(level string) error {
	return logging.SetLogLevel("mpi", level)
}
