package swc

import (
	"github.com/PRIArobotics/HedgehogLightPi/internal/program"
)

// runningProgram pairs a spawned program with the feeder goroutines that
// turn its two pipes into channels the event loop can poll without
// blocking.
type runningProgram struct {
	*program.Running
	reply  chan rxResult
	stdout chan []byte
}

func wrapRunning(r *program.Running) *runningProgram {
	rp := &runningProgram{
		Running: r,
		reply:   make(chan rxResult, 4),
		stdout:  make(chan []byte, 4),
	}
	go feedCommands(r.ReplyR, rp.reply)
	go feedBytes(r.StdoutR, rp.stdout)
	return rp
}

func (rp *runningProgram) replyCh() <-chan rxResult {
	return rp.reply
}

func (rp *runningProgram) stdoutCh() <-chan []byte {
	return rp.stdout
}
