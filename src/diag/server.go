package diag

import (
	"io"

	"tinykernel/src/config"
	"tinykernel/src/kernel"
)

// Serve reads one request frame at a time from rw, answers it by reading
// straight out of the running kernel's diagnostics, and writes back the
// framed response. It returns only on a read or write error (typically the
// link closing), so the board's setup code runs it in its own task or, on the
// host build, its own goroutine.
//
// A request frame arrives over an external serial link and is trusted no
// further than any other wire input: a malformed opcode is silently
// skipped (the peer will just see no response and can retry), but a
// well-formed opQuery naming a TaskID with no registered task gets an
// explicit error frame back rather than a call into kernel accessors that
// assume the caller already checked.
func Serve(rw io.ReadWriter) error {
	for {
		frame, err := ReadFrame(rw)
		if err != nil {
			return err
		}
		req, err := DecodeRequest(frame)
		if err != nil {
			continue
		}
		var out []byte
		if req.Op == opDescribe {
			out = EncodeDescribeResponse(buildShape())
		} else if !kernel.TaskExists(kernel.TaskID(req.TaskID)) {
			out = encodeErrorResponse(reasonUnknownTask)
		} else {
			out = EncodeResponse(Response{
				TaskID:       req.TaskID,
				OverrunCount: kernel.GetTaskOverrunCounter(kernel.TaskID(req.TaskID), req.Reset),
				StackReserve: uint32(kernel.GetStackReserve(kernel.TaskID(req.TaskID))),
			})
		}
		if _, err := rw.Write(out); err != nil {
			return err
		}
	}
}

// buildShape reads the kernel's compiled-in sizing and feature toggles out
// of config.Current(), the single point of truth for that shape, and
// reframes it as the wire-sized BuildShape a diag peer can decode.
func buildShape() BuildShape {
	s := config.Current()
	return BuildShape{
		MaxTasks:            uint8(s.MaxTasks),
		NumPrioClasses:      uint8(s.NumPrioClasses),
		MaxTasksPerClass:    uint8(s.MaxTasksPerClass),
		RoundRobinSupported: s.RoundRobinSupported,
		UserISR00Enabled:    s.UserISR00Enabled,
		UserISR01Enabled:    s.UserISR01Enabled,
		TickWidthBits:       uint8(s.TickWidthBits),
	}
}
