// Command diagmon is a small host-side client that polls a running kernel
// board for its per-task diagnostics (overrun counter, stack reserve) over
// a serial link, using the sync-byte/CRC16-checksummed frame format in
// src/diag.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/tarm/serial"

	"tinykernel/src/diag"
)

var (
	device   = flag.String("device", "/dev/ttyACM0", "serial device path")
	baud     = flag.Int("baud", 115200, "baud rate")
	taskID   = flag.Int("task", 0, "task id to query")
	reset    = flag.Bool("reset", false, "reset the overrun counter as it is read")
	interval = flag.Duration("interval", time.Second, "polling interval, 0 to query once")
	describe = flag.Bool("describe", false, "query the board's compiled-in build shape instead of a task")
)

func main() {
	flag.Parse()

	port, err := serial.OpenPort(&serial.Config{
		Name:        *device,
		Baud:        *baud,
		ReadTimeout: 2 * time.Second,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "diagmon: failed to open %s: %v\n", *device, err)
		os.Exit(1)
	}
	defer port.Close()

	if *describe {
		runDescribe(port)
		return
	}

	for {
		resp, err := query(port, uint8(*taskID), *reset)
		if err != nil {
			fmt.Fprintf(os.Stderr, "diagmon: %v\n", err)
		} else {
			fmt.Printf("task %d: overrun=%d stack_reserve=%d\n", resp.TaskID, resp.OverrunCount, resp.StackReserve)
		}
		if *interval <= 0 {
			return
		}
		time.Sleep(*interval)
	}
}

func runDescribe(port *serial.Port) {
	shape, err := describeBuild(port)
	if err != nil {
		fmt.Fprintf(os.Stderr, "diagmon: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("max_tasks=%d prio_classes=%d max_tasks_per_class=%d round_robin=%t user_isr00=%t user_isr01=%t tick_width_bits=%d\n",
		shape.MaxTasks, shape.NumPrioClasses, shape.MaxTasksPerClass,
		shape.RoundRobinSupported, shape.UserISR00Enabled, shape.UserISR01Enabled, shape.TickWidthBits)
}

func describeBuild(port *serial.Port) (diag.BuildShape, error) {
	if _, err := port.Write(diag.EncodeDescribeRequest()); err != nil {
		return diag.BuildShape{}, fmt.Errorf("writing request: %w", err)
	}
	frame, err := diag.ReadFrame(port)
	if err != nil {
		return diag.BuildShape{}, fmt.Errorf("reading response: %w", err)
	}
	shape, err := diag.DecodeDescribeResponse(frame)
	if err != nil {
		return diag.BuildShape{}, fmt.Errorf("decoding response: %w", err)
	}
	return shape, nil
}

func query(port *serial.Port, id uint8, reset bool) (diag.Response, error) {
	req := diag.Request{TaskID: id, Reset: reset}
	if _, err := port.Write(diag.EncodeRequest(req)); err != nil {
		return diag.Response{}, fmt.Errorf("writing request: %w", err)
	}

	frame, err := diag.ReadFrame(port)
	if err != nil {
		return diag.Response{}, fmt.Errorf("reading response: %w", err)
	}
	resp, err := diag.DecodeResponse(frame)
	if err != nil {
		return diag.Response{}, fmt.Errorf("decoding response: %w", err)
	}
	return resp, nil
}
