package diag

import (
	"bytes"
	"testing"
)

func TestRequestRoundTrip(t *testing.T) {
	req := Request{Op: opQuery, TaskID: 5, Reset: true}
	frame := EncodeRequest(req)

	got, err := DecodeRequest(frame)
	if err != nil {
		t.Fatalf("DecodeRequest: %v", err)
	}
	if got != req {
		t.Errorf("round trip: want %+v, got %+v", req, got)
	}
}

func TestDescribeRequestRoundTrip(t *testing.T) {
	frame := EncodeDescribeRequest()

	got, err := DecodeRequest(frame)
	if err != nil {
		t.Fatalf("DecodeRequest: %v", err)
	}
	if got != (Request{Op: opDescribe}) {
		t.Errorf("round trip: want describe request, got %+v", got)
	}
}

func TestDescribeResponseRoundTrip(t *testing.T) {
	shape := BuildShape{
		MaxTasks:            16,
		NumPrioClasses:      8,
		MaxTasksPerClass:    16,
		RoundRobinSupported: true,
		UserISR00Enabled:    true,
		UserISR01Enabled:    false,
		TickWidthBits:       16,
	}
	frame := EncodeDescribeResponse(shape)

	got, err := DecodeDescribeResponse(frame)
	if err != nil {
		t.Fatalf("DecodeDescribeResponse: %v", err)
	}
	if got != shape {
		t.Errorf("round trip: want %+v, got %+v", shape, got)
	}
}

func TestDecodeResponseReportsUnknownTaskError(t *testing.T) {
	frame := encodeErrorResponse(reasonUnknownTask)

	if _, err := DecodeResponse(frame); err != ErrUnknownTask {
		t.Errorf("want ErrUnknownTask, got %v", err)
	}
}

func TestResponseRoundTrip(t *testing.T) {
	resp := Response{TaskID: 9, OverrunCount: 3, StackReserve: 4000}
	frame := EncodeResponse(resp)

	got, err := DecodeResponse(frame)
	if err != nil {
		t.Fatalf("DecodeResponse: %v", err)
	}
	if got != resp {
		t.Errorf("round trip: want %+v, got %+v", resp, got)
	}
}

func TestDecodeRequestRejectsBadCRC(t *testing.T) {
	frame := EncodeRequest(Request{TaskID: 1})
	frame[len(frame)-1] ^= 0xff

	if _, err := DecodeRequest(frame); err != errBadCRC {
		t.Errorf("want errBadCRC, got %v", err)
	}
}

func TestDecodeRequestRejectsBadSync(t *testing.T) {
	frame := EncodeRequest(Request{TaskID: 1})
	frame[0] = 0x00

	if _, err := DecodeRequest(frame); err != errBadSync {
		t.Errorf("want errBadSync, got %v", err)
	}
}

func TestReadFrameResynchronizesPastNoise(t *testing.T) {
	frame := EncodeResponse(Response{TaskID: 2, OverrunCount: 0, StackReserve: 128})
	noisy := append([]byte{0x00, 0x01, 0x02}, frame...)

	got, err := ReadFrame(bytes.NewReader(noisy))
	if err != nil {
		t.Fatalf("ReadFrame: %v", err)
	}
	if !bytes.Equal(got, frame) {
		t.Errorf("ReadFrame: want %v, got %v", frame, got)
	}
}
