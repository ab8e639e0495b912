package player

import (
	"encoding/json"
	"fmt"
	"net"
	"time"
)

// ipcCommand is the JSON structure sent to mpv's IPC socket.
type ipcCommand struct {
	Command   []any `json:"command"`
	RequestID int   `json:"request_id,omitempty"`
}

// message is anything mpv writes to a client: command replies and events share one stream.
type message struct {
	Event     string          `json:"event"`
	Name      string          `json:"name"`
	Data      json.RawMessage `json:"data"`
	Reason    string          `json:"reason"`
	FileError string          `json:"file_error"`
	Error     string          `json:"error"`
}

const writeDeadline = time.Second

// observed lists the properties a session subscribes to, keyed by observer id.
var observed = map[int]string{
	1: "duration",
	2: "eof-reached",
}

// send writes one newline-delimited command to conn.
func send(conn net.Conn, command ...any) error {
	payload, err := json.Marshal(ipcCommand{Command: command})
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	if err := conn.SetWriteDeadline(time.Now().Add(writeDeadline)); err != nil {
		return fmt.Errorf("set deadline: %w", err)
	}

	if _, err := conn.Write(append(payload, '\n')); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

func parseMessage(line []byte) (message, bool) {
	var msg message
	if err := json.Unmarshal(line, &msg); err != nil {
		return message{}, false
	}
	return msg, true
}

func (m message) float() (float64, bool) {
	var v float64
	if len(m.Data) == 0 || json.Unmarshal(m.Data, &v) != nil {
		return 0, false
	}
	return v, true
}

func (m message) bool() bool {
	var v bool
	return len(m.Data) > 0 && json.Unmarshal(m.Data, &v) == nil && v
}
