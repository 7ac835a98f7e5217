package protocol

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// Kind classifies a daemon error reply by its numeric code.
type Kind int

const (
	KindNotList Kind = iota
	KindServerArgument
	KindIncorrectPassword
	KindPermission
	KindServerError
	KindNotFound
	KindPlaylistMax
	KindSystemError
	KindPlaylistLoad
	KindAlreadyUpdating
	KindNotPlaying
	KindAlreadyExists
)

// errorKinds maps the daemon's numeric codes to kinds. Codes outside the
// table fall back to KindServerError; a conforming daemon never sends
// them.
var errorKinds = map[int]Kind{
	1:  KindNotList,
	2:  KindServerArgument,
	3:  KindIncorrectPassword,
	4:  KindPermission,
	5:  KindServerError,
	50: KindNotFound,
	51: KindPlaylistMax,
	52: KindSystemError,
	53: KindPlaylistLoad,
	54: KindAlreadyUpdating,
	55: KindNotPlaying,
	56: KindAlreadyExists,
}

var kindNames = map[Kind]string{
	KindNotList:           "not a list",
	KindServerArgument:    "bad argument",
	KindIncorrectPassword: "incorrect password",
	KindPermission:        "permission denied",
	KindServerError:       "server error",
	KindNotFound:          "not found",
	KindPlaylistMax:       "playlist at maximum size",
	KindSystemError:       "system error",
	KindPlaylistLoad:      "playlist load failed",
	KindAlreadyUpdating:   "update already in progress",
	KindNotPlaying:        "not playing",
	KindAlreadyExists:     "already exists",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "server error"
}

// Error is a daemon ACK reply: the numeric code, the position of the
// failing command within a command list, the failing command's name, and
// the daemon's message.
type Error struct {
	Code    int
	Index   int
	Command string
	Message string
}

func (e *Error) Error() string {
	if e.Command == "" {
		return fmt.Sprintf("mpd: %s", e.Message)
	}
	return fmt.Sprintf("mpd: %s: %s", e.Command, e.Message)
}

// Kind returns the error classification for the numeric code.
func (e *Error) Kind() Kind {
	if k, ok := errorKinds[e.Code]; ok {
		return k
	}
	return KindServerError
}

// ackPattern matches the daemon's error reply line:
// ACK [code@index] {command} message
var ackPattern = regexp.MustCompile(`^ACK \[(\d+)@(\d+)\] \{([^}]*)\} (.*)$`)

// ParseAck decodes an ACK line into an Error. ok is false when the line
// is not an ACK.
func ParseAck(line string) (*Error, bool) {
	m := ackPattern.FindStringSubmatch(line)
	if m == nil {
		return nil, false
	}
	code, _ := strconv.Atoi(m[1])
	index, _ := strconv.Atoi(m[2])
	return &Error{
		Code:    code,
		Index:   index,
		Command: m[3],
		Message: m[4],
	}, true
}

// IsNotFound reports whether err is a daemon error with the not-found code.
func IsNotFound(err error) bool {
	var pe *Error
	return errors.As(err, &pe) && pe.Kind() == KindNotFound
}

// IsIncorrectPassword reports whether err is a daemon authentication error.
func IsIncorrectPassword(err error) bool {
	var pe *Error
	return errors.As(err, &pe) && pe.Kind() == KindIncorrectPassword
}

// ConnOp names the connection operation that failed.
type ConnOp string

const (
	ConnOpDial             ConnOp = "dial"
	ConnOpGreeting         ConnOp = "greeting"
	ConnOpSend             ConnOp = "send"
	ConnOpNotConnected     ConnOp = "not connected"
	ConnOpAlreadyConnected ConnOp = "already connected"
)

// ConnectionError indicates a failure of the connection itself rather
// than a daemon error reply.
type ConnectionError struct {
	Op  ConnOp
	Err error
}

func (e *ConnectionError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("mpd: %s", e.Op)
	}
	return fmt.Sprintf("mpd: %s: %v", e.Op, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// IsConnectionError reports whether err indicates a connection failure.
func IsConnectionError(err error) bool {
	var ce *ConnectionError
	return errors.As(err, &ce)
}
