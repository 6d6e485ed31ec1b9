package httpd

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// genID returns a short random id used to correlate the log lines of one
// connection.
func genID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err == nil {
		return hex.EncodeToString(b[:])
	}
	t := time.Now().UnixNano()
	for i := range b {
		b[i] = byte(t >> (uint(i) * 8))
	}
	return hex.EncodeToString(b[:])
}
