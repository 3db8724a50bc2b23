package imapserver

import (
	"strings"
	"time"
)

const idleReadTimeout = 30 * time.Minute

// handleIdle waits for the client to end the IDLE command. There are no
// mailbox updates to push.
func (c *Conn) handleIdle() error {
	if err := c.writeContReq("idling"); err != nil {
		return err
	}

	c.conn.SetReadDeadline(time.Now().Add(idleReadTimeout))
	defer c.conn.SetReadDeadline(time.Time{})

	line, err := c.readLine()
	if err != nil {
		return err
	} else if !strings.EqualFold(string(line), "DONE") {
		return newClientBugError("Syntax error: expected DONE to end IDLE command")
	}
	return nil
}
