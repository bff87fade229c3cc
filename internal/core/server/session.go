package server

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"
)

// SessionHeader carries the storefront session; one session per browser tab.
const SessionHeader = "X-Session-ID"

const sessionLocal = "session_id"

// SessionID returns the request's storefront session id.
// A request without the header is issued a fresh random session, echoed back in
// the SessionHeader response header so the client can keep using it.
// The value is copied so it may outlive the request.
func SessionID(c *fiber.Ctx) string {
	if id, ok := c.Locals(sessionLocal).(string); ok {
		return id
	}

	id := strings.TrimSpace(c.Get(SessionHeader))
	if id == "" {
		id = uuid.NewString()
	} else {
		id = utils.CopyString(id)
	}

	c.Locals(sessionLocal, id)
	c.Set(SessionHeader, id)
	return id
}

// RayID returns the request id assigned by the requestid middleware.
func RayID(c *fiber.Ctx) string {
	rayID, ok := c.Locals("requestid").(string)
	if !ok {
		return "unknown"
	}
	return rayID
}
