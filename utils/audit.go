package utils

import (
	"strings"
	"time"

	"freightdesk/types"

	"github.com/gofiber/fiber/v2"
)

// sanitizeRequestBody strips credentials from a request body before it goes
// into the audit log.
func sanitizeRequestBody(c *fiber.Ctx) string {
	body := string(c.Body())
	if strings.Contains(body, "password") {
		return "[BODY_WITH_CREDENTIALS_REMOVED]"
	}
	return body
}

// CreateSanitizedLogEntry builds a deep-copied audit entry for the current
// request. Copies are taken because fiber reuses its buffers.
func CreateSanitizedLogEntry(c *fiber.Ctx) types.LogEntry {
	method := string([]byte(c.Method()))
	url := string([]byte(c.OriginalURL()))
	requestBody := sanitizeRequestBody(c)
	responseBody := string(append([]byte(nil), c.Response().Body()...))

	requestHeaders := make([]byte, len(c.Request().Header.Header()))
	copy(requestHeaders, c.Request().Header.Header())

	responseHeaders := make([]byte, len(c.Response().Header.Header()))
	copy(responseHeaders, c.Response().Header.Header())

	return types.LogEntry{
		Method:          method,
		URL:             url,
		RequestBody:     requestBody,
		ResponseBody:    responseBody,
		RequestHeaders:  string(requestHeaders),
		ResponseHeaders: string(responseHeaders),
		StatusCode:      c.Response().StatusCode(),
		CreatedAt:       time.Now(),
	}
}
