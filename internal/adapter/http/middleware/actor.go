package middleware

import "github.com/gin-gonic/gin"

const (
	actorHeader  = "X-User-ID"
	defaultActor = "anonymous"
)

// GetActor returns the acting user id carried by the request. There is no
// authentication layer, so the header value is taken as-is for audit fields.
func GetActor(c *gin.Context) string {
	actor := c.GetHeader(actorHeader)
	if actor == "" {
		return defaultActor
	}
	return actor
}
