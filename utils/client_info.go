package utils

import "github.com/gin-gonic/gin"

// ClientInfo is the browsing context attached to captured leads.
type ClientInfo struct {
	IP        string
	UserAgent string
	Referrer  string
}

// ExtractClientInfo pulls the requester's IP, user agent and referrer from
// the Gin context.
func ExtractClientInfo(c *gin.Context) ClientInfo {
	return ClientInfo{
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		Referrer:  c.Request.Referer(),
	}
}
