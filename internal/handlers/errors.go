package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// respondData writes the success envelope.
func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

// respondError writes the failure envelope. err may be nil for client
// errors where the message says everything.
func respondError(c *gin.Context, status int, message string, err error) {
	body := gin.H{"success": false, "message": message}
	if err != nil {
		body["error"] = err.Error()
	}
	c.JSON(status, body)
}

// backendMessage maps a spreadsheet backend failure to an operator-facing
// message. The Sheets API reports misconfiguration only through error
// text, so classification is by substring.
func backendMessage(err error) string {
	s := err.Error()
	switch {
	case strings.Contains(s, "Unable to parse range"):
		return "Sheet range configuration is invalid. Check the sheet name and range."
	case strings.Contains(s, "Requested entity was not found"):
		return "Spreadsheet not found. Check the configured spreadsheet ID."
	case strings.Contains(s, "The caller does not have permission"):
		return "Permission denied. Share the spreadsheet with the service account email."
	default:
		return "Failed to access the spreadsheet backend."
	}
}
