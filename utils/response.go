package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Bledy idziemy w ksztalcie {"detail": "..."} zeby frontend mial
// jedno pole do pokazania.
func Detail(c *gin.Context, status int, detail string) {
	c.JSON(status, gin.H{"detail": detail})
}

func NotFound(c *gin.Context, detail string) {
	Detail(c, http.StatusNotFound, detail)
}

func BadRequest(c *gin.Context, detail string) {
	Detail(c, http.StatusBadRequest, detail)
}

func ServerError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
}
