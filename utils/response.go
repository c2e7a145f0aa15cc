// utils/response.go
package utils

import (
	"crypto/rand"
	"encoding/hex"
	"math"

	"github.com/gin-gonic/gin"
)

func RespondWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// GenerateRandomString returns a hex string of length n for invoice numbers.
func GenerateRandomString(n int) string {
	bytes := make([]byte, (n+1)/2)
	if _, err := rand.Read(bytes); err != nil {
		panic("failed to read random bytes")
	}
	return hex.EncodeToString(bytes)[:n]
}

// Round2 rounds to two decimal places for presentation. Internal pricing math
// stays unrounded.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
