package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// GenerateReceipt builds a receipt token for a gateway order. Nanosecond
// timestamp plus a random suffix keeps concurrent requests from colliding.
func GenerateReceipt(packageID int) string {
	randomNum, _ := rand.Int(rand.Reader, big.NewInt(999999))
	return fmt.Sprintf("umrah_%d_%d_%06d", packageID, time.Now().UnixNano(), randomNum.Int64())
}

// GenerateUPIReceipt is the UPI-flow variant of GenerateReceipt.
func GenerateUPIReceipt(packageID int) string {
	randomNum, _ := rand.Int(rand.Reader, big.NewInt(999999))
	return fmt.Sprintf("umrah_upi_%d_%d_%06d", packageID, time.Now().UnixNano(), randomNum.Int64())
}
