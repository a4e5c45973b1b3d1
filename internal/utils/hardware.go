package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"net"
	"strings"
)

// TerminalID reads the physical MAC address of the machine and hashes
// it into a short stable identifier. The id shows up on the system
// status screen and on printed receipts so support can tell which
// till a sale came from.
func TerminalID() string {
	interfaces, err := net.Interfaces()
	if err != nil {
		return "TILL-UNKNOWN"
	}

	var macAddress string
	for _, i := range interfaces {
		// First active physical interface wins
		if i.Flags&net.FlagUp != 0 && len(i.HardwareAddr) > 0 {
			macAddress = i.HardwareAddr.String()
			break
		}
	}

	if macAddress == "" {
		return "TILL-UNKNOWN"
	}

	hash := sha256.Sum256([]byte(macAddress + "SARI-POS-TERMINAL"))
	hashString := hex.EncodeToString(hash[:])

	return "TILL-" + strings.ToUpper(hashString[:8])
}
