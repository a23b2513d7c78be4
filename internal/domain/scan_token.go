package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const scanTokenOfferingPrefix = "offering-"

// ScanToken is the decoded content of an attendance QR code.
type ScanToken struct {
	OfferingID int64
	Action     ScanAction
}

// EncodeScanToken renders the token string "offering-{id},{action}-{epochMillis}".
// The timestamp only makes repeated renders distinct; it is never checked on decode.
func EncodeScanToken(offeringID int64, action ScanAction, issuedAt time.Time) string {
	return fmt.Sprintf("%s%d,%s-%d", scanTokenOfferingPrefix, offeringID, action, issuedAt.UnixMilli())
}

// DecodeScanToken parses a raw scanned string. It returns ErrMalformedToken
// unless the input has exactly an offering segment and an action segment,
// the offering id is an unsigned positive integer and the action starts with signIn or signOut.
func DecodeScanToken(raw string) (ScanToken, error) {
	parts := strings.Split(strings.TrimSpace(raw), ",")
	if len(parts) != 2 {
		return ScanToken{}, ErrMalformedToken
	}

	idPart, ok := strings.CutPrefix(parts[0], scanTokenOfferingPrefix)
	if !ok {
		return ScanToken{}, ErrMalformedToken
	}
	if idPart == "" || idPart[0] < '0' || idPart[0] > '9' {
		return ScanToken{}, ErrMalformedToken
	}
	id, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil || id <= 0 {
		return ScanToken{}, ErrMalformedToken
	}

	var action ScanAction
	switch {
	case strings.HasPrefix(parts[1], string(ScanActionSignIn)):
		action = ScanActionSignIn
	case strings.HasPrefix(parts[1], string(ScanActionSignOut)):
		action = ScanActionSignOut
	default:
		return ScanToken{}, ErrMalformedToken
	}

	return ScanToken{OfferingID: id, Action: action}, nil
}
