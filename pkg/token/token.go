// Package token implements the guild API's bearer credential codec.
//
// Tokens are a reversible encoding of the caller's identity, not a signed
// credential: base64(id:username:region:isAdmin). The record key is stored
// without its table prefix so the decoded payload always splits into exactly
// four fields.
package token

import (
	"encoding/base64"
	"errors"
	"strconv"
	"strings"
)

// userTable is the record table prefix stripped from IDs before encoding.
const userTable = "user"

// ErrInvalidToken indicates a token that cannot be decoded back to an identity.
var ErrInvalidToken = errors.New("invalid token")

// Identity is the authenticated caller carried by a token.
type Identity struct {
	UserID   string
	Username string
	Region   string
	IsAdmin  bool
}

// Generate encodes an identity into an opaque bearer token.
func Generate(id Identity) string {
	key := strings.TrimPrefix(id.UserID, userTable+":")
	payload := strings.Join([]string{
		key,
		id.Username,
		id.Region,
		strconv.FormatBool(id.IsAdmin),
	}, ":")
	return base64.StdEncoding.EncodeToString([]byte(payload))
}

// Parse decodes a bearer token back into an identity.
// Returns ErrInvalidToken unless the payload is exactly four colon-separated
// fields with a boolean admin flag.
func Parse(token string) (*Identity, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, ErrInvalidToken
	}

	parts := strings.Split(string(raw), ":")
	if len(parts) != 4 {
		return nil, ErrInvalidToken
	}
	if parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return nil, ErrInvalidToken
	}

	isAdmin, err := strconv.ParseBool(parts[3])
	if err != nil {
		return nil, ErrInvalidToken
	}

	return &Identity{
		UserID:   userTable + ":" + parts[0],
		Username: parts[1],
		Region:   parts[2],
		IsAdmin:  isAdmin,
	}, nil
}
