package auth

import (
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v4"
)

// extractIdentity lee user_id, role y entity_id (opcional) de los claims.
func extractIdentity(claims jwt.MapClaims) (userID, role, entityID string, err error) {
	uid, ok := claims["user_id"].(string)
	if !ok || strings.TrimSpace(uid) == "" {
		return "", "", "", errors.New("Unauthorized - user_id faltante en token")
	}

	r, ok := claims["role"].(string)
	if !ok || strings.TrimSpace(r) == "" {
		return "", "", "", errors.New("Unauthorized - role faltante en token")
	}

	eid, _ := claims["entity_id"].(string)

	return strings.TrimSpace(uid), strings.ToLower(strings.TrimSpace(r)), strings.TrimSpace(eid), nil
}
