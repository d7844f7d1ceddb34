package service

import (
	"strings"
	"unicode"

	"github.com/Ferhan0/Movie-Recommendation-System/internal/apperr"
)

const maxAccountIDLen = 128

// parseAccountID valida la identidad opaca de la cuenta que viene del token.
// Vacía es Unauthenticated; con caracteres raros o demasiado larga es
// InvalidArgument.
func parseAccountID(op, accountID string) (string, error) {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return "", apperr.New(apperr.KindUnauthenticated, op, "authentication required")
	}
	if len(accountID) > maxAccountIDLen {
		return "", apperr.New(apperr.KindInvalidArgument, op, "account id is too long")
	}
	for _, c := range accountID {
		if unicode.IsSpace(c) || unicode.IsControl(c) {
			return "", apperr.New(apperr.KindInvalidArgument, op, "account id contains invalid characters")
		}
	}
	return accountID, nil
}
