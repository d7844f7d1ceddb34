// Package identity mapea la identidad local de una cuenta (ObjectID en hex)
// al espacio de usuarios enteros que entiende el servicio ML.
package identity

import (
	"strconv"
	"strings"

	"github.com/Ferhan0/Movie-Recommendation-System/internal/apperr"
)

// DefaultUserSpace es el número de usuarios del dataset con el que se entrenó
// el servicio ML (MovieLens small).
const DefaultUserSpace = 610

// suffixLen es la cantidad de dígitos hex que se toman del final del id.
const suffixLen = 8

// Reconciler no guarda estado: el mismo accountID siempre da el mismo entero.
// Dos cuentas distintas pueden colisionar en el mismo id.
type Reconciler struct {
	UserSpace int
}

func NewReconciler(userSpace int) Reconciler {
	if userSpace <= 0 {
		userSpace = DefaultUserSpace
	}
	return Reconciler{UserSpace: userSpace}
}

// Reconcile devuelve un entero en [1, UserSpace].
func (r Reconciler) Reconcile(accountID string) (int, error) {
	n := r.UserSpace
	if n <= 0 {
		n = DefaultUserSpace
	}

	id := strings.ToLower(strings.TrimSpace(accountID))
	if len(id) < suffixLen {
		return 0, apperr.New(apperr.KindMalformedIdentity, "identity.reconcile",
			"account id must have at least 8 hex characters")
	}
	if !isHex(id) {
		return 0, apperr.New(apperr.KindMalformedIdentity, "identity.reconcile",
			"account id is not a hex string")
	}

	v, err := strconv.ParseUint(id[len(id)-suffixLen:], 16, 64)
	if err != nil {
		return 0, apperr.Wrap(apperr.KindMalformedIdentity, "identity.reconcile", err)
	}
	return int(v%uint64(n)) + 1, nil
}

func isHex(s string) bool {
	for _, c := range s {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
