package access

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// CatOwnerLookup evita importar el paquete cats (rompe ciclos).
type CatOwnerLookup interface {
	OwnerOf(ctx context.Context, catID string) (string, error)
}

type Guard struct {
	owners CatOwnerLookup
	policy Policy
}

func NewGuard(owners CatOwnerLookup, policy Policy) *Guard {
	if policy == "" {
		policy = PolicyOwner
	}
	return &Guard{owners: owners, policy: policy}
}

func (g *Guard) Policy() Policy {
	return g.policy
}

// AuthorizeCat valida que userID pueda operar sobre catID.
// - ErrNotFound si el gato no existe (en ambas políticas)
// - ErrForbidden si la política es owner y el gato es de otro usuario
func (g *Guard) AuthorizeCat(ctx context.Context, catID, userID string) error {
	catID = strings.TrimSpace(catID)
	userID = strings.TrimSpace(userID)
	if catID == "" {
		return ErrNotFound
	}
	if userID == "" {
		return ErrForbidden
	}

	ownerID, err := g.owners.OwnerOf(ctx, catID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("lookup cat owner: %w", err)
	}

	if g.policy == PolicyOpen {
		return nil
	}
	if ownerID != userID {
		return ErrForbidden
	}
	return nil
}
