package cats

import (
	"context"
	"errors"

	"cat-collector/internal/domain/access"
)

// OwnerOf expone el ownerUserID de un gato para access.Guard.
func (s *Service) OwnerOf(ctx context.Context, catID string) (string, error) {
	c, err := s.GetByID(ctx, catID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", access.ErrNotFound
		}
		return "", err
	}
	return c.OwnerUserID, nil
}
