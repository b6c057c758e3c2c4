package usecase

import (
	"fmt"
	"strings"
)

func normalizeIDs(ids []string) ([]string, error) {
	cleaned := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			return nil, fmt.Errorf("%w: id cannot be empty", ErrInvalidInput)
		}
		cleaned = append(cleaned, id)
	}
	return cleaned, nil
}
