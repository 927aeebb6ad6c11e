package exercise

import (
	"fmt"

	"github.com/google/uuid"
)

var idNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/abhisek/lingodrill/exercise"))

// NewID derives a stable item ID from the item's kind, lesson, position and
// content, so identical runs produce identical IDs.
func NewID(kind Kind, lesson, index int, payload string) string {
	return uuid.NewSHA1(idNamespace, fmt.Appendf(nil, "%s|%d|%d|%s", kind, lesson, index, payload)).String()
}
