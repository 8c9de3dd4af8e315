package echoapi

import (
	"strings"

	"github.com/google/uuid"
)

// newIDFunc generates record ids for records created through the API. mockable
var newIDFunc = func(prefix string) string {
	return prefix + strings.ToUpper(strings.SplitN(uuid.New().String(), "-", 2)[0])
}
