package utils

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ParamUUID parses a UUID path parameter.
func ParamUUID(c *gin.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s", name)
	}
	return id, nil
}

// QueryUUID parses an optional UUID query parameter. ok is false when the
// parameter is absent.
func QueryUUID(c *gin.Context, name string) (id uuid.UUID, ok bool, err error) {
	raw := c.Query(name)
	if raw == "" {
		return uuid.Nil, false, nil
	}
	id, err = uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("invalid %s", name)
	}
	return id, true, nil
}
