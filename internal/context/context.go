package ctx

import (
	"github.com/labstack/echo/v4"
	"github.com/mixparty/backend/internal/model"
)

const userKey = "user"

type User = model.User

// SetUser stores the authenticated account on the request context.
func SetUser(c echo.Context, user User) {
	c.Set(userKey, user)
}

// GetUser returns the authenticated account, if the request carried a valid
// ID token. Guest identities are resolved separately, from the user token in
// the request payload.
func GetUser(c echo.Context) (User, bool) {
	user, ok := c.Get(userKey).(User)
	return user, ok
}
