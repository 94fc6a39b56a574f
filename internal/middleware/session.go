package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	CtxSessionIDKey = "session_id" // string
)

const sessionCookieName = "gentle_session"

// cookieの寿命（180日）
const sessionCookieMaxAge = 180 * 24 * 60 * 60

// セッションcookieが無ければ発行するミドルウェア。
// セッションIDはカートと訪問フラグの保存キーの名前空間になる。
func Session() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sid := ""
			if ck, err := c.Cookie(sessionCookieName); err == nil {
				sid = strings.TrimSpace(ck.Value)
			}

			//不正な値は作り直す
			if sid == "" || uuid.Validate(sid) != nil {
				sid = uuid.NewString()
				c.SetCookie(&http.Cookie{
					Name:     sessionCookieName,
					Value:    sid,
					Path:     "/",
					MaxAge:   sessionCookieMaxAge,
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			c.Set(CtxSessionIDKey, sid)
			return next(c)
		}
	}
}
