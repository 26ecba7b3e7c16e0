package bot

import (
	"context"
	"errors"
	"strings"
)

func (e *Engine) stepCredentials(ctx context.Context, sess *Session, ev Event) []Reply {
	if ev.Type != EventText {
		return replyText(sess.ChatID, msgEnterUsername)
	}

	switch sess.State {
	case StateEnterUsername:
		username := strings.TrimSpace(ev.Text)
		if username == "" {
			return replyText(sess.ChatID, msgEnterUsername)
		}
		sess.Fields["username"] = username
		sess.State = StateEnterPassword
		return replyText(sess.ChatID, msgEnterPassword)

	case StateEnterPassword:
		username := sess.Fields["username"]
		password := ev.Text
		e.clear(sess.ChatID) // single-shot: the flow ends here either way

		if sess.Flow == FlowSignup {
			err := e.backend.SignUp(ctx, sess.ChatID, username, password)
			if err != nil {
				if errors.Is(err, ErrUsernameTaken) || errors.Is(err, ErrBadRequest) {
					return replyText(sess.ChatID, msgSignupTaken)
				}
				return replyText(sess.ChatID, msgAPIError)
			}
			return replyText(sess.ChatID, msgSignupOK)
		}

		err := e.backend.Login(ctx, sess.ChatID, username, password)
		if err != nil {
			if errors.Is(err, ErrUnauthorized) {
				return replyText(sess.ChatID, msgLoginBad)
			}
			return replyText(sess.ChatID, msgAPIError)
		}
		return replyText(sess.ChatID, msgLoginOK)
	}
	return nil
}
