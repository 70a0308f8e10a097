package installer

import (
	"fmt"
	"strconv"
	"strings"
)

// NewTelegramTokenStep collects the Telegram bot token.
func NewTelegramTokenStep() Step {
	s := newInputStep(inputOptions{placeholder: "123456789:ABCDEF...", secret: true})
	s.title = func(*InstallState) string { return "Enter your Telegram Bot Token" }
	s.skip = func(state *InstallState) bool {
		return !state.App.EnableTelegram
	}
	s.apply = func(state *InstallState, value string) error {
		state.Telegram.Token = value
		return nil
	}
	return s
}

// NewAuthorizedUsersStep collects the Telegram ids allowed to use the bot.
func NewAuthorizedUsersStep() Step {
	s := newInputStep(inputOptions{placeholder: "123456789, 987654321"})
	s.title = func(*InstallState) string { return "Enter the Telegram User IDs allowed to use the bot" }
	s.skip = func(state *InstallState) bool {
		return !state.App.EnableTelegram
	}
	s.apply = func(state *InstallState, value string) error {
		ids, err := parseUserIDs(value)
		if err != nil {
			return err
		}
		state.App.AuthorizedUsers = ids
		return nil
	}
	return s
}

func parseUserIDs(value string) ([]int64, error) {
	var ids []int64
	for _, part := range strings.FieldsFunc(value, func(r rune) bool { return r == ',' || r == ' ' }) {
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a numeric user id", part)
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("at least one user id is required")
	}
	return ids, nil
}
