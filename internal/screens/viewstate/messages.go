package viewstate

import "errors"

// MsgInternal текст для ошибок, которые экран не умеет объяснить
const MsgInternal = "внутренняя ошибка, подробности в журнале"

// ErrorText текст, который экран показывает для ошибки
type ErrorText struct {
	Err  error
	Text string
}

// Describe текст первой подходящей ошибки из списка; остальное скрывается за MsgInternal
func Describe(err error, known ...ErrorText) string {
	for _, k := range known {
		if errors.Is(err, k.Err) {
			return k.Text
		}
	}
	return MsgInternal
}
