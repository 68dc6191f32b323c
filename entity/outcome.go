package entity

import "fmt"

type Messages struct {
	Success []string `json:"success"`
	Warning []string `json:"warning"`
}

// Outcome is the result of a non-idempotent workflow operation. Result is
// true only when at least one mutation was applied; warnings carry the
// non-fatal failures (state conflicts, skipped duplicates, ERP rejections).
type Outcome struct {
	Result   bool     `json:"result"`
	Messages Messages `json:"messages"`
}

func (o *Outcome) Successf(format string, a ...any) {
	o.Messages.Success = append(o.Messages.Success, fmt.Sprintf(format, a...))
}

func (o *Outcome) Warnf(format string, a ...any) {
	o.Messages.Warning = append(o.Messages.Warning, fmt.Sprintf(format, a...))
}
