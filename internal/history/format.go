package history

import (
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/mathdrill/internal/session"
)

// timeLayout matches the on-disk timestamp format of the transcript.
const timeLayout = "2006-01-02 15:04:05"

// blockRule separates transcript blocks in the log file.
var blockRule = strings.Repeat("*", 31)

// Transcript renders one self-contained transcript block for a finished
// session. The layout is part of the on-disk contract; every field label
// and annotation is fixed.
func Transcript(res *session.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "用户名: %s\n", res.Owner)
	fmt.Fprintf(&b, "得分: %d\n", res.Score)
	fmt.Fprintf(&b, "开始时间: %s\n", formatTime(res.StartedAt))
	fmt.Fprintf(&b, "结束时间: %s\n", formatTime(res.FinishedAt))
	b.WriteString("试题信息:\n")

	for i, p := range res.Problems {
		fmt.Fprintf(&b, "%d. %d %s %d = ", i+1, p.A, p.Op, p.B)
		if !p.Answered {
			b.WriteString("未回答")
		} else if p.Correct() {
			fmt.Fprintf(&b, "%d (正确)", p.Given)
		} else {
			fmt.Fprintf(&b, "%d (错误, 正确答案: %d)", p.Given, p.Answer)
		}
		b.WriteString("\n")
	}

	b.WriteString(blockRule)
	b.WriteString("\n")
	return b.String()
}

func formatTime(t time.Time) string {
	return t.Format(timeLayout)
}
