package logging

import (
	"fmt"
	"io"
	"log"

	"github.com/fatih/color"
)

// New returns a logger that writes lines like
// 2024/06/30 00:56:06 [prefix] message
func New(prefix string, w io.Writer) *log.Logger {
	return log.New(w, color.HiGreenString(fmt.Sprintf("[%s] ", prefix)), log.Ldate|log.Ltime|log.Lmsgprefix)
}

// Highlight colors a value for inline emphasis in log lines.
func Highlight(v interface{}) string {
	return color.HiYellowString(fmt.Sprint(v))
}
