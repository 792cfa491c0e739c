package pwdgen

import (
	"fmt"
	"io"
	"time"

	"github.com/schollz/progressbar/v3"
)

type ProgressBar struct {
	Values *progressbar.ProgressBar
}

func NewProgress(w io.Writer, max int64) *ProgressBar {
	b := progressbar.NewOptions64(max,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("generating"),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(20),
		progressbar.OptionShowIts(),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(w, "\n")
		}),
		progressbar.OptionSetVisibility(true),
	)
	return &ProgressBar{
		Values: b,
	}
}

func (b *ProgressBar) Incr(n int64) {
	if b == nil {
		return
	}
	b.Values.Add64(n)
}

func (b *ProgressBar) Finish() {
	if b == nil {
		return
	}
	b.Values.Finish()
}
